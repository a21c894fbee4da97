// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package permute

// Combinations enumerates every k-subset of [0, n) in lexicographic
// order, starting with {0, ..., k-1} and ending with {n-k, ..., n-1}.
//
// The number of subsets is C(n, k), which grows combinatorially.
// Exhaustive enumeration is only tractable for small n.
type Combinations struct {
	n, k  int
	cur   []int
	first bool
	done  bool
}

// NewCombinations returns a Generator over all k-subsets of [0, n).
// It panics if k < 0 or k > n.
func NewCombinations(n, k int) *Combinations {
	c := new(Combinations)
	c.Reset(n, k)
	return c
}

// Reset restarts the enumeration over k-subsets of [0, n).
func (c *Combinations) Reset(n, k int) {
	if k < 0 || k > n {
		panic("permute: bad subset size")
	}
	c.n, c.k = n, k
	c.cur = append(c.cur[:0], Identity(k)...)
	c.first = true
	c.done = false
}

// Next advances to the next subset in lexicographic order.
func (c *Combinations) Next() bool {
	if c.done {
		return false
	}
	if c.first {
		c.first = false
		return true
	}
	// Find the rightmost index that can still be incremented.
	i := c.k - 1
	for i >= 0 && c.cur[i] == c.n-c.k+i {
		i--
	}
	if i < 0 {
		c.done = true
		return false
	}
	c.cur[i]++
	for j := i + 1; j < c.k; j++ {
		c.cur[j] = c.cur[j-1] + 1
	}
	return true
}

// Subset returns a copy of the current subset.
func (c *Combinations) Subset() Subset {
	return append(Subset(nil), c.cur...)
}

// Len returns C(n, k), clamped to the int range.
func (c *Combinations) Len() int {
	return countInt(c.n, c.k)
}
