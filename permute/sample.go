// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package permute

import (
	"math/rand/v2"
	"slices"
)

// Sample draws a fixed number of random k-subsets of [0, n).
//
// The first subset is always Identity(k), the observed grouping. Each
// of the remaining count-1 subsets is an independent uniform draw of k
// indices without replacement. Draws are not deduplicated, neither
// against each other nor against the identity.
//
// Subsets are drawn on demand, so memory use does not depend on count.
// Sample is not safe for concurrent use; it owns its random source.
type Sample struct {
	n, k  int
	count int
	rng   *rand.Rand

	pos  int
	perm []int // scratch permutation of [0, n)
	cur  Subset
}

// NewSample returns a Generator of count random k-subsets of [0, n)
// drawn from rng. It panics if k < 0, k > n, or count < 1.
func NewSample(rng *rand.Rand, n, k, count int) *Sample {
	if k < 0 || k > n {
		panic("permute: bad subset size")
	}
	if count < 1 {
		panic("permute: sample count must be positive")
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return &Sample{n: n, k: k, count: count, rng: rng, perm: perm}
}

// Next advances to the next subset.
func (s *Sample) Next() bool {
	if s.pos >= s.count {
		return false
	}
	if s.pos == 0 {
		s.cur = Identity(s.k)
	} else {
		s.cur = s.draw()
	}
	s.pos++
	return true
}

// draw performs a partial Fisher-Yates shuffle of the scratch
// permutation. Any permutation is a valid starting state, so the
// scratch is never reset between draws.
func (s *Sample) draw() Subset {
	for i := 0; i < s.k; i++ {
		j := i + s.rng.IntN(s.n-i)
		s.perm[i], s.perm[j] = s.perm[j], s.perm[i]
	}
	out := append(Subset(nil), s.perm[:s.k]...)
	slices.Sort(out)
	return out
}

// Subset returns the current subset.
func (s *Sample) Subset() Subset {
	return s.cur
}

// Len returns the number of subsets, including the identity.
func (s *Sample) Len() int {
	return s.count
}
