// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package permute generates the relabelings used by a two-sample
// randomization test.
//
// A relabeling is represented as a Subset: the indices into the pooled
// data (group A followed by group B) that are assigned to group A. The
// remaining indices form group B. Values are never moved; everything
// operates on indices.
//
// Two generators are provided. Combinations enumerates every subset
// exhaustively in lexicographic order. Sample draws subsets at random,
// always starting with the observed grouping.
package permute

import (
	"math"

	"github.com/aclements/go-moremath/mathx"
)

// A Subset is a set of indices in [0, n) assigned to group A. Subsets
// produced by this package are sorted in increasing order.
type Subset []int

// A Generator produces a finite sequence of Subsets.
//
// Its API is modeled on bufio.Scanner. Next advances to the next
// subset and reports whether there is one. The Subset returned by
// Subset is owned by the caller and is not modified by later calls to
// Next.
type Generator interface {
	Next() bool
	Subset() Subset

	// Len returns the total number of subsets this generator
	// produces, including any already consumed.
	Len() int
}

// Count returns the number of k-subsets of n elements, C(n, k). The
// result is a float64 because it overflows int for modest n.
func Count(n, k int) float64 {
	return mathx.Choose(n, k)
}

// Identity returns the subset {0, ..., k-1}, which is the observed
// grouping when group A comes first in the pooled data.
func Identity(k int) Subset {
	s := make(Subset, k)
	for i := range s {
		s[i] = i
	}
	return s
}

// IsIdentity reports whether s is {0, ..., len(s)-1}.
func (s Subset) IsIdentity() bool {
	for i, x := range s {
		if x != i {
			return false
		}
	}
	return true
}

// Split gathers the values of data selected by s into a and the rest
// into b, preserving the order of data within each group. a and b are
// reused if they have enough capacity.
func (s Subset) Split(data []float64, a, b []float64) ([]float64, []float64) {
	a, b = a[:0], b[:0]
	j := 0
	for i, x := range data {
		if j < len(s) && s[j] == i {
			a = append(a, x)
			j++
		} else {
			b = append(b, x)
		}
	}
	return a, b
}

// countInt is Count clamped to the int range.
func countInt(n, k int) int {
	c := Count(n, k)
	if c >= math.MaxInt {
		return math.MaxInt
	}
	return int(math.Round(c))
}
