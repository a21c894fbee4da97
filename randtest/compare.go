// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randtest

import "github.com/aclements/go-moremath/stats"

// A Comparison is the outcome of a classical two-sample test, used
// as a reference next to a randomization test on the same data.
type Comparison struct {
	Test string // "Mann-Whitney U" or "Welch t"

	P float64

	N1, N2 int

	// Warnings records why the test could not be performed. If
	// non-empty, P is 1.
	Warnings []error
}

// Compare runs the Mann-Whitney U test and Welch's t-test of a
// against b under the same alternative as a randomization test.
func Compare(a, b []float64, alt Alternative) []Comparison {
	loc := locationHypothesis(alt)
	out := make([]Comparison, 0, 2)

	u := Comparison{Test: "Mann-Whitney U", N1: len(a), N2: len(b)}
	if r, err := stats.MannWhitneyUTest(a, b, loc); err != nil {
		u.P, u.Warnings = 1, []error{err}
	} else {
		u.P = r.P
	}
	out = append(out, u)

	w := Comparison{Test: "Welch t", N1: len(a), N2: len(b)}
	s1, s2 := &stats.Sample{Xs: a}, &stats.Sample{Xs: b}
	if r, err := stats.TwoSampleWelchTTest(s1, s2, loc); err != nil {
		w.P, w.Warnings = 1, []error{err}
	} else {
		w.P = r.P
	}
	out = append(out, w)

	return out
}

func locationHypothesis(alt Alternative) stats.LocationHypothesis {
	switch alt {
	case Greater:
		return stats.LocationGreater
	case Less:
		return stats.LocationLess
	}
	return stats.LocationDiffers
}
