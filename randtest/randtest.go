// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randtest implements the two-sample randomization test.
//
// Given samples A and B, a measure of central tendency, and a test
// statistic (by default the difference of the two measures), a
// randomization test asks how extreme the observed statistic is among
// the statistics of relabelings of the pooled data. The p value is
// the fraction of relabelings that are at least as extreme as the
// observed grouping, in the direction given by the Alternative.
//
// A systematic test enumerates all C(nA+nB, nA) relabelings. A Monte
// Carlo test evaluates a fixed number of random relabelings, one of
// which is always the observed grouping itself.
//
// Based on E. Edgington and P. Onghena, Randomization Tests, 4th ed.,
// Chapman & Hall/CRC, 2007.
package randtest

import (
	"fmt"
	"math"
)

// Alternative is the alternative hypothesis of a test.
type Alternative int

const (
	// TwoSided counts a relabeling as a hit if |t| >= |t_obs|.
	TwoSided Alternative = iota
	// Greater counts a relabeling as a hit if t >= t_obs.
	Greater
	// Less counts a relabeling as a hit if t <= t_obs.
	Less
)

func (a Alternative) String() string {
	switch a {
	case TwoSided:
		return "two_sided"
	case Greater:
		return "greater"
	case Less:
		return "less"
	}
	return fmt.Sprintf("Alternative(%d)", int(a))
}

func (a Alternative) valid() bool {
	return a == TwoSided || a == Greater || a == Less
}

// ParseAlternative parses "two_sided", "greater", or "less".
func ParseAlternative(s string) (Alternative, error) {
	switch s {
	case "two_sided", "two-sided":
		return TwoSided, nil
	case "greater":
		return Greater, nil
	case "less":
		return Less, nil
	}
	return 0, fmt.Errorf("%w %q", ErrBadAlternative, s)
}

// hit reports whether a permuted statistic t counts against the
// observed statistic obs under alternative a.
func (a Alternative) hit(t, obs float64) bool {
	switch a {
	case Greater:
		return t >= obs
	case Less:
		return t <= obs
	}
	return math.Abs(t) >= math.Abs(obs)
}

// Method selects how relabelings are generated.
type Method int

const (
	// MethodAuto chooses Systematic if the permutation count is
	// -1 and MonteCarlo otherwise.
	MethodAuto Method = iota
	// Systematic enumerates every relabeling.
	Systematic
	// MonteCarlo evaluates a fixed number of random relabelings.
	MonteCarlo
)

func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case Systematic:
		return "Systematic"
	case MonteCarlo:
		return "Monte Carlo"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

func (m Method) valid() bool {
	return m == MethodAuto || m == Systematic || m == MonteCarlo
}

// ParseMethod parses a method label. It accepts "auto",
// "systematic", and "monte_carlo" as well as the spellings produced
// by Method.String.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "", "auto":
		return MethodAuto, nil
	case "systematic", "Systematic":
		return Systematic, nil
	case "monte_carlo", "monte", "Monte Carlo":
		return MonteCarlo, nil
	}
	return 0, fmt.Errorf("%w %q", ErrBadMethod, s)
}
