// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randtest

import (
	"fmt"
	"strings"
)

// Result is the outcome of one completed randomization test.
//
// A Result is a value; it shares no state with the Test that produced
// it. Results are only returned for runs that evaluated every
// requested relabeling.
type Result struct {
	Method      Method
	Alternative Alternative

	// MCTA and MCTB are the measure of central tendency of
	// groups A and B.
	MCTA, MCTB float64

	// Statistic is the observed test statistic.
	Statistic float64

	// Hits is the number of relabelings whose statistic is at
	// least as extreme as Statistic under Alternative. For
	// MonteCarlo this includes the observed grouping.
	Hits int

	// Permutations is the number of relabelings evaluated.
	Permutations int

	// Seed is the seed of the random source, or nil if the run
	// was not seeded.
	Seed *int64
}

// PValue returns Hits / Permutations.
func (r Result) PValue() float64 {
	return float64(r.Hits) / float64(r.Permutations)
}

// String returns a multi-line human-readable summary of r.
func (r Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Method = %s\n", r.Method)
	fmt.Fprintf(&b, "Alternative = %s\n", r.Alternative)
	fmt.Fprintf(&b, "MCT(data of group A) = %.6g\n", r.MCTA)
	fmt.Fprintf(&b, "MCT(data of group B) = %.6g\n", r.MCTB)
	fmt.Fprintf(&b, "Observed test statistic value = %.6g\n", r.Statistic)
	fmt.Fprintf(&b, "Number of successes = %d\n", r.Hits)
	fmt.Fprintf(&b, "Number of permutations = %d\n", r.Permutations)
	fmt.Fprintf(&b, "p value = %.6g\n", r.PValue())
	if r.Seed != nil {
		fmt.Fprintf(&b, "seed = %d", *r.Seed)
	} else {
		b.WriteString("seed = none")
	}
	return b.String()
}
