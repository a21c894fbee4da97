// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randtest

import "github.com/perfkit/randtest/measure"

// A Statistic reduces the two groups of one relabeling to a scalar,
// using m as the measure of central tendency. Errors are propagated
// to the caller of Run unmodified.
//
// A Statistic is called concurrently when Config.Jobs > 1, and must
// not retain or modify a or b.
type Statistic func(a, b []float64, m measure.Measure) (float64, error)

// Difference is the default Statistic, m(a) - m(b).
func Difference(a, b []float64, m measure.Measure) (float64, error) {
	ma, err := m(a)
	if err != nil {
		return 0, err
	}
	mb, err := m(b)
	if err != nil {
		return 0, err
	}
	return ma - mb, nil
}
