// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randtest

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// A Summary describes the distribution of one group.
type Summary struct {
	N int

	Mean, StdDev float64
	Min, Max     float64

	// Q1 and Q3 are nearest-rank quartiles.
	Q1, Q3 float64
	Median float64
}

// Describe summarizes xs. It returns ErrEmptyGroup if xs is empty.
// StdDev is the sample standard deviation, which is NaN for a single
// value.
func Describe(xs []float64) (Summary, error) {
	if len(xs) == 0 {
		return Summary{}, ErrEmptyGroup
	}
	data := stats.Float64Data(xs)
	s := Summary{N: len(xs)}

	var err error
	if s.Mean, err = data.Mean(); err != nil {
		return s, err
	}
	if len(xs) > 1 {
		if s.StdDev, err = stats.StandardDeviationSample(data); err != nil {
			return s, err
		}
	} else {
		s.StdDev = math.NaN()
	}
	if s.Min, err = data.Min(); err != nil {
		return s, err
	}
	if s.Max, err = data.Max(); err != nil {
		return s, err
	}
	if s.Median, err = data.Median(); err != nil {
		return s, err
	}
	if s.Q1, err = data.PercentileNearestRank(25); err != nil {
		return s, err
	}
	if s.Q3, err = data.PercentileNearestRank(75); err != nil {
		return s, err
	}
	return s, nil
}

func (s Summary) String() string {
	return fmt.Sprintf("n=%d mean=%g sd=%g min=%g q1=%g median=%g q3=%g max=%g",
		s.N, s.Mean, s.StdDev, s.Min, s.Q1, s.Median, s.Q3, s.Max)
}
