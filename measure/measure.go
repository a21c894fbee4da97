// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package measure provides measures of central tendency for use as
// the summary of a group in a randomization test.
package measure

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/aclements/go-moremath/stats"
)

// A Measure reduces a sample to a single value. A Measure must not
// retain or modify xs.
type Measure func(xs []float64) (float64, error)

var (
	// ErrEmpty is returned by a Measure given no values to summarize.
	ErrEmpty = errors.New("empty sample")

	// ErrTrim is returned for a trim fraction outside [0, 0.5).
	ErrTrim = errors.New("bad trim fraction")
)

// Mean returns the arithmetic mean of xs, correctly rounded. The
// result does not depend on the order of xs, so groupings with the
// same values always have exactly the same mean.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmpty
	}
	return exactMean(xs), nil
}

// exactMean sums xs as rationals and rounds once. xs must be finite
// and non-empty.
func exactMean(xs []float64) float64 {
	var sum, x big.Rat
	for _, v := range xs {
		sum.Add(&sum, x.SetFloat64(v))
	}
	sum.Quo(&sum, x.SetInt64(int64(len(xs))))
	m, _ := sum.Float64()
	return m
}

// Median returns the 0.5 quantile of xs.
func Median(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmpty
	}
	samp := stats.Sample{Xs: append([]float64(nil), xs...)}
	samp.Sort()
	return samp.Quantile(0.5), nil
}

// TrimmedMean returns a Measure that computes the mean of xs after
// discarding the lowest and highest frac of the values. frac must be
// in [0, 0.5). The number of values cut from each end is
// floor(len(xs)*frac).
func TrimmedMean(frac float64) (Measure, error) {
	if !(frac >= 0 && frac < 0.5) {
		return nil, fmt.Errorf("%w: %v not in [0, 0.5)", ErrTrim, frac)
	}
	return func(xs []float64) (float64, error) {
		if len(xs) == 0 {
			return 0, ErrEmpty
		}
		samp := stats.Sample{Xs: append([]float64(nil), xs...)}
		samp.Sort()
		cut := int(float64(len(xs)) * frac)
		return exactMean(samp.Xs[cut : len(xs)-cut]), nil
	}, nil
}

// ByName returns the named measure. Known names are "mean",
// "median", and "tmean", which is TrimmedMean(trim).
func ByName(name string, trim float64) (Measure, error) {
	switch name {
	case "mean":
		return Mean, nil
	case "median":
		return Median, nil
	case "tmean":
		return TrimmedMean(trim)
	}
	return nil, fmt.Errorf("unknown measure %q", name)
}
