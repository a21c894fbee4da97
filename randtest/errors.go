// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randtest

import (
	"errors"
	"fmt"
)

// Configuration errors. These are reported by New before any
// computation starts.
var (
	ErrBadAlternative  = errors.New("unsupported alternative")
	ErrBadMethod       = errors.New("unsupported method")
	ErrBadPermutations = errors.New("bad permutation count")
)

// Data errors. These are wrapped in a *DataError naming the group.
var (
	ErrEmptyGroup = errors.New("group has no values")
	ErrNonFinite  = errors.New("value is not a finite number")
)

// DataError is an error in the values of one of the two groups.
type DataError struct {
	Group string // "A" or "B"
	Index int    // Offending element, or -1 for the whole group
	Err   error
}

func (e *DataError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("group %s: %v", e.Group, e.Err)
	}
	return fmt.Sprintf("group %s: element %d: %v", e.Group, e.Index, e.Err)
}

func (e *DataError) Unwrap() error {
	return e.Err
}
