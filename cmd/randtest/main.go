// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command randtest performs a two-sample randomization test on two
// sample files.
//
// Usage:
//
//	randtest mean [flags] fileA fileB
//	randtest tmean [flags] [-c percent] fileA fileB
//	randtest median [flags] fileA fileB
//
// Each file holds one number per line; see package samplefmt for the
// format. Either file may be "-" to read from stdin.
//
// The test statistic is the difference between the measure of
// central tendency of group A and that of group B. With -p -1, every
// relabeling of the pooled data is evaluated (a systematic test).
// With a positive -p, that many relabelings are evaluated, one of
// which is the observed grouping (a Monte Carlo test).
//
// For example,
//
//	randtest tmean -c 20 -p 100000 -n -1 -s 0 treatment.dat placebo.dat
//
// compares the 20% trimmed means of the two groups using 100000
// relabelings spread over all cores.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "randtest:", err)
		stop()
		os.Exit(1)
	}
}
