// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randtest

import (
	"context"
	"log/slog"

	"github.com/perfkit/randtest/permute"
	"golang.org/x/sync/errgroup"
)

// resolveJobs maps a requested worker count to [1, ncpu].
func resolveJobs(req, ncpu int, log *slog.Logger) int {
	if req > 0 {
		if req > ncpu {
			log.Info("more jobs requested than cores; using all cores",
				"requested", req, "cores", ncpu)
			return ncpu
		}
		return req
	}
	// 0 and -1 both mean every core.
	jobs := min(ncpu+req+1, ncpu)
	if jobs < 1 {
		log.Info("job request goes beyond the number of cores; using one job",
			"requested", req, "cores", ncpu)
		return 1
	}
	return jobs
}

// How often foldSerial polls for cancellation.
const cancelCheckInterval = 1024

// foldSerial evaluates every subset of gen on the calling goroutine.
func foldSerial(ctx context.Context, gen permute.Generator, e *evaluator) (hits, n int, err error) {
	for gen.Next() {
		if n%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, 0, err
			}
		}
		hit, err := e.hit(gen.Subset())
		if err != nil {
			return 0, 0, err
		}
		n++
		if hit {
			hits++
		}
	}
	return hits, n, nil
}

// foldParallel evaluates every subset of gen on jobs workers.
//
// Subsets are generated and outcomes are counted on the calling
// goroutine; workers only evaluate statistics. Outcomes arrive in
// any order, which is fine because counting commutes. If any
// evaluation fails, the whole fold fails and the partial counts are
// discarded.
func foldParallel(ctx context.Context, gen permute.Generator, jobs int, newEval func() *evaluator) (hits, n int, err error) {
	g, gctx := errgroup.WithContext(ctx)
	work := make(chan permute.Subset, jobs)
	results := make(chan bool, jobs)

	for i := 0; i < jobs; i++ {
		e := newEval()
		g.Go(func() error {
			for s := range work {
				hit, err := e.hit(s)
				if err != nil {
					return err
				}
				select {
				case results <- hit:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	var next permute.Subset
	more := gen.Next()
	if more {
		next = gen.Subset()
	}
	pending := 0
	for more || pending > 0 {
		// A nil channel disables the send case once gen is
		// exhausted.
		var send chan<- permute.Subset
		if more {
			send = work
		}
		select {
		case send <- next:
			pending++
			if more = gen.Next(); more {
				next = gen.Subset()
			}
		case hit := <-results:
			pending--
			n++
			if hit {
				hits++
			}
		case <-gctx.Done():
			close(work)
			err := g.Wait()
			if err == nil {
				err = gctx.Err()
			}
			return 0, 0, err
		}
	}
	close(work)
	if err := g.Wait(); err != nil {
		return 0, 0, err
	}
	return hits, n, nil
}
