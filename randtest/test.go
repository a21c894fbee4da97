// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randtest

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"runtime"

	"github.com/perfkit/randtest/measure"
	"github.com/perfkit/randtest/permute"
)

// DefaultPermutations is the conventional number of Monte Carlo
// relabelings.
const DefaultPermutations = 10000

// Systematic runs with more relabelings than this log a warning.
const systematicWarnCount = 1e7

// Config configures a randomization test.
type Config struct {
	Alternative Alternative
	Method      Method

	// Permutations is the number of relabelings. -1 requests a
	// systematic test. A positive count requests a Monte Carlo
	// test with exactly that many relabelings, including the
	// observed grouping. 0 is invalid. Permutations is ignored
	// if Method is Systematic.
	Permutations int

	// Jobs is the requested number of workers. A positive Jobs is
	// capped at the number of CPUs. Jobs <= 0 is relative to the
	// number of CPUs: -1 means all CPUs, -2 all but one, and so
	// on, with a minimum of one worker.
	Jobs int

	// Seed seeds the random source of a Monte Carlo test. If nil
	// and Source is nil, the source is seeded randomly.
	Seed *int64

	// Source, if non-nil, is used instead of Seed. A Test with a
	// Source must not be run concurrently with itself.
	Source rand.Source

	// Measure is the measure of central tendency. The default is
	// measure.Mean.
	Measure measure.Measure

	// Statistic is the test statistic. The default is Difference.
	Statistic Statistic

	// Logger receives advisory diagnostics. The default discards
	// them.
	Logger *slog.Logger
}

// A Test is a configured randomization test. It holds no state from
// previous runs, so it may be run any number of times, and
// concurrently unless Config.Source is set.
type Test struct {
	cfg    Config
	method Method
	jobs   int
	log    *slog.Logger
}

// New validates cfg and returns a Test. All configuration errors are
// reported here rather than by Run.
func New(cfg Config) (*Test, error) {
	if !cfg.Alternative.valid() {
		return nil, fmt.Errorf("%w %v", ErrBadAlternative, cfg.Alternative)
	}
	if !cfg.Method.valid() {
		return nil, fmt.Errorf("%w %v", ErrBadMethod, cfg.Method)
	}

	method := cfg.Method
	if method != Systematic {
		switch {
		case cfg.Permutations == -1 && method == MethodAuto:
			method = Systematic
		case cfg.Permutations > 0:
			method = MonteCarlo
		case cfg.Permutations == -1:
			return nil, fmt.Errorf("%w: %s test needs a positive count", ErrBadPermutations, method)
		default:
			return nil, fmt.Errorf("%w %d: want -1 or a positive count", ErrBadPermutations, cfg.Permutations)
		}
	}

	if cfg.Measure == nil {
		cfg.Measure = measure.Mean
	}
	if cfg.Statistic == nil {
		cfg.Statistic = Difference
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Test{
		cfg:    cfg,
		method: method,
		jobs:   resolveJobs(cfg.Jobs, runtime.NumCPU(), log),
		log:    log,
	}, nil
}

// Run is shorthand for New(cfg) followed by Run(ctx, a, b).
func Run(ctx context.Context, a, b []float64, cfg Config) (Result, error) {
	t, err := New(cfg)
	if err != nil {
		return Result{}, err
	}
	return t.Run(ctx, a, b)
}

// Method returns the resolved method of t. It is never MethodAuto.
func (t *Test) Method() Method {
	return t.method
}

// Jobs returns the number of workers t uses.
func (t *Test) Jobs() int {
	return t.jobs
}

// Run performs one complete randomization test of group a against
// group b.
//
// Run either evaluates every relabeling and returns a Result, or
// returns an error and no Result. Errors from the Measure or
// Statistic are returned unmodified. Invalid values in a or b are
// reported as a *DataError. If ctx is canceled, Run stops early and
// returns the context's error.
func (t *Test) Run(ctx context.Context, a, b []float64) (Result, error) {
	if err := checkGroup("A", a); err != nil {
		return Result{}, err
	}
	if err := checkGroup("B", b); err != nil {
		return Result{}, err
	}

	m := t.cfg.Measure
	mcta, err := m(a)
	if err != nil {
		return Result{}, err
	}
	mctb, err := m(b)
	if err != nil {
		return Result{}, err
	}
	obs, err := t.cfg.Statistic(a, b, m)
	if err != nil {
		return Result{}, err
	}

	data := make([]float64, 0, len(a)+len(b))
	data = append(append(data, a...), b...)
	n, k := len(data), len(a)

	var gen permute.Generator
	var hits, perms int
	switch t.method {
	case Systematic:
		gen = permute.NewCombinations(n, k)
		if c := gen.Len(); c > systematicWarnCount {
			t.log.Warn("systematic test over many relabelings; consider a Monte Carlo test",
				"relabelings", c, "n", n, "k", k)
		}
	case MonteCarlo:
		gen = permute.NewSample(t.newRand(), n, k, t.cfg.Permutations)
		// The observed grouping is always the first relabeling
		// and always counts as a hit.
		if !gen.Next() || !gen.Subset().IsIdentity() {
			panic("randtest: first Monte Carlo relabeling is not the observed grouping")
		}
		hits, perms = 1, 1
	}

	newEval := func() *evaluator {
		return &evaluator{
			data: data,
			obs:  obs,
			alt:  t.cfg.Alternative,
			m:    m,
			stat: t.cfg.Statistic,
		}
	}
	var h, p int
	if t.jobs == 1 {
		h, p, err = foldSerial(ctx, gen, newEval())
	} else {
		h, p, err = foldParallel(ctx, gen, t.jobs, newEval)
	}
	if err != nil {
		return Result{}, err
	}
	hits += h
	perms += p

	res := Result{
		Method:       t.method,
		Alternative:  t.cfg.Alternative,
		MCTA:         mcta,
		MCTB:         mctb,
		Statistic:    obs,
		Hits:         hits,
		Permutations: perms,
	}
	if t.cfg.Source == nil && t.cfg.Seed != nil {
		seed := *t.cfg.Seed
		res.Seed = &seed
	}
	t.log.Debug("randomization test done",
		"method", res.Method, "alternative", res.Alternative,
		"hits", res.Hits, "permutations", res.Permutations, "p", res.PValue())
	return res, nil
}

// newRand returns the random source for one Monte Carlo run.
func (t *Test) newRand() *rand.Rand {
	if t.cfg.Source != nil {
		return rand.New(t.cfg.Source)
	}
	if t.cfg.Seed != nil {
		s := uint64(*t.cfg.Seed)
		return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func checkGroup(name string, xs []float64) error {
	if len(xs) == 0 {
		return &DataError{Group: name, Index: -1, Err: ErrEmptyGroup}
	}
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return &DataError{Group: name, Index: i, Err: ErrNonFinite}
		}
	}
	return nil
}

// An evaluator computes the hit outcome of relabelings. Each worker
// owns one evaluator; data is shared read-only.
type evaluator struct {
	data []float64
	obs  float64
	alt  Alternative
	m    measure.Measure
	stat Statistic

	a, b []float64 // scratch group buffers
}

func (e *evaluator) hit(s permute.Subset) (bool, error) {
	e.a, e.b = s.Split(e.data, e.a, e.b)
	t, err := e.stat(e.a, e.b, e.m)
	if err != nil {
		return false, err
	}
	return e.alt.hit(t, e.obs), nil
}
