// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/perfkit/randtest/measure"
	"github.com/perfkit/randtest/randtest"
	"github.com/perfkit/randtest/samplefmt"
	"github.com/spf13/cobra"
)

// options are the command-line settings shared by every subcommand.
type options struct {
	configPath string
	seed       int64
	cfg        Config
}

func newRootCmd() *cobra.Command {
	o := &options{cfg: DefaultConfig()}

	root := &cobra.Command{
		Use:   "randtest",
		Short: "Randomization tests for two-sample comparison",
		Long: `randtest compares two independent samples with a randomization test.

The observed difference between the groups' measure of central tendency
is compared against the differences obtained by relabeling the pooled
data, either exhaustively (-p -1) or by random sampling (-p N).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := root.PersistentFlags()
	f.StringVarP(&o.cfg.Alternative, "alternative", "a", o.cfg.Alternative, "alternative hypothesis: two_sided, greater, or less")
	f.IntVarP(&o.cfg.Permutations, "permutations", "p", o.cfg.Permutations, "number of permutations, or -1 for a systematic test")
	f.IntVarP(&o.cfg.Jobs, "jobs", "n", o.cfg.Jobs, "number of workers; <= 0 is relative to the number of cores")
	f.Int64VarP(&o.seed, "seed", "s", 0, "seed for the random number generator (default random)")
	f.StringVar(&o.cfg.LogLevel, "log-level", o.cfg.LogLevel, "log level: debug, info, warn, or error")
	f.StringVar(&o.cfg.Format, "format", o.cfg.Format, "output format: text or kv")
	f.BoolVar(&o.cfg.Reference, "reference", o.cfg.Reference, "also report Mann-Whitney U and Welch t-test p values")
	f.BoolVar(&o.cfg.Describe, "describe", o.cfg.Describe, "also print a summary of each group")
	f.StringVar(&o.configPath, "config", "", "read settings from YAML `file`; flags take precedence")

	root.AddCommand(
		newMeasureCmd(o, "mean", "Compare arithmetic means"),
		newMeasureCmd(o, "median", "Compare medians"),
		newTrimmedMeanCmd(o),
	)
	return root
}

func newMeasureCmd(o *options, name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " fileA fileB",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.resolve(cmd); err != nil {
				return err
			}
			m, err := measure.ByName(name, float64(o.cfg.TrimPercent)/100)
			if err != nil {
				return err
			}
			return o.run(cmd, name, m, args[0], args[1])
		},
	}
}

func newTrimmedMeanCmd(o *options) *cobra.Command {
	cmd := newMeasureCmd(o, "tmean", "Compare trimmed means")
	cmd.Flags().IntVarP(&o.cfg.TrimPercent, "cut", "c", o.cfg.TrimPercent, "percent [0-49] trimmed from each end")
	return cmd
}

// resolve merges the config file, if any, under the flags that were
// set explicitly.
func (o *options) resolve(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if o.configPath != "" {
		file, err := LoadConfig(o.configPath)
		if err != nil {
			return err
		}
		set := func(name string, dst, src any) {
			if flags.Changed(name) {
				return
			}
			switch dst := dst.(type) {
			case *string:
				*dst = *src.(*string)
			case *int:
				*dst = *src.(*int)
			case *bool:
				*dst = *src.(*bool)
			}
		}
		set("alternative", &o.cfg.Alternative, &file.Alternative)
		set("permutations", &o.cfg.Permutations, &file.Permutations)
		set("jobs", &o.cfg.Jobs, &file.Jobs)
		set("log-level", &o.cfg.LogLevel, &file.LogLevel)
		set("format", &o.cfg.Format, &file.Format)
		set("reference", &o.cfg.Reference, &file.Reference)
		set("describe", &o.cfg.Describe, &file.Describe)
		if flags.Lookup("cut") != nil {
			set("cut", &o.cfg.TrimPercent, &file.TrimPercent)
		}
		if !flags.Changed("seed") {
			o.cfg.Seed = file.Seed
		}
	}
	if flags.Changed("seed") {
		seed := o.seed
		o.cfg.Seed = &seed
	}
	return o.cfg.validate()
}

func (o *options) run(cmd *cobra.Command, name string, m measure.Measure, pathA, pathB string) error {
	cfg := o.cfg
	level, err := parseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	alt, err := randtest.ParseAlternative(cfg.Alternative)
	if err != nil {
		return err
	}
	if pathA == "-" && pathB == "-" {
		return fmt.Errorf("at most one of the inputs can be stdin")
	}
	a, err := samplefmt.ReadFile(pathA)
	if err != nil {
		return fmt.Errorf("group A: %w", err)
	}
	b, err := samplefmt.ReadFile(pathB)
	if err != nil {
		return fmt.Errorf("group B: %w", err)
	}
	logger.Debug("read samples", "a", a.Name, "na", len(a.Values), "b", b.Name, "nb", len(b.Values))

	res, err := randtest.Run(cmd.Context(), a.Values, b.Values, randtest.Config{
		Alternative:  alt,
		Permutations: cfg.Permutations,
		Jobs:         cfg.Jobs,
		Seed:         cfg.Seed,
		Measure:      m,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch cfg.Format {
	case "kv":
		w := samplefmt.NewWriter(out)
		err = w.Write(res,
			samplefmt.Config{Key: "measure", Value: name},
			samplefmt.Config{Key: "file-a", Value: a.Name},
			samplefmt.Config{Key: "file-b", Value: b.Name})
	default:
		_, err = fmt.Fprintln(out, res)
	}
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if cfg.Describe {
		for _, g := range []*samplefmt.Sample{a, b} {
			sum, err := randtest.Describe(g.Values)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(out, "%s: %v\n", g.Name, sum); err != nil {
				return err
			}
		}
	}
	if cfg.Reference {
		return writeReference(out, randtest.Compare(a.Values, b.Values, alt))
	}
	return nil
}

func writeReference(w io.Writer, cs []randtest.Comparison) error {
	for _, c := range cs {
		var err error
		if len(c.Warnings) > 0 {
			_, err = fmt.Fprintf(w, "%s p value = n/a (%v)\n", c.Test, c.Warnings[0])
		} else {
			_, err = fmt.Fprintf(w, "%s p value = %g\n", c.Test, c.P)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
