// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/perfkit/randtest/samplefmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// groups writes the two groups used throughout these tests and
// returns their paths.
func groups(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	a := filepath.Join(dir, "a.dat")
	b := filepath.Join(dir, "b.dat")
	require.NoError(t, os.WriteFile(a, []byte("# group A\n5\n6\n"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("8\n10\n"), 0644))
	return a, b
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSystematicMean(t *testing.T) {
	a, b := groups(t)
	out, _, err := execute(t, "mean", "-p", "-1", a, b)
	require.NoError(t, err)

	want := `Method = Systematic
Alternative = two_sided
MCT(data of group A) = 5.5
MCT(data of group B) = 9
Observed test statistic value = -3.5
Number of successes = 2
Number of permutations = 6
p value = 0.333333
seed = none
`
	assert.Equal(t, want, out)
}

func TestAlternativeFlag(t *testing.T) {
	a, b := groups(t)
	out, _, err := execute(t, "median", "-p", "-1", "-a", "greater", a, b)
	require.NoError(t, err)
	assert.Contains(t, out, "Number of successes = 6\n")

	out, _, err = execute(t, "median", "-p", "-1", "-a", "less", a, b)
	require.NoError(t, err)
	assert.Contains(t, out, "Number of successes = 1\n")
}

func TestMonteCarloSeeded(t *testing.T) {
	a, b := groups(t)
	first, _, err := execute(t, "tmean", "-c", "0", "-p", "500", "-s", "11", "-n", "2", a, b)
	require.NoError(t, err)
	assert.Contains(t, first, "Method = Monte Carlo\n")
	assert.Contains(t, first, "Number of permutations = 500\n")
	assert.Contains(t, first, "seed = 11")

	second, _, err := execute(t, "tmean", "-c", "0", "-p", "500", "-s", "11", a, b)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestKVFormat(t *testing.T) {
	a, b := groups(t)
	out, _, err := execute(t, "mean", "-p", "-1", "--format", "kv", a, b)
	require.NoError(t, err)

	s, err := samplefmt.ReadSample(bytes.NewReader([]byte(out)), "out")
	require.NoError(t, err)
	assert.Equal(t, "mean", s.Get("measure"))
	assert.Equal(t, a, s.Get("file-a"))
	assert.Equal(t, "2", s.Get("hits"))
	assert.Equal(t, "6", s.Get("permutations"))
	assert.Equal(t, "", s.Get("seed"))
}

func TestConfigFile(t *testing.T) {
	a, b := groups(t)
	cfg := writeConfig(t, "permutations: -1\nalternative: less\n")

	out, _, err := execute(t, "mean", "--config", cfg, a, b)
	require.NoError(t, err)
	assert.Contains(t, out, "Alternative = less\n")
	assert.Contains(t, out, "Number of successes = 1\n")

	// Flags override the file.
	out, _, err = execute(t, "mean", "--config", cfg, "-a", "greater", a, b)
	require.NoError(t, err)
	assert.Contains(t, out, "Alternative = greater\n")
	assert.Contains(t, out, "Number of successes = 6\n")
}

func TestReference(t *testing.T) {
	a, b := groups(t)
	out, _, err := execute(t, "mean", "-p", "-1", "--reference", a, b)
	require.NoError(t, err)
	assert.Contains(t, out, "Mann-Whitney U")
	assert.Contains(t, out, "Welch t p value")
}

func TestDescribe(t *testing.T) {
	a, b := groups(t)
	out, _, err := execute(t, "mean", "-p", "-1", "--describe", a, b)
	require.NoError(t, err)
	assert.Contains(t, out, a+": n=2 mean=5.5 ")
	assert.Contains(t, out, b+": n=2 mean=9 ")
}

func TestDebugLogging(t *testing.T) {
	a, b := groups(t)
	_, stderr, err := execute(t, "mean", "-p", "-1", "--log-level", "debug", a, b)
	require.NoError(t, err)
	assert.Contains(t, stderr, "read samples")
}

func TestCommandErrors(t *testing.T) {
	a, b := groups(t)
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.dat")
	require.NoError(t, os.WriteFile(bad, []byte("1\ntwo\n"), 0644))
	empty := filepath.Join(dir, "empty.dat")
	require.NoError(t, os.WriteFile(empty, nil, 0644))

	for name, args := range map[string][]string{
		"one file":      {"mean", a},
		"both stdin":    {"mean", "-", "-"},
		"bad cut":       {"tmean", "-c", "50", a, b},
		"bad alt":       {"mean", "-a", "sideways", a, b},
		"zero perms":    {"mean", "-p", "0", a, b},
		"bad format":    {"mean", "--format", "xml", a, b},
		"missing file":  {"mean", a, filepath.Join(dir, "nope.dat")},
		"syntax error":  {"mean", bad, b},
		"empty group":   {"mean", a, empty},
		"no subcommand": {"frobnicate", a, b},
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := execute(t, args...)
			assert.Error(t, err)
		})
	}
}
