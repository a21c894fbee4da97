// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package samplefmt

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// parseAll returns the values of data, with NaN standing in for
// malformed lines, and the error messages of malformed lines.
func parseAll(t *testing.T, data string) (vals []float64, errs []string, cfg []Config) {
	r := NewReader(strings.NewReader(data), "test")
	for r.Scan() {
		v, err := r.Value()
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		vals = append(vals, v)
	}
	if err := r.Err(); err != nil {
		t.Fatal("parsing failed: ", err)
	}
	return vals, errs, append([]Config(nil), r.Config()...)
}

func TestReader(t *testing.T) {
	type testCase struct {
		name, input string
		vals        []float64
		errs        []string
		cfg         []Config
	}
	for _, test := range []testCase{
		{
			"basic",
			"5\n6\n",
			[]float64{5, 6},
			nil,
			nil,
		},
		{
			"whitespace and comments",
			"\n  1.5  \n# a comment\n\t-2\n\n3e2\n",
			[]float64{1.5, -2, 300},
			nil,
			nil,
		},
		{
			"config",
			"group: treatment\nunit:\tIQ\n101\ngroup: placebo\nempty:\n99\n",
			[]float64{101, 99},
			nil,
			[]Config{{"group", "placebo"}, {"unit", "IQ"}, {"empty", ""}},
		},
		{
			"not config",
			"Key: 1\na b: 2\n",
			nil,
			[]string{
				`test:1: more than one value on line`,
				`test:2: more than one value on line`,
			},
			nil,
		},
		{
			"bad values",
			"1\nabc\n2 3\n0x\n4\n",
			[]float64{1, 4},
			[]string{
				`test:2: parsing "abc": invalid syntax`,
				`test:3: more than one value on line`,
				`test:4: parsing "0x": invalid syntax`,
			},
			nil,
		},
		{
			"no trailing newline",
			"7",
			[]float64{7},
			nil,
			nil,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			vals, errs, cfg := parseAll(t, test.input)
			if !reflect.DeepEqual(vals, test.vals) {
				t.Errorf("values: want %v, got %v", test.vals, vals)
			}
			if !reflect.DeepEqual(errs, test.errs) {
				t.Errorf("errors: want %q, got %q", test.errs, errs)
			}
			if len(cfg) == 0 {
				cfg = nil
			}
			if !reflect.DeepEqual(cfg, test.cfg) {
				t.Errorf("config: want %v, got %v", test.cfg, cfg)
			}
		})
	}
}

func TestReaderValueBeforeScan(t *testing.T) {
	r := NewReader(strings.NewReader("1\n"), "")
	if _, err := r.Value(); err == nil {
		t.Fatal("want error before Scan")
	}
}

func TestReadSample(t *testing.T) {
	s, err := ReadSample(strings.NewReader("unit: sec\n1\n2\n3\n"), "a.dat")
	if err != nil {
		t.Fatal(err)
	}
	if want := []float64{1, 2, 3}; !reflect.DeepEqual(s.Values, want) {
		t.Errorf("want %v, got %v", want, s.Values)
	}
	if got := s.Get("unit"); got != "sec" {
		t.Errorf("unit: want sec, got %q", got)
	}
	if got := s.Get("missing"); got != "" {
		t.Errorf("missing: want empty, got %q", got)
	}

	_, err = ReadSample(strings.NewReader("1\nfive\n"), "b.dat")
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("want *SyntaxError, got %v", err)
	}
	if se.FileName != "b.dat" || se.Line != 2 {
		t.Errorf("want b.dat:2, got %s:%d", se.FileName, se.Line)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "group.dat")
	if err := os.WriteFile(path, []byte("8\n10\n"), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != path || !reflect.DeepEqual(s.Values, []float64{8, 10}) {
		t.Errorf("got %+v", s)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("want not-exist error, got %v", err)
	}
}
