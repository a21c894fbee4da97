// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package samplefmt

import (
	"io"
	"os"
)

// A Sample is the complete contents of one sample file.
type Sample struct {
	// Name is the file name the sample was read from.
	Name string

	Values []float64
	Config []Config
}

// Get returns the value of configuration key, or "" if it is not set.
func (s *Sample) Get(key string) string {
	for _, cfg := range s.Config {
		if cfg.Key == key {
			return cfg.Value
		}
	}
	return ""
}

// ReadSample reads every value from r. Unlike Reader, it treats a
// malformed value as fatal and returns its *SyntaxError.
func ReadSample(r io.Reader, fileName string) (*Sample, error) {
	reader := NewReader(r, fileName)
	s := &Sample{Name: reader.fileName}
	for reader.Scan() {
		v, err := reader.Value()
		if err != nil {
			return nil, err
		}
		s.Values = append(s.Values, v)
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}
	s.Config = append([]Config(nil), reader.Config()...)
	return s, nil
}

// ReadFile reads the sample in the named file. The path "-" is
// treated as stdin.
func ReadFile(path string) (*Sample, error) {
	if path == "-" {
		return ReadSample(os.Stdin, "<stdin>")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSample(f, path)
}
