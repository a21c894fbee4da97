// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package samplefmt

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/perfkit/randtest/randtest"
)

// A Writer writes randomization test results as "key: value" lines,
// one result per block. The output is valid configuration syntax for
// Reader, so a result can be read back as the configuration of an
// empty sample.
type Writer struct {
	w     io.Writer
	buf   bytes.Buffer
	first bool
}

// NewWriter returns a writer that writes results to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, first: true}
}

// Write writes res, preceded by the extra configuration pairs in
// config. Blocks after the first are separated by a blank line.
func (w *Writer) Write(res randtest.Result, config ...Config) error {
	if !w.first {
		w.buf.WriteByte('\n')
	}
	w.first = false

	for _, cfg := range config {
		fmt.Fprintf(&w.buf, "%s: %s\n", cfg.Key, cfg.Value)
	}
	w.kv("method", res.Method.String())
	w.kv("alternative", res.Alternative.String())
	w.kv("mct-a", formatFloat(res.MCTA))
	w.kv("mct-b", formatFloat(res.MCTB))
	w.kv("statistic", formatFloat(res.Statistic))
	w.kv("hits", strconv.Itoa(res.Hits))
	w.kv("permutations", strconv.Itoa(res.Permutations))
	w.kv("p-value", formatFloat(res.PValue()))
	if res.Seed != nil {
		w.kv("seed", strconv.FormatInt(*res.Seed, 10))
	}

	// Flush the buffer out to the io.Writer. Write to the buffer
	// can't fail, so we only have to check if this fails.
	_, err := w.w.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}

func (w *Writer) kv(key, value string) {
	fmt.Fprintf(&w.buf, "%s: %s\n", key, value)
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
