// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package samplefmt reads numeric samples from text and writes test
// results as text.
//
// A sample file holds one number per line. Blank lines and lines
// starting with "#" are ignored. Lines of the form "key: value", where
// key starts with a lower case letter and contains no spaces or upper
// case letters, are configuration lines describing the sample, in the
// same syntax as the file configuration of the Go benchmark format.
//
// For example:
//
//	group: treatment
//	unit: IQ
//	101
//	100.5
//	-3e2
package samplefmt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// A Reader reads a sample file.
//
// Its API is modeled on bufio.Scanner. The zero value of the Reader is
// a valid Reader, but the user must call Reset before using it.
type Reader struct {
	s        *bufio.Scanner
	fileName string
	lineNum  int
	err      error // current I/O error

	value    float64
	valueErr error

	config []Config
}

// Config is a single key/value configuration pair.
type Config struct {
	Key, Value string
}

// SyntaxError represents a syntax error on a particular line of a
// sample file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", s.FileName, s.Line, s.Msg)
}

var noValue = errors.New("Reader.Scan has not been called")

// NewReader constructs a reader to parse a sample from r. fileName is
// used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input. This
// also clears the configuration.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.lineNum = 0
	r.err = nil
	r.valueErr = noValue
	r.config = r.config[:0]
}

// Scan advances the reader to the next value and returns true if a
// value line was read. The caller should use the Value method to get
// the value. If an I/O error occurs, or this reaches the end of the
// file, it returns false and the caller should use the Err method to
// check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}

	for r.s.Scan() {
		r.lineNum++
		line := r.s.Bytes()
		field, rest := splitField(trimSpace(line))
		if len(field) == 0 || field[0] == '#' {
			continue
		}
		if key, val, ok := parseKeyValueLine(line); ok {
			r.setConfig(string(key), string(val))
			continue
		}
		// At this point we commit to this being a value line.
		r.valueErr = r.parseValue(field, rest)
		return true
	}

	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.lineNum, err)
		return false
	}
	r.err = nil
	return false
}

func (r *Reader) parseValue(field, rest []byte) error {
	if len(rest) != 0 {
		return &SyntaxError{r.fileName, r.lineNum, "more than one value on line"}
	}
	val, err := strconv.ParseFloat(string(field), 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			return &SyntaxError{r.fileName, r.lineNum, fmt.Sprintf("parsing %q: %v", field, numErr.Err)}
		}
		return &SyntaxError{r.fileName, r.lineNum, err.Error()}
	}
	r.value = val
	return nil
}

func (r *Reader) setConfig(key, val string) {
	for i := range r.config {
		if r.config[i].Key == key {
			r.config[i].Value = val
			return
		}
	}
	r.config = append(r.config, Config{key, val})
}

// Value returns the last value read, or an error if the line was
// malformed.
//
// Parse errors are non-fatal, so the caller can continue to call
// Scan.
func (r *Reader) Value() (float64, error) {
	if r.valueErr != nil {
		return 0, r.valueErr
	}
	return r.value, nil
}

// Config returns the configuration lines read so far, in the order
// their keys first appeared. A later line with the same key replaces
// the value. The caller should not retain the slice.
func (r *Reader) Config() []Config {
	return r.config
}

// Err returns the first non-EOF I/O error that was encountered by the
// Reader.
func (r *Reader) Err() error {
	return r.err
}

// parseKeyValueLine attempts to parse line as a key: value pair. ok
// indicates whether the line could be parsed.
func parseKeyValueLine(line []byte) (key, val []byte, ok bool) {
	for i := 0; i < len(line); {
		r, n := utf8.DecodeRune(line[i:])
		// key begins with a lower case character ...
		if i == 0 && !unicode.IsLower(r) {
			return
		}
		// and contains no space characters nor upper case
		// characters.
		if unicode.IsSpace(r) || unicode.IsUpper(r) {
			return
		}
		if i > 0 && r == ':' {
			key = line[:i]
			val = line[i+1:]
			break
		}

		i += n
	}
	if len(key) == 0 {
		return
	}
	// Value can be omitted entirely, in which case the colon must
	// still be present.
	if len(val) == 0 {
		ok = true
		return
	}
	// One or more ASCII space or tab characters separate "key:"
	// from "value."
	for len(val) > 0 && (val[0] == ' ' || val[0] == '\t') {
		val = val[1:]
		ok = true
	}
	return
}

const isSpace uint64 = 1<<'\t' | 1<<'\n' | 1<<'\v' | 1<<'\f' | 1<<'\r' | 1<<' '

func isSpaceByte(c byte) bool {
	return c < 64 && (isSpace>>c)&1 != 0
}

// trimSpace strips leading and trailing ASCII whitespace.
func trimSpace(x []byte) []byte {
	for len(x) > 0 && isSpaceByte(x[0]) {
		x = x[1:]
	}
	for len(x) > 0 && isSpaceByte(x[len(x)-1]) {
		x = x[:len(x)-1]
	}
	return x
}

// splitField consumes and returns non-whitespace in x as field,
// consumes whitespace following the field, and then returns the
// remaining bytes of x.
func splitField(x []byte) (field, rest []byte) {
	var i int
	for i = 0; i < len(x); i++ {
		if isSpaceByte(x[i]) {
			rest = x[i+1:]
			break
		}
	}
	field = x[:i]
	for len(rest) > 0 && isSpaceByte(rest[0]) {
		rest = rest[1:]
	}
	return
}
