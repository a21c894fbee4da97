// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the settings of one randtest invocation. It can be
// loaded from a YAML file with --config; flags given on the command
// line take precedence over the file.
type Config struct {
	Alternative  string `yaml:"alternative"`
	Permutations int    `yaml:"permutations"`
	Jobs         int    `yaml:"jobs"`
	Seed         *int64 `yaml:"seed,omitempty"`
	TrimPercent  int    `yaml:"trim_percent"`
	LogLevel     string `yaml:"log_level"`
	Format       string `yaml:"format"`
	Reference    bool   `yaml:"reference"`
	Describe     bool   `yaml:"describe"`
}

// DefaultConfig returns the settings used when neither a flag nor the
// config file sets a value.
func DefaultConfig() Config {
	return Config{
		Alternative:  "two_sided",
		Permutations: 10000,
		Jobs:         1,
		TrimPercent:  20,
		LogLevel:     "warn",
		Format:       "text",
	}
}

// LoadConfig reads the YAML file at path over the defaults. Keys
// missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.TrimPercent < 0 || c.TrimPercent > 49 {
		return fmt.Errorf("trim percent %d not in [0, 49]", c.TrimPercent)
	}
	if c.Format != "text" && c.Format != "kv" {
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error", "critical":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}
