// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/stylehi/base/fsx"
	"cogentcore.org/stylehi/cli"
)

// DefaultConfigFile is read when no config file is given, if it exists.
const DefaultConfigFile = "stylehi.toml"

// Config is the stylehi configuration. Values come from the `default:`
// tags, then the config file and its includes, then command line flags.
type Config struct {
	// Includes are other config files to read before this one.
	Includes []string

	// Scheme is the name of the color scheme.
	Scheme string `default:"default"`

	// Colors is a scheme file to use instead of a named Scheme.
	Colors string

	// Format is the highlight output format: html, ansi, spans or json.
	Format string `default:"html"`

	// Dark adjusts the colors for a dark background.
	Dark bool

	// Standalone wraps html output in a complete page with a style element.
	Standalone bool `default:"true"`
}

func (c *Config) IncludesPtr() *[]string { return &c.Includes }

func loadConfig(file string) (Config, error) {
	var cfg Config
	if err := cli.SetFromDefaults(&cfg); err != nil {
		return cfg, err
	}
	opts := cli.DefaultOptions()
	if file == "" {
		if len(fsx.FindFilesOnPaths(opts.IncludePaths, DefaultConfigFile)) == 0 {
			return cfg, nil
		}
		file = DefaultConfigFile
	}
	err := cli.OpenWithIncludes(opts, &cfg, file)
	return cfg, err
}
