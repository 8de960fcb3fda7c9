// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli provides the config file plumbing for command line tools:
// defaults from struct tags and TOML config files with includes.
package cli

// Options control how config files are found.
type Options struct {
	// IncludePaths is a list of directories to search for config files,
	// both those given on the command line and those named in Includes.
	IncludePaths []string
}

// DefaultOptions returns [Options] that search the current
// directory and then a configs directory.
func DefaultOptions() *Options {
	return &Options{IncludePaths: []string{".", "configs"}}
}
