// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"log/slog"

	"cogentcore.org/stylehi/base/fsx"
	"cogentcore.org/stylehi/base/iox/tomlx"
)

// OpenWithIncludes reads the config struct from the given config file,
// looking on [Options.IncludePaths] for the file. If cfg is an [Includer],
// it opens any Includes specified in the config file in the natural
// include order so that includers overwrite included settings.
// It returns an error if the file or any include cannot be found.
func OpenWithIncludes(opts *Options, cfg any, file string) error {
	files := fsx.FindFilesOnPaths(opts.IncludePaths, file)
	if len(files) == 0 {
		return fmt.Errorf("config file %q not found on %v", file, opts.IncludePaths)
	}
	err := tomlx.OpenFiles(cfg, files...)
	if err != nil {
		return err
	}
	incfg, ok := cfg.(Includer)
	if !ok {
		return nil
	}
	incs, err := IncludeStack(opts, incfg)
	if len(incs) == 0 {
		return err
	}
	for i := len(incs) - 1; i >= 0; i-- {
		ierr := tomlx.OpenFiles(cfg, fsx.FindFilesOnPaths(opts.IncludePaths, incs[i])...)
		if ierr != nil {
			slog.Warn("reading include file", "file", incs[i], "err", ierr)
		}
	}
	// reopen original
	rerr := tomlx.OpenFiles(cfg, files...)
	if rerr != nil {
		return rerr
	}
	*incfg.IncludesPtr() = incs
	return err
}
