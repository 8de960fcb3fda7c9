// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"reflect"

	"cogentcore.org/stylehi/base/errors"
	"cogentcore.org/stylehi/base/fsx"
	"cogentcore.org/stylehi/base/iox/tomlx"
	"cogentcore.org/stylehi/base/reflectx"
)

// maxIncludeDepth bounds nested includes, which also stops include cycles.
const maxIncludeDepth = 10

// Includer is a config object with an Includes field naming
// other config files to read before it.
type Includer interface {
	// IncludesPtr returns a pointer to the Includes field.
	IncludesPtr() *[]string
}

// IncludeStack returns the stack of include files in the natural
// order in which they are encountered (nil if none).
// Files should then be read in reverse order of the slice.
// It returns an error if any of the include files cannot be found
// on [Options.IncludePaths]. It does not alter cfg.
func IncludeStack(opts *Options, cfg Includer) ([]string, error) {
	clone := reflect.New(reflectx.NonPointerType(reflect.TypeOf(cfg))).Interface().(Includer)
	*clone.IncludesPtr() = *cfg.IncludesPtr()
	return includeStack(opts, clone, nil, 0)
}

func includeStack(opts *Options, clone Includer, includes []string, depth int) ([]string, error) {
	incs := *clone.IncludesPtr()
	if len(incs) == 0 {
		return includes, nil
	}
	if depth >= maxIncludeDepth {
		return includes, fmt.Errorf("includes nested more than %d deep: %v", maxIncludeDepth, incs)
	}
	for i := len(incs) - 1; i >= 0; i-- {
		includes = append(includes, incs[i]) // reverse order so later overwrite earlier
	}
	var errs []error
	for _, inc := range incs {
		*clone.IncludesPtr() = nil
		files := fsx.FindFilesOnPaths(opts.IncludePaths, inc)
		if len(files) == 0 {
			errs = append(errs, fmt.Errorf("include file %q not found on %v", inc, opts.IncludePaths))
			continue
		}
		err := tomlx.OpenFiles(clone, files...)
		if err == nil {
			includes, err = includeStack(opts, clone, includes, depth+1)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return includes, errors.Join(errs...)
}
