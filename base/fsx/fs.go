// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides various utility functions for dealing with filesystems.
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"

	"cogentcore.org/stylehi/base/errors"
)

// FileExists checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
func FileExists(filePath string) (bool, error) {
	fileInfo, err := os.Stat(filePath)
	if err == nil {
		return !fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// FindFilesOnPaths attempts to locate given file(s) on given list of paths,
// returning the full Abs path to each file found (nil if none).
// An absolute file name is returned as is if it exists.
func FindFilesOnPaths(paths []string, files ...string) []string {
	var res []string
	for _, fn := range files {
		if filepath.IsAbs(fn) {
			if ok, _ := FileExists(fn); ok {
				res = append(res, fn)
			}
			continue
		}
		for _, path := range paths {
			fp := filepath.Join(path, fn)
			ok, _ := FileExists(fp)
			if !ok {
				continue
			}
			if abs, err := filepath.Abs(fp); err == nil {
				fp = abs
			}
			res = append(res, fp)
		}
	}
	return res
}

// ExtSplit returns the split between the extension and name before
// the extension for the given file name or path.
func ExtSplit(file string) (base, ext string) {
	ext = filepath.Ext(file)
	base = file[:len(file)-len(ext)]
	return
}
