// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error handling helpers,
// extending the standard library errors package.
package errors

import (
	"errors"
	"log/slog"
)

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// Must takes the given error and panics if it is non-nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// New is [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Is is [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join is [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}
