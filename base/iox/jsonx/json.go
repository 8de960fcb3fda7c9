// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonx provides functions for reading and writing JSON files.
package jsonx

import (
	"encoding/json"
	"io"

	"cogentcore.org/stylehi/base/iox"
)

// NewDecoder returns a new [iox.Decoder]
func NewDecoder(r io.Reader) iox.Decoder { return json.NewDecoder(r) }

// Open reads the given object from the given filename using JSON encoding
func Open(v any, filename string) error {
	return iox.Open(v, filename, NewDecoder)
}

// ReadBytes reads the given object from the given bytes,
// using JSON encoding
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, NewDecoder)
}

// NewEncoder returns a new [iox.Encoder]
func NewEncoder(w io.Writer) iox.Encoder {
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e
}

// Save writes the given object to the given filename using JSON encoding
func Save(v any, filename string) error {
	return iox.Save(v, filename, NewEncoder)
}

// WriteBytes writes the given object, returning bytes of the encoding,
// using JSON encoding
func WriteBytes(v any) ([]byte, error) {
	return iox.WriteBytes(v, NewEncoder)
}
