// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"sync"

	"cogentcore.org/stylehi/base/errors"
	"cogentcore.org/stylehi/base/fsx"
	"cogentcore.org/stylehi/base/iox/jsonx"
	"cogentcore.org/stylehi/base/iox/tomlx"
	"cogentcore.org/stylehi/base/iox/yamlx"
)

// DefaultScheme is the name of the initial default scheme.
var DefaultScheme = "default"

// ChromaPrefix is the scheme name prefix that selects a chroma style,
// as in "chroma:monokai".
const ChromaPrefix = "chroma:"

// ErrUnknownScheme is returned for a scheme name that is not available.
var ErrUnknownScheme = errors.New("highlighting: unknown scheme")

// ErrUnknownFormat is returned for a scheme file with an unsupported extension.
var ErrUnknownFormat = errors.New("highlighting: unknown file format")

// Schemes is a collection of named highlighting colors.
type Schemes map[string]*Colors

var (
	//go:embed defaults.toml
	defaults []byte

	// StandardSchemes are the schemes embedded in the package.
	StandardSchemes Schemes

	// CustomSchemes are the user's schemes, added with [AddCustomSchemes].
	CustomSchemes = Schemes{}

	// AvailableSchemes are all the standard and custom schemes.
	AvailableSchemes Schemes

	schemesMu   sync.RWMutex
	schemesOnce sync.Once
)

// initSchemes loads the standard schemes.
func initSchemes() {
	schemesOnce.Do(func() {
		StandardSchemes = Schemes{}
		errors.Must(tomlx.ReadBytes(&StandardSchemes, defaults))
		mergeAvailable()
	})
}

// mergeAvailable updates AvailableSchemes from the standard and custom
// schemes; must be called with schemesMu held or during init.
func mergeAvailable() {
	AvailableSchemes = make(Schemes, len(StandardSchemes)+len(CustomSchemes))
	AvailableSchemes.CopyFrom(StandardSchemes)
	AvailableSchemes.CopyFrom(CustomSchemes)
}

// AddCustomSchemes adds the given schemes to the custom schemes,
// replacing any with the same name, including standard ones.
func AddCustomSchemes(ss Schemes) {
	initSchemes()
	schemesMu.Lock()
	defer schemesMu.Unlock()
	CustomSchemes.CopyFrom(ss)
	mergeAvailable()
}

// AvailableScheme returns a copy of the scheme with the given name.
// A name with the [ChromaPrefix] is built from the chroma style of that
// name. An empty name returns the [DefaultScheme].
func AvailableScheme(name string) (Colors, error) {
	initSchemes()
	if name == "" {
		name = DefaultScheme
	}
	if cs, ok := strings.CutPrefix(name, ChromaPrefix); ok {
		return FromChroma(cs)
	}
	schemesMu.RLock()
	defer schemesMu.RUnlock()
	if c, ok := AvailableSchemes[name]; ok {
		return *c, nil
	}
	return Colors{}, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

// SchemeNames returns the sorted names of the available schemes.
func SchemeNames() []string {
	initSchemes()
	schemesMu.RLock()
	defer schemesMu.RUnlock()
	return AvailableSchemes.Names()
}

// CopyFrom copies schemes from another collection
func (hs *Schemes) CopyFrom(os Schemes) {
	if *hs == nil {
		*hs = make(Schemes, len(os))
	}
	for nm, cse := range os {
		(*hs)[nm] = cse
	}
}

// Names outputs names of schemes in collection
func (hs Schemes) Names() []string {
	nms := make([]string, 0, len(hs))
	for nm := range hs {
		nms = append(nms, nm)
	}
	slices.Sort(nms)
	return nms
}

// Open reads schemes from a file. The format is selected by the file
// extension: .toml, .yaml or .yml, and .json.
func (hs *Schemes) Open(filename string) error {
	return openByExt(hs, filename)
}

// Save writes the schemes to a file, in the format of its extension.
func (hs Schemes) Save(filename string) error {
	return saveByExt(hs, filename)
}

// Open reads a single set of colors from a file, in the format
// of its extension. Entries missing from the file are left unchanged.
func (c *Colors) Open(filename string) error {
	return openByExt(c, filename)
}

// Save writes the colors to a file, in the format of its extension.
func (c *Colors) Save(filename string) error {
	return saveByExt(c, filename)
}

func openByExt(v any, filename string) error {
	_, ext := fsx.ExtSplit(filename)
	switch strings.ToLower(ext) {
	case ".toml":
		return tomlx.Open(v, filename)
	case ".yaml", ".yml":
		return yamlx.Open(v, filename)
	case ".json":
		return jsonx.Open(v, filename)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, filename)
}

func saveByExt(v any, filename string) error {
	_, ext := fsx.ExtSplit(filename)
	switch strings.ToLower(ext) {
	case ".toml":
		return tomlx.Save(v, filename)
	case ".yaml", ".yml":
		return yamlx.Save(v, filename)
	case ".json":
		return jsonx.Save(v, filename)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, filename)
}
