// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"fmt"
	"image/color"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// ChromaTokens are the chroma token types whose style is used for each role.
var ChromaTokens = [RolesN]chroma.TokenType{
	None:     chroma.Text,
	Selector: chroma.NameTag,
	Property: chroma.NameAttribute,
	Value:    chroma.LiteralNumber,
	Pseudo1:  chroma.NameDecorator,
	Pseudo2:  chroma.NameFunction,
	Quote:    chroma.LiteralString,
	Comment:  chroma.Comment,
}

// StyleEntryFromChroma returns a new style entry from the corresponding chroma version.
func StyleEntryFromChroma(ce chroma.StyleEntry) StyleEntry {
	se := StyleEntry{}
	if ce.Colour.IsSet() {
		se.Color = color.RGBA{ce.Colour.Red(), ce.Colour.Green(), ce.Colour.Blue(), 0xff}
	}
	se.Bold = Trilean(ce.Bold)
	se.Italic = Trilean(ce.Italic)
	se.Underline = Trilean(ce.Underline)
	return se
}

// FromChroma returns colors built from the chroma style with the given
// name, such as "monokai" or "github". Backgrounds are not used, as the
// highlighted text is shown on the host's own background.
func FromChroma(name string) (Colors, error) {
	cs, ok := styles.Registry[name]
	if !ok {
		return Colors{}, fmt.Errorf("%w: chroma style %q", ErrUnknownScheme, name)
	}
	entry := func(role Role) StyleEntry {
		return StyleEntryFromChroma(cs.Get(ChromaTokens[role]))
	}
	return Colors{
		Selector: entry(Selector),
		Property: entry(Property),
		Value:    entry(Value),
		Pseudo1:  entry(Pseudo1),
		Pseudo2:  entry(Pseudo2),
		Quote:    entry(Quote),
		Comment:  entry(Comment),
	}, nil
}

// ChromaStyleNames returns the names of the chroma styles,
// for use with the [ChromaPrefix].
func ChromaStyleNames() []string {
	return styles.Names()
}
