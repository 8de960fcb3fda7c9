// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"image/color"

	"cogentcore.org/stylehi/text/csslex"
)

//go:generate stringer -type=Role

// Role is the display role of a run of style sheet text,
// which selects one of the entries of [Colors].
type Role int32

const (
	// None is for text that is not styled: the colon starting a
	// pseudo-state and a lone slash.
	None Role = iota
	Selector
	Property
	Value
	Pseudo1
	Pseudo2
	Quote
	Comment

	RolesN
)

// RoleForState returns the display role for text in the given lexer state.
func RoleForState(st csslex.State) Role {
	switch st {
	case csslex.Selector:
		return Selector
	case csslex.Property:
		return Property
	case csslex.Value:
		return Value
	case csslex.Pseudo1:
		return Pseudo1
	case csslex.Pseudo2:
		return Pseudo2
	case csslex.Quote:
		return Quote
	case csslex.Comment, csslex.MaybeCommentEnd:
		return Comment
	}
	return None
}

// Colors are the display attributes of the highlighting roles of a
// style sheet highlighter. A given [Highlighter] never changes them.
type Colors struct {
	Selector StyleEntry `json:"selector" toml:"selector" yaml:"selector"`
	Property StyleEntry `json:"property" toml:"property" yaml:"property"`
	Value    StyleEntry `json:"value" toml:"value" yaml:"value"`

	// Pseudo1 is for single-colon pseudo-states; inherits from Selector.
	Pseudo1 StyleEntry `json:"pseudo1" toml:"pseudo1" yaml:"pseudo1"`

	// Pseudo2 is for double-colon sub-controls; inherits from Selector.
	Pseudo2 StyleEntry `json:"pseudo2" toml:"pseudo2" yaml:"pseudo2"`

	Quote   StyleEntry `json:"quote" toml:"quote" yaml:"quote"`
	Comment StyleEntry `json:"comment" toml:"comment" yaml:"comment"`
}

// DefaultColors returns the standard colors for a light background.
func DefaultColors() Colors {
	return Colors{
		Selector: StyleEntry{Color: color.RGBA{0x80, 0, 0, 0xff}},
		Property: StyleEntry{Color: color.RGBA{0, 0, 0xff, 0xff}},
		Value:    StyleEntry{Color: color.RGBA{0, 0, 0, 0xff}},
		Pseudo1:  StyleEntry{Color: color.RGBA{0x80, 0, 0, 0xff}},
		Pseudo2:  StyleEntry{Color: color.RGBA{0x80, 0, 0, 0xff}},
		Quote:    StyleEntry{Color: color.RGBA{0x80, 0, 0x80, 0xff}},
		Comment:  StyleEntry{Color: color.RGBA{0, 0x80, 0, 0xff}, Italic: Yes},
	}
}

// Entry returns the style entry for the given role, with inheritance
// applied. [None] returns the zero entry.
func (c *Colors) Entry(role Role) StyleEntry {
	switch role {
	case Selector:
		return c.Selector
	case Property:
		return c.Property
	case Value:
		return c.Value
	case Pseudo1:
		return c.Pseudo1.Inherit(c.Selector)
	case Pseudo2:
		return c.Pseudo2.Inherit(c.Selector)
	case Quote:
		return c.Quote
	case Comment:
		return c.Comment
	}
	return StyleEntry{}
}

// ForState returns the style entry for text in the given lexer state.
func (c *Colors) ForState(st csslex.State) StyleEntry {
	return c.Entry(RoleForState(st))
}

// ForTheme returns a copy of the colors with text colors normalized
// for a light or dark background.
func (c Colors) ForTheme(dark bool) Colors {
	c.Selector = c.Selector.ForTheme(dark)
	c.Property = c.Property.ForTheme(dark)
	c.Value = c.Value.ForTheme(dark)
	c.Pseudo1 = c.Pseudo1.ForTheme(dark)
	c.Pseudo2 = c.Pseudo2.ForTheme(dark)
	c.Quote = c.Quote.ForTheme(dark)
	c.Comment = c.Comment.ForTheme(dark)
	return c
}
