// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/stylehi/colors"
)

// Trilean value for StyleEntry value inheritance.
type Trilean int32

const (
	Pass Trilean = iota
	Yes
	No
)

func (t Trilean) Prefix(s string) string {
	if t == Yes {
		return s
	} else if t == No {
		return "no" + s
	}
	return ""
}

// StyleEntry is the display attribute for one highlighting [Role].
// It is written in files in the compact text form returned by
// [StyleEntry.String], for example "bold #8b0000 bg:#ffffe0".
type StyleEntry struct {

	// Color is the text color.
	Color color.RGBA

	// Background color.
	// In general it is not good to use this because it obscures highlighting.
	Background color.RGBA

	// Bold font.
	Bold Trilean

	// Italic font.
	Italic Trilean

	// Underline.
	Underline Trilean
}

func (se StyleEntry) String() string {
	out := []string{}
	if se.Bold != Pass {
		out = append(out, se.Bold.Prefix("bold"))
	}
	if se.Italic != Pass {
		out = append(out, se.Italic.Prefix("italic"))
	}
	if se.Underline != Pass {
		out = append(out, se.Underline.Prefix("underline"))
	}
	if !colors.IsNil(se.Color) {
		out = append(out, colors.AsHex(se.Color))
	}
	if !colors.IsNil(se.Background) {
		out = append(out, "bg:"+colors.AsHex(se.Background))
	}
	return strings.Join(out, " ")
}

// ParseStyleEntry parses the text form of a style entry, as returned by
// [StyleEntry.String]. Colors may be hex values or standard color names.
func ParseStyleEntry(s string) (StyleEntry, error) {
	var se StyleEntry
	for _, f := range strings.Fields(s) {
		var err error
		switch f {
		case "bold":
			se.Bold = Yes
		case "nobold":
			se.Bold = No
		case "italic":
			se.Italic = Yes
		case "noitalic":
			se.Italic = No
		case "underline":
			se.Underline = Yes
		case "nounderline":
			se.Underline = No
		default:
			if bg, ok := strings.CutPrefix(f, "bg:"); ok {
				se.Background, err = colors.FromString(bg)
			} else {
				se.Color, err = colors.FromString(f)
			}
		}
		if err != nil {
			return StyleEntry{}, fmt.Errorf("highlighting: invalid style entry %q: %w", s, err)
		}
	}
	return se, nil
}

// MarshalText implements [encoding.TextMarshaler].
func (se StyleEntry) MarshalText() ([]byte, error) {
	return []byte(se.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (se *StyleEntry) UnmarshalText(b []byte) error {
	e, err := ParseStyleEntry(string(b))
	if err != nil {
		return err
	}
	*se = e
	return nil
}

// ToCSS converts StyleEntry to CSS attributes.
func (se StyleEntry) ToCSS() string {
	styles := []string{}
	if !colors.IsNil(se.Color) {
		styles = append(styles, "color: "+colors.AsHex(se.Color))
	}
	if !colors.IsNil(se.Background) {
		styles = append(styles, "background-color: "+colors.AsHex(se.Background))
	}
	if se.Bold == Yes {
		styles = append(styles, "font-weight: bold")
	}
	if se.Italic == Yes {
		styles = append(styles, "font-style: italic")
	}
	if se.Underline == Yes {
		styles = append(styles, "text-decoration: underline")
	}
	return strings.Join(styles, "; ")
}

// Inherit styles from ancestors.
//
// Ancestors should be provided from oldest, furthest away to newest, closest.
func (se StyleEntry) Inherit(ancestors ...StyleEntry) StyleEntry {
	out := se
	for i := len(ancestors) - 1; i >= 0; i-- {
		ancestor := ancestors[i]
		if colors.IsNil(out.Color) {
			out.Color = ancestor.Color
		}
		if colors.IsNil(out.Background) {
			out.Background = ancestor.Background
		}
		if out.Bold == Pass {
			out.Bold = ancestor.Bold
		}
		if out.Italic == Pass {
			out.Italic = ancestor.Italic
		}
		if out.Underline == Pass {
			out.Underline = ancestor.Underline
		}
	}
	return out
}

// ForTheme returns the entry with its colors normalized for a light or
// dark background. Backgrounds are left as set.
func (se StyleEntry) ForTheme(dark bool) StyleEntry {
	se.Color = colors.ForTheme(se.Color, dark)
	return se
}

func (se StyleEntry) IsZero() bool {
	return colors.IsNil(se.Color) && colors.IsNil(se.Background) && se.Bold == Pass && se.Italic == Pass && se.Underline == Pass
}
