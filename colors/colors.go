// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides helpers for the RGBA colors used in
// highlighting styles: parsing and formatting hex strings, and
// normalizing colors for light and dark themes.
package colors

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// IsNil returns whether the color is the nil (fully transparent zero) color,
// which is used to mean that a color is not set.
func IsNil(c color.RGBA) bool {
	return c == color.RGBA{}
}

// AsHex returns the color as a #rrggbb hex string, or "" for a nil color.
// Partially transparent colors are returned as #rrggbbaa.
func AsHex(c color.RGBA) string {
	if IsNil(c) {
		return ""
	}
	if c.A != 0xff {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// FromHex parses a #rgb, #rrggbb or #rrggbbaa hex color string.
// An empty string returns the nil color.
func FromHex(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	switch len(s) {
	case 4:
		s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
	case 9:
		c, err := colorful.Hex(s[:7])
		if err != nil {
			return color.RGBA{}, err
		}
		var a uint8
		if _, err := fmt.Sscanf(s[7:], "%02x", &a); err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromHex: invalid alpha in %q", s)
		}
		r, g, b := c.RGB255()
		return premultiply(color.RGBA{r, g, b, a}), nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xff}, nil
}

// premultiply converts a non-premultiplied color to the premultiplied
// form used by [color.RGBA].
func premultiply(c color.RGBA) color.RGBA {
	if c.A == 0xff {
		return c
	}
	a := uint16(c.A)
	return color.RGBA{uint8(uint16(c.R) * a / 0xff), uint8(uint16(c.G) * a / 0xff), uint8(uint16(c.B) * a / 0xff), c.A}
}

// Named are the toolkit's standard named colors that may be used
// in place of hex values in highlighting schemes.
var Named = map[string]color.RGBA{
	"black":       {0, 0, 0, 0xff},
	"white":       {0xff, 0xff, 0xff, 0xff},
	"red":         {0xff, 0, 0, 0xff},
	"darkred":     {0x80, 0, 0, 0xff},
	"green":       {0, 0xff, 0, 0xff},
	"darkgreen":   {0, 0x80, 0, 0xff},
	"blue":        {0, 0, 0xff, 0xff},
	"darkblue":    {0, 0, 0x80, 0xff},
	"cyan":        {0, 0xff, 0xff, 0xff},
	"darkcyan":    {0, 0x80, 0x80, 0xff},
	"magenta":     {0xff, 0, 0xff, 0xff},
	"darkmagenta": {0x80, 0, 0x80, 0xff},
	"yellow":      {0xff, 0xff, 0, 0xff},
	"darkyellow":  {0x80, 0x80, 0, 0xff},
	"gray":        {0xa0, 0xa0, 0xa4, 0xff},
	"darkgray":    {0x80, 0x80, 0x80, 0xff},
	"lightgray":   {0xc0, 0xc0, 0xc0, 0xff},
}

// FromString parses a color given as a name in [Named] or a hex string.
func FromString(s string) (color.RGBA, error) {
	if c, ok := Named[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	return FromHex(s)
}

// ForTheme normalizes the lightness of a text color so that it keeps
// sufficient contrast against a light or dark background, preserving hue.
// The nil color is returned unchanged.
func ForTheme(c color.RGBA, dark bool) color.RGBA {
	if IsNil(c) {
		return c
	}
	cf, _ := colorful.MakeColor(c)
	h, ch, l := cf.Hcl()
	if dark {
		l = max(l, 0.7)
	} else {
		l = min(l, 0.5)
	}
	r, g, b := colorful.Hcl(h, ch, l).Clamped().RGB255()
	return color.RGBA{r, g, b, 0xff}
}
