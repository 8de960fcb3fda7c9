// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"cogentcore.org/stylehi/colors"
	"github.com/muesli/termenv"
)

// ClassNames are the HTML class names used for each role.
// [None] has no class, and its text is not wrapped in a span.
var ClassNames = [RolesN]string{
	Selector: "sel",
	Property: "prop",
	Value:    "val",
	Pseudo1:  "ps1",
	Pseudo2:  "ps2",
	Quote:    "str",
	Comment:  "cm",
}

// maxLineLen is the maximum line length that is marked up;
// longer lines are returned plain.
const maxLineLen = 64 * 1024

// MarkupLineHTML returns the line marked up with <span class="..."> elements
// for the given ranges, using the [ClassNames]. Adjacent ranges with the same
// role are combined. The text is HTML escaped.
func MarkupLineHTML(txt []rune, ranges []FormatRange) []byte {
	var b bytes.Buffer
	if len(txt) > maxLineLen {
		b.WriteString(html.EscapeString(string(txt)))
		return b.Bytes()
	}
	forEachRun(txt, ranges, func(role Role, _ StyleEntry, s string) {
		cls := ClassNames[role]
		if cls == "" {
			b.WriteString(html.EscapeString(s))
			return
		}
		fmt.Fprintf(&b, `<span class="%s">%s</span>`, cls, html.EscapeString(s))
	})
	return b.Bytes()
}

// MarkupLineANSI returns the line with terminal escape sequences for
// the styles of the given ranges, for the given termenv profile.
func MarkupLineANSI(txt []rune, ranges []FormatRange, profile termenv.Profile) string {
	if len(txt) > maxLineLen {
		return string(txt)
	}
	var b strings.Builder
	forEachRun(txt, ranges, func(_ Role, se StyleEntry, s string) {
		if se.IsZero() {
			b.WriteString(s)
			return
		}
		st := profile.String(s)
		if !colors.IsNil(se.Color) {
			st = st.Foreground(profile.FromColor(se.Color))
		}
		if !colors.IsNil(se.Background) {
			st = st.Background(profile.FromColor(se.Background))
		}
		if se.Bold == Yes {
			st = st.Bold()
		}
		if se.Italic == Yes {
			st = st.Italic()
		}
		if se.Underline == Yes {
			st = st.Underline()
		}
		b.WriteString(st.String())
	})
	return b.String()
}

// forEachRun calls fun for each run of text with the same role,
// combining adjacent ranges. Text not covered by a range has role [None].
func forEachRun(txt []rune, ranges []FormatRange, fun func(role Role, se StyleEntry, s string)) {
	cp := 0
	for i := 0; i < len(ranges); i++ {
		fr := ranges[i]
		if fr.Start >= len(txt) {
			break
		}
		if fr.Start > cp {
			fun(None, StyleEntry{}, string(txt[cp:fr.Start]))
		}
		end := fr.End()
		for i+1 < len(ranges) && ranges[i+1].Role == fr.Role && ranges[i+1].Start == end {
			i++
			end = ranges[i].End()
		}
		end = min(end, len(txt))
		fun(fr.Role, fr.Style, string(txt[fr.Start:end]))
		cp = end
	}
	if cp < len(txt) {
		fun(None, StyleEntry{}, string(txt[cp:]))
	}
}

// CSS returns a style sheet with a rule for the class of each role
// that has a style, for use with [MarkupLineHTML].
func (c *Colors) CSS() string {
	var b strings.Builder
	for role := Selector; role < RolesN; role++ {
		css := c.Entry(role).ToCSS()
		if css == "" {
			continue
		}
		fmt.Fprintf(&b, ".%s { %s }\n", ClassNames[role], css)
	}
	return b.String()
}
