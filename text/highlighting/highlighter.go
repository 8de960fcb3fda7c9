// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package highlighting provides syntax highlighting of toolkit style sheets,
// using the line lexer in [csslex]: the colors of the highlighting roles,
// the [Highlighter] that drives a text host one line (block) at a time,
// a [Document] that keeps lines highlighted as they are edited, and HTML
// and terminal markup of the results.
package highlighting

import (
	"cogentcore.org/stylehi/text/csslex"
)

// Format is the display attribute of a run of text.
type Format struct {
	Role  Role
	Style StyleEntry
}

// FormatRange is a [Format] applied to a run of runes in a line.
type FormatRange struct {
	Start int
	Len   int
	Format
}

// End returns the rune index just past the range.
func (fr FormatRange) End() int {
	return fr.Start + fr.Len
}

// Formatter receives the formats of a line from [Highlighter.HighlightBlock],
// in order from left to right, exactly covering the line.
type Formatter interface {
	SetFormat(start, length int, f Format)
}

// BlockStore is the per-line integer state storage of a text host.
// PreviousBlockState returns the state stored for the previous line,
// or -1 if there is none; SetCurrentBlockState stores the state of
// the line being highlighted.
type BlockStore interface {
	PreviousBlockState() int
	SetCurrentBlockState(state int)
}

// Highlighter highlights style sheet text with a fixed set of [Colors].
// It has no other state, so one Highlighter may be used concurrently
// for any number of documents.
type Highlighter struct {
	colors Colors
}

// NewHighlighter returns a new [Highlighter] with the given colors.
func NewHighlighter(c Colors) *Highlighter {
	return &Highlighter{colors: c}
}

// Colors returns the colors of the highlighter.
func (hi *Highlighter) Colors() Colors {
	return hi.colors
}

// HighlightBlock highlights one line of text for a text host: it lexes
// the line from the previous line's stored state, sets the format of each
// run of the line, and stores the state for the next line.
func (hi *Highlighter) HighlightBlock(txt []rune, store BlockStore, f Formatter) {
	spans, bs := csslex.Lex(txt, csslex.DecodeBlockState(store.PreviousBlockState()))
	for _, sp := range spans {
		f.SetFormat(sp.Start, sp.Len, hi.format(sp.State))
	}
	store.SetCurrentBlockState(bs.Encode())
}

// Ranges returns the format ranges of one line and the state for the
// next line, given the state of the previous line (-1 if none).
func (hi *Highlighter) Ranges(txt []rune, prev int) ([]FormatRange, int) {
	spans, bs := csslex.Lex(txt, csslex.DecodeBlockState(prev))
	if len(spans) == 0 {
		return nil, bs.Encode()
	}
	frs := make([]FormatRange, len(spans))
	for i, sp := range spans {
		frs[i] = FormatRange{Start: sp.Start, Len: sp.Len, Format: hi.format(sp.State)}
	}
	return frs, bs.Encode()
}

func (hi *Highlighter) format(st csslex.State) Format {
	role := RoleForState(st)
	return Format{Role: role, Style: hi.colors.Entry(role)}
}
