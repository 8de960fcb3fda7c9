// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package csslex is a line-at-a-time lexer for toolkit style sheets, as
// used for syntax highlighting in a style sheet editor. It handles both full
// style sheets (selectors with rule bodies) and inline declaration lists.
//
// Each line is lexed from the [BlockState] left at the end of the previous
// line, so that block comments and quotes can continue across lines.
package csslex

import "strings"

// Span is a run of runes in a line that share the same lexer state.
type Span struct {

	// Start is the rune index of the first rune in the span.
	Start int

	// Len is the number of runes in the span.
	Len int

	// State is the lexer state of the span.
	State State
}

// End returns the rune index just past the span.
func (sp Span) End() int {
	return sp.Start + sp.Len
}

// Lex lexes one line of text starting from the given previous block state,
// returning the spans of the line and the block state for the next line.
// The spans are in order and exactly cover the line: a structural rune that
// causes a state change belongs to the span it ends. Lex never fails.
func Lex(txt []rune, prev BlockState) ([]Span, BlockState) {
	if prev.IsUndetermined() {
		if len(txt) == 0 {
			return nil, Undetermined
		}
		prev = InitialState(txt)
	}
	state, saved := prev.Current, prev.Saved
	switch state {
	case MaybeCommentEnd:
		state = Comment
	case MaybeComment:
		state = saved
	}

	var spans []Span
	add := func(start, end int, st State) {
		if end > start {
			spans = append(spans, Span{Start: start, Len: end - start, State: st})
		}
	}

	last := 0
	escaped := false
	for i, r := range txt {
		tok := alnum
		if state == Quote {
			if r == '\\' {
				escaped = true
			} else {
				if r == '"' && !escaped {
					tok = quote
				}
				escaped = false
			}
		} else {
			tok = classify(r)
		}

		next := transitions[state][tok]
		if next != state {
			switch {
			case next == Comment && state == MaybeComment:
				// the pending slash at last == i-1 opens the comment
			case next == Comment:
				add(last, i, state)
				last = i
			case next == MaybeComment:
				add(last, i, state)
				last = i
			default:
				end := i
				if next == MaybeCommentEnd || (state == MaybeCommentEnd && next != Comment) || state == Quote {
					end++
				}
				start := i
				if tok != alnum && next != Quote {
					start++
				}
				end = max(end, start)
				add(last, end, state)
				last = end
			}
		}

		switch {
		case next == pop:
			state = saved
		case state.IsPushable():
			saved = state
			state = next
		default:
			state = next
		}
	}
	add(last, len(txt), state)
	return spans, BlockState{Current: state, Saved: saved}
}

// LexString is [Lex] for a string line.
func LexString(s string, prev BlockState) ([]Span, BlockState) {
	return Lex([]rune(s), prev)
}

// LexLines lexes a sequence of lines starting from the given block state,
// returning the spans of each line and the block state at the end of each line.
func LexLines(lines []string, start BlockState) ([][]Span, []BlockState) {
	spans := make([][]Span, len(lines))
	states := make([]BlockState, len(lines))
	bs := start
	for i, ln := range lines {
		spans[i], bs = LexString(ln, bs)
		states[i] = bs
	}
	return spans, states
}

// SplitLines splits text into lines on \n, dropping a trailing \r on each line.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	return lines
}
