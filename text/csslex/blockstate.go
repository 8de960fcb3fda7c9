// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csslex

import "fmt"

// BlockState is the lexer context carried from the end of one line
// to the start of the next.
type BlockState struct {

	// Current is the state at the end of the line.
	Current State

	// Saved is the state to return to when the current quote or
	// comment closes.
	Saved State
}

// Undetermined is the block state before any non-empty line.
var Undetermined = BlockState{Current: NoState, Saved: NoState}

// IsUndetermined returns whether no context has been established yet.
func (bs BlockState) IsUndetermined() bool {
	return bs.Current == NoState
}

// Encode packs the block state into the single integer that text
// hosts store per line: Current in the low byte and Saved from bit 16.
// Undetermined encodes as -1.
func (bs BlockState) Encode() int {
	if bs.IsUndetermined() {
		return -1
	}
	return int(bs.Current) | int(bs.Saved)<<16
}

// DecodeBlockState is the inverse of [BlockState.Encode]. Negative
// values and values that do not hold a valid state pair decode as
// [Undetermined].
func DecodeBlockState(v int) BlockState {
	if v < 0 {
		return Undetermined
	}
	bs := BlockState{Current: State(v & 0xff), Saved: State(v >> 16)}
	if !bs.Current.IsValid() || !bs.Saved.IsPushable() {
		return Undetermined
	}
	return bs
}

func (bs BlockState) String() string {
	if bs.IsUndetermined() {
		return "Undetermined"
	}
	return fmt.Sprintf("%v/%v", bs.Current, bs.Saved)
}

// InitialState guesses the context of the first non-empty line. Both a
// full style sheet and an inline list of declarations are supported, and
// a line with a colon but no opening brace is taken to be the latter.
func InitialState(txt []rune) BlockState {
	hasColon, hasBrace := false, false
	for _, r := range txt {
		switch r {
		case ':':
			hasColon = true
		case '{':
			hasBrace = true
		}
	}
	if hasColon && !hasBrace {
		return BlockState{Current: Property, Saved: Property}
	}
	return BlockState{Current: Selector, Saved: Selector}
}
