// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csslex

//go:generate stringer -type=State

// State is the lexical context of the style sheet lexer at a given rune.
type State int32

const (
	// NoState marks an undetermined state: no non-empty line has been
	// seen yet, so it is not known whether the text is a full style sheet
	// or an inline declaration list.
	NoState State = -1

	// Selector is the selector part of a rule, before the opening brace.
	Selector State = iota - 1

	// Property is a property name inside a rule body or inline list.
	Property

	// Value is a property value, after the colon.
	Value

	// Pseudo is the colon that starts a pseudo-state in a selector.
	Pseudo

	// Pseudo1 is a single-colon pseudo-state name, as in :hover.
	Pseudo1

	// Pseudo2 is a double-colon sub-control name, as in ::drop-down.
	Pseudo2

	// Quote is inside a double-quoted string.
	Quote

	// MaybeComment is a slash that may start a block comment.
	MaybeComment

	// Comment is inside a block comment.
	Comment

	// MaybeCommentEnd is a star inside a comment that may end it.
	MaybeCommentEnd

	StatesN
)

// IsPushable returns whether the lexer saves this state when it enters
// a nested context (quote or comment), so that it can return to it when
// that context closes. Only the structural states are pushable.
func (st State) IsPushable() bool {
	switch st {
	case Selector, Property, Value, Pseudo, Pseudo1, Pseudo2:
		return true
	}
	return false
}

// IsValid returns whether st is one of the defined lexer states.
func (st State) IsValid() bool {
	return st >= Selector && st < StatesN
}

// token is the character class used to index the transition table.
type token int32

const (
	alnum token = iota
	lbrace
	rbrace
	colon
	semicolon
	comma
	quote
	slash
	star

	tokensN
)

// classify returns the token class of a rune outside of a quote.
func classify(r rune) token {
	switch r {
	case '{':
		return lbrace
	case '}':
		return rbrace
	case ':':
		return colon
	case ';':
		return semicolon
	case ',':
		return comma
	case '"':
		return quote
	case '/':
		return slash
	case '*':
		return star
	}
	return alnum
}

// pop in the transition table means return to the saved state.
const pop = NoState

// transitions is the next state for each state (rows) and token (columns):
// alnum, {, }, :, ;, ",", ", /, *.
var transitions = [StatesN][tokensN]State{
	Selector:        {Selector, Property, Selector, Pseudo, Property, Selector, Quote, MaybeComment, Selector},
	Property:        {Property, Property, Selector, Value, Property, Property, Quote, MaybeComment, Property},
	Value:           {Value, Property, Selector, Value, Property, Value, Quote, MaybeComment, Value},
	Pseudo:          {Pseudo1, Property, Selector, Pseudo2, Selector, Selector, Quote, MaybeComment, Pseudo},
	Pseudo1:         {Pseudo1, Property, Selector, Pseudo, Selector, Selector, Quote, MaybeComment, Pseudo1},
	Pseudo2:         {Pseudo2, Property, Selector, Pseudo, Selector, Selector, Quote, MaybeComment, Pseudo2},
	Quote:           {Quote, Quote, Quote, Quote, Quote, Quote, pop, Quote, Quote},
	MaybeComment:    {pop, pop, pop, pop, pop, pop, pop, pop, Comment},
	Comment:         {Comment, Comment, Comment, Comment, Comment, Comment, Comment, Comment, MaybeCommentEnd},
	MaybeCommentEnd: {Comment, Comment, Comment, Comment, Comment, Comment, Comment, pop, MaybeCommentEnd},
}
