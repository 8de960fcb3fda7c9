// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sheetcheck checks toolkit style sheets for errors before they
// are applied, as done by a style sheet editor. Both full style sheets and
// inline declaration lists (the form set directly on a single widget) are
// supported.
package sheetcheck

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"cogentcore.org/stylehi/base/errors"
	"cogentcore.org/stylehi/text/csslex"
	dcss "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Mode is the form of a style sheet.
type Mode int32

const (
	// Full is a style sheet of rules with selectors.
	Full Mode = iota

	// Inline is a list of declarations without selectors or braces.
	Inline
)

func (m Mode) String() string {
	if m == Inline {
		return "inline"
	}
	return "full"
}

// Issue is an error or warning at a position in a style sheet.
// Line and Col are 1-based; a zero Line means the position is not known.
type Issue struct {
	Line int
	Col  int
	Msg  string
}

func (is Issue) String() string {
	if is.Line == 0 {
		return is.Msg
	}
	return fmt.Sprintf("%d:%d: %s", is.Line, is.Col, is.Msg)
}

// Report is the result of checking a style sheet.
type Report struct {
	Mode Mode

	// Errors make the style sheet invalid.
	Errors []Issue

	// Warnings are for constructs that may not be supported
	// but do not make the style sheet invalid.
	Warnings []Issue

	// Rules is the number of rules in a full style sheet.
	Rules int

	// Declarations is the total number of declarations.
	Declarations int
}

// Valid returns whether the style sheet has no errors.
func (r *Report) Valid() bool {
	return len(r.Errors) == 0
}

// Err returns the errors of the report joined into one error,
// or nil if the style sheet is valid.
func (r *Report) Err() error {
	if r.Valid() {
		return nil
	}
	errs := make([]error, len(r.Errors))
	for i, is := range r.Errors {
		errs[i] = errors.New(is.String())
	}
	return errors.Join(errs...)
}

func (r *Report) String() string {
	if r.Valid() {
		return "Valid Style Sheet"
	}
	return "Invalid Style Sheet: " + r.Errors[0].String()
}

func (r *Report) errorf(line, col int, format string, args ...any) {
	r.Errors = append(r.Errors, Issue{Line: line, Col: col, Msg: fmt.Sprintf(format, args...)})
}

func (r *Report) warnf(line, col int, format string, args ...any) {
	r.Warnings = append(r.Warnings, Issue{Line: line, Col: col, Msg: fmt.Sprintf(format, args...)})
}

// Check checks the given style sheet, detecting its [Mode].
func Check(sheet string) *Report {
	lines := csslex.SplitLines(sheet)
	spans, states := csslex.LexLines(lines, csslex.Undetermined)
	r := &Report{Mode: detectMode(lines, spans)}
	checkStructure(r, lines, spans, states)
	checkGrammar(r, sheet)
	checkRules(r, sheet)
	slog.Debug("sheetcheck", "mode", r.Mode, "rules", r.Rules, "declarations", r.Declarations, "errors", len(r.Errors), "warnings", len(r.Warnings))
	return r
}

// DetectMode returns [Inline] if the style sheet has no opening brace
// outside of comments and strings, and [Full] otherwise.
func DetectMode(sheet string) Mode {
	lines := csslex.SplitLines(sheet)
	spans, _ := csslex.LexLines(lines, csslex.Undetermined)
	return detectMode(lines, spans)
}

func detectMode(lines []string, spans [][]csslex.Span) Mode {
	mode := Inline
	forStructural(lines, spans, func(line, col int, r rune) {
		if r == '{' {
			mode = Full
		}
	})
	return mode
}

// forStructural calls fun with the 1-based position of each rune of the
// style sheet that is not inside a comment or string. The rune after a
// lone '/' is in a MaybeComment span and is structural.
func forStructural(lines []string, spans [][]csslex.Span, fun func(line, col int, r rune)) {
	for li, ln := range lines {
		rs := []rune(ln)
		for _, sp := range spans[li] {
			switch sp.State {
			case csslex.Quote, csslex.Comment, csslex.MaybeCommentEnd:
				continue
			}
			for i := sp.Start; i < sp.End(); i++ {
				fun(li+1, i+1, rs[i])
			}
		}
	}
}

// checkStructure checks that braces are balanced and that comments and
// strings are closed, using the lexer states.
func checkStructure(r *Report, lines []string, spans [][]csslex.Span, states []csslex.BlockState) {
	type pos struct{ line, col int }
	var open []pos
	forStructural(lines, spans, func(line, col int, c rune) {
		switch c {
		case '{':
			if r.Mode == Inline {
				return
			}
			open = append(open, pos{line, col})
		case '}':
			if r.Mode == Inline || len(open) == 0 {
				r.errorf(line, col, "unexpected '}'")
				return
			}
			open = open[:len(open)-1]
		}
	})
	for _, p := range open {
		r.errorf(p.line, p.col, "missing '}' for this '{'")
	}
	if len(states) == 0 {
		return
	}
	last := len(lines)
	col := len([]rune(lines[last-1])) + 1
	switch states[last-1].Current {
	case csslex.Comment, csslex.MaybeCommentEnd:
		r.errorf(last, col, "unterminated comment")
	case csslex.Quote:
		r.errorf(last, col, "unterminated string")
	}
}

// checkGrammar checks the CSS grammar of the style sheet, reporting the
// first grammar error.
func checkGrammar(r *Report, sheet string) {
	p := css.NewParser(parse.NewInputString(sheet), r.Mode == Inline)
	for {
		gt, _, _ := p.Next()
		if gt != css.ErrorGrammar {
			continue
		}
		err := p.Err()
		if err == nil || err == io.EOF {
			return
		}
		var perr *parse.Error
		if errors.As(err, &perr) {
			r.errorf(perr.Line, perr.Column, "%s", perr.Message)
		} else {
			r.errorf(0, 0, "%v", err)
		}
		return
	}
}

// checkRules counts the rules and declarations of the style sheet
// and checks their selectors.
func checkRules(r *Report, sheet string) {
	if r.Mode == Inline {
		// the last declaration only gets a value when terminated
		if !strings.HasSuffix(strings.TrimSpace(sheet), ";") {
			sheet += "\n;"
		}
		decls, err := parser.ParseDeclarations(sheet)
		if err != nil {
			r.errorf(0, 0, "%v", err)
			return
		}
		r.Declarations = len(decls)
		checkDeclarations(r, decls)
		return
	}
	ss, err := parser.Parse(sheet)
	if err != nil {
		r.errorf(0, 0, "%v", err)
		return
	}
	checkRuleList(r, ss.Rules)
}

func checkRuleList(r *Report, rules []*dcss.Rule) {
	for _, rule := range rules {
		r.Rules++
		r.Declarations += len(rule.Declarations)
		checkDeclarations(r, rule.Declarations)
		if rule.Kind == dcss.AtRule {
			r.warnf(0, 0, "at-rule %s is not supported", rule.Name)
			checkRuleList(r, rule.Rules)
			continue
		}
		for _, sel := range rule.Selectors {
			checkSelector(r, sel)
		}
	}
}

func checkDeclarations(r *Report, decls []*dcss.Declaration) {
	for _, d := range decls {
		if strings.TrimSpace(d.Value) == "" {
			r.errorf(0, 0, "property %q has no value", d.Property)
		}
	}
}
