// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sheetcheck

import (
	"fmt"
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	selcss "github.com/ericchiang/css"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// PseudoStates are the pseudo-states that may follow a single colon,
// optionally negated with '!'.
var PseudoStates = []string{
	"active", "adjoins-item", "alternate", "bottom", "checked", "closable",
	"closed", "default", "disabled", "editable", "edit-focus", "enabled",
	"exclusive", "first", "flat", "floatable", "focus", "has-children",
	"has-siblings", "horizontal", "hover", "indeterminate", "last", "left",
	"maximized", "middle", "minimized", "movable", "no-frame", "non-exclusive",
	"off", "on", "only-one", "open", "next-selected", "pressed",
	"previous-selected", "read-only", "right", "selected", "top", "unchecked",
	"vertical", "window",
}

// SubControls are the sub-controls that may follow a double colon.
var SubControls = []string{
	"add-line", "add-page", "branch", "chunk", "close-button", "corner",
	"down-arrow", "down-button", "drop-down", "float-button", "groove",
	"indicator", "handle", "icon", "item", "left-arrow", "left-corner",
	"menu-arrow", "menu-button", "menu-indicator", "right-arrow", "pane",
	"right-corner", "scroller", "section", "separator", "sub-line", "sub-page",
	"tab", "tab-bar", "tear", "tearoff", "text", "title", "up-arrow", "up-button",
}

// typePlaceholder replaces the widget type names of a selector before it is
// compiled, as the selector compiler only knows HTML element names.
const typePlaceholder = "div"

// minSuggestSimilarity is the similarity a known name needs
// to be suggested for an unknown one.
const minSuggestSimilarity = 0.6

// pseudo is a pseudo-state or sub-control of a selector.
type pseudo struct {
	name    string
	sub     bool
	negated bool
}

// checkSelector checks one selector: its pseudo-states and sub-controls
// must be known, and the rest must be a valid CSS selector. Both only
// give warnings, as hosts may support more than the standard set.
func checkSelector(r *Report, sel string) {
	sel = strings.TrimSpace(sel)
	base, ps := splitSelector(sel)
	for _, p := range ps {
		name := strings.ToLower(p.name)
		switch {
		case name == "":
			r.warnf(0, 0, "selector %q: missing name after ':'", sel)
		case p.sub:
			if p.negated {
				r.warnf(0, 0, "selector %q: sub-control %q cannot be negated", sel, name)
			}
			if !slices.Contains(SubControls, name) {
				r.warnf(0, 0, "selector %q: unknown sub-control %q%s", sel, name, suggest(name, SubControls))
			}
		default:
			if !slices.Contains(PseudoStates, name) {
				r.warnf(0, 0, "selector %q: unknown pseudo-state %q%s", sel, name, suggest(name, PseudoStates))
			}
		}
	}
	if base == "" {
		base = "*"
	}
	if _, err := selcss.Parse(base); err != nil {
		r.warnf(0, 0, "selector %q: %v", sel, err)
	}
}

// splitSelector returns the selector without its pseudo-states and
// sub-controls, with type names replaced by [typePlaceholder], and the
// pseudo-states and sub-controls that were removed. Attribute values
// are kept as they are.
func splitSelector(sel string) (string, []pseudo) {
	var b strings.Builder
	var ps []pseudo
	l := css.NewLexer(parse.NewInputString(sel))
	compound := true // at the start of a compound selector
	brackets := 0
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			break
		}
		if brackets > 0 {
			b.Write(data)
			switch tt {
			case css.LeftBracketToken:
				brackets++
			case css.RightBracketToken:
				brackets--
			}
			continue
		}
		switch tt {
		case css.ColonToken:
			ps = append(ps, lexPseudo(l))
			compound = false
		case css.IdentToken:
			if compound {
				b.WriteString(typePlaceholder)
			} else {
				b.Write(data)
			}
			compound = false
		case css.WhitespaceToken, css.CommentToken:
			b.WriteByte(' ')
			compound = true
		case css.DelimToken:
			b.Write(data)
			compound = len(data) == 1 && strings.ContainsRune(">+~", rune(data[0]))
		case css.LeftBracketToken:
			b.Write(data)
			brackets = 1
			compound = false
		default:
			b.Write(data)
			compound = false
		}
	}
	return strings.TrimSpace(b.String()), ps
}

// lexPseudo reads the rest of a pseudo-state or sub-control
// after its first colon.
func lexPseudo(l *css.Lexer) pseudo {
	var p pseudo
	tt, data := l.Next()
	if tt == css.ColonToken {
		p.sub = true
		tt, data = l.Next()
	}
	if tt == css.DelimToken && string(data) == "!" {
		p.negated = true
		tt, data = l.Next()
	}
	switch tt {
	case css.IdentToken:
		p.name = string(data)
	case css.FunctionToken:
		p.name = strings.TrimSuffix(string(data), "(")
		for depth := 1; depth > 0; {
			tt, _ = l.Next()
			switch tt {
			case css.ErrorToken:
				return p
			case css.FunctionToken, css.LeftParenthesisToken:
				depth++
			case css.RightParenthesisToken:
				depth--
			}
		}
	}
	return p
}

// suggest returns a hint naming the known name most similar to name,
// or "" if none is similar enough.
func suggest(name string, known []string) string {
	lev := metrics.NewLevenshtein()
	best, score := "", 0.0
	for _, k := range known {
		if s := strutil.Similarity(name, k, lev); s > score {
			best, score = k, s
		}
	}
	if score < minSuggestSimilarity {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", best)
}
