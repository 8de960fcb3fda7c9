// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"strings"
	"sync"

	"cogentcore.org/stylehi/text/csslex"
)

// Document is a multi-line style sheet that is kept highlighted as its
// lines are edited. After an edit, lines are highlighted again from the
// edited line down, only as far as the state carried into the next line
// changes, as a comment opened on one line affects all following lines.
// It is safe for concurrent use.
type Document struct {
	hi *Highlighter

	mu    sync.Mutex
	lines []docLine
}

// docLine is one line of a [Document] with its highlighting.
type docLine struct {
	text []rune

	// start is the state of the previous line that this line was
	// highlighted from, and end the state stored for this line.
	start, end int

	// lexed is false until the line has been highlighted.
	lexed bool

	ranges []FormatRange
}

// lineStore is the [BlockStore] of one line of a [Document].
type lineStore struct {
	prev int
	cur  *int
}

func (ls lineStore) PreviousBlockState() int     { return ls.prev }
func (ls lineStore) SetCurrentBlockState(bs int) { *ls.cur = bs }

// rangeRecorder is a [Formatter] that records the formats of a line.
type rangeRecorder []FormatRange

func (rr *rangeRecorder) SetFormat(start, length int, f Format) {
	*rr = append(*rr, FormatRange{Start: start, Len: length, Format: f})
}

// NewDocument returns a new highlighted [Document] with the given text.
func NewDocument(hi *Highlighter, text string) *Document {
	d := &Document{hi: hi}
	d.SetText(text)
	return d
}

// SetText replaces the whole text of the document.
func (d *Document) SetText(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lines := csslex.SplitLines(text)
	d.lines = make([]docLine, len(lines))
	for i, ln := range lines {
		d.lines[i].text = []rune(ln)
	}
	d.rehighlight(0)
}

// Text returns the text of the document, with lines joined by \n.
func (d *Document) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	var b strings.Builder
	for i, ln := range d.lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(ln.text))
	}
	return b.String()
}

// NumLines returns the number of lines in the document.
func (d *Document) NumLines() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.lines)
}

// Line returns the text of line i.
func (d *Document) Line(i int) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return string(d.lines[i].text)
}

// Ranges returns the format ranges of line i.
func (d *Document) Ranges(i int) []FormatRange {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lines[i].ranges
}

// State returns the lexer state at the end of line i.
func (d *Document) State(i int) csslex.BlockState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return csslex.DecodeBlockState(d.lines[i].end)
}

// SetLine replaces the text of line i, returning the number of lines
// that were highlighted again.
func (d *Document) SetLine(i int, text string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lines[i] = docLine{text: []rune(text)}
	return d.rehighlight(i)
}

// InsertLine inserts a new line before line i (at the end for i == NumLines),
// returning the number of lines that were highlighted again.
func (d *Document) InsertLine(i int, text string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lines = append(d.lines, docLine{})
	copy(d.lines[i+1:], d.lines[i:])
	d.lines[i] = docLine{text: []rune(text)}
	return d.rehighlight(i)
}

// DeleteLine removes line i, returning the number of lines that were
// highlighted again.
func (d *Document) DeleteLine(i int) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lines = append(d.lines[:i], d.lines[i+1:]...)
	return d.rehighlight(i)
}

// rehighlight highlights lines from line `from` until a line is reached
// whose stored start state is unchanged. Must be called with mu held.
func (d *Document) rehighlight(from int) int {
	n := 0
	for i := from; i < len(d.lines); i++ {
		prev := -1
		if i > 0 {
			prev = d.lines[i-1].end
		}
		ln := &d.lines[i]
		if i > from && ln.lexed && ln.start == prev {
			break
		}
		var rr rangeRecorder
		ln.start = prev
		d.hi.HighlightBlock(ln.text, lineStore{prev: prev, cur: &ln.end}, &rr)
		ln.ranges = rr
		ln.lexed = true
		n++
	}
	return n
}
