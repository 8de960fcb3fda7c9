// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"sync"
	"testing"

	"cogentcore.org/stylehi/text/csslex"
	"github.com/stretchr/testify/assert"
)

// testHost is a [BlockStore] and [Formatter] for a sequence of lines.
type testHost struct {
	states  []int
	formats [][]FormatRange
	cur     int
}

func (th *testHost) PreviousBlockState() int {
	if th.cur == 0 {
		return -1
	}
	return th.states[th.cur-1]
}

func (th *testHost) SetCurrentBlockState(state int) {
	th.states[th.cur] = state
}

func (th *testHost) SetFormat(start, length int, f Format) {
	th.formats[th.cur] = append(th.formats[th.cur], FormatRange{Start: start, Len: length, Format: f})
}

func (th *testHost) highlight(hi *Highlighter, lines []string) {
	th.states = make([]int, len(lines))
	th.formats = make([][]FormatRange, len(lines))
	for i, ln := range lines {
		th.cur = i
		hi.HighlightBlock([]rune(ln), th, th)
	}
}

func TestHighlightBlock(t *testing.T) {
	hi := NewHighlighter(DefaultColors())
	lines := []string{"", "QLabel { /* big", "text */ font-size: 20px; }", ""}
	th := &testHost{}
	th.highlight(hi, lines)

	assert.Equal(t, -1, th.states[0])
	assert.Nil(t, th.formats[0])
	assert.Equal(t, csslex.BlockState{Current: csslex.Comment, Saved: csslex.Property}, csslex.DecodeBlockState(th.states[1]))
	assert.Equal(t, csslex.BlockState{Current: csslex.Selector, Saved: csslex.Property}, csslex.DecodeBlockState(th.states[2]))
	assert.Equal(t, th.states[2], th.states[3])

	for i, ln := range lines {
		pos := 0
		for _, fr := range th.formats[i] {
			assert.Equal(t, pos, fr.Start)
			pos = fr.End()
		}
		assert.Equal(t, len([]rune(ln)), pos)
	}

	f1 := th.formats[1]
	assert.Equal(t, []Role{Selector, Property, Comment}, roles(f1))
	assert.Equal(t, hi.Colors().Comment, f1[2].Style)
	assert.Equal(t, []Role{Comment, Comment, Property, Value, Property}, roles(th.formats[2]))
}

func roles(frs []FormatRange) []Role {
	rs := make([]Role, len(frs))
	for i, fr := range frs {
		rs[i] = fr.Role
	}
	return rs
}

func TestRangesPure(t *testing.T) {
	hi := NewHighlighter(DefaultColors())
	txt := []rune(`QComboBox::drop-down { image: url("arrow.png") }`)
	r1, s1 := hi.Ranges(txt, -1)
	r2, s2 := hi.Ranges(txt, -1)
	assert.Equal(t, r1, r2)
	assert.Equal(t, s1, s2)

	r, s := hi.Ranges(nil, -1)
	assert.Nil(t, r)
	assert.Equal(t, -1, s)
}

func TestHighlighterConcurrent(t *testing.T) {
	hi := NewHighlighter(DefaultColors())
	dark := NewHighlighter(DefaultColors().ForTheme(true))
	lines := []string{"QWidget {", "  color: red; /* a", "  b */", "}"}
	want := &testHost{}
	want.highlight(hi, lines)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(h *Highlighter) {
			defer wg.Done()
			th := &testHost{}
			th.highlight(h, lines)
			assert.Equal(t, want.states, th.states)
			assert.Equal(t, len(want.formats), len(th.formats))
		}([]*Highlighter{hi, dark}[i%2])
	}
	wg.Wait()
}
