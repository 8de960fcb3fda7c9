// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"fmt"
	"sync"
	"testing"

	"cogentcore.org/stylehi/text/csslex"
	"github.com/stretchr/testify/assert"
)

func TestDocumentCascade(t *testing.T) {
	d := NewDocument(NewHighlighter(DefaultColors()), "QFrame {\n  color: red;\n}\n")
	assert.Equal(t, 4, d.NumLines())
	assert.Equal(t, csslex.BlockState{Current: csslex.Property, Saved: csslex.Selector}, d.State(0))
	assert.Equal(t, csslex.Selector, d.State(2).Current)

	// opening a comment on the first line changes every following line
	assert.Equal(t, 4, d.SetLine(0, "/* QFrame {"))
	for i := range d.NumLines() {
		assert.Equal(t, csslex.Comment, d.State(i).Current, "line %d", i)
	}
	assert.Equal(t, []Role{Comment}, roles(d.Ranges(1)))

	// closing it again on line 2 re-highlights only the rest
	assert.Equal(t, 2, d.SetLine(2, "} */"))
	assert.Equal(t, csslex.Selector, d.State(2).Current)
	assert.Equal(t, csslex.Selector, d.State(3).Current)

	// an edit inside the comment does not change the end state
	assert.Equal(t, 1, d.SetLine(1, "  color: blue;"))
	assert.Equal(t, "/* QFrame {\n  color: blue;\n} */\n", d.Text())

	assert.Equal(t, 1, d.InsertLine(0, ""))
	assert.Equal(t, csslex.Undetermined, d.State(0))
	assert.Equal(t, "/* QFrame {", d.Line(1))
	assert.Equal(t, 1, d.DeleteLine(0))
	assert.Equal(t, "/* QFrame {", d.Line(0))

	assert.Equal(t, 1, d.InsertLine(d.NumLines(), "QLabel {"))
	assert.Equal(t, csslex.Property, d.State(d.NumLines()-1).Current)
}

func TestDocumentMatchesLexLines(t *testing.T) {
	src := "QPushButton {\n  border: 1px solid; /* a\n  */ color: \"x\\\"y\";\n}\nQPushButton:pressed { }"
	d := NewDocument(NewHighlighter(DefaultColors()), src)
	_, states := csslex.LexLines(csslex.SplitLines(src), csslex.Undetermined)
	for i, bs := range states {
		assert.Equal(t, bs, d.State(i), "line %d", i)
	}
}

func TestDocumentConcurrent(t *testing.T) {
	d := NewDocument(NewHighlighter(DefaultColors()), "a {\nb: c;\n}")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				d.SetLine(1, fmt.Sprintf("b: %d;", j))
				_ = d.Ranges(1)
				_ = d.State(2)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 3, d.NumLines())
	assert.Equal(t, csslex.Selector, d.State(2).Current)
}
