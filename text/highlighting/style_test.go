// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"image/color"
	"testing"

	"cogentcore.org/stylehi/text/csslex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleEntryText(t *testing.T) {
	se, err := ParseStyleEntry("bold #8b0000 bg:#ffffe0")
	require.NoError(t, err)
	assert.Equal(t, StyleEntry{Color: color.RGBA{0x8b, 0, 0, 0xff}, Background: color.RGBA{0xff, 0xff, 0xe0, 0xff}, Bold: Yes}, se)
	assert.Equal(t, "bold #8b0000 bg:#ffffe0", se.String())
	assert.Equal(t, "color: #8b0000; background-color: #ffffe0; font-weight: bold", se.ToCSS())

	se, err = ParseStyleEntry("nobold italic darkred")
	require.NoError(t, err)
	assert.Equal(t, "nobold italic #800000", se.String())

	se, err = ParseStyleEntry("")
	require.NoError(t, err)
	assert.True(t, se.IsZero())

	_, err = ParseStyleEntry("bold #zzzzzz")
	assert.Error(t, err)

	var ue StyleEntry
	require.NoError(t, ue.UnmarshalText([]byte("underline #00f")))
	b, err := ue.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "underline #0000ff", string(b))
}

func TestInherit(t *testing.T) {
	c := Colors{
		Selector: StyleEntry{Color: color.RGBA{0xff, 0, 0, 0xff}, Bold: Yes},
		Pseudo1:  StyleEntry{Italic: Yes},
		Pseudo2:  StyleEntry{Color: color.RGBA{0, 0, 0xff, 0xff}, Bold: No},
	}
	assert.Equal(t, StyleEntry{Color: color.RGBA{0xff, 0, 0, 0xff}, Bold: Yes, Italic: Yes}, c.Entry(Pseudo1))
	assert.Equal(t, StyleEntry{Color: color.RGBA{0, 0, 0xff, 0xff}, Bold: No}, c.Entry(Pseudo2))
	assert.True(t, c.Entry(None).IsZero())
	assert.True(t, c.Entry(Value).IsZero())
}

func TestRoleForState(t *testing.T) {
	want := map[csslex.State]Role{
		csslex.Selector:        Selector,
		csslex.Property:        Property,
		csslex.Value:           Value,
		csslex.Pseudo:          None,
		csslex.Pseudo1:         Pseudo1,
		csslex.Pseudo2:         Pseudo2,
		csslex.Quote:           Quote,
		csslex.MaybeComment:    None,
		csslex.Comment:         Comment,
		csslex.MaybeCommentEnd: Comment,
	}
	for st, role := range want {
		assert.Equal(t, role, RoleForState(st), st.String())
	}
	dc := DefaultColors()
	assert.Equal(t, dc.Comment, dc.ForState(csslex.MaybeCommentEnd))
}

func TestForTheme(t *testing.T) {
	dc := DefaultColors()
	dark := dc.ForTheme(true)
	assert.NotEqual(t, dc.Value.Color, dark.Value.Color)
	assert.Equal(t, dc.Comment.Italic, dark.Comment.Italic)
	// the receiver is not modified
	assert.Equal(t, DefaultColors(), dc)
}
