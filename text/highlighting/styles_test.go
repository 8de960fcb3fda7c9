// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"image/color"
	"path/filepath"
	"testing"

	"cogentcore.org/stylehi/colors"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardSchemes(t *testing.T) {
	c, err := AvailableScheme("")
	require.NoError(t, err)
	assert.Equal(t, DefaultColors(), c)

	names := SchemeNames()
	assert.Contains(t, names, "default")
	assert.Contains(t, names, "dark")
	assert.Contains(t, names, "mono")

	mono, err := AvailableScheme("mono")
	require.NoError(t, err)
	assert.Equal(t, Yes, mono.Pseudo2.Underline)
	assert.True(t, mono.Value.IsZero())

	_, err = AvailableScheme("nope")
	assert.ErrorIs(t, err, ErrUnknownScheme)
}

func TestCustomSchemes(t *testing.T) {
	mine := DefaultColors()
	mine.Selector = StyleEntry{Color: color.RGBA{0x12, 0x34, 0x56, 0xff}, Bold: Yes}
	AddCustomSchemes(Schemes{"mine": &mine})
	got, err := AvailableScheme("mine")
	require.NoError(t, err)
	assert.Equal(t, mine, got)
	assert.Contains(t, SchemeNames(), "mine")
}

func TestChromaSchemes(t *testing.T) {
	c, err := AvailableScheme(ChromaPrefix + "monokai")
	require.NoError(t, err)
	assert.False(t, colors.IsNil(c.Selector.Color))
	assert.False(t, colors.IsNil(c.Comment.Color))
	assert.Contains(t, ChromaStyleNames(), "monokai")

	_, err = FromChroma("no-such-style")
	assert.ErrorIs(t, err, ErrUnknownScheme)
}

func TestChromaTokens(t *testing.T) {
	assert.Equal(t, chroma.NameTag, ChromaTokens[Selector])
	assert.Equal(t, chroma.NameAttribute, ChromaTokens[Property])
	assert.Equal(t, chroma.LiteralNumber, ChromaTokens[Value])
	assert.Equal(t, chroma.NameDecorator, ChromaTokens[Pseudo1])
	assert.Equal(t, chroma.NameFunction, ChromaTokens[Pseudo2])
	assert.Equal(t, chroma.LiteralString, ChromaTokens[Quote])
	assert.Equal(t, chroma.Comment, ChromaTokens[Comment])

	c, err := FromChroma("monokai")
	require.NoError(t, err)
	cs := styles.Registry["monokai"]
	assert.Equal(t, StyleEntryFromChroma(cs.Get(chroma.LiteralNumber)), c.Value)
	assert.Equal(t, StyleEntryFromChroma(cs.Get(chroma.LiteralString)), c.Quote)
	assert.NotEqual(t, c.Value, c.Quote)
}

func TestColorsFiles(t *testing.T) {
	dc := DefaultColors()
	dc.Quote.Background = color.RGBA{0xff, 0xff, 0xe0, 0xff}
	dir := t.TempDir()
	for _, ext := range []string{".toml", ".yaml", ".json", ".YML"} {
		fn := filepath.Join(dir, "my.colors"+ext)
		require.NoError(t, dc.Save(fn), ext)
		var got Colors
		require.NoError(t, got.Open(fn), ext)
		assert.Equal(t, dc, got, ext)
	}
	assert.ErrorIs(t, dc.Save(filepath.Join(dir, "colors.ini")), ErrUnknownFormat)
	var c Colors
	assert.ErrorIs(t, c.Open(filepath.Join(dir, "colors.ini")), ErrUnknownFormat)
}

func TestSchemesFiles(t *testing.T) {
	dc := DefaultColors()
	ss := Schemes{"a": &dc}
	fn := filepath.Join(t.TempDir(), "schemes.toml")
	require.NoError(t, ss.Save(fn))
	var got Schemes
	require.NoError(t, got.Open(fn))
	assert.Equal(t, []string{"a"}, got.Names())
	assert.Equal(t, dc, *got["a"])
}
