// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/stylehi/base/errors"
	"cogentcore.org/stylehi/text/highlighting"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runArgs(t *testing.T, args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr, termenv.Ascii)
	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, name, content string) string {
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

const sheet = "QLabel { color: red; }\n"

func TestHighlightSpans(t *testing.T) {
	fn := writeFile(t, "a.qss", sheet)
	code, out, _ := runArgs(t, "-q", "highlight", "-f", "spans", fn)
	assert.Equal(t, 0, code)
	assert.Equal(t, "1 Selector/Property: 0+8 Selector 8+7 Property 15+5 Value 20+2 Property\n2 Selector/Property:\n", out)
}

func TestHighlightANSIPlain(t *testing.T) {
	fn := writeFile(t, "a.qss", sheet)
	code, out, _ := runArgs(t, "-q", "highlight", "--format", "ansi", fn)
	assert.Equal(t, 0, code)
	assert.Equal(t, sheet+"\n", out)
}

func TestHighlightHTML(t *testing.T) {
	fn := writeFile(t, "a.qss", sheet)
	code, out, _ := runArgs(t, "-q", "highlight", fn)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, ".sel {")
	assert.Contains(t, out, `<span class="sel">QLabel {</span>`)
	assert.Contains(t, out, "</pre>")
}

func TestHighlightJSON(t *testing.T) {
	fn := writeFile(t, "a.qss", sheet)
	code, out, _ := runArgs(t, "-q", "highlight", "-f", "json", fn)
	require.Equal(t, 0, code)
	var jd jsonDoc
	require.NoError(t, json.Unmarshal([]byte(out), &jd))
	assert.Equal(t, fn, jd.File)
	require.Len(t, jd.Lines, 2)
	assert.Equal(t, "QLabel { color: red; }", jd.Lines[0].Text)
	require.Len(t, jd.Lines[0].Spans, 4)
	assert.Equal(t, jsonSpan{Start: 15, Len: 5, Role: "Value", Style: jd.Lines[0].Spans[2].Style}, jd.Lines[0].Spans[2])
}

func TestHighlightErrors(t *testing.T) {
	fn := writeFile(t, "a.qss", sheet)
	code, _, _ := runArgs(t, "-q", "highlight", "-s", "nope", fn)
	assert.Equal(t, 1, code)

	code, _, stderr := runArgs(t, "-q", "highlight", "-f", "pdf", fn)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "pdf")

	code, _, _ = runArgs(t, "-q", "highlight", filepath.Join(t.TempDir(), "missing.qss"))
	assert.Equal(t, 1, code)
}

func TestConfigFile(t *testing.T) {
	fn := writeFile(t, "a.qss", sheet)
	cfg := writeFile(t, "stylehi.toml", "Format = \"spans\"\n")
	code, out, _ := runArgs(t, "-q", "--config", cfg, "highlight", fn)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "1 Selector/Property: 0+8 Selector")

	code, _, _ = runArgs(t, "-q", "--config", filepath.Join(t.TempDir(), "none.toml"), "highlight", fn)
	assert.Equal(t, 1, code)
}

func TestCheck(t *testing.T) {
	good := writeFile(t, "good.qss", sheet)
	code, out, _ := runArgs(t, "-q", "check", good)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, good+": Valid Style Sheet (full, 1 rules, 1 declarations)")

	bad := writeFile(t, "bad.qss", "QLabel { color: red;\n")
	code, out, _ = runArgs(t, "-q", "check", good, bad)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, bad+": Invalid Style Sheet: ")
	assert.Contains(t, out, bad+":1:8: missing '}' for this '{'")
}

func TestSchemes(t *testing.T) {
	code, out, _ := runArgs(t, "-q", "schemes")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "default\n")
	assert.NotContains(t, out, "chroma:")

	code, out, _ = runArgs(t, "-q", "schemes", "--chroma")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "chroma:monokai\n")
}

func TestUsage(t *testing.T) {
	code, out, _ := runArgs(t, "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "highlight")

	code, _, _ = runArgs(t)
	assert.Equal(t, 1, code)

	code, _, _ = runArgs(t, "-q", "check")
	assert.Equal(t, 1, code)
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderWriteError(t *testing.T) {
	hi := highlighting.NewHighlighter(highlighting.DefaultColors())
	doc := highlighting.NewDocument(hi, sheet)
	for _, format := range []string{"html", "ansi", "spans", "json"} {
		for _, standalone := range []bool{false, true} {
			r := renderer{w: failWriter{}, cfg: &Config{Format: format, Standalone: standalone}, profile: termenv.Ascii, hi: hi}
			assert.ErrorContains(t, r.render("a.qss", doc), "disk full", format)
		}
	}
}
