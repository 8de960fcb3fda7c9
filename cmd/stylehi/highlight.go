// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/stylehi/base/iox/jsonx"
	"cogentcore.org/stylehi/text/highlighting"
	"github.com/jessevdk/go-flags"
	"github.com/muesli/termenv"
)

type highlightCmd struct {
	app *app

	Format *string         `short:"f" long:"format" description:"output format" choice:"html" choice:"ansi" choice:"spans" choice:"json"`
	Scheme *string         `short:"s" long:"scheme" description:"color scheme name, or chroma:<style> for a chroma style"`
	Colors *flags.Filename `long:"colors" description:"scheme file (toml, yaml or json) to use instead of a named scheme"`
	Dark   bool            `short:"d" long:"dark" description:"adjust colors for a dark background"`

	Positional struct {
		Files []flags.Filename `positional-arg-name:"file" required:"1" description:"style sheet file"`
	} `positional-args:"yes"`
}

func (c *highlightCmd) Execute(args []string) error {
	cfg := c.app.cfg
	if c.Format != nil {
		cfg.Format = *c.Format
	}
	if c.Scheme != nil {
		cfg.Scheme = *c.Scheme
	}
	if c.Colors != nil {
		cfg.Colors = string(*c.Colors)
	}
	cfg.Dark = cfg.Dark || c.Dark
	hi, err := newHighlighter(&cfg)
	if err != nil {
		return err
	}
	r := renderer{w: c.app.stdout, cfg: &cfg, profile: c.app.profile, hi: hi}
	for _, fn := range c.Positional.Files {
		b, err := os.ReadFile(string(fn))
		if err != nil {
			return err
		}
		doc := highlighting.NewDocument(hi, string(b))
		slog.Info("highlighted", "file", fn, "lines", doc.NumLines())
		if err := r.render(string(fn), doc); err != nil {
			return err
		}
	}
	return nil
}

// newHighlighter returns a highlighter for the colors selected by cfg.
func newHighlighter(cfg *Config) (*highlighting.Highlighter, error) {
	var colors highlighting.Colors
	if cfg.Colors != "" {
		if err := colors.Open(cfg.Colors); err != nil {
			return nil, err
		}
	} else {
		var err error
		colors, err = highlighting.AvailableScheme(cfg.Scheme)
		if err != nil {
			return nil, err
		}
	}
	if cfg.Dark {
		colors = colors.ForTheme(true)
	}
	return highlighting.NewHighlighter(colors), nil
}

type renderer struct {
	w       io.Writer
	cfg     *Config
	profile termenv.Profile
	hi      *highlighting.Highlighter
}

func (r *renderer) render(name string, doc *highlighting.Document) error {
	switch r.cfg.Format {
	case "html":
		return r.html(name, doc)
	case "ansi":
		return r.ansi(doc)
	case "spans":
		return r.spans(doc)
	case "json":
		return r.json(name, doc)
	}
	return fmt.Errorf("unknown output format %q", r.cfg.Format)
}

func (r *renderer) html(name string, doc *highlighting.Document) error {
	var b bytes.Buffer
	if r.cfg.Standalone {
		colors := r.hi.Colors()
		fmt.Fprintf(&b, "<!DOCTYPE html>\n<html>\n<head>\n<title>%s</title>\n<style>\n%s</style>\n</head>\n<body>\n",
			html.EscapeString(name), colors.CSS())
	}
	b.WriteString("<pre class=\"stylehi\">\n")
	for i := range doc.NumLines() {
		b.Write(highlighting.MarkupLineHTML([]rune(doc.Line(i)), doc.Ranges(i)))
		b.WriteByte('\n')
	}
	b.WriteString("</pre>\n")
	if r.cfg.Standalone {
		b.WriteString("</body>\n</html>\n")
	}
	_, err := r.w.Write(b.Bytes())
	return err
}

func (r *renderer) ansi(doc *highlighting.Document) error {
	for i := range doc.NumLines() {
		if _, err := fmt.Fprintln(r.w, highlighting.MarkupLineANSI([]rune(doc.Line(i)), doc.Ranges(i), r.profile)); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) spans(doc *highlighting.Document) error {
	for i := range doc.NumLines() {
		fmt.Fprintf(r.w, "%d %s:", i+1, doc.State(i))
		for _, fr := range doc.Ranges(i) {
			fmt.Fprintf(r.w, " %d+%d %s", fr.Start, fr.Len, fr.Role)
		}
		if _, err := fmt.Fprintln(r.w); err != nil {
			return err
		}
	}
	return nil
}

type jsonSpan struct {
	Start int    `json:"start"`
	Len   int    `json:"len"`
	Role  string `json:"role"`
	Style string `json:"style,omitempty"`
}

type jsonLine struct {
	Text  string     `json:"text"`
	State string     `json:"state"`
	Spans []jsonSpan `json:"spans"`
}

type jsonDoc struct {
	File  string     `json:"file"`
	Lines []jsonLine `json:"lines"`
}

func (r *renderer) json(name string, doc *highlighting.Document) error {
	jd := jsonDoc{File: name, Lines: make([]jsonLine, doc.NumLines())}
	for i := range jd.Lines {
		jl := &jd.Lines[i]
		jl.Text = doc.Line(i)
		jl.State = doc.State(i).String()
		jl.Spans = []jsonSpan{}
		for _, fr := range doc.Ranges(i) {
			jl.Spans = append(jl.Spans, jsonSpan{Start: fr.Start, Len: fr.Len, Role: fr.Role.String(), Style: fr.Style.String()})
		}
	}
	return jsonx.NewEncoder(r.w).Encode(jd)
}
