// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"os"

	"cogentcore.org/stylehi/base/errors"
	"cogentcore.org/stylehi/base/fsx"
	"cogentcore.org/stylehi/text/highlighting"
	"cogentcore.org/stylehi/text/sheetcheck"
	"github.com/jessevdk/go-flags"
)

type watchCmd struct {
	app *app

	Positional struct {
		File flags.Filename `positional-arg-name:"file" required:"yes" description:"style sheet file"`
	} `positional-args:"yes"`
}

func (c *watchCmd) Execute(args []string) error {
	cfg := c.app.cfg
	hi, err := newHighlighter(&cfg)
	if err != nil {
		return err
	}
	fn := string(c.Positional.File)
	r := renderer{w: c.app.stdout, cfg: &cfg, profile: c.app.profile, hi: hi}
	doc := highlighting.NewDocument(hi, "")
	update := func(string) {
		b, err := os.ReadFile(fn)
		if err != nil {
			slog.Error("reading style sheet", "file", fn, "err", err)
			return
		}
		doc.SetText(string(b))
		if err := r.render(fn, doc); err != nil {
			slog.Error("rendering style sheet", "file", fn, "err", err)
		}
		printReport(c.app.stdout, fn, sheetcheck.Check(string(b)), true)
	}
	update(fn)
	slog.Info("watching", "file", fn)
	err = fsx.Watch(c.app.ctx, fn, update)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
