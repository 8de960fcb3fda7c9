// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"cogentcore.org/stylehi/text/sheetcheck"
	"github.com/jessevdk/go-flags"
)

type checkCmd struct {
	app *app

	Warnings bool `short:"w" long:"warnings" description:"also print warnings"`

	Positional struct {
		Files []flags.Filename `positional-arg-name:"file" required:"1" description:"style sheet file"`
	} `positional-args:"yes"`
}

func (c *checkCmd) Execute(args []string) error {
	invalid := false
	for _, fn := range c.Positional.Files {
		b, err := os.ReadFile(string(fn))
		if err != nil {
			return err
		}
		r := sheetcheck.Check(string(b))
		printReport(c.app.stdout, string(fn), r, c.Warnings)
		if !r.Valid() {
			invalid = true
		}
	}
	if invalid {
		return errInvalid
	}
	return nil
}

// printReport writes the summary line of the report and its issues,
// each prefixed with the file name.
func printReport(w io.Writer, name string, r *sheetcheck.Report, warnings bool) {
	fmt.Fprintf(w, "%s: %s (%s, %d rules, %d declarations)\n", name, r, r.Mode, r.Rules, r.Declarations)
	for _, is := range r.Errors {
		fmt.Fprintf(w, "%s:%s\n", name, is)
	}
	if !warnings {
		return
	}
	for _, is := range r.Warnings {
		fmt.Fprintf(w, "%s: warning: %s\n", name, is)
	}
}
