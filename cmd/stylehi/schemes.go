// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/stylehi/text/highlighting"
)

type schemesCmd struct {
	app *app

	Chroma bool `long:"chroma" description:"also list the chroma styles"`
}

func (c *schemesCmd) Execute(args []string) error {
	for _, nm := range highlighting.SchemeNames() {
		fmt.Fprintln(c.app.stdout, nm)
	}
	if !c.Chroma {
		return nil
	}
	for _, nm := range highlighting.ChromaStyleNames() {
		fmt.Fprintln(c.app.stdout, highlighting.ChromaPrefix+nm)
	}
	return nil
}
