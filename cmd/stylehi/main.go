// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command stylehi highlights and checks toolkit style sheets.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/stylehi/base/errors"
	"cogentcore.org/stylehi/logx"
	"github.com/jessevdk/go-flags"
	"github.com/muesli/termenv"
)

// errInvalid is returned by commands that found an invalid style sheet,
// so that the exit status is 1 without printing another message.
var errInvalid = errors.New("invalid style sheet")

type globalOptions struct {
	Config      string `short:"c" long:"config" description:"TOML config file, searched for in . and configs"`
	Verbose     bool   `short:"v" long:"verbose" description:"log informational messages"`
	VeryVerbose bool   `long:"vv" description:"log debug messages"`
	Quiet       bool   `short:"q" long:"quiet" description:"only log errors"`
}

// app is the state shared by all commands.
type app struct {
	ctx     context.Context
	stdout  io.Writer
	profile termenv.Profile
	opts    globalOptions
	cfg     Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	out := termenv.NewOutput(os.Stdout)
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr, out.Profile))
}

// run runs the command line and returns the exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, profile termenv.Profile) int {
	a := &app{ctx: ctx, stdout: stdout, profile: profile}
	fp := a.newParser()
	_, err := fp.ParseArgs(args)
	if err == nil {
		return 0
	}
	var ferr *flags.Error
	switch {
	case errors.As(err, &ferr) && ferr.Type == flags.ErrHelp:
		fmt.Fprintln(stdout, ferr.Message)
		return 0
	case errors.As(err, &ferr):
		fmt.Fprintln(stderr, err)
	case errors.Is(err, errInvalid):
	default:
		slog.Error(err.Error())
	}
	return 1
}

func (a *app) newParser() *flags.Parser {
	fp := flags.NewParser(&a.opts, flags.HelpFlag|flags.PassDoubleDash)
	fp.Name = "stylehi"
	fp.LongDescription = `
stylehi highlights toolkit style sheets as HTML, ANSI terminal text,
spans or JSON, and checks them for errors before they are applied.`
	fp.AddCommand("highlight", "Highlight style sheets",
		"Highlight style sheet files and write them to standard output.", &highlightCmd{app: a})
	fp.AddCommand("check", "Check style sheets",
		"Check style sheet files for errors; the exit status is 1 if any is invalid.", &checkCmd{app: a})
	fp.AddCommand("schemes", "List color schemes",
		"List the available color schemes, including chroma styles.", &schemesCmd{app: a})
	fp.AddCommand("watch", "Watch a style sheet",
		"Check and highlight a style sheet file every time it changes, until interrupted.", &watchCmd{app: a})
	fp.CommandHandler = func(cmd flags.Commander, args []string) error {
		if err := a.setup(); err != nil {
			return err
		}
		return cmd.Execute(args)
	}
	return fp
}

// setup configures logging and loads the config, before any command runs.
func (a *app) setup() error {
	logx.UserLevel = logx.LevelFromFlags(a.opts.VeryVerbose, a.opts.Verbose, a.opts.Quiet)
	logx.SetDefaultLogger()
	cfg, err := loadConfig(a.opts.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg
	slog.Debug("config", "scheme", cfg.Scheme, "format", cfg.Format, "includes", cfg.Includes)
	return nil
}
