// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"acedia.dev/core/base/logx"
	"acedia.dev/core/config"
	"acedia.dev/core/text/markup"
	"acedia.dev/core/text/rich"
	"acedia.dev/core/text/termx"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

const (
	exitOK     = 0
	exitIssues = 1
	exitError  = 2
)

// errIssues is returned by commands that found problems in their input
// after reporting them.
var errIssues = errors.New("acedia: issues found")

// app is the state shared by all of the commands.
type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer

	configFile  string
	verbose     bool
	veryVerbose bool
	quiet       bool
	profile     string

	cfg    *config.Config
	parser *markup.Parser
	codec  rich.Codec
}

func run(stdin io.Reader, stdout, stderr io.Writer, args []string) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errIssues):
		return exitIssues
	}
	fmt.Fprintf(stderr, "acedia: %v\n", err)
	return exitError
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "acedia",
		Short:             "Render, check and fill rich text markup and templates",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.configFile, "config", "c", "", "TOML or YAML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "print verbose output")
	pf.BoolVar(&a.veryVerbose, "vv", false, "print very verbose output")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "only print errors")
	pf.StringVar(&a.profile, "color", "auto", "terminal colors: auto, none, ansi, ansi256 or truecolor")

	root.AddCommand(a.renderCmd(), a.plainCmd(), a.formatCmd(), a.checkCmd(), a.coloredCmd(), a.uncolorCmd(),
		a.templateCmd(), a.luaCmd())
	return root
}

// setup installs the logger and loads the config.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	logx.UserLevel = logx.LevelFromFlags(a.veryVerbose, a.verbose, a.quiet)
	logx.SetDefaultLogger(a.stderr)

	a.cfg = config.New()
	if a.configFile != "" {
		if err := config.Open(a.cfg, a.configFile); err != nil {
			return err
		}
		slog.Info("loaded config", "file", a.configFile, "includes", a.cfg.Includes)
	}
	p, err := a.cfg.Parser()
	if err != nil {
		slog.Warn("invalid config settings, using defaults", "err", err)
	}
	a.parser = p
	a.codec = a.cfg.Codec()
	return nil
}

// colorProfile returns the terminal profile selected with --color.
func (a *app) colorProfile() (termenv.Profile, error) {
	switch strings.ToLower(a.profile) {
	case "auto", "":
		return termx.Profile(), nil
	case "none", "ascii":
		return termenv.Ascii, nil
	case "ansi":
		return termenv.ANSI, nil
	case "ansi256":
		return termenv.ANSI256, nil
	case "truecolor":
		return termenv.TrueColor, nil
	}
	return termenv.Ascii, fmt.Errorf("unknown color profile %q", a.profile)
}

// input returns the arguments joined by spaces,
// or all of standard input if there are none.
func (a *app) input(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(a.stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

// logErrors logs the problems found in markup at the debug level.
func logErrors(errs markup.Errors) {
	for _, e := range errs {
		slog.Debug(e.Error())
	}
}
