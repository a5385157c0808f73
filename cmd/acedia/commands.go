// Copyright (c) 2026, The Acedia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"acedia.dev/core/colors"
	"acedia.dev/core/scripting/luatext"
	"acedia.dev/core/text/rich"
	"acedia.dev/core/text/template"
	"acedia.dev/core/text/termx"
	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
)

func (a *app) renderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render [markup...]",
		Short: "Print markup with terminal colors",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.input(args)
			if err != nil {
				return err
			}
			tx, errs := a.parser.Parse(s)
			logErrors(errs)
			return a.print(tx)
		},
	}
}

// print writes the text with the selected terminal colors.
func (a *app) print(tx *rich.Text) error {
	p, err := a.colorProfile()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.stdout, termx.Render(tx, p))
	return err
}

func (a *app) plainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plain [markup...]",
		Short: "Print the content of markup without formatting",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.input(args)
			if err != nil {
				return err
			}
			tx, errs := a.parser.Parse(s)
			logErrors(errs)
			_, err = fmt.Fprintln(a.stdout, tx.String())
			return err
		},
	}
}

func (a *app) formatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format [markup...]",
		Short: "Print markup in normal form, with one hex color block per run",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.input(args)
			if err != nil {
				return err
			}
			tx, errs := a.parser.Parse(s)
			logErrors(errs)
			_, err = fmt.Fprintln(a.stdout, a.parser.Format(tx))
			return err
		},
	}
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [markup...]",
		Short: "Report the problems in markup, exiting with status 1 if there are any",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.input(args)
			if err != nil {
				return err
			}
			_, errs := a.parser.Parse(s)
			for _, e := range errs {
				fmt.Fprintln(a.stdout, e.Error())
			}
			if len(errs) > 0 {
				return errIssues
			}
			return nil
		},
	}
}

func (a *app) coloredCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "colored [markup...]",
		Short: "Print markup as a colored string, with the configured color marker",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.input(args)
			if err != nil {
				return err
			}
			tx, errs := a.parser.Parse(s)
			logErrors(errs)
			_, err = fmt.Fprintln(a.stdout, a.codec.Format(tx, colors.White))
			return err
		},
	}
}

func (a *app) uncolorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uncolor [colored string...]",
		Short: "Print a colored string as markup in normal form",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.input(args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.stdout, a.parser.Format(a.codec.Parse(s)))
			return err
		},
	}
}

func (a *app) templateCmd() *cobra.Command {
	var numeric, named string
	var formatted bool
	cmd := &cobra.Command{
		Use:   "template <template>",
		Short: "Fill a template and print the result with terminal colors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tp := template.ParseWith(a.parser, args[0])
			nargs, err := shellwords.Parse(numeric)
			if err != nil {
				return fmt.Errorf("--args: %w", err)
			}
			for _, v := range nargs {
				if formatted {
					tp.ArgFormatted(v)
				} else {
					tp.Arg(v)
				}
			}
			kvs, err := shellwords.Parse(named)
			if err != nil {
				return fmt.Errorf("--named: %w", err)
			}
			for _, kv := range kvs {
				k, v, ok := strings.Cut(kv, "=")
				if !ok {
					return fmt.Errorf("--named: %q is not of the form name=value", kv)
				}
				if formatted {
					tp.TextArgFormatted(k, v)
				} else {
					tp.TextArg(k, v)
				}
			}
			tx, errs := tp.CollectFormatted()
			logErrors(errs)
			return a.print(tx)
		},
	}
	cmd.Flags().StringVar(&numeric, "args", "", "numeric arguments, as shell words")
	cmd.Flags().StringVar(&named, "named", "", "named arguments as name=value shell words")
	cmd.Flags().BoolVar(&formatted, "formatted", false, "parse the arguments as markup")
	return cmd
}

func (a *app) luaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lua <script>",
		Short: "Run a Lua script with the acedia_text module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.colorProfile()
			if err != nil {
				return err
			}
			mod := luatext.NewModule(a.parser)
			mod.Profile = p
			L, err := mod.NewState()
			if err != nil {
				return err
			}
			defer L.Close()
			luatext.SetPrint(L, a.stdout)
			return L.DoFile(args[0])
		},
	}
}
