// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wdamron/hm"
	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/fixture"
	"github.com/wdamron/hm/internal/config"
)

// app holds the configuration of a single invocation.
type app struct {
	Debug      bool
	Check      bool
	ConfigPath string
	Fixtures   []string

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "hm",
		Short: "Hindley-Milner type inference",
		Long: `hm infers the most general types of expressions of a small lambda calculus
with let and letrec, printing one line per example: the expression and either
its type or the reason inference failed.`,
		Example: `  # Run the built-in examples
  hm demo

  # Run the examples of fixtures and check their expectations
  hm run --check examples.yaml

  # Run with debug logging enabled
  hm --debug run examples.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.Debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&a.Check, "check", false, "Fail if an example does not match its expected type or error")
	rootCmd.PersistentFlags().StringVar(&a.ConfigPath, "config", "", "Path to the configuration file (default ./"+config.FileName+" if present)")

	rootCmd.AddCommand(demoCmd(a))
	rootCmd.AddCommand(runCmd(a))

	return rootCmd
}

// configure merges the configuration file into flags which were not set, then sets up logging.
func (a *app) configure(cmd *cobra.Command) error {
	var cfg *config.Config
	var err error
	if a.ConfigPath != "" {
		cfg, err = config.Load(a.ConfigPath)
	} else {
		var cwd string
		if cwd, err = os.Getwd(); err == nil {
			cfg, err = config.LoadDefault(cwd)
		}
	}
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	flags := cmd.Flags()
	if !flags.Changed("debug") {
		a.Debug = cfg.Debug
	}
	if !flags.Changed("check") {
		a.Check = cfg.Check
	}
	a.Fixtures = cfg.Fixtures

	// Set up slog with appropriate level
	level := slog.LevelInfo
	if a.Debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})
	a.logger = slog.New(handler)
	return nil
}

func demoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Infer the types of the built-in examples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.OutOrStdout(), fixture.Demo())
		},
	}
}

func runCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run [file...]",
		Short: "Infer the types of the examples of YAML fixtures",
		Long: `Infer the types of the examples of each YAML fixture. Each fixture is
inferred within its own session, so type-variables are named from α again at
the start of each file. Without arguments, the fixtures listed in the
configuration file are run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				paths = a.Fixtures
			}
			if len(paths) == 0 {
				return errors.New("no fixtures given")
			}

			failed := 0
			for i, path := range paths {
				fx, err := fixture.Load(path)
				if err != nil {
					return err
				}
				a.logger.Debug("loaded fixture", "path", path, "env", fx.Env.Names(), "examples", len(fx.Examples))

				out := cmd.OutOrStdout()
				if len(paths) > 1 {
					if i > 0 {
						fmt.Fprintln(out)
					}
					fmt.Fprintf(out, "# %s\n", path)
				}
				if err := a.run(out, fx); err != nil {
					var failures checkFailures
					if !errors.As(err, &failures) {
						return err
					}
					failed += int(failures)
				}
			}
			if failed > 0 {
				return checkFailures(failed)
			}
			return nil
		},
	}
}

// checkFailures is the number of examples which did not match their expectations.
type checkFailures int

func (n checkFailures) Error() string {
	if n == 1 {
		return "1 example did not match its expectation"
	}
	return fmt.Sprintf("%d examples did not match their expectations", int(n))
}

// run infers the examples of fx within a new session, writing one line per example to out.
func (a *app) run(out io.Writer, fx *fixture.Fixture) error {
	ctx := hm.NewContext()
	failed := 0
	for i := range fx.Examples {
		ex := &fx.Examples[i]
		a.logger.Debug("inferring",
			"example", ex.Name,
			"nodes", ast.CountNodes(ex.Expr),
			"free", ast.FreeIdents(ex.Expr))
		a.logger.Debug("expression", "ast", pretty.Sprint(ex.Expr))

		result := fixture.RunExample(ctx, fx.Env, ex)
		if result.Err != nil {
			a.logger.Debug("inference failed", "example", ex.Name, "at", ast.ExprString(result.Invalid), "err", result.Err)
		}
		fmt.Fprintln(out, result.String())

		if !a.Check {
			continue
		}
		if err := result.Check(); err != nil {
			a.logger.Error("expectation not met", "fixture", fx.Name, "err", err)
			failed++
		}
	}
	if failed > 0 {
		return checkFailures(failed)
	}
	return nil
}
