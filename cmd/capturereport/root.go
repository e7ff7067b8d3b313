// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/checker"
	"golang.org/x/tools/go/packages"

	"fillmore-labs.com/capturealloc/analyzer"
)

// ErrPackageErrors is returned when the requested packages do not load cleanly.
var ErrPackageErrors = errors.New("packages contain errors")

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedImports | packages.NeedDeps |
	packages.NeedTypes | packages.NeedTypesSizes | packages.NeedSyntax | packages.NeedTypesInfo | packages.NeedModule

type reportOptions struct {
	kinds       kindsValue
	tests       bool
	generated   bool
	concurrency int
	verbose     bool
}

func newRootCmd() *cobra.Command {
	o := &reportOptions{kinds: newKindsValue()}

	cmd := &cobra.Command{
		Use:   "capturereport [packages]",
		Short: "Summarize hidden capture frame allocations",
		Long: `capturereport runs the capturealloc analyzer over the given packages and prints
every finding followed by a summary per rule.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}

			return o.run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}

	registerFlags(cmd.Flags(), o)

	_ = cmd.RegisterFlagCompletionFunc("kinds",
		func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return kindNames(), cobra.ShellCompDirectiveNoFileComp
		})

	return cmd
}

func registerFlags(flags *pflag.FlagSet, o *reportOptions) {
	flags.VarP(&o.kinds, "kinds", "k", "comma separated function literal flavors to analyze")
	flags.BoolVarP(&o.tests, "tests", "t", false, "include test files")
	flags.BoolVar(&o.generated, "generated", false, "check generated files")
	flags.IntVar(&o.concurrency, "concurrency", 0, "maximum number of function literals analyzed in parallel (0 for GOMAXPROCS)")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log progress to stderr")
}

func (o *reportOptions) run(ctx context.Context, stdout, stderr io.Writer, patterns []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger := slog.New(slog.DiscardHandler)
	if o.verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	opts := analyzer.Options{
		o.kinds.Options(),
		analyzer.WithGenerated(o.generated),
		analyzer.WithConcurrency(o.concurrency),
		analyzer.WithLogger(logger),
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Loading packages",
		slog.Any("patterns", patterns), slog.Bool("tests", o.tests), opts.LogAttr())

	cfg := &packages.Config{
		Context: ctx,
		Mode:    loadMode,
		Tests:   o.tests,
		Logf:    func(format string, args ...any) { logger.Debug(fmt.Sprintf(format, args...)) },
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return fmt.Errorf("loading packages: %w", err)
	}

	if n := packages.PrintErrors(pkgs); n > 0 {
		return fmt.Errorf("%w: %d errors", ErrPackageErrors, n)
	}

	a := analyzer.New(opts)

	graph, err := checker.Analyze([]*analysis.Analyzer{a}, pkgs, &checker.Options{})
	if err != nil {
		return fmt.Errorf("analyzing packages: %w", err)
	}

	wd, _ := os.Getwd()
	s := newSummary(wd)

	for _, act := range graph.Roots {
		if act.Err != nil {
			return fmt.Errorf("analyzing %s: %w", act.Package.PkgPath, act.Err)
		}

		for _, d := range act.Diagnostics {
			s.Add(act.Package.Fset.Position(d.Pos), d)
		}
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Analysis complete",
		slog.Int("packages", len(pkgs)), slog.Int("findings", s.Len()))

	st := newStyles(lipgloss.NewRenderer(stdout))

	_, err = io.WriteString(stdout, s.Render(st))

	return err
}
