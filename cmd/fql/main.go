// Command fql parses a filter expression and reports facts about it: its
// top-level shape, the properties and operands it references, its sorted
// literals, or its raw syntax tree.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		watchPath  string
		verbose    bool
	)

	root := &cobra.Command{
		Use:          "fql",
		Short:        "Inspect filter query language expressions",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a .fql.toml config file")
	root.PersistentFlags().StringVar(&watchPath, "watch", "", "re-run the subcommand whenever this file changes")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each parse's fingerprint and diagnostic count")

	setupLogging := func() {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		var handler slog.Handler
		if isTerminal(os.Stderr) {
			handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		} else {
			handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		}
		slog.SetDefault(slog.New(handler))
	}

	run := func(subcommand string, runOnce func(cfg *config, filter string) (int, error)) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			setupLogging()
			cfg, err := loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			if watchPath != "" {
				if len(args) > 0 {
					return fmt.Errorf("--watch and a positional FILTER argument are mutually exclusive")
				}
				return watchAndRun(watchPath, cfg, runOnce)
			}

			if len(args) != 1 {
				return fmt.Errorf("%s requires exactly one FILTER argument (or --watch FILE)", subcommand)
			}
			code, err := runOnce(cfg, args[0])
			if err != nil {
				return err
			}
			if code != 0 {
				os.Exit(code)
			}
			return nil
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "facts FILTER",
			Short: "print whether the root expression is binary, parenthesized, or a clause",
			Args:  cobra.MaximumNArgs(1),
			RunE:  run("facts", runFacts),
		},
		&cobra.Command{
			Use:   "list-properties FILTER",
			Short: "print each clause's property, one per line",
			Args:  cobra.MaximumNArgs(1),
			RunE:  run("list-properties", runListProperties),
		},
		&cobra.Command{
			Use:   "list-operands FILTER",
			Short: "print each clause's operand, one per line",
			Args:  cobra.MaximumNArgs(1),
			RunE:  run("list-operands", runListOperands),
		},
		&cobra.Command{
			Use:   "sort-literals FILTER",
			Short: "print every literal, deduplicated and grouped by type",
			Args:  cobra.MaximumNArgs(1),
			RunE:  run("sort-literals", runSortLiterals),
		},
		&cobra.Command{
			Use:   "print-tree FILTER",
			Short: "print the debug-tree, then one diagnostic per line",
			Args:  cobra.MaximumNArgs(1),
			RunE:  run("print-tree", runPrintTree),
		},
	)

	return root
}
