package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2025/internal/config"
	"github.com/katalvlaran/aoc2025/internal/puzzle"
)

// rootFlags holds persistent flag values shared by subcommands.
type rootFlags struct {
	configPath string
	inputDir   string
	verbose    bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:           "aoc",
		Short:         "Run puzzle solvers against their input files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if flags.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&flags.configPath, "config", "aoc.yaml", "path to YAML config file")
	root.PersistentFlags().StringVar(&flags.inputDir, "input-dir", "", "directory holding <day>.txt inputs (overrides config)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newRunCmd(flags), newDaysCmd())
	return root
}

func newRunCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve the given days, or the configured days when none are given",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				slog.Error("failed to load config", "path", flags.configPath, "error", err)
				return err
			}
			if flags.inputDir != "" {
				cfg.InputDir = flags.inputDir
			}

			days := cfg.Days
			if len(args) > 0 {
				days = days[:0:0]
				for _, a := range args {
					d, err := strconv.Atoi(a)
					if err != nil {
						return fmt.Errorf("day %q: %w", a, err)
					}
					days = append(days, d)
				}
			}

			opts := puzzle.Options{Grid: cfg.GridOptions()}
			for _, day := range days {
				ans, err := runDay(cfg.InputDir, day, opts)
				if err != nil {
					slog.Error("puzzle failed", "day", day, "error", err)
					return err
				}
				for _, line := range ans.Lines() {
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
			}
			return nil
		},
	}
}

func newDaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List days with a registered solver",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, d := range puzzle.Days() {
				fmt.Fprintln(cmd.OutOrStdout(), d)
			}
		},
	}
}

// runDay opens <dir>/<day>.txt and feeds it to the day's solver.
func runDay(dir string, day int, opts puzzle.Options) (puzzle.Answer, error) {
	solve, err := puzzle.Lookup(day)
	if err != nil {
		return puzzle.Answer{}, err
	}
	path := filepath.Join(dir, strconv.Itoa(day)+".txt")
	f, err := os.Open(path)
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	start := time.Now()
	ans, err := solve(f, opts)
	if err != nil {
		return puzzle.Answer{}, err
	}
	slog.Debug("puzzle solved", "day", day, "input", path, "elapsed", time.Since(start))
	return ans, nil
}
