// Command aoc runs the registered puzzle solvers against their input files
// and prints one "AOC <day><part>: Result: <value>" line per part.
//
// Usage:
//
//	go run ./cmd/aoc run            # every day from the config
//	go run ./cmd/aoc run 4          # a single day
//	go run ./cmd/aoc run 5 --input-dir testdata
//	go run ./cmd/aoc days           # list registered days
//
// Configuration is read from --config (YAML), then AOC_* environment variables.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the root command and reports any error on stderr.
// It returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "aoc:", err)
		return 1
	}
	return 0
}
