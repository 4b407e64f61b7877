package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fset := flag.NewFlagSet("fix-fixtures", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.Usage = func() {
		fmt.Fprintln(stderr, "usage: fix-fixtures")
		fmt.Fprintf(stderr, "\nRewrites the fixtures in %s to match the failures in %s.\n", fixtureDirFromTool, logFileName)
	}
	if err := fset.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fset.NArg() > 0 {
		fset.Usage()
		fmt.Fprintln(stderr, "fix-fixtures takes no arguments")
		return 2
	}

	cfg, err := DefaultConfig()
	if err != nil {
		fmt.Fprintln(stderr, "Error: locating tool directory:", err)
		return 1
	}
	return runConfig(cfg, stdout, stderr)
}

func runConfig(cfg Config, stdout, stderr io.Writer) int {
	if _, err := fixFixtures(cfg, newReporter(stdout)); err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			fmt.Fprintln(stderr, "Error: Test output file not found:", nf.Path)
		} else {
			fmt.Fprintln(stderr, "Error:", err)
		}
		return 1
	}
	return 0
}
