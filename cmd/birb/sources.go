package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/birb-linux/birb/internal/sources"
	"github.com/mattn/go-isatty"
)

const sourcesHelp = `birb sources [-flags]

List the configured package repositories. When standard output is not a
terminal, the configuration lines are printed unmodified.

Example:
  % birb sources
  % birb sources | cut -d';' -f3
`

func printSources(w io.Writer, raw bool) error {
	if raw {
		lines, err := sources.List(*sourcesPath)
		if err != nil {
			exitOnOpenError(err)
			return err
		}
		for _, line := range lines {
			fmt.Fprintln(w, line)
		}
		return nil
	}
	srcs, err := loadSources()
	if err != nil {
		return err
	}
	for i, s := range srcs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := s.Print(w); err != nil {
			return err
		}
	}
	return nil
}

func cmdsources(args []string) error {
	fset := flag.NewFlagSet("sources", flag.ExitOnError)
	raw := fset.Bool("raw", !isatty.IsTerminal(os.Stdout.Fd()), "print configuration lines unmodified")
	fset.Usage = usage(fset, sourcesHelp)
	fset.Parse(args)

	return printSources(os.Stdout, *raw)
}
