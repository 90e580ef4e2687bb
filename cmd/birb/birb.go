package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/birb-linux/birb"
	"github.com/birb-linux/birb/internal/env"
	"github.com/birb-linux/birb/internal/repo"
	"github.com/birb-linux/birb/internal/sources"
	"github.com/birb-linux/birb/internal/text"
)

var (
	sourcesPath = flag.String("sources", env.SourcesConfig, "path to the sources configuration file (name;url;path per line)")
	verbose     = flag.Bool("v", false, "log every probed build script")
)

// loadSources reads the configured sources. Nothing works without them, so an
// unreadable configuration file terminates the process with status 2.
func loadSources() ([]birb.Source, error) {
	srcs, err := sources.Load(*sourcesPath)
	if err != nil {
		exitOnOpenError(err)
		return nil, err
	}
	return srcs, nil
}

func exitOnOpenError(err error) {
	var oe *text.OpenError
	if errors.As(err, &oe) {
		fmt.Println(oe.Error())
		os.Exit(2)
	}
}

func main() {
	flag.Parse()

	if *verbose {
		repo.Logf = log.Printf
	}

	type cmd struct {
		helpText string
		fn       func(args []string) error
	}
	verbs := map[string]cmd{
		"sources": {sourcesHelp, cmdsources},
		"locate":  {locateHelp, cmdlocate},
		"var":     {varHelp, cmdvar},
		"add":     {addHelp, cmdadd},
	}

	args := flag.Args()
	verb := "sources"
	if len(args) > 0 {
		verb, args = args[0], args[1:]
	}

	if verb == "help" {
		if len(args) != 1 {
			fmt.Fprintf(os.Stderr, "syntax: birb help <verb>\n")
			fmt.Fprintf(os.Stderr, "\n")
			fmt.Fprintf(os.Stderr, "Verbs:\n")
			fmt.Fprintf(os.Stderr, "\tsources - list configured package repositories\n")
			fmt.Fprintf(os.Stderr, "\tlocate  - find the repository of a package\n")
			fmt.Fprintf(os.Stderr, "\tvar     - print a variable of a package build script\n")
			fmt.Fprintf(os.Stderr, "\tadd     - add a package repository\n")
			os.Exit(2)
		}
		verb = args[0]
		args = []string{"-help"}
	}
	v, ok := verbs[verb]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n", verb)
		fmt.Fprintf(os.Stderr, "syntax: birb <command> [options]\n")
		os.Exit(2)
	}
	if err := v.fn(args); err != nil {
		fmt.Printf("%s: %+v\n", verb, err)
		os.Exit(1)
	}
}
