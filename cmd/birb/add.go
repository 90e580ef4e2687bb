package main

import (
	"flag"
	"log"

	"github.com/birb-linux/birb"
	"github.com/birb-linux/birb/internal/sources"
	"golang.org/x/xerrors"
)

const addHelp = `birb add [-flags] <name> <url> <path>

Add a package repository to the sources configuration file. Repositories
added later have lower priority when locating packages.

Example:
  % birb add extra https://github.com/birb-linux/birb-extra /var/db/pkg/extra
`

func cmdadd(args []string) error {
	fset := flag.NewFlagSet("add", flag.ExitOnError)
	fset.Usage = usage(fset, addHelp)
	fset.Parse(args)
	if fset.NArg() != 3 {
		return xerrors.Errorf("syntax: add <name> <url> <path>")
	}
	s := birb.Source{
		Name: fset.Arg(0),
		URL:  fset.Arg(1),
		Path: fset.Arg(2),
	}
	if err := sources.Add(*sourcesPath, s); err != nil {
		return err
	}
	log.Printf("added source %q to %s", s.Name, *sourcesPath)
	return nil
}
