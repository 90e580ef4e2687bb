package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/birb-linux/birb"
	"github.com/birb-linux/birb/internal/repo"
	"golang.org/x/xerrors"
)

const locateHelp = `birb locate [-flags] <package>...

Print which configured repository contains each package. When a package is
available in multiple repositories, the first one listed in the sources
configuration file wins.

Example:
  % birb locate less htop
`

func locate(w io.Writer, srcs []birb.Source, pkgs []string) error {
	ctx, canc := birb.InterruptibleContext()
	defer canc()
	found, err := repo.LocateAll(ctx, pkgs, srcs)
	if err != nil {
		return err
	}
	var missing int
	for _, pkg := range pkgs {
		s := found[pkg]
		if !s.IsValid() {
			missing++
			fmt.Fprintf(w, "%s: not found\n", pkg)
			continue
		}
		fmt.Fprintf(w, "%s: %s (%s)\n", pkg, s.Name, s.Path)
	}
	if missing > 0 {
		log.Printf("%d of %d packages not found in any of %d sources", missing, len(pkgs), len(srcs))
		return xerrors.Errorf("%d packages not found", missing)
	}
	return nil
}

func cmdlocate(args []string) error {
	fset := flag.NewFlagSet("locate", flag.ExitOnError)
	fset.Usage = usage(fset, locateHelp)
	fset.Parse(args)
	if fset.NArg() < 1 {
		return xerrors.Errorf("syntax: locate <package>...")
	}

	srcs, err := loadSources()
	if err != nil {
		return err
	}
	return locate(os.Stdout, srcs, fset.Args())
}
