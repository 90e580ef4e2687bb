package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/birb-linux/birb"
	"github.com/birb-linux/birb/internal/repo"
	"github.com/birb-linux/birb/internal/seed"
	"golang.org/x/xerrors"
)

const varHelp = `birb var [-flags] <package> <variable>

Print the value of a variable assigned in the build script (seed.sh) of a
package, e.g. its dependencies.

Example:
  % birb var less DEPENDS
`

var vars = seed.NewCache()

func printVar(w io.Writer, srcs []birb.Source, pkg, varName string) error {
	s := repo.Locate(pkg, srcs)
	if !s.IsValid() {
		return xerrors.Errorf("package %s not found in any of %d sources", pkg, len(srcs))
	}
	fmt.Fprintln(w, vars.Variable(pkg, varName, s.Path))
	return nil
}

func cmdvar(args []string) error {
	fset := flag.NewFlagSet("var", flag.ExitOnError)
	fset.Usage = usage(fset, varHelp)
	fset.Parse(args)
	if fset.NArg() != 2 {
		return xerrors.Errorf("syntax: var <package> <variable>")
	}

	srcs, err := loadSources()
	if err != nil {
		return err
	}
	return printVar(os.Stdout, srcs, fset.Arg(0), fset.Arg(1))
}
