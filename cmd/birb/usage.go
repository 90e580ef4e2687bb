package main

import (
	"flag"
	"fmt"
	"os"
)

// usage returns a flag.FlagSet.Usage func printing helpText followed by the
// verb's flags.
func usage(fset *flag.FlagSet, helpText string) func() {
	return func() {
		fmt.Fprintln(os.Stderr, helpText)
		fmt.Fprintf(os.Stderr, "Usage of birb %s:\n", fset.Name())
		fset.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nGlobal flags (before the verb):\n")
		flag.PrintDefaults()
	}
}
