// Package repo finds the package repository holding a package's build
// script.
package repo

import (
	"context"
	"os"
	"sync"

	"github.com/birb-linux/birb"
	"golang.org/x/sync/errgroup"
)

// Logf, if non-nil, is called for every probed build script.
var Logf func(format string, v ...interface{})

func logf(format string, v ...interface{}) {
	if Logf != nil {
		Logf(format, v...)
	}
}

// Locate returns the first of srcs which contains a build script for pkg,
// i.e. whose Path/pkg/seed.sh is a regular file. Symlinks are followed.
//
// If no source contains pkg, Locate returns the zero Source, whose IsValid
// method returns false.
func Locate(pkg string, srcs []birb.Source) birb.Source {
	for _, s := range srcs {
		fn := birb.SeedPath(s.Path, pkg)
		fi, err := os.Stat(fn)
		if err != nil {
			logf("%s: %v", pkg, err)
			continue
		}
		if !fi.Mode().IsRegular() {
			logf("%s: %s is not a regular file (mode %v)", pkg, fn, fi.Mode())
			continue
		}
		logf("%s: found %s in source %q", pkg, fn, s.Name)
		return s
	}
	return birb.Source{}
}

// LocateAll calls Locate for each of pkgs concurrently. The resulting map
// contains an entry for every package; packages which were not found map to
// the zero Source.
func LocateAll(ctx context.Context, pkgs []string, srcs []birb.Source) (map[string]birb.Source, error) {
	var (
		mu     sync.Mutex
		result = make(map[string]birb.Source, len(pkgs))
	)
	eg, ctx := errgroup.WithContext(ctx)
	for _, pkg := range pkgs {
		pkg := pkg // copy
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s := Locate(pkg, srcs)
			mu.Lock()
			defer mu.Unlock()
			result[pkg] = s
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
