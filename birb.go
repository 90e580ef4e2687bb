package birb

import (
	"fmt"
	"io"
)

// SeedFile is the name of the build script every package directory carries.
const SeedFile = "seed.sh"

// Source is one package repository, as configured by one line of the
// sources configuration file (e.g. core;https://github.com/birb-linux/birb-core;/var/db/pkg/core).
type Source struct {
	// Name is a display label (e.g. core).
	Name string

	// URL is the remote origin of the repository. It is never parsed.
	URL string

	// Path is the local directory containing one subdirectory per package
	// (e.g. /var/db/pkg/core, which contains less/seed.sh).
	Path string
}

// IsValid reports whether any of the fields is non-empty. Note that this is
// an OR: a Source with only a Name is valid. The zero Source, which
// repo.Locate returns when no repository matches, is not. Use Complete to
// require all fields.
func (s Source) IsValid() bool {
	return s.Name != "" || s.URL != "" || s.Path != ""
}

// Complete reports whether all fields are non-empty.
func (s Source) Complete() bool {
	return s.Name != "" && s.URL != "" && s.Path != ""
}

// String returns s in configuration file form, i.e. name;url;path.
func (s Source) String() string {
	return s.Name + ";" + s.URL + ";" + s.Path
}

// Print writes a human-readable description of s to w.
func (s Source) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Name: \t%s\nURL: \t%s\nPath: \t%s\n", s.Name, s.URL, s.Path)
	return err
}

// SeedPath returns the path of the build script of pkg within the
// repository at repoPath.
func SeedPath(repoPath, pkg string) string {
	return repoPath + "/" + pkg + "/" + SeedFile
}
