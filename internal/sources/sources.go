// Package sources reads and extends the sources configuration file, which
// lists one package repository per line in name;url;path form:
//
//	# name;url;path
//	core;https://github.com/birb-linux/birb-core;/var/db/pkg/core
//
// Empty lines and lines starting with # are ignored.
package sources

import (
	"fmt"
	"os"
	"strings"

	"github.com/birb-linux/birb"
	"github.com/birb-linux/birb/internal/env"
	"github.com/birb-linux/birb/internal/text"
	"github.com/google/renameio"
	"golang.org/x/xerrors"
)

// Delimiter separates the fields of a configuration line.
const Delimiter = ";"

// ParseError describes a configuration line with fewer than three fields.
type ParseError struct {
	Line int // 1-based, counting only non-empty, non-comment lines
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("source line %d: %q: want name;url;path", e.Line, e.Text)
}

// Parse converts configuration lines into Sources, preserving their order.
// Fields beyond the third are ignored.
func Parse(lines []string) ([]birb.Source, error) {
	srcs := make([]birb.Source, 0, len(lines))
	for i, line := range lines {
		fields := text.Split(line, Delimiter)
		if len(fields) < 3 {
			return nil, &ParseError{Line: i + 1, Text: line}
		}
		srcs = append(srcs, birb.Source{
			Name: fields[0],
			URL:  fields[1],
			Path: fields[2],
		})
	}
	return srcs, nil
}

// Load reads and parses the configuration file at path.
func Load(path string) ([]birb.Source, error) {
	lines, err := text.ReadLines(path)
	if err != nil {
		return nil, err
	}
	srcs, err := Parse(lines)
	if err != nil {
		return nil, xerrors.Errorf("%s: %w", path, err)
	}
	return srcs, nil
}

// List returns the unparsed configuration lines of the file at path.
func List(path string) ([]string, error) {
	return text.ReadLines(path)
}

// LoadDefault is Load for env.SourcesConfig.
func LoadDefault() ([]birb.Source, error) {
	return Load(env.SourcesConfig)
}

// ListDefault is List for env.SourcesConfig.
func ListDefault() ([]string, error) {
	return List(env.SourcesConfig)
}

// Add appends s to the configuration file at path, creating the file if it
// does not exist. The file is replaced atomically.
func Add(path string, s birb.Source) error {
	// An empty trailing field would be dropped when the line is read back.
	if s.Path == "" {
		return xerrors.Errorf("source %q has no path", s.Name)
	}
	for _, field := range []string{s.Name, s.URL, s.Path} {
		if strings.Contains(field, Delimiter) || strings.ContainsAny(field, "\r\n") {
			return xerrors.Errorf("source field %q must not contain %q or newlines", field, Delimiter)
		}
	}
	b, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if len(b) > 0 && b[len(b)-1] != '\n' {
		b = append(b, '\n')
	}
	b = append(b, s.String()+"\n"...)
	if err := renameio.WriteFile(path, b, 0644); err != nil {
		return xerrors.Errorf("writing %s: %w", path, err)
	}
	return nil
}
