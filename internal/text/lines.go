package text

import (
	"os"
	"strings"

	"golang.org/x/xerrors"
)

// OpenError is returned by ReadLines when the file cannot be opened.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return "File [" + e.Path + "] can't be opened!"
}

func (e *OpenError) Unwrap() error { return e.Err }

// ReadLines returns the lines of the file at path, skipping empty lines and
// lines starting with #.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	defer f.Close()
	var lines []string
	scanner := NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, xerrors.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}
