// Package text contains the plain-text helpers birb reads its configuration
// and build scripts with.
package text

import "strings"

// Split slices s into the substrings separated by delim. Unlike strings.Split,
// a trailing empty substring is dropped, so that Split("a;", ";") returns
// ["a"] and Split("", ";") returns nil. Empty substrings between two
// delimiters are retained.
func Split(s, delim string) []string {
	if delim == "" {
		if s == "" {
			return nil
		}
		return []string{s}
	}
	var result []string
	for {
		idx := strings.Index(s, delim)
		if idx == -1 {
			break
		}
		result = append(result, s[:idx])
		s = s[idx+len(delim):]
	}
	if s != "" {
		result = append(result, s)
	}
	return result
}
