// Package seed reads variables from package build scripts (seed.sh), which
// assign them shell-style on a single line:
//
//	NAME="less"
//	DEPENDS="ncurses pcre2"
package seed

import (
	"os"
	"strings"
	"sync"

	"github.com/birb-linux/birb"
	"github.com/birb-linux/birb/internal/text"
)

// Cache memoizes variables read from build scripts. It is safe for
// concurrent use. The zero value is an empty Cache.
//
// Entries are keyed by package and variable name only, so a Cache should not
// be shared between lookups in different repositories for the same package.
// An empty value is never served from the cache: variables which are empty or
// missing are read again on every lookup.
type Cache struct {
	mu   sync.Mutex
	vars map[string]string // pkg+varName → value
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{vars: make(map[string]string)}
}

func (c *Cache) get(key string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.vars[key]
}

func (c *Cache) put(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.vars == nil {
		c.vars = make(map[string]string)
	}
	c.vars[key] = value
}

// Len returns the number of cached entries, including empty ones.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.vars)
}

// Reset empties the cache.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vars = make(map[string]string)
}

// Variable returns the value assigned to varName in the build script of pkg
// in the repository at repoPath, i.e. value for a line varName="value".
// Only the first such line counts.
//
// If the build script cannot be opened (typically because the package lives
// in a different repository) or does not assign varName, Variable returns
// the empty string.
func (c *Cache) Variable(pkg, varName, repoPath string) string {
	key := pkg + varName
	if v := c.get(key); v != "" {
		return v
	}

	f, err := os.Open(birb.SeedPath(repoPath, pkg))
	if err != nil {
		return ""
	}
	defer f.Close()

	prefix := varName + `="`
	var line string
	scanner := text.NewScanner(f)
	for scanner.Scan() {
		if strings.HasPrefix(scanner.Text(), prefix) {
			line = scanner.Text()
			break
		}
	}
	// A read error is treated like a missing assignment.

	v := trimAssignment(line, len(prefix))
	c.put(key, v)
	return v
}

// trimAssignment strips the n-byte name=" prefix and the closing quote from
// line.
func trimAssignment(line string, n int) string {
	if len(line) <= n {
		return ""
	}
	return line[n : len(line)-1]
}
