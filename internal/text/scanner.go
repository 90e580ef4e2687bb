package text

import (
	"bufio"
	"io"
	"math"
)

// NewScanner returns a line scanner for r without bufio's default 64 KiB
// line length limit.
func NewScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	return scanner
}
