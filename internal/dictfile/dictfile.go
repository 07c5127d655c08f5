// Package dictfile reads raw dictionary lines for lexicon.Build.
package dictfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Read returns every line of r, without line terminators. Blank lines are
// kept; lexicon.Build filters them by length.
func Read(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dictfile: read: %w", err)
	}
	return lines, nil
}

// Load opens path and reads its lines.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictfile: cannot open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}
