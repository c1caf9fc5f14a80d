package bench

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const maxLineBytes = 16 << 20

// ReadEquations reads one equation per line, trimming surrounding whitespace and
// skipping blank lines.
func ReadEquations(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineBytes)

	var out []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("bench: read equations: %w", err)
	}
	return out, nil
}

// ReadEquationsFile opens path and calls ReadEquations.
func ReadEquationsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadEquations(f)
}
