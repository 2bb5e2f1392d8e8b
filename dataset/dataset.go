// SPDX-License-Identifier: MIT
// Package: lvnet/dataset
//
// dataset.go — labeled examples and their plain-text loader.
//
// Format:
//   • One example per line: feature values followed by the label, separated
//     by whitespace.
//   • Blank lines and lines whose first non-space rune is '#' are skipped.
//   • Every example must carry the same number of features as the first one.
//
// Errors:
//   • ErrMalformed for non-numeric tokens, lines with fewer than two tokens or
//     inconsistent feature counts. The wrapped message names the line.
//   • Open/read failures are returned wrapped, unchanged in kind.

package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrMalformed indicates a line that does not describe a valid example.
var ErrMalformed = errors.New("dataset: malformed example")

// commentPrefix starts a line ignored by the loader.
const commentPrefix = "#"

// Example is one labeled input vector.
type Example struct {
	// Features are fed to the input nodes in order.
	Features []float64
	// Label is the target of the single output node.
	Label float64
}

// Load reads every example from r.
// Complexity: O(total tokens).
func Load(r io.Reader) ([]Example, error) {
	var (
		out   []Example
		width = -1
		line  int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, fmt.Errorf("Load: line %d: %d fields, need features and a label: %w", line, len(fields), ErrMalformed)
		}
		vals := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("Load: line %d: field %d %q: %w", line, i, f, ErrMalformed)
			}
			vals[i] = v
		}
		if width < 0 {
			width = len(vals) - 1
		} else if len(vals)-1 != width {
			return nil, fmt.Errorf("Load: line %d: %d features, want %d: %w", line, len(vals)-1, width, ErrMalformed)
		}
		out = append(out, Example{Features: vals[:width:width], Label: vals[width]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	return out, nil
}

// LoadFile opens path and reads every example from it.
func LoadFile(path string) ([]Example, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	return Load(f)
}
