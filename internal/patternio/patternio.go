// Package patternio reads pattern files into coordinate slices for the
// hashlife CLI host. It intentionally lives outside pkg/hashlife: the
// engine core only ever ingests bulk coordinates through LoadField, and
// never parses text, preserving the core/host boundary documented there.
//
// Two formats are supported:
//
//   - Coordinates: one "x,y" pair per line, blank lines and lines starting
//     with '#' ignored.
//   - Plaintext: the classic Life ".cells"-style grid, where '!' lines are
//     comments, 'O' marks a live cell, and '.' (or a space or tab) marks a
//     dead cell; any other rune is an error. Rows map to increasing y, columns to
//     increasing x, with the grid's top-left corner placed at (0, 0).
package patternio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/noctilu/hashlife/pkg/hlerrors"
)

// Format identifies a pattern file's textual layout.
type Format int

const (
	// FormatAuto detects the format from content: a plaintext file's first
	// non-blank line starts with '!' or is a grid row of '.'/'O' runes; a
	// coordinates file's lines parse as "x,y".
	FormatAuto Format = iota
	FormatCoordinates
	FormatPlaintext
)

// Load reads a pattern file from disk and returns the live cells' x and y
// coordinates as parallel slices, ready for Universe.LoadField.
func Load(path string, format Format) (xs, ys []int64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, hlerrors.Wrap(hlerrors.CodeIOError, fmt.Sprintf("opening pattern file %q", path), err)
	}
	defer f.Close()

	xs, ys, err = Parse(f, format)
	if err != nil {
		return nil, nil, hlerrors.Wrap(hlerrors.CodePatternError, fmt.Sprintf("parsing pattern file %q", path), err)
	}
	return xs, ys, nil
}

// Parse reads a pattern from r in the given format, or auto-detects it.
func Parse(r io.Reader, format Format) (xs, ys []int64, err error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, nil, err
	}

	if format == FormatAuto {
		format = detectFormat(lines)
	}

	switch format {
	case FormatPlaintext:
		return parsePlaintext(lines)
	default:
		return parseCoordinates(lines)
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading lines: %w", err)
	}
	return lines, nil
}

func detectFormat(lines []string) Format {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "!") {
			return FormatPlaintext
		}
		if isGridRow(trimmed) {
			return FormatPlaintext
		}
		return FormatCoordinates
	}
	return FormatCoordinates
}

func isGridRow(line string) bool {
	for _, r := range line {
		if r != '.' && r != 'O' {
			return false
		}
	}
	return true
}

func parseCoordinates(lines []string) (xs, ys []int64, err error) {
	for lineNo, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		parts := strings.SplitN(trimmed, ",", 2)
		if len(parts) != 2 {
			return nil, nil, fmt.Errorf("line %d: expected \"x,y\", got %q", lineNo+1, line)
		}

		x, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: invalid x coordinate: %w", lineNo+1, err)
		}
		y, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: invalid y coordinate: %w", lineNo+1, err)
		}

		xs = append(xs, x)
		ys = append(ys, y)
	}

	if len(xs) == 0 {
		return nil, nil, fmt.Errorf("pattern contains no live cells")
	}
	return xs, ys, nil
}

func parsePlaintext(lines []string) (xs, ys []int64, err error) {
	var y int64
	for lineNo, line := range lines {
		if strings.HasPrefix(line, "!") {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		for x, r := range line {
			switch r {
			case '.', ' ', '\t':
				// dead cell
			case 'O':
				xs = append(xs, int64(x))
				ys = append(ys, y)
			default:
				return nil, nil, fmt.Errorf("line %d: unexpected rune %q in plaintext pattern", lineNo+1, r)
			}
		}
		y++
	}

	if len(xs) == 0 {
		return nil, nil, fmt.Errorf("pattern contains no live cells")
	}
	return xs, ys, nil
}
