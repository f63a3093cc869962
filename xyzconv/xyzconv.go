// Package xyzconv reshapes whitespace-separated coordinate files into the
// geometry section of a molecular input file.
package xyzconv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"sparsegraph/molinput"
)

var ErrShortLine = errors.New("xyzconv: fewer than four columns")

// Options tunes Convert.
type Options struct {
	// SkipHeader drops the atom-count and comment lines that open a
	// standard XYZ file.
	SkipHeader bool
}

// Convert copies the first four columns of every input line into a
// "geom," ... "geomend" block, separated by ", ". Columns are copied as
// text; extra columns are ignored and blank lines are skipped. It returns
// the number of atoms written.
func Convert(r io.Reader, w io.Writer, opts Options) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	mw := molinput.NewWriter(w)
	mw.BeginGeometry()

	lineNo, atoms := 0, 0
	for sc.Scan() {
		lineNo++
		if opts.SkipHeader && lineNo <= 2 {
			continue
		}
		cols := strings.Fields(sc.Text())
		if len(cols) == 0 {
			continue
		}
		if len(cols) < 4 {
			return atoms, fmt.Errorf("line %d: %w: %q", lineNo, ErrShortLine, sc.Text())
		}
		mw.Fields(cols[0], cols[1], cols[2], cols[3])
		atoms++
	}
	if err := sc.Err(); err != nil {
		return atoms, fmt.Errorf("xyzconv: read: %w", err)
	}

	mw.EndGeometry()
	return atoms, mw.Flush()
}
