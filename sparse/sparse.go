// Package sparse turns sparse coordinate files into dense square matrices.
//
// A sparse coordinate file holds one "<row> <col> <value>" triple per line.
// Rows and columns are zero-based. Cells that no triple addresses stay zero.
package sparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrMalformed   = errors.New("sparse: malformed line")
	ErrOutOfRange  = errors.New("sparse: index out of range")
	ErrInvalidSize = errors.New("sparse: invalid matrix size")
)

// Triple is one entry of a sparse coordinate file.
type Triple struct {
	Row   int
	Col   int
	Value float64
}

// ParseTriple parses a single "<row> <col> <value>" line.
func ParseTriple(line string) (Triple, error) {
	f := strings.Fields(line)
	if len(f) != 3 {
		return Triple{}, fmt.Errorf("%w: want 3 fields, got %d", ErrMalformed, len(f))
	}
	row, err := parseIndex(f[0])
	if err != nil {
		return Triple{}, fmt.Errorf("%w: row %q", ErrMalformed, f[0])
	}
	col, err := parseIndex(f[1])
	if err != nil {
		return Triple{}, fmt.Errorf("%w: col %q", ErrMalformed, f[1])
	}
	v, err := strconv.ParseFloat(f[2], 64)
	if err != nil {
		return Triple{}, fmt.Errorf("%w: value %q", ErrMalformed, f[2])
	}
	return Triple{Row: row, Col: col, Value: v}, nil
}

// parseIndex accepts plain integers and integral float text ("3.0", "1e1").
func parseIndex(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return 0, strconv.ErrSyntax
	}
	return int(f), nil
}

// ReadTriples reads every triple from r. Blank lines are skipped; the first
// malformed line aborts the read.
func ReadTriples(r io.Reader) ([]Triple, error) {
	var out []Triple
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		t, err := ParseTriple(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, t)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("sparse: read: %w", err)
	}
	return out, nil
}

// InferSize returns the smallest square dimension that holds every triple.
func InferSize(triples []Triple) int {
	n := 0
	for _, t := range triples {
		if t.Row+1 > n {
			n = t.Row + 1
		}
		if t.Col+1 > n {
			n = t.Col + 1
		}
	}
	return n
}

// Materialize builds a size x size matrix and applies every triple in order
// as m[row][col] = value + offset. Later triples overwrite earlier ones.
// An index outside [0, size) fails the whole call.
func Materialize(size int, triples []Triple, offset float64) (*mat.Dense, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	m := mat.NewDense(size, size, nil)
	for i, t := range triples {
		if t.Row < 0 || t.Row >= size || t.Col < 0 || t.Col >= size {
			return nil, fmt.Errorf("%w: entry %d (%d, %d) outside %dx%d", ErrOutOfRange, i+1, t.Row, t.Col, size, size)
		}
		m.Set(t.Row, t.Col, t.Value+offset)
	}
	return m, nil
}

// Load reads the sparse file at path and materializes it. A size of zero
// means the dimension is inferred from the largest index in the file.
func Load(path string, size int, offset float64) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	triples, err := ReadTriples(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if size == 0 {
		if size = InferSize(triples); size == 0 {
			return nil, fmt.Errorf("%s: %w: cannot infer the size of an empty file; pass FILE:SIZE", path, ErrInvalidSize)
		}
	}
	m, err := Materialize(size, triples, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Write emits every cell of m as a triple, row-major, in fixed-width columns.
func Write(w io.Writer, m mat.Matrix) error {
	bw := bufio.NewWriter(w)
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if _, err := fmt.Fprintf(bw, "%15d%15d%15s\n", i, j, strconv.FormatFloat(m.At(i, j), 'g', 6, 64)); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
