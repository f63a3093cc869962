package molinput

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Writer emits the sections of an input file. The first write error sticks
// and is returned by Flush.
type Writer struct {
	w   *bufio.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	if bw, ok := w.(*bufio.Writer); ok {
		return &Writer{w: bw}
	}
	return &Writer{w: bufio.NewWriter(w)}
}

func (w *Writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format, args...)
}

// Basis writes a complete basis section.
func (w *Writer) Basis(entries []BasisEntry) {
	w.printf("basis,\n")
	for _, e := range entries {
		w.printf("%s, %s\n", e.Label, formatFloat(e.Exponent))
	}
	w.printf("basisend\n")
}

func (w *Writer) BeginGeometry() { w.printf("geom,\n") }
func (w *Writer) EndGeometry()   { w.printf("geomend\n") }

// Atom writes one geometry line with six decimals per coordinate.
func (w *Writer) Atom(a Atom) {
	w.printf("%s, %f, %f, %f\n", a.Label, a.X, a.Y, a.Z)
}

// Fields writes one geometry line from tokens taken verbatim.
func (w *Writer) Fields(label, x, y, z string) {
	w.printf("%s, %s, %s, %s\n", label, x, y, z)
}

func (w *Writer) Threshold(t float64) {
	w.printf("threshold, %s\n", formatFloat(t))
}

func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	return w.w.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
