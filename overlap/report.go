package overlap

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"sparsegraph/molinput"
)

func fmtG(v float64, prec int) string { return strconv.FormatFloat(v, 'g', prec, 64) }

func writeBasisTable(w io.Writer, s *System, n, prec int) {
	fmt.Fprintf(w, "%12s%12s%12s%12s%12s\n%s\n", "Zeta", "Norm", "x", "y", "z", strings.Repeat(".", 60))
	for i := 0; i < n; i++ {
		b := s.Gaussian(i)
		fmt.Fprintf(w, "%12s%12s%12s%12s%12s\n", fmtG(b.Zeta, prec), fmtG(b.Norm, prec), fmtG(b.X, prec), fmtG(b.Y, prec), fmtG(b.Z, prec))
	}
}

// WriteSummary reports the size and sparsity of the system, optionally
// followed by the list of basis functions.
func WriteSummary(w io.Writer, s *System, listBasis bool) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "\nThis system has %d basis functions\n", s.N())
	fmt.Fprintf(bw, "Its sparsity is: %s percent\n", fmtG(s.Sparsity(), 6))
	fmt.Fprintf(bw, "with a threshold of %s\n\n", fmtG(s.Threshold(), 6))
	fmt.Fprintf(bw, "That is equivalent to %d zeroes out of %d possible unique integrals.\n\n", s.Zeroes(), s.Unique())
	if listBasis {
		fmt.Fprintf(bw, "LIST OF BASIS FUNCTIONS\n\n")
		writeBasisTable(bw, s, s.N(), 6)
	}
	return bw.Flush()
}

// WriteIntegrals lists the stored integrals with one-based indices.
func WriteIntegrals(w io.Writer, s *System) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "NON-ZERO INTEGRALS: %d\n\n", len(s.Entries()))
	fmt.Fprintf(bw, "%8s%8s%20s\n%s\n", "Row", "Column", "Integral", strings.Repeat(".", 36))
	for _, e := range s.Entries() {
		fmt.Fprintf(bw, "%8d%8d%20s\n", e.Row+1, e.Col+1, fmtG(e.Value, 8))
	}
	return bw.Flush()
}

// WriteOrthog lists the orthogonalised functions' coefficients, one
// column of c per function.
func WriteOrthog(w io.Writer, s *System, c mat.Matrix, method molinput.Method) error {
	n, _ := c.Dims()
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s ORTHOGONALISATION RESULTS\n\n", strings.ToUpper(method.String()))
	fmt.Fprintf(bw, "BASIS FUNCTIONS\n")
	writeBasisTable(bw, s, n, 4)
	fmt.Fprintf(bw, "\n\nFUNCTION SPECIFICATION")
	for i := 0; i < n; i++ {
		fmt.Fprintf(bw, "\nFUNCTION %d COEFFICIENTS:\n", i+1)
		for j := 0; j < n; j++ {
			fmt.Fprintf(bw, "%s\n", fmtG(c.At(j, i), 4))
		}
	}
	return bw.Flush()
}
