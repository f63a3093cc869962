package overlap

import (
	"bufio"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"sparsegraph/internal/textio"
	"sparsegraph/molinput"
	"sparsegraph/sparse"
)

// Prefix strips the extension from an input path.
func Prefix(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// Run builds the system described by in, computes its overlap integrals
// and carries out in.Commands in order. Reports go to files named
// prefix + ".out", ".ints", ".sparse" and ".orthog". Only the last
// orthogonalisation is reported.
func Run(in *molinput.Input, prefix string, log zerolog.Logger) error {
	s := FromInput(in, log)
	if s.N() == 0 {
		return fmt.Errorf("%w: no atom matches a basis label", ErrEmpty)
	}
	s.CalcOverlap()
	log.Info().Int("functions", s.N()).Float64("sparsity", s.Sparsity()).Msg("overlap integrals computed")

	var (
		orthog *mat.Dense
		method molinput.Method
	)
	for _, cmd := range in.Commands {
		switch cmd.Kind {
		case molinput.PrintIntegrals:
			if err := textio.WriteFile(prefix+".ints", func(w *bufio.Writer) error {
				return WriteIntegrals(w, s)
			}); err != nil {
				return err
			}
		case molinput.PrintSparseGraph:
			g, err := s.SparseGraph(cmd.Fineness)
			if err != nil {
				return err
			}
			if err := textio.WriteFile(prefix+".sparse", func(w *bufio.Writer) error {
				return sparse.Write(w, g)
			}); err != nil {
				return err
			}
		case molinput.Orthogonalise:
			c, err := s.Orthogonalise(cmd.N, cmd.Method)
			if err != nil {
				return fmt.Errorf("%s orthogonalisation: %w", cmd.Method, err)
			}
			orthog, method = c, cmd.Method
		}
	}

	if orthog != nil {
		if err := textio.WriteFile(prefix+".orthog", func(w *bufio.Writer) error {
			return WriteOrthog(w, s, orthog, method)
		}); err != nil {
			return err
		}
	}

	return textio.WriteFile(prefix+".out", func(w *bufio.Writer) error {
		if err := WriteSummary(w, s, true); err != nil {
			return err
		}
		_, err := w.WriteString("\nProgram finished.\n")
		return err
	})
}
