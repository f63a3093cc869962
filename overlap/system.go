package overlap

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"sparsegraph/molinput"
)

var ErrEmpty = errors.New("overlap: system has no basis functions")

// Entry is one non-negligible overlap integral. Row <= Col.
type Entry struct {
	Row, Col int
	Value    float64
}

// System is a set of Gaussian basis functions and their overlap matrix,
// stored as the upper triangle's entries that reach the threshold.
type System struct {
	threshold float64
	gaussians []Gaussian
	entries   []Entry
	zeroes    int
	log       zerolog.Logger
}

func NewSystem(threshold float64, log zerolog.Logger) *System {
	return &System{threshold: threshold, log: log}
}

// FromInput places one Gaussian per atom whose label has a basis entry.
// Functions are grouped by basis entry, atoms in geometry order.
func FromInput(in *molinput.Input, log zerolog.Logger) *System {
	s := NewSystem(in.Threshold, log)
	for _, b := range in.Basis {
		for _, a := range in.Geometry {
			if a.Label == b.Label {
				s.Add(NewGaussian(b.Exponent, a.X, a.Y, a.Z))
			}
		}
	}
	return s
}

func (s *System) Add(g Gaussian) { s.gaussians = append(s.gaussians, g) }

func (s *System) N() int                  { return len(s.gaussians) }
func (s *System) Zeroes() int             { return s.zeroes }
func (s *System) Threshold() float64      { return s.threshold }
func (s *System) Gaussian(i int) Gaussian { return s.gaussians[i] }
func (s *System) Entries() []Entry        { return s.entries }

// Unique is the number of distinct integrals, N(N+1)/2.
func (s *System) Unique() int {
	n := s.N()
	return n * (n + 1) / 2
}

// CalcOverlap computes every unique integral. Integrals below the
// threshold are counted as zeroes and not stored. Entries are ordered by
// column, then row.
func (s *System) CalcOverlap() {
	s.entries = s.entries[:0]
	s.zeroes = 0
	for i := range s.gaussians {
		for j := 0; j <= i; j++ {
			v := s.gaussians[i].Overlap(s.gaussians[j])
			if v < s.threshold {
				s.zeroes++
				continue
			}
			s.entries = append(s.entries, Entry{Row: j, Col: i, Value: v})
		}
	}
}

// Sparsity is the percentage of unique integrals below the threshold.
func (s *System) Sparsity() float64 {
	u := s.Unique()
	if u == 0 {
		return 0
	}
	return 100 * float64(s.zeroes) / float64(u)
}

// SparseGraph sums the stored integrals over square blocks of basis
// functions. A fineness of f gives blocks of N/f functions (at least one),
// so the result is roughly f x f. The matrix is symmetric.
func (s *System) SparseGraph(fineness int) (*mat.Dense, error) {
	n := s.N()
	if n == 0 {
		return nil, ErrEmpty
	}
	if fineness < 1 {
		s.log.Warn().Int("fineness", fineness).Msg("invalid fineness, must be > 0; using 1")
		fineness = 1
	}
	bs := n / fineness
	if bs < 1 {
		bs = 1
	}
	size := (n + bs - 1) / bs

	m := mat.NewDense(size, size, nil)
	for _, e := range s.entries {
		r, c := e.Row/bs, e.Col/bs
		m.Set(r, c, m.At(r, c)+e.Value)
	}
	for i := 0; i < size; i++ {
		for j := 0; j < i; j++ {
			m.Set(i, j, m.At(j, i))
		}
	}
	return m, nil
}

// Overlap returns the overlap matrix of the first n functions.
func (s *System) Overlap(n int) (*mat.SymDense, error) {
	if n <= 0 || n > s.N() {
		return nil, fmt.Errorf("overlap: %d functions requested of %d", n, s.N())
	}
	m := mat.NewSymDense(n, nil)
	for _, e := range s.entries {
		if e.Col < n {
			m.SetSym(e.Row, e.Col, e.Value)
		}
	}
	return m, nil
}
