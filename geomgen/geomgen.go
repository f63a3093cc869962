// Package geomgen writes synthetic molecular input files with randomly
// placed atoms, for stress-testing overlap sparsity.
package geomgen

import (
	"errors"
	"io"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"sparsegraph/molinput"
)

// Config describes one generated geometry.
type Config struct {
	// Points sets the density: atoms are drawn in a cube of side
	// sqrt(Points) and every third of Points coordinates starts an atom.
	Points    int
	Label     string
	Exponent  float64
	Threshold float64
	Seed      uint64
}

// DefaultConfig matches the stock 100000-point carbon cloud.
func DefaultConfig() Config {
	return Config{
		Points:    100000,
		Label:     "C",
		Exponent:  0.2,
		Threshold: 1e-6,
	}
}

// Atoms is the number of atoms Generate writes.
func (c Config) Atoms() int { return (c.Points + 2) / 3 }

// HalfWidth is half the side of the cube coordinates are drawn from.
func (c Config) HalfWidth() float64 { return math.Sqrt(float64(c.Points)) / 2 }

// Generate writes a complete input file to w and returns the atom count.
func Generate(w io.Writer, cfg Config) (int, error) {
	if cfg.Points <= 0 {
		return 0, errors.New("geomgen: points must be positive")
	}
	if cfg.Label == "" {
		return 0, errors.New("geomgen: empty atom label")
	}

	h := cfg.HalfWidth()
	u := distuv.Uniform{Min: -h, Max: h, Src: rand.NewSource(cfg.Seed)}

	mw := molinput.NewWriter(w)
	mw.Basis([]molinput.BasisEntry{{Label: cfg.Label, Exponent: cfg.Exponent}})
	mw.BeginGeometry()
	n := cfg.Atoms()
	for i := 0; i < n; i++ {
		mw.Atom(molinput.Atom{Label: cfg.Label, X: u.Rand(), Y: u.Rand(), Z: u.Rand()})
	}
	mw.EndGeometry()
	mw.Threshold(cfg.Threshold)
	if err := mw.Flush(); err != nil {
		return 0, err
	}
	return n, nil
}
