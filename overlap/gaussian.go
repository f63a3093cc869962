// Package overlap computes overlap integrals between s-type Gaussian basis
// functions placed on atoms, and derives sparsity data from them.
package overlap

import "math"

// Gaussian is a normalised s-type Gaussian exp(-zeta r^2) centred at
// (X, Y, Z).
type Gaussian struct {
	Zeta    float64
	X, Y, Z float64
	Norm    float64
}

// NewGaussian builds a normalised Gaussian. A zero exponent is replaced by 1.
func NewGaussian(zeta, x, y, z float64) Gaussian {
	if zeta == 0 {
		zeta = 1
	}
	return Gaussian{
		Zeta: zeta,
		X:    x,
		Y:    y,
		Z:    z,
		Norm: math.Pow(2*zeta/math.Pi, 0.75),
	}
}

// Dist2 is the squared distance between the two centres.
func (g Gaussian) Dist2(o Gaussian) float64 {
	dx, dy, dz := g.X-o.X, g.Y-o.Y, g.Z-o.Z
	return dx*dx + dy*dy + dz*dz
}

// Overlap is the overlap integral <g|o>, from the Gaussian product rule.
func (g Gaussian) Overlap(o Gaussian) float64 {
	p := g.Zeta + o.Zeta
	mu := g.Zeta * o.Zeta / p
	k := math.Exp(-mu * g.Dist2(o))
	return k * g.Norm * o.Norm * math.Pow(math.Pi/p, 1.5)
}
