// Package heatmap renders matrices as heat-map rasters.
package heatmap

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultLevels is the number of discrete colours in a gradient.
const DefaultLevels = 256

// Gradient is a linear colour ramp quantised to a fixed number of levels.
type Gradient struct {
	levels []color.RGBA
}

// NewGradient interpolates from low to high in RGB space. Level 0 is low
// and the last level is high.
func NewGradient(low, high colorful.Color, levels int) *Gradient {
	if levels < 2 {
		levels = 2
	}
	g := &Gradient{levels: make([]color.RGBA, levels)}
	for i := range g.levels {
		t := float64(i) / float64(levels-1)
		r, gg, b := low.BlendRgb(high, t).Clamped().RGB255()
		g.levels[i] = color.RGBA{R: r, G: gg, B: b, A: 0xFF}
	}
	return g
}

// Grayscale is the white (low) to black (high) ramp with 256 levels.
func Grayscale() *Gradient {
	return NewGradient(mustHex("#ffffff"), mustHex("#000000"), DefaultLevels)
}

// Levels reports the number of discrete colours.
func (g *Gradient) Levels() int { return len(g.levels) }

// Color maps t in [0,1] to a level; t outside that range is clamped.
func (g *Gradient) Color(t float64) color.RGBA {
	n := len(g.levels)
	if math.IsNaN(t) {
		return color.RGBA{}
	}
	switch {
	case t <= 0:
		return g.levels[0]
	case t >= 1:
		return g.levels[n-1]
	}
	return g.levels[int(t*float64(n))]
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("heatmap: invalid color " + s + ": " + err.Error())
	}
	return c
}
