package heatmap

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Image exposes a matrix as an image.Image: column x, row y. Values are
// normalised over the matrix's own range before the gradient lookup; a
// constant matrix maps to the lowest level. NaN cells are transparent.
type Image struct {
	m      mat.Matrix
	g      *Gradient
	lo, hi float64
}

func NewImage(m mat.Matrix, g *Gradient) *Image {
	if g == nil {
		g = Grayscale()
	}
	im := &Image{m: m, g: g, lo: math.Inf(1), hi: math.Inf(-1)}
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			im.lo = math.Min(im.lo, v)
			im.hi = math.Max(im.hi, v)
		}
	}
	if im.lo > im.hi {
		im.lo, im.hi = 0, 0
	}
	return im
}

// Range returns the values mapped to the first and last gradient levels.
func (im *Image) Range() (lo, hi float64) { return im.lo, im.hi }

func (im *Image) ColorModel() color.Model { return color.RGBAModel }

func (im *Image) Bounds() image.Rectangle {
	r, c := im.m.Dims()
	return image.Rect(0, 0, c, r)
}

func (im *Image) At(x, y int) color.Color { return im.RGBAAt(x, y) }

func (im *Image) RGBAAt(x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}).In(im.Bounds()) {
		return color.RGBA{}
	}
	v := im.m.At(y, x)
	if math.IsNaN(v) {
		return color.RGBA{}
	}
	return im.g.Color(im.normalize(v))
}

func (im *Image) normalize(v float64) float64 {
	if im.hi == im.lo {
		return 0
	}
	return (v - im.lo) / (im.hi - im.lo)
}

type rgbaImage interface {
	image.Image
	RGBAAt(x, y int) color.RGBA
}

// Blit scales src into r of dst using nearest-neighbour sampling, so each
// source cell becomes a solid block. Fully transparent source pixels leave
// dst untouched.
func Blit(dst draw.Image, r image.Rectangle, src image.Image) {
	sb := src.Bounds()
	dw, dh := r.Dx(), r.Dy()
	if dw <= 0 || dh <= 0 || sb.Empty() {
		return
	}
	clip := r.Intersect(dst.Bounds())
	fast, _ := src.(rgbaImage)
	rgba, _ := dst.(*image.RGBA)

	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		sy := sb.Min.Y + int(int64(y-r.Min.Y)*int64(sb.Dy())/int64(dh))
		for x := clip.Min.X; x < clip.Max.X; x++ {
			sx := sb.Min.X + int(int64(x-r.Min.X)*int64(sb.Dx())/int64(dw))
			var c color.RGBA
			if fast != nil {
				c = fast.RGBAAt(sx, sy)
			} else {
				c = color.RGBAModel.Convert(src.At(sx, sy)).(color.RGBA)
			}
			if c.A == 0 {
				continue
			}
			if rgba != nil {
				rgba.SetRGBA(x, y, c)
			} else {
				dst.Set(x, y, c)
			}
		}
	}
}
