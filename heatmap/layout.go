package heatmap

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// MaxPanels is the largest number of panels one figure shows.
const MaxPanels = 4

var (
	ErrNoPanels      = errors.New("heatmap: no panels")
	ErrTooManyPanels = errors.New("heatmap: too many panels")
)

var (
	background = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	frame      = color.RGBA{A: 0xFF}
)

// GridFor returns the grid used for n panels: a single panel fills the
// figure, two to four share a fixed 2x2 grid.
func GridFor(n int) (cols, rows int, err error) {
	switch {
	case n < 1:
		return 0, 0, ErrNoPanels
	case n == 1:
		return 1, 1, nil
	case n <= MaxPanels:
		return 2, 2, nil
	}
	return 0, 0, fmt.Errorf("%w: %d > %d", ErrTooManyPanels, n, MaxPanels)
}

// Layout splits bounds into cols x rows cells, row-major, separated and
// surrounded by margin pixels. Each returned rectangle is the largest
// square centred in its cell.
func Layout(bounds image.Rectangle, cols, rows, margin int) []image.Rectangle {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	cw := (bounds.Dx() - margin*(cols+1)) / cols
	ch := (bounds.Dy() - margin*(rows+1)) / rows
	side := cw
	if ch < side {
		side = ch
	}
	if side < 0 {
		side = 0
	}

	out := make([]image.Rectangle, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x0 := bounds.Min.X + margin + col*(cw+margin) + (cw-side)/2
			y0 := bounds.Min.Y + margin + row*(ch+margin) + (ch-side)/2
			out = append(out, image.Rect(x0, y0, x0+side, y0+side))
		}
	}
	return out
}

// fit shrinks cell to the aspect ratio of src, keeping it centred.
func fit(cell image.Rectangle, src image.Rectangle) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	if sw <= 0 || sh <= 0 || sw == sh {
		return cell
	}
	w, h := cell.Dx(), cell.Dy()
	if sw*h > sh*w {
		h = w * sh / sw
	} else {
		w = h * sw / sh
	}
	x0 := cell.Min.X + (cell.Dx()-w)/2
	y0 := cell.Min.Y + (cell.Dy()-h)/2
	return image.Rect(x0, y0, x0+w, y0+h)
}

// Compose clears dst to white and draws each panel into its grid slot with
// a one pixel black frame. There are no ticks or labels.
func Compose(dst draw.Image, panels []image.Image, margin int) error {
	cols, rows, err := GridFor(len(panels))
	if err != nil {
		return err
	}
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	cells := Layout(dst.Bounds(), cols, rows, margin)
	for i, p := range panels {
		r := fit(cells[i], p.Bounds())
		if r.Empty() {
			continue
		}
		Blit(dst, r, p)
		drawFrame(dst, r.Inset(-1))
	}
	return nil
}

// Render composes panels into a new w x h image.
func Render(w, h int, panels []image.Image, margin int) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if err := Compose(img, panels, margin); err != nil {
		return nil, err
	}
	return img, nil
}

func drawFrame(dst draw.Image, r image.Rectangle) {
	u := &image.Uniform{C: frame}
	for _, edge := range []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
		image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
		image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
	} {
		draw.Draw(dst, edge.Intersect(dst.Bounds()), u, image.Point{}, draw.Src)
	}
}
