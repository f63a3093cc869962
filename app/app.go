// Package app is the sparse matrix viewer: it loads up to four sparse
// files and shows them as heat maps.
package app

import (
	"context"
	"image"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"sparsegraph/display"
	"sparsegraph/heatmap"
	"sparsegraph/internal/buildinfo"
	"sparsegraph/sparse"
)

// LoadPanels materializes every panel concurrently. The result is in
// panel order; the first failure cancels the rest.
func LoadPanels(ctx context.Context, panels []Panel) ([]*mat.Dense, error) {
	out := make([]*mat.Dense, len(panels))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range panels {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := sparse.Load(p.Path, p.Size, p.Offset)
			if err != nil {
				return err
			}
			out[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

type viewer struct {
	d      display.Display
	panels []image.Image
	margin int
	log    zerolog.Logger

	w, h int
}

// New returns the viewer's step function. The panels are drawn whenever
// the framebuffer changes size; q, Escape or Ctrl+W close the viewer.
func New(d display.Display, cfg Config, panels []image.Image, log zerolog.Logger) func() error {
	v := &viewer{d: d, panels: panels, margin: cfg.Margin, log: log}
	return v.step
}

func (v *viewer) step() error {
	if kbd := v.d.Keyboard(); kbd != nil {
		for drained := false; !drained; {
			select {
			case ev := <-kbd.Events():
				if quit(ev) {
					return display.ErrClosed
				}
			default:
				drained = true
			}
		}
	}

	fb := v.d.Framebuffer()
	if fb.Width() == v.w && fb.Height() == v.h {
		return nil
	}
	dst := display.RGBA(fb)
	if dst == nil {
		return nil
	}
	if err := heatmap.Compose(dst, v.panels, v.margin); err != nil {
		return err
	}
	v.w, v.h = fb.Width(), fb.Height()
	v.log.Debug().Int("width", v.w).Int("height", v.h).Msg("rendered")
	return fb.Present()
}

func quit(ev display.KeyEvent) bool {
	if !ev.Press {
		return false
	}
	return ev.Code == display.KeyEscape || ev.Rune == 'q' || ev.Rune == 0x17
}

// Images wraps each matrix as a white-to-black heat map.
func Images(ms []*mat.Dense) []image.Image {
	g := heatmap.Grayscale()
	out := make([]image.Image, len(ms))
	for i, m := range ms {
		out[i] = heatmap.NewImage(m, g)
	}
	return out
}

// Run loads the panels and shows them, in a window or, when cfg.Out is
// set, in a PNG file.
func Run(ctx context.Context, cfg Config, log zerolog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	ms, err := LoadPanels(ctx, cfg.Panels)
	if err != nil {
		return err
	}
	for i, m := range ms {
		r, _ := m.Dims()
		log.Info().Str("file", cfg.Panels[i].Path).Int("size", r).Msg("loaded")
	}
	panels := Images(ms)
	newApp := func(d display.Display) func() error {
		return New(d, cfg, panels, log)
	}

	if cfg.Out != "" {
		if err := display.RunHeadless(ctx, newApp, display.HeadlessConfig{
			Width:  cfg.Width,
			Height: cfg.Height,
			Steps:  1,
			Out:    cfg.Out,
		}); err != nil {
			return err
		}
		log.Info().Str("out", cfg.Out).Msg("wrote image")
		return nil
	}

	return display.RunWindow(display.WindowConfig{
		Title:     cfg.Title + " " + buildinfo.Short(),
		Width:     cfg.Width,
		Height:    cfg.Height,
		Resizable: true,
	}, newApp)
}
