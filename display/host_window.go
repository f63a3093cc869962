//go:build cgo

package display

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
}

// RunWindow opens a desktop window that shows the framebuffer and forwards
// keyboard input. It blocks until the window closes or the app step
// returns ErrClosed.
func RunWindow(cfg WindowConfig, newApp func(Display) func() error) error {
	d := newHost(cfg.Width, cfg.Height)
	step := newApp(d)

	g := &hostGame{d: d, step: step, resizable: cfg.Resizable}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(d.fb.width, d.fb.height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(30)
	return ebiten.RunGame(g)
}

type hostGame struct {
	d         *hostDisplay
	fbImg     *ebiten.Image
	scratch   []byte
	step      func() error
	resizable bool
}

func (g *hostGame) Update() error {
	g.d.kbd.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			if err == ErrClosed {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.d.fb
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != fb.width || g.fbImg.Bounds().Dy() != fb.height {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
		g.scratch = make([]byte, len(fb.buf))
	}

	fb.snapshot(g.scratch)
	g.fbImg.WritePixels(g.scratch)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.resizable && outsideWidth > 0 && outsideHeight > 0 {
		g.d.fb.resize(outsideWidth, outsideHeight)
	}
	return g.d.fb.width, g.d.fb.height
}
