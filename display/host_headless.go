package display

import (
	"context"
	"fmt"
	"image/png"
	"os"

	"go.uber.org/multierr"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Width  int
	Height int
	// Steps is how many times the app step runs before the snapshot.
	Steps int
	// Out is the PNG file the final frame is written to.
	Out string
}

// RunHeadless runs the app without opening a window and saves the final
// frame as a PNG.
func RunHeadless(ctx context.Context, newApp func(Display) func() error, cfg HeadlessConfig) error {
	if cfg.Steps <= 0 {
		cfg.Steps = 1
	}
	if cfg.Out == "" {
		return fmt.Errorf("display: headless output path is empty")
	}

	d := newHost(cfg.Width, cfg.Height)
	step := newApp(d)

	for i := 0; i < cfg.Steps; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if step == nil {
			break
		}
		if err := step(); err != nil {
			if err == ErrClosed {
				break
			}
			return err
		}
	}
	return WritePNG(cfg.Out, d.fb)
}

// WritePNG encodes the framebuffer contents to path.
func WritePNG(path string, fb Framebuffer) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("display: create %q: %w", path, err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	if err := png.Encode(f, Snapshot(fb)); err != nil {
		return fmt.Errorf("display: encode %q: %w", path, err)
	}
	return nil
}
