package display

import (
	"context"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRGBASharesFramebuffer(t *testing.T) {
	fb := newHostFramebuffer(4, 3)
	img := RGBA(fb)
	if img == nil {
		t.Fatal("expected image")
	}
	img.SetRGBA(2, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	off := 1*fb.StrideBytes() + 2*4
	got := fb.Buffer()[off : off+4]
	if got[0] != 10 || got[1] != 20 || got[2] != 30 || got[3] != 255 {
		t.Fatalf("buffer=%v, want [10 20 30 255]", got)
	}
}

func TestFramebufferResize(t *testing.T) {
	fb := newHostFramebuffer(2, 2)
	if fb.resize(2, 2) {
		t.Fatal("resize to same size reported a change")
	}
	if !fb.resize(5, 1) {
		t.Fatal("expected resize")
	}
	if fb.Width() != 5 || fb.Height() != 1 || len(fb.Buffer()) != 20 {
		t.Fatalf("w=%d h=%d len=%d", fb.Width(), fb.Height(), len(fb.Buffer()))
	}
}

func TestRunHeadlessWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	steps := 0
	err := RunHeadless(context.Background(), func(d Display) func() error {
		return func() error {
			steps++
			d.Framebuffer().ClearRGB(0, 128, 255)
			return nil
		}
	}, HeadlessConfig{Width: 8, Height: 6, Steps: 3, Out: out})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 3 {
		t.Fatalf("steps=%d, want 3", steps)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Fatalf("bounds=%v", b)
	}
	r, g, b, a := img.At(7, 5).RGBA()
	if r>>8 != 0 || g>>8 != 128 || b>>8 != 255 || a>>8 != 255 {
		t.Fatalf("pixel=(%d,%d,%d,%d)", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestRunHeadlessStopsOnClosed(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	steps := 0
	err := RunHeadless(context.Background(), func(Display) func() error {
		return func() error {
			steps++
			return ErrClosed
		}
	}, HeadlessConfig{Width: 2, Height: 2, Steps: 10, Out: out})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 1 {
		t.Fatalf("steps=%d, want 1", steps)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("stat: %v", err)
	}
}

func TestRunHeadlessCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunHeadless(ctx, func(Display) func() error { return nil },
		HeadlessConfig{Width: 2, Height: 2, Out: filepath.Join(t.TempDir(), "x.png")})
	if err != context.Canceled {
		t.Fatalf("err=%v, want context.Canceled", err)
	}
}
