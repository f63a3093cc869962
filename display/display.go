// Package display puts rendered frames on screen or on disk.
package display

import "errors"

// ErrClosed is returned by an app step to ask the runner to stop.
var ErrClosed = errors.New("display: closed")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGBA8888 is 32bpp, bytes in R, G, B, A order.
	PixelFormatRGBA8888 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEscape
	KeyEnter
)

// KeyEvent is a keyboard event. Text input arrives with Code KeyUnknown
// and the typed Rune.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display bundles what an app can draw on and listen to.
type Display interface {
	Framebuffer() Framebuffer
	Keyboard() Keyboard
}
