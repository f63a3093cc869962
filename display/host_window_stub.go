//go:build !cgo

package display

import "errors"

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
}

func RunWindow(_ WindowConfig, _ func(Display) func() error) error {
	return errors.New("window mode requires cgo (build with CGO_ENABLED=1 or write a PNG with --out)")
}
