package display

import (
	"image"
	"sync"
)

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	f := &hostFramebuffer{}
	f.resize(width, height)
	return f
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGBA8888 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }
func (f *hostFramebuffer) Present() error      { return nil }

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := 0; i+3 < len(f.buf); i += 4 {
		f.buf[i] = r
		f.buf[i+1] = g
		f.buf[i+2] = b
		f.buf[i+3] = 0xFF
	}
}

// resize reallocates the buffer when the size changes. Contents are lost.
func (f *hostFramebuffer) resize(width, height int) bool {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if width == f.width && height == f.height && f.buf != nil {
		return false
	}
	f.width = width
	f.height = height
	f.stride = width * 4
	f.buf = make([]byte, f.stride*height)
	return true
}

func (f *hostFramebuffer) snapshot(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}

// RGBA returns an image sharing fb's pixel memory, so drawing into it
// writes the framebuffer directly. It returns nil for other pixel formats.
func RGBA(fb Framebuffer) *image.RGBA {
	if fb == nil || fb.Format() != PixelFormatRGBA8888 {
		return nil
	}
	return &image.RGBA{
		Pix:    fb.Buffer(),
		Stride: fb.StrideBytes(),
		Rect:   image.Rect(0, 0, fb.Width(), fb.Height()),
	}
}

// Snapshot copies the current framebuffer contents into a new image.
func Snapshot(fb Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	if h, ok := fb.(*hostFramebuffer); ok {
		h.snapshot(img.Pix)
		return img
	}
	if src := RGBA(fb); src != nil {
		for y := 0; y < img.Rect.Dy(); y++ {
			copy(img.Pix[y*img.Stride:(y+1)*img.Stride], src.Pix[y*src.Stride:])
		}
	}
	return img
}
