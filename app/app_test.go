package app

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"sparsegraph/display"
	"sparsegraph/heatmap"
	"sparsegraph/sparse"
)

func writeSparse(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestParsePanel(t *testing.T) {
	p, err := ParsePanel("thc-4.sparse:27", 0, 1)
	require.NoError(t, err)
	assert.Equal(t, Panel{Path: "thc-4.sparse", Size: 27, Offset: 1}, p)

	p, err = ParsePanel("data/taxol.sparse", 23, 0)
	require.NoError(t, err)
	assert.Equal(t, Panel{Path: "data/taxol.sparse", Size: 23}, p)

	// A suffix that is not a number stays part of the path.
	p, err = ParsePanel(`C:\data\x.sparse`, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, `C:\data\x.sparse`, p.Path)

	_, err = ParsePanel(":4", 0, 0)
	require.Error(t, err)

	p, err = ParsePanel("a:b:12", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, Panel{Path: "a:b", Size: 12}, p)
}

func TestLoadConfig(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("size", 3)
	v.Set("offset", 1.0)

	cfg, err := LoadConfig(v, []string{"a.sparse", "b.sparse:5"})
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, cfg.Width)
	assert.Equal(t, DefaultTitle, cfg.Title)
	assert.Equal(t, []Panel{
		{Path: "a.sparse", Size: 3, Offset: 1},
		{Path: "b.sparse", Size: 5, Offset: 1},
	}, cfg.Panels)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeSparse(t, t.TempDir(), "viewer.yaml", `
width: 400
out: grid.png
panels:
  - path: thc-4.sparse
    size: 27
  - path: taxol-4.sparse
    size: 23
    offset: 1
`)
	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := LoadConfig(v, nil)
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.Width)
	assert.Equal(t, DefaultHeight, cfg.Height)
	assert.Equal(t, "grid.png", cfg.Out)
	require.Len(t, cfg.Panels, 2)
	assert.Equal(t, Panel{Path: "taxol-4.sparse", Size: 23, Offset: 1}, cfg.Panels[1])
}

func TestValidate(t *testing.T) {
	ok := Config{Width: 10, Height: 10, Panels: []Panel{{Path: "a"}}}
	require.NoError(t, ok.Validate())

	none := ok
	none.Panels = nil
	require.ErrorIs(t, none.Validate(), ErrNoPanels)

	many := ok
	many.Panels = make([]Panel, 5)
	require.ErrorIs(t, many.Validate(), heatmap.ErrTooManyPanels)

	neg := ok
	neg.Panels = []Panel{{Path: "a", Size: -1}}
	require.Error(t, neg.Validate())

	flat := ok
	flat.Height = 0
	require.Error(t, flat.Validate())
}

func TestLoadPanelsKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	var panels []Panel
	for i, body := range []string{"0 0 1\n", "1 1 2\n", "2 2 3\n", "3 3 4\n"} {
		panels = append(panels, Panel{Path: writeSparse(t, dir, string(rune('a'+i))+".sparse", body)})
	}

	ms, err := LoadPanels(context.Background(), panels)
	require.NoError(t, err)
	require.Len(t, ms, 4)
	for i, m := range ms {
		r, _ := m.Dims()
		assert.Equal(t, i+1, r)
		assert.Equal(t, float64(i+1), m.At(i, i))
	}
}

func TestLoadPanelsFailure(t *testing.T) {
	dir := t.TempDir()
	panels := []Panel{
		{Path: writeSparse(t, dir, "good.sparse", "0 0 1\n")},
		{Path: writeSparse(t, dir, "bad.sparse", "0 0 1\n5 0 1\n"), Size: 2},
	}
	_, err := LoadPanels(context.Background(), panels)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)

	_, err = LoadPanels(context.Background(), []Panel{{Path: filepath.Join(dir, "missing.sparse")}})
	require.ErrorIs(t, err, os.ErrNotExist)
}

type fakeFramebuffer struct {
	img      *image.RGBA
	presents int
}

func (f *fakeFramebuffer) Width() int                  { return f.img.Rect.Dx() }
func (f *fakeFramebuffer) Height() int                 { return f.img.Rect.Dy() }
func (f *fakeFramebuffer) Format() display.PixelFormat { return display.PixelFormatRGBA8888 }
func (f *fakeFramebuffer) StrideBytes() int            { return f.img.Stride }
func (f *fakeFramebuffer) Buffer() []byte              { return f.img.Pix }
func (f *fakeFramebuffer) ClearRGB(r, g, b uint8)      {}

func (f *fakeFramebuffer) Present() error {
	f.presents++
	return nil
}

type fakeKeyboard chan display.KeyEvent

func (k fakeKeyboard) Events() <-chan display.KeyEvent { return k }

type fakeDisplay struct {
	fb  *fakeFramebuffer
	kbd fakeKeyboard
}

func (d *fakeDisplay) Framebuffer() display.Framebuffer { return d.fb }
func (d *fakeDisplay) Keyboard() display.Keyboard       { return d.kbd }

func newFakeDisplay(w, h int) *fakeDisplay {
	return &fakeDisplay{
		fb:  &fakeFramebuffer{img: image.NewRGBA(image.Rect(0, 0, w, h))},
		kbd: make(fakeKeyboard, 4),
	}
}

func TestViewerRendersOnResizeOnly(t *testing.T) {
	d := newFakeDisplay(40, 40)
	m := mat.NewDense(2, 2, []float64{1, 0, 0, 0})
	step := New(d, Config{Margin: 2}, Images([]*mat.Dense{m}), zerolog.Nop())

	require.NoError(t, step())
	require.NoError(t, step())
	assert.Equal(t, 1, d.fb.presents)
	assert.Equal(t, color.RGBA{A: 0xFF}, d.fb.img.RGBAAt(10, 10))
	assert.Equal(t, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, d.fb.img.RGBAAt(30, 30))

	d.fb.img = image.NewRGBA(image.Rect(0, 0, 60, 30))
	require.NoError(t, step())
	assert.Equal(t, 2, d.fb.presents)
}

func TestViewerQuitKeys(t *testing.T) {
	for _, ev := range []display.KeyEvent{
		{Code: display.KeyEscape, Press: true},
		{Rune: 'q', Press: true},
		{Rune: 0x17, Press: true},
	} {
		d := newFakeDisplay(8, 8)
		step := New(d, Config{}, Images([]*mat.Dense{mat.NewDense(1, 1, nil)}), zerolog.Nop())
		d.kbd <- display.KeyEvent{Rune: 'x', Press: true}
		d.kbd <- ev
		assert.ErrorIs(t, step(), display.ErrClosed, "event %+v", ev)
	}

	d := newFakeDisplay(8, 8)
	step := New(d, Config{}, Images([]*mat.Dense{mat.NewDense(1, 1, nil)}), zerolog.Nop())
	d.kbd <- display.KeyEvent{Code: display.KeyEscape, Press: false}
	assert.NoError(t, step())
}

func TestRunWritesPNG(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		Panels: []Panel{
			{Path: writeSparse(t, dir, "a.sparse", "0 0 5.0\n1 2 3.0\n"), Size: 3},
			{Path: writeSparse(t, dir, "b.sparse", "0 0 0.0\n"), Size: 2, Offset: 1},
		},
		Width:  120,
		Height: 80,
		Margin: 4,
		Out:    filepath.Join(dir, "grid.png"),
	}
	require.NoError(t, Run(context.Background(), cfg, zerolog.Nop()))

	f, err := os.Open(cfg.Out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 120, 80), img.Bounds())
}

func TestRunRejectsBadConfig(t *testing.T) {
	err := Run(context.Background(), Config{Width: 1, Height: 1}, zerolog.Nop())
	require.ErrorIs(t, err, ErrNoPanels)
}

func TestFlagsOverrideDefaults(t *testing.T) {
	f := Flags()
	require.NoError(t, f.Parse([]string{"--width", "300", "--offset", "1", "--size", "27"}))

	v := viper.New()
	SetDefaults(v)
	require.NoError(t, v.BindPFlags(f))

	cfg, err := LoadConfig(v, []string{"thc-8_dif.sparse"})
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Width)
	assert.Equal(t, DefaultHeight, cfg.Height)
	assert.Equal(t, []Panel{{Path: "thc-8_dif.sparse", Size: 27, Offset: 1}}, cfg.Panels)
}
