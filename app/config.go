package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"sparsegraph/heatmap"
)

// Panel is one sparse file shown in the viewer.
type Panel struct {
	Path string `mapstructure:"path"`
	// Size is the matrix dimension; zero infers it from the file.
	Size int `mapstructure:"size"`
	// Offset is added to every value read from the file.
	Offset float64 `mapstructure:"offset"`
}

// Config is the viewer configuration, merged from flags, environment
// and an optional config file.
type Config struct {
	Panels []Panel `mapstructure:"panels"`
	Width  int     `mapstructure:"width"`
	Height int     `mapstructure:"height"`
	Margin int     `mapstructure:"margin"`
	Title  string  `mapstructure:"title"`
	// Out, when set, writes a PNG instead of opening a window.
	Out string `mapstructure:"out"`
}

// Defaults are registered on the viper instance by SetDefaults.
const (
	DefaultWidth  = 800
	DefaultHeight = 800
	DefaultMargin = 16
	DefaultTitle  = "sparsegraph"
)

// Flags declares the viewer's command-line flags. Their names match the
// Config keys so they can be bound with viper.BindPFlags.
func Flags() *pflag.FlagSet {
	f := pflag.NewFlagSet("viewer", pflag.ContinueOnError)
	f.Int("size", 0, "matrix dimension for files given without :SIZE (0 infers it)")
	f.Float64("offset", 0, "value added to every entry, e.g. 1 to tell stored zeros from absent cells")
	f.String("out", "", "write the figure to this PNG file instead of opening a window")
	f.Int("width", DefaultWidth, "window or image width in pixels")
	f.Int("height", DefaultHeight, "window or image height in pixels")
	f.Int("margin", DefaultMargin, "space around each panel in pixels")
	f.String("title", DefaultTitle, "window title")
	return f
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("width", DefaultWidth)
	v.SetDefault("height", DefaultHeight)
	v.SetDefault("margin", DefaultMargin)
	v.SetDefault("title", DefaultTitle)
	v.SetDefault("size", 0)
	v.SetDefault("offset", 0.0)
}

// LoadConfig reads the configuration from v. Each positional argument of
// the form FILE[:SIZE] is appended as a panel using the "size" and
// "offset" settings as defaults.
func LoadConfig(v *viper.Viper, args []string) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("app: decode config: %w", err)
	}
	for _, arg := range args {
		p, err := ParsePanel(arg, v.GetInt("size"), v.GetFloat64("offset"))
		if err != nil {
			return Config{}, err
		}
		cfg.Panels = append(cfg.Panels, p)
	}
	return cfg, cfg.Validate()
}

// ParsePanel parses "FILE" or "FILE:SIZE".
func ParsePanel(arg string, size int, offset float64) (Panel, error) {
	path := arg
	if i := strings.LastIndexByte(arg, ':'); i >= 0 {
		n, err := strconv.Atoi(arg[i+1:])
		if err == nil {
			path, size = arg[:i], n
		}
	}
	if path == "" {
		return Panel{}, fmt.Errorf("app: empty panel path in %q", arg)
	}
	return Panel{Path: path, Size: size, Offset: offset}, nil
}

var ErrNoPanels = errors.New("app: no sparse files given")

// Validate checks the panel count and dimensions.
func (c Config) Validate() error {
	switch {
	case len(c.Panels) == 0:
		return ErrNoPanels
	case len(c.Panels) > heatmap.MaxPanels:
		return fmt.Errorf("%w: %d", heatmap.ErrTooManyPanels, len(c.Panels))
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("app: invalid size %dx%d", c.Width, c.Height)
	case c.Margin < 0:
		return fmt.Errorf("app: negative margin %d", c.Margin)
	}
	for _, p := range c.Panels {
		if p.Size < 0 {
			return fmt.Errorf("app: %s: negative size %d", p.Path, p.Size)
		}
	}
	return nil
}
