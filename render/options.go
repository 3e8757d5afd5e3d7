package render

import (
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/aeyian/wallpaper/tile"
)

// Option configures a Compositor during creation.
type Option func(*options)

type options struct {
	padding    float64
	background color.NRGBA
	tiles      tile.Config
	cache      *tile.Cache
	scaler     xdraw.Interpolator
	hidden     bool
}

// DefaultPadding is the minimum margin around the canvas, in surface pixels.
const DefaultPadding = 20

// DefaultBackground is the surface fill behind the canvas (#1e1e1e).
var DefaultBackground = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}

func defaultOptions() options {
	return options{
		padding:    DefaultPadding,
		background: DefaultBackground,
		tiles:      tile.DefaultConfig(),
		scaler:     xdraw.ApproxBiLinear,
	}
}

// WithPadding sets the margin kept around the canvas. Negative values are
// treated as zero.
func WithPadding(p float64) Option {
	return func(o *options) {
		o.padding = max(p, 0)
	}
}

// WithBackground sets the surface fill color.
func WithBackground(c color.NRGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithTileConfig sets the hexagon pattern drawn behind the canvas.
// It is ignored when WithTileCache is also given.
func WithTileConfig(cfg tile.Config) Option {
	return func(o *options) {
		o.tiles = cfg
	}
}

// WithTileCache shares a tile cache between compositors.
func WithTileCache(c *tile.Cache) Option {
	return func(o *options) {
		o.cache = c
	}
}

// WithInterpolator sets how the canvas image is resampled. The default is
// xdraw.ApproxBiLinear; xdraw.CatmullRom gives smoother exports.
func WithInterpolator(i xdraw.Interpolator) Option {
	return func(o *options) {
		if i != nil {
			o.scaler = i
		}
	}
}

// WithHiddenLayers makes the compositor draw layers whose visible flag is
// false.
func WithHiddenLayers(include bool) Option {
	return func(o *options) {
		o.hidden = include
	}
}
