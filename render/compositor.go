package render

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/aeyian/wallpaper"
	wpcolor "github.com/aeyian/wallpaper/internal/color"
	"github.com/aeyian/wallpaper/layer"
	"github.com/aeyian/wallpaper/tile"
	"github.com/aeyian/wallpaper/viewport"
)

// Frame is what one Render call draws.
type Frame struct {
	// Canvas is the imported canvas image, or nil. It is stretched to the
	// canvas rectangle.
	Canvas image.Image
	// Layers is the stack in render order. Entry 0 is never drawn.
	Layers []layer.Layer
}

// Compositor draws frames of one fixed-resolution canvas onto surfaces of
// any size.
//
// Compositor is safe for concurrent use; Render calls are serialized.
type Compositor struct {
	mu sync.Mutex

	canvas    layer.Size
	opts      options
	tiles     *tile.Cache
	transform viewport.Transform
	surface   image.Point
	fitted    bool
}

// New creates a compositor for a canvasW x canvasH canvas.
func New(canvasW, canvasH int, opts ...Option) *Compositor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cache := o.cache
	if cache == nil {
		cache = tile.New(o.tiles)
	}

	return &Compositor{
		canvas:    layer.Size{Width: canvasW, Height: canvasH},
		opts:      o,
		tiles:     cache,
		transform: viewport.Identity(),
	}
}

// CanvasSize returns the canvas resolution.
func (c *Compositor) CanvasSize() layer.Size {
	return c.canvas
}

// Tiles returns the tile cache used for the canvas background.
func (c *Compositor) Tiles() *tile.Cache {
	return c.tiles
}

// Transform returns the transform of the last fitted surface. Before the
// first successful fit it is the identity.
func (c *Compositor) Transform() viewport.Transform {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transform
}

// Resize refits the transform for a w x h surface. It is a no-op when the
// size has not changed. It reports whether a usable transform exists.
func (c *Compositor) Resize(w, h int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resize(w, h)
}

func (c *Compositor) resize(w, h int) bool {
	size := image.Pt(w, h)
	if size == c.surface {
		return c.fitted
	}
	c.surface = size
	// On failure the previous transform is kept, but nothing is drawn with
	// it until a fit succeeds again.
	c.fitted = c.transform.Update(c.canvas.Width, c.canvas.Height, w, h, c.opts.padding)
	return c.fitted
}

// CanvasRect returns the surface pixels covered by the canvas for the
// current transform.
func (c *Compositor) CanvasRect() image.Rectangle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canvasRect()
}

func (c *Compositor) canvasRect() image.Rectangle {
	return c.transform.CanvasRect(c.canvas.Width, c.canvas.Height).Aligned()
}

// Render draws f onto dst, refitting to dst's size first. When the canvas
// cannot fit (surface smaller than twice the padding) only the background
// is drawn.
func (c *Compositor) Render(dst draw.Image, f Frame) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b := dst.Bounds()
	draw.Draw(dst, b, image.NewUniform(c.opts.background), image.Point{}, draw.Src)
	if !c.resize(b.Dx(), b.Dy()) {
		return
	}

	rect := c.canvasRect().Add(b.Min)
	if pattern := c.tiles.Get(rect.Dx(), rect.Dy()); pattern != nil {
		draw.Draw(dst, rect, pattern, image.Point{}, draw.Src)
	}

	if f.Canvas != nil {
		c.opts.scaler.Scale(dst, rect, f.Canvas, f.Canvas.Bounds(), draw.Over, nil)
	}

	for l := range layer.Listable(f.Layers) {
		if !l.Visible && !c.opts.hidden {
			continue
		}
		c.drawLayer(dst, b.Min, l)
	}
}

// drawLayer draws one stack entry. Kinds without a renderer are skipped.
func (c *Compositor) drawLayer(dst draw.Image, origin image.Point, l layer.Layer) {
	switch content := l.Content.(type) {
	case layer.SolidColor:
		r := c.layerRect(l).Add(origin).Intersect(dst.Bounds())
		if r.Empty() {
			return
		}
		fill := wpcolor.Hex(content.Color, white)
		draw.Draw(dst, r, image.NewUniform(fill), image.Point{}, draw.Over)
	default:
		wallpaper.Logger().Debug("render: layer kind not drawn", "id", l.ID, "type", l.Type())
	}
}

// LayerRect returns the surface pixels covered by l for the current
// transform. A layer without a size covers the whole canvas.
func (c *Compositor) LayerRect(l layer.Layer) image.Rectangle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.layerRect(l)
}

func (c *Compositor) layerRect(l layer.Layer) image.Rectangle {
	pos, size := l.Bounds(c.canvas)
	r := c.transform.MapRect(float64(pos.X), float64(pos.Y), float64(size.Width), float64(size.Height))
	if r.Empty() {
		return image.Rectangle{}
	}
	return r.Aligned()
}

var white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
