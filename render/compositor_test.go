package render

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/aeyian/wallpaper/layer"
	"github.com/aeyian/wallpaper/tile"
	"github.com/aeyian/wallpaper/viewport"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
	bg    = color.RGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
)

func solid(id int, hex string, x, y, w, h int) layer.Layer {
	l := layer.NewSolidColor("", hex, layer.Position{X: x, Y: y}, &layer.Size{Width: w, Height: h})
	l.ID = id
	return l
}

func isTile(c color.RGBA) bool {
	return c.R >= 0x23 && c.R <= 0x3a && c.R == c.G && c.G == c.B && c.A == 0xff
}

// A 100x100 canvas on a 140x140 surface maps 1:1 at offset (20, 20).
func newTestCompositor(opts ...Option) (*Compositor, *Surface) {
	return New(100, 100, opts...), NewSurface(140, 140)
}

func TestRenderBackgroundAndTile(t *testing.T) {
	c, s := newTestCompositor()
	c.Render(s.Image(), Frame{})

	if got := s.Image().RGBAAt(5, 5); got != bg {
		t.Errorf("margin pixel = %v, want %v", got, bg)
	}
	if got := s.Image().RGBAAt(70, 70); !isTile(got) {
		t.Errorf("canvas pixel = %v, want a tile color", got)
	}
	if got, want := c.CanvasRect(), image.Rect(20, 20, 120, 120); got != want {
		t.Errorf("CanvasRect() = %v, want %v", got, want)
	}
}

func TestRenderCanvasImageOverTile(t *testing.T) {
	c, s := newTestCompositor()
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for i := range src.Pix {
		if i%4 == 0 || i%4 == 3 {
			src.Pix[i] = 255
		}
	}
	c.Render(s.Image(), Frame{Canvas: src})

	for _, p := range []image.Point{{30, 30}, {70, 70}, {110, 110}} {
		if got := s.Image().RGBAAt(p.X, p.Y); got != red {
			t.Errorf("pixel %v = %v, want %v", p, got, red)
		}
	}
	if got := s.Image().RGBAAt(10, 10); got != bg {
		t.Errorf("margin pixel = %v, want %v", got, bg)
	}
}

func TestRenderDrawOrder(t *testing.T) {
	c, s := newTestCompositor()
	layers := []layer.Layer{
		solid(0, "#0000ff", 0, 0, 100, 100),
		solid(1, "#00ff00", 0, 0, 50, 50),
		solid(2, "#ff0000", 25, 25, 50, 50),
	}
	c.Render(s.Image(), Frame{Layers: layers})

	tests := []struct {
		name string
		p    image.Point
		want func(color.RGBA) bool
	}{
		{"bottom layer only", image.Pt(30, 30), func(c color.RGBA) bool { return c == green }},
		{"top layer wins", image.Pt(60, 60), func(c color.RGBA) bool { return c == red }},
		{"reserved entry skipped", image.Pt(110, 110), isTile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Image().RGBAAt(tt.p.X, tt.p.Y); !tt.want(got) {
				t.Errorf("pixel %v = %v", tt.p, got)
			}
		})
	}
}

func TestRenderHiddenLayers(t *testing.T) {
	hidden := solid(1, "#ff0000", 0, 0, 100, 100)
	hidden.Visible = false
	frame := Frame{Layers: []layer.Layer{hidden}}

	c, s := newTestCompositor()
	c.Render(s.Image(), frame)
	if got := s.Image().RGBAAt(70, 70); !isTile(got) {
		t.Errorf("hidden layer drawn by default: %v", got)
	}

	c, s = newTestCompositor(WithHiddenLayers(true))
	c.Render(s.Image(), frame)
	if got := s.Image().RGBAAt(70, 70); got != red {
		t.Errorf("WithHiddenLayers(true): pixel = %v, want %v", got, red)
	}
}

func TestRenderSkipsUndrawableKinds(t *testing.T) {
	img := layer.New(layer.Stub{Kind: layer.TypeImage})
	img.ID = 1
	odd := layer.New(layer.Unsupported{Kind: "sparkles"})
	odd.ID = 2
	empty := layer.Layer{ID: 3, Visible: true}

	c, s := newTestCompositor()
	c.Render(s.Image(), Frame{Layers: []layer.Layer{img, odd, empty}})
	if got := s.Image().RGBAAt(70, 70); !isTile(got) {
		t.Errorf("pixel = %v, want tile", got)
	}
}

func TestRenderDefaultsAndBadColors(t *testing.T) {
	full := layer.New(layer.SolidColor{Color: "not a color"})
	full.ID = 1

	c, s := newTestCompositor()
	c.Render(s.Image(), Frame{Layers: []layer.Layer{full}})

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if got := s.Image().RGBAAt(20, 20); got != white {
		t.Errorf("top-left canvas pixel = %v, want %v", got, white)
	}
	if got := s.Image().RGBAAt(119, 119); got != white {
		t.Errorf("bottom-right canvas pixel = %v, want %v", got, white)
	}
	if got := s.Image().RGBAAt(120, 120); got != bg {
		t.Errorf("pixel past canvas = %v, want %v", got, bg)
	}
}

func TestRenderClipsLayersToSurface(t *testing.T) {
	c, s := newTestCompositor()
	c.Render(s.Image(), Frame{Layers: []layer.Layer{solid(1, "#ff0000", -500, -500, 2000, 2000)}})
	if got := s.Image().RGBAAt(0, 0); got != red {
		t.Errorf("pixel = %v, want %v", got, red)
	}
}

func TestRenderTranslucentLayer(t *testing.T) {
	c, s := newTestCompositor(WithTileConfig(tile.Config{
		Radius:  12,
		Base:    color.NRGBA{A: 255},
		Palette: [3]color.NRGBA{{A: 255}, {A: 255}, {A: 255}},
	}))
	c.Render(s.Image(), Frame{Layers: []layer.Layer{solid(1, "#ff000080", 0, 0, 100, 100)}})

	got := s.Image().RGBAAt(70, 70)
	if got.R < 0x7e || got.R > 0x81 || got.G != 0 || got.A != 255 {
		t.Errorf("pixel = %v, want half red over black", got)
	}
}

func TestRenderTooSmall(t *testing.T) {
	c := New(100, 100)
	s := NewSurface(30, 30)
	c.Render(s.Image(), Frame{Layers: []layer.Layer{solid(1, "#ff0000", 0, 0, 100, 100)}})

	if got := s.Image().RGBAAt(15, 15); got != bg {
		t.Errorf("pixel = %v, want background", got)
	}
	if got := c.Transform(); got != viewport.Identity() {
		t.Errorf("Transform() = %+v, want identity", got)
	}
	if st := c.Tiles().Stats(); st.Rebuilds != 0 {
		t.Errorf("Rebuilds = %d, want 0", st.Rebuilds)
	}
}

func TestRenderRebuildsTileOnlyOnResize(t *testing.T) {
	c := New(1920, 1080)
	s := NewSurface(960, 540)

	for range 3 {
		c.Render(s.Image(), Frame{})
	}
	if st := c.Tiles().Stats(); st.Rebuilds != 1 || st.Hits != 2 {
		t.Errorf("after 3 renders: Rebuilds = %d, Hits = %d, want 1, 2", st.Rebuilds, st.Hits)
	}

	c.Render(NewSurface(800, 600).Image(), Frame{})
	if st := c.Tiles().Stats(); st.Rebuilds != 2 {
		t.Errorf("after resize: Rebuilds = %d, want 2", st.Rebuilds)
	}
}

func TestSharedTileCache(t *testing.T) {
	cache := tile.New(tile.DefaultConfig())
	a := New(100, 100, WithTileCache(cache))
	b := New(100, 100, WithTileCache(cache))

	a.Render(NewSurface(140, 140).Image(), Frame{})
	b.Render(NewSurface(140, 140).Image(), Frame{})

	if st := cache.Stats(); st.Rebuilds != 1 || st.Hits != 1 {
		t.Errorf("Stats() = %+v, want 1 rebuild and 1 hit", st)
	}
}

func TestLayerRectFollowsTransform(t *testing.T) {
	c := New(1920, 1080)
	if !c.Resize(960, 540) {
		t.Fatal("Resize(960, 540) = false")
	}

	full := layer.New(layer.SolidColor{Color: "#fff"})
	if got, want := c.LayerRect(full), c.CanvasRect(); got != want {
		t.Errorf("LayerRect(full) = %v, want %v", got, want)
	}

	tr := c.Transform()
	if math.Abs(tr.OffsetY-20) > 1e-9 {
		t.Errorf("OffsetY = %v, want 20", tr.OffsetY)
	}

	zero := solid(1, "#fff", 10, 10, 0, 0)
	if got := c.LayerRect(zero); !got.Empty() {
		t.Errorf("LayerRect(zero size) = %v, want empty", got)
	}
}

func TestRenderIntoSubImage(t *testing.T) {
	c := New(100, 100)
	full := NewSurface(200, 200)
	sub := full.Image().SubImage(image.Rect(60, 60, 200, 200)).(*image.RGBA)

	c.Render(sub, Frame{Layers: []layer.Layer{solid(1, "#ff0000", 0, 0, 100, 100)}})

	if got := full.Image().RGBAAt(85, 85); got != red {
		t.Errorf("pixel inside sub image canvas = %v, want %v", got, red)
	}
	if got := full.Image().RGBAAt(10, 10); got != (color.RGBA{}) {
		t.Errorf("pixel outside sub image = %v, want untouched", got)
	}
}
