// Package viewport fits a fixed-resolution canvas into a display surface.
//
// The transform is a uniform scale plus an offset that centers the scaled
// canvas on the surface, leaving at least a padding margin on every side.
// It is the single mapping from canvas space to surface pixels: the tile
// background, the canvas image and every layer go through it.
package viewport

import (
	"image"
	"math"
)

// Rect is an axis-aligned rectangle in surface space. The origin is at the
// top-left with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Aligned returns the smallest integer rectangle that contains r.
func (r Rect) Aligned() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)),
		int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.Width)),
		int(math.Ceil(r.Y+r.Height)),
	)
}

// Transform maps canvas coordinates to surface coordinates:
//
//	surface = canvas*Scale + Offset
type Transform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// Identity returns the transform used before the first successful fit.
func Identity() Transform {
	return Transform{Scale: 1}
}

// Fit computes the transform placing a canvasW x canvasH canvas on a
// surfaceW x surfaceH surface with padding on each side:
//
//	scale = min((sw-2p)/cw, (sh-2p)/ch)
//	offsetX = (sw - cw*scale) / 2
//	offsetY = (sh - ch*scale) / 2
//
// ok is false when the available area or the canvas has no extent; the
// returned transform is then meaningless.
func Fit(canvasW, canvasH, surfaceW, surfaceH int, padding float64) (t Transform, ok bool) {
	availW := float64(surfaceW) - padding*2
	availH := float64(surfaceH) - padding*2
	if availW <= 0 || availH <= 0 || canvasW <= 0 || canvasH <= 0 {
		return Transform{}, false
	}

	scale := math.Max(0, math.Min(availW/float64(canvasW), availH/float64(canvasH)))
	return Transform{
		Scale:   scale,
		OffsetX: (float64(surfaceW) - float64(canvasW)*scale) / 2,
		OffsetY: (float64(surfaceH) - float64(canvasH)*scale) / 2,
	}, true
}

// Update refits t for a new surface size. When the fit is impossible t
// keeps its previous value and Update returns false.
func (t *Transform) Update(canvasW, canvasH, surfaceW, surfaceH int, padding float64) bool {
	next, ok := Fit(canvasW, canvasH, surfaceW, surfaceH, padding)
	if !ok {
		return false
	}
	*t = next
	return true
}

// Apply maps a canvas point to surface space.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.OffsetX + x*t.Scale, t.OffsetY + y*t.Scale
}

// Invert maps a surface point back to canvas space. It returns ok false
// for a degenerate transform.
func (t Transform) Invert(sx, sy float64) (x, y float64, ok bool) {
	if t.Scale == 0 {
		return 0, 0, false
	}
	return (sx - t.OffsetX) / t.Scale, (sy - t.OffsetY) / t.Scale, true
}

// MapRect maps a canvas-space rectangle to surface space.
func (t Transform) MapRect(x, y, w, h float64) Rect {
	sx, sy := t.Apply(x, y)
	return Rect{X: sx, Y: sy, Width: w * t.Scale, Height: h * t.Scale}
}

// CanvasRect returns the surface rectangle covered by the whole canvas.
func (t Transform) CanvasRect(canvasW, canvasH int) Rect {
	return t.MapRect(0, 0, float64(canvasW), float64(canvasH))
}
