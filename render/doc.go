// Package render composites a project onto a display surface.
//
// A frame is drawn bottom to top:
//
//  1. the whole surface is filled with the background color;
//  2. the hexagon tile pattern covers the canvas rectangle;
//  3. the canvas image, when there is one, is scaled over the tile;
//  4. every listable layer is drawn in stack order.
//
// All canvas geometry goes through one [viewport.Transform], refitted
// whenever the surface size changes. The tile pattern comes from a
// [tile.Cache] keyed by the canvas rectangle size, so repainting at a
// fixed size never regenerates it.
//
// Hidden layers are skipped unless [WithHiddenLayers] is set. Layer kinds
// other than solid color draw nothing.
//
// # Usage
//
//	c := render.New(1920, 1080)
//	surface := render.NewSurface(960, 540)
//	c.Render(surface.Image(), render.Frame{Layers: p.Layers})
//	err := surface.SavePNG("out.png")
package render
