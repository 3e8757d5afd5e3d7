// Package tile generates the hexagon background that marks a canvas with
// no image set, and memoizes it by pixel size.
//
// Hexagons are pointy-top with radius r, width √3·r and rows spaced 1.5·r
// apart; odd rows shift right by half a hexagon. Hexagon (row, col) is
// filled with Palette[((row mod 3) + col) mod 3] over a Base fill. Rows and
// columns run from -1 through one past the visible extent so nothing is
// left uncovered at the edges.
package tile

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	wpcolor "github.com/aeyian/wallpaper/internal/color"
)

// Config describes the pattern. Use DefaultConfig as a starting point.
type Config struct {
	// Radius is the hexagon circumradius in surface pixels.
	Radius float64
	// Base is painted first and shows through the anti-aliased seams.
	Base color.NRGBA
	// Palette holds the three hexagon fills.
	Palette [3]color.NRGBA
}

// DefaultConfig returns the dark three-tone pattern.
func DefaultConfig() Config {
	return Config{
		Radius: 12,
		Base:   wpcolor.MustHex("#232323"),
		Palette: [3]color.NRGBA{
			wpcolor.MustHex("#3a3a3a"),
			wpcolor.MustHex("#2e2e2e"),
			wpcolor.MustHex("#232323"),
		},
	}
}

// Generate renders a w x h pattern. It returns nil when either dimension
// is not positive. A non-positive radius is replaced by the default one.
func Generate(w, h int, cfg Config) *image.RGBA {
	if w <= 0 || h <= 0 {
		return nil
	}
	r := cfg.Radius
	if r <= 0 {
		r = DefaultConfig().Radius
	}

	hexW := math.Sqrt(3) * r
	rowStep := 1.5 * r
	rows := int(float64(h)/rowStep) + 3
	cols := int(float64(w)/hexW) + 3

	// Every hexagon, including row/column -1 and the trailing ones, must lie
	// inside the padded scratch image so the rasterizer never clips.
	pad := int(math.Ceil(3*hexW+4*r)) + 2
	boxW := int(math.Ceil(hexW)) + 3
	boxH := int(math.Ceil(2*r)) + 3

	scratch := image.NewRGBA(image.Rect(0, 0, w+2*pad, h+2*pad))
	draw.Draw(scratch, scratch.Bounds(), image.NewUniform(cfg.Base), image.Point{}, draw.Src)

	fills := [3]*image.Uniform{
		image.NewUniform(cfg.Palette[0]),
		image.NewUniform(cfg.Palette[1]),
		image.NewUniform(cfg.Palette[2]),
	}

	var z vector.Rasterizer
	for row := -1; row < rows; row++ {
		for col := -1; col < cols; col++ {
			cx := float64(col) * hexW
			if floorMod(row, 2) == 1 {
				cx += hexW / 2
			}
			cy := float64(row) * rowStep

			// Box origin in pattern space, then in scratch space.
			ox := math.Floor(cx-hexW/2) - 1
			oy := math.Floor(cy-r) - 1
			bx := int(ox) + pad
			by := int(oy) + pad

			z.Reset(boxW, boxH)
			for i := 0; i < 6; i++ {
				a := float64(60*i-30) * math.Pi / 180
				px := float32(cx + r*math.Cos(a) - ox)
				py := float32(cy + r*math.Sin(a) - oy)
				if i == 0 {
					z.MoveTo(px, py)
				} else {
					z.LineTo(px, py)
				}
			}
			z.ClosePath()
			z.Draw(scratch, image.Rect(bx, by, bx+boxW, by+boxH), fills[paletteIndex(row, col)], image.Point{})
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), scratch, image.Pt(pad, pad), draw.Src)
	return out
}

// paletteIndex returns ((row mod 3) + col) mod 3 with floored modulo, so
// row and column -1 continue the sequence instead of going negative.
func paletteIndex(row, col int) int {
	return floorMod(floorMod(row, 3)+col, 3)
}

func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
