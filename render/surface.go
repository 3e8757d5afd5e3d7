package render

import (
	"image"

	"github.com/aeyian/wallpaper/internal/imageio"
)

// Surface is a CPU-backed render target.
type Surface struct {
	img *image.RGBA
}

// NewSurface creates a transparent width x height surface.
func NewSurface(width, height int) *Surface {
	return &Surface{
		img: image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
	}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.img.Bounds().Dx()
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.img.Bounds().Dy()
}

// Image returns the underlying image. It shares memory with the surface.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// SavePNG writes the surface to path.
func (s *Surface) SavePNG(path string) error {
	return imageio.SavePNG(path, s.img)
}
