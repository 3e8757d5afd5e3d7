package project

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Preview thumbnail geometry and colors.
const (
	PreviewWidth  = 160
	PreviewHeight = 90

	previewFontSize = 12
	previewMargin   = 8
)

var (
	// PlaceholderColor fills a freshly created project's thumbnail.
	PlaceholderColor = color.NRGBA{R: 0xe1, G: 0x3b, B: 0x3e, A: 0xff}

	previewText = color.NRGBA{R: 0xe1, G: 0xe1, B: 0xe1, A: 0xff}
)

var regularFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// Placeholder returns the thumbnail shown before a project has been
// rendered: a flat fill with the project name centered on it. When the font
// cannot be loaded the label is omitted.
func Placeholder(name string, fill color.NRGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, PreviewWidth, PreviewHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)

	face, err := newPreviewFace()
	if err != nil {
		return img
	}
	defer func() { _ = face.Close() }()

	label := fitLabel(face, name, PreviewWidth-2*previewMargin)
	if label == "" {
		return img
	}

	m := face.Metrics()
	width := font.MeasureString(face, label)
	x := (fixed.I(PreviewWidth) - width) / 2
	y := (fixed.I(PreviewHeight) + m.Ascent - m.Descent) / 2

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(previewText),
		Face: face,
		Dot:  fixed.Point26_6{X: x, Y: y},
	}
	d.DrawString(label)
	return img
}

// newPreviewFace returns a fresh face; faces are not safe for concurrent use.
func newPreviewFace() (font.Face, error) {
	f, err := regularFont()
	if err != nil {
		return nil, fmt.Errorf("project: parse preview font: %w", err)
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    previewFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// fitLabel shortens s with an ellipsis until it fits in maxWidth pixels.
func fitLabel(face font.Face, s string, maxWidth int) string {
	limit := fixed.I(maxWidth)
	if font.MeasureString(face, s) <= limit {
		return s
	}
	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		cand := string(runes[:n]) + "…"
		if font.MeasureString(face, cand) <= limit {
			return cand
		}
	}
	return ""
}
