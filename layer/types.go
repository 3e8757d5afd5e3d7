package layer

import (
	"encoding/json"
	"fmt"
)

// Reserved is the id of the canvas background entry.
const Reserved = 0

// DefaultColor is the fill of a solid color layer that names no color.
const DefaultColor = "#ffffff"

// Type names a layer kind as written in the manifest.
type Type string

// Layer kinds. Only TypeSolidColor is rendered; the others occupy a slot in
// the stack and are skipped by the compositor.
const (
	TypeSolidColor    Type = "solid_color"
	TypeImage         Type = "image"
	TypeVideo         Type = "video"
	TypeAudioReactive Type = "audio_reactive"
)

// Known reports whether t is one of the kinds listed in the catalog.
func (t Type) Known() bool {
	switch t {
	case TypeSolidColor, TypeImage, TypeVideo, TypeAudioReactive:
		return true
	}
	return false
}

// Label returns the human readable name shown in "Add Layer" menus.
func (t Type) Label() string {
	switch t {
	case TypeSolidColor:
		return "Color Layer"
	case TypeImage:
		return "Image Layer"
	case TypeVideo:
		return "Video Layer"
	case TypeAudioReactive:
		return "Audio Reactive Layer"
	}
	return string(t)
}

// Category groups layer kinds for presentation.
type Category struct {
	Name  string
	Types []Type
}

// Catalog returns the layer kinds an editor offers, grouped by category.
func Catalog() []Category {
	return []Category{
		{Name: "Basic", Types: []Type{TypeImage, TypeSolidColor}},
		{Name: "Media", Types: []Type{TypeVideo, TypeAudioReactive}},
	}
}

// Position is a canvas-space offset in pixels.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is a canvas-space extent in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Content is the kind-specific part of a layer. The set of implementations
// is closed: SolidColor, Stub and Unsupported.
type Content interface {
	Type() Type
	isContent()
}

// SolidColor fills the layer rectangle with one color.
type SolidColor struct {
	// Color is a hex string such as "#3a41e1".
	Color string
}

// Stub is a kind the editor knows about but cannot render yet.
type Stub struct {
	Kind Type
}

// Unsupported is a kind this version does not recognize. It round-trips
// through the manifest untouched.
type Unsupported struct {
	Kind Type
}

func (SolidColor) Type() Type    { return TypeSolidColor }
func (s Stub) Type() Type        { return s.Kind }
func (u Unsupported) Type() Type { return u.Kind }

func (SolidColor) isContent()  {}
func (Stub) isContent()        {}
func (Unsupported) isContent() {}

// contentFor returns the variant for a manifest type name.
func contentFor(t Type) Content {
	switch {
	case t == TypeSolidColor:
		return SolidColor{Color: DefaultColor}
	case t.Known():
		return Stub{Kind: t}
	default:
		return Unsupported{Kind: t}
	}
}

// Layer is one entry of a project's layer stack.
type Layer struct {
	ID       int
	Name     string
	Position Position
	// Size is nil when the layer covers the full canvas.
	Size    *Size
	Visible bool
	Content Content

	// Extra holds manifest members this version does not interpret.
	Extra map[string]json.RawMessage
}

// New returns a visible, full-canvas layer with the given content.
// The id is assigned by Add.
func New(c Content) Layer {
	return Layer{Visible: true, Content: c}
}

// NewSolidColor returns a visible solid color layer.
func NewSolidColor(name, color string, pos Position, size *Size) Layer {
	l := New(SolidColor{Color: color})
	l.Name = name
	l.Position = pos
	l.Size = size
	return l
}

// Type returns the layer's kind, or "" when it has no content.
func (l Layer) Type() Type {
	if l.Content == nil {
		return ""
	}
	return l.Content.Type()
}

// Bounds returns the layer rectangle in canvas space, resolving a nil Size
// to the full canvas.
func (l Layer) Bounds(canvas Size) (Position, Size) {
	if l.Size == nil {
		return l.Position, canvas
	}
	return l.Position, *l.Size
}

// DefaultName returns the display name used when a layer has none.
func DefaultName(id int) string {
	return fmt.Sprintf("Layer %d", id)
}
