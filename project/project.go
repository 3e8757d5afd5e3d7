package project

import (
	"encoding/json"
	"path/filepath"

	"github.com/aeyian/wallpaper/internal/jsonobj"
	"github.com/aeyian/wallpaper/layer"
)

// On-disk names inside a project directory.
const (
	ManifestFile = "project.json"
	PreviewFile  = "preview.png"
	CanvasFile   = "canvas.png"
	AssetsDir    = "assets"
)

// Canvas size assumed when a manifest is unreadable or has no usable
// resolution.
const (
	DefaultWidth  = 1920
	DefaultHeight = 1080
)

// Resolution is the canvas size in pixels.
type Resolution struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Valid reports whether both dimensions are positive.
func (r Resolution) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

// Size returns r as a layer size, the extent of a full-canvas layer.
func (r Resolution) Size() layer.Size {
	return layer.Size{Width: r.Width, Height: r.Height}
}

// Project is the in-memory form of a manifest.
type Project struct {
	// ID never changes after creation.
	ID            string
	Name          string
	FormatVersion string
	EditorVersion string
	// Resolution is fixed for the project's lifetime.
	Resolution Resolution
	Layers     []layer.Layer
	Properties map[string]json.RawMessage

	// Extra holds top-level manifest members this version does not interpret.
	Extra map[string]json.RawMessage

	// Dir is the project directory. It is not stored in the manifest.
	Dir string
	// Degraded is set when the manifest could not be read and defaults were
	// substituted. Saving a degraded project overwrites the bad manifest.
	Degraded bool
}

// Summary is what a project listing shows.
type Summary struct {
	ID            string
	Name          string
	FormatVersion string
	EditorVersion string
	Resolution    Resolution
	Dir           string
}

// MarshalJSON writes the manifest in schema order followed by Extra.
func (p Project) MarshalJSON() ([]byte, error) {
	layers := p.Layers
	if layers == nil {
		layers = []layer.Layer{}
	}
	props := p.Properties
	if props == nil {
		props = map[string]json.RawMessage{}
	}
	return jsonobj.Marshal([]jsonobj.Field{
		{Key: "id", Value: p.ID},
		{Key: "name", Value: p.Name},
		{Key: "format_version", Value: p.FormatVersion},
		{Key: "editor_version", Value: p.EditorVersion},
		{Key: "resolution", Value: p.Resolution},
		{Key: "layers", Value: layers},
		{Key: "properties", Value: props},
	}, p.Extra)
}

// UnmarshalJSON reads a manifest. Absent members stay zero; Load fills in
// defaults that depend on the directory.
func (p *Project) UnmarshalJSON(data []byte) error {
	m, err := jsonobj.Split(data)
	if err != nil {
		return err
	}

	var out Project
	targets := []struct {
		key string
		dst any
	}{
		{"id", &out.ID},
		{"name", &out.Name},
		{"format_version", &out.FormatVersion},
		{"editor_version", &out.EditorVersion},
		{"resolution", &out.Resolution},
		{"layers", &out.Layers},
		{"properties", &out.Properties},
	}
	for _, t := range targets {
		if _, err := jsonobj.Take(m, t.key, t.dst); err != nil {
			return err
		}
	}
	if len(m) > 0 {
		out.Extra = m
	}

	*p = out
	return nil
}

// Summary returns the listing entry for p.
func (p *Project) Summary() Summary {
	return Summary{
		ID:            p.ID,
		Name:          p.Name,
		FormatVersion: p.FormatVersion,
		EditorVersion: p.EditorVersion,
		Resolution:    p.Resolution,
		Dir:           p.Dir,
	}
}

// ManifestPath returns the manifest location.
func (p *Project) ManifestPath() string { return filepath.Join(p.Dir, ManifestFile) }

// PreviewPath returns the thumbnail location.
func (p *Project) PreviewPath() string { return filepath.Join(p.Dir, PreviewFile) }

// CanvasPath returns the canvas image location.
func (p *Project) CanvasPath() string { return filepath.Join(p.Dir, CanvasFile) }

// applyDefaults fills what a readable but incomplete manifest left out.
func (p *Project) applyDefaults() {
	base := filepath.Base(p.Dir)
	if p.ID == "" {
		p.ID = base
	}
	if p.Name == "" {
		p.Name = base
	}
	if !p.Resolution.Valid() {
		p.Resolution = Resolution{Width: DefaultWidth, Height: DefaultHeight}
	}
	if p.Layers == nil {
		p.Layers = []layer.Layer{}
	}
	if p.Properties == nil {
		p.Properties = map[string]json.RawMessage{}
	}
}

// degraded returns the stand-in for a project whose manifest is unusable.
func degraded(dir string) *Project {
	base := filepath.Base(dir)
	return &Project{
		ID:         base,
		Name:       base,
		Resolution: Resolution{Width: DefaultWidth, Height: DefaultHeight},
		Layers:     []layer.Layer{},
		Properties: map[string]json.RawMessage{},
		Dir:        dir,
		Degraded:   true,
	}
}
