package app

import (
	"fmt"
	"image"
	"image/draw"
	"slices"
	"sync"

	"github.com/aeyian/wallpaper"
	"github.com/aeyian/wallpaper/layer"
	"github.com/aeyian/wallpaper/project"
	"github.com/aeyian/wallpaper/render"
)

// Session is an open project. It holds the authoritative in-memory layer
// stack; every structural change is written to the manifest before the
// call returns, and rolled back in memory if the write fails.
//
// Session is safe for concurrent use.
type Session struct {
	mu     sync.Mutex
	p      *project.Project
	lock   *Lock
	comp   *render.Compositor
	opts   []render.Option
	canvas image.Image
	loaded bool
	closed bool
}

func newSession(p *project.Project, lock *Lock, opts []render.Option) *Session {
	return &Session{
		p:    p,
		lock: lock,
		comp: render.New(p.Resolution.Width, p.Resolution.Height, opts...),
		opts: opts,
	}
}

// ID returns the project id.
func (s *Session) ID() string {
	return s.p.ID
}

// Dir returns the project directory.
func (s *Session) Dir() string {
	return s.p.Dir
}

// Project returns a copy of the project with its own layer slice.
func (s *Session) Project() project.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := *s.p
	p.Layers = slices.Clone(s.p.Layers)
	return p
}

// Layers returns the editable layers in stack order, without the reserved
// entry.
func (s *Session) Layers() []layer.Layer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Collect(layer.Listable(s.p.Layers))
}

// Compositor returns the compositor used by Render.
func (s *Session) Compositor() *render.Compositor {
	return s.comp
}

// SetVisibility shows or hides a layer. Unknown ids are ignored and
// nothing is written.
func (s *Session) SetVisibility(id int, visible bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}

	cur, ok := layer.Find(s.p.Layers, id)
	if !ok || cur.Visible == visible {
		return nil
	}
	return s.commit(layer.SetVisibility(s.p.Layers, id, visible))
}

// AddLayer puts l on top of the stack and returns it with its assigned id.
func (s *Session) AddLayer(l layer.Layer) (layer.Layer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return layer.Layer{}, ErrSessionClosed
	}

	next, added := layer.Add(s.p.Layers, l)
	if err := s.commit(next); err != nil {
		return layer.Layer{}, err
	}
	wallpaper.Logger().Debug("app: layer added", "project", s.p.ID, "layer", added.ID, "type", added.Type())
	return added, nil
}

// RemoveLayer deletes a layer. Removing the reserved entry fails with
// layer.ErrReservedLayer; unknown ids are ignored.
func (s *Session) RemoveLayer(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}

	if _, ok := layer.Find(s.p.Layers, id); !ok && id != layer.Reserved {
		return nil
	}
	next, err := layer.Remove(s.p.Layers, id)
	if err != nil {
		return err
	}
	return s.commit(next)
}

// Rename changes the project's display name. A session opened on an
// unreadable manifest keeps that file as it is: the rename is skipped and
// logged, and nil is returned.
func (s *Session) Rename(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}

	name = project.NormalizeName(name)
	if name == "" {
		return project.ErrInvalidName
	}
	if s.p.Degraded {
		wallpaper.Logger().Warn("app: rename skipped, manifest is unreadable", "id", s.p.ID)
		return nil
	}
	if err := project.Rename(s.p.Dir, name); err != nil {
		return err
	}
	s.p.Name = name
	return nil
}

// commit installs next as the stack and saves it. On failure the previous
// stack is restored.
func (s *Session) commit(next []layer.Layer) error {
	prev := s.p.Layers
	s.p.Layers = next
	if err := project.Save(s.p); err != nil {
		s.p.Layers = prev
		return fmt.Errorf("app: save %s: %w", s.p.ID, err)
	}
	return nil
}

// ImportCanvas replaces the project's canvas image with the file at src.
func (s *Session) ImportCanvas(src string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}

	if err := project.ImportCanvas(s.p, src); err != nil {
		return err
	}
	s.canvas, s.loaded = nil, false
	return nil
}

// canvasImage loads canvas.png once per import.
func (s *Session) canvasImage() image.Image {
	if s.loaded {
		return s.canvas
	}
	img, err := project.Canvas(s.p)
	if err != nil {
		wallpaper.Logger().Warn("app: canvas image unreadable, drawing tiles", "project", s.p.ID, "err", err)
	}
	s.canvas, s.loaded = img, true
	return img
}

// Render draws the editor view of the project onto dst.
func (s *Session) Render(dst draw.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comp.Render(dst, render.Frame{Canvas: s.canvasImage(), Layers: s.p.Layers})
}

// Export renders the project at width x height with no margin, as a
// wallpaper would be shown.
func (s *Session) Export(width, height int) *render.Surface {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.export(width, height)
}

func (s *Session) export(width, height int) *render.Surface {
	opts := append(slices.Clone(s.opts), render.WithPadding(0))
	c := render.New(s.p.Resolution.Width, s.p.Resolution.Height, opts...)
	surface := render.NewSurface(width, height)
	c.Render(surface.Image(), render.Frame{Canvas: s.canvasImage(), Layers: s.p.Layers})
	return surface
}

// RefreshPreview re-renders preview.png from the current state.
func (s *Session) RefreshPreview() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	return project.WritePreview(s.p, s.export(project.PreviewWidth, project.PreviewHeight).Image())
}

func (s *Session) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return s.lock.Release()
}
