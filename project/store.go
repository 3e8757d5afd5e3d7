package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aeyian/wallpaper"
	"github.com/aeyian/wallpaper/idgen"
	"github.com/aeyian/wallpaper/internal/imageio"
	"github.com/aeyian/wallpaper/layer"
)

// DefaultMaxAttempts bounds the id retry loop in Create.
const DefaultMaxAttempts = 100

// Store manages the project directories under one root.
type Store struct {
	root        string
	newID       idgen.Generator
	editor      string
	placeholder color.NRGBA
	maxAttempts int
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithIDGenerator replaces the id source used by Create.
func WithIDGenerator(g idgen.Generator) StoreOption {
	return func(s *Store) {
		if g != nil {
			s.newID = g
		}
	}
}

// WithEditorVersion sets the editor_version written into new manifests.
func WithEditorVersion(v string) StoreOption {
	return func(s *Store) {
		if v != "" {
			s.editor = v
		}
	}
}

// WithPlaceholderColor sets the fill of generated preview thumbnails.
func WithPlaceholderColor(c color.NRGBA) StoreOption {
	return func(s *Store) { s.placeholder = c }
}

// WithMaxAttempts bounds how many candidate ids Create tries.
func WithMaxAttempts(n int) StoreOption {
	return func(s *Store) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// NewStore returns a Store rooted at root. The root is created on the first
// Create; reading a missing root yields no projects.
func NewStore(root string, opts ...StoreOption) *Store {
	s := &Store{
		root:        root,
		newID:       idgen.New(),
		editor:      wallpaper.EditorVersion,
		placeholder: PlaceholderColor,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultRoot returns ~/.local/share/interactive-wallpapers.
func DefaultRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("project: locate home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "interactive-wallpapers"), nil
}

// Root returns the projects root directory.
func (s *Store) Root() string { return s.root }

// Dir returns the directory of the project with the given id.
func (s *Store) Dir(id string) string { return filepath.Join(s.root, id) }

// Create makes a new project directory with an assets folder, an initial
// manifest and a placeholder preview.
//
// Candidate ids are tried until one names no existing entry under the
// root. Directory creation itself is the uniqueness check, so an existing
// project is never overwritten even if another process races us.
func (s *Store) Create(name string, width, height int) (*Project, error) {
	name = NormalizeName(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	res := Resolution{Width: width, Height: height}
	if !res.Valid() {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidResolution, width, height)
	}

	if err := os.MkdirAll(s.root, 0o755); err != nil { //nolint:gosec // shared data directory
		return nil, &IOError{Op: "mkdir", Path: s.root, Err: err}
	}

	id, dir, err := s.claimDir()
	if err != nil {
		return nil, err
	}

	p := &Project{
		ID:            id,
		Name:          name,
		FormatVersion: wallpaper.FormatVersion,
		EditorVersion: s.editor,
		Resolution:    res,
		Layers:        []layer.Layer{},
		Properties:    map[string]json.RawMessage{},
		Dir:           dir,
	}

	if err := s.populate(p); err != nil {
		_ = os.RemoveAll(dir)
		return nil, err
	}

	wallpaper.Logger().Info("project: created", "id", id, "name", name, "width", width, "height", height)
	return p, nil
}

// claimDir creates the directory for a fresh id.
func (s *Store) claimDir() (id, dir string, err error) {
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		id = s.newID()
		dir = s.Dir(id)
		err = os.Mkdir(dir, 0o755) //nolint:gosec // project directories are user data
		if err == nil {
			return id, dir, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", "", &IOError{Op: "mkdir", Path: dir, Err: err}
		}
		wallpaper.Logger().Debug("project: id collision, retrying", "id", id, "attempt", attempt+1)
	}
	return "", "", fmt.Errorf("%w after %d attempts", ErrIDExhausted, s.maxAttempts)
}

func (s *Store) populate(p *Project) error {
	assets := filepath.Join(p.Dir, AssetsDir)
	if err := os.Mkdir(assets, 0o755); err != nil { //nolint:gosec // project directories are user data
		return &IOError{Op: "mkdir", Path: assets, Err: err}
	}
	if err := Save(p); err != nil {
		return err
	}
	return WritePreview(p, Placeholder(p.Name, s.placeholder))
}

// Open loads the project with the given id. It fails only when the
// directory does not exist; a bad manifest yields a degraded project.
func (s *Store) Open(id string) (*Project, error) {
	dir := s.Dir(id)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, &IOError{Op: "open", Path: dir, Err: err}
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotProject, dir)
	}
	return Load(dir), nil
}

// Delete removes the project with the given id.
func (s *Store) Delete(id string) error {
	if id == "" || filepath.Base(id) != id || id == "." || id == ".." {
		return fmt.Errorf("%w: %q", ErrNotProject, id)
	}
	return Delete(s.Dir(id))
}

// List returns a summary of every project under the root, ordered by
// directory name. Entries without a manifest or with one that does not
// parse are skipped; a missing root yields an empty list.
func (s *Store) List() ([]Summary, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Summary{}, nil
		}
		return nil, &IOError{Op: "readdir", Path: s.root, Err: err}
	}

	out := make([]Summary, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(s.root, e.Name())
		p, err := readManifest(dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			wallpaper.Logger().Warn("project: skipping unreadable project", "dir", dir, "err", err)
			continue
		}
		out = append(out, p.Summary())
	}
	return out, nil
}

// ImportCanvas decodes a PNG or JPEG file and stores it as the project's
// canvas image.
func ImportCanvas(p *Project, src string) error {
	img, err := imageio.Load(src)
	if err != nil {
		return fmt.Errorf("project: import canvas: %w", err)
	}
	if err := imageio.SavePNG(p.CanvasPath(), img); err != nil {
		return &IOError{Op: "write", Path: p.CanvasPath(), Err: err}
	}
	b := img.Bounds()
	if b.Dx() != p.Resolution.Width || b.Dy() != p.Resolution.Height {
		wallpaper.Logger().Debug("project: canvas image will be stretched",
			"id", p.ID, "image", b.Size(), "resolution", p.Resolution)
	}
	return nil
}

// Canvas returns the project's canvas image, or nil when none was imported.
func Canvas(p *Project) (image.Image, error) {
	img, err := imageio.Load(p.CanvasPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &IOError{Op: "read", Path: p.CanvasPath(), Err: err}
	}
	return img, nil
}

// WritePreview replaces the project's preview thumbnail.
func WritePreview(p *Project, img image.Image) error {
	if err := imageio.SavePNG(p.PreviewPath(), img); err != nil {
		return &IOError{Op: "write", Path: p.PreviewPath(), Err: err}
	}
	return nil
}
