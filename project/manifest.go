package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/aeyian/wallpaper"
	"github.com/aeyian/wallpaper/layer"
)

// Load reads the project in dir. It never fails: when the manifest is
// missing or malformed it logs a warning and returns a degraded project
// named after the directory, with a 1920x1080 canvas and no layers.
func Load(dir string) *Project {
	p, err := readManifest(dir)
	if err != nil {
		wallpaper.Logger().Warn("project: opening degraded", "dir", dir, "err", err)
		return degraded(dir)
	}
	return p
}

// readManifest is the strict reader behind Load, Rename and List.
func readManifest(dir string) (*Project, error) {
	path := filepath.Join(dir, ManifestFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}

	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptManifest, path, err)
	}
	p.Dir = dir
	p.applyDefaults()
	return &p, nil
}

// Save rewrites the manifest of p as pretty-printed JSON. The new content
// is written to a temporary file in the project directory and renamed over
// project.json, so readers see either the old or the new manifest.
func Save(p *Project) error {
	if p.Dir == "" {
		return fmt.Errorf("%w: project %q has no directory", layer.ErrInvalidOperation, p.ID)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("project: encode manifest: %w", err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(p.ManifestPath(), data); err != nil {
		return err
	}
	p.Degraded = false
	return nil
}

// Rename sets the display name of the project in dir. The name is trimmed
// and NFC-normalized; an empty result fails with ErrInvalidName. A manifest
// that cannot be parsed is left untouched: the rename is skipped and
// logged, and nil is returned.
func Rename(dir, newName string) error {
	name := NormalizeName(newName)
	if name == "" {
		return ErrInvalidName
	}

	p, err := readManifest(dir)
	if err != nil {
		if errors.Is(err, ErrCorruptManifest) {
			wallpaper.Logger().Warn("project: rename skipped, manifest is corrupt", "dir", dir, "err", err)
			return nil
		}
		return err
	}

	old := p.Name
	p.Name = name
	if err := Save(p); err != nil {
		return err
	}
	wallpaper.Logger().Info("project: renamed", "id", p.ID, "from", old, "to", name)
	return nil
}

// Delete removes the project directory and everything in it. It is
// irreversible; confirming with the user is the caller's job. Directories
// without a manifest are refused with ErrNotProject.
func Delete(dir string) error {
	manifest := filepath.Join(dir, ManifestFile)
	if _, err := os.Stat(manifest); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotProject, dir)
		}
		return &IOError{Op: "stat", Path: manifest, Err: err}
	}

	if err := os.RemoveAll(dir); err != nil {
		return &IOError{Op: "remove", Path: dir, Err: err}
	}
	wallpaper.Logger().Info("project: deleted", "dir", dir)
	return nil
}

// NormalizeName trims surrounding white space and applies Unicode NFC, so
// names typed on different keyboards compare equal.
func NormalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// writeFileAtomic writes data next to path and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, 0o644); err != nil { //nolint:gosec // manifests are meant to be readable
		cleanup()
		return &IOError{Op: "chmod", Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}
