// Package wallpaper is the core of an animated desktop wallpaper editor.
//
// # Overview
//
// A wallpaper project is a directory holding a JSON manifest (project.json)
// that describes the canvas resolution and an ordered stack of layers, plus
// a preview thumbnail, an optional canvas image and an assets directory.
//
// The module is organized into:
//   - [github.com/aeyian/wallpaper/idgen]: candidate project identifiers
//   - [github.com/aeyian/wallpaper/project]: manifest store (create, load, save, rename, delete, list)
//   - [github.com/aeyian/wallpaper/layer]: layer records and pure stack mutations
//   - [github.com/aeyian/wallpaper/viewport]: canvas-to-surface fit transform
//   - [github.com/aeyian/wallpaper/tile]: size-keyed hexagon background cache
//   - [github.com/aeyian/wallpaper/render]: compositor defining the draw order
//   - [github.com/aeyian/wallpaper/app]: library/editing state machine
//   - [github.com/aeyian/wallpaper/config]: YAML and environment configuration
//
// # Coordinate System
//
// Canvas space is the project's fixed resolution, origin at top-left,
// X to the right and Y down. Surface space is the pixel grid of whatever
// the host draws into. The viewport transform is the only mapping between
// the two.
//
// # Concurrency
//
// Everything is synchronous. One editor session owns a project directory at
// a time; see package app for the advisory lock.
package wallpaper

// Version information written into new manifests.
const (
	// FormatVersion is the manifest schema version.
	FormatVersion = "1.0.0"

	// EditorVersion is the version of the editor that wrote a manifest.
	EditorVersion = "0.0.2"
)
