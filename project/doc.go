// Package project reads and writes wallpaper projects on disk.
//
// A project lives in its own directory under a projects root:
//
//	<root>/<project-id>/
//	  project.json   manifest, UTF-8, pretty-printed JSON
//	  preview.png    thumbnail, generated at creation
//	  canvas.png     optional canvas image
//	  assets/        media referenced by layers
//
// Reading is forgiving. [Load] never fails: a missing or malformed manifest
// yields a degraded project named after its directory with a 1920x1080
// canvas and no layers, and [Store.List] skips projects it cannot parse
// instead of aborting. Writing is strict: filesystem failures come back as
// [*IOError].
//
// The package assumes a single writer per project directory. Two writers
// saving the same manifest race and the last one wins; package app adds an
// advisory lock for editor sessions.
package project
