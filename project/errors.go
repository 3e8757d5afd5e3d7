package project

import (
	"errors"
	"fmt"

	"github.com/aeyian/wallpaper/layer"
)

// Sentinel errors for project operations.
var (
	// ErrIO matches every *IOError via errors.Is.
	ErrIO = errors.New("project: i/o error")

	// ErrCorruptManifest marks a manifest that is not valid JSON of the
	// expected shape. Load and List recover from it; it is only returned by
	// helpers that must not guess, such as Rename.
	ErrCorruptManifest = errors.New("project: corrupt manifest")

	// ErrInvalidName is returned for a name that is empty after trimming.
	ErrInvalidName = fmt.Errorf("%w: empty project name", layer.ErrInvalidOperation)

	// ErrInvalidResolution is returned for a non-positive width or height.
	ErrInvalidResolution = fmt.Errorf("%w: resolution must be positive", layer.ErrInvalidOperation)

	// ErrNotProject is returned when a directory holds no manifest.
	ErrNotProject = fmt.Errorf("%w: not a project directory", layer.ErrInvalidOperation)

	// ErrIDExhausted is returned when no free id was found within the
	// configured number of attempts.
	ErrIDExhausted = errors.New("project: no free project id")
)

// IOError records a failed filesystem operation.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return "project: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error { return e.Err }

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool { return target == ErrIO }
