// Package app is the in-process replacement for the library and editor
// windows: a two-state machine that moves between browsing projects and
// editing exactly one of them.
//
//	Library --Open(id)--> Editing(id) --Close()--> Library
//
// Any other transition fails with ErrInvalidTransition. Opening a project
// takes an advisory lock on its directory, so a second editor (in this or
// another process) gets ErrProjectLocked instead of racing on the manifest.
package app

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/aeyian/wallpaper"
	"github.com/aeyian/wallpaper/project"
	"github.com/aeyian/wallpaper/render"
)

// Errors returned by App and Session.
var (
	ErrInvalidTransition = errors.New("app: invalid state transition")
	ErrProjectLocked     = errors.New("app: project is open in another editor")
	ErrSessionClosed     = errors.New("app: session closed")
)

// State is the application state.
type State int

const (
	// StateLibrary lists projects; no project is open.
	StateLibrary State = iota
	// StateEditing has one project open in a Session.
	StateEditing
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateLibrary:
		return "Library"
	case StateEditing:
		return "Editing"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// App owns the state machine and the current editing session.
//
// App is safe for concurrent use.
type App struct {
	mu      sync.Mutex
	store   *project.Store
	state   State
	session *Session

	renderOpts []render.Option
	newToken   func() string
}

// Option configures an App.
type Option func(*App)

// WithRenderOptions sets the compositor options used by sessions.
func WithRenderOptions(opts ...render.Option) Option {
	return func(a *App) { a.renderOpts = append(a.renderOpts, opts...) }
}

// WithTokenSource replaces the lock owner token generator.
func WithTokenSource(fn func() string) Option {
	return func(a *App) {
		if fn != nil {
			a.newToken = fn
		}
	}
}

// New returns an App in the Library state.
func New(store *project.Store, opts ...Option) *App {
	a := &App{
		store:    store,
		state:    StateLibrary,
		newToken: func() string { return uuid.Must(uuid.NewV7()).String() },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Store returns the project store.
func (a *App) Store() *project.Store {
	return a.store
}

// State returns the current state and, while editing, the open project id.
func (a *App) State() (State, string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session != nil {
		return a.state, a.session.ID()
	}
	return a.state, ""
}

// Session returns the open session, or nil in the Library state.
func (a *App) Session() *Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session
}

// Projects lists the projects in the store.
func (a *App) Projects() ([]project.Summary, error) {
	return a.store.List()
}

// Open moves from Library to Editing(id). It locks the project directory,
// loads the manifest (degraded if unreadable) and returns the session.
func (a *App) Open(id string) (*Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != StateLibrary {
		return nil, fmt.Errorf("%w: open %q while %s", ErrInvalidTransition, id, a.state)
	}

	p, err := a.store.Open(id)
	if err != nil {
		return nil, err
	}
	if p.Degraded {
		wallpaper.Logger().Warn("app: editing a project with an unreadable manifest", "id", id)
	}

	lock, err := AcquireLock(p.Dir, a.newToken())
	if err != nil {
		return nil, err
	}

	a.session = newSession(p, lock, a.renderOpts)
	a.state = StateEditing
	wallpaper.Logger().Info("app: editor opened", "id", p.ID, "name", p.Name)
	return a.session, nil
}

// Close moves from Editing back to Library, ending the session and
// releasing the project lock. The session must not be used afterwards.
func (a *App) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != StateEditing {
		return fmt.Errorf("%w: close while %s", ErrInvalidTransition, a.state)
	}

	s := a.session
	a.session = nil
	a.state = StateLibrary

	err := s.close()
	wallpaper.Logger().Info("app: editor closed", "id", s.ID())
	return err
}
