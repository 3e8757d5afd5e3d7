package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/aeyian/wallpaper"
)

// LockFile is the advisory lock inside a project directory.
const LockFile = ".lock"

// LockInfo is the content of a lock file.
type LockInfo struct {
	Token    string    `json:"token"`
	PID      int       `json:"pid"`
	Acquired time.Time `json:"acquired"`
}

// Lock is a held project lock.
type Lock struct {
	path string
	info LockInfo
}

// AcquireLock creates the lock file in dir. It fails with ErrProjectLocked
// when the file already exists.
func AcquireLock(dir, token string) (*Lock, error) {
	path := filepath.Join(dir, LockFile)
	info := LockInfo{Token: token, PID: os.Getpid(), Acquired: time.Now().UTC()}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644) //nolint:gosec // lock content is not secret
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			if held, ok := ReadLock(dir); ok {
				return nil, fmt.Errorf("%w: %s (pid %d since %s)",
					ErrProjectLocked, dir, held.PID, held.Acquired.Format(time.RFC3339))
			}
			return nil, fmt.Errorf("%w: %s", ErrProjectLocked, dir)
		}
		return nil, fmt.Errorf("app: create lock: %w", err)
	}

	err = json.NewEncoder(f).Encode(info)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("app: write lock: %w", err)
	}
	return &Lock{path: path, info: info}, nil
}

// Info returns what the lock file records.
func (l *Lock) Info() LockInfo {
	return l.info
}

// Release removes the lock file if it still carries this lock's token.
// A missing file, or one taken over by someone else, is left alone.
func (l *Lock) Release() error {
	held, ok := ReadLock(filepath.Dir(l.path))
	if !ok {
		return nil
	}
	if held.Token != l.info.Token {
		wallpaper.Logger().Warn("app: lock taken over, not removing", "path", l.path, "pid", held.PID)
		return nil
	}
	if err := os.Remove(l.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("app: release lock: %w", err)
	}
	return nil
}

// ReadLock returns the lock held on dir. ok is false when there is none
// or the file cannot be parsed.
func ReadLock(dir string) (info LockInfo, ok bool) {
	data, err := os.ReadFile(filepath.Join(dir, LockFile))
	if err != nil {
		return LockInfo{}, false
	}
	if err := json.Unmarshal(data, &info); err != nil {
		wallpaper.Logger().Warn("app: unreadable lock file", "dir", dir, "err", err)
		return LockInfo{}, false
	}
	return info, true
}

// BreakLock removes the lock on dir regardless of its owner. It is meant
// for stale locks left behind by a crashed editor.
func BreakLock(dir string) error {
	path := filepath.Join(dir, LockFile)
	if held, ok := ReadLock(dir); ok {
		wallpaper.Logger().Warn("app: breaking lock", "dir", dir, "pid", held.PID, "acquired", held.Acquired)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("app: break lock: %w", err)
	}
	return nil
}
