// Package idgen produces candidate project identifiers.
//
// An identifier is a 14-digit day-month-year-hour-minute-second timestamp
// followed by a dash and three uppercase letters, e.g. "18102026153004-QXF".
// Two identifiers minted within the same second differ only by their
// suffix, so a result is a candidate: the project store enforces uniqueness
// against the directories that already exist and retries on collision.
package idgen

import (
	"math/rand/v2"
	"regexp"
	"time"
)

// Layout is the time layout of the timestamp part (ddmmyyyyHHMMSS).
const Layout = "02012006150405"

// SuffixLen is the number of letters after the dash.
const SuffixLen = 3

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var pattern = regexp.MustCompile(`^\d{14}-[A-Z]{3}$`)

// Generator produces candidate identifiers.
type Generator func() string

// New returns the default Generator: local wall clock plus a random
// uppercase suffix.
func New() Generator {
	return Timestamped(time.Now, Letters(SuffixLen))
}

// Timestamped returns a Generator formatting now() with Layout and
// appending "-" and suffix().
func Timestamped(now func() time.Time, suffix func() string) Generator {
	return func() string {
		return now().Format(Layout) + "-" + suffix()
	}
}

// Letters returns a function producing n random uppercase ASCII letters.
// The source is not cryptographically secure.
func Letters(n int) func() string {
	return func() string {
		b := make([]byte, n)
		for i := range b {
			b[i] = alphabet[rand.IntN(len(alphabet))]
		}
		return string(b)
	}
}

// Sequence returns a Generator that yields ids in order and then repeats
// the last one. It is meant for tests that need to force collisions.
func Sequence(ids ...string) Generator {
	i := 0
	return func() string {
		if len(ids) == 0 {
			return ""
		}
		id := ids[min(i, len(ids)-1)]
		i++
		return id
	}
}

// Valid reports whether id has the shape produced by New.
func Valid(id string) bool {
	return pattern.MatchString(id)
}
