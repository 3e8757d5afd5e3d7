package idgen

import (
	"strings"
	"testing"
	"time"
)

func TestNew_Format(t *testing.T) {
	gen := New()
	for i := 0; i < 100; i++ {
		id := gen()
		if !Valid(id) {
			t.Fatalf("New()() = %q, does not match ddmmyyyyHHMMSS-XXX", id)
		}
	}
}

func TestTimestamped(t *testing.T) {
	now := func() time.Time { return time.Date(2026, time.October, 18, 9, 5, 7, 0, time.UTC) }
	gen := Timestamped(now, func() string { return "ABC" })

	if got, want := gen(), "18102026090507-ABC"; got != want {
		t.Errorf("Timestamped()() = %q, want %q", got, want)
	}
}

func TestLetters(t *testing.T) {
	for _, n := range []int{0, 1, 3, 16} {
		s := Letters(n)()
		if len(s) != n {
			t.Fatalf("Letters(%d)() length = %d", n, len(s))
		}
		if strings.Trim(s, alphabet) != "" {
			t.Errorf("Letters(%d)() = %q, contains non-uppercase letters", n, s)
		}
	}
}

func TestSequence(t *testing.T) {
	gen := Sequence("a", "b")
	got := []string{gen(), gen(), gen()}
	want := []string{"a", "b", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, got[i], want[i])
		}
	}
	if empty := Sequence()(); empty != "" {
		t.Errorf("Sequence()() = %q, want empty", empty)
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"18102026090507-ABC", true},
		{"181026090507-ABC", false},
		{"18102026090507-abc", false},
		{"18102026090507-ABCD", false},
		{"18102026090507ABC", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := Valid(tt.id); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}
