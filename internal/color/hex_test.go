package color

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#1e1e1e", color.NRGBA{0x1e, 0x1e, 0x1e, 0xff}},
		{"3A41E1", color.NRGBA{0x3a, 0x41, 0xe1, 0xff}},
		{"#fff", color.NRGBA{0xff, 0xff, 0xff, 0xff}},
		{"#f008", color.NRGBA{0xff, 0x00, 0x00, 0x88}},
		{"#e13b3e80", color.NRGBA{0xe1, 0x3b, 0x3e, 0x80}},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil {
			t.Errorf("ParseHex(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseHex_Invalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#gggggg", "red", "#1e1e1e1"} {
		if _, err := ParseHex(in); !errors.Is(err, ErrInvalidHex) {
			t.Errorf("ParseHex(%q) error = %v, want ErrInvalidHex", in, err)
		}
	}
}

func TestHex_Fallback(t *testing.T) {
	white := color.NRGBA{0xff, 0xff, 0xff, 0xff}
	if got := Hex("nope", white); got != white {
		t.Errorf("Hex(nope) = %v, want fallback %v", got, white)
	}
	if got := Hex("#000000", white); got != (color.NRGBA{0, 0, 0, 0xff}) {
		t.Errorf("Hex(#000000) = %v, want opaque black", got)
	}
}

func TestMustHex_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustHex(bad) did not panic")
		}
	}()
	MustHex("bad")
}

func TestFormatHex(t *testing.T) {
	if got := FormatHex(color.NRGBA{0x3a, 0x41, 0xe1, 0xff}); got != "#3a41e1" {
		t.Errorf("FormatHex(opaque) = %q, want #3a41e1", got)
	}
	if got := FormatHex(color.NRGBA{0x01, 0x02, 0x03, 0x04}); got != "#01020304" {
		t.Errorf("FormatHex(translucent) = %q, want #01020304", got)
	}
}
