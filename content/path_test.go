package content

import (
	"errors"
	"testing"

	"github.com/lvillar/vecpdf/element"
)

func TestDecodePath(t *testing.T) {
	tests := []struct {
		name string
		d    string
		want string
	}{
		{
			name: "move and line",
			d:    "M 10 20 L 30 40",
			want: "10 20 m\n30 40 l",
		},
		{
			name: "cubic curve",
			d:    "M 0 0 C 10 0 20 10 20 20",
			want: "0 0 m\n10 0 20 10 20 20 c",
		},
		{
			name: "close path",
			d:    "M 0 0 L 10 0 L 10 10 Z",
			want: "0 0 m\n10 0 l\n10 10 l\nh",
		},
		{
			name: "negative and decimal numbers",
			d:    "M -1.5 2.25 L 3e1 -0.5",
			want: "-1.5 2.25 m\n30 -0.5 l",
		},
		{
			name: "compact syntax without separators",
			d:    "M10,20L30,40",
			want: "10 20 m\n30 40 l",
		},
		{
			name: "unsupported commands dropped",
			d:    "M 0 0 Q 1 1 2 2 L 5 5",
			want: "0 0 m\n5 5 l",
		},
		{
			name: "short runs dropped",
			d:    "M 0 0 C 1 2 3 L 7 8",
			want: "0 0 m\n7 8 l",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodePath(tt.d)
			if err != nil {
				t.Fatalf("DecodePath(%q): %v", tt.d, err)
			}
			if got != tt.want {
				t.Errorf("DecodePath(%q) =\n%s\nwant:\n%s", tt.d, got, tt.want)
			}
		})
	}
}

// Lower-case commands are relative to the current point; a leading
// relative move with no current point behaves as absolute.
func TestDecodePathRelative(t *testing.T) {
	tests := []struct {
		name string
		d    string
		want string
	}{
		{
			name: "relative line",
			d:    "M 10 10 l 5 -5",
			want: "10 10 m\n15 5 l",
		},
		{
			name: "relative move chains",
			d:    "M 10 10 m 10 10 l 1 1",
			want: "10 10 m\n20 20 m\n21 21 l",
		},
		{
			name: "relative curve",
			d:    "M 100 100 c 10 0 20 10 20 20",
			want: "100 100 m\n110 100 120 110 120 120 c",
		},
		{
			name: "leading relative move is absolute",
			d:    "m 5 6 l 1 1",
			want: "5 6 m\n6 7 l",
		},
		{
			name: "close resets current point to subpath start",
			d:    "M 10 10 l 5 0 z l 0 5",
			want: "10 10 m\n15 10 l\nh\n10 15 l",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodePath(tt.d)
			if err != nil {
				t.Fatalf("DecodePath(%q): %v", tt.d, err)
			}
			if got != tt.want {
				t.Errorf("DecodePath(%q) =\n%s\nwant:\n%s", tt.d, got, tt.want)
			}
		})
	}
}

func TestDecodePathEmpty(t *testing.T) {
	for _, d := range []string{"", "   "} {
		_, err := DecodePath(d)
		if !errors.Is(err, element.ErrEmptyPath) {
			t.Errorf("DecodePath(%q): got %v, want ErrEmptyPath", d, err)
		}
	}
}
