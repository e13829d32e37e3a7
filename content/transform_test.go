package content

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/lvillar/vecpdf/element"
)

func TestMatrixFor(t *testing.T) {
	tests := []struct {
		name string
		in   element.Transform
		want string
	}{
		{
			name: "translate",
			in:   element.Transform{Op: "translate", Dx: 10, Dy: 20},
			want: "1 0 0 1 10 20 cm",
		},
		{
			name: "scale",
			in:   element.Transform{Op: "scale", Sx: 2, Sy: 0.5},
			want: "2 0 0 0.5 0 0 cm",
		},
		{
			name: "rotate 90",
			in:   element.Transform{Op: "rotate", Deg: 90},
			want: num(math.Cos(math.Pi/2)) + " 1 -1 " + num(math.Cos(math.Pi/2)) + " 0 0 cm",
		},
		{
			name: "rotate 0",
			in:   element.Transform{Op: "rotate", Deg: 0},
			want: "1 0 -0 1 0 0 cm",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MatrixFor(tt.in)
			if err != nil {
				t.Fatalf("MatrixFor: %v", err)
			}
			if got != tt.want {
				t.Errorf("MatrixFor(%+v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixForRotate45(t *testing.T) {
	got, err := MatrixFor(element.Transform{Op: "rotate", Deg: 45})
	if err != nil {
		t.Fatalf("MatrixFor: %v", err)
	}
	// cos(45°) and sin(45°) differ in their last bit; both must appear
	// at full precision.
	if !strings.HasPrefix(got, "0.7071067811865476 0.7071067811865475 -0.7071067811865475 0.7071067811865476") {
		t.Errorf("MatrixFor(rotate 45) = %q", got)
	}
}

func TestMatrixForUnknownOp(t *testing.T) {
	_, err := MatrixFor(element.Transform{Op: "skew"})
	var verr *element.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	if verr.Field != "transforms.op" {
		t.Errorf("Field = %q", verr.Field)
	}
}
