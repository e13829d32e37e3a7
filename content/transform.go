package content

import (
	"math"

	"github.com/lvillar/vecpdf/element"
)

// MatrixFor converts one transform instruction into its cm operator text.
// Each instruction is emitted on its own; successive cm operators multiply
// into the viewer's current transformation matrix in the order encountered,
// so no matrix math happens here.
func MatrixFor(t element.Transform) (string, error) {
	switch t.Op {
	case element.OpTranslate:
		return "1 0 0 1 " + num(t.Dx) + " " + num(t.Dy) + " cm", nil
	case element.OpScale:
		return num(t.Sx) + " 0 0 " + num(t.Sy) + " 0 0 cm", nil
	case element.OpRotate:
		rad := t.Deg * math.Pi / 180
		cos, sin := math.Cos(rad), math.Sin(rad)
		return num(cos) + " " + num(sin) + " " + num(-sin) + " " + num(cos) + " 0 0 cm", nil
	default:
		return "", &element.ValidationError{
			Elem:     element.TypeGroup,
			Field:    "transforms.op",
			Expected: "translate, rotate or scale",
			Received: t.Op,
		}
	}
}
