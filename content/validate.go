package content

import (
	"strings"

	"github.com/lvillar/vecpdf/element"
)

// Validate checks one element's attributes against the constraints of its
// kind and returns the first violation found. It does not recurse into
// group children; the emitter validates each node as it reaches it.
func Validate(e element.Element) error {
	if e.Type == "" {
		return element.ErrMissingType
	}
	if err := validColors(e); err != nil {
		return err
	}
	if e.StrokeWidth < 0 {
		return &element.ValidationError{Elem: e.Type, Field: "strokeWidth", Expected: "non-negative number", Received: e.StrokeWidth}
	}

	switch e.Type {
	case element.TypeRect, element.TypeImage:
		if e.Width < 0 {
			return &element.ValidationError{Elem: e.Type, Field: "width", Expected: "non-negative number", Received: e.Width}
		}
		if e.Height < 0 {
			return &element.ValidationError{Elem: e.Type, Field: "height", Expected: "non-negative number", Received: e.Height}
		}
		if e.Type == element.TypeImage && e.Src == "" {
			return &element.ValidationError{Elem: e.Type, Field: "src", Expected: "image path or emoji shortcode", Received: e.Src}
		}
	case element.TypeCircle:
		if e.R < 0 {
			return &element.ValidationError{Elem: e.Type, Field: "r", Expected: "non-negative number", Received: e.R}
		}
	case element.TypePath:
		if strings.TrimSpace(e.D) == "" {
			return element.ErrEmptyPath
		}
	case element.TypeText:
		if _, ok := FontResource(e.Font); !ok {
			return &element.ValidationError{Elem: e.Type, Field: "font", Expected: "one of the 14 standard PDF fonts", Received: e.Font}
		}
		if e.Size <= 0 {
			return &element.ValidationError{Elem: e.Type, Field: "size", Expected: "positive number", Received: e.Size}
		}
	case element.TypeBarcode:
		switch e.Format {
		case "qr", "code128", "ean", "pdf417":
		default:
			return &element.ValidationError{Elem: e.Type, Field: "format", Expected: "qr, code128, ean or pdf417", Received: e.Format}
		}
		if e.Code == "" {
			return &element.ValidationError{Elem: e.Type, Field: "code", Expected: "non-empty string", Received: e.Code}
		}
		if e.Width <= 0 {
			return &element.ValidationError{Elem: e.Type, Field: "width", Expected: "positive number", Received: e.Width}
		}
		if e.Height <= 0 {
			return &element.ValidationError{Elem: e.Type, Field: "height", Expected: "positive number", Received: e.Height}
		}
	case element.TypeLine, element.TypeGroup:
		// no shape-specific constraints
	default:
		return &element.UnsupportedError{Type: e.Type}
	}
	return nil
}

func validColors(e element.Element) error {
	if e.Fill != "" && !ValidColor(e.Fill) {
		return &element.ColorError{Value: e.Fill}
	}
	if e.Stroke != "" && !ValidColor(e.Stroke) {
		return &element.ColorError{Value: e.Stroke}
	}
	return nil
}
