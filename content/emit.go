// Package content translates element trees into PDF content-stream
// operators. It owns the color, path and transform helpers the emitter is
// built from; coordinates are taken literally, so callers that start from
// web-style coordinates run the layout mapper first.
package content

import (
	"strings"

	"github.com/lvillar/vecpdf/element"
)

// kappa is the control-point offset factor for approximating a quarter
// circle with one cubic Bézier arc. Changing it degrades visual fidelity.
const kappa = 0.552284749831

// ImageRef identifies a resolved raster image: the XObject resource name
// (without the leading slash) and its natural pixel dimensions.
type ImageRef struct {
	Name   string
	Width  float64
	Height float64
}

// ImageResolver maps an image path or emoji shortcode to a resolved image.
type ImageResolver interface {
	Resolve(srcOrCode string) (ImageRef, error)
}

// Emitter turns single elements into operator text. The zero value works
// for every element type except image, which needs a resolver.
type Emitter struct {
	Images ImageResolver
}

// Emit produces the newline-separated operator text for one element,
// recursing into group children. Invalid attributes or unsupported element
// types fail immediately; no partial output is returned alongside an error.
func (em *Emitter) Emit(e element.Element) (string, error) {
	if err := Validate(e); err != nil {
		return "", err
	}

	switch e.Type {
	case element.TypeRect:
		return em.paintShape(e, num(e.X)+" "+num(e.Y)+" "+num(e.Width)+" "+num(e.Height)+" re")
	case element.TypeCircle:
		return em.paintShape(e, circlePath(e.CX, e.CY, e.R))
	case element.TypePath:
		path, err := DecodePath(e.D)
		if err != nil {
			return "", err
		}
		return em.paintShape(e, path)
	case element.TypeLine:
		return emitLine(e)
	case element.TypeText:
		return emitText(e)
	case element.TypeGroup:
		return em.emitGroup(e)
	case element.TypeBarcode:
		return emitBarcode(e)
	case element.TypeImage:
		return em.emitImage(e)
	}
	return "", &element.UnsupportedError{Type: e.Type}
}

// paintShape wraps a shape's path construction with its styling prefix and
// paint operator: fill and stroke -> B, fill -> f, stroke -> S. With
// neither present the path is still filled with whatever paint color is
// active in the graphics state; fill is the default.
func (em *Emitter) paintShape(e element.Element, path string) (string, error) {
	lines, err := stylePrefix(e)
	if err != nil {
		return "", err
	}
	lines = append(lines, path, paintOp(e.Fill != "", e.Stroke != ""))
	return strings.Join(lines, "\n"), nil
}

func paintOp(hasFill, hasStroke bool) string {
	switch {
	case hasFill && hasStroke:
		return "B"
	case hasStroke:
		return "S"
	default:
		return "f"
	}
}

// stylePrefix emits the line-width, fill-color and stroke-color operators
// that precede a shape's path construction.
func stylePrefix(e element.Element) ([]string, error) {
	var lines []string
	if e.StrokeWidth > 0 {
		lines = append(lines, num(e.StrokeWidth)+" w")
	}
	if e.Fill != "" {
		r, g, b, err := ResolveColor(e.Fill)
		if err != nil {
			return nil, err
		}
		lines = append(lines, num(r)+" "+num(g)+" "+num(b)+" rg")
	}
	if e.Stroke != "" {
		r, g, b, err := ResolveColor(e.Stroke)
		if err != nil {
			return nil, err
		}
		lines = append(lines, num(r)+" "+num(g)+" "+num(b)+" RG")
	}
	return lines, nil
}

// circlePath approximates a circle with four cubic Bézier arcs, starting at
// the rightmost point and winding counter-clockwise.
func circlePath(cx, cy, r float64) string {
	k := r * kappa
	return strings.Join([]string{
		num(cx+r) + " " + num(cy) + " m",
		curve(cx+r, cy+k, cx+k, cy+r, cx, cy+r),
		curve(cx-k, cy+r, cx-r, cy+k, cx-r, cy),
		curve(cx-r, cy-k, cx-k, cy-r, cx, cy-r),
		curve(cx+k, cy-r, cx+r, cy-k, cx+r, cy),
	}, "\n")
}

func curve(x1, y1, x2, y2, x3, y3 float64) string {
	return num(x1) + " " + num(y1) + " " + num(x2) + " " + num(y2) + " " + num(x3) + " " + num(y3) + " c"
}

// emitLine draws a stroked segment between the two endpoints. A line is
// the one shape that injects a default color: unspecified strokes are
// black rather than inheriting the active paint color.
func emitLine(e element.Element) (string, error) {
	var lines []string
	if e.StrokeWidth > 0 {
		lines = append(lines, num(e.StrokeWidth)+" w")
	}
	stroke := e.Stroke
	if stroke == "" {
		stroke = "black"
	}
	r, g, b, err := ResolveColor(stroke)
	if err != nil {
		return "", err
	}
	lines = append(lines,
		num(r)+" "+num(g)+" "+num(b)+" RG",
		num(e.X1)+" "+num(e.Y1)+" m",
		num(e.X2)+" "+num(e.Y2)+" l",
		"S",
	)
	return strings.Join(lines, "\n"), nil
}

func emitText(e element.Element) (string, error) {
	res, ok := FontResource(e.Font)
	if !ok {
		return "", &element.ValidationError{Elem: e.Type, Field: "font", Expected: "one of the 14 standard PDF fonts", Received: e.Font}
	}
	lines := []string{"BT", "/" + res + " " + num(e.Size) + " Tf"}
	if e.Fill != "" {
		r, g, b, err := ResolveColor(e.Fill)
		if err != nil {
			return "", err
		}
		lines = append(lines, num(r)+" "+num(g)+" "+num(b)+" rg")
	}
	lines = append(lines,
		num(e.X)+" "+num(e.Y)+" Td",
		"("+escapeString(e.Content)+") Tj",
		"ET",
	)
	return strings.Join(lines, "\n"), nil
}

// emitGroup brackets its children in a graphics-state save/restore so any
// styling or transform set inside cannot leak into sibling groups. One cm
// operator is emitted per transform, in the order given.
func (em *Emitter) emitGroup(e element.Element) (string, error) {
	lines := []string{"q"}
	for _, t := range e.Transforms {
		cm, err := MatrixFor(t)
		if err != nil {
			return "", err
		}
		lines = append(lines, cm)
	}
	for _, child := range e.Children {
		s, err := em.Emit(child)
		if err != nil {
			return "", err
		}
		lines = append(lines, s)
	}
	lines = append(lines, "Q")
	return strings.Join(lines, "\n"), nil
}

// emitImage places a resolved image XObject scaled to the element's box.
// The resource name and natural size come from the resolver; embedding the
// XObject itself is the caller's concern, so images are only valid through
// the content-stream API.
func (em *Emitter) emitImage(e element.Element) (string, error) {
	if em.Images == nil {
		return "", &element.UnsupportedError{Type: element.TypeImage}
	}
	ref, err := em.Images.Resolve(e.Src)
	if err != nil {
		return "", err
	}
	w, h := e.Width, e.Height
	if w == 0 {
		w = ref.Width
	}
	if h == 0 {
		h = ref.Height
	}
	return strings.Join([]string{
		"q",
		num(w/ref.Width) + " 0 0 " + num(h/ref.Height) + " " + num(e.X) + " " + num(e.Y) + " cm",
		"/" + ref.Name + " Do",
		"Q",
	}, "\n"), nil
}

// escapeString escapes the characters that would break a PDF literal
// string: parentheses, backslashes and line ends.
func escapeString(s string) string {
	var b strings.Builder
	for _, c := range s {
		switch c {
		case '(':
			b.WriteString(`\(`)
		case ')':
			b.WriteString(`\)`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}
