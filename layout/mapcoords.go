// Package layout turns web-style pages into renderable PDF pages: it
// resolves page attributes against document defaults, remaps coordinates
// from the top-left web origin to the bottom-left PDF origin, and drives
// the content emitter once per top-level element.
package layout

import "github.com/lvillar/vecpdf/element"

// MapCoordinates rewrites an element's y-bearing attributes from web
// coordinates (origin top-left, y down) to PDF coordinates (origin
// bottom-left, y up) for a page of the given height. The input tree is
// never mutated; a rewritten copy is returned.
//
// Margins travel with the page for MediaBox bookkeeping but do not enter
// the y computation; see the package design notes.
//
// Per-type anchor handling: rect, barcode and image anchor top-left in web
// space but bottom-left in PDF space, so their mapped y additionally drops
// by the element height. Circle centers, line endpoints and text baselines
// anchor identically in both systems and use the base transform alone.
// Path data passes through untouched; path authors supply PDF-space
// coordinates. For groups, the y component of each translate is remapped
// and rotate/scale pass through, since those describe orientation and
// size rather than position.
func MapCoordinates(e element.Element, pageHeight float64, margins element.Margins) element.Element {
	out := e.Clone()
	switch e.Type {
	case element.TypeRect, element.TypeBarcode, element.TypeImage:
		out.Y = pageHeight - e.Y - e.Height
	case element.TypeCircle:
		out.CY = pageHeight - e.CY
	case element.TypeLine:
		out.Y1 = pageHeight - e.Y1
		out.Y2 = pageHeight - e.Y2
	case element.TypeText:
		out.Y = pageHeight - e.Y
	case element.TypeGroup:
		for i, t := range out.Transforms {
			if t.Op == element.OpTranslate {
				out.Transforms[i].Dy = pageHeight - t.Dy
			}
		}
		for i, c := range e.Children {
			out.Children[i] = MapCoordinates(c, pageHeight, margins)
		}
	}
	return out
}
