package content

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/ean"
	"github.com/boombuler/barcode/qr"
	pdf417 "github.com/ruudk/golang-pdf417"

	"github.com/lvillar/vecpdf/element"
)

// emitBarcode renders a barcode as pure vector output: every dark module
// becomes one filled rectangle scaled into the element's box. No raster
// XObject is involved, so barcodes work in both the document and
// content-stream paths.
func emitBarcode(e element.Element) (string, error) {
	bc, err := encodeBarcode(e.Format, e.Code)
	if err != nil {
		return "", &element.ValidationError{Elem: e.Type, Field: "code", Expected: "encodable " + e.Format + " payload", Received: e.Code}
	}

	bounds := bc.Bounds()
	cols := bounds.Dx()
	rows := bounds.Dy()
	mw := e.Width / float64(cols)
	mh := e.Height / float64(rows)

	fill := e.Fill
	if fill == "" {
		fill = "black"
	}
	r, g, b, err := ResolveColor(fill)
	if err != nil {
		return "", err
	}
	lines := []string{num(r) + " " + num(g) + " " + num(b) + " rg"}

	// Module rows run top-down in image space; flip them so the barcode
	// reads the same way up in PDF space.
	for py := bounds.Min.Y; py < bounds.Max.Y; py++ {
		rowY := e.Y + e.Height - float64(py-bounds.Min.Y+1)*mh
		for px := bounds.Min.X; px < bounds.Max.X; px++ {
			if !darkModule(bc.At(px, py)) {
				continue
			}
			x := e.X + float64(px-bounds.Min.X)*mw
			lines = append(lines, num(x)+" "+num(rowY)+" "+num(mw)+" "+num(mh)+" re")
		}
	}
	lines = append(lines, "f")
	return strings.Join(lines, "\n"), nil
}

func encodeBarcode(format, code string) (barcode.Barcode, error) {
	switch format {
	case "qr":
		return qr.Encode(code, qr.M, qr.Auto)
	case "code128":
		return code128.Encode(code)
	case "ean":
		return ean.Encode(code)
	case "pdf417":
		return pdf417.Encode(code, 4, 2), nil
	}
	return nil, fmt.Errorf("content: unknown barcode format %q", format)
}

func darkModule(c color.Color) bool {
	return color.GrayModel.Convert(c).(color.Gray).Y < 128
}
