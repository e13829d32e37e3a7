package content

import (
	"strconv"
	"strings"
)

// The 14 standard PDF fonts, each with a stable resource name. Keeping the
// mapping fixed means a font's resource name is the same in every content
// stream, so the assembler can share one font object across pages and
// recover the base font from the scanned resource name alone.
var standardFonts = []string{
	"Helvetica",
	"Helvetica-Bold",
	"Helvetica-Oblique",
	"Helvetica-BoldOblique",
	"Courier",
	"Courier-Bold",
	"Courier-Oblique",
	"Courier-BoldOblique",
	"Times-Roman",
	"Times-Bold",
	"Times-Italic",
	"Times-BoldItalic",
	"Symbol",
	"ZapfDingbats",
}

// Convenience aliases accepted in templates.
var fontAliases = map[string]string{
	"helvetica": "Helvetica",
	"courier":   "Courier",
	"times":     "Times-Roman",
	"symbol":    "Symbol",
	"zapf":      "ZapfDingbats",
}

// FontResource returns the resource name (without the leading slash) for a
// standard font family, e.g. "Helvetica" -> "F1".
func FontResource(family string) (string, bool) {
	if canonical, ok := fontAliases[strings.ToLower(family)]; ok {
		family = canonical
	}
	for i, name := range standardFonts {
		if name == family {
			return "F" + strconv.Itoa(i+1), true
		}
	}
	return "", false
}

// BaseFont returns the standard base font name for a resource name such as
// "F9" -> "Times-Roman".
func BaseFont(resource string) (string, bool) {
	if len(resource) < 2 || resource[0] != 'F' {
		return "", false
	}
	n, err := strconv.Atoi(resource[1:])
	if err != nil || n < 1 || n > len(standardFonts) {
		return "", false
	}
	return standardFonts[n-1], true
}
