package content

import (
	"strconv"

	"golang.org/x/image/colornames"

	"github.com/lvillar/vecpdf/element"
)

// coreColors is the fixed named-color set with pure RGB semantics. It is
// consulted before the extended SVG name table so that "green" stays
// (0,1,0) rather than the SVG 1.1 value (0,0.5,0).
var coreColors = map[string][3]float64{
	"red":     {1, 0, 0},
	"green":   {0, 1, 0},
	"blue":    {0, 0, 1},
	"black":   {0, 0, 0},
	"white":   {1, 1, 1},
	"yellow":  {1, 1, 0},
	"cyan":    {0, 1, 1},
	"magenta": {1, 0, 1},
}

// ResolveColor maps a color value to an RGB triple of floats in [0,1].
// Accepted values are the core color names, "#" followed by exactly six hex
// digits, or any SVG 1.1 color name. Hex channels are decoded pairwise and
// divided by 255 without rounding. Anything else is a ColorError.
func ResolveColor(value string) (r, g, b float64, err error) {
	if c, ok := coreColors[value]; ok {
		return c[0], c[1], c[2], nil
	}
	if len(value) == 7 && value[0] == '#' {
		var ch [3]float64
		for i := 0; i < 3; i++ {
			n, perr := strconv.ParseUint(value[1+2*i:3+2*i], 16, 8)
			if perr != nil {
				return 0, 0, 0, &element.ColorError{Value: value}
			}
			ch[i] = float64(n) / 255.0
		}
		return ch[0], ch[1], ch[2], nil
	}
	if c, ok := colornames.Map[value]; ok {
		return float64(c.R) / 255.0, float64(c.G) / 255.0, float64(c.B) / 255.0, nil
	}
	return 0, 0, 0, &element.ColorError{Value: value}
}

// ValidColor reports whether value resolves to a color.
func ValidColor(value string) bool {
	_, _, _, err := ResolveColor(value)
	return err == nil
}
