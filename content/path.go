package content

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lvillar/vecpdf/element"
)

var (
	// A run is one command letter plus everything up to the next letter.
	pathRunRe = regexp.MustCompile(`[MmLlCcZz][^MmLlCcZz]*`)
	numberRe  = regexp.MustCompile(`-?[0-9]*\.?[0-9]+(?:[eE][-+]?[0-9]+)?`)
)

// DecodePath tokenizes SVG-style path data into PDF path operators, one per
// line. Upper-case commands are absolute; lower-case commands are relative
// to the current point. Runs led by an unsupported letter, and runs without
// enough numbers for their command, produce no output.
func DecodePath(d string) (string, error) {
	if strings.TrimSpace(d) == "" {
		return "", element.ErrEmptyPath
	}

	var ops []string
	var cx, cy float64     // current point
	var sx, sy float64     // subpath start, restored by a close
	havePoint := false

	for _, run := range pathRunRe.FindAllString(d, -1) {
		nums := parseNumbers(run[1:])
		switch run[0] {
		case 'M', 'm':
			if len(nums) < 2 {
				continue
			}
			x, y := nums[0], nums[1]
			if run[0] == 'm' && havePoint {
				x += cx
				y += cy
			}
			ops = append(ops, num(x)+" "+num(y)+" m")
			cx, cy = x, y
			sx, sy = x, y
			havePoint = true
		case 'L', 'l':
			if len(nums) < 2 {
				continue
			}
			x, y := nums[0], nums[1]
			if run[0] == 'l' && havePoint {
				x += cx
				y += cy
			}
			ops = append(ops, num(x)+" "+num(y)+" l")
			cx, cy = x, y
			havePoint = true
		case 'C', 'c':
			if len(nums) < 6 {
				continue
			}
			pts := nums[:6]
			if run[0] == 'c' && havePoint {
				for i := 0; i < 6; i += 2 {
					pts[i] += cx
					pts[i+1] += cy
				}
			}
			ops = append(ops, num(pts[0])+" "+num(pts[1])+" "+num(pts[2])+" "+num(pts[3])+" "+num(pts[4])+" "+num(pts[5])+" c")
			cx, cy = pts[4], pts[5]
			havePoint = true
		case 'Z', 'z':
			ops = append(ops, "h")
			cx, cy = sx, sy
		}
	}
	return strings.Join(ops, "\n"), nil
}

func parseNumbers(s string) []float64 {
	matches := numberRe.FindAllString(s, -1)
	out := make([]float64, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}
