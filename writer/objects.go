// Package writer assembles processed pages into complete PDF 1.4 files:
// it numbers objects, serializes them, records byte-exact offsets and
// emits the cross-reference table and trailer. Before returning, every
// assembled file is re-scanned against its own offsets; a mismatch there
// is a bug in the assembler, never a problem with the input.
package writer

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/lvillar/vecpdf/content"
)

// Object is one numbered PDF object awaiting serialization.
type Object struct {
	Number int
	Body   string
}

func (o Object) serialize() string {
	return fmt.Sprintf("%d 0 obj\n%s\nendobj", o.Number, o.Body)
}

// ref renders an indirect reference to an object number.
func ref(n int) string {
	return strconv.Itoa(n) + " 0 R"
}

var fontResourceRe = regexp.MustCompile(`/F[0-9]+`)

// scanFonts collects the distinct font resource names referenced by a
// content stream. Fonts are found in the emitted text rather than the
// source tree: every Tf instruction names its resource inline, so the
// stream itself is the authority on what a page uses.
func scanFonts(stream string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range fontResourceRe.FindAllString(stream, -1) {
		name := m[1:]
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	sortFontResources(out)
	return out
}

func sortFontResources(names []string) {
	sort.Slice(names, func(i, j int) bool {
		a, _ := strconv.Atoi(names[i][1:])
		b, _ := strconv.Atoi(names[j][1:])
		return a < b
	})
}

// fontObject builds the font dictionary for a resource name such as "F9".
func fontObject(resource string) (string, error) {
	base, ok := content.BaseFont(resource)
	if !ok {
		return "", &AssemblyError{Msg: fmt.Sprintf("content stream references unknown font resource %q", resource)}
	}
	return "<< /Type /Font /Subtype /Type1 /BaseFont /" + base + " >>", nil
}

// escapeInfoString escapes a metadata value for a PDF literal string.
func escapeInfoString(s string) string {
	var b strings.Builder
	for _, c := range s {
		switch c {
		case '(', ')', '\\':
			b.WriteRune('\\')
			b.WriteRune(c)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

func fnum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
