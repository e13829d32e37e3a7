package writer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lvillar/vecpdf/layout"
)

const header = "%PDF-1.4"

// Info carries optional document metadata. Only fields that are present
// end up in the PDF Info object; when all are empty no Info object is
// written at all.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string
}

func (i Info) empty() bool {
	return i == Info{}
}

// AssemblyError reports that the assembler's computed byte offsets could
// not be reconciled with the emitted text. It indicates a bug in the
// assembler rather than bad input.
type AssemblyError struct {
	Msg string
}

func (e *AssemblyError) Error() string {
	return "writer: assembly invariant violated: " + e.Msg
}

// Assemble builds a complete PDF 1.4 file from processed pages.
//
// Object numbers are assigned in fixed order: the catalog is 1, followed
// by one font object per distinct font resource used anywhere in the
// document, one content-stream object per page, one page object per page,
// the page collection, and, only when metadata is present, the Info
// object. The whole object section is materialized before offsets are
// measured; streaming objects out while guessing at their lengths is how
// cross-reference tables go wrong.
func Assemble(info Info, pages []layout.Result) (string, error) {
	// Fonts shared across pages get a single object each; order is the
	// resource-number order, not first-use order.
	fontSet := make(map[string]bool)
	pageFonts := make([][]string, len(pages))
	var fonts []string
	for i, p := range pages {
		pageFonts[i] = scanFonts(p.Content)
		for _, f := range pageFonts[i] {
			if !fontSet[f] {
				fontSet[f] = true
				fonts = append(fonts, f)
			}
		}
	}
	sortFontResources(fonts)

	catalogNum := 1
	fontNum := func(resource string) int {
		for i, f := range fonts {
			if f == resource {
				return 2 + i
			}
		}
		return 0
	}
	contentNum := func(page int) int { return 2 + len(fonts) + page }
	pageNum := func(page int) int { return 2 + len(fonts) + len(pages) + page }
	pagesNum := 2 + len(fonts) + 2*len(pages)
	infoNum := 0
	if !info.empty() {
		infoNum = pagesNum + 1
	}

	var objects []Object
	objects = append(objects, Object{
		Number: catalogNum,
		Body:   "<< /Type /Catalog /Pages " + ref(pagesNum) + " >>",
	})
	for _, f := range fonts {
		body, err := fontObject(f)
		if err != nil {
			return "", err
		}
		objects = append(objects, Object{Number: fontNum(f), Body: body})
	}
	for i, p := range pages {
		objects = append(objects, Object{
			Number: contentNum(i),
			Body:   fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(p.Content), p.Content),
		})
	}
	for i, p := range pages {
		objects = append(objects, Object{
			Number: pageNum(i),
			Body:   pageObject(p, pagesNum, contentNum(i), pageFonts[i], fontNum),
		})
	}
	objects = append(objects, Object{Number: pagesNum, Body: pagesObject(pages, pageNum)})
	if infoNum != 0 {
		objects = append(objects, Object{Number: infoNum, Body: infoObject(info)})
	}

	// Materialize the object section, recording where each object begins.
	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	offsets := make([]int64, len(objects))
	for i, o := range objects {
		offsets[i] = int64(b.Len())
		b.WriteString(o.serialize())
		b.WriteByte('\n')
	}

	startXref := int64(b.Len())
	writeXref(&b, offsets)
	writeTrailer(&b, len(objects), catalogNum, infoNum, startXref)

	pdf := b.String()
	if err := verify(pdf, objects, offsets, startXref); err != nil {
		return "", err
	}
	return pdf, nil
}

func pageObject(p layout.Result, parent, contents int, fonts []string, fontNum func(string) int) string {
	var b strings.Builder
	b.WriteString("<< /Type /Page /Parent ")
	b.WriteString(ref(parent))
	b.WriteString(" /MediaBox [0 0 ")
	b.WriteString(fnum(p.Width))
	b.WriteByte(' ')
	b.WriteString(fnum(p.Height))
	b.WriteString("] /Resources << /ProcSet [/PDF /Text]")
	if len(fonts) > 0 {
		b.WriteString(" /Font <<")
		for _, f := range fonts {
			b.WriteString(" /")
			b.WriteString(f)
			b.WriteByte(' ')
			b.WriteString(ref(fontNum(f)))
		}
		b.WriteString(" >>")
	}
	b.WriteString(" >> /Contents ")
	b.WriteString(ref(contents))
	b.WriteString(" >>")
	return b.String()
}

func pagesObject(pages []layout.Result, pageNum func(int) int) string {
	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = ref(pageNum(i))
	}
	return "<< /Type /Pages /Kids [" + strings.Join(kids, " ") + "] /Count " + strconv.Itoa(len(pages)) + " >>"
}

func infoObject(info Info) string {
	var b strings.Builder
	b.WriteString("<<")
	for _, f := range []struct{ key, val string }{
		{"Title", info.Title},
		{"Author", info.Author},
		{"Subject", info.Subject},
		{"Keywords", info.Keywords},
		{"Creator", info.Creator},
		{"Producer", info.Producer},
	} {
		if f.val == "" {
			continue
		}
		b.WriteString(" /")
		b.WriteString(f.key)
		b.WriteString(" (")
		b.WriteString(escapeInfoString(f.val))
		b.WriteByte(')')
	}
	b.WriteString(" >>")
	return b.String()
}
