package vecpdf

import (
	"errors"
	"strings"
	"testing"

	"github.com/lvillar/vecpdf/content"
	"github.com/lvillar/vecpdf/element"
)

func TestRenderDocumentMinimal(t *testing.T) {
	doc := &element.Document{
		Pages: []element.Page{{
			Children: []element.Element{
				{Type: "rect", X: 10, Y: 20, Width: 100, Height: 50, Fill: "red"},
			},
		}},
	}

	var buf strings.Builder
	if err := RenderDocument(&buf, doc); err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	pdf := buf.String()

	if !strings.HasPrefix(pdf, "%PDF-1.4\n") {
		t.Error("missing header")
	}
	if !strings.HasSuffix(pdf, "%%EOF\n") {
		t.Error("missing end-of-file marker")
	}
	if !strings.Contains(pdf, "1 0 0 rg") {
		t.Error("red fill missing from content stream")
	}
	// Web y=20 with height 50 on the default 792pt page lands at 722.
	if !strings.Contains(pdf, "10 722 100 50 re") {
		t.Errorf("rect not remapped to PDF coordinates:\n%s", pdf)
	}
	if !strings.Contains(pdf, "/MediaBox [0 0 612 792]") {
		t.Error("default Letter MediaBox missing")
	}
}

func TestRenderFromJSON(t *testing.T) {
	template := []byte(`{
		"title": "Invoice",
		"width": 595, "height": 842,
		"pages": [{
			"children": [
				{"type": "text", "x": 72, "y": 72, "font": "Helvetica", "size": 12, "content": "Total: 42"},
				{"type": "line", "x1": 72, "y1": 80, "x2": 523, "y2": 80, "stroke": "black"}
			]
		}]
	}`)

	var buf strings.Builder
	if err := Render(&buf, template); err != nil {
		t.Fatalf("Render: %v", err)
	}
	pdf := buf.String()

	if !strings.Contains(pdf, "/MediaBox [0 0 595 842]") {
		t.Error("document dimensions not honored")
	}
	if !strings.Contains(pdf, "(Total: 42) Tj") {
		t.Error("text missing from content stream")
	}
	if !strings.Contains(pdf, "/Title (Invoice)") {
		t.Error("Info object missing the title")
	}
	if !strings.Contains(pdf, "/BaseFont /Helvetica") {
		t.Error("font object missing")
	}
}

func TestRenderInvalidJSON(t *testing.T) {
	var buf strings.Builder
	err := Render(&buf, []byte(`{"pages": [`))
	if err == nil {
		t.Fatal("expected parse error")
	}
	var gerr *GenError
	if !errors.As(err, &gerr) || gerr.Op != "Render" {
		t.Errorf("got %v, want GenError from Render", err)
	}
	if buf.Len() != 0 {
		t.Error("no output should be written on failure")
	}
}

func TestRenderDocumentNil(t *testing.T) {
	var buf strings.Builder
	err := RenderDocument(&buf, nil)
	if !errors.Is(err, ErrNilDocument) {
		t.Errorf("got %v, want ErrNilDocument", err)
	}
}

func TestRenderDocumentBadElement(t *testing.T) {
	doc := &element.Document{
		Pages: []element.Page{{
			Children: []element.Element{
				{Type: "rect", Width: 10, Height: 10, Fill: "not-a-color"},
			},
		}},
	}
	var buf strings.Builder
	err := RenderDocument(&buf, doc)
	if err == nil {
		t.Fatal("expected error for invalid color")
	}

	var cerr *element.ColorError
	if !errors.As(err, &cerr) {
		t.Errorf("error chain should reach ColorError, got %v", err)
	}
	if !strings.Contains(err.Error(), "page 1") {
		t.Errorf("error should name the failing page: %v", err)
	}
	if buf.Len() != 0 {
		t.Error("no partial output on failure")
	}
}

type stubImages struct{}

func (stubImages) Resolve(src string) (content.ImageRef, error) {
	return content.ImageRef{Name: "Im1", Width: 100, Height: 100}, nil
}

// Documents reject image elements even when a resolver is configured:
// the assembler has no object slot for the XObject, so accepting one
// would produce a stream whose Do operator points at nothing.
func TestRenderDocumentRejectsImages(t *testing.T) {
	g := New(WithImageResolver(stubImages{}))
	doc := &element.Document{
		Pages: []element.Page{{
			Children: []element.Element{
				{Type: "image", Src: "logo.png", X: 10, Y: 10, Width: 50, Height: 50},
			},
		}},
	}
	var buf strings.Builder
	err := g.RenderDocument(&buf, doc)
	if err == nil {
		t.Fatal("expected error for image element in a document")
	}
	var uerr *element.UnsupportedError
	if !errors.As(err, &uerr) || uerr.Type != element.TypeImage {
		t.Errorf("error chain should reach UnsupportedError for image, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("no output on failure")
	}

	// The same element stays valid on the content-stream path.
	got, err := g.ContentStream(doc.Pages[0].Children[0])
	if err != nil {
		t.Fatalf("ContentStream: %v", err)
	}
	if !strings.Contains(got, "/Im1 Do") {
		t.Errorf("content stream missing the XObject reference:\n%s", got)
	}
}

// The content-stream path takes coordinates literally, with no
// web-to-PDF remapping.
func TestContentStreamNoRemap(t *testing.T) {
	got, err := ContentStream(element.Element{Type: "rect", X: 10, Y: 20, Width: 100, Height: 50})
	if err != nil {
		t.Fatalf("ContentStream: %v", err)
	}
	if got != "10 20 100 50 re\nf" {
		t.Errorf("ContentStream = %q", got)
	}
}

func TestWithPageSize(t *testing.T) {
	g := New(WithPageSize(PageSizeA4))
	var buf strings.Builder
	if err := g.RenderDocument(&buf, &element.Document{Pages: []element.Page{{}}}); err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	if !strings.Contains(buf.String(), "/MediaBox [0 0 595 842]") {
		t.Error("A4 default not applied")
	}
}

func TestWithProducer(t *testing.T) {
	g := New(WithProducer("acme-reports/2.1"))
	var buf strings.Builder
	doc := &element.Document{Pages: []element.Page{{}}}
	if err := g.RenderDocument(&buf, doc); err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	if !strings.Contains(buf.String(), "/Producer (acme-reports/2.1)") {
		t.Error("configured producer missing")
	}

	// A document that sets its own producer wins.
	buf.Reset()
	doc.Producer = "custom"
	if err := g.RenderDocument(&buf, doc); err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	if !strings.Contains(buf.String(), "/Producer (custom)") {
		t.Error("document producer should override the option")
	}
}
