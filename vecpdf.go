// Package vecpdf generates PDF 1.4 files from a declarative tree of
// vector-graphics elements: rectangles, circles, lines, SVG-style paths,
// text, barcodes and transformed groups, organized into pages.
//
// The JSON template format mirrors the element tree:
//
//	{
//	  "title": "Report",
//	  "width": 612, "height": 792,
//	  "pages": [{
//	    "children": [
//	      {"type": "rect", "x": 10, "y": 20, "width": 100, "height": 50, "fill": "#ff0000"},
//	      {"type": "text", "x": 72, "y": 72, "font": "Helvetica", "size": 12, "content": "Hello"}
//	    ]
//	  }]
//	}
//
// Generation is a pure function of the input tree: it either returns a
// complete, structurally valid file or a typed error naming the offending
// element or attribute, never partial output.
package vecpdf

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lvillar/vecpdf/content"
	"github.com/lvillar/vecpdf/element"
	"github.com/lvillar/vecpdf/layout"
	"github.com/lvillar/vecpdf/writer"
)

// Generator renders element trees into content streams and documents.
// A Generator is safe for concurrent use; each call works on its own
// state.
type Generator struct {
	cfg generatorConfig
	em  content.Emitter
}

// New creates a Generator. Without options, documents that do not set
// their own dimensions default to Letter (612x792 points) with no margins.
func New(opts ...Option) *Generator {
	cfg := generatorConfig{width: 612, height: 792}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Generator{
		cfg: cfg,
		em:  content.Emitter{Images: cfg.images},
	}
}

// ContentStream renders one element tree into newline-separated PDF
// operators with no surrounding stream dictionary, for embedding into a
// caller-managed PDF. Coordinates are taken literally; no web-to-PDF
// remapping happens on this path.
func (g *Generator) ContentStream(e element.Element) (string, error) {
	s, err := g.em.Emit(e)
	if err != nil {
		return "", newGenError("ContentStream", err)
	}
	return s, nil
}

// RenderDocument renders a document tree into a complete PDF 1.4 file
// written to w.
func (g *Generator) RenderDocument(w io.Writer, doc *element.Document) error {
	if doc == nil {
		return newGenError("RenderDocument", ErrNilDocument)
	}

	defaults := g.defaults(doc)
	results := make([]layout.Result, len(doc.Pages))
	for i, page := range doc.Pages {
		res, err := layout.Process(page, defaults, &g.em)
		if err != nil {
			return newGenError("RenderDocument", fmt.Errorf("page %d: %w", i+1, err))
		}
		results[i] = res
	}

	pdf, err := writer.Assemble(g.info(doc), results)
	if err != nil {
		return newGenError("RenderDocument", err)
	}
	if _, err := io.WriteString(w, pdf); err != nil {
		return newGenError("RenderDocument", err)
	}
	return nil
}

// Render parses a JSON template and writes the resulting PDF to w.
func (g *Generator) Render(w io.Writer, jsonTemplate []byte) error {
	var doc element.Document
	if err := json.Unmarshal(jsonTemplate, &doc); err != nil {
		return newGenError("Render", fmt.Errorf("parsing template: %w", err))
	}
	return g.RenderDocument(w, &doc)
}

func (g *Generator) defaults(doc *element.Document) layout.Defaults {
	d := layout.Defaults{
		Width:  doc.Width,
		Height: doc.Height,
		Margins: element.Margins{
			Top:    g.cfg.margins[0],
			Right:  g.cfg.margins[1],
			Bottom: g.cfg.margins[2],
			Left:   g.cfg.margins[3],
		},
	}
	if d.Width == 0 {
		d.Width = g.cfg.width
	}
	if d.Height == 0 {
		d.Height = g.cfg.height
	}
	if doc.Margins != nil {
		d.Margins = *doc.Margins
	}
	return d
}

func (g *Generator) info(doc *element.Document) writer.Info {
	info := writer.Info{
		Title:    doc.Title,
		Author:   doc.Author,
		Subject:  doc.Subject,
		Keywords: doc.Keywords,
		Creator:  doc.Creator,
		Producer: doc.Producer,
	}
	if info.Producer == "" {
		info.Producer = g.cfg.producer
	}
	return info
}

// Render parses a JSON template with default settings and writes the
// resulting PDF to w.
func Render(w io.Writer, jsonTemplate []byte) error {
	return New().Render(w, jsonTemplate)
}

// RenderDocument renders a document tree with default settings.
func RenderDocument(w io.Writer, doc *element.Document) error {
	return New().RenderDocument(w, doc)
}

// ContentStream renders one element with default settings.
func ContentStream(e element.Element) (string, error) {
	return New().ContentStream(e)
}
