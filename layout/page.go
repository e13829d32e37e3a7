package layout

import (
	"fmt"
	"strings"

	"github.com/lvillar/vecpdf/content"
	"github.com/lvillar/vecpdf/element"
)

// Defaults are the document-level page attributes a page falls back to
// when it does not set its own.
type Defaults struct {
	Width   float64
	Height  float64
	Margins element.Margins
}

// Result is one processed page: its resolved attributes, the finished
// content stream and usage metadata for diagnostics and assembly.
type Result struct {
	Width   float64
	Height  float64
	Margins element.Margins
	Content string
	Meta    Meta
}

// Meta records what a page's content stream actually used.
type Meta struct {
	Elements       int
	UsesTransforms bool
}

// Process merges a page's attributes over the document defaults (the page
// wins where it sets a value), maps every child into PDF coordinates and
// emits one operator block per top-level child, joined by newlines. Any
// child failing validation aborts the whole page, as does an image
// element at any depth.
func Process(p element.Page, d Defaults, em *content.Emitter) (Result, error) {
	res := Result{
		Width:   p.Width,
		Height:  p.Height,
		Margins: d.Margins,
	}
	if res.Width == 0 {
		res.Width = d.Width
	}
	if res.Height == 0 {
		res.Height = d.Height
	}
	if p.Margins != nil {
		res.Margins = *p.Margins
	}

	blocks := make([]string, 0, len(p.Children))
	for i, child := range p.Children {
		if containsImage(child) {
			return Result{}, fmt.Errorf("layout: element %d: %w", i+1, &element.UnsupportedError{Type: element.TypeImage})
		}
		mapped := MapCoordinates(child, res.Height, res.Margins)
		s, err := em.Emit(mapped)
		if err != nil {
			return Result{}, fmt.Errorf("layout: element %d: %w", i+1, err)
		}
		blocks = append(blocks, s)
		if usesTransforms(child) {
			res.Meta.UsesTransforms = true
		}
	}
	res.Content = strings.Join(blocks, "\n")
	res.Meta.Elements = len(p.Children)
	return res, nil
}

// containsImage reports whether an element tree holds an image anywhere.
// Images resolve to XObject references the assembler has no object slot
// for, so they are only renderable through the content-stream API.
func containsImage(e element.Element) bool {
	if e.Type == element.TypeImage {
		return true
	}
	for _, c := range e.Children {
		if containsImage(c) {
			return true
		}
	}
	return false
}

func usesTransforms(e element.Element) bool {
	if e.Type == element.TypeGroup && len(e.Transforms) > 0 {
		return true
	}
	for _, c := range e.Children {
		if usesTransforms(c) {
			return true
		}
	}
	return false
}
