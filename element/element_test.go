package element

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCloneDeepCopies(t *testing.T) {
	orig := Element{
		Type:       TypeGroup,
		Transforms: []Transform{{Op: OpTranslate, Dx: 10, Dy: 20}},
		Children: []Element{
			{Type: TypeRect, X: 1, Y: 2, Width: 3, Height: 4},
			{
				Type:     TypeGroup,
				Children: []Element{{Type: TypeCircle, CX: 5, CY: 6, R: 7}},
			},
		},
	}

	clone := orig.Clone()
	if diff := cmp.Diff(orig, clone); diff != "" {
		t.Fatalf("clone differs from original (-orig +clone):\n%s", diff)
	}

	// Mutating the clone must not leak into the original, at any depth.
	clone.Transforms[0].Dx = 99
	clone.Children[0].X = 99
	clone.Children[1].Children[0].CX = 99
	if orig.Transforms[0].Dx != 10 {
		t.Error("transform slice is shared")
	}
	if orig.Children[0].X != 1 {
		t.Error("child slice is shared")
	}
	if orig.Children[1].Children[0].CX != 5 {
		t.Error("nested child slice is shared")
	}
}

func TestDocumentJSONRoundTrip(t *testing.T) {
	doc := Document{
		Title:   "Report",
		Width:   612,
		Height:  792,
		Margins: &Margins{Top: 72, Right: 72, Bottom: 72, Left: 72},
		Pages: []Page{{
			Children: []Element{
				{Type: TypeRect, X: 10, Y: 20, Width: 100, Height: 50, Fill: "#ff0000"},
				{Type: TypeText, X: 72, Y: 72, Font: "Helvetica", Size: 12, Content: "Hello"},
				{
					Type:       TypeGroup,
					Transforms: []Transform{{Op: OpRotate, Deg: 45}},
					Children:   []Element{{Type: TypeLine, X1: 0, Y1: 0, X2: 10, Y2: 10, Stroke: "black"}},
				},
			},
		}},
	}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var back Document
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(doc, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

// Template keys are lower camel case, matching the documented format.
func TestElementJSONKeys(t *testing.T) {
	var e Element
	err := json.Unmarshal([]byte(`{
		"type": "barcode",
		"format": "qr",
		"code": "abc",
		"strokeWidth": 2.5,
		"x1": 1, "cx": 2
	}`), &e)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if e.Type != TypeBarcode || e.Format != "qr" || e.Code != "abc" {
		t.Errorf("barcode fields not decoded: %+v", e)
	}
	if e.StrokeWidth != 2.5 {
		t.Errorf("strokeWidth = %v, want 2.5", e.StrokeWidth)
	}
	if e.X1 != 1 || e.CX != 2 {
		t.Errorf("coordinate fields not decoded: %+v", e)
	}
}
