// Package element defines the declarative element tree that vecpdf renders
// into PDF content streams and documents.
//
// An element tree is a plain value: it has no back-references and no cycles,
// and a generation call never mutates it. The Type field selects which other
// fields are meaningful, mirroring the JSON template format:
//
//	{
//	  "width": 612, "height": 792,
//	  "pages": [{
//	    "children": [
//	      {"type": "rect", "x": 10, "y": 20, "width": 100, "height": 50, "fill": "#ff0000"},
//	      {"type": "text", "x": 72, "y": 72, "font": "Helvetica", "size": 12, "content": "Hello"}
//	    ]
//	  }]
//	}
package element

// Element kinds accepted by the operator emitter.
const (
	TypeRect    = "rect"
	TypeCircle  = "circle"
	TypeLine    = "line"
	TypePath    = "path"
	TypeText    = "text"
	TypeGroup   = "group"
	TypeBarcode = "barcode"
	TypeImage   = "image"
)

// Transform operations accepted on a group.
const (
	OpTranslate = "translate"
	OpRotate    = "rotate"
	OpScale     = "scale"
)

// Document is the top-level tree describing an entire PDF file.
// Width, height and margins act as defaults for every page; the metadata
// strings are optional and flow into the PDF Info object only when present.
type Document struct {
	Title    string   `json:"title,omitempty"`
	Author   string   `json:"author,omitempty"`
	Subject  string   `json:"subject,omitempty"`
	Keywords string   `json:"keywords,omitempty"`
	Creator  string   `json:"creator,omitempty"`
	Producer string   `json:"producer,omitempty"`
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	Margins  *Margins `json:"margins,omitempty"`
	Pages    []Page   `json:"pages"`
}

// Page is one page of a document. Width, height and margins inherit the
// document's values when absent (zero width/height, nil margins).
type Page struct {
	Width    float64   `json:"width,omitempty"`
	Height   float64   `json:"height,omitempty"`
	Margins  *Margins  `json:"margins,omitempty"`
	Children []Element `json:"children"`
}

// Margins are page margins in points.
type Margins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Element is a single drawable node. The Type field determines which other
// fields are relevant; colors are either one of the supported names or a
// "#rrggbb" hex string. An empty Fill/Stroke means the attribute is absent.
type Element struct {
	Type string `json:"type"`

	// Geometry shared by rect, barcode and image (top-left anchored).
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Circle
	CX float64 `json:"cx,omitempty"`
	CY float64 `json:"cy,omitempty"`
	R  float64 `json:"r,omitempty"`

	// Line
	X1 float64 `json:"x1,omitempty"`
	Y1 float64 `json:"y1,omitempty"`
	X2 float64 `json:"x2,omitempty"`
	Y2 float64 `json:"y2,omitempty"`

	// Path data in the SVG "d" syntax (M/L/C/Z commands).
	D string `json:"d,omitempty"`

	// Styling
	Fill        string  `json:"fill,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`

	// Text
	Font    string  `json:"font,omitempty"`
	Size    float64 `json:"size,omitempty"`
	Content string  `json:"content,omitempty"`

	// Group
	Transforms []Transform `json:"transforms,omitempty"`
	Children   []Element   `json:"children,omitempty"`

	// Barcode
	Code   string `json:"code,omitempty"`
	Format string `json:"format,omitempty"` // qr, code128, ean, pdf417

	// Image source path or emoji shortcode like ":rocket:".
	Src string `json:"src,omitempty"`
}

// Clone returns a deep copy of the element, including group children and
// transforms. Callers that rewrite coordinates work on the copy so the
// input tree stays untouched.
func (e Element) Clone() Element {
	out := e
	if len(e.Transforms) > 0 {
		out.Transforms = make([]Transform, len(e.Transforms))
		copy(out.Transforms, e.Transforms)
	}
	if len(e.Children) > 0 {
		out.Children = make([]Element, len(e.Children))
		for i, c := range e.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

// Transform is a single transform instruction on a group. Op selects which
// fields are used: translate uses Dx/Dy, scale uses Sx/Sy, rotate uses Deg.
// An ordered sequence applies left to right; each instruction becomes its
// own cm operator and composes under the viewer's CTM semantics.
type Transform struct {
	Op  string  `json:"op"`
	Dx  float64 `json:"dx,omitempty"`
	Dy  float64 `json:"dy,omitempty"`
	Sx  float64 `json:"sx,omitempty"`
	Sy  float64 `json:"sy,omitempty"`
	Deg float64 `json:"deg,omitempty"`
}
