package mcp

import "encoding/json"

// RegisterDefaultResources adds the built-in reference resources to the
// server. They are static catalogs, useful for clients composing
// templates.
func RegisterDefaultResources(s *Server) {
	s.AddResource(Resource{
		URI:         "vecpdf://element-types",
		Name:        "Element Types",
		Description: "The element types accepted in templates, with their relevant attributes.",
		MIMEType:    "application/json",
		Handler:     handleElementTypesResource,
	})

	s.AddResource(Resource{
		URI:         "vecpdf://page-sizes",
		Name:        "Page Sizes",
		Description: "Named page sizes and their dimensions in points.",
		MIMEType:    "application/json",
		Handler:     handlePageSizesResource,
	})

	s.AddResource(Resource{
		URI:         "vecpdf://colors",
		Name:        "Colors",
		Description: "How color attributes are interpreted.",
		MIMEType:    "text/plain",
		Handler:     handleColorsResource,
	})
}

func handleElementTypesResource(uri string) ([]ResourceContent, error) {
	catalog := []map[string]interface{}{
		{"type": "rect", "attributes": []string{"x", "y", "width", "height", "fill", "stroke", "strokeWidth"}},
		{"type": "circle", "attributes": []string{"cx", "cy", "r", "fill", "stroke", "strokeWidth"}},
		{"type": "line", "attributes": []string{"x1", "y1", "x2", "y2", "stroke", "strokeWidth"}},
		{"type": "path", "attributes": []string{"d", "fill", "stroke", "strokeWidth"}, "note": "d uses SVG M/L/C/Z commands; coordinates are PDF-space"},
		{"type": "text", "attributes": []string{"x", "y", "font", "size", "fill", "content"}},
		{"type": "group", "attributes": []string{"transforms", "children"}, "note": "transforms are {op: translate|rotate|scale, dx, dy, sx, sy, deg}"},
		{"type": "barcode", "attributes": []string{"x", "y", "width", "height", "code", "format", "fill"}, "note": "format is qr, code128, ean or pdf417"},
	}
	return jsonResource(uri, catalog)
}

func handlePageSizesResource(uri string) ([]ResourceContent, error) {
	sizes := map[string][2]float64{
		"Letter": {612, 792},
		"A4":     {595, 842},
		"Legal":  {612, 1008},
	}
	return jsonResource(uri, sizes)
}

func handleColorsResource(uri string) ([]ResourceContent, error) {
	return []ResourceContent{{
		URI:      uri,
		MIMEType: "text/plain",
		Text: "Colors are core names (red, green, blue, black, white, yellow, cyan, magenta)\n" +
			"with pure RGB values, \"#rrggbb\" hex strings, or extended SVG 1.1 color names.\n" +
			"Anything else fails validation; there is no silent fallback to black.",
	}}, nil
}

func jsonResource(uri string, v interface{}) ([]ResourceContent, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return []ResourceContent{{URI: uri, MIMEType: "application/json", Text: string(data)}}, nil
}
