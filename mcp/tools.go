package mcp

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	vecpdf "github.com/lvillar/vecpdf"
	"github.com/lvillar/vecpdf/element"
)

// RegisterDefaultTools adds the built-in generation tools to the server.
func RegisterDefaultTools(s *Server) {
	s.AddTool(generatePDFTool())
	s.AddTool(generateContentStreamTool())
	s.AddTool(validateTemplateTool())
}

func generatePDFTool() Tool {
	return Tool{
		Name:        "generate_pdf",
		Description: "Generate a PDF 1.4 document from a JSON template of vector elements (rect, circle, line, path, text, barcode, group). Returns the PDF as base64 or writes it to a file.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"template": map[string]interface{}{
					"type":        "object",
					"description": "Document template with width, height, optional metadata and pages of element children",
				},
				"outputPath": map[string]interface{}{
					"type":        "string",
					"description": "Optional file path to save the PDF. If omitted, returns base64.",
				},
			},
			"required": []string{"template"},
		},
		Handler: handleGeneratePDF,
	}
}

func handleGeneratePDF(args map[string]interface{}) (ToolResult, error) {
	jsonBytes, err := templateArg(args)
	if err != nil {
		return ToolResult{}, err
	}

	var buf bytes.Buffer
	if err := vecpdf.Render(&buf, jsonBytes); err != nil {
		return ToolResult{}, fmt.Errorf("rendering PDF: %w", err)
	}

	if outputPath, ok := args["outputPath"].(string); ok && outputPath != "" {
		if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
			return ToolResult{}, fmt.Errorf("writing file: %w", err)
		}
		return textResult(fmt.Sprintf("PDF created: %s (%d bytes)", outputPath, buf.Len())), nil
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	return textResult(fmt.Sprintf("PDF created (%d bytes). Base64 data:\n%s", buf.Len(), encoded)), nil
}

func generateContentStreamTool() Tool {
	return Tool{
		Name:        "generate_content_stream",
		Description: "Translate a single element tree into raw PDF content-stream operators, for embedding into an existing PDF. No coordinate remapping is applied.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"element": map[string]interface{}{
					"type":        "object",
					"description": "One element (may be a group with children)",
				},
			},
			"required": []string{"element"},
		},
		Handler: handleGenerateContentStream,
	}
}

func handleGenerateContentStream(args map[string]interface{}) (ToolResult, error) {
	raw, ok := args["element"]
	if !ok {
		return ToolResult{}, fmt.Errorf("missing 'element' argument")
	}
	jsonBytes, err := json.Marshal(raw)
	if err != nil {
		return ToolResult{}, fmt.Errorf("encoding element: %w", err)
	}
	var e element.Element
	if err := json.Unmarshal(jsonBytes, &e); err != nil {
		return ToolResult{}, fmt.Errorf("parsing element: %w", err)
	}

	stream, err := vecpdf.ContentStream(e)
	if err != nil {
		return ToolResult{}, fmt.Errorf("emitting operators: %w", err)
	}
	return textResult(stream), nil
}

func validateTemplateTool() Tool {
	return Tool{
		Name:        "validate_template",
		Description: "Check a JSON document template without producing output. Reports the first invalid element or attribute, or confirms the template is renderable.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"template": map[string]interface{}{
					"type":        "object",
					"description": "Document template to check",
				},
			},
			"required": []string{"template"},
		},
		Handler: handleValidateTemplate,
	}
}

func handleValidateTemplate(args map[string]interface{}) (ToolResult, error) {
	jsonBytes, err := templateArg(args)
	if err != nil {
		return ToolResult{}, err
	}
	var buf bytes.Buffer
	if err := vecpdf.Render(&buf, jsonBytes); err != nil {
		return ToolResult{
			Content: []ContentBlock{{Type: "text", Text: fmt.Sprintf("Template is invalid: %v", err)}},
			IsError: true,
		}, nil
	}
	return textResult(fmt.Sprintf("Template is valid; it renders to %d bytes.", buf.Len())), nil
}

func templateArg(args map[string]interface{}) ([]byte, error) {
	raw, ok := args["template"]
	if !ok {
		return nil, fmt.Errorf("missing 'template' argument")
	}
	jsonBytes, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encoding template: %w", err)
	}
	return jsonBytes, nil
}

func textResult(text string) ToolResult {
	return ToolResult{Content: []ContentBlock{{Type: "text", Text: text}}}
}
