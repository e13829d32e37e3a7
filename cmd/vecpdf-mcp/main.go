// Command vecpdf-mcp is an MCP (Model Context Protocol) server that
// exposes vecpdf's PDF generation to AI assistants.
//
// # Installation
//
//	go install github.com/lvillar/vecpdf/cmd/vecpdf-mcp@latest
//
// # Configuration for Claude Desktop
//
// Add to ~/.config/claude/claude_desktop_config.json:
//
//	{
//	  "mcpServers": {
//	    "vecpdf": {
//	      "command": "vecpdf-mcp"
//	    }
//	  }
//	}
//
// # Available Tools
//
//   - generate_pdf: Generate PDFs from JSON element templates
//   - generate_content_stream: Emit raw content-stream operators
//   - validate_template: Check a template without producing output
//
// # Available Resources
//
//   - vecpdf://element-types : Supported element types and attributes
//   - vecpdf://page-sizes    : Named page sizes in points
//   - vecpdf://colors        : Color value syntax
package main

import (
	"fmt"
	"os"

	"github.com/lvillar/vecpdf/mcp"
)

func main() {
	server := mcp.NewServer()

	mcp.RegisterDefaultTools(server)
	mcp.RegisterDefaultResources(server)

	if err := server.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "vecpdf-mcp: %v\n", err)
		os.Exit(1)
	}
}
