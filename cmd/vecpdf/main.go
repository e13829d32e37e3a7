// Command vecpdf renders a JSON element template into a PDF file.
//
// Usage:
//
//	vecpdf [-size Letter|A4|Legal] template.json output.pdf
//
// The template describes a document of pages, each holding vector
// elements; see the vecpdf package documentation for the format.
package main

import (
	"flag"
	"fmt"
	"os"

	vecpdf "github.com/lvillar/vecpdf"
)

func main() {
	size := flag.String("size", vecpdf.PageSizeLetter, "default page size for documents that do not set one")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: vecpdf [-size name] template.json output.pdf\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	template, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "vecpdf: %v\n", err)
		os.Exit(1)
	}

	out, err := os.Create(flag.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "vecpdf: %v\n", err)
		os.Exit(1)
	}

	g := vecpdf.New(vecpdf.WithPageSize(*size))
	if err := g.Render(out, template); err != nil {
		out.Close()
		os.Remove(flag.Arg(1))
		fmt.Fprintf(os.Stderr, "vecpdf: %v\n", err)
		os.Exit(1)
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "vecpdf: %v\n", err)
		os.Exit(1)
	}
}
