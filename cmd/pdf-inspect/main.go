// Command pdf-inspect dumps what the document loader sees in a PDF: page
// text sizes, reconstructed table grids, and interactive form fields. It
// exists for debugging extraction issues outside an MCP session.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/auditkit/mcp-pdf-compliance/internal/document"
)

var (
	outputFormat = flag.String("format", "text", "Output format: text, json")
	maxFileSize  = flag.Int64("maxfilesize", 100*1024*1024, "Maximum PDF file size in bytes")
)

func main() {
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <pdf-path>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	loader := document.NewLoader(*maxFileSize)
	doc, err := loader.Load(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch *outputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding output: %v\n", err)
			os.Exit(1)
		}
	default:
		printText(doc)
	}
}

func printText(doc *document.Document) {
	fmt.Printf("Document: %s\n", doc.Path)
	fmt.Printf("Pages: %d, Tables: %d, Form fields: %d\n\n", doc.PageCount(), len(doc.Tables), len(doc.Fields))

	for _, page := range doc.Pages {
		fmt.Printf("Page %d: %d chars of text\n", page.Number, len(page.Text))
	}

	for i, table := range doc.Tables {
		fmt.Printf("\nTable %d (page %d), %d rows:\n", i+1, table.Page, len(table.Rows))
		for _, row := range table.Rows {
			fmt.Printf("  %q\n", row)
		}
	}

	for _, field := range doc.Fields {
		fmt.Printf("\nForm field %q (type %s)\n", field.Name, field.Type)
	}
}
