package document

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Loader opens PDF files and produces the per-page text, table grids,
// and form fields the analysis components consume.
type Loader struct {
	maxFileSize int64
	maxTextSize int
}

// NewLoader creates a new document loader with the specified constraints
func NewLoader(maxFileSize int64) *Loader {
	return &Loader{
		maxFileSize: maxFileSize,
		maxTextSize: 10 * 1024 * 1024, // 10MB text limit
	}
}

// Load opens the PDF at path and extracts everything the analysis
// components need in one pass. The file handle is released on every
// exit path; a failed load returns no partial document.
func (l *Loader) Load(path string) (*Document, error) {
	if _, err := l.statPDFFile(path); err != nil {
		return nil, err
	}

	f, pdfReader, err := pdf.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	doc := &Document{Path: path}

	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			doc.Pages = append(doc.Pages, Page{Number: pageNum})
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page does not abort the load
			doc.Pages = append(doc.Pages, Page{Number: pageNum})
			continue
		}
		doc.Pages = append(doc.Pages, Page{Number: pageNum, Text: text})

		for _, table := range detectTables(pageNum, page.Content()) {
			doc.Tables = append(doc.Tables, table)
		}
	}

	if totalTextSize(doc.Pages) == 0 && len(doc.Tables) == 0 {
		return nil, &ParseError{Path: path, Err: errors.New("no text content could be extracted from PDF")}
	}

	// Form fields are optional evidence; a PDF without an AcroForm (or one
	// pdfcpu cannot read) still yields a usable document.
	if fields, err := ExtractFormFields(path); err == nil {
		doc.Fields = fields
	}

	return doc, nil
}

// statPDFFile performs basic validation on the target before opening it
func (l *Loader) statPDFFile(path string) (os.FileInfo, error) {
	if path == "" {
		return nil, &AccessError{Path: path, Err: errors.New("path cannot be empty")}
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, &AccessError{Path: path, Err: errors.New("file does not exist")}
	}
	if err != nil {
		return nil, &AccessError{Path: path, Err: err}
	}

	if fileInfo.IsDir() {
		return nil, &AccessError{Path: path, Err: errors.New("path is a directory, not a file")}
	}

	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return nil, &AccessError{Path: path, Err: errors.New("file is not a PDF")}
	}

	if fileInfo.Size() == 0 {
		return nil, &AccessError{Path: path, Err: errors.New("file is empty")}
	}

	if fileInfo.Size() > l.maxFileSize {
		return nil, &AccessError{
			Path: path,
			Err:  fmt.Errorf("file too large: %d bytes (max: %d bytes)", fileInfo.Size(), l.maxFileSize),
		}
	}

	return fileInfo, nil
}

func totalTextSize(pages []Page) int {
	total := 0
	for _, p := range pages {
		total += len(strings.TrimSpace(p.Text))
	}
	return total
}
