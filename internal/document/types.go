package document

// Page holds the extracted text of a single PDF page
type Page struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// Table represents a detected table as a grid of cell strings
type Table struct {
	Page int        `json:"page"`
	Rows [][]string `json:"rows"`
}

// FormFieldType represents the type of an interactive form field
type FormFieldType string

const (
	FormFieldTypeText      FormFieldType = "text"
	FormFieldTypeCheckbox  FormFieldType = "checkbox"
	FormFieldTypeButton    FormFieldType = "button"
	FormFieldTypeSelect    FormFieldType = "select"
	FormFieldTypeSignature FormFieldType = "signature"
	FormFieldTypeUnknown   FormFieldType = "unknown"
)

// FormField represents an interactive AcroForm field in a PDF
type FormField struct {
	Name string        `json:"name"`
	Type FormFieldType `json:"type"`
	Page int           `json:"page,omitempty"`
}

// Document is the loaded, read-only view of one PDF: per-page text,
// detected tables, and interactive form fields. It is created once per
// analysis call and never mutated afterwards.
type Document struct {
	Path   string      `json:"path"`
	Pages  []Page      `json:"pages"`
	Tables []Table     `json:"tables"`
	Fields []FormField `json:"fields,omitempty"`
}

// PageCount returns the number of pages in the document
func (d *Document) PageCount() int {
	return len(d.Pages)
}
