package document

import "fmt"

// AccessError indicates the file could not be reached at all: missing,
// unreadable, a directory, or over the size limit. It is fatal for the
// call and carries no partial result.
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("cannot access document %s: %v", e.Path, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// ParseError indicates the file was readable but is not a usable PDF.
type ParseError struct {
	Path string
	Page int // 0 when the failing page is unknown
	Err  error
}

func (e *ParseError) Error() string {
	if e.Page > 0 {
		return fmt.Sprintf("cannot parse document %s (page %d): %v", e.Path, e.Page, e.Err)
	}
	return fmt.Sprintf("cannot parse document %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
