package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load_ValidationErrors(t *testing.T) {
	dir := t.TempDir()

	textFile := filepath.Join(dir, "report.txt")
	require.NoError(t, os.WriteFile(textFile, []byte("plain text"), 0o644))

	emptyPDF := filepath.Join(dir, "empty.pdf")
	require.NoError(t, os.WriteFile(emptyPDF, nil, 0o644))

	largePDF := filepath.Join(dir, "large.pdf")
	require.NoError(t, os.WriteFile(largePDF, make([]byte, 256), 0o644))

	loader := NewLoader(128)

	cases := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"empty path", "", "path cannot be empty"},
		{"missing file", filepath.Join(dir, "missing.pdf"), "does not exist"},
		{"directory", dir, "directory"},
		{"wrong extension", textFile, "not a PDF"},
		{"empty file", emptyPDF, "file is empty"},
		{"over size limit", largePDF, "too large"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := loader.Load(tc.path)
			assert.Nil(t, doc)

			var accessErr *AccessError
			require.ErrorAs(t, err, &accessErr)
			assert.Equal(t, tc.path, accessErr.Path)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoader_Load_CorruptPDFIsParseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corrupt.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.7 garbage with no xref"), 0o644))

	loader := NewLoader(100 * 1024 * 1024)
	doc, err := loader.Load(path)

	assert.Nil(t, doc)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)

	var accessErr *AccessError
	assert.NotErrorAs(t, err, &accessErr)
}

func TestLoader_Load_UppercaseExtensionAccepted(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "REPORT.PDF")
	require.NoError(t, os.WriteFile(path, []byte("not really a pdf"), 0o644))

	loader := NewLoader(100 * 1024 * 1024)
	_, err := loader.Load(path)

	// Extension validation passes; the failure comes from parsing instead.
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}
