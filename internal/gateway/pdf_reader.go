package gateway

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PDFDecoder implements the document decoding capability: it flattens a PDF
// into plain text, page content concatenated in order.
type PDFDecoder struct{}

// NewPDFDecoder creates a new decoder instance.
func NewPDFDecoder() *PDFDecoder {
	return &PDFDecoder{}
}

// Decode reads the PDF at path and returns its full text.
func (d *PDFDecoder) Decode(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf %s: %w", path, err)
	}
	defer file.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract text from %s: %w", path, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("failed to read text from %s: %w", path, err)
	}
	return buf.String(), nil
}
