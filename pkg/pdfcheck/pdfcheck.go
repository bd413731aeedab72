// Package pdfcheck validates uploaded PDF documents before they are sent to
// the OCR processor, so unparseable input is rejected as a client error
// instead of surfacing as an upstream failure.
package pdfcheck

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// ErrNotPDF reports input that is not a parseable PDF document.
var ErrNotPDF = errors.New("not a valid PDF document")

var pdfMagic = []byte("%PDF-")

// Validate checks that data is a parseable, non-empty PDF and returns its
// page count. The returned error wraps ErrNotPDF for any structural problem.
func Validate(data []byte) (pages int, err error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: empty file", ErrNotPDF)
	}
	if !bytes.HasPrefix(data, pdfMagic) {
		return 0, fmt.Errorf("%w: missing PDF header", ErrNotPDF)
	}

	// The parser panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			pages = 0
			err = fmt.Errorf("%w: %v", ErrNotPDF, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotPDF, err)
	}

	pages = reader.NumPage()
	if pages < 1 {
		return 0, fmt.Errorf("%w: document has no pages", ErrNotPDF)
	}
	return pages, nil
}
