// Package gdocai integrates with Google Document AI for OCR processing of
// P&ID drawings.
//
// This package handles the workflow from raw PDF bytes to the ordered text
// unit sequence the extraction engine consumes. It sends documents to a
// Document AI OCR processor, then converts the proprietary response format
// into plain text units with page-relative bounding geometry, preserving the
// positional data needed to locate each recognized line on the drawing.
//
// Key Features:
//
// - Process PDFs with Google Document AI to extract text and layout
// - Convert Document AI output into ordered text units with geometry
// - Retry the Document AI call once with backoff on transient failure
//
// Main Functions:
//
// - ProcessDocument: Sends a document to Google Document AI for processing
// - UnitsFromProto: Converts a Document AI response into text units
// - DocumentUnits: Combines both steps
//
// Usage Requirements:
//
// - Google Cloud project with Document AI API enabled
// - Document AI processor configured for OCR
// - Authentication via GOOGLE_APPLICATION_CREDENTIALS environment variable
package gdocai

import (
	"context"
	"fmt"

	"github.com/gardar/pidlines/pkg/pidscan"
)

// DocumentUnits processes a PDF with Document AI and returns the ordered
// text unit sequence for the extraction engine. The context bounds the
// Document AI call; the conversion itself is local and cannot block.
func DocumentUnits(ctx context.Context, pdfBytes []byte, cfg *Config) ([]pidscan.TextUnit, error) {
	doc, err := ProcessDocument(ctx, pdfBytes, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to process document: %w", err)
	}
	return UnitsFromProto(doc), nil
}
