package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gardar/pidlines/pkg/pdfcheck"
	"github.com/gardar/pidlines/pkg/pidscan"
)

const (
	// maxUploadSize caps uploaded PDF files at 50MB
	maxUploadSize = 50 * 1024 * 1024

	// ocrTimeout bounds the Document AI call. The pattern-matching stages
	// afterwards are local and run to completion.
	ocrTimeout = 2 * time.Minute
)

// handleExtract accepts a P&ID PDF upload and responds with the extracted
// piping line numbers. Invalid input is a client error; an OCR failure is a
// dependency error, kept distinguishable from a valid drawing with zero
// matches.
func (h *Handler) handleExtract(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("missing file upload field 'file'"))
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		writeError(w, http.StatusBadRequest, errors.New("file must be a PDF (.pdf extension required)"))
		return
	}

	pdfBytes, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("failed to read upload: %w", err))
		return
	}
	if len(pdfBytes) > maxUploadSize {
		writeError(w, http.StatusBadRequest, errors.New("file size too large, maximum size: 50MB"))
		return
	}

	pages, err := pdfcheck.Validate(pdfBytes)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	log.Printf("Processing %s (%d bytes, %d pages)", header.Filename, len(pdfBytes), pages)

	ctx, cancel := context.WithTimeout(r.Context(), ocrTimeout)
	defer cancel()

	units, err := h.ocr.Process(ctx, pdfBytes)
	if err != nil {
		log.Printf("OCR processing failed for %s: %v", header.Filename, err)
		writeError(w, http.StatusBadGateway, fmt.Errorf("OCR processing failed: %w", err))
		return
	}

	result := pidscan.Extract(units, header.Filename, h.scanCfg)

	log.Printf("Processed %s: found %d piping lines", header.Filename, result.Metadata.TotalFound)
	writeJSON(w, result)
}

// handleExtractUsage answers GET requests on the extraction endpoint with
// usage information
func (h *Handler) handleExtractUsage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"message": "Use POST method to upload PDF files",
		"usage": map[string]any{
			"method":       "POST",
			"endpoint":     "/extract-piping-lines",
			"content_type": "multipart/form-data",
			"parameters":   map[string]string{"file": "PDF file to process (required)"},
		},
		"example_curl": "curl -X POST -F 'file=@your_file.pdf' http://localhost:8000/extract-piping-lines",
	})
}
