package main

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gardar/pidlines/pkg/gdocai"
	"github.com/gardar/pidlines/pkg/pidscan"
)

// Processor turns document bytes into the ordered OCR text unit sequence.
// The extraction handlers depend on this interface rather than on Document
// AI directly, so they can be exercised with synthetic fixtures.
type Processor interface {
	Process(ctx context.Context, pdfBytes []byte) ([]pidscan.TextUnit, error)
}

// documentAIProcessor is the production Processor backed by Google
// Document AI.
type documentAIProcessor struct {
	cfg *gdocai.Config
}

func (p *documentAIProcessor) Process(ctx context.Context, pdfBytes []byte) ([]pidscan.TextUnit, error) {
	return gdocai.DocumentUnits(ctx, pdfBytes, p.cfg)
}

// Handler holds the request handlers and their collaborators
type Handler struct {
	ocr      Processor
	docaiCfg *gdocai.Config
	scanCfg  pidscan.Config
}

func NewHandler(ocr Processor, docaiCfg *gdocai.Config) *Handler {
	return &Handler{
		ocr:      ocr,
		docaiCfg: docaiCfg,
		scanCfg:  pidscan.DefaultConfig(),
	}
}

func (h *Handler) Attach(r chi.Router) {
	r.Get("/", h.handleRoot)
	r.Get("/health", h.handleHealth)
	r.Post("/extract-piping-lines", h.handleExtract)
	r.Get("/extract-piping-lines", h.handleExtractUsage)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
