package main

import (
	"net/http"
)

const serviceVersion = "1.0.0"

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"message":     "Piping Line Extractor API",
		"description": "Upload P&ID PDF files to extract piping line numbers",
		"endpoints": map[string]string{
			"POST /extract-piping-lines": "Upload PDF and extract piping lines",
			"GET /health":                "Health check",
		},
		"version": serviceVersion,
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	envStatus := "OK"
	if err := h.docaiCfg.Validate(); err != nil {
		envStatus = err.Error()
	}

	writeJSON(w, map[string]any{
		"status":                "healthy",
		"environment_variables": envStatus,
		"service":               "Piping Line Extractor API",
		"version":               serviceVersion,
	})
}
