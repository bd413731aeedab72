// pidserver is an HTTP service that extracts piping line numbers from P&ID
// drawings.
//
// Uploaded PDF files are validated, sent to Google Document AI for OCR, and
// scanned for piping line numbers and the drawing's title-block identifier.
// The response lists every recognized line number with its position on the
// page.
//
// Endpoints:
//
//	POST /extract-piping-lines  Upload a PDF and get the extraction JSON
//	GET  /health                Health check with configuration status
//	GET  /                      Service information
//
// Configuration (environment variables, optionally from a .env file):
//
//	GOOGLE_CLOUD_PROJECT_ID         Google Cloud project (required)
//	DOCUMENT_AI_PROCESSOR_ID        Document AI OCR processor (required)
//	GOOGLE_CLOUD_LOCATION           Processor location (default "eu")
//	GOOGLE_APPLICATION_CREDENTIALS  Service account key file (optional)
//	PORT                            Listen port (default 8000)
package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/gardar/pidlines/pkg/gdocai"
)

func main() {
	// A .env file is optional; real environment variables win either way.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg := gdocai.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Printf("Warning: %v", err)
		log.Println("Server will start but extraction requests will fail.")
	}

	handler := NewHandler(&documentAIProcessor{cfg: cfg}, cfg)

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	handler.Attach(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		// Document AI processing of a large drawing can take a while; the
		// write timeout has to outlast the OCR timeout.
		WriteTimeout: ocrTimeout + 30*time.Second,
	}

	log.Printf("Starting piping line extraction server on :%s", port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
