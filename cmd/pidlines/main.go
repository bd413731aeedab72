// pidlines is a command-line tool for extracting piping line numbers from
// P&ID drawings with Google Document AI.
//
// The tool sends a PDF to a Document AI OCR processor, scans the recognized
// text for piping line numbers and the drawing identifier, and writes the
// results as JSON. Optionally it renders a PDF report of the findings.
//
// Configuration:
//
// The tool reads Google Document AI settings from a YAML configuration file:
//
//	project_id: "your-gcp-project-id"
//	location: "eu"
//	processor_id: "your-processor-id"
//
// Without -config, settings come from the GOOGLE_CLOUD_PROJECT_ID,
// GOOGLE_CLOUD_LOCATION and DOCUMENT_AI_PROCESSOR_ID environment variables.
//
// Usage:
//
//	pidlines -pdf drawing.pdf [options]
//
// Options:
//
//	-config string  Path to the YAML configuration file
//	-pdf string     Path to the input PDF file (required)
//	-json string    Path to save extraction results (default <pdf>_piping_lines.json)
//	-report string  Path to save a PDF report of the results
//	-debug-api string  Path to save the raw API response as JSON
//
// Authentication:
//
// The tool uses the GOOGLE_APPLICATION_CREDENTIALS environment variable
// for authentication with Google Cloud.
//
// Example:
//
//	export GOOGLE_APPLICATION_CREDENTIALS=/path/to/credentials.json
//	pidlines -config config.yml -pdf drawing.pdf -json lines.json -report report.pdf
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gardar/pidlines/pkg/gdocai"
	"github.com/gardar/pidlines/pkg/pdfcheck"
	"github.com/gardar/pidlines/pkg/pidreport"
	"github.com/gardar/pidlines/pkg/pidscan"
)

// loadConfig reads a YAML file into the Google Document AI config
func loadConfig(path string) (*gdocai.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg gdocai.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.Location == "" {
		cfg.Location = "eu"
	}
	return &cfg, nil
}

func main() {
	configPath := flag.String("config", "", "Path to the config YAML file (default: environment variables)")
	pdfPath := flag.String("pdf", "", "Path to the input PDF file (required)")
	jsonPath := flag.String("json", "", "Path to save extraction results JSON (default <pdf>_piping_lines.json)")
	reportPath := flag.String("report", "", "Path to save a PDF report of the results")
	debugAPIPath := flag.String("debug-api", "", "Path to save API response as JSON for debugging purposes")

	flag.Parse()

	if *pdfPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -pdf flag is required")
		fmt.Fprintln(os.Stderr, "Usage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config from file, or fall back to the environment.
	var cfg *gdocai.Config
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	} else {
		cfg = gdocai.ConfigFromEnv()
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Default output path next to the input, like drawing_piping_lines.json
	outputPath := *jsonPath
	if outputPath == "" {
		base := strings.TrimSuffix(filepath.Base(*pdfPath), filepath.Ext(*pdfPath))
		outputPath = base + "_piping_lines.json"
	}

	pdfBytes, err := os.ReadFile(*pdfPath)
	if err != nil {
		log.Fatalf("Failed to read PDF file: %v", err)
	}
	pages, err := pdfcheck.Validate(pdfBytes)
	if err != nil {
		log.Fatalf("Invalid input file: %v", err)
	}

	fmt.Printf("Processing %s (%d pages) with Document AI\n", *pdfPath, pages)

	ctx := context.Background()
	doc, err := gdocai.ProcessDocument(ctx, pdfBytes, cfg)
	if err != nil {
		log.Fatalf("Error processing document: %v", err)
	}

	// Write API response JSON if flag is provided.
	if *debugAPIPath != "" {
		apiJSON, err := gdocai.ToJSON(doc)
		if err != nil {
			log.Fatalf("Failed to convert API response to JSON: %v", err)
		}
		if err := os.WriteFile(*debugAPIPath, []byte(apiJSON), 0644); err != nil {
			log.Fatalf("Failed to write API response JSON: %v", err)
		}
		fmt.Println("API response JSON saved to:", *debugAPIPath)
	}

	units := gdocai.UnitsFromProto(doc)
	result := pidscan.Extract(units, filepath.Base(*pdfPath), pidscan.DefaultConfig())

	resultJSON, err := gdocai.ToJSON(result)
	if err != nil {
		log.Fatalf("Failed to convert results to JSON: %v", err)
	}
	if err := os.WriteFile(outputPath, []byte(resultJSON), 0644); err != nil {
		log.Fatalf("Failed to write results: %v", err)
	}
	fmt.Println("Results saved to:", outputPath)

	// Render the PDF report if flag is provided.
	if *reportPath != "" {
		reportBytes, err := pidreport.Render(result, pidreport.DefaultConfig())
		if err != nil {
			log.Fatalf("Failed to render report: %v", err)
		}
		if err := os.WriteFile(*reportPath, reportBytes, 0644); err != nil {
			log.Fatalf("Failed to write report: %v", err)
		}
		fmt.Println("Report saved to:", *reportPath)
	}

	// Print summary
	if result.Metadata.PIDIdentifier != nil {
		fmt.Println("Drawing identifier:", *result.Metadata.PIDIdentifier)
	} else {
		fmt.Println("Drawing identifier not found")
	}
	fmt.Printf("Found %d piping line numbers\n", result.Metadata.TotalFound)
	for _, match := range result.PipingLines {
		fmt.Printf("  %s (line %d)\n", match.PipingLineNumber, match.TextLineNumber)
	}
}
