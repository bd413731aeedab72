package gdocai

import (
	"context"
	"fmt"
	"os"
	"time"

	documentai "cloud.google.com/go/documentai/apiv1"
	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"google.golang.org/api/option"
)

// retryBackoff is the wait before the single retry of a failed
// Document AI call.
const retryBackoff = 2 * time.Second

// ProcessDocument sends PDF bytes to Google Document AI for processing and
// returns the raw Document proto response. A failed call is retried once
// after a short backoff; the pattern-matching stages downstream are
// deterministic and never retried.
func ProcessDocument(ctx context.Context, pdfBytes []byte, cfg *Config) (*documentaipb.Document, error) {
	endpoint := fmt.Sprintf("%s-documentai.googleapis.com:443", cfg.Location)

	opts := []option.ClientOption{option.WithEndpoint(endpoint)}
	if credFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credFile != "" {
		opts = append(opts, option.WithCredentialsFile(credFile))
	}

	client, err := documentai.NewDocumentProcessorClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Document AI client: %w", err)
	}
	defer client.Close()

	// Build the resource name of the processor
	name := fmt.Sprintf(
		"projects/%s/locations/%s/processors/%s",
		cfg.ProjectID, cfg.Location, cfg.ProcessorID,
	)

	req := &documentaipb.ProcessRequest{
		Name: name,
		Source: &documentaipb.ProcessRequest_RawDocument{
			RawDocument: &documentaipb.RawDocument{
				Content:  pdfBytes,
				MimeType: "application/pdf",
			},
		},
		SkipHumanReview: true,
	}

	resp, err := client.ProcessDocument(ctx, req)
	if err != nil {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("failed to process document: %w", err)
		case <-time.After(retryBackoff):
		}
		resp, err = client.ProcessDocument(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("failed to process document: %w", err)
		}
	}

	return resp.Document, nil
}
