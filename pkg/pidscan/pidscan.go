// Package pidscan extracts piping line numbers from OCR output of piping and
// instrumentation diagrams (P&IDs).
//
// The package operates on already-fetched OCR data: an ordered sequence of
// text units, each carrying recognized text and optional page geometry. It
// knows nothing about any particular OCR provider, which keeps the engine
// testable against synthetic fixtures.
//
// Processing runs in independent passes over the same unit sequence:
//
// - Geometry normalization converts heterogeneous polygon coordinates
// (normalized page fractions or absolute pixels) into canonical bounding
// boxes, tolerating absent or malformed geometry.
// - The line scanner matches each unit's text against the piping line number
// grammar (pipe size, service code, area code, sequence number), with
// conservative correction of OCR character confusions.
// - The identifier pass locates the drawing's own title-block document
// number, a distinct grammar from piping line numbers.
// - Aggregation removes exact duplicates from overlapping OCR segmentation
// and preserves discovery order.
//
// Key Types:
//
// - TextUnit: one OCR-recognized text span with polygon geometry
// - PipingLineMatch: one recognized piping line number with its position
// - ExtractionResult: the assembled, immutable result of a run
//
// Main Functions:
//
// - Extract: runs the full pipeline over a unit sequence
//
// The passes are deterministic and never fail on malformed text content; OCR
// text is noisy by nature and non-matching text is simply skipped. A run
// that finds nothing is a valid empty result, not an error.
package pidscan

import "time"

// Extract runs the extraction pipeline over the ordered OCR unit sequence
// and assembles the final result. sourceFile is the caller-supplied name of
// the originating document, recorded in the result metadata.
//
// Extract is a pure transformation apart from the timestamp; running it
// twice over the same units yields identical results except for
// Metadata.ExtractionTimestamp.
func Extract(units []TextUnit, sourceFile string, cfg Config) *ExtractionResult {
	var candidates []PipingLineMatch
	for _, unit := range units {
		box := boundsFromUnit(unit, cfg)
		candidates = append(candidates, scanUnit(unit, box)...)
	}

	matches := dedupe(candidates)

	var identifier *string
	if id := findIdentifier(units); id != "" {
		identifier = &id
	}

	return &ExtractionResult{
		Metadata: Metadata{
			SourceFile:          sourceFile,
			ExtractionTimestamp: cfg.now().Format(time.RFC3339),
			TotalFound:          len(matches),
			PIDIdentifier:       identifier,
		},
		PipingLines: matches,
	}
}
