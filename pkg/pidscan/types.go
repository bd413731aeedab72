package pidscan

// Point is a single polygon vertex in page coordinates.
// Values are either absolute pixels or normalized 0-1 page fractions,
// indicated by the owning TextUnit.
type Point struct {
	X float64
	Y float64
}

// TextUnit is one OCR-recognized span of text with its page geometry.
// Units arrive in reading order; LineIndex is 1-based and monotonically
// increasing across the whole document.
type TextUnit struct {
	Text       string  // Recognized text content
	LineIndex  int     // Order of appearance in the OCR line stream
	Polygon    []Point // Bounding polygon vertices, may be empty
	Normalized bool    // Polygon values are 0-1 page fractions
	PageWidth  float64 // Page width in pixels
	PageHeight float64 // Page height in pixels
}

// BoundingBox is the canonical axis-aligned rectangle for a text unit,
// with X,Y at the top-left corner and non-negative dimensions.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PipingLineMatch is one recognized piping line number.
type PipingLineMatch struct {
	PipingLineNumber string       `json:"piping_line_number"` // Normalized matched string, e.g. 6"-FH-A1-02
	TextLineNumber   int          `json:"text_line_number"`   // LineIndex of the source unit
	Context          string       `json:"context"`            // Raw source unit text the match came from
	Coordinates      *BoundingBox `json:"coordinates"`        // nil when the source unit had no usable geometry
}

// Metadata carries request-level information about an extraction run.
type Metadata struct {
	SourceFile          string  `json:"source_file"`
	ExtractionTimestamp string  `json:"extraction_timestamp"`
	TotalFound          int     `json:"total_found"`
	PIDIdentifier       *string `json:"pid_identifier"`
}

// ExtractionResult is the full result of one extraction run.
// It is assembled once and never mutated afterwards.
type ExtractionResult struct {
	Metadata    Metadata          `json:"metadata"`
	PipingLines []PipingLineMatch `json:"piping_lines"`
}
