package pidreport

// ReportConfig holds user options for rendering the extraction report
type ReportConfig struct {
	Title       string // Report heading
	DrawOverlay bool   // Append a page sketching the match positions
	Font        FontConfig
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() ReportConfig {
	return ReportConfig{
		Title:       "Piping Line Extraction Report",
		DrawOverlay: true,
		Font:        DefaultFont,
	}
}

// FontConfig contains font settings for report text rendering
type FontConfig struct {
	Name     string  // Font name (e.g., "Helvetica")
	Size     float64 // Body font size
	HeadSize float64 // Heading font size
}

// DefaultFont sets the default font to Helvetica
var DefaultFont = FontConfig{
	Name:     "Helvetica",
	Size:     9,
	HeadSize: 14,
}
