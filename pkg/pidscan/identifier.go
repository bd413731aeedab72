package pidscan

import (
	"regexp"
	"strings"
)

// drawingTypeTokens are the known document-type abbreviations that appear in
// title-block drawing numbers. A candidate identifier must contain one of
// these to be accepted, which keeps drawing identifiers from colliding with
// piping line numbers.
var drawingTypeTokens = map[string]bool{
	"PID": true,
	"PFD": true,
	"ISO": true,
	"GA":  true,
}

var (
	// Title block label followed by the drawing number, e.g. "DWG. NO. 13028-03-PID-003"
	dwgLabelPattern = regexp.MustCompile(`(?i)\bDWG\.?\s*NO\.?\s*([A-Z0-9][A-Z0-9-]*[A-Z0-9])`)

	// Free-standing compound code: project number, discipline code,
	// document type, sequence, e.g. 13028-03-PID-003
	bareIdentifierPattern = regexp.MustCompile(`(?i)\b\d{3,6}-[A-Z0-9]{1,4}-[A-Z]{2,4}-[A-Z0-9]{1,4}\b`)
)

// findIdentifier locates the drawing's title-block identifier, or returns ""
// when the document has none. The first qualifying candidate in document
// order wins; a drawing is assumed to carry exactly one identifier.
// Candidates following a DWG NO. label take precedence over free-standing
// identifier-shaped codes.
func findIdentifier(units []TextUnit) string {
	for _, unit := range units {
		text := normalizeForMatching(unit.Text)
		if m := dwgLabelPattern.FindStringSubmatch(text); m != nil {
			candidate := strings.ToUpper(m[1])
			if containsDrawingType(candidate) {
				return candidate
			}
		}
	}

	for _, unit := range units {
		text := normalizeForMatching(unit.Text)
		for _, candidate := range bareIdentifierPattern.FindAllString(text, -1) {
			candidate = strings.ToUpper(candidate)
			if containsDrawingType(candidate) {
				return candidate
			}
		}
	}

	return ""
}

func containsDrawingType(identifier string) bool {
	for _, component := range strings.Split(identifier, "-") {
		if drawingTypeTokens[component] {
			return true
		}
	}
	return false
}
