package pidscan

// dedupeKey identifies a match for duplicate removal. Two matches are
// duplicates only when both the line number and the source text line agree;
// the same piping line labelled in two places on the drawing is two results.
type dedupeKey struct {
	number string
	line   int
}

// dedupe removes exact duplicate matches that arise from overlapping OCR
// segmentation. The first occurrence wins and discovery order is preserved.
func dedupe(candidates []PipingLineMatch) []PipingLineMatch {
	seen := make(map[dedupeKey]bool, len(candidates))
	result := make([]PipingLineMatch, 0, len(candidates))
	for _, match := range candidates {
		key := dedupeKey{number: match.PipingLineNumber, line: match.TextLineNumber}
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, match)
	}
	return result
}
