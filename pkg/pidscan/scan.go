package pidscan

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Piping line number grammar: a nominal pipe size (digits with an optional
// fraction and inch mark), then service code, area code and sequence number
// joined by hyphens. OCR output is noisy, so three patterns of decreasing
// strictness are tried and the results merged.
var linePatterns = []*regexp.Regexp{
	// Full format with size and inch mark, e.g. 6"-FH-A1-02 or 1/2"-CW-B2-01
	regexp.MustCompile(`(?i)\b\d{1,2}(?:/\d{1,2})?"-[A-Z]{1,3}-[A-Z0-9]{1,3}-[A-Z0-9]{1,4}\b`),
	// Size without the inch mark
	regexp.MustCompile(`(?i)\b\d{1,2}-[A-Z]{1,3}-[A-Z0-9]{1,3}-[A-Z0-9]{1,4}\b`),
	// General four-component form with a mixed alphanumeric size token
	regexp.MustCompile(`(?i)\b[A-Z0-9"]{1,4}-[A-Z]{1,3}-[A-Z0-9]{1,3}-[A-Z0-9]{1,4}\b`),
}

// Quote-like characters OCR engines commonly substitute for the inch mark.
var quoteConfusions = strings.NewReplacer(
	"“", `"`, // left double quotation mark
	"”", `"`, // right double quotation mark
	"„", `"`, // double low-9 quotation mark
	"″", `"`, // double prime
	"´´", `"`,
	"''", `"`,
	"′′", `"`,
)

// normalizeForMatching applies deterministic character-confusion correction
// before grammar matching. NFKC folds fullwidth and compatibility forms,
// then quote-like substitutes become the inch mark. The original text is
// kept separately for the match context.
func normalizeForMatching(text string) string {
	return quoteConfusions.Replace(norm.NFKC.String(text))
}

type span struct {
	start int
	end   int
	text  string
}

// scanUnit finds all qualifying piping line numbers in a single text unit.
// Overlapping candidate spans are resolved in favor of the longer match, so
// near-duplicate tokens produced by OCR noise are not emitted twice.
func scanUnit(unit TextUnit, box *BoundingBox) []PipingLineMatch {
	text := normalizeForMatching(unit.Text)

	var spans []span
	for _, pattern := range linePatterns {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			spans = append(spans, span{start: loc[0], end: loc[1], text: text[loc[0]:loc[1]]})
		}
	}
	if len(spans) == 0 {
		return nil
	}

	// Longer spans win on overlap; ties resolve to the earlier span.
	sort.Slice(spans, func(i, j int) bool {
		li, lj := spans[i].end-spans[i].start, spans[j].end-spans[j].start
		if li != lj {
			return li > lj
		}
		return spans[i].start < spans[j].start
	})

	var kept []span
	for _, s := range spans {
		overlaps := false
		for _, k := range kept {
			if s.start < k.end && k.start < s.end {
				overlaps = true
				break
			}
		}
		if !overlaps {
			kept = append(kept, s)
		}
	}

	// Restore left-to-right discovery order within the unit.
	sort.Slice(kept, func(i, j int) bool { return kept[i].start < kept[j].start })

	var matches []PipingLineMatch
	for _, s := range kept {
		number := normalizeLineNumber(strings.ToUpper(strings.TrimSpace(s.text)))
		if !validateLineNumber(number) {
			continue
		}
		matches = append(matches, PipingLineMatch{
			PipingLineNumber: number,
			TextLineNumber:   unit.LineIndex,
			Context:          strings.TrimSpace(unit.Text),
			Coordinates:      box,
		})
	}
	return matches
}

var bareSizePattern = regexp.MustCompile(`^\d+(?:/\d+)?$`)

// normalizeLineNumber adds the missing inch mark when the size component is
// bare digits, so 6-FH-A1-02 and 6"-FH-A1-02 read as the same line.
func normalizeLineNumber(number string) string {
	components := strings.Split(number, "-")
	if len(components) > 0 && bareSizePattern.MatchString(components[0]) {
		components[0] += `"`
		return strings.Join(components, "-")
	}
	return number
}

var (
	hasLetter    = regexp.MustCompile(`[A-Z]`)
	hasDigit     = regexp.MustCompile(`\d`)
	alphanumeric = regexp.MustCompile(`^[A-Z0-9]+$`)
)

// validateLineNumber applies the structural checks a grammar match must still
// pass: four components, plausible length, a sized first component and an
// alphanumeric sequence number. Components matching a drawing-type token are
// rejected so piping lines and drawing identifiers stay disjoint.
func validateLineNumber(number string) bool {
	components := strings.Split(number, "-")
	if len(components) != 4 {
		return false
	}
	if len(number) < 7 || len(number) > 20 {
		return false
	}
	if !hasLetter.MatchString(number) || !hasDigit.MatchString(number) {
		return false
	}
	if !hasDigit.MatchString(components[0]) {
		return false
	}
	if !alphanumeric.MatchString(components[3]) {
		return false
	}
	for _, component := range components {
		if drawingTypeTokens[component] {
			return false
		}
	}
	return true
}
