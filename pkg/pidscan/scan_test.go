package pidscan

import (
	"testing"
)

func TestScanSingleMatch(t *testing.T) {
	unit := TextUnit{
		Text:      `6"-FH-A1-02 shown here`,
		LineIndex: 18,
		Polygon:   []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
	}
	matches := scanUnit(unit, boundsFromUnit(unit, quietConfig()))

	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(matches), matches)
	}
	m := matches[0]
	if m.PipingLineNumber != `6"-FH-A1-02` {
		t.Errorf("unexpected line number %q", m.PipingLineNumber)
	}
	if m.TextLineNumber != 18 {
		t.Errorf("expected text line 18, got %d", m.TextLineNumber)
	}
	if m.Context != `6"-FH-A1-02 shown here` {
		t.Errorf("context should be the full unit text, got %q", m.Context)
	}
	if m.Coordinates == nil {
		t.Error("expected coordinates from the unit polygon")
	}
}

func TestScanMultipleMatchesInOneUnit(t *testing.T) {
	// OCR frequently merges several labels into one line.
	unit := TextUnit{Text: `6"-FH-A1-02 4"-CW-B2-01`, LineIndex: 5}
	matches := scanUnit(unit, nil)

	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d: %+v", len(matches), matches)
	}
	if matches[0].PipingLineNumber != `6"-FH-A1-02` || matches[1].PipingLineNumber != `4"-CW-B2-01` {
		t.Errorf("expected left-to-right order, got %+v", matches)
	}
}

func TestScanNormalizesBareSize(t *testing.T) {
	// Size without the inch mark gains one during normalization.
	unit := TextUnit{Text: "8-FW-C3-12 pump feed", LineIndex: 2}
	matches := scanUnit(unit, nil)

	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].PipingLineNumber != `8"-FW-C3-12` {
		t.Errorf("expected normalized size, got %q", matches[0].PipingLineNumber)
	}
}

func TestScanCorrectsQuoteConfusions(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"right double quote", "6”-FH-A1-02"},
		{"double prime", "6″-FH-A1-02"},
		{"two apostrophes", "6''-FH-A1-02"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			unit := TextUnit{Text: tc.text, LineIndex: 1}
			matches := scanUnit(unit, nil)
			if len(matches) != 1 {
				t.Fatalf("expected 1 match, got %d", len(matches))
			}
			if matches[0].PipingLineNumber != `6"-FH-A1-02` {
				t.Errorf("expected corrected inch mark, got %q", matches[0].PipingLineNumber)
			}
			// The context keeps the original unnormalized text.
			if matches[0].Context != tc.text {
				t.Errorf("context must preserve original text, got %q", matches[0].Context)
			}
		})
	}
}

func TestScanLowercaseInput(t *testing.T) {
	unit := TextUnit{Text: `6"-fh-a1-02`, LineIndex: 1}
	matches := scanUnit(unit, nil)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].PipingLineNumber != `6"-FH-A1-02` {
		t.Errorf("expected uppercased result, got %q", matches[0].PipingLineNumber)
	}
}

func TestScanPrefersLongerOverlappingMatch(t *testing.T) {
	// The looser patterns match sub-spans of the full form; only the
	// longest span may be emitted.
	unit := TextUnit{Text: `10"-HS-D1-103`, LineIndex: 3}
	matches := scanUnit(unit, nil)
	if len(matches) != 1 {
		t.Fatalf("expected a single match for overlapping spans, got %d: %+v", len(matches), matches)
	}
	if matches[0].PipingLineNumber != `10"-HS-D1-103` {
		t.Errorf("expected the full-length match, got %q", matches[0].PipingLineNumber)
	}
}

func TestScanRejectsNonConforming(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"free text", "continued on sheet 2 of 3"},
		{"three components", `6"-FH-A1`},
		{"drawing identifier shape", "13028-03-PID-003"},
		{"no letters", "12-34-56-78"},
		{"too long", `12"-ABC-XYZ1-ABCD-EFGH`},
		{"empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			unit := TextUnit{Text: tc.text, LineIndex: 1}
			if matches := scanUnit(unit, nil); len(matches) != 0 {
				t.Errorf("expected no matches for %q, got %+v", tc.text, matches)
			}
		})
	}
}

func TestValidateLineNumber(t *testing.T) {
	valid := []string{`6"-FH-A1-02`, `4"-CW-B2-01`, `12"-HS-D10-103`}
	for _, number := range valid {
		if !validateLineNumber(number) {
			t.Errorf("expected %q to validate", number)
		}
	}

	invalid := []string{
		`6"-FH-A1`,          // three components
		`6"-PID-A1-02`,      // drawing-type token as a component
		`X-FH-A1-02`,        // no digit in the size component
		`6"-FH-A1-0#`,       // non-alphanumeric sequence
		`6"-F-1`,            // too short
		`123456"-ABCD-WXYZ-0123456`, // too long
	}
	for _, number := range invalid {
		if validateLineNumber(number) {
			t.Errorf("expected %q to be rejected", number)
		}
	}
}
