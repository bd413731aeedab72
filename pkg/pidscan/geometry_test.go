package pidscan

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.LogWarnings = false
	return cfg
}

func TestBoundsAbsentPolygon(t *testing.T) {
	unit := TextUnit{Text: "no geometry", LineIndex: 1}
	if box := boundsFromUnit(unit, quietConfig()); box != nil {
		t.Errorf("expected nil box for absent polygon, got %+v", box)
	}
}

func TestBoundsAbsolutePolygon(t *testing.T) {
	unit := TextUnit{
		LineIndex: 3,
		Polygon: []Point{
			{X: 100, Y: 50},
			{X: 220, Y: 50},
			{X: 220, Y: 80},
			{X: 100, Y: 80},
		},
	}
	box := boundsFromUnit(unit, quietConfig())
	if box == nil {
		t.Fatal("expected a box for a valid polygon")
	}
	if box.X != 100 || box.Y != 50 || box.Width != 120 || box.Height != 30 {
		t.Errorf("unexpected box: %+v", box)
	}
}

func TestBoundsNormalizedPolygonScales(t *testing.T) {
	unit := TextUnit{
		LineIndex:  7,
		Normalized: true,
		PageWidth:  1000,
		PageHeight: 800,
		Polygon: []Point{
			{X: 0.1, Y: 0.25},
			{X: 0.3, Y: 0.25},
			{X: 0.3, Y: 0.5},
			{X: 0.1, Y: 0.5},
		},
	}
	box := boundsFromUnit(unit, quietConfig())
	if box == nil {
		t.Fatal("expected a box for a valid normalized polygon")
	}
	if box.X != 100 || box.Y != 200 || box.Width != 200 || box.Height != 200 {
		t.Errorf("unexpected scaled box: %+v", box)
	}
}

func TestBoundsUnorderedVertices(t *testing.T) {
	// The box is the min/max envelope regardless of vertex order.
	unit := TextUnit{
		LineIndex: 2,
		Polygon: []Point{
			{X: 220, Y: 80},
			{X: 100, Y: 50},
			{X: 220, Y: 50},
		},
	}
	box := boundsFromUnit(unit, quietConfig())
	if box == nil {
		t.Fatal("expected a box")
	}
	if box.Width < 0 || box.Height < 0 {
		t.Errorf("dimensions must be non-negative: %+v", box)
	}
	if box.X != 100 || box.Y != 50 {
		t.Errorf("expected top-left corner at min vertices, got %+v", box)
	}
}

func TestBoundsDegeneratePolygonWarns(t *testing.T) {
	var warnings bytes.Buffer
	cfg := DefaultConfig()
	cfg.Logger = &warnings

	unit := TextUnit{
		LineIndex: 9,
		Polygon:   []Point{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 2}},
	}
	if box := boundsFromUnit(unit, cfg); box != nil {
		t.Errorf("expected nil box for polygon with 2 distinct vertices, got %+v", box)
	}
	if !strings.Contains(warnings.String(), "line 9") {
		t.Errorf("expected a warning naming the line, got %q", warnings.String())
	}
}

func TestBoundsNonFiniteCoordinates(t *testing.T) {
	unit := TextUnit{
		LineIndex: 4,
		Polygon:   []Point{{X: math.NaN(), Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
	}
	if box := boundsFromUnit(unit, quietConfig()); box != nil {
		t.Errorf("expected nil box for NaN coordinates, got %+v", box)
	}

	unit.Polygon[0].X = math.Inf(1)
	if box := boundsFromUnit(unit, quietConfig()); box != nil {
		t.Errorf("expected nil box for Inf coordinates, got %+v", box)
	}
}
