package pidscan

import (
	"fmt"
	"math"
	"os"
)

// boundsFromUnit converts a unit's polygon into the canonical bounding box.
// Absent geometry returns nil, which downstream consumers treat as
// "coordinates unknown" rather than an error. Malformed polygons (fewer than
// three distinct vertices, or non-finite coordinates) also return nil and are
// reported on the warning writer.
func boundsFromUnit(unit TextUnit, cfg Config) *BoundingBox {
	if len(unit.Polygon) == 0 {
		return nil
	}

	distinct := make(map[Point]bool, len(unit.Polygon))
	for _, p := range unit.Polygon {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			warnf(cfg, "line %d: polygon has non-finite coordinates, dropping geometry\n", unit.LineIndex)
			return nil
		}
		distinct[p] = true
	}
	if len(distinct) < 3 {
		warnf(cfg, "line %d: polygon has %d distinct vertices, dropping geometry\n", unit.LineIndex, len(distinct))
		return nil
	}

	minX, minY := unit.Polygon[0].X, unit.Polygon[0].Y
	maxX, maxY := minX, minY
	for _, p := range unit.Polygon[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Normalized vertices are 0-1 page fractions; scale to pixels and round
	// to whole pixel positions.
	if unit.Normalized {
		minX = math.Round(minX * unit.PageWidth)
		minY = math.Round(minY * unit.PageHeight)
		maxX = math.Round(maxX * unit.PageWidth)
		maxY = math.Round(maxY * unit.PageHeight)
	}

	return &BoundingBox{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

func warnf(cfg Config, format string, args ...interface{}) {
	if !cfg.LogWarnings {
		return
	}
	out := cfg.Logger
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, "Warning: "+format, args...)
}
