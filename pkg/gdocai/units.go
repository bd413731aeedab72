package gdocai

import (
	"cloud.google.com/go/documentai/apiv1/documentaipb"

	"github.com/gardar/pidlines/pkg/pidscan"
)

// UnitsFromProto converts a Document AI response into the ordered text unit
// sequence the extraction engine consumes. Each recognized line becomes one
// unit; line indexes are 1-based and increase monotonically across pages in
// reading order. Geometry is taken from the line layout's bounding polygon,
// preferring normalized vertices (0-1 page fractions, scaled downstream by
// the attached page dimensions) and falling back to absolute vertices.
// Lines without usable geometry still produce units; their polygon is empty.
func UnitsFromProto(doc *documentaipb.Document) []pidscan.TextUnit {
	if doc == nil {
		return nil
	}

	var units []pidscan.TextUnit
	lineIndex := 0

	for _, page := range doc.Pages {
		var pageWidth, pageHeight float64
		if page.Dimension != nil {
			pageWidth = float64(page.Dimension.Width)
			pageHeight = float64(page.Dimension.Height)
		}

		for _, line := range page.Lines {
			lineIndex++
			unit := pidscan.TextUnit{
				Text:       textFromLayout(line.Layout, doc.Text),
				LineIndex:  lineIndex,
				PageWidth:  pageWidth,
				PageHeight: pageHeight,
			}
			unit.Polygon, unit.Normalized = polygonFromLayout(line.Layout)
			units = append(units, unit)
		}
	}

	return units
}

// polygonFromLayout extracts the bounding polygon from a layout, reporting
// whether the vertices are normalized page fractions
func polygonFromLayout(layout *documentaipb.Document_Page_Layout) ([]pidscan.Point, bool) {
	if layout == nil || layout.BoundingPoly == nil {
		return nil, false
	}

	if normalized := layout.BoundingPoly.NormalizedVertices; len(normalized) > 0 {
		points := make([]pidscan.Point, 0, len(normalized))
		for _, v := range normalized {
			points = append(points, pidscan.Point{X: float64(v.X), Y: float64(v.Y)})
		}
		return points, true
	}

	if vertices := layout.BoundingPoly.Vertices; len(vertices) > 0 {
		points := make([]pidscan.Point, 0, len(vertices))
		for _, v := range vertices {
			points = append(points, pidscan.Point{X: float64(v.X), Y: float64(v.Y)})
		}
		return points, false
	}

	return nil, false
}
