package layout

// Geometry describes the page box shared by every document.
type Geometry struct {
	PageWidth       float64
	PageHeight      float64
	Margin          float64
	LineHeightRatio float64
}

// DefaultGeometry returns A4 portrait with a 20mm margin.
func DefaultGeometry() Geometry {
	return Geometry{
		PageWidth:       210,
		PageHeight:      297,
		Margin:          20,
		LineHeightRatio: 0.35,
	}
}

// ContentWidth is the printable width between the side margins.
func (g Geometry) ContentWidth() float64 {
	return g.PageWidth - 2*g.Margin
}

// Bottom is the lowest y a line may reach.
func (g Geometry) Bottom() float64 {
	return g.PageHeight - g.Margin
}

// LineHeight returns the vertical advance of one line at fontSize.
func (g Geometry) LineHeight(fontSize float64) float64 {
	return fontSize * g.LineHeightRatio
}
