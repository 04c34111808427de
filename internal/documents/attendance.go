package documents

import "rendezvous/internal/layout"

const (
	attendanceTitle     = "FEUILLE D'ÉMARGEMENT"
	attendanceRowHeight = 10
)

// attendanceColumns carry relative widths; the table always spans the content
// width of the configured page (30/30/60/50 mm on A4 with 20 mm margins).
var attendanceColumns = []struct {
	label  string
	weight float64
}{
	{"Date", 3},
	{"Horaires", 3},
	{"Contenu", 6},
	{"Signature stagiaire", 5},
}

// columnEdges returns the x of every vertical rule, left edge first.
func columnEdges(g layout.Geometry) []float64 {
	var total float64
	for _, col := range attendanceColumns {
		total += col.weight
	}
	edges := make([]float64, 0, len(attendanceColumns)+1)
	x := g.Margin
	edges = append(edges, x)
	for _, col := range attendanceColumns {
		x += g.ContentWidth() * col.weight / total
		edges = append(edges, x)
	}
	// Pin the last edge to the margin so rounding never over- or undershoots.
	edges[len(edges)-1] = g.Margin + g.ContentWidth()
	return edges
}

// AttendanceSheet renders the header block, the ruled column header and up to
// Options.AttendanceRows blank rows. Rows stop early when the next rule would
// cross the bottom margin; no continuation page is produced and Truncated
// reports the shortfall.
func (r *Renderer) AttendanceSheet(in AttendanceInput) Output {
	b := r.engine.NewBuilder()
	g := b.Geometry()
	writeTitle(b, attendanceTitle, reference(in.Reference))

	b.Add(layout.Block{
		Body: lines(
			labelled("Formation", in.Title),
			labelled("Stagiaire", in.Trainee.DisplayName()),
			labelled("Dates", in.Dates),
			labelled("Lieu", in.Lieu),
			labelled("Formateur", in.Formateur),
			labelled("Organisme", in.Organization.Name),
		),
		FontSize:   bodySize,
		SpaceAfter: 6,
	})

	edges := columnEdges(g)
	left, right := edges[0], edges[len(edges)-1]

	headerHeight := g.LineHeight(bodySize) + 2
	b.EnsureSpace(headerHeight)
	top := b.State().Cursor
	b.Rule(left, right)
	b.Advance(1)
	cells := make([]layout.Cell, 0, len(attendanceColumns))
	for i, col := range attendanceColumns {
		cells = append(cells, layout.Cell{X: edges[i] + 1, Text: col.label})
	}
	b.Row(cells, bodySize, layout.StyleBold)
	b.Advance(1)
	b.Rule(left, right)

	drawn := 0
	for drawn < r.opts.AttendanceRows {
		if !b.Fits(attendanceRowHeight) {
			break
		}
		b.Advance(attendanceRowHeight)
		b.Rule(left, right)
		drawn++
	}

	bottom := b.State().Cursor
	for _, x := range edges {
		b.Segment(x, top, x, bottom)
	}

	out := r.output(KindAttendance, attendanceTitle, in.Reference, b)
	out.Truncated = drawn < r.opts.AttendanceRows
	return out
}
