package layout

// Page is the ordered list of ops drawn on one sheet.
type Page struct {
	Ops []Op
}

// Document is a fully paginated rendering ready for export.
type Document struct {
	Geometry Geometry
	Pages    []Page
}

// Text returns every text fragment in page order, one per entry.
func (d Document) Text() []string {
	var out []string
	for _, page := range d.Pages {
		for _, op := range page.Ops {
			if op.Kind == OpText {
				out = append(out, op.Text)
			}
		}
	}
	return out
}

// Cell is one positioned fragment of a Row.
type Cell struct {
	X    float64
	Text string
}

// Builder accumulates ops produced by an Engine. It is not safe for concurrent use.
type Builder struct {
	engine *Engine
	state  State
	pages  []Page
}

// NewBuilder starts a document at the top of the first page.
func (e *Engine) NewBuilder() *Builder {
	return &Builder{engine: e, state: e.Start(), pages: make([]Page, 1)}
}

// State returns the current cursor.
func (b *Builder) State() State {
	return b.state
}

// Geometry returns the page box of the underlying engine.
func (b *Builder) Geometry() Geometry {
	return b.engine.geometry
}

// Add places a block and records its ops.
func (b *Builder) Add(block Block) {
	next, ops := b.engine.Place(b.state, block)
	b.state = next
	b.ensurePage(next.Page)
	b.record(ops...)
}

// Row draws single-line cells at the current cursor, breaking to a new page
// first if the row does not fit.
func (b *Builder) Row(cells []Cell, fontSize float64, style Style) {
	height := b.engine.geometry.LineHeight(fontSize)
	b.EnsureSpace(height)
	for _, cell := range cells {
		if cell.Text == "" {
			continue
		}
		b.record(Op{
			Kind:     OpText,
			Page:     b.state.Page,
			X:        cell.X,
			Y:        b.state.Cursor,
			Width:    b.engine.measurer.StringWidth(cell.Text, fontSize, style),
			Height:   height,
			Text:     cell.Text,
			FontSize: fontSize,
			Style:    style,
		})
	}
	b.state.Cursor += height
}

// Rule draws a horizontal line at the cursor between x1 and x2.
func (b *Builder) Rule(x1, x2 float64) {
	b.Segment(x1, b.state.Cursor, x2, b.state.Cursor)
}

// Segment draws an arbitrary line on the current page.
func (b *Builder) Segment(x1, y1, x2, y2 float64) {
	b.record(Op{Kind: OpRule, Page: b.state.Page, X: x1, Y: y1, X2: x2, Y2: y2})
}

// Advance moves the cursor down by dy without drawing.
func (b *Builder) Advance(dy float64) {
	b.state.Cursor += dy
}

// Fits reports whether height more millimetres fit above the bottom margin.
func (b *Builder) Fits(height float64) bool {
	return b.state.Cursor+height <= b.engine.geometry.Bottom()
}

// EnsureSpace starts a new page when height does not fit and the cursor is
// below the top margin. It reports whether a page break happened.
func (b *Builder) EnsureSpace(height float64) bool {
	if b.Fits(height) || b.state.Cursor <= b.engine.geometry.Margin {
		return false
	}
	b.NewPage()
	return true
}

// FloorAt moves the cursor down to y if it is above it.
func (b *Builder) FloorAt(y float64) {
	if b.state.Cursor < y {
		b.state.Cursor = y
	}
}

// NewPage moves the cursor to the top margin of a fresh page.
func (b *Builder) NewPage() {
	b.state = State{Page: b.state.Page + 1, Cursor: b.engine.geometry.Margin}
	b.ensurePage(b.state.Page)
}

// Document returns a snapshot of the accumulated pages.
func (b *Builder) Document() Document {
	pages := make([]Page, len(b.pages))
	for i, page := range b.pages {
		pages[i] = Page{Ops: append([]Op(nil), page.Ops...)}
	}
	return Document{Geometry: b.engine.geometry, Pages: pages}
}

func (b *Builder) ensurePage(index int) {
	for len(b.pages) <= index {
		b.pages = append(b.pages, Page{})
	}
}

func (b *Builder) record(ops ...Op) {
	for _, op := range ops {
		b.ensurePage(op.Page)
		b.pages[op.Page].Ops = append(b.pages[op.Page].Ops, op)
	}
}
