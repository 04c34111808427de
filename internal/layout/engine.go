package layout

import (
	"fmt"
	"slices"
	"sort"
)

// Style selects the font face of a text op.
type Style string

const (
	StyleRegular Style = ""
	StyleBold    Style = "B"
	StyleItalic  Style = "I"
)

// Align positions a line horizontally inside the content box.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Block is one labelled unit of text handed to the engine.
type Block struct {
	Heading      string
	HeadingSize  float64 // defaults to FontSize + 2
	HeadingStyle Style   // defaults to bold
	Body         string
	FontSize     float64
	Style        Style
	Indent       float64
	Align        Align
	SpaceAfter   float64
}

// State is the caller-owned pagination cursor. Page is zero-based; Cursor is
// the y of the next line slot on that page.
type State struct {
	Page   int
	Cursor float64
}

// OpKind distinguishes text fragments from rule lines.
type OpKind int

const (
	OpText OpKind = iota
	OpRule
)

// Op is one positioned render instruction. For text ops (X, Y) is the top-left
// corner of the line slot and Height the line height. For rules (X, Y) to
// (X2, Y2) is the segment.
type Op struct {
	Kind     OpKind
	Page     int
	X        float64
	Y        float64
	X2       float64
	Y2       float64
	Width    float64
	Height   float64
	Text     string
	FontSize float64
	Style    Style
}

// Engine places blocks onto pages of a fixed geometry.
type Engine struct {
	geometry Geometry
	measurer Measurer
	cache    *wrapCache
}

// NewEngine builds an engine. A cacheSize of zero disables wrap memoisation.
func NewEngine(geometry Geometry, measurer Measurer, cacheSize int) (*Engine, error) {
	if geometry.ContentWidth() <= 0 || geometry.Bottom() <= geometry.Margin {
		return nil, fmt.Errorf("layout: geometry leaves no printable area")
	}
	if geometry.LineHeightRatio <= 0 {
		return nil, fmt.Errorf("layout: line height ratio must be positive")
	}
	if measurer == nil {
		measurer = FixedMeasurer{}
	}
	cache, err := newWrapCache(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("layout: wrap cache: %w", err)
	}
	return &Engine{geometry: geometry, measurer: measurer, cache: cache}, nil
}

// Geometry returns the page box used by the engine.
func (e *Engine) Geometry() Geometry {
	return e.geometry
}

// Measurer returns the measurer used for wrapping.
func (e *Engine) Measurer() Measurer {
	return e.measurer
}

// Start returns the state at the top of the first page.
func (e *Engine) Start() State {
	return State{Page: 0, Cursor: e.geometry.Margin}
}

// Wrap splits text to width at fontSize in style using the engine's measurer.
// The result is owned by the caller.
func (e *Engine) Wrap(text string, width, fontSize float64, style Style) []string {
	key := wrapKey{text: text, width: width, fontSize: fontSize, style: style}
	if lines, ok := e.cache.get(key); ok {
		return slices.Clone(lines)
	}
	lines := wrapText(e.measurer, text, width, fontSize, style)
	e.cache.add(key, lines)
	return slices.Clone(lines)
}

// Place lays out one block starting at state and returns the advanced state
// with the ops it produced. It never mutates shared state.
func (e *Engine) Place(state State, block Block) (State, []Op) {
	g := e.geometry
	width := g.ContentWidth() - block.Indent

	headingSize := block.HeadingSize
	if headingSize <= 0 {
		headingSize = block.FontSize + 2
	}
	headingStyle := block.HeadingStyle
	if headingStyle == StyleRegular {
		headingStyle = StyleBold
	}

	var headingLines []string
	if block.Heading != "" {
		headingLines = e.Wrap(block.Heading, width, headingSize, headingStyle)
	}
	bodyLines := e.Wrap(block.Body, width, block.FontSize, block.Style)
	if len(headingLines) == 0 && len(bodyLines) == 0 {
		return state, nil
	}

	total := float64(len(headingLines))*g.LineHeight(headingSize) +
		float64(len(bodyLines))*g.LineHeight(block.FontSize)
	if state.Cursor+total > g.Bottom() && state.Cursor > g.Margin {
		state = State{Page: state.Page + 1, Cursor: g.Margin}
	}

	ops := make([]Op, 0, len(headingLines)+len(bodyLines))
	for _, line := range headingLines {
		var op Op
		state, op = e.line(state, line, block.Indent, block.Align, headingSize, headingStyle)
		ops = append(ops, op)
	}
	for _, line := range bodyLines {
		var op Op
		state, op = e.line(state, line, block.Indent, block.Align, block.FontSize, block.Style)
		ops = append(ops, op)
	}
	state.Cursor += block.SpaceAfter
	return state, ops
}

func (e *Engine) line(state State, text string, indent float64, align Align, fontSize float64, style Style) (State, Op) {
	g := e.geometry
	height := g.LineHeight(fontSize)
	if state.Cursor+height > g.Bottom() && state.Cursor > g.Margin {
		state = State{Page: state.Page + 1, Cursor: g.Margin}
	}
	width := e.measurer.StringWidth(text, fontSize, style)
	x := g.Margin + indent
	if align == AlignCenter {
		x = g.Margin + indent + (g.ContentWidth()-indent-width)/2
	}
	op := Op{
		Kind:     OpText,
		Page:     state.Page,
		X:        x,
		Y:        state.Cursor,
		Width:    width,
		Height:   height,
		Text:     text,
		FontSize: fontSize,
		Style:    style,
	}
	state.Cursor += height
	return state, op
}

// PagesTouched lists the distinct pages referenced by ops in ascending order.
func PagesTouched(ops []Op) []int {
	seen := make(map[int]struct{}, 2)
	pages := make([]int, 0, 2)
	for _, op := range ops {
		if _, ok := seen[op.Page]; ok {
			continue
		}
		seen[op.Page] = struct{}{}
		pages = append(pages, op.Page)
	}
	sort.Ints(pages)
	return pages
}
