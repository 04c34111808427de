package layout

import "unicode/utf8"

// Measurer reports the rendered width of a string at a font size and face.
type Measurer interface {
	StringWidth(text string, fontSize float64, style Style) float64
}

// DefaultAdvance approximates the average Helvetica glyph width in mm per point.
const DefaultAdvance = 0.18

// FixedMeasurer gives every rune the same advance. It is deterministic and
// independent of any font files, which makes it the measurer of choice in tests.
// BoldAdvance, when set, replaces Advance for bold text.
type FixedMeasurer struct {
	Advance     float64
	BoldAdvance float64
}

func (m FixedMeasurer) StringWidth(text string, fontSize float64, style Style) float64 {
	advance := m.Advance
	if style == StyleBold && m.BoldAdvance > 0 {
		advance = m.BoldAdvance
	}
	if advance <= 0 {
		advance = DefaultAdvance
	}
	return float64(utf8.RuneCountInString(text)) * fontSize * advance
}
