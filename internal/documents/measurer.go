package documents

import (
	"sync"

	"github.com/phpdave11/gofpdf"

	"rendezvous/internal/layout"
)

// PDFMeasurer measures strings with the Helvetica core font metrics used at
// export time, so wrapped lines match what the PDF shows.
type PDFMeasurer struct {
	mu        sync.Mutex
	pdf       *gofpdf.Fpdf
	translate func(string) string
}

// NewPDFMeasurer builds a measurer backed by an off-screen gofpdf document.
func NewPDFMeasurer() *PDFMeasurer {
	pdf := gofpdf.New("P", "mm", "A4", "")
	return &PDFMeasurer{pdf: pdf, translate: pdf.UnicodeTranslatorFromDescriptor("")}
}

// StringWidth selects the same face the exporter uses for style.
func (m *PDFMeasurer) StringWidth(text string, fontSize float64, style layout.Style) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pdf.SetFont(fontFamily, string(style), fontSize)
	return m.pdf.GetStringWidth(m.translate(text))
}
