package documents

import (
	"bytes"
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"

	"rendezvous/internal/layout"
)

// Kind names a document type. It doubles as the filename prefix.
type Kind string

const (
	KindAgreement       Kind = "convention"
	KindDetailedProgram Kind = "programme"
	KindAttendance      Kind = "emargement"
	KindProgram         Kind = "formation"
	KindDossier         Kind = "dossier"
	KindImpactReport    Kind = "rapport-impact"
)

// Filename returns the suggested file name for a document of this kind.
func (k Kind) Filename(reference string) string {
	return fmt.Sprintf("%s-%s.pdf", k, reference)
}

const fontFamily = "Helvetica"

// Output is one rendered document.
type Output struct {
	Kind     Kind
	Title    string
	Filename string
	Document layout.Document
	// Truncated is set when the attendance sheet stopped before drawing every
	// configured row because the page was full.
	Truncated bool
}

// PDF exports the document as PDF bytes.
func (o Output) PDF() ([]byte, error) {
	var buf bytes.Buffer
	if err := o.WritePDF(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePDF streams the document as PDF to w.
func (o Output) WritePDF(w io.Writer) error {
	g := o.Document.Geometry
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: g.PageWidth, Ht: g.PageHeight},
	})
	pdf.SetMargins(g.Margin, g.Margin, g.Margin)
	pdf.SetAutoPageBreak(false, g.Margin)
	pdf.SetTitle(o.Title, true)
	pdf.SetCreator("rendezvous", true)
	pdf.SetLineWidth(0.2)
	translate := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range o.Document.Pages {
		pdf.AddPage()
		for _, op := range page.Ops {
			switch op.Kind {
			case layout.OpText:
				pdf.SetFont(fontFamily, string(op.Style), op.FontSize)
				pdf.SetXY(op.X, op.Y)
				pdf.CellFormat(op.Width, op.Height, translate(op.Text), "", 0, "L", false, 0, "")
			case layout.OpRule:
				pdf.Line(op.X, op.Y, op.X2, op.Y2)
			}
		}
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write %s pdf: %w", o.Kind, err)
	}
	return nil
}
