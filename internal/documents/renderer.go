package documents

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"rendezvous/internal/layout"
)

const (
	titleSize    = 16
	subtitleSize = 9
	bodySize     = 10
	sectionGap   = 3
)

// Options tunes the document-specific layout rules.
type Options struct {
	// SignatureOffset is the distance from the page bottom edge above which the
	// agreement signature block never starts.
	SignatureOffset float64
	// AttendanceRows is the maximum number of blank rows on the attendance sheet.
	AttendanceRows int
}

// DefaultOptions returns the regulatory defaults.
func DefaultOptions() Options {
	return Options{SignatureOffset: 60, AttendanceRows: 15}
}

// Renderer runs the document producers over a shared layout engine. It holds
// no per-document state and may be used from several goroutines.
type Renderer struct {
	engine *layout.Engine
	opts   Options
}

// NewRenderer builds a renderer. Zero option values fall back to DefaultOptions.
// A signature offset too small to hold the signature block above the bottom
// margin is raised to MinSignatureOffset.
func NewRenderer(engine *layout.Engine, opts Options) *Renderer {
	defaults := DefaultOptions()
	if opts.SignatureOffset <= 0 {
		opts.SignatureOffset = defaults.SignatureOffset
	}
	opts.SignatureOffset = max(opts.SignatureOffset, MinSignatureOffset(engine.Geometry()))
	if opts.AttendanceRows <= 0 {
		opts.AttendanceRows = defaults.AttendanceRows
	}
	return &Renderer{engine: engine, opts: opts}
}

// MinSignatureOffset is the smallest offset at which the whole agreement
// signature block fits between its floor and the bottom margin, with 1 mm to
// spare for rounding.
func MinSignatureOffset(g layout.Geometry) float64 {
	return g.Margin + signatureRows*g.LineHeight(bodySize) + 1
}

// Options returns the effective options.
func (r *Renderer) Options() Options {
	return r.opts
}

// section is one conditional block: it renders only when body is non-empty.
type section struct {
	heading string
	body    string
}

func writeTitle(b *layout.Builder, title, subtitle string) {
	b.Add(layout.Block{Body: title, FontSize: titleSize, Style: layout.StyleBold, Align: layout.AlignCenter, SpaceAfter: 2})
	b.Add(layout.Block{Body: subtitle, FontSize: subtitleSize, Align: layout.AlignCenter, SpaceAfter: 6})
}

// writeSections emits every section with a non-empty body, in order. When
// numbered is set, headings are prefixed with a running article number that
// counts emitted sections only.
func writeSections(b *layout.Builder, sections []section, numbered bool) {
	n := 0
	for _, s := range sections {
		if s.body == "" {
			continue
		}
		n++
		heading := s.heading
		if numbered {
			heading = fmt.Sprintf("Article %d : %s", n, s.heading)
		}
		b.Add(layout.Block{Heading: heading, Body: s.body, FontSize: bodySize, SpaceAfter: sectionGap})
	}
}

// lines joins the non-empty values with newlines.
func lines(values ...string) string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			kept = append(kept, v)
		}
	}
	return strings.Join(kept, "\n")
}

// labelled renders "label : value", or nothing when value is empty.
func labelled(label, value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return label + " : " + value
}

func upper(s string) string {
	return cases.Upper(language.French).String(s)
}

func reference(ref string) string {
	if ref == "" {
		return ""
	}
	return "Réf. " + ref
}

func organizationBlock(org Organization) string {
	return lines(
		org.Name,
		org.Address,
		org.City,
		labelled("SIRET", org.Siret),
		labelled("Déclaration d'activité n°", org.DeclarationNumber),
		labelled("Représenté par", org.Representative),
	)
}

func traineeBlock(t Trainee) string {
	return lines(t.DisplayName(), labelled("Courriel", t.Email), labelled("Téléphone", t.Phone))
}

func (r *Renderer) output(kind Kind, title, ref string, b *layout.Builder) Output {
	return Output{
		Kind:     kind,
		Title:    title,
		Filename: kind.Filename(ref),
		Document: b.Document(),
	}
}
