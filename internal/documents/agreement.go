package documents

import "rendezvous/internal/layout"

const (
	agreementTitle = "CONVENTION DE FORMATION PROFESSIONNELLE"
	// signatureRows covers the place line, a blank line and the two labels.
	signatureRows = 3
)

// Agreement renders the training agreement. The signature block is anchored
// to the bottom of the page: it starts no higher than PageHeight minus the
// signature offset, and moves whole to a fresh page when it does not fit.
func (r *Renderer) Agreement(in AgreementInput) Output {
	b := r.engine.NewBuilder()
	writeTitle(b, agreementTitle, lines(upper(in.Title), reference(in.Reference)))

	writeSections(b, []section{
		{heading: "Entre les soussignés", body: organizationBlock(in.Organization)},
		{heading: "Et le stagiaire", body: traineeBlock(in.Trainee)},
	}, false)

	writeSections(b, []section{
		{heading: "Objet", body: in.Objet},
		{heading: "Objectifs", body: in.Objectifs},
		{heading: "Contenu", body: in.Contenu},
		{heading: "Durée et dates", body: lines(in.Duree, in.Dates)},
		{heading: "Modalités", body: in.Modalites},
		{heading: "Tarif", body: in.Tarif},
		{heading: "Annulation", body: in.Annulation},
	}, true)

	r.signatureBlock(b, in)
	return r.output(KindAgreement, agreementTitle, in.Reference, b)
}

func (r *Renderer) signatureBlock(b *layout.Builder, in AgreementInput) {
	g := b.Geometry()
	lineHeight := g.LineHeight(bodySize)
	height := signatureRows * lineHeight
	floor := max(g.Margin, g.PageHeight-r.opts.SignatureOffset)

	b.FloorAt(floor)
	if !b.Fits(height) {
		b.NewPage()
		b.FloorAt(floor)
	}

	place := "Fait à " + in.Organization.City
	if in.Organization.City == "" {
		place = "Fait à ____________"
	}
	date := "le " + in.SignedAt
	if in.SignedAt == "" {
		date = "le ____________"
	}
	half := g.Margin + g.ContentWidth()/2

	b.Row([]layout.Cell{{X: g.Margin, Text: place + ", " + date}}, bodySize, layout.StyleRegular)
	b.Advance(lineHeight)
	b.Row([]layout.Cell{
		{X: g.Margin, Text: "Le stagiaire"},
		{X: half, Text: "Pour l'organisme de formation"},
	}, bodySize, layout.StyleBold)
}
