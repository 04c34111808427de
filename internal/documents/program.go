package documents

const (
	detailedProgramTitle = "PROGRAMME DE FORMATION"
	programTitle         = "PROGRAMME DE FORMATION PERSONNALISÉ"
	dossierTitle         = "DOSSIER DE FORMATION"
)

// DetailedProgram renders the detailed program issued with the agreement.
func (r *Renderer) DetailedProgram(in DetailedProgramInput) Output {
	b := r.engine.NewBuilder()
	writeTitle(b, detailedProgramTitle, lines(upper(in.Title), in.Organization.Name, reference(in.Reference)))

	writeSections(b, []section{
		{heading: "Public visé", body: in.PublicVise},
		{heading: "Prérequis", body: in.Prerequis},
		{heading: "Objectifs", body: in.ObjectifsSpecifiques},
		{heading: "Contenu", body: in.Contenu},
		{heading: "Durée", body: in.Duree},
		{heading: "Modalités pédagogiques", body: in.ModalitesPedagogiques},
		{heading: "Moyens", body: in.Moyens},
		{heading: "Évaluation", body: in.EvaluationPrevue},
		{heading: "Accessibilité", body: in.Accessibilite},
		{heading: "Formateur", body: in.Formateur},
	}, false)

	return r.output(KindDetailedProgram, detailedProgramTitle, in.Reference, b)
}

// Program renders the personalised training program built from a conducted
// positioning appointment.
func (r *Renderer) Program(in ProgramInput) Output {
	b := r.engine.NewBuilder()
	writeTitle(b, programTitle, lines(upper(in.Title), reference(in.Reference)))

	writeSections(b, []section{
		{heading: "Stagiaire", body: traineeBlock(in.Trainee)},
		{heading: "Situation actuelle", body: in.Situation},
		{heading: "Objectifs", body: in.Objectives},
		{heading: "Niveau actuel", body: in.CurrentLevel},
		{heading: "Synthèse du positionnement", body: in.Synthesis},
		{heading: "Modalité", body: in.Channel},
	}, false)

	return r.output(KindProgram, programTitle, in.Reference, b)
}

// Dossier renders the regulatory training dossier.
func (r *Renderer) Dossier(in DossierInput) Output {
	b := r.engine.NewBuilder()
	writeTitle(b, dossierTitle, lines(upper(in.Title), reference(in.Reference)))

	writeSections(b, []section{
		{heading: "Organisme de formation", body: organizationBlock(in.Organization)},
		{heading: "Stagiaire", body: traineeBlock(in.Trainee)},
		{heading: "Situation professionnelle", body: in.Situation},
		{heading: "Objectifs exprimés", body: in.Objectives},
		{heading: "Niveau de départ", body: in.CurrentLevel},
		{heading: "Analyse du besoin", body: in.Synthesis},
		{heading: "Entretien de positionnement", body: lines(in.PositioningDate, in.Channel)},
	}, false)

	return r.output(KindDossier, dossierTitle, in.Reference, b)
}
