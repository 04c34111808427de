package documents

const impactReportTitle = "RAPPORT D'ÉVALUATION À FROID"

// ImpactReport renders the post-training impact evaluation.
func (r *Renderer) ImpactReport(in ImpactReportInput) Output {
	b := r.engine.NewBuilder()
	writeTitle(b, impactReportTitle, lines(in.Organization.Name, reference(in.Reference)))

	writeSections(b, []section{
		{heading: "Stagiaire", body: traineeBlock(in.Trainee)},
		{heading: "Date de l'évaluation", body: in.EvaluatedAt},
		{heading: "Satisfaction", body: in.Satisfaction},
		{heading: "Compétences appliquées", body: in.CompetencesAppliquees},
		{heading: "Améliorations suggérées", body: in.Ameliorations},
		{heading: "Commentaires", body: in.Commentaires},
	}, false)

	return r.output(KindImpactReport, impactReportTitle, in.Reference, b)
}
