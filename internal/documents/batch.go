package documents

// GenerateAllDocuments renders the agreement, the detailed program and the
// attendance sheet for one appointment, in that order, stamping ref on each.
func (r *Renderer) GenerateAllDocuments(ref string, bundle Bundle) []Output {
	bundle.Agreement.Reference = ref
	bundle.DetailedProgram.Reference = ref
	bundle.Attendance.Reference = ref

	return []Output{
		r.Agreement(bundle.Agreement),
		r.DetailedProgram(bundle.DetailedProgram),
		r.AttendanceSheet(bundle.Attendance),
	}
}
