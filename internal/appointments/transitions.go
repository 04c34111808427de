package appointments

import "slices"

// Transition names a lifecycle operation.
type Transition string

const (
	TransitionValidate               Transition = "validate"
	TransitionCancel                 Transition = "cancel"
	TransitionReschedule             Transition = "reschedule"
	TransitionRecordSynthesis        Transition = "record_synthesis"
	TransitionGenerateProgram        Transition = "generate_program_and_dossier"
	TransitionPlanImpact             Transition = "plan_impact"
	TransitionRecordImpactEvaluation Transition = "record_impact_evaluation"
	TransitionCloseImpact            Transition = "close_impact"
	TransitionGenerateImpactReport   Transition = "generate_impact_report"
)

type rule struct {
	kind Kind
	from []Status
	// to is empty for transitions that leave the status unchanged.
	to Status
}

// transitionTable is the only place legal transitions are declared.
var transitionTable = map[Transition]rule{
	TransitionValidate:               {kind: KindStandard, from: []Status{StatusNew, StatusScheduled}, to: StatusScheduled},
	TransitionCancel:                 {kind: KindStandard, from: []Status{StatusNew, StatusScheduled}, to: StatusCancelled},
	TransitionReschedule:             {kind: KindStandard, from: []Status{StatusScheduled}, to: StatusScheduled},
	TransitionRecordSynthesis:        {kind: KindStandard, from: []Status{StatusScheduled, StatusConducted}, to: StatusConducted},
	TransitionGenerateProgram:        {kind: KindStandard, from: []Status{StatusConducted}, to: StatusProgramGenerated},
	TransitionPlanImpact:             {kind: KindStandard, from: []Status{StatusProgramGenerated}},
	TransitionRecordImpactEvaluation: {kind: KindImpact, from: []Status{StatusImpactScheduled}, to: StatusImpactEvaluated},
	TransitionCloseImpact:            {kind: KindImpact, from: []Status{StatusImpactEvaluated}, to: StatusImpactClosed},
	TransitionGenerateImpactReport:   {kind: KindImpact, from: []Status{StatusImpactEvaluated, StatusImpactClosed}},
}

// AllTransitions lists every declared transition.
func AllTransitions() []Transition {
	out := make([]Transition, 0, len(transitionTable))
	for t := range transitionTable {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

// Target checks that t is legal for a and returns the status a moves to. For
// transitions that do not change status the current status is returned.
func Target(a *Appointment, t Transition) (Status, error) {
	r, ok := transitionTable[t]
	if !ok || a.Kind != r.kind || !slices.Contains(r.from, a.Status) {
		return a.Status, &TransitionError{CurrentState: a.Status, AttemptedTransition: t}
	}
	if r.to == "" {
		return a.Status, nil
	}
	return r.to, nil
}

// Allowed reports whether t is legal for a.
func Allowed(a *Appointment, t Transition) bool {
	_, err := Target(a, t)
	return err == nil
}

// Available lists the transitions legal for a, sorted by name.
func Available(a *Appointment) []Transition {
	var out []Transition
	for _, t := range AllTransitions() {
		if Allowed(a, t) {
			out = append(out, t)
		}
	}
	return out
}

// IsEdge reports whether the lifecycle graph contains a step from one status
// to another. Self-loops are edges for transitions declared as such.
func IsEdge(from, to Status) bool {
	for _, r := range transitionTable {
		target := r.to
		if target == "" {
			target = from
		}
		if target == to && slices.Contains(r.from, from) {
			return true
		}
	}
	return false
}
