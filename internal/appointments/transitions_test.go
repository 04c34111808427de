package appointments

import (
	"errors"
	"testing"

	"rendezvous/internal/services"
)

func TestTargetFollowsTransitionTable(t *testing.T) {
	tests := []struct {
		kind       Kind
		status     Status
		transition Transition
		want       Status
		ok         bool
	}{
		{KindStandard, StatusNew, TransitionValidate, StatusScheduled, true},
		{KindStandard, StatusScheduled, TransitionValidate, StatusScheduled, true},
		{KindStandard, StatusConducted, TransitionValidate, "", false},
		{KindStandard, StatusNew, TransitionCancel, StatusCancelled, true},
		{KindStandard, StatusScheduled, TransitionCancel, StatusCancelled, true},
		{KindStandard, StatusConducted, TransitionCancel, "", false},
		{KindStandard, StatusScheduled, TransitionReschedule, StatusScheduled, true},
		{KindStandard, StatusCancelled, TransitionReschedule, "", false},
		{KindStandard, StatusConducted, TransitionReschedule, "", false},
		{KindStandard, StatusNew, TransitionRecordSynthesis, "", false},
		{KindStandard, StatusScheduled, TransitionRecordSynthesis, StatusConducted, true},
		{KindStandard, StatusConducted, TransitionRecordSynthesis, StatusConducted, true},
		{KindStandard, StatusProgramGenerated, TransitionRecordSynthesis, "", false},
		{KindStandard, StatusConducted, TransitionGenerateProgram, StatusProgramGenerated, true},
		{KindStandard, StatusProgramGenerated, TransitionPlanImpact, StatusProgramGenerated, true},
		{KindStandard, StatusConducted, TransitionPlanImpact, "", false},
		{KindImpact, StatusImpactScheduled, TransitionRecordImpactEvaluation, StatusImpactEvaluated, true},
		{KindImpact, StatusImpactEvaluated, TransitionCloseImpact, StatusImpactClosed, true},
		{KindImpact, StatusImpactScheduled, TransitionCloseImpact, "", false},
		{KindImpact, StatusImpactEvaluated, TransitionGenerateImpactReport, StatusImpactEvaluated, true},
		{KindImpact, StatusImpactClosed, TransitionGenerateImpactReport, StatusImpactClosed, true},
		{KindImpact, StatusImpactScheduled, TransitionGenerateImpactReport, "", false},
		{KindImpact, StatusImpactScheduled, TransitionCancel, "", false},
		{KindStandard, StatusImpactScheduled, TransitionRecordImpactEvaluation, "", false},
	}

	for _, tc := range tests {
		a := &Appointment{Kind: tc.kind, Status: tc.status}
		got, err := Target(a, tc.transition)
		if tc.ok {
			if err != nil {
				t.Fatalf("%s from %s: unexpected error %v", tc.transition, tc.status, err)
			}
			if got != tc.want {
				t.Fatalf("%s from %s: got %s want %s", tc.transition, tc.status, got, tc.want)
			}
			continue
		}
		te, ok := AsTransitionError(err)
		if !ok {
			t.Fatalf("%s from %s: expected TransitionError, got %v", tc.transition, tc.status, err)
		}
		if te.CurrentState != tc.status || te.AttemptedTransition != tc.transition {
			t.Fatalf("unexpected transition error fields: %+v", te)
		}
		if !errors.Is(err, services.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition marker, got %v", err)
		}
	}
}

func TestAvailableFromNew(t *testing.T) {
	a := &Appointment{Kind: KindStandard, Status: StatusNew}
	got := Available(a)
	want := []Transition{TransitionCancel, TransitionValidate}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("unexpected available transitions %v", got)
	}
}

func TestIsEdge(t *testing.T) {
	if !IsEdge(StatusNew, StatusScheduled) {
		t.Fatal("expected new -> scheduled")
	}
	if !IsEdge(StatusProgramGenerated, StatusProgramGenerated) {
		t.Fatal("expected plan_impact self-loop")
	}
	if IsEdge(StatusCancelled, StatusScheduled) {
		t.Fatal("cancelled is terminal")
	}
	if IsEdge(StatusNew, StatusConducted) {
		t.Fatal("new cannot skip to conducted")
	}
}

func TestParseChannelAliases(t *testing.T) {
	tests := map[string]Channel{
		"remote video": ChannelVisio,
		"Remote  Video": ChannelVisio,
		"visio":        ChannelVisio,
		"phone":        ChannelTelephone,
		"téléphone":    ChannelTelephone,
		"in person":    ChannelPresentiel,
		"presentiel":   ChannelPresentiel,
	}
	for input, want := range tests {
		got, err := ParseChannel(input)
		if err != nil || got != want {
			t.Fatalf("ParseChannel(%q) = %q, %v; want %q", input, got, err, want)
		}
	}
	if _, err := ParseChannel("pigeon"); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParseStatus(t *testing.T) {
	if s, ok := ParseStatus(" Program_Generated "); !ok || s != StatusProgramGenerated {
		t.Fatalf("unexpected parse: %q %v", s, ok)
	}
	if _, ok := ParseStatus("done"); ok {
		t.Fatal("expected unknown status to fail")
	}
}
