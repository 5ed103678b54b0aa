package domain

import "testing"

func TestApprovalState_Transitions(t *testing.T) {
	if !ApprovalPending.CanTransitionTo(ApprovalApproved) || !ApprovalPending.CanTransitionTo(ApprovalRejected) {
		t.Fatalf("pending must move to either terminal state")
	}
	for _, terminal := range []ApprovalState{ApprovalApproved, ApprovalRejected} {
		if !terminal.Terminal() {
			t.Fatalf("%s should be terminal", terminal)
		}
		if terminal.CanTransitionTo(ApprovalPending) {
			t.Fatalf("%s must not reopen", terminal)
		}
	}
}

func TestNewPendingApproval(t *testing.T) {
	if p := NewPendingApproval(9, nil); !p.Approve || p.Target() != ApprovalApproved {
		t.Fatalf("nil decision should approve, got %+v", p)
	}
	reject := false
	if p := NewPendingApproval(9, &reject); p.Approve || p.Target() != ApprovalRejected {
		t.Fatalf("expected reject, got %+v", p)
	}
}
