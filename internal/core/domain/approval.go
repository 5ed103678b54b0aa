package domain

// ApprovalState is the lifecycle state of a withdrawal awaiting manager sign-off.
type ApprovalState string

const (
	ApprovalPending  ApprovalState = "pending"
	ApprovalApproved ApprovalState = "approved"
	ApprovalRejected ApprovalState = "rejected"
)

// approvalTransitions defines the allowed state machine transitions.
// Approved and Rejected are terminal.
var approvalTransitions = map[ApprovalState][]ApprovalState{
	ApprovalPending: {ApprovalApproved, ApprovalRejected},
}

// CanTransitionTo reports whether a transition from s to next is valid.
func (s ApprovalState) CanTransitionTo(next ApprovalState) bool {
	for _, allowed := range approvalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no transition leaves s.
func (s ApprovalState) Terminal() bool {
	return len(approvalTransitions[s]) == 0
}

// PendingApproval is the request to move a pending withdrawal to a terminal state.
type PendingApproval struct {
	TransactionID int64 `json:"transactionId" validate:"gt=0"`
	Approve       bool  `json:"approve"`
}

// NewPendingApproval shapes an approval request. A nil decision means approve.
func NewPendingApproval(transactionID int64, decision *bool) PendingApproval {
	approve := true
	if decision != nil {
		approve = *decision
	}
	return PendingApproval{TransactionID: transactionID, Approve: approve}
}

// Target returns the terminal state the request asks for.
func (p PendingApproval) Target() ApprovalState {
	if p.Approve {
		return ApprovalApproved
	}
	return ApprovalRejected
}
