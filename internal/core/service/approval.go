package service

import (
	"context"

	"github.com/senabank/operator-console/internal/core/domain"
)

// ApprovalWorkflow shapes withdrawal sign-off requests. It holds no state:
// the ledger records the transition and its answer is forwarded as is.
type ApprovalWorkflow struct {
	workspace *Workspace
}

// NewApprovalWorkflow returns a workflow submitting through workspace,
// which must offer approve-withdrawal.
func NewApprovalWorkflow(workspace *Workspace) *ApprovalWorkflow {
	return &ApprovalWorkflow{workspace: workspace}
}

// Submit asks the ledger to approve or reject a pending withdrawal.
// A nil decision approves.
func (a *ApprovalWorkflow) Submit(ctx context.Context, session domain.Session, transactionID int64, decision *bool) domain.Result {
	return a.workspace.Submit(ctx, session, domain.CmdApproveWithdrawal, domain.NewPendingApproval(transactionID, decision))
}
