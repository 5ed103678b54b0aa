package service

import (
	"context"
	"fmt"

	"github.com/senabank/operator-console/internal/core/domain"
)

const (
	WorkspaceClerk   = "clerk"
	WorkspaceManager = "manager"
)

type binding struct {
	kind domain.CommandKind
	role domain.Role
}

// clerkBindings is the clerk dashboard, in display order.
var clerkBindings = []binding{
	{domain.CmdAllAccounts, domain.RoleClerk},
	{domain.CmdAccountByID, domain.RoleClerk},
	{domain.CmdWithTransactions, domain.RoleClerk},
	{domain.CmdSummary, domain.RoleClerk},
	{domain.CmdSummaryByAccount, domain.RoleClerk},
	{domain.CmdDeposit, domain.RoleClerk},
	{domain.CmdWithdraw, domain.RoleClerk},
	{domain.CmdTransfer, domain.RoleClerk},
}

// managerBindings are offered on top of the clerk set.
var managerBindings = []binding{
	{domain.CmdCreateClerk, domain.RoleManager},
	{domain.CmdAddAccount, domain.RoleManager},
	{domain.CmdDeleteAccount, domain.RoleManager},
	{domain.CmdAllTransactions, domain.RoleManager},
	{domain.CmdTransactionByID, domain.RoleManager},
	{domain.CmdTransactionCount, domain.RoleManager},
	{domain.CmdApproveWithdrawal, domain.RoleManager},
}

// Workspace is the fixed set of commands a logged-in operator may issue.
type Workspace struct {
	name       string
	order      []domain.CommandKind
	bindings   map[domain.CommandKind]domain.Role
	dispatcher *Dispatcher
}

func newWorkspace(name string, dispatcher *Dispatcher, sets ...[]binding) *Workspace {
	ws := &Workspace{
		name:       name,
		bindings:   make(map[domain.CommandKind]domain.Role),
		dispatcher: dispatcher,
	}
	for _, set := range sets {
		for _, b := range set {
			if _, dup := ws.bindings[b.kind]; dup {
				continue
			}
			ws.bindings[b.kind] = b.role
			ws.order = append(ws.order, b.kind)
		}
	}
	return ws
}

// NewClerkWorkspace returns the clerk workspace.
func NewClerkWorkspace(dispatcher *Dispatcher) *Workspace {
	return newWorkspace(WorkspaceClerk, dispatcher, clerkBindings)
}

// NewManagerWorkspace returns the manager workspace: every clerk command plus
// provisioning, transaction review and withdrawal approval.
func NewManagerWorkspace(dispatcher *Dispatcher) *Workspace {
	return newWorkspace(WorkspaceManager, dispatcher, clerkBindings, managerBindings)
}

// Name returns the workspace name.
func (w *Workspace) Name() string { return w.name }

// Commands lists the offered commands in display order.
func (w *Workspace) Commands() []domain.CommandKind {
	out := make([]domain.CommandKind, len(w.order))
	copy(out, w.order)
	return out
}

// Offers reports whether kind is part of this workspace.
func (w *Workspace) Offers(kind domain.CommandKind) bool {
	_, ok := w.bindings[kind]
	return ok
}

// Describe builds the descriptor for kind, bound to the role this workspace requires.
func (w *Workspace) Describe(kind domain.CommandKind, args any) (domain.CommandDescriptor, bool) {
	role, ok := w.bindings[kind]
	if !ok {
		return domain.CommandDescriptor{}, false
	}
	return domain.CommandDescriptor{Kind: kind, Args: args, RequiredRole: role}, true
}

// Submit dispatches kind for session. Commands outside the workspace are
// refused as unauthorized without reaching the dispatcher.
func (w *Workspace) Submit(ctx context.Context, session domain.Session, kind domain.CommandKind, args any) domain.Result {
	desc, ok := w.Describe(kind, args)
	if !ok {
		return domain.Failure(kind, domain.FailureUnauthorized,
			fmt.Errorf("%s is not offered in the %s workspace", kind, w.name))
	}
	return w.dispatcher.Dispatch(ctx, desc, session)
}

// Workspaces holds the two workspaces an operator can be routed to.
type Workspaces struct {
	Clerk   *Workspace
	Manager *Workspace
}

// NewWorkspaces builds both workspaces over one dispatcher.
func NewWorkspaces(dispatcher *Dispatcher) Workspaces {
	return Workspaces{
		Clerk:   NewClerkWorkspace(dispatcher),
		Manager: NewManagerWorkspace(dispatcher),
	}
}

// Route picks the workspace for session: manager first, then clerk.
// A session with neither role is not a valid operator identity.
func (ws Workspaces) Route(session domain.Session) (*Workspace, error) {
	switch {
	case session.HasRole(domain.RoleManager):
		return ws.Manager, nil
	case session.HasRole(domain.RoleClerk):
		return ws.Clerk, nil
	default:
		return nil, domain.ErrUnauthorized
	}
}

// ByName returns the workspace with the given name.
func (ws Workspaces) ByName(name string) (*Workspace, bool) {
	switch name {
	case WorkspaceClerk:
		return ws.Clerk, true
	case WorkspaceManager:
		return ws.Manager, true
	default:
		return nil, false
	}
}
