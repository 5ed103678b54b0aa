package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/senabank/operator-console/internal/core/domain"
	"github.com/senabank/operator-console/internal/core/ports"
	"github.com/senabank/operator-console/internal/core/rules"
)

// ---------------------------------------------------------------------------
// Stub ledger: records every call and echoes its arguments back as payload.
// ---------------------------------------------------------------------------

type ledgerCall struct {
	op    string
	args  any
	token string
}

type stubLedger struct {
	calls    []ledgerCall
	err      error
	payload  json.RawMessage // overrides the echo when set
	loginFn  func(username, password string) (*ports.LoginResponse, error)
	loginArg []string
}

func (l *stubLedger) record(ctx context.Context, op string, args any) (json.RawMessage, error) {
	l.calls = append(l.calls, ledgerCall{op: op, args: args, token: ports.BearerToken(ctx)})
	if l.err != nil {
		return nil, l.err
	}
	if l.payload != nil {
		return l.payload, nil
	}
	if args == nil {
		return json.RawMessage(`[]`), nil
	}
	return json.Marshal(args)
}

func (l *stubLedger) Login(_ context.Context, username, password string) (*ports.LoginResponse, error) {
	l.loginArg = []string{username, password}
	if l.loginFn != nil {
		return l.loginFn(username, password)
	}
	return nil, l.err
}

func (l *stubLedger) AllAccounts(ctx context.Context) (json.RawMessage, error) {
	return l.record(ctx, "AllAccounts", nil)
}
func (l *stubLedger) AccountByID(ctx context.Context, a rules.AccountRef) (json.RawMessage, error) {
	return l.record(ctx, "AccountByID", a)
}
func (l *stubLedger) AccountWithTransactions(ctx context.Context, a rules.AccountRef) (json.RawMessage, error) {
	return l.record(ctx, "AccountWithTransactions", a)
}
func (l *stubLedger) AccountSummary(ctx context.Context) (json.RawMessage, error) {
	return l.record(ctx, "AccountSummary", nil)
}
func (l *stubLedger) AccountSummaryByAccount(ctx context.Context, a rules.AccountRef) (json.RawMessage, error) {
	return l.record(ctx, "AccountSummaryByAccount", a)
}
func (l *stubLedger) Deposit(ctx context.Context, a rules.Movement) (json.RawMessage, error) {
	return l.record(ctx, "Deposit", a)
}
func (l *stubLedger) Withdraw(ctx context.Context, a rules.Movement) (json.RawMessage, error) {
	return l.record(ctx, "Withdraw", a)
}
func (l *stubLedger) Transfer(ctx context.Context, a rules.Transfer) (json.RawMessage, error) {
	return l.record(ctx, "Transfer", a)
}
func (l *stubLedger) CreateClerk(ctx context.Context, a rules.NewClerk) (json.RawMessage, error) {
	return l.record(ctx, "CreateClerk", a)
}
func (l *stubLedger) AddAccount(ctx context.Context, a rules.NewAccount) (json.RawMessage, error) {
	return l.record(ctx, "AddAccount", a)
}
func (l *stubLedger) DeleteAccount(ctx context.Context, a rules.AccountRef) (json.RawMessage, error) {
	return l.record(ctx, "DeleteAccount", a)
}
func (l *stubLedger) AllTransactions(ctx context.Context) (json.RawMessage, error) {
	return l.record(ctx, "AllTransactions", nil)
}
func (l *stubLedger) TransactionByID(ctx context.Context, a rules.TransactionRef) (json.RawMessage, error) {
	return l.record(ctx, "TransactionByID", a)
}
func (l *stubLedger) TransactionCount(ctx context.Context, a rules.AccountRef) (json.RawMessage, error) {
	return l.record(ctx, "TransactionCount", a)
}
func (l *stubLedger) ApproveWithdrawal(ctx context.Context, a domain.PendingApproval) (json.RawMessage, error) {
	return l.record(ctx, "ApproveWithdrawal", a)
}

// ---------------------------------------------------------------------------
// Stub session store.
// ---------------------------------------------------------------------------

type stubStore struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
	saveErr  error
}

func newStubStore() *stubStore {
	return &stubStore{sessions: make(map[string]domain.Session)}
}

func (s *stubStore) Save(_ context.Context, session domain.Session, _ time.Duration) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *stubStore) Get(_ context.Context, id string) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *stubStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *stubStore) Ping(context.Context) error { return nil }

// ---------------------------------------------------------------------------
// Stub observer.
// ---------------------------------------------------------------------------

type stubObserver struct {
	dispatches []domain.FailureKind
	logins     []domain.FailureKind
}

func (o *stubObserver) ObserveDispatch(_ domain.CommandKind, f domain.FailureKind, _ time.Duration) {
	o.dispatches = append(o.dispatches, f)
}

func (o *stubObserver) ObserveLogin(f domain.FailureKind) {
	o.logins = append(o.logins, f)
}

func clerkSession() domain.Session   { return domain.Establish("clerk-token", []domain.Role{domain.RoleClerk}) }
func managerSession() domain.Session { return domain.Establish("mgr-token", []domain.Role{domain.RoleManager}) }
