package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/senabank/operator-console/internal/core/domain"
	"github.com/senabank/operator-console/internal/core/ports"
	"github.com/senabank/operator-console/internal/core/rules"
)

// Dispatcher is the single gate every command passes through: role check,
// argument rules, then exactly one ledger call.
type Dispatcher struct {
	ledger   ports.Ledger
	observer ports.DispatchObserver
	log      zerolog.Logger
}

// NewDispatcher returns a Dispatcher backed by ledger. observer may be nil.
func NewDispatcher(ledger ports.Ledger, observer ports.DispatchObserver, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{ledger: ledger, observer: observer, log: log}
}

// Dispatch runs one command for session and returns its result.
// No ledger call is made when the role gate or the argument rules fail.
func (d *Dispatcher) Dispatch(ctx context.Context, desc domain.CommandDescriptor, session domain.Session) domain.Result {
	start := time.Now()
	res := d.dispatch(ctx, desc, session)

	if d.observer != nil {
		d.observer.ObserveDispatch(desc.Kind, res.Failure, time.Since(start))
	}

	if res.OK() {
		d.log.Debug().
			Str("kind", string(desc.Kind)).
			Str("session", session.ID).
			Dur("elapsed", time.Since(start)).
			Msg("command dispatched")
	} else {
		d.log.Warn().
			Err(res.Cause).
			Str("kind", string(desc.Kind)).
			Str("session", session.ID).
			Str("failure", res.Failure.String()).
			Msg("command failed")
	}
	return res
}

func (d *Dispatcher) dispatch(ctx context.Context, desc domain.CommandDescriptor, session domain.Session) domain.Result {
	// 1. Role gate.
	if desc.RequiredRole == "" || !session.HasRole(desc.RequiredRole) {
		return domain.Failure(desc.Kind, domain.FailureUnauthorized,
			fmt.Errorf("%s requires %s", desc.Kind, desc.RequiredRole))
	}

	// 2. Argument rules.
	if err := rules.Check(desc.Kind, desc.Args); err != nil {
		return domain.Failure(desc.Kind, domain.FailureInvalidInput, err)
	}

	// 3. Exactly one ledger call.
	payload, err := d.invoke(ports.WithBearerToken(ctx, session.Token), desc)
	if err != nil {
		return domain.Failure(desc.Kind, domain.FailureRemoteRejected, err)
	}
	if len(payload) > 0 && !json.Valid(payload) {
		return domain.Failure(desc.Kind, domain.FailureRemoteRejected,
			fmt.Errorf("%s: malformed ledger response", desc.Kind))
	}

	return domain.Success(desc.Kind, payload)
}

func (d *Dispatcher) invoke(ctx context.Context, desc domain.CommandDescriptor) (json.RawMessage, error) {
	switch desc.Kind {
	case domain.CmdAllAccounts:
		return d.ledger.AllAccounts(ctx)
	case domain.CmdAccountByID:
		return d.ledger.AccountByID(ctx, argsOf[rules.AccountRef](desc.Args))
	case domain.CmdWithTransactions:
		return d.ledger.AccountWithTransactions(ctx, argsOf[rules.AccountRef](desc.Args))
	case domain.CmdSummary:
		return d.ledger.AccountSummary(ctx)
	case domain.CmdSummaryByAccount:
		return d.ledger.AccountSummaryByAccount(ctx, argsOf[rules.AccountRef](desc.Args))
	case domain.CmdDeposit:
		return d.ledger.Deposit(ctx, argsOf[rules.Movement](desc.Args))
	case domain.CmdWithdraw:
		return d.ledger.Withdraw(ctx, argsOf[rules.Movement](desc.Args))
	case domain.CmdTransfer:
		return d.ledger.Transfer(ctx, argsOf[rules.Transfer](desc.Args))
	case domain.CmdCreateClerk:
		return d.ledger.CreateClerk(ctx, argsOf[rules.NewClerk](desc.Args))
	case domain.CmdAddAccount:
		return d.ledger.AddAccount(ctx, argsOf[rules.NewAccount](desc.Args))
	case domain.CmdDeleteAccount:
		return d.ledger.DeleteAccount(ctx, argsOf[rules.AccountRef](desc.Args))
	case domain.CmdAllTransactions:
		return d.ledger.AllTransactions(ctx)
	case domain.CmdTransactionByID:
		return d.ledger.TransactionByID(ctx, argsOf[rules.TransactionRef](desc.Args))
	case domain.CmdTransactionCount:
		return d.ledger.TransactionCount(ctx, argsOf[rules.AccountRef](desc.Args))
	case domain.CmdApproveWithdrawal:
		return d.ledger.ApproveWithdrawal(ctx, argsOf[domain.PendingApproval](desc.Args))
	default:
		return nil, fmt.Errorf("no ledger operation for %q", desc.Kind)
	}
}

// argsOf unwraps args that rules.Check has already accepted as a T or *T.
func argsOf[T any](args any) T {
	switch v := args.(type) {
	case T:
		return v
	case *T:
		return *v
	}
	var zero T
	return zero
}
