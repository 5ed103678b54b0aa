package ports

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/senabank/operator-console/internal/core/domain"
	"github.com/senabank/operator-console/internal/core/rules"
)

// ErrTokenExpired is wrapped by Ledger errors when the bearer token is no
// longer accepted by the ledger.
var ErrTokenExpired = errors.New("ledger token expired")

// LoginResponse is what the ledger returns for a successful login.
type LoginResponse struct {
	Token string   `json:"token"`
	Roles []string `json:"roles"`
}

// Ledger is the remote service of record. Every operation takes already
// validated arguments and returns the response body untouched.
// The bearer token travels in ctx (see WithBearerToken).
type Ledger interface {
	Login(ctx context.Context, username, password string) (*LoginResponse, error)

	AllAccounts(ctx context.Context) (json.RawMessage, error)
	AccountByID(ctx context.Context, args rules.AccountRef) (json.RawMessage, error)
	AccountWithTransactions(ctx context.Context, args rules.AccountRef) (json.RawMessage, error)
	AccountSummary(ctx context.Context) (json.RawMessage, error)
	AccountSummaryByAccount(ctx context.Context, args rules.AccountRef) (json.RawMessage, error)

	Deposit(ctx context.Context, args rules.Movement) (json.RawMessage, error)
	Withdraw(ctx context.Context, args rules.Movement) (json.RawMessage, error)
	Transfer(ctx context.Context, args rules.Transfer) (json.RawMessage, error)

	CreateClerk(ctx context.Context, args rules.NewClerk) (json.RawMessage, error)
	AddAccount(ctx context.Context, args rules.NewAccount) (json.RawMessage, error)
	DeleteAccount(ctx context.Context, args rules.AccountRef) (json.RawMessage, error)

	AllTransactions(ctx context.Context) (json.RawMessage, error)
	TransactionByID(ctx context.Context, args rules.TransactionRef) (json.RawMessage, error)
	TransactionCount(ctx context.Context, args rules.AccountRef) (json.RawMessage, error)
	ApproveWithdrawal(ctx context.Context, args domain.PendingApproval) (json.RawMessage, error)
}

type bearerKey struct{}

// WithBearerToken returns a copy of ctx carrying the ledger token.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerKey{}, token)
}

// BearerToken returns the ledger token attached to ctx, if any.
func BearerToken(ctx context.Context) string {
	token, _ := ctx.Value(bearerKey{}).(string)
	return token
}
