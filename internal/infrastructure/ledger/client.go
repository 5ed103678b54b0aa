// Package ledger is the HTTP/JSON adapter for the remote ledger service.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/senabank/operator-console/internal/core/domain"
	"github.com/senabank/operator-console/internal/core/ports"
	"github.com/senabank/operator-console/internal/core/rules"
)

const maxResponseBytes = 4 << 20

// StatusError is returned for any non-2xx ledger response.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ledger %s %s: status %d", e.Method, e.Path, e.Code)
}

// Unwrap lets a 401 match ports.ErrTokenExpired.
func (e *StatusError) Unwrap() error {
	if e.Code == http.StatusUnauthorized {
		return ports.ErrTokenExpired
	}
	return nil
}

// Client implements ports.Ledger over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ ports.Ledger = (*Client)(nil)

// NewClient returns a Client for the ledger at baseURL. A nil httpClient
// gets one with the given timeout; zero timeout means none.
func NewClient(baseURL string, httpClient *http.Client, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("ledger: invalid base url %q", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{baseURL: strings.TrimRight(u.String(), "/"), httpClient: httpClient}, nil
}

// --- request bodies ---

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type movementRequest struct {
	AccountID int64       `json:"accountId"`
	Amount    json.Number `json:"amount"`
}

type transferRequest struct {
	FromAccountID int64       `json:"fromAccountId"`
	ToAccountID   int64       `json:"toAccountId"`
	Amount        json.Number `json:"amount"`
}

type addAccountRequest struct {
	Name    string      `json:"name"`
	Balance json.Number `json:"balance"`
	Email   string      `json:"email"`
	Phone   string      `json:"phone"`
}

// --- operations ---

func (c *Client) Login(ctx context.Context, username, password string) (*ports.LoginResponse, error) {
	raw, err := c.do(ctx, http.MethodPost, "/api/auth/login", loginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	var resp ports.LoginResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	return &resp, nil
}

func (c *Client) AllAccounts(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/api/accounts", nil)
}

func (c *Client) AccountByID(ctx context.Context, args rules.AccountRef) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/api/accounts/"+id(args.AccountID), nil)
}

func (c *Client) AccountWithTransactions(ctx context.Context, args rules.AccountRef) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/api/accounts/"+id(args.AccountID)+"/transactions", nil)
}

func (c *Client) AccountSummary(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/api/accounts/summary", nil)
}

func (c *Client) AccountSummaryByAccount(ctx context.Context, args rules.AccountRef) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/api/accounts/"+id(args.AccountID)+"/summary", nil)
}

func (c *Client) Deposit(ctx context.Context, args rules.Movement) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/api/transactions/deposit", toMovement(args))
}

func (c *Client) Withdraw(ctx context.Context, args rules.Movement) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/api/transactions/withdraw", toMovement(args))
}

func (c *Client) Transfer(ctx context.Context, args rules.Transfer) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/api/transactions/transfer", transferRequest{
		FromAccountID: args.FromAccountID,
		ToAccountID:   args.ToAccountID,
		Amount:        json.Number(args.Amount.String()),
	})
}

func (c *Client) CreateClerk(ctx context.Context, args rules.NewClerk) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/api/manager/clerks", args)
}

func (c *Client) AddAccount(ctx context.Context, args rules.NewAccount) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/api/manager/accounts", addAccountRequest{
		Name:    args.Name,
		Balance: json.Number(args.Balance.String()),
		Email:   args.Email,
		Phone:   args.Phone,
	})
}

func (c *Client) DeleteAccount(ctx context.Context, args rules.AccountRef) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, "/api/manager/accounts/"+id(args.AccountID), nil)
}

func (c *Client) AllTransactions(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/api/manager/transactions", nil)
}

func (c *Client) TransactionByID(ctx context.Context, args rules.TransactionRef) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/api/manager/transactions/"+id(args.TransactionID), nil)
}

func (c *Client) TransactionCount(ctx context.Context, args rules.AccountRef) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/api/manager/transactions/count/"+id(args.AccountID), nil)
}

func (c *Client) ApproveWithdrawal(ctx context.Context, args domain.PendingApproval) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/api/manager/transactions/approve", args)
}

// Ping checks that the ledger answers HTTP at all; any status counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/accounts/summary", nil)
	if err != nil {
		return fmt.Errorf("create ping request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ping ledger: %w", err)
	}
	_ = resp.Body.Close()
	return nil
}

// do sends one request and returns the raw body of a 2xx response.
// An empty 2xx body is returned as JSON null.
func (c *Client) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := ports.BearerToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ledger %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", method, path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{Method: method, Path: path, Code: resp.StatusCode, Body: string(raw)}
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("ledger " + method + " " + path + ": malformed response body")
	}
	return json.RawMessage(raw), nil
}

func toMovement(args rules.Movement) movementRequest {
	return movementRequest{AccountID: args.AccountID, Amount: json.Number(args.Amount.String())}
}

func id(n int64) string {
	return strconv.FormatInt(n, 10)
}
