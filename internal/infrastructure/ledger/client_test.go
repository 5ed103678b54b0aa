package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/senabank/operator-console/internal/core/domain"
	"github.com/senabank/operator-console/internal/core/ports"
	"github.com/senabank/operator-console/internal/core/rules"
)

type capturedRequest struct {
	method string
	path   string
	auth   string
	body   map[string]any
}

func newLedgerServer(t *testing.T, status int, response string) (*Client, *[]capturedRequest) {
	t.Helper()
	var seen []capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := capturedRequest{method: r.Method, path: r.URL.Path, auth: r.Header.Get("Authorization")}
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			_ = json.Unmarshal(raw, &c.body)
		}
		seen = append(seen, c)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL+"/", nil, 0)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client, &seen
}

func TestClient_Routes(t *testing.T) {
	ctx := ports.WithBearerToken(context.Background(), "tok")
	amount := decimal.RequireFromString("100.50")

	tests := []struct {
		name   string
		call   func(c *Client) (json.RawMessage, error)
		method string
		path   string
	}{
		{"all accounts", func(c *Client) (json.RawMessage, error) { return c.AllAccounts(ctx) }, http.MethodGet, "/api/accounts"},
		{"by id", func(c *Client) (json.RawMessage, error) { return c.AccountByID(ctx, rules.AccountRef{AccountID: 5}) }, http.MethodGet, "/api/accounts/5"},
		{"with tx", func(c *Client) (json.RawMessage, error) {
			return c.AccountWithTransactions(ctx, rules.AccountRef{AccountID: 5})
		}, http.MethodGet, "/api/accounts/5/transactions"},
		{"summary", func(c *Client) (json.RawMessage, error) { return c.AccountSummary(ctx) }, http.MethodGet, "/api/accounts/summary"},
		{"summary by account", func(c *Client) (json.RawMessage, error) {
			return c.AccountSummaryByAccount(ctx, rules.AccountRef{AccountID: 5})
		}, http.MethodGet, "/api/accounts/5/summary"},
		{"deposit", func(c *Client) (json.RawMessage, error) {
			return c.Deposit(ctx, rules.Movement{AccountID: 5, Amount: amount})
		}, http.MethodPost, "/api/transactions/deposit"},
		{"withdraw", func(c *Client) (json.RawMessage, error) {
			return c.Withdraw(ctx, rules.Movement{AccountID: 5, Amount: amount})
		}, http.MethodPost, "/api/transactions/withdraw"},
		{"transfer", func(c *Client) (json.RawMessage, error) {
			return c.Transfer(ctx, rules.Transfer{FromAccountID: 1, ToAccountID: 2, Amount: amount})
		}, http.MethodPost, "/api/transactions/transfer"},
		{"create clerk", func(c *Client) (json.RawMessage, error) {
			return c.CreateClerk(ctx, rules.NewClerk{Username: "c", Password: "p"})
		}, http.MethodPost, "/api/manager/clerks"},
		{"add account", func(c *Client) (json.RawMessage, error) {
			return c.AddAccount(ctx, rules.NewAccount{Name: "n", Balance: amount, Email: "e", Phone: "p"})
		}, http.MethodPost, "/api/manager/accounts"},
		{"delete account", func(c *Client) (json.RawMessage, error) {
			return c.DeleteAccount(ctx, rules.AccountRef{AccountID: 5})
		}, http.MethodDelete, "/api/manager/accounts/5"},
		{"all tx", func(c *Client) (json.RawMessage, error) { return c.AllTransactions(ctx) }, http.MethodGet, "/api/manager/transactions"},
		{"tx by id", func(c *Client) (json.RawMessage, error) {
			return c.TransactionByID(ctx, rules.TransactionRef{TransactionID: 9})
		}, http.MethodGet, "/api/manager/transactions/9"},
		{"tx count", func(c *Client) (json.RawMessage, error) {
			return c.TransactionCount(ctx, rules.AccountRef{AccountID: 5})
		}, http.MethodGet, "/api/manager/transactions/count/5"},
		{"approve", func(c *Client) (json.RawMessage, error) {
			return c.ApproveWithdrawal(ctx, domain.NewPendingApproval(9, nil))
		}, http.MethodPost, "/api/manager/transactions/approve"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client, seen := newLedgerServer(t, http.StatusOK, `{"ok":true}`)
			payload, err := tc.call(client)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(payload) != `{"ok":true}` {
				t.Fatalf("payload altered: %s", payload)
			}
			if len(*seen) != 1 {
				t.Fatalf("expected one request, got %d", len(*seen))
			}
			got := (*seen)[0]
			if got.method != tc.method || got.path != tc.path {
				t.Fatalf("expected %s %s, got %s %s", tc.method, tc.path, got.method, got.path)
			}
			if got.auth != "Bearer tok" {
				t.Fatalf("missing bearer token, got %q", got.auth)
			}
		})
	}
}

func TestClient_BodiesUseNumbers(t *testing.T) {
	client, seen := newLedgerServer(t, http.StatusOK, `{}`)
	_, err := client.Transfer(context.Background(), rules.Transfer{FromAccountID: 1, ToAccountID: 2, Amount: decimal.RequireFromString("12.5")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := (*seen)[0].body
	if body["fromAccountId"] != float64(1) || body["toAccountId"] != float64(2) || body["amount"] != 12.5 {
		t.Fatalf("unexpected body %v", body)
	}

	_, _ = client.ApproveWithdrawal(context.Background(), domain.NewPendingApproval(9, nil))
	body = (*seen)[1].body
	if body["transactionId"] != float64(9) || body["approve"] != true {
		t.Fatalf("unexpected approval body %v", body)
	}
}

func TestClient_Login(t *testing.T) {
	client, seen := newLedgerServer(t, http.StatusOK, `{"token":"t","roles":["ROLE_CLERK"]}`)
	resp, err := client.Login(context.Background(), "clerk1", "x")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Token != "t" || len(resp.Roles) != 1 || resp.Roles[0] != "ROLE_CLERK" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if (*seen)[0].body["username"] != "clerk1" || (*seen)[0].auth != "" {
		t.Fatalf("unexpected login request %+v", (*seen)[0])
	}
}

func TestClient_EmptyBodyIsNull(t *testing.T) {
	client, _ := newLedgerServer(t, http.StatusNoContent, "")
	payload, err := client.DeleteAccount(context.Background(), rules.AccountRef{AccountID: 3})
	if err != nil || string(payload) != "null" {
		t.Fatalf("expected null payload, got %s / %v", payload, err)
	}
}

func TestClient_ErrorStatus(t *testing.T) {
	client, _ := newLedgerServer(t, http.StatusBadRequest, `{"error":"insufficient funds"}`)
	_, err := client.Withdraw(context.Background(), rules.Movement{AccountID: 1, Amount: decimal.NewFromInt(1)})

	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusBadRequest {
		t.Fatalf("expected StatusError 400, got %v", err)
	}
	if errors.Is(err, ports.ErrTokenExpired) {
		t.Fatalf("400 must not read as token expiry")
	}
}

func TestClient_UnauthorizedIsTokenExpired(t *testing.T) {
	client, _ := newLedgerServer(t, http.StatusUnauthorized, ``)
	_, err := client.AllAccounts(context.Background())
	if !errors.Is(err, ports.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestClient_MalformedBody(t *testing.T) {
	client, _ := newLedgerServer(t, http.StatusOK, `<html>oops</html>`)
	if _, err := client.AllAccounts(context.Background()); err == nil {
		t.Fatalf("expected error for non-JSON body")
	}
}

func TestNewClient_InvalidURL(t *testing.T) {
	if _, err := NewClient("not a url", nil, 0); err == nil {
		t.Fatalf("expected error")
	}
}
