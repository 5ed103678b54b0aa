package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/senabank/operator-console/internal/core/domain"
	"github.com/senabank/operator-console/internal/core/ports"
)

func newTestAuth(l *stubLedger, store *stubStore) (*AuthService, *stubObserver) {
	obs := &stubObserver{}
	return NewAuthService(l, store, newTestWorkspaces(l), time.Hour, obs, zerolog.Nop()), obs
}

func loginReturns(token string, roles ...string) func(string, string) (*ports.LoginResponse, error) {
	return func(string, string) (*ports.LoginResponse, error) {
		return &ports.LoginResponse{Token: token, Roles: roles}, nil
	}
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("ledger-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuthService_Login_ClerkScenario(t *testing.T) {
	ledger := &stubLedger{loginFn: loginReturns("t", "ROLE_CLERK")}
	store := newStubStore()
	svc, obs := newTestAuth(ledger, store)

	res, err := svc.Login(context.Background(), "clerk1", "x")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.Workspace.Name() != WorkspaceClerk {
		t.Fatalf("expected clerk workspace, got %s", res.Workspace.Name())
	}
	if ledger.loginArg[0] != "clerk1" || ledger.loginArg[1] != "x" {
		t.Fatalf("unexpected login args %v", ledger.loginArg)
	}
	if _, err := store.Get(context.Background(), res.Session.ID); err != nil {
		t.Fatalf("session not stored: %v", err)
	}
	if len(obs.logins) != 1 || obs.logins[0] != domain.FailureNone {
		t.Fatalf("login not observed: %v", obs.logins)
	}
}

func TestAuthService_Login_ManagerWins(t *testing.T) {
	ledger := &stubLedger{loginFn: loginReturns("t", "ROLE_CLERK", "ROLE_MGR")}
	svc, _ := newTestAuth(ledger, newStubStore())

	res, err := svc.Login(context.Background(), "boss", "pw")
	if err != nil || res.Workspace.Name() != WorkspaceManager {
		t.Fatalf("expected manager workspace, got %v / %v", res, err)
	}
}

func TestAuthService_Login_NoRolesIsRefused(t *testing.T) {
	ledger := &stubLedger{loginFn: loginReturns("t")}
	store := newStubStore()
	svc, obs := newTestAuth(ledger, store)

	_, err := svc.Login(context.Background(), "nobody", "pw")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if len(store.sessions) != 0 {
		t.Fatalf("no session should be stored")
	}
	if obs.logins[0] != domain.FailureUnauthorized {
		t.Fatalf("expected unauthorized observation, got %v", obs.logins)
	}
}

func TestAuthService_Login_RolesFromTokenClaims(t *testing.T) {
	tests := []struct {
		name   string
		claims jwt.MapClaims
		want   string
	}{
		{"roles array", jwt.MapClaims{"roles": []string{"ROLE_MGR"}}, WorkspaceManager},
		{"space separated", jwt.MapClaims{"roles": "ROLE_CLERK"}, WorkspaceClerk},
		{"spring authorities", jwt.MapClaims{"authorities": []map[string]string{{"authority": "ROLE_CLERK"}}}, WorkspaceClerk},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ledger := &stubLedger{loginFn: loginReturns(signedToken(t, tc.claims))}
			svc, _ := newTestAuth(ledger, newStubStore())

			res, err := svc.Login(context.Background(), "u", "p")
			if err != nil {
				t.Fatalf("login failed: %v", err)
			}
			if res.Workspace.Name() != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, res.Workspace.Name())
			}
		})
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	ledger := &stubLedger{loginFn: func(string, string) (*ports.LoginResponse, error) {
		t.Fatalf("ledger should not be called")
		return nil, nil
	}}
	svc, _ := newTestAuth(ledger, newStubStore())

	if _, err := svc.Login(context.Background(), "", "pw"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "u", ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthService_Login_LedgerError(t *testing.T) {
	ledger := &stubLedger{err: errors.New("401 bad credentials")}
	svc, _ := newTestAuth(ledger, newStubStore())

	if _, err := svc.Login(context.Background(), "u", "bad"); !errors.Is(err, domain.ErrRemoteRejected) {
		t.Fatalf("expected ErrRemoteRejected, got %v", err)
	}
}

func TestAuthService_Login_StoreError(t *testing.T) {
	ledger := &stubLedger{loginFn: loginReturns("t", "ROLE_CLERK")}
	store := newStubStore()
	store.saveErr = errors.New("redis down")
	svc, _ := newTestAuth(ledger, store)

	if _, err := svc.Login(context.Background(), "u", "p"); !errors.Is(err, domain.ErrRemoteRejected) {
		t.Fatalf("expected ErrRemoteRejected, got %v", err)
	}
}

func TestAuthService_ResumeAndLogout(t *testing.T) {
	ledger := &stubLedger{loginFn: loginReturns("t", "ROLE_MGR")}
	store := newStubStore()
	svc, _ := newTestAuth(ledger, store)

	res, err := svc.Login(context.Background(), "boss", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	resumed, err := svc.Resume(context.Background(), res.Session.ID)
	if err != nil || resumed.Workspace.Name() != WorkspaceManager {
		t.Fatalf("resume failed: %v", err)
	}

	if err := svc.Logout(context.Background(), res.Session.ID); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := svc.Resume(context.Background(), res.Session.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after logout, got %v", err)
	}
	if err := svc.Logout(context.Background(), res.Session.ID); err != nil {
		t.Fatalf("second logout should be a no-op, got %v", err)
	}
}

func TestAuthService_ObserveDropsExpiredSession(t *testing.T) {
	ledger := &stubLedger{loginFn: loginReturns("t", "ROLE_CLERK")}
	store := newStubStore()
	svc, _ := newTestAuth(ledger, store)

	res, _ := svc.Login(context.Background(), "clerk1", "x")

	rejected := domain.Failure(domain.CmdSummary, domain.FailureRemoteRejected, errors.New("500"))
	if svc.Observe(context.Background(), res.Session, rejected) {
		t.Fatalf("plain rejection must not drop the session")
	}

	expired := domain.Failure(domain.CmdSummary, domain.FailureRemoteRejected,
		fmt.Errorf("status 401: %w", ports.ErrTokenExpired))
	if !svc.Observe(context.Background(), res.Session, expired) {
		t.Fatalf("expected expired session to be dropped")
	}
	if _, err := store.Get(context.Background(), res.Session.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("session still stored")
	}
}
