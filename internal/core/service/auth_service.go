package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/senabank/operator-console/internal/core/domain"
	"github.com/senabank/operator-console/internal/core/ports"
)

const defaultSessionTTL = 8 * time.Hour

// roleClaims are the token claims searched for roles when the login
// response does not list them.
var roleClaims = []string{"roles", "authorities"}

// LoginResult is a stored session and the workspace it was routed to.
type LoginResult struct {
	Session   domain.Session
	Workspace *Workspace
}

// AuthService is the authentication boundary: it logs operators in against
// the ledger, routes them to a workspace and owns their sessions.
type AuthService struct {
	ledger     ports.Ledger
	store      ports.SessionStore
	workspaces Workspaces
	sessionTTL time.Duration
	observer   ports.LoginObserver
	log        zerolog.Logger
}

func NewAuthService(
	ledger ports.Ledger,
	store ports.SessionStore,
	workspaces Workspaces,
	sessionTTL time.Duration,
	observer ports.LoginObserver,
	log zerolog.Logger,
) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}
	return &AuthService{
		ledger:     ledger,
		store:      store,
		workspaces: workspaces,
		sessionTTL: sessionTTL,
		observer:   observer,
		log:        log,
	}
}

// Login authenticates against the ledger. The returned error wraps
// domain.ErrInvalidInput, domain.ErrRemoteRejected or domain.ErrUnauthorized.
// A successful ledger login whose token carries no operator role is
// refused like a failed one.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	res, err := s.login(ctx, username, password)
	if s.observer != nil {
		s.observer.ObserveLogin(domain.Classify(err))
	}
	if err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("login refused")
		return nil, err
	}
	s.log.Info().
		Str("username", username).
		Str("session", res.Session.ID).
		Str("workspace", res.Workspace.Name()).
		Msg("operator logged in")
	return res, nil
}

func (s *AuthService) login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}

	resp, err := s.ledger.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("%w: login: %w", domain.ErrRemoteRejected, err)
	}
	if resp == nil || resp.Token == "" {
		return nil, fmt.Errorf("%w: login: empty token", domain.ErrRemoteRejected)
	}

	names := resp.Roles
	if len(names) == 0 {
		names = rolesFromToken(resp.Token)
	}
	session := domain.Establish(resp.Token, domain.ParseRoles(names))

	ws, err := s.workspaces.Route(session)
	if err != nil {
		return nil, fmt.Errorf("login %s: no operator role: %w", username, err)
	}

	if err := s.store.Save(ctx, session, s.sessionTTL); err != nil {
		return nil, fmt.Errorf("%w: save session: %w", domain.ErrRemoteRejected, err)
	}

	return &LoginResult{Session: session, Workspace: ws}, nil
}

// Resume loads a stored session and the workspace it routes to.
func (s *AuthService) Resume(ctx context.Context, id string) (*LoginResult, error) {
	if id == "" {
		return nil, domain.ErrSessionNotFound
	}
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	ws, err := s.workspaces.Route(session)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Session: session, Workspace: ws}, nil
}

// Logout destroys the session. Unknown ids are not an error.
func (s *AuthService) Logout(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return fmt.Errorf("logout: %w", err)
	}
	s.log.Info().Str("session", id).Msg("operator logged out")
	return nil
}

// Observe destroys the session behind res when the ledger reported the
// token as expired. It returns true when the session was dropped.
func (s *AuthService) Observe(ctx context.Context, session domain.Session, res domain.Result) bool {
	if res.OK() || !errors.Is(res.Cause, ports.ErrTokenExpired) {
		return false
	}
	if err := s.store.Delete(ctx, session.ID); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		s.log.Warn().Err(err).Str("session", session.ID).Msg("failed to drop expired session")
		return false
	}
	s.log.Info().Str("session", session.ID).Msg("session expired")
	return true
}

// rolesFromToken reads role names from the token's claims without
// verifying its signature, which is the ledger's concern.
func rolesFromToken(token string) []string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}

	var out []string
	for _, key := range roleClaims {
		switch v := claims[key].(type) {
		case string:
			out = append(out, strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' })...)
		case []any:
			for _, item := range v {
				switch e := item.(type) {
				case string:
					out = append(out, e)
				case map[string]any:
					if a, ok := e["authority"].(string); ok {
						out = append(out, a)
					}
				}
			}
		}
	}
	return out
}
