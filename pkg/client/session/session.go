package session

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"library-catalog/pkg/client"
)

// State is the authentication state of the session.
type State int

const (
	// Unauthenticated means no valid token is held.
	Unauthenticated State = iota
	// Loading means a stored token exists but has not yet been verified
	// against the server.
	Loading
	// Authenticated means the token was verified and a user profile is
	// available.
	Authenticated
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Session tracks who is signed in. It owns the client's token: all state
// transitions flow through it, and the stored token and client token are
// kept in step.
type Session struct {
	client *client.Client
	store  TokenStore

	mu    sync.RWMutex
	state State
	user  *client.Profile
}

// New creates a session in the Unauthenticated state. Call Restore to pick
// up a previously saved token.
func New(c *client.Client, store TokenStore) *Session {
	return &Session{client: c, store: store, state: Unauthenticated}
}

// State returns the current authentication state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User returns the signed-in user's profile, nil unless Authenticated.
func (s *Session) User() *client.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Restore loads a saved token and verifies it with the server. Any failed
// profile fetch clears the stored token and settles the session back to
// Unauthenticated: a rejected token (expired, revoked) is a normal outcome
// and returns nil, while a transport failure is returned so the caller can
// report it. Either way the next start begins from a clean slate instead of
// retrying a token we could not verify.
func (s *Session) Restore(ctx context.Context) error {
	token, err := s.store.Load()
	if err != nil {
		return err
	}
	if token == "" {
		s.setUnauthenticated()
		return nil
	}

	s.mu.Lock()
	s.state = Loading
	s.mu.Unlock()
	s.client.SetToken(token)

	profile, err := s.client.Auth.Me(ctx)
	if err != nil {
		if clearErr := s.store.Clear(); clearErr != nil {
			log.Warn().Err(clearErr).Msg("failed to clear stored token")
		}
		s.setUnauthenticated()
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			// Server saw the token and rejected it.
			return nil
		}
		return err
	}

	s.mu.Lock()
	s.state = Authenticated
	s.user = profile
	s.mu.Unlock()
	return nil
}

// Login exchanges credentials for a token, persists it and loads the
// profile. On failure the session stays Unauthenticated.
func (s *Session) Login(ctx context.Context, email, password string) error {
	token, err := s.client.Auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return s.adopt(ctx, token)
}

// Register creates an account and signs the session in with the returned
// token.
func (s *Session) Register(ctx context.Context, name, email, password, passwordConfirmation string) error {
	_, token, err := s.client.Auth.Register(ctx, name, email, password, passwordConfirmation)
	if err != nil {
		return err
	}
	return s.adopt(ctx, token)
}

// Logout revokes the token server-side and clears local state. The local
// clear always happens: a failed revocation still signs the session out.
func (s *Session) Logout(ctx context.Context) {
	if err := s.client.Auth.Logout(ctx); err != nil {
		log.Warn().Err(err).Msg("server logout failed, clearing local session anyway")
	}
	if err := s.store.Clear(); err != nil {
		log.Warn().Err(err).Msg("failed to clear stored token")
	}
	s.setUnauthenticated()
}

func (s *Session) adopt(ctx context.Context, token string) error {
	s.client.SetToken(token)

	profile, err := s.client.Auth.Me(ctx)
	if err != nil {
		s.client.SetToken("")
		return err
	}
	if err := s.store.Save(token); err != nil {
		log.Warn().Err(err).Msg("failed to persist token; session valid for this run only")
	}

	s.mu.Lock()
	s.state = Authenticated
	s.user = profile
	s.mu.Unlock()
	return nil
}

func (s *Session) setUnauthenticated() {
	s.client.SetToken("")
	s.mu.Lock()
	s.state = Unauthenticated
	s.user = nil
	s.mu.Unlock()
}
