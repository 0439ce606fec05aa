package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"library-catalog/internal/domains/user"
	"library-catalog/internal/infrastructure/queue"
	"library-catalog/internal/shared/validation"
	"library-catalog/pkg/jwt"
)

// bcrypt cost 12 balances hashing time against login throughput.
const bcryptCost = 12

type authService struct {
	repo      user.Repository
	tokens    *jwt.Manager
	blocklist *jwt.Blocklist
	enqueuer  queue.Enqueuer
}

// NewAuthService wires the auth use cases. enqueuer may be nil when the
// worker pipeline is not configured (tests, catalogctl against a dev stack).
func NewAuthService(repo user.Repository, tokens *jwt.Manager, blocklist *jwt.Blocklist, enqueuer queue.Enqueuer) user.Service {
	return &authService{
		repo:      repo,
		tokens:    tokens,
		blocklist: blocklist,
		enqueuer:  enqueuer,
	}
}

func (s *authService) Register(ctx context.Context, req *user.RegisterRequest) (*user.User, string, error) {
	if errs := req.Validate(); errs.Any() {
		return nil, "", validation.NewError(errs)
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", fmt.Errorf("check email exists: %w", err)
	}
	if exists {
		return nil, "", validation.NewFieldError("email", "the email has already been taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, &user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		// Concurrent registration can still hit the unique index.
		if errors.Is(err, user.ErrEmailTaken) {
			return nil, "", validation.NewFieldError("email", "the email has already been taken")
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Generate(created.ID, created.Email)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	// Welcome email is best-effort; registration never fails on queue errors.
	if s.enqueuer != nil {
		if err := s.enqueuer.EnqueueWelcomeEmail(ctx, created.Name, created.Email); err != nil {
			log.Warn().Err(err).Str("email", created.Email).Msg("enqueue welcome email failed")
		}
	}

	return created, token, nil
}

func (s *authService) Login(ctx context.Context, req *user.LoginRequest) (string, error) {
	if errs := req.Validate(); errs.Any() {
		return "", validation.NewError(errs)
	}

	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Same error as a wrong password: callers must not learn
			// whether the email exists.
			return "", user.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return "", user.ErrInvalidCredentials
	}

	return s.tokens.Generate(u.ID, u.Email)
}

func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) {
	if s.blocklist == nil {
		return
	}
	if err := s.blocklist.Revoke(ctx, claims); err != nil {
		// Revocation is best-effort: the token still expires on its own and
		// the client discards it either way.
		log.Warn().Err(err).Str("jti", claims.ID).Msg("token revocation failed")
	}
}

func (s *authService) Profile(ctx context.Context, userID int64) (*user.Profile, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	p := u.ToProfile()
	return &p, nil
}
