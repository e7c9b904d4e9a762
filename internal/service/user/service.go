// Package user implements account registration, login, and profile lookup.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Fallatori/Mandarin-Language-Studio/internal/auth"
	"github.com/Fallatori/Mandarin-Language-Studio/internal/domain"
	"github.com/Fallatori/Mandarin-Language-Studio/pkg/ctxutil"
)

const minPasswordLength = 8

type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type tokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
}

// Service provides account operations.
type Service struct {
	users  userRepo
	tokens tokenIssuer
	log    *slog.Logger
}

// NewService creates a new user service.
func NewService(log *slog.Logger, users userRepo, tokens tokenIssuer) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		log:    log.With("service", "user"),
	}
}

// Credentials is a username/password pair.
type Credentials struct {
	Username string
	Password string
}

// Validate checks the credential fields.
func (c *Credentials) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(c.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if len(c.Password) < minPasswordLength {
		errs = append(errs, domain.FieldError{
			Field:   "password",
			Message: fmt.Sprintf("must be at least %d characters", minPasswordLength),
		})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AuthResult is a logged-in user with their access token.
type AuthResult struct {
	User  *domain.User
	Token string
}

// Register creates an account and logs it in.
func (s *Service) Register(ctx context.Context, creds Credentials) (*AuthResult, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(creds.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:     strings.TrimSpace(creds.Username),
		PasswordHash: hash,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.GenerateAccessToken(created.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("user registered", slog.String("user_id", created.ID.String()))
	return &AuthResult{User: created, Token: token}, nil
}

// Login verifies credentials and issues an access token. A missing user
// and a wrong password produce the same error.
func (s *Service) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	if strings.TrimSpace(creds.Username) == "" || creds.Password == "" {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(creds.Username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !auth.CheckPassword(u.PasswordHash, creds.Password) {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.tokens.GenerateAccessToken(u.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &AuthResult{User: u, Token: token}, nil
}

// Profile returns the authenticated user's account.
func (s *Service) Profile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
