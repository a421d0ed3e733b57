// Package services contains server-side business logic. This file implements
// UserService, which handles signup, login, and resolving the current user
// from an already-verified identity.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/dbx"
	"github.com/dmitrijs2005/notekeeper/internal/server/auth"
	"github.com/dmitrijs2005/notekeeper/internal/server/config"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/repomanager"
)

const minPasswordLength = 6

// UserService provides authentication-related operations:
//   - SignUp: validate, hash, persist, and issue a session token
//   - Login: verify credentials and issue a session token
//   - GetCurrentUser: look up an already-authenticated identity
type UserService struct {
	db            dbx.DBTX
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
	bcryptCost    int
	queryTimeout  time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db dbx.DBTX, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:            db,
		repomanager:   m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
		bcryptCost:    cfg.BcryptCost,
		queryTimeout:  cfg.QueryTimeout,
	}
}

// SignUp registers a new user and returns the created record together with
// a signed session token. Nothing is persisted unless every validation
// passes. A duplicate email is reported as common.ErrDuplicateEmail whether
// it is caught by the pre-check or by the unique index.
func (s *UserService) SignUp(ctx context.Context, email, password, confirmPassword string) (*models.User, string, error) {

	email = strings.TrimSpace(email)

	if email == "" || password == "" || confirmPassword == "" {
		return nil, "", common.NewValidationError("All fields are required")
	}
	if password != confirmPassword {
		return nil, "", common.NewValidationError("Passwords do not match")
	}
	if len(password) < minPasswordLength {
		return nil, "", common.NewValidationError("Password must be at least 6 characters")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	repo := s.repomanager.Users(s.db)

	// Fast path only: the unique index on email is the authoritative guard.
	_, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, "", common.ErrDuplicateEmail
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, "", fmt.Errorf("error checking existing user: %w", err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("error hashing password: %w", err)
	}

	user, err := repo.Create(ctx, &models.User{Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, "", common.ErrDuplicateEmail
		}
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, "", fmt.Errorf("error generating token: %w", err)
	}

	return user, token, nil
}

// Login verifies the email/password pair and issues a session token.
// An unknown email and a wrong password both yield common.ErrUnauthenticated
// so the response does not reveal which one it was.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {

	email = strings.TrimSpace(email)

	if email == "" || password == "" {
		return nil, "", common.NewValidationError("All fields are required")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", common.ErrUnauthenticated
		}
		return nil, "", fmt.Errorf("error searching user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", common.ErrUnauthenticated
	}

	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, "", fmt.Errorf("error generating token: %w", err)
	}

	return user, token, nil
}

// GetCurrentUser resolves an authenticated user id to its record. The id
// comes from a verified credential, so an absent record means the account
// was deleted out-of-band: common.ErrNotFound, distinct from unauthenticated.
func (s *UserService) GetCurrentUser(ctx context.Context, userID string) (*models.User, error) {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	return user, nil
}

func (s *UserService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.queryTimeout)
}
