package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mateusbarbosa/go-auth-api/internal/auth"
	"github.com/mateusbarbosa/go-auth-api/internal/models"
	"github.com/mateusbarbosa/go-auth-api/internal/password"
	"github.com/mateusbarbosa/go-auth-api/internal/store"
)

// RegisterInput carries the untrusted fields of a registration request.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Register(ctx context.Context, input RegisterInput) error
	Authenticate(ctx context.Context, email, pass string) (string, error)
	GetUserByID(ctx context.Context, id string) (models.User, error)
}

// UserService provides the registration and authentication flows.
type UserService struct {
	store  store.UserStore
	issuer *auth.TokenIssuer
}

// NewUserService creates a new UserService.
func NewUserService(userStore store.UserStore, issuer *auth.TokenIssuer) *UserService {
	return &UserService{store: userStore, issuer: issuer}
}

// Register validates the input, checks for a duplicate email, hashes the
// password and persists a new user record. Each check fails fast; nothing is
// written before the final insert.
func (s *UserService) Register(ctx context.Context, input RegisterInput) error {
	if input.Name == "" {
		return ErrNameRequired
	}
	if input.Email == "" {
		return ErrEmailRequired
	}
	if input.Password == "" {
		return ErrPasswordRequired
	}
	if input.Password != input.ConfirmPassword {
		return ErrPasswordMismatch
	}

	_, err := s.store.FindByEmail(ctx, input.Email)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("duplicate check for %s: %w", input.Email, err)
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return err
	}

	user := models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.Insert(ctx, user); err != nil {
		// The unique index catches registrations that raced past the
		// read check above.
		if errors.Is(err, store.ErrDuplicateEmail) {
			return ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Authenticate verifies a user's credentials and issues a signed token
// embedding their ID.
func (s *UserService) Authenticate(ctx context.Context, email, pass string) (string, error) {
	if email == "" {
		return "", ErrEmailRequired
	}
	if pass == "" {
		return "", ErrPasswordRequired
	}

	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("lookup user %s: %w", email, err)
	}

	if !password.Verify(user.PasswordHash, pass) {
		return "", ErrInvalidPassword
	}

	token, err := s.issuer.Generate(user)
	if err != nil {
		return "", fmt.Errorf("sign token for %s: %w", user.ID, err)
	}
	return token, nil
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(ctx context.Context, id string) (models.User, error) {
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("lookup user %s: %w", id, err)
	}
	return user, nil
}
