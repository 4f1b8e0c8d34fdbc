package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"constructora/internal/auth"
	"constructora/internal/model"
	"constructora/internal/repository"
)

var (
	// ErrInvalidCredentials is returned when username or password is incorrect.
	// Absent users and wrong passwords share it so callers cannot enumerate
	// usernames.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrInactiveUser is returned when credentials are correct but the account
	// is deactivated.
	ErrInactiveUser = errors.New("inactive user")
	// ErrEmailTaken is returned when registering with an email that is already
	// in use.
	ErrEmailTaken = errors.New("a user with this email already exists")
)

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, username, email, password string, isAdmin bool) (*model.User, error)
	Login(ctx context.Context, username, password string) (token string, user *model.User, err error)
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenService) AuthService {
	return &authService{users: users, tokens: tokens}
}

// Register creates a new user with a hashed password.
func (s *authService) Register(ctx context.Context, username, email, password string, isAdmin bool) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		IsActive:     true,
		IsAdmin:      isAdmin,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login authenticates a user by username and password and issues a bearer
// token for them.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, ErrInactiveUser
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}
