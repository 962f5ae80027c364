package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"skiresort/internal/domain"
	"skiresort/internal/pkg/jwt"
	"skiresort/internal/repository"
	"skiresort/internal/rules"
)

type Service struct {
	users  UserRepository
	tokens *jwt.Service
}

func NewService(users UserRepository, tokens *jwt.Service) *Service {
	return &Service{users: users, tokens: tokens}
}

// LoginResult carries the authenticated user together with a fresh token.
type LoginResult struct {
	User  *domain.User
	Token string
}

// Register creates a new account with the USER role. Username uniqueness
// is arbitrated by the database index, not a prior existence check.
func (s *Service) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if r := rules.CheckRegistrationCredentials(username, password); !r.Valid {
		return nil, fmt.Errorf("%w: %s", ErrValidation, r.Message)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(password)), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     strings.TrimSpace(username),
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies the password and issues a signed token. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if r := rules.CheckLoginCredentials(username, password); !r.Valid {
		return nil, fmt.Errorf("%w: %s", ErrValidation, r.Message)
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(strings.TrimSpace(password))); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.Username, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &LoginResult{User: user, Token: token}, nil
}

// AssessCredentials grades a candidate credential pair for strength
// feedback before registration. Pure, no account is touched.
func (s *Service) AssessCredentials(username, password string) rules.SecurityAssessment {
	return rules.AssessCredentialSecurity(username, password)
}

// Profile returns the account behind an authenticated username.
func (s *Service) Profile(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
