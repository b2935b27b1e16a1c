package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"library-of-things-backend/internal/domain"
	"library-of-things-backend/internal/logger"
	"library-of-things-backend/internal/repository"
	"library-of-things-backend/internal/security"
)

// ErrInvalidCredentials is deliberately the same for unknown e-mail and
// wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

type authService struct {
	store  repository.Store
	tokens security.TokenManager
}

func NewAuthService(store repository.Store, tokens security.TokenManager) AuthService {
	return &authService{store: store, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, firstName, lastName, email, password string) (*domain.User, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)

	if firstName == "" || lastName == "" {
		return nil, domain.Validationf("First and last name are required")
	}
	if !strings.Contains(email, "@") {
		return nil, domain.Validationf("A valid email address is required")
	}
	if len(password) < 8 {
		return nil, domain.Validationf("Password must be at least 8 characters")
	}

	if _, err := s.store.Users().GetByEmail(ctx, email); err == nil {
		return nil, domain.Validationf("Email already exists")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.store.Users().Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User registered", "user_id", user.ID)
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := s.store.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", time.Time{}, ErrInvalidCredentials
		}
		return "", time.Time{}, err
	}
	if !user.IsActive {
		return "", time.Time{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	return s.tokens.GenerateToken(user.ID)
}
