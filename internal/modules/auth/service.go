package auth

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"fieldbooking/internal/domain"
	"fieldbooking/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Service contains the staff authentication logic.
type Service struct {
	users UserRepository
	jwt   TokenIssuer
	now   func() time.Time
}

func NewService(users UserRepository, jwt TokenIssuer) *Service {
	return &Service{
		users: users,
		jwt:   jwt,
		now:   time.Now,
	}
}

// Login checks the password and issues an access token. last_login is only
// written after a successful check.
func (s *Service) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if repository.IsNotFound(err) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Printf("auth: login rejected user_id=%d", user.ID)
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.Email, string(user.Role))
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	now := s.now().UTC()
	if err := s.users.TouchLastLogin(ctx, user.ID, now); err != nil {
		return "", nil, err
	}
	user.LastLogin = &now

	return token, user, nil
}

// Logout records the logout time; tokens issued before it stop working.
func (s *Service) Logout(ctx context.Context, user *domain.User) error {
	now := s.now().UTC()
	if err := s.users.TouchLastLogout(ctx, user.ID, now); err != nil {
		return err
	}
	user.LastLogout = &now
	return nil
}

// HashPassword returns the bcrypt hash stored in users.password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// NewStaffUser builds a user ready for storage, hashing the password.
func NewStaffUser(username, email, password string, role domain.UserRole) (*domain.User, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &domain.User{
		Username:     strings.TrimSpace(username),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: hash,
		Role:         role,
	}, nil
}
