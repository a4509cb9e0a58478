package auth

import (
	"context"
	"time"

	"fieldbooking/internal/domain"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
	TouchLastLogout(ctx context.Context, id int64, at time.Time) error
}

type TokenIssuer interface {
	GenerateToken(email, role string) (string, error)
}
