package repository

import (
	"context"
	"strings"
	"time"

	"fieldbooking/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID         int64      `gorm:"column:id;primaryKey"`
	Username   string     `gorm:"column:username;size:64;uniqueIndex;not null"`
	Email      string     `gorm:"column:email;size:255;uniqueIndex;not null"`
	Password   string     `gorm:"column:password;not null"`
	Role       string     `gorm:"column:role;size:16;not null"`
	LastLogin  *time.Time `gorm:"column:last_login"`
	LastLogout *time.Time `gorm:"column:last_logout"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	return &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.Password,
		Role:         domain.UserRole(m.Role),
		LastLogin:    m.LastLogin,
		LastLogout:   m.LastLogout,
	}
}

func toUserModel(u *domain.User) userModel {
	return userModel{
		ID:         u.ID,
		Username:   strings.TrimSpace(u.Username),
		Email:      normalizeEmail(u.Email),
		Password:   u.PasswordHash,
		Role:       string(u.Role),
		LastLogin:  u.LastLogin,
		LastLogout: u.LastLogout,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*u = *toDomainUser(m)
	return nil
}

// Upsert creates u or, when the email is already registered, replaces its
// username, password hash and role.
func (r *UserRepository) Upsert(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"username", "password", "role"}),
		}).
		Create(&m)
	if tx.Error != nil {
		return tx.Error
	}

	stored, err := r.GetByEmail(ctx, m.Email)
	if err != nil {
		return err
	}
	*u = *stored
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", normalizeEmail(email)).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	return r.touch(ctx, id, "last_login", at)
}

func (r *UserRepository) TouchLastLogout(ctx context.Context, id int64, at time.Time) error {
	return r.touch(ctx, id, "last_logout", at)
}

func (r *UserRepository) touch(ctx context.Context, id int64, column string, at time.Time) error {
	tx := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", id).
		Update(column, at.UTC())
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
