package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"classifieds/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = strings.TrimSpace(u.Email)
	tx := r.db.WithContext(ctx).Create(u)
	if tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return ErrDuplicateEmail
		}
		return tx.Error
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).
		Where("email = ?", strings.TrimSpace(email)).
		First(&u)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&u)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("email = ?", strings.TrimSpace(email)).
		Count(&count)
	if tx.Error != nil {
		return false, tx.Error
	}
	return count > 0, nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

// Search filters by username prefix and/or ban state. Both nil/empty means
// the caller forgot to validate; the repo just returns everything in that case.
func (r *UserRepository) Search(ctx context.Context, namePrefix string, isBanned *bool) ([]domain.User, error) {
	q := r.db.WithContext(ctx).Model(&domain.User{})
	if namePrefix != "" {
		q = q.Where("username LIKE ?", namePrefix+"%")
	}
	if isBanned != nil {
		q = q.Where("is_banned = ?", *isBanned)
	}

	var users []domain.User
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// LiftExpiredBans clears ban state on users whose ban window has passed.
func (r *UserRepository) LiftExpiredBans(ctx context.Context, now time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("is_banned = ? AND ban_end_date IS NOT NULL AND ban_end_date <= ?", true, now).
		Updates(map[string]any{"is_banned": false, "ban_end_date": nil})
	return tx.RowsAffected, tx.Error
}
