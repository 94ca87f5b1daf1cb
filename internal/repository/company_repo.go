package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"classifieds/internal/domain"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, c *domain.Company) error {
	c.Email = strings.TrimSpace(c.Email)
	tx := r.db.WithContext(ctx).Create(c)
	if tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return ErrDuplicateEmail
		}
		return tx.Error
	}
	return nil
}

func (r *CompanyRepository) GetByEmail(ctx context.Context, email string) (*domain.Company, error) {
	var c domain.Company
	tx := r.db.WithContext(ctx).
		Where("email = ?", strings.TrimSpace(email)).
		First(&c)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	var c domain.Company
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&c)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

func (r *CompanyRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&domain.Company{}).
		Where("email = ?", strings.TrimSpace(email)).
		Count(&count)
	if tx.Error != nil {
		return false, tx.Error
	}
	return count > 0, nil
}

func (r *CompanyRepository) Update(ctx context.Context, c *domain.Company) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CompanyRepository) List(ctx context.Context) ([]domain.Company, error) {
	var companies []domain.Company
	if err := r.db.WithContext(ctx).Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *CompanyRepository) Search(ctx context.Context, namePrefix string, isBanned *bool) ([]domain.Company, error) {
	q := r.db.WithContext(ctx).Model(&domain.Company{})
	if namePrefix != "" {
		q = q.Where("company_name LIKE ?", namePrefix+"%")
	}
	if isBanned != nil {
		q = q.Where("is_banned = ?", *isBanned)
	}

	var companies []domain.Company
	if err := q.Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *CompanyRepository) LiftExpiredBans(ctx context.Context, now time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Company{}).
		Where("is_banned = ? AND ban_end_date IS NOT NULL AND ban_end_date <= ?", true, now).
		Updates(map[string]any{"is_banned": false, "ban_end_date": nil})
	return tx.RowsAffected, tx.Error
}
