package admin

import (
	"context"

	"classifieds/internal/domain"
)

type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

type CompanyRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*domain.Company, error)
	Update(ctx context.Context, c *domain.Company) error
}
