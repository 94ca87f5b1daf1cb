package account

import (
	"context"

	"classifieds/internal/domain"
)

// UserRepositoryInterface covers only the methods the account service uses
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Search(ctx context.Context, namePrefix string, isBanned *bool) ([]domain.User, error)
}

type CompanyRepositoryInterface interface {
	Create(ctx context.Context, c *domain.Company) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]domain.Company, error)
	Search(ctx context.Context, namePrefix string, isBanned *bool) ([]domain.Company, error)
}
