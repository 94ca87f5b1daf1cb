package auth

import (
	"context"

	"classifieds/internal/domain"
)

// UserReaderInterface is the only lookup the credential verifier needs
type UserReaderInterface interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// CompanyReaderInterface is the fallback store for the same lookup
type CompanyReaderInterface interface {
	GetByEmail(ctx context.Context, email string) (*domain.Company, error)
}
