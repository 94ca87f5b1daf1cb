package report

import (
	"context"

	"classifieds/internal/domain"
)

// RepositoryInterface is the storage surface the report service needs
type RepositoryInterface interface {
	Create(ctx context.Context, r *domain.Report) error
	GetByID(ctx context.Context, id int64) (*domain.Report, error)
	List(ctx context.Context) ([]domain.Report, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReportStatus) error
	Delete(ctx context.Context, id int64) error
}
