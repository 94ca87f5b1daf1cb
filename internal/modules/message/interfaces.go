package message

import (
	"context"

	"classifieds/internal/domain"
)

type RepositoryInterface interface {
	Create(ctx context.Context, m *domain.Message) error
	Conversation(ctx context.Context, a, b string) ([]domain.Message, error)
	MarkRead(ctx context.Context, receiverID, senderID string) (int64, error)
	UnreadCount(ctx context.Context, receiverID string) (int64, error)
}

// Receiver existence is checked against both stores before a message is
// accepted.
type UserReaderInterface interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type CompanyReaderInterface interface {
	GetByID(ctx context.Context, id string) (*domain.Company, error)
}
