package message

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"classifieds/internal/domain"
)

type Service struct {
	messages  RepositoryInterface
	users     UserReaderInterface
	companies CompanyReaderInterface
}

func NewService(messages RepositoryInterface, users UserReaderInterface, companies CompanyReaderInterface) *Service {
	return &Service{messages: messages, users: users, companies: companies}
}

func (s *Service) Send(ctx context.Context, senderID string, req SendMessageRequest) (*domain.Message, error) {
	if senderID == req.ReceiverID {
		return nil, ErrSelfMessage
	}

	exists, err := s.receiverExists(ctx, req.ReceiverID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUnknownReceiver
	}

	msg := &domain.Message{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Conversation returns the full two-way history between the caller and the
// peer, oldest first.
func (s *Service) Conversation(ctx context.Context, principalID, peerID string) ([]domain.Message, error) {
	return s.messages.Conversation(ctx, principalID, peerID)
}

// MarkRead flags every unread message from the peer to the caller and
// returns how many were updated.
func (s *Service) MarkRead(ctx context.Context, principalID, peerID string) (int64, error) {
	return s.messages.MarkRead(ctx, principalID, peerID)
}

func (s *Service) UnreadCount(ctx context.Context, principalID string) (int64, error) {
	return s.messages.UnreadCount(ctx, principalID)
}

func (s *Service) receiverExists(ctx context.Context, id string) (bool, error) {
	if _, err := s.users.GetByID(ctx, id); err == nil {
		return true, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	if _, err := s.companies.GetByID(ctx, id); err == nil {
		return true, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	return false, nil
}
