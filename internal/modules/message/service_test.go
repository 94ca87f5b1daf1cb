package message

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"classifieds/internal/domain"
)

type mockMessageRepo struct {
	mock.Mock
}

func (m *mockMessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *mockMessageRepo) Conversation(ctx context.Context, a, b string) ([]domain.Message, error) {
	args := m.Called(ctx, a, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}

func (m *mockMessageRepo) MarkRead(ctx context.Context, receiverID, senderID string) (int64, error) {
	args := m.Called(ctx, receiverID, senderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMessageRepo) UnreadCount(ctx context.Context, receiverID string) (int64, error) {
	args := m.Called(ctx, receiverID)
	return args.Get(0).(int64), args.Error(1)
}

type mockUserReader struct {
	mock.Mock
}

func (m *mockUserReader) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockCompanyReader struct {
	mock.Mock
}

func (m *mockCompanyReader) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func TestService_Send_Success(t *testing.T) {
	messages := new(mockMessageRepo)
	users := new(mockUserReader)
	companies := new(mockCompanyReader)

	users.On("GetByID", mock.Anything, "user-2").Return(&domain.User{ID: "user-2"}, nil)
	messages.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(messages, users, companies)

	msg, err := service.Send(context.Background(), "user-1", SendMessageRequest{
		ReceiverID: "user-2",
		Content:    "Is the car still available?",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "user-1", msg.SenderID)
	assert.Equal(t, "user-2", msg.ReceiverID)
	assert.False(t, msg.Read)
	messages.AssertExpectations(t)
}

func TestService_Send_CompanyReceiver(t *testing.T) {
	messages := new(mockMessageRepo)
	users := new(mockUserReader)
	companies := new(mockCompanyReader)

	users.On("GetByID", mock.Anything, "company-1").Return(nil, gorm.ErrRecordNotFound)
	companies.On("GetByID", mock.Anything, "company-1").Return(&domain.Company{ID: "company-1"}, nil)
	messages.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(messages, users, companies)

	_, err := service.Send(context.Background(), "user-1", SendMessageRequest{
		ReceiverID: "company-1",
		Content:    "Do you deliver?",
	})

	assert.NoError(t, err)
}

func TestService_Send_RejectsSelf(t *testing.T) {
	service := NewService(new(mockMessageRepo), new(mockUserReader), new(mockCompanyReader))

	_, err := service.Send(context.Background(), "user-1", SendMessageRequest{
		ReceiverID: "user-1",
		Content:    "hi",
	})

	assert.ErrorIs(t, err, ErrSelfMessage)
}

func TestService_Send_UnknownReceiver(t *testing.T) {
	messages := new(mockMessageRepo)
	users := new(mockUserReader)
	companies := new(mockCompanyReader)

	users.On("GetByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)
	companies.On("GetByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(messages, users, companies)

	_, err := service.Send(context.Background(), "user-1", SendMessageRequest{
		ReceiverID: "ghost",
		Content:    "hello?",
	})

	assert.ErrorIs(t, err, ErrUnknownReceiver)
	messages.AssertNotCalled(t, "Create")
}

func TestService_MarkRead(t *testing.T) {
	messages := new(mockMessageRepo)
	messages.On("MarkRead", mock.Anything, "user-1", "user-2").Return(int64(3), nil)

	service := NewService(messages, new(mockUserReader), new(mockCompanyReader))

	updated, err := service.MarkRead(context.Background(), "user-1", "user-2")

	assert.NoError(t, err)
	assert.Equal(t, int64(3), updated)
}
