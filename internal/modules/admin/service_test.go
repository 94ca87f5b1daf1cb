package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"classifieds/internal/domain"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type mockCompanyRepo struct {
	mock.Mock
}

func (m *mockCompanyRepo) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *mockCompanyRepo) Update(ctx context.Context, c *domain.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func TestService_BanUser_AppendsReasonAndBumpsCount(t *testing.T) {
	users := new(mockUserRepo)
	companies := new(mockCompanyRepo)

	users.On("GetByID", mock.Anything, "user-1").Return(&domain.User{
		ID:        "user-1",
		BanReason: []string{"old strike"},
		BanCount:  1,
	}, nil)
	users.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(users, companies)

	end := time.Now().Add(72 * time.Hour)
	result, err := service.BanUser(context.Background(), "user-1", BanRequest{
		Reason:  "spam listings",
		EndDate: &end,
	})

	assert.NoError(t, err)
	assert.True(t, result.IsBanned)
	assert.Equal(t, []string{"old strike", "spam listings"}, result.BanReason)
	assert.Equal(t, 2, result.BanCount)
	assert.Equal(t, &end, result.BanEndDate)
	users.AssertExpectations(t)
}

func TestService_BanUser_PermanentWithoutEndDate(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, "user-1").Return(&domain.User{ID: "user-1"}, nil)
	users.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(users, new(mockCompanyRepo))

	result, err := service.BanUser(context.Background(), "user-1", BanRequest{Reason: "fraud"})

	assert.NoError(t, err)
	assert.True(t, result.IsBanned)
	assert.Nil(t, result.BanEndDate)
}

func TestService_BanUser_AlreadyBanned(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, "user-1").Return(&domain.User{
		ID:       "user-1",
		IsBanned: true,
	}, nil)

	service := NewService(users, new(mockCompanyRepo))

	_, err := service.BanUser(context.Background(), "user-1", BanRequest{Reason: "again"})

	assert.ErrorIs(t, err, ErrAlreadyBanned)
	users.AssertNotCalled(t, "Update")
}

func TestService_BanUser_NotFound(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(users, new(mockCompanyRepo))

	_, err := service.BanUser(context.Background(), "ghost", BanRequest{Reason: "spam"})
	assert.ErrorIs(t, err, ErrPrincipalNotFound)
}

func TestService_UnbanUser_KeepsHistory(t *testing.T) {
	end := time.Now().Add(time.Hour)
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, "user-1").Return(&domain.User{
		ID:         "user-1",
		IsBanned:   true,
		BanReason:  []string{"spam listings"},
		BanEndDate: &end,
		BanCount:   3,
	}, nil)
	users.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(users, new(mockCompanyRepo))

	result, err := service.UnbanUser(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.False(t, result.IsBanned)
	assert.Nil(t, result.BanEndDate)
	assert.Equal(t, []string{"spam listings"}, result.BanReason)
	assert.Equal(t, 3, result.BanCount)
}

func TestService_UnbanUser_NotBanned(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, "user-1").Return(&domain.User{ID: "user-1"}, nil)

	service := NewService(users, new(mockCompanyRepo))

	_, err := service.UnbanUser(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrNotBanned)
}

func TestService_BanCompany_Success(t *testing.T) {
	companies := new(mockCompanyRepo)
	companies.On("GetByID", mock.Anything, "company-1").Return(&domain.Company{ID: "company-1"}, nil)
	companies.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(new(mockUserRepo), companies)

	result, err := service.BanCompany(context.Background(), "company-1", BanRequest{Reason: "fake listings"})

	assert.NoError(t, err)
	assert.True(t, result.IsBanned)
	assert.Equal(t, []string{"fake listings"}, result.BanReason)
	companies.AssertExpectations(t)
}

func TestService_UnbanCompany_NotFound(t *testing.T) {
	companies := new(mockCompanyRepo)
	companies.On("GetByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(new(mockUserRepo), companies)

	_, err := service.UnbanCompany(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrPrincipalNotFound)
}
