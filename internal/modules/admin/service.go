package admin

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Service struct {
	users     UserRepositoryInterface
	companies CompanyRepositoryInterface
}

func NewService(users UserRepositoryInterface, companies CompanyRepositoryInterface) *Service {
	return &Service{users: users, companies: companies}
}

// BanUser appends the reason to the ban history, sets the optional end date
// and bumps the strike counter. A permanent ban has no end date.
func (s *Service) BanUser(ctx context.Context, id string, req BanRequest) (*BanResult, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPrincipalNotFound
		}
		return nil, err
	}
	if user.IsBanned {
		return nil, ErrAlreadyBanned
	}

	user.IsBanned = true
	user.BanReason = append(user.BanReason, req.Reason)
	user.BanEndDate = req.EndDate
	user.BanCount++

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return &BanResult{
		ID:         user.ID,
		IsBanned:   user.IsBanned,
		BanReason:  user.BanReason,
		BanEndDate: user.BanEndDate,
		BanCount:   user.BanCount,
	}, nil
}

// UnbanUser lifts the ban but keeps the reason history and strike counter.
func (s *Service) UnbanUser(ctx context.Context, id string) (*BanResult, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPrincipalNotFound
		}
		return nil, err
	}
	if !user.IsBanned {
		return nil, ErrNotBanned
	}

	user.IsBanned = false
	user.BanEndDate = nil

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return &BanResult{
		ID:        user.ID,
		IsBanned:  user.IsBanned,
		BanReason: user.BanReason,
		BanCount:  user.BanCount,
	}, nil
}

func (s *Service) BanCompany(ctx context.Context, id string, req BanRequest) (*BanResult, error) {
	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPrincipalNotFound
		}
		return nil, err
	}
	if company.IsBanned {
		return nil, ErrAlreadyBanned
	}

	company.IsBanned = true
	company.BanReason = append(company.BanReason, req.Reason)
	company.BanEndDate = req.EndDate

	if err := s.companies.Update(ctx, company); err != nil {
		return nil, err
	}

	return &BanResult{
		ID:         company.ID,
		IsBanned:   company.IsBanned,
		BanReason:  company.BanReason,
		BanEndDate: company.BanEndDate,
	}, nil
}

func (s *Service) UnbanCompany(ctx context.Context, id string) (*BanResult, error) {
	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPrincipalNotFound
		}
		return nil, err
	}
	if !company.IsBanned {
		return nil, ErrNotBanned
	}

	company.IsBanned = false
	company.BanEndDate = nil

	if err := s.companies.Update(ctx, company); err != nil {
		return nil, err
	}

	return &BanResult{
		ID:        company.ID,
		IsBanned:  company.IsBanned,
		BanReason: company.BanReason,
	}, nil
}
