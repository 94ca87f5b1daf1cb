package account

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"classifieds/internal/domain"
	"classifieds/internal/repository"
)

// Service registers principals and serves the admin search. Email uniqueness
// is enforced across BOTH stores: login resolution tries users first and
// falls back to companies, so a shared email would shadow the company.
type Service struct {
	users     UserRepositoryInterface
	companies CompanyRepositoryInterface
}

func NewService(users UserRepositoryInterface, companies CompanyRepositoryInterface) *Service {
	return &Service{users: users, companies: companies}
}

func (s *Service) RegisterUser(ctx context.Context, req RegisterUserRequest) (*domain.User, error) {
	if err := s.validateEmailUnique(ctx, req.Email); err != nil {
		return nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     strings.TrimSpace(req.Username),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
		Role:         domain.RoleMember,
		Active:       true,
		BirthDate:    req.BirthDate,
		City:         req.City,
		Country:      req.Country,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) RegisterCompany(ctx context.Context, req RegisterCompanyRequest) (*domain.Company, error) {
	if err := s.validateEmailUnique(ctx, req.Email); err != nil {
		return nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	company := &domain.Company{
		ID:            uuid.NewString(),
		CompanyName:   strings.TrimSpace(req.CompanyName),
		Email:         strings.TrimSpace(req.Email),
		PasswordHash:  hash,
		CompanyNumber: strings.TrimSpace(req.CompanyNumber),
		Role:          domain.RoleMember,
		Active:        true,
		BirthDate:     req.BirthDate,
		City:          req.City,
		Country:       req.Country,
		Street:        req.Street,
	}

	if err := s.companies.Create(ctx, company); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	company.PasswordHash = ""
	return company, nil
}

func (s *Service) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	companies, err := s.companies.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range companies {
		companies[i].PasswordHash = ""
	}
	return companies, nil
}

// Search runs the same prefix/ban filter over users and companies and merges
// the results, users first, as the admin page expects.
func (s *Service) Search(ctx context.Context, namePrefix string, isBanned *bool) ([]SearchResult, error) {
	if namePrefix == "" && isBanned == nil {
		return nil, ErrNoSearchCriteria
	}

	users, err := s.users.Search(ctx, namePrefix, isBanned)
	if err != nil {
		return nil, err
	}
	companies, err := s.companies.Search(ctx, namePrefix, isBanned)
	if err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(users)+len(companies))
	for _, u := range users {
		results = append(results, SearchResult{
			Type:       domain.EntityUser,
			ID:         u.ID,
			Name:       u.Username,
			Email:      u.Email,
			City:       u.City,
			Country:    u.Country,
			IsBanned:   u.IsBanned,
			BanReason:  u.BanReason,
			BanEndDate: u.BanEndDate,
			BanCount:   u.BanCount,
		})
	}
	for _, comp := range companies {
		results = append(results, SearchResult{
			Type:          domain.EntityCompany,
			ID:            comp.ID,
			Name:          comp.CompanyName,
			Email:         comp.Email,
			City:          comp.City,
			Country:       comp.Country,
			Street:        comp.Street,
			CompanyNumber: comp.CompanyNumber,
			IsBanned:      comp.IsBanned,
			BanReason:     comp.BanReason,
			BanEndDate:    comp.BanEndDate,
		})
	}

	if len(results) == 0 {
		return nil, ErrNoResults
	}
	return results, nil
}

func (s *Service) validateEmailUnique(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)

	if exists, err := s.users.ExistsByEmail(ctx, email); err != nil {
		return err
	} else if exists {
		return ErrEmailAlreadyExists
	}

	if exists, err := s.companies.ExistsByEmail(ctx, email); err != nil {
		return err
	} else if exists {
		return ErrEmailAlreadyExists
	}

	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
