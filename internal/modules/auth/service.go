package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"classifieds/internal/domain"
	"classifieds/internal/pkg/token"
)

// Service verifies credentials and issues the access/refresh token pair.
type Service struct {
	users     UserReaderInterface
	companies CompanyReaderInterface
	codec     *token.Codec
}

type LoginResult struct {
	Principal    domain.Principal
	AccessToken  string
	RefreshToken string
}

func NewService(users UserReaderInterface, companies CompanyReaderInterface, codec *token.Codec) *Service {
	return &Service{
		users:     users,
		companies: companies,
		codec:     codec,
	}
}

// VerifyCredentials resolves an email against the user store first and the
// company store second, then compares the password against the stored bcrypt
// hash. Read-only: no lockout counters, no side effects.
func (s *Service) VerifyCredentials(ctx context.Context, email, password string) (domain.Principal, error) {
	email = strings.TrimSpace(email)

	var principal domain.Principal

	user, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		principal = domain.UserPrincipal(user)
	case errors.Is(err, gorm.ErrRecordNotFound):
		company, cErr := s.companies.GetByEmail(ctx, email)
		if cErr != nil {
			if errors.Is(cErr, gorm.ErrRecordNotFound) {
				return domain.Principal{}, ErrEmailNotFound
			}
			return domain.Principal{}, cErr
		}
		principal = domain.CompanyPrincipal(company)
	default:
		return domain.Principal{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(principal.PasswordHash()), []byte(password)); err != nil {
		return domain.Principal{}, ErrInvalidCredentials
	}

	return principal, nil
}

// Login runs the verifier and signs both tokens with the same payload shape.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	principal, err := s.VerifyCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	payload := token.PayloadFor(principal)

	accessToken, err := s.codec.SignAccess(payload)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.codec.SignRefresh(payload)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Principal:    principal,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
