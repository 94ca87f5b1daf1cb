package account

import (
	"time"

	"classifieds/internal/domain"
)

type RegisterUserRequest struct {
	Username  string     `json:"username" binding:"required,min=3,max=30"`
	Password  string     `json:"password" binding:"required,min=6"`
	FirstName string     `json:"first_name" binding:"required,min=2,max=50"`
	LastName  string     `json:"last_name" binding:"required,min=2,max=50"`
	Email     string     `json:"email" binding:"required,email"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	City      string     `json:"city" binding:"required,min=3,max=100"`
	Country   string     `json:"country" binding:"required,iso3166_1_alpha2"`
}

type RegisterCompanyRequest struct {
	CompanyName   string     `json:"company_name" binding:"required,min=3,max=30"`
	Password      string     `json:"password" binding:"required,min=6"`
	Email         string     `json:"email" binding:"required,email"`
	CompanyNumber string     `json:"company_number" binding:"required,min=3,max=30"`
	BirthDate     *time.Time `json:"birth_date,omitempty"`
	City          string     `json:"city" binding:"required,min=3,max=100"`
	Country       string     `json:"country" binding:"required,iso3166_1_alpha2"`
	Street        string     `json:"street" binding:"required,min=3,max=255"`
}

// SearchResult merges both stores into one type-tagged row for the admin UI.
type SearchResult struct {
	Type          domain.EntityType `json:"type"`
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	City          string            `json:"city"`
	Country       string            `json:"country"`
	Street        string            `json:"street,omitempty"`
	CompanyNumber string            `json:"company_number,omitempty"`
	IsBanned      bool              `json:"is_banned"`
	BanReason     []string          `json:"ban_reason,omitempty"`
	BanEndDate    *time.Time        `json:"ban_end_date,omitempty"`
	BanCount      int               `json:"ban_count,omitempty"`
}
