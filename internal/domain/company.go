package domain

import "time"

// Company is the business-account variant of a principal. It shares the
// credential and ban fields with User so both can flow through the same
// session protocol.
type Company struct {
	ID            string     `json:"id" gorm:"primaryKey"`
	CompanyName   string     `json:"company_name"`
	Email         string     `json:"email" gorm:"uniqueIndex"`
	PasswordHash  string     `json:"-"`
	CompanyNumber string     `json:"company_number"`
	Role          Role       `json:"role"`
	Active        bool       `json:"active"`
	BirthDate     *time.Time `json:"birth_date,omitempty"`
	City          string     `json:"city"`
	Country       string     `json:"country"`
	Street        string     `json:"street"`
	IsBanned      bool       `json:"is_banned"`
	BanReason     []string   `json:"ban_reason,omitempty" gorm:"serializer:json"`
	BanEndDate    *time.Time `json:"ban_end_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (Company) TableName() string { return "companies" }
