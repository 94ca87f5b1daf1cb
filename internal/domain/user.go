package domain

import "time"

type Role string

const (
	RoleMember    Role = "member"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

type User struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        string     `json:"email" gorm:"uniqueIndex"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	Active       bool       `json:"active"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	City         string     `json:"city"`
	Country      string     `json:"country"`
	IsBanned     bool       `json:"is_banned"`
	BanReason    []string   `json:"ban_reason,omitempty" gorm:"serializer:json"`
	BanEndDate   *time.Time `json:"ban_end_date,omitempty"`
	BanCount     int        `json:"ban_count"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (User) TableName() string { return "users" }
