package domain

import "time"

// EntityType tags which store a principal came from. The two values end up
// inside signed tokens, so they must stay stable.
type EntityType string

const (
	EntityUser    EntityType = "user"
	EntityCompany EntityType = "company"
)

// Principal is the union of the two account variants that can authenticate.
// Exactly one of User/Company is non-nil, matching Entity.
type Principal struct {
	Entity  EntityType
	User    *User
	Company *Company
}

func UserPrincipal(u *User) Principal {
	return Principal{Entity: EntityUser, User: u}
}

func CompanyPrincipal(c *Company) Principal {
	return Principal{Entity: EntityCompany, Company: c}
}

func (p Principal) ID() string {
	if p.Entity == EntityCompany {
		return p.Company.ID
	}
	return p.User.ID
}

// DisplayName is the username for users and the registered company name for
// companies. It is what ends up in the token's username claim.
func (p Principal) DisplayName() string {
	if p.Entity == EntityCompany {
		return p.Company.CompanyName
	}
	return p.User.Username
}

func (p Principal) Email() string {
	if p.Entity == EntityCompany {
		return p.Company.Email
	}
	return p.User.Email
}

func (p Principal) PasswordHash() string {
	if p.Entity == EntityCompany {
		return p.Company.PasswordHash
	}
	return p.User.PasswordHash
}

func (p Principal) Role() Role {
	if p.Entity == EntityCompany {
		return p.Company.Role
	}
	return p.User.Role
}

func (p Principal) IsBanned() bool {
	if p.Entity == EntityCompany {
		return p.Company.IsBanned
	}
	return p.User.IsBanned
}

func (p Principal) BanReason() []string {
	if p.Entity == EntityCompany {
		return p.Company.BanReason
	}
	return p.User.BanReason
}

func (p Principal) BanEndDate() *time.Time {
	if p.Entity == EntityCompany {
		return p.Company.BanEndDate
	}
	return p.User.BanEndDate
}
