package admin

import "time"

type BanRequest struct {
	Reason  string     `json:"reason" binding:"required,min=3,max=255"`
	EndDate *time.Time `json:"end_date,omitempty"`
}

// BanResult echoes the ban state written to the store.
type BanResult struct {
	ID         string     `json:"id"`
	IsBanned   bool       `json:"is_banned"`
	BanReason  []string   `json:"ban_reason"`
	BanEndDate *time.Time `json:"ban_end_date,omitempty"`
	BanCount   int        `json:"ban_count,omitempty"`
}
