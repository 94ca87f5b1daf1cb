package auth

import "time"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type SessionResponse struct {
	Message    string     `json:"message"`
	Username   string     `json:"username"`
	ID         string     `json:"id"`
	BanEndDate *time.Time `json:"ban_end_date"`
}
