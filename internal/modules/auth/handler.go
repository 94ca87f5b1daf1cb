package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"classifieds/internal/pkg/response"
)

// Handler owns the /api/auth boundary: login and the session check every
// other page relies on.
type Handler struct {
	service  *Service
	sessions *SessionController
	cookies  *CookieWriter
}

func NewHandler(service *Service, sessions *SessionController, cookies *CookieWriter) *Handler {
	return &Handler{
		service:  service,
		sessions: sessions,
		cookies:  cookies,
	}
}

func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/auth", h.Login)
	api.GET("/auth", h.CheckSession)
	api.DELETE("/auth", h.Logout)
}

// Login authenticates a user or company by email/password and sets both
// session cookies. Unknown email and wrong password map to different codes
// (404 vs 401); the frontend relies on the distinction.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailNotFound):
			response.Error(c, http.StatusNotFound, "EMAIL_NOT_FOUND", "Email not found")
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Incorrect password")
		default:
			response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Error during login")
		}
		return
	}

	h.cookies.SetAccess(c, result.AccessToken)
	h.cookies.SetRefresh(c, result.RefreshToken)

	response.Success(c, http.StatusOK, gin.H{
		"message": "Login successful",
	})
}

// CheckSession delegates to the session controller. When the controller
// refreshed, the new access token goes out as a cookie on this response.
func (h *Handler) CheckSession(c *gin.Context) {
	accessToken, _ := c.Cookie(AccessCookieName)
	refreshToken, _ := c.Cookie(RefreshCookieName)

	outcome := h.sessions.CheckSession(accessToken, refreshToken)
	if !outcome.Authenticated {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	if outcome.Refreshed {
		h.cookies.SetAccess(c, outcome.NewAccessToken)
	}

	message := "User authenticated"
	if outcome.Refreshed {
		message = "Token successfully refreshed"
	}

	response.Success(c, http.StatusOK, SessionResponse{
		Message:    message,
		Username:   outcome.Identity.Username,
		ID:         outcome.Identity.PrincipalID,
		BanEndDate: outcome.Identity.BanEndDate,
	})
}

// Logout clears both cookies. Tokens themselves are stateless; nothing to
// revoke server-side.
func (h *Handler) Logout(c *gin.Context) {
	h.cookies.Clear(c)
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}
