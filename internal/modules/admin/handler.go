package admin

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"classifieds/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires ban management under the admin-only group.
func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.PUT("/user/:id/ban", h.BanUser)
	admin.PUT("/user/:id/unban", h.UnbanUser)
	admin.PUT("/company/:id/ban", h.BanCompany)
	admin.PUT("/company/:id/unban", h.UnbanCompany)
}

func (h *Handler) BanUser(c *gin.Context) {
	h.ban(c, h.service.BanUser)
}

func (h *Handler) BanCompany(c *gin.Context) {
	h.ban(c, h.service.BanCompany)
}

func (h *Handler) UnbanUser(c *gin.Context) {
	h.unban(c, h.service.UnbanUser)
}

func (h *Handler) UnbanCompany(c *gin.Context) {
	h.unban(c, h.service.UnbanCompany)
}

func (h *Handler) ban(c *gin.Context, action func(context.Context, string, BanRequest) (*BanResult, error)) {
	var req BanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	result, err := action(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeBanError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Ban applied",
		"ban":     result,
	})
}

func (h *Handler) unban(c *gin.Context, action func(context.Context, string) (*BanResult, error)) {
	result, err := action(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeBanError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Ban lifted",
		"ban":     result,
	})
}

func (h *Handler) writeBanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPrincipalNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Principal not found")
	case errors.Is(err, ErrAlreadyBanned):
		response.Error(c, http.StatusConflict, "ALREADY_BANNED", "Principal is already banned")
	case errors.Is(err, ErrNotBanned):
		response.Error(c, http.StatusConflict, "NOT_BANNED", "Principal is not banned")
	default:
		response.Error(c, http.StatusInternalServerError, "BAN_FAILED", "Failed to update ban state")
	}
}
