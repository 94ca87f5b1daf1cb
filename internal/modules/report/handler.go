package report

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"classifieds/internal/pkg/response"
	"classifieds/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the moderation listing (admin) and report creation
// (any authenticated principal). Both groups already carry the session
// middleware; the admin group additionally requires the admin role.
func (h *Handler) RegisterRoutes(protected, admin *gin.RouterGroup) {
	if protected != nil {
		protected.POST("/report", h.Create)
	}
	if admin != nil {
		admin.GET("/report", h.ListGrouped)
		admin.PUT("/report/:id/approve", h.Approve)
		admin.PUT("/report/:id/reject", h.Reject)
		admin.DELETE("/report/:id", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if fieldErrors := validator.Validate(&req); fieldErrors != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid report fields", fieldErrors)
		return
	}

	rep, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrReasonRequired),
			errors.Is(err, ErrInvalidStatus),
			errors.Is(err, ErrInvalidReporter),
			errors.Is(err, ErrMultipleOfferIDs):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "REPORT_FAILED", "Failed to create report")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "offer reported with success",
		"report":  rep,
	})
}

func (h *Handler) ListGrouped(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	grouped, err := h.service.GroupedReports(c.Request.Context(), page, pageSize)
	if err != nil {
		if errors.Is(err, ErrNoReports) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "No reports found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to fetch reports")
		return
	}

	response.Success(c, http.StatusOK, grouped)
}

func (h *Handler) Approve(c *gin.Context) {
	h.moderate(c, h.service.Approve, "Report approved")
}

func (h *Handler) Reject(c *gin.Context) {
	h.moderate(c, h.service.Reject, "Report rejected")
}

func (h *Handler) Delete(c *gin.Context) {
	h.moderate(c, h.service.Delete, "Report deleted")
}

func (h *Handler) moderate(c *gin.Context, action func(context.Context, int64) error, message string) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid report ID")
		return
	}

	if err := action(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrReportNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Report not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "MODERATION_FAILED", "Failed to update report")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": message})
}
