package account

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"classifieds/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires registration on the public group and the principal
// search on the admin group.
func (h *Handler) RegisterRoutes(public, admin *gin.RouterGroup) {
	if public != nil {
		public.POST("/user", h.RegisterUser)
		public.POST("/company", h.RegisterCompany)
		public.GET("/company", h.ListCompanies)
	}
	if admin != nil {
		admin.GET("/search", h.Search)
	}
}

func (h *Handler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	user, err := h.service.RegisterUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "Email already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register user")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
	})
}

func (h *Handler) RegisterCompany(c *gin.Context) {
	var req RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	company, err := h.service.RegisterCompany(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "Email already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register company")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Company registered successfully",
		"company": company,
	})
}

func (h *Handler) ListCompanies(c *gin.Context) {
	companies, err := h.service.ListCompanies(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to fetch companies")
		return
	}
	response.Success(c, http.StatusOK, companies)
}

func (h *Handler) Search(c *gin.Context) {
	namePrefix := strings.TrimSpace(c.Query("username"))

	var isBanned *bool
	if raw := c.Query("is_banned"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "is_banned must be a boolean")
			return
		}
		isBanned = &v
	}

	results, err := h.service.Search(c.Request.Context(), namePrefix, isBanned)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoSearchCriteria):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Provide username or is_banned")
		case errors.Is(err, ErrNoResults):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "No results found")
		default:
			response.Error(c, http.StatusInternalServerError, "SEARCH_FAILED", "Failed to search")
		}
		return
	}

	response.Success(c, http.StatusOK, results)
}
