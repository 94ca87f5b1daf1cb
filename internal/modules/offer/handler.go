package offer

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"classifieds/internal/domain"
	"classifieds/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the public homepage listings and single-offer lookup,
// and offer creation for authenticated principals.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/last-vehicle-offers", h.LastVehicleOffers)
		public.GET("/last-estate-offers", h.LastRealEstateOffers)
		public.GET("/last-commercial-offers", h.LastCommercialOffers)
		public.GET("/offer/:kind/:id", h.GetByKind)
	}
	if protected != nil {
		protected.POST("/offer/vehicle", h.CreateVehicle)
		protected.POST("/offer/real-estate", h.CreateRealEstate)
		protected.POST("/offer/commercial", h.CreateCommercial)
	}
}

func (h *Handler) CreateVehicle(c *gin.Context) {
	var req CreateVehicleOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	ownerID, ownerType := ownerFromContext(c)
	o, err := h.service.CreateVehicle(c.Request.Context(), req, ownerID, ownerType)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "OFFER_FAILED", "Failed to create offer")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Offer created successfully",
		"offer":   o,
	})
}

func (h *Handler) CreateRealEstate(c *gin.Context) {
	var req CreateRealEstateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	ownerID, ownerType := ownerFromContext(c)
	o, err := h.service.CreateRealEstate(c.Request.Context(), req, ownerID, ownerType)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "OFFER_FAILED", "Failed to create offer")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Offer created successfully",
		"offer":   o,
	})
}

func (h *Handler) CreateCommercial(c *gin.Context) {
	var req CreateCommercialOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	ownerID, ownerType := ownerFromContext(c)
	o, err := h.service.CreateCommercial(c.Request.Context(), req, ownerID, ownerType)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "OFFER_FAILED", "Failed to create offer")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Offer created successfully",
		"offer":   o,
	})
}

func (h *Handler) LastVehicleOffers(c *gin.Context) {
	offers, err := h.service.LastVehicleOffers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to fetch offers")
		return
	}
	response.Success(c, http.StatusOK, offers)
}

func (h *Handler) LastRealEstateOffers(c *gin.Context) {
	offers, err := h.service.LastRealEstateOffers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to fetch offers")
		return
	}
	response.Success(c, http.StatusOK, offers)
}

func (h *Handler) LastCommercialOffers(c *gin.Context) {
	offers, err := h.service.LastCommercialOffers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to fetch offers")
		return
	}
	response.Success(c, http.StatusOK, offers)
}

func (h *Handler) GetByKind(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid offer ID")
		return
	}

	o, err := h.service.GetByKind(c.Request.Context(), c.Param("kind"), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidKind):
			response.Error(c, http.StatusBadRequest, "INVALID_KIND", "Unknown offer kind")
		case errors.Is(err, ErrOfferNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Offer not found")
		default:
			response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch offer")
		}
		return
	}

	response.Success(c, http.StatusOK, o)
}

func ownerFromContext(c *gin.Context) (string, domain.EntityType) {
	return c.GetString("principal_id"), domain.EntityType(c.GetString("entity"))
}
