package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "agrolink/internal/errors"
	"agrolink/internal/services"
)

// CropTypeHandler handles crop reference data requests
type CropTypeHandler struct {
	cropTypeService     services.CropTypeServicer
	priceHistoryService services.PriceHistoryServicer
}

// NewCropTypeHandler creates a new CropTypeHandler
func NewCropTypeHandler(cropTypeService services.CropTypeServicer, priceHistoryService services.PriceHistoryServicer) *CropTypeHandler {
	return &CropTypeHandler{cropTypeService: cropTypeService, priceHistoryService: priceHistoryService}
}

// CreateCropTypeRequest represents the request payload for creating a crop type
type CreateCropTypeRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Category string `json:"category" binding:"max=100"`
}

// ListCropTypes returns all crop types
// @Summary     List crop types
// @Description List all crop types in stored order
// @Tags        crop-types
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.CropType "Crop types"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /crop-types [get]
func (h *CropTypeHandler) ListCropTypes(c *gin.Context) {
	crops, err := h.cropTypeService.ListCropTypes()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"crop_types": crops})
}

// CreateCropType adds a new crop type
// @Summary     Create a crop type
// @Description Add a new crop type to the reference data
// @Tags        crop-types
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateCropTypeRequest true "Crop type details"
// @Success     201 {object} models.CropType "Crop type created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate name"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /crop-types [post]
func (h *CropTypeHandler) CreateCropType(c *gin.Context) {
	var req CreateCropTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	crop, err := h.cropTypeService.CreateCropType(req.Name, req.Category)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"crop_type": crop})
}

// GetPriceHistory returns the price history series for a crop type
// @Summary     Get price history
// @Description Get the historical price observations for a crop type, newest first
// @Tags        crop-types
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Crop type ID"
// @Param       location query string false "Filter by exact location"
// @Success     200 {array} models.PriceHistory "Price history"
// @Failure     400 {object} ErrorResponse "Unknown crop type"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /crop-types/{id}/price-history [get]
func (h *CropTypeHandler) GetPriceHistory(c *gin.Context) {
	cropTypeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	entries, err := h.priceHistoryService.ListByCropType(cropTypeID, c.Query("location"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"price_history": entries})
}
