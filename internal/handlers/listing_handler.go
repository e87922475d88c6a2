package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "agrolink/internal/errors"
	"agrolink/internal/models"
	"agrolink/internal/pagination"
	"agrolink/internal/services"
)

// ListingHandler handles listing-related requests
type ListingHandler struct {
	listingService services.ListingServicer
}

// NewListingHandler creates a new ListingHandler
func NewListingHandler(listingService services.ListingServicer) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

// CreateListingRequest represents the request payload for creating a listing
type CreateListingRequest struct {
	CropTypeID uint    `json:"crop_type_id" binding:"required"`
	QuantityKg float64 `json:"quantity_kg" binding:"required,gt=0"`
	PricePerKg float64 `json:"price_per_kg" binding:"required,gt=0"`
	Quality    string  `json:"quality" binding:"required,quality_grade"`
	Location   string  `json:"location" binding:"required,max=100"`
}

// UpdateListingRequest represents the request payload for updating a listing
type UpdateListingRequest struct {
	QuantityKg *float64 `json:"quantity_kg" binding:"omitempty,gt=0"`
	PricePerKg *float64 `json:"price_per_kg" binding:"omitempty,gt=0"`
}

// CreateListing creates a new sell offer
// @Summary     Create a listing
// @Description Create a new sell offer for a crop
// @Tags        listings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateListingRequest true "Listing details"
// @Success     201 {object} models.Listing "Listing created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /listings [post]
func (h *ListingHandler) CreateListing(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	listing, err := h.listingService.CreateListing(userID, req.CropTypeID, req.QuantityKg, req.PricePerKg, models.QualityGrade(req.Quality), req.Location)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"listing": listing})
}

// ListListings returns active listings or the caller's own listings
// @Summary     List listings
// @Description List active listings enriched with crop, seller, and bid data. Use mine=true for the caller's own listings.
// @Tags        listings
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Param       mine query bool false "Only the caller's listings"
// @Success     200 {object} pagination.PageResponse[services.ListingSummary] "Listings"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /listings [get]
func (h *ListingHandler) ListListings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if c.Query("mine") == "true" {
		result, err := h.listingService.ListSellerListings(userID, page)
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
		return
	}

	result, err := h.listingService.ListActiveListings(page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetListingByID returns a single enriched listing
// @Summary     Get a listing
// @Description Get a listing by ID with crop, seller, and bid count
// @Tags        listings
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Listing ID"
// @Success     200 {object} services.ListingSummary "Listing"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /listings/{id} [get]
func (h *ListingHandler) GetListingByID(c *gin.Context) {
	listingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	listing, err := h.listingService.GetListingByID(listingID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"listing": listing})
}

// UpdateListing updates a listing's quantity or price
// @Summary     Update a listing
// @Description Update the quantity or price of an active listing you own
// @Tags        listings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Listing ID"
// @Param       request body UpdateListingRequest true "Fields to update"
// @Success     200 {object} models.Listing "Listing updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Not the owner"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /listings/{id} [put]
func (h *ListingHandler) UpdateListing(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	listingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	listing, err := h.listingService.UpdateListing(userID, listingID, req.QuantityKg, req.PricePerKg)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"listing": listing})
}

// CancelListing cancels an active listing
// @Summary     Cancel a listing
// @Description Cancel an active listing you own
// @Tags        listings
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Listing ID"
// @Success     200 {object} map[string]string "Listing cancelled"
// @Failure     403 {object} ErrorResponse "Not the owner"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /listings/{id}/cancel [post]
func (h *ListingHandler) CancelListing(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	listingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.listingService.CancelListing(userID, listingID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "listing cancelled"})
}
