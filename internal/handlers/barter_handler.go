package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "agrolink/internal/errors"
	"agrolink/internal/pagination"
	"agrolink/internal/services"
)

// BarterHandler handles barter offer requests
type BarterHandler struct {
	barterService services.BarterServicer
}

// NewBarterHandler creates a new BarterHandler
func NewBarterHandler(barterService services.BarterServicer) *BarterHandler {
	return &BarterHandler{barterService: barterService}
}

// ProposeBarterRequest represents the request payload for proposing a barter
type ProposeBarterRequest struct {
	ReceiverID          uint    `json:"receiver_id" binding:"required"`
	OfferedCropID       uint    `json:"offered_crop_id" binding:"required"`
	OfferedQuantityKg   float64 `json:"offered_quantity_kg" binding:"required,gt=0"`
	RequestedCropID     uint    `json:"requested_crop_id" binding:"required"`
	RequestedQuantityKg float64 `json:"requested_quantity_kg" binding:"required,gt=0"`
	Note                string  `json:"note" binding:"max=500"`
}

// RespondBarterRequest represents the request payload for responding to a barter
type RespondBarterRequest struct {
	Response string `json:"response" binding:"required,offer_response"`
}

// ProposeBarter creates a new barter offer
// @Summary     Propose a barter
// @Description Propose a crop-for-crop exchange with another user
// @Tags        barter
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ProposeBarterRequest true "Barter offer details"
// @Success     201 {object} models.BarterOffer "Offer created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Receiver or crop not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /barter-offers [post]
func (h *BarterHandler) ProposeBarter(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ProposeBarterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	offer, err := h.barterService.ProposeBarter(userID, req.ReceiverID, req.OfferedCropID, req.RequestedCropID, req.OfferedQuantityKg, req.RequestedQuantityKg, req.Note)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"barter_offer": offer})
}

// ListBarterOffers returns the caller's barter offers
// @Summary     List barter offers
// @Description List barter offers the caller proposed or received
// @Tags        barter
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.BarterOffer] "Offers"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /barter-offers [get]
func (h *BarterHandler) ListBarterOffers(c *gin.Context) {
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

	result, err := h.barterService.ListUserBarterOffers(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RespondToBarter accepts or rejects a pending offer
// @Summary     Respond to a barter offer
// @Description Accept or reject a pending barter offer you received
// @Tags        barter
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Offer ID"
// @Param       request body RespondBarterRequest true "accepted or rejected"
// @Success     200 {object} models.BarterOffer "Offer resolved"
// @Failure     400 {object} ErrorResponse "Invalid input or already resolved"
// @Failure     403 {object} ErrorResponse "Not the receiver"
// @Failure     404 {object} ErrorResponse "Offer not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /barter-offers/{id}/respond [post]
func (h *BarterHandler) RespondToBarter(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	offerID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RespondBarterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	offer, err := h.barterService.RespondToBarter(userID, offerID, req.Response == "accepted")
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"barter_offer": offer})
}
