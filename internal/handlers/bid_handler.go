package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "agrolink/internal/errors"
	"agrolink/internal/services"
)

// BidHandler handles bid-related requests
type BidHandler struct {
	bidService services.BidServicer
}

// NewBidHandler creates a new BidHandler
func NewBidHandler(bidService services.BidServicer) *BidHandler {
	return &BidHandler{bidService: bidService}
}

// PlaceBidRequest represents the request payload for placing a bid
type PlaceBidRequest struct {
	AmountPerKg float64 `json:"amount_per_kg" binding:"required,gt=0"`
	QuantityKg  float64 `json:"quantity_kg" binding:"required,gt=0"`
}

// PlaceBid places a bid against a listing
// @Summary     Place a bid
// @Description Place a bid against an active listing
// @Tags        bids
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Listing ID"
// @Param       request body PlaceBidRequest true "Bid details"
// @Success     201 {object} models.Bid "Bid placed"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Listing not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /listings/{id}/bids [post]
func (h *BidHandler) PlaceBid(c *gin.Context) {
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

	var req PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	bid, err := h.bidService.PlaceBid(userID, listingID, req.AmountPerKg, req.QuantityKg)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"bid": bid})
}

// ListBids returns all bids for a listing
// @Summary     List bids
// @Description List all bids against a listing, newest first
// @Tags        bids
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Listing ID"
// @Success     200 {array} models.Bid "Bids"
// @Failure     404 {object} ErrorResponse "Listing not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /listings/{id}/bids [get]
func (h *BidHandler) ListBids(c *gin.Context) {
	listingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	bids, err := h.bidService.ListBidsForListing(listingID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bids": bids})
}

// AcceptBid accepts a pending bid
// @Summary     Accept a bid
// @Description Accept a pending bid on your listing; rejects the rest and marks the listing sold
// @Tags        bids
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Bid ID"
// @Success     200 {object} models.Bid "Bid accepted"
// @Failure     400 {object} ErrorResponse "Bid already resolved"
// @Failure     403 {object} ErrorResponse "Not the listing owner"
// @Failure     404 {object} ErrorResponse "Bid not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bids/{id}/accept [post]
func (h *BidHandler) AcceptBid(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	bidID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	bid, err := h.bidService.AcceptBid(userID, bidID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bid": bid})
}

// RejectBid rejects a pending bid
// @Summary     Reject a bid
// @Description Reject a pending bid on your listing
// @Tags        bids
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Bid ID"
// @Success     200 {object} models.Bid "Bid rejected"
// @Failure     400 {object} ErrorResponse "Bid already resolved"
// @Failure     403 {object} ErrorResponse "Not the listing owner"
// @Failure     404 {object} ErrorResponse "Bid not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bids/{id}/reject [post]
func (h *BidHandler) RejectBid(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	bidID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	bid, err := h.bidService.RejectBid(userID, bidID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bid": bid})
}
