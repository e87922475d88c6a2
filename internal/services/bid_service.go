package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "agrolink/internal/errors"
	"agrolink/internal/models"
)

// bidService handles bid-related business logic.
type bidService struct {
	db *gorm.DB
}

// NewBidService creates a new BidServicer.
func NewBidService(db *gorm.DB) BidServicer {
	return &bidService{db: db}
}

// PlaceBid creates a pending bid against an active listing.
func (s *bidService) PlaceBid(buyerID, listingID uint, amountPerKg, quantityKg float64) (*models.Bid, error) {
	if amountPerKg <= 0 || quantityKg <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "bid amount and quantity must be positive")
	}

	var listing models.Listing
	if err := s.db.First(&listing, listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if listing.Status != models.ListingStatusActive {
		return nil, apperrors.ErrListingNotActive
	}
	if listing.SellerID == buyerID {
		return nil, apperrors.ErrOwnListingBid
	}
	if quantityKg > listing.QuantityKg {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "bid quantity exceeds listed quantity")
	}

	bid := &models.Bid{
		ListingID:   listingID,
		BuyerID:     buyerID,
		AmountPerKg: amountPerKg,
		QuantityKg:  quantityKg,
		Status:      models.BidStatusPending,
	}

	if err := s.db.Create(bid).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return bid, nil
}

// ListBidsForListing returns all bids against a listing, newest first.
func (s *bidService) ListBidsForListing(listingID uint) ([]models.Bid, error) {
	var listing models.Listing
	if err := s.db.First(&listing, listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var bids []models.Bid
	if err := s.db.Where("listing_id = ?", listingID).
		Preload("Buyer").
		Order("created_at DESC").
		Find(&bids).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return bids, nil
}

// AcceptBid accepts a pending bid. Only the listing's seller may accept.
// Accepting marks the listing sold and rejects the remaining pending bids.
func (s *bidService) AcceptBid(sellerID, bidID uint) (*models.Bid, error) {
	bid, listing, err := s.pendingBid(sellerID, bidID)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(bid).Update("status", models.BidStatusAccepted).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Bid{}).
			Where("listing_id = ? AND status = ?", listing.ID, models.BidStatusPending).
			Update("status", models.BidStatusRejected).Error; err != nil {
			return err
		}
		return tx.Model(listing).Update("status", models.ListingStatusSold).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return bid, nil
}

// RejectBid rejects a pending bid. Only the listing's seller may reject.
func (s *bidService) RejectBid(sellerID, bidID uint) (*models.Bid, error) {
	bid, _, err := s.pendingBid(sellerID, bidID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(bid).Update("status", models.BidStatusRejected).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return bid, nil
}

// pendingBid fetches a pending bid and its listing, verifying the caller
// owns the listing.
func (s *bidService) pendingBid(sellerID, bidID uint) (*models.Bid, *models.Listing, error) {
	var bid models.Bid
	if err := s.db.First(&bid, bidID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrBidNotFound
		}
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var listing models.Listing
	if err := s.db.First(&listing, bid.ListingID).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if listing.SellerID != sellerID {
		return nil, nil, apperrors.ErrForbidden
	}
	if bid.Status != models.BidStatusPending {
		return nil, nil, apperrors.ErrBidNotPending
	}

	return &bid, &listing, nil
}
