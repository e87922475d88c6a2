package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "agrolink/internal/errors"
	"agrolink/internal/models"
	"agrolink/internal/pagination"
)

// listingService handles listing-related business logic.
type listingService struct {
	db        *gorm.DB
	cropTypes CropTypeServicer
}

// NewListingService creates a new ListingServicer.
func NewListingService(db *gorm.DB, cropTypes CropTypeServicer) ListingServicer {
	return &listingService{db: db, cropTypes: cropTypes}
}

// CreateListing creates a new sell offer.
func (s *listingService) CreateListing(sellerID, cropTypeID uint, quantityKg, pricePerKg float64, quality models.QualityGrade, location string) (*models.Listing, error) {
	if quantityKg <= 0 || pricePerKg <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "quantity and price must be positive")
	}
	if location == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "location is required")
	}

	if _, err := s.cropTypes.GetCropTypeByID(cropTypeID); err != nil {
		return nil, err
	}

	listing := &models.Listing{
		SellerID:   sellerID,
		CropTypeID: cropTypeID,
		QuantityKg: quantityKg,
		PricePerKg: pricePerKg,
		Quality:    quality,
		Location:   location,
		Status:     models.ListingStatusActive,
	}

	if err := s.db.Create(listing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return listing, nil
}

// GetListingByID retrieves a single listing enriched with display data.
func (s *listingService) GetListingByID(listingID uint) (*ListingSummary, error) {
	var listing models.Listing
	if err := s.db.Preload("Seller").Preload("CropType").First(&listing, listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var bidCount int64
	if err := s.db.Model(&models.Bid{}).Where("listing_id = ?", listingID).Count(&bidCount).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return newListingSummary(listing, bidCount), nil
}

// ListActiveListings returns a paginated list of active listings enriched
// with crop type name, seller name, and bid count.
func (s *listingService) ListActiveListings(page pagination.PageRequest) (*pagination.PageResponse[ListingSummary], error) {
	page.Defaults()

	base := s.db.Model(&models.Listing{}).Where("status = ?", models.ListingStatusActive)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var listings []models.Listing
	if err := s.db.
		Where("status = ?", models.ListingStatusActive).
		Preload("Seller").Preload("CropType").
		Order("created_at DESC").
		Scopes(pagination.Paginate(page)).
		Find(&listings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	counts, err := s.bidCounts(listings)
	if err != nil {
		return nil, err
	}

	summaries := make([]ListingSummary, 0, len(listings))
	for _, l := range listings {
		summaries = append(summaries, *newListingSummary(l, counts[l.ID]))
	}

	result := pagination.NewPageResponse(summaries, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// ListSellerListings returns a paginated list of a seller's own listings.
func (s *listingService) ListSellerListings(sellerID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Listing], error) {
	page.Defaults()

	base := s.db.Model(&models.Listing{}).Where("seller_id = ?", sellerID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var listings []models.Listing
	if err := base.Preload("CropType").
		Order("created_at DESC").
		Scopes(pagination.Paginate(page)).
		Find(&listings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(listings, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// UpdateListing updates the mutable fields of a listing. Only the owner may
// update, and only while the listing is active.
func (s *listingService) UpdateListing(sellerID, listingID uint, quantityKg, pricePerKg *float64) (*models.Listing, error) {
	listing, err := s.ownedListing(sellerID, listingID)
	if err != nil {
		return nil, err
	}
	if listing.Status != models.ListingStatusActive {
		return nil, apperrors.ErrListingNotActive
	}

	updates := make(map[string]interface{})
	if quantityKg != nil {
		if *quantityKg <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "quantity must be positive")
		}
		updates["quantity_kg"] = *quantityKg
	}
	if pricePerKg != nil {
		if *pricePerKg <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "price must be positive")
		}
		updates["price_per_kg"] = *pricePerKg
	}

	if len(updates) > 0 {
		if err := s.db.Model(listing).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return listing, nil
}

// CancelListing marks an active listing as cancelled. Only the owner may
// cancel.
func (s *listingService) CancelListing(sellerID, listingID uint) error {
	listing, err := s.ownedListing(sellerID, listingID)
	if err != nil {
		return err
	}
	if listing.Status != models.ListingStatusActive {
		return apperrors.ErrListingNotActive
	}

	if err := s.db.Model(listing).Update("status", models.ListingStatusCancelled).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ownedListing fetches a listing and checks ownership.
func (s *listingService) ownedListing(sellerID, listingID uint) (*models.Listing, error) {
	var listing models.Listing
	if err := s.db.First(&listing, listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if listing.SellerID != sellerID {
		return nil, apperrors.ErrForbidden
	}
	return &listing, nil
}

// bidCounts returns bid counts grouped by listing ID for the given page of
// listings.
func (s *listingService) bidCounts(listings []models.Listing) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(listings))
	if len(listings) == 0 {
		return counts, nil
	}

	ids := make([]uint, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.ID)
	}

	type row struct {
		ListingID uint
		Count     int64
	}
	var rows []row
	if err := s.db.Model(&models.Bid{}).
		Select("listing_id, COUNT(*) as count").
		Where("listing_id IN ?", ids).
		Group("listing_id").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for _, r := range rows {
		counts[r.ListingID] = r.Count
	}
	return counts, nil
}

func newListingSummary(listing models.Listing, bidCount int64) *ListingSummary {
	return &ListingSummary{
		Listing:    listing,
		CropName:   listing.CropType.Name,
		SellerName: listing.Seller.Name,
		BidCount:   bidCount,
	}
}
