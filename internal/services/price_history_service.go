package services

import (
	"gorm.io/gorm"

	apperrors "agrolink/internal/errors"
	"agrolink/internal/models"
)

// priceHistoryService provides read access to the price history series.
type priceHistoryService struct {
	db        *gorm.DB
	cropTypes CropTypeServicer
}

// NewPriceHistoryService creates a new PriceHistoryServicer.
func NewPriceHistoryService(db *gorm.DB, cropTypes CropTypeServicer) PriceHistoryServicer {
	return &priceHistoryService{db: db, cropTypes: cropTypes}
}

// ListByCropType returns the history for a crop type, most recent first,
// optionally narrowed to a location.
func (s *priceHistoryService) ListByCropType(cropTypeID uint, location string) ([]models.PriceHistory, error) {
	if _, err := s.cropTypes.GetCropTypeByID(cropTypeID); err != nil {
		return nil, err
	}

	query := s.db.Where("crop_type_id = ?", cropTypeID)
	if location != "" {
		query = query.Where("location = ?", location)
	}

	var entries []models.PriceHistory
	if err := query.Order("recorded_date DESC").Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entries, nil
}
