package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "agrolink/internal/errors"
	"agrolink/internal/models"
)

// cropTypeService handles crop reference data.
type cropTypeService struct {
	db *gorm.DB
}

// NewCropTypeService creates a new CropTypeServicer.
func NewCropTypeService(db *gorm.DB) CropTypeServicer {
	return &cropTypeService{db: db}
}

// ListCropTypes returns all crop types in stored order.
func (s *cropTypeService) ListCropTypes() ([]models.CropType, error) {
	var crops []models.CropType
	if err := s.db.Order("id").Find(&crops).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return crops, nil
}

// GetCropTypeByID retrieves a crop type by ID
func (s *cropTypeService) GetCropTypeByID(id uint) (*models.CropType, error) {
	var crop models.CropType
	if err := s.db.First(&crop, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnknownCropType
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &crop, nil
}

// GetCropTypeByName retrieves a crop type by its exact name.
func (s *cropTypeService) GetCropTypeByName(name string) (*models.CropType, error) {
	var crop models.CropType
	if err := s.db.Where("name = ?", name).First(&crop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnknownCropType
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &crop, nil
}

// CreateCropType adds a new crop type with a unique name.
func (s *cropTypeService) CreateCropType(name, category string) (*models.CropType, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "crop type name is required")
	}

	var count int64
	if err := s.db.Model(&models.CropType{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateCropType
	}

	crop := &models.CropType{Name: name, Category: category}
	if err := s.db.Create(crop).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return crop, nil
}
