package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "agrolink/internal/errors"
	"agrolink/internal/models"
	"agrolink/internal/pagination"
)

// barterService handles crop-for-crop exchange offers.
type barterService struct {
	db        *gorm.DB
	cropTypes CropTypeServicer
	users     UserServicer
}

// NewBarterService creates a new BarterServicer.
func NewBarterService(db *gorm.DB, cropTypes CropTypeServicer, users UserServicer) BarterServicer {
	return &barterService{db: db, cropTypes: cropTypes, users: users}
}

// ProposeBarter creates a pending barter offer between two users.
func (s *barterService) ProposeBarter(proposerID, receiverID, offeredCropID, requestedCropID uint, offeredQty, requestedQty float64, note string) (*models.BarterOffer, error) {
	if offeredQty <= 0 || requestedQty <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "quantities must be positive")
	}
	if proposerID == receiverID {
		return nil, apperrors.ErrSelfBarter
	}

	if _, err := s.users.GetUserByID(receiverID); err != nil {
		return nil, err
	}
	if _, err := s.cropTypes.GetCropTypeByID(offeredCropID); err != nil {
		return nil, err
	}
	if _, err := s.cropTypes.GetCropTypeByID(requestedCropID); err != nil {
		return nil, err
	}

	offer := &models.BarterOffer{
		ProposerID:          proposerID,
		ReceiverID:          receiverID,
		OfferedCropID:       offeredCropID,
		OfferedQuantityKg:   offeredQty,
		RequestedCropID:     requestedCropID,
		RequestedQuantityKg: requestedQty,
		Note:                note,
		Status:              models.BarterStatusPending,
	}

	if err := s.db.Create(offer).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return offer, nil
}

// ListUserBarterOffers returns offers the user proposed or received, newest
// first.
func (s *barterService) ListUserBarterOffers(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.BarterOffer], error) {
	page.Defaults()

	base := s.db.Model(&models.BarterOffer{}).Where("proposer_id = ? OR receiver_id = ?", userID, userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var offers []models.BarterOffer
	if err := base.
		Preload("Proposer").Preload("Receiver").
		Preload("OfferedCrop").Preload("RequestedCrop").
		Order("created_at DESC").
		Scopes(pagination.Paginate(page)).
		Find(&offers).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(offers, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// RespondToBarter accepts or rejects a pending offer. Only the receiver may
// respond.
func (s *barterService) RespondToBarter(receiverID, offerID uint, accept bool) (*models.BarterOffer, error) {
	var offer models.BarterOffer
	if err := s.db.First(&offer, offerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBarterOfferNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if offer.ReceiverID != receiverID {
		return nil, apperrors.ErrForbidden
	}
	if offer.Status != models.BarterStatusPending {
		return nil, apperrors.ErrBarterNotPending
	}

	status := models.BarterStatusRejected
	if accept {
		status = models.BarterStatusAccepted
	}

	if err := s.db.Model(&offer).Update("status", status).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &offer, nil
}
