package models

// QualityGrade is an ordinal produce quality tier, A being the best.
type QualityGrade string

const (
	QualityGradeA QualityGrade = "A"
	QualityGradeB QualityGrade = "B"
	QualityGradeC QualityGrade = "C"
)

// ListingStatus represents the lifecycle state of a sell offer.
type ListingStatus string

const (
	ListingStatusActive    ListingStatus = "active"
	ListingStatusSold      ListingStatus = "sold"
	ListingStatusCancelled ListingStatus = "cancelled"
)

// Listing represents a sell offer for a quantity of a crop type.
type Listing struct {
	Base
	SellerID   uint          `gorm:"not null;index" json:"seller_id"`
	CropTypeID uint          `gorm:"not null;index" json:"crop_type_id"`
	QuantityKg float64       `gorm:"not null" json:"quantity_kg"`
	PricePerKg float64       `gorm:"not null" json:"price_per_kg"`
	Quality    QualityGrade  `gorm:"not null" json:"quality"`
	Location   string        `gorm:"not null" json:"location"`
	Status     ListingStatus `gorm:"not null;default:active" json:"status"`

	Seller   User     `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	CropType CropType `gorm:"foreignKey:CropTypeID" json:"crop_type,omitempty"`
	Bids     []Bid    `gorm:"foreignKey:ListingID" json:"bids,omitempty"`
}
