package models

// CropType is static reference data describing a tradeable crop.
type CropType struct {
	Base
	Name     string `gorm:"uniqueIndex;not null" json:"name"`
	Category string `json:"category"`
}
