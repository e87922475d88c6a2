package models

import "time"

// PriceHistory represents a historical price observation for a crop at a
// location. This is immutable time-series data: no Base embed, no soft
// deletes. Rows are appended by seeding and never mutated afterwards.
type PriceHistory struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	CropTypeID   uint         `gorm:"not null;index" json:"crop_type_id"`
	Location     string       `gorm:"not null" json:"location"`
	Price        float64      `gorm:"not null" json:"price"`
	Quality      QualityGrade `gorm:"not null" json:"quality"`
	RecordedDate time.Time    `gorm:"not null" json:"recorded_date"`

	CropType CropType `gorm:"foreignKey:CropTypeID" json:"crop_type,omitempty"`
}
