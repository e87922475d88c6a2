package models

// BarterStatus represents the lifecycle state of a barter offer.
type BarterStatus string

const (
	BarterStatusPending  BarterStatus = "pending"
	BarterStatusAccepted BarterStatus = "accepted"
	BarterStatusRejected BarterStatus = "rejected"
)

// BarterOffer represents a proposed crop-for-crop exchange between two users.
type BarterOffer struct {
	Base
	ProposerID          uint         `gorm:"not null;index" json:"proposer_id"`
	ReceiverID          uint         `gorm:"not null;index" json:"receiver_id"`
	OfferedCropID       uint         `gorm:"not null" json:"offered_crop_id"`
	OfferedQuantityKg   float64      `gorm:"not null" json:"offered_quantity_kg"`
	RequestedCropID     uint         `gorm:"not null" json:"requested_crop_id"`
	RequestedQuantityKg float64      `gorm:"not null" json:"requested_quantity_kg"`
	Note                string       `json:"note"`
	Status              BarterStatus `gorm:"not null;default:pending" json:"status"`

	Proposer      User     `gorm:"foreignKey:ProposerID" json:"proposer,omitempty"`
	Receiver      User     `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
	OfferedCrop   CropType `gorm:"foreignKey:OfferedCropID" json:"offered_crop,omitempty"`
	RequestedCrop CropType `gorm:"foreignKey:RequestedCropID" json:"requested_crop,omitempty"`
}
