package models

// BidStatus represents the lifecycle state of a bid.
type BidStatus string

const (
	BidStatusPending  BidStatus = "pending"
	BidStatusAccepted BidStatus = "accepted"
	BidStatusRejected BidStatus = "rejected"
)

// Bid represents a buyer's offer against a listing.
type Bid struct {
	Base
	ListingID   uint      `gorm:"not null;index" json:"listing_id"`
	BuyerID     uint      `gorm:"not null;index" json:"buyer_id"`
	AmountPerKg float64   `gorm:"not null" json:"amount_per_kg"`
	QuantityKg  float64   `gorm:"not null" json:"quantity_kg"`
	Status      BidStatus `gorm:"not null;default:pending" json:"status"`

	Listing Listing `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
	Buyer   User    `gorm:"foreignKey:BuyerID" json:"buyer,omitempty"`
}
