package models

import "time"

// UserRole represents what side of the marketplace a user acts on.
type UserRole string

const (
	UserRoleFarmer UserRole = "farmer"
	UserRoleBuyer  UserRole = "buyer"
)

// User represents a marketplace participant.
type User struct {
	Base
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	Password     string     `gorm:"not null" json:"-"`
	Name         string     `gorm:"not null" json:"name"`
	Role         UserRole   `gorm:"not null;default:farmer" json:"role"`
	Location     string     `json:"location"`
	Phone        string     `json:"phone"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	Listings     []Listing  `gorm:"foreignKey:SellerID" json:"listings,omitempty"`
	Bids         []Bid      `gorm:"foreignKey:BuyerID" json:"bids,omitempty"`
}
