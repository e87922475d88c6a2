package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"agrolink/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a farmer with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithRole(t, db, models.UserRoleFarmer)
}

// CreateTestUserWithRole creates a user with the given role.
func CreateTestUserWithRole(t *testing.T, db *gorm.DB, role models.UserRole) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	n := nextID()
	user := &models.User{
		Email:    fmt.Sprintf("user%d@test.com", n),
		Password: string(hash),
		Name:     fmt.Sprintf("Test User %d", n),
		Role:     role,
		Location: "Kandy",
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCropType creates a crop type with a unique name.
func CreateTestCropType(t *testing.T, db *gorm.DB) *models.CropType {
	t.Helper()
	return CreateTestCropTypeNamed(t, db, fmt.Sprintf("Test Crop %d", nextID()))
}

// CreateTestCropTypeNamed creates a crop type with the given name.
func CreateTestCropTypeNamed(t *testing.T, db *gorm.DB, name string) *models.CropType {
	t.Helper()

	crop := &models.CropType{Name: name, Category: "vegetable"}
	if err := db.Create(crop).Error; err != nil {
		t.Fatalf("failed to create test crop type: %v", err)
	}
	return crop
}

// CreateTestListing creates an active grade-B listing.
func CreateTestListing(t *testing.T, db *gorm.DB, sellerID, cropTypeID uint) *models.Listing {
	t.Helper()

	listing := &models.Listing{
		SellerID:   sellerID,
		CropTypeID: cropTypeID,
		QuantityKg: 100,
		PricePerKg: 25,
		Quality:    models.QualityGradeB,
		Location:   "Kandy",
		Status:     models.ListingStatusActive,
	}
	if err := db.Create(listing).Error; err != nil {
		t.Fatalf("failed to create test listing: %v", err)
	}
	return listing
}

// CreateTestBid creates a pending bid against a listing.
func CreateTestBid(t *testing.T, db *gorm.DB, listingID, buyerID uint) *models.Bid {
	t.Helper()

	bid := &models.Bid{
		ListingID:   listingID,
		BuyerID:     buyerID,
		AmountPerKg: 24,
		QuantityKg:  50,
		Status:      models.BidStatusPending,
	}
	if err := db.Create(bid).Error; err != nil {
		t.Fatalf("failed to create test bid: %v", err)
	}
	return bid
}

// CreateTestBarterOffer creates a pending barter offer.
func CreateTestBarterOffer(t *testing.T, db *gorm.DB, proposerID, receiverID, offeredCropID, requestedCropID uint) *models.BarterOffer {
	t.Helper()

	offer := &models.BarterOffer{
		ProposerID:          proposerID,
		ReceiverID:          receiverID,
		OfferedCropID:       offeredCropID,
		OfferedQuantityKg:   20,
		RequestedCropID:     requestedCropID,
		RequestedQuantityKg: 15,
		Status:              models.BarterStatusPending,
	}
	if err := db.Create(offer).Error; err != nil {
		t.Fatalf("failed to create test barter offer: %v", err)
	}
	return offer
}

// CreateTestPriceHistory appends one price observation.
func CreateTestPriceHistory(t *testing.T, db *gorm.DB, cropTypeID uint, location string, price float64, quality models.QualityGrade, recorded time.Time) *models.PriceHistory {
	t.Helper()

	entry := &models.PriceHistory{
		CropTypeID:   cropTypeID,
		Location:     location,
		Price:        price,
		Quality:      quality,
		RecordedDate: recorded,
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test price history: %v", err)
	}
	return entry
}
