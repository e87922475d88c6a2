package testutil_test

import (
	"testing"
	"time"

	"agrolink/internal/errors"
	"agrolink/internal/models"
	"agrolink/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"users", "crop_types", "listings", "bids", "barter_offers", "price_histories"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	farmer := testutil.CreateTestUser(t, db)
	if farmer.ID == 0 {
		t.Fatal("user should have a non-zero ID")
	}
	buyer := testutil.CreateTestUserWithRole(t, db, models.UserRoleBuyer)
	if buyer.Role != models.UserRoleBuyer {
		t.Errorf("expected buyer role, got %s", buyer.Role)
	}

	crop := testutil.CreateTestCropType(t, db)
	if crop.ID == 0 {
		t.Fatal("crop type should have a non-zero ID")
	}

	listing := testutil.CreateTestListing(t, db, farmer.ID, crop.ID)
	if listing.Status != models.ListingStatusActive {
		t.Errorf("expected active listing, got %s", listing.Status)
	}

	bid := testutil.CreateTestBid(t, db, listing.ID, buyer.ID)
	if bid.Status != models.BidStatusPending {
		t.Errorf("expected pending bid, got %s", bid.Status)
	}

	entry := testutil.CreateTestPriceHistory(t, db, crop.ID, "Kandy", 25.5, models.QualityGradeA, time.Now())
	if entry.Price != 25.5 {
		t.Errorf("expected price 25.5, got %f", entry.Price)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrListingNotFound, "custom message")
	testutil.AssertAppError(t, err, "LISTING_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
