package services

import (
	"testing"

	"gorm.io/gorm"

	"agrolink/internal/models"
	"agrolink/internal/testutil"
)

type bidFixture struct {
	db      *gorm.DB
	seller  *models.User
	buyer   *models.User
	listing *models.Listing
}

func newBidFixture(t *testing.T) (BidServicer, *bidFixture) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	seller := testutil.CreateTestUser(t, db)
	crop := testutil.CreateTestCropType(t, db)
	f := &bidFixture{
		db:      db,
		seller:  seller,
		buyer:   testutil.CreateTestUserWithRole(t, db, models.UserRoleBuyer),
		listing: testutil.CreateTestListing(t, db, seller.ID, crop.ID),
	}
	return NewBidService(db), f
}

func TestPlaceBid(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		svc, f := newBidFixture(t)

		bid, err := svc.PlaceBid(f.buyer.ID, f.listing.ID, 26, 40)
		testutil.AssertNoError(t, err)

		if bid.Status != models.BidStatusPending {
			t.Errorf("expected pending status, got %s", bid.Status)
		}
	})

	t.Run("own_listing", func(t *testing.T) {
		svc, f := newBidFixture(t)

		_, err := svc.PlaceBid(f.seller.ID, f.listing.ID, 26, 40)
		testutil.AssertAppError(t, err, "OWN_LISTING_BID")
	})

	t.Run("listing_not_found", func(t *testing.T) {
		svc, f := newBidFixture(t)

		_, err := svc.PlaceBid(f.buyer.ID, 99999, 26, 40)
		testutil.AssertAppError(t, err, "LISTING_NOT_FOUND")
	})

	t.Run("inactive_listing", func(t *testing.T) {
		svc, f := newBidFixture(t)

		err := f.db.Model(f.listing).Update("status", models.ListingStatusSold).Error
		if err != nil {
			t.Fatalf("failed to mark listing sold: %v", err)
		}

		_, err = svc.PlaceBid(f.buyer.ID, f.listing.ID, 26, 40)
		testutil.AssertAppError(t, err, "LISTING_NOT_ACTIVE")
	})

	t.Run("quantity_exceeds_listing", func(t *testing.T) {
		svc, f := newBidFixture(t)

		_, err := svc.PlaceBid(f.buyer.ID, f.listing.ID, 26, f.listing.QuantityKg+1)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("non_positive_values", func(t *testing.T) {
		svc, f := newBidFixture(t)

		_, err := svc.PlaceBid(f.buyer.ID, f.listing.ID, 0, 40)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.PlaceBid(f.buyer.ID, f.listing.ID, 26, -10)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestListBidsForListing(t *testing.T) {
	t.Run("returns_all_bids", func(t *testing.T) {
		svc, f := newBidFixture(t)

		testutil.CreateTestBid(t, f.db, f.listing.ID, f.buyer.ID)
		testutil.CreateTestBid(t, f.db, f.listing.ID, f.buyer.ID)

		bids, err := svc.ListBidsForListing(f.listing.ID)
		testutil.AssertNoError(t, err)

		if len(bids) != 2 {
			t.Errorf("expected 2 bids, got %d", len(bids))
		}
	})

	t.Run("listing_not_found", func(t *testing.T) {
		svc, _ := newBidFixture(t)

		_, err := svc.ListBidsForListing(99999)
		testutil.AssertAppError(t, err, "LISTING_NOT_FOUND")
	})
}

func TestAcceptBid(t *testing.T) {
	t.Run("marks_listing_sold_and_rejects_siblings", func(t *testing.T) {
		svc, f := newBidFixture(t)

		accepted := testutil.CreateTestBid(t, f.db, f.listing.ID, f.buyer.ID)
		sibling := testutil.CreateTestBid(t, f.db, f.listing.ID, f.buyer.ID)

		result, err := svc.AcceptBid(f.seller.ID, accepted.ID)
		testutil.AssertNoError(t, err)

		if result.Status != models.BidStatusAccepted {
			t.Errorf("expected accepted status, got %s", result.Status)
		}

		var listing models.Listing
		if err := f.db.First(&listing, f.listing.ID).Error; err != nil {
			t.Fatalf("failed to reload listing: %v", err)
		}
		if listing.Status != models.ListingStatusSold {
			t.Errorf("expected listing sold, got %s", listing.Status)
		}

		var reloaded models.Bid
		if err := f.db.First(&reloaded, sibling.ID).Error; err != nil {
			t.Fatalf("failed to reload sibling bid: %v", err)
		}
		if reloaded.Status != models.BidStatusRejected {
			t.Errorf("expected sibling bid rejected, got %s", reloaded.Status)
		}
	})

	t.Run("non_owner_forbidden", func(t *testing.T) {
		svc, f := newBidFixture(t)

		bid := testutil.CreateTestBid(t, f.db, f.listing.ID, f.buyer.ID)

		_, err := svc.AcceptBid(f.buyer.ID, bid.ID)
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})

	t.Run("already_resolved", func(t *testing.T) {
		svc, f := newBidFixture(t)

		bid := testutil.CreateTestBid(t, f.db, f.listing.ID, f.buyer.ID)

		_, err := svc.AcceptBid(f.seller.ID, bid.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.AcceptBid(f.seller.ID, bid.ID)
		testutil.AssertAppError(t, err, "BID_NOT_PENDING")
	})

	t.Run("bid_not_found", func(t *testing.T) {
		svc, f := newBidFixture(t)

		_, err := svc.AcceptBid(f.seller.ID, 99999)
		testutil.AssertAppError(t, err, "BID_NOT_FOUND")
	})
}

func TestRejectBid(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		svc, f := newBidFixture(t)

		bid := testutil.CreateTestBid(t, f.db, f.listing.ID, f.buyer.ID)

		result, err := svc.RejectBid(f.seller.ID, bid.ID)
		testutil.AssertNoError(t, err)

		if result.Status != models.BidStatusRejected {
			t.Errorf("expected rejected status, got %s", result.Status)
		}

		// Rejecting leaves the listing active.
		var listing models.Listing
		if err := f.db.First(&listing, f.listing.ID).Error; err != nil {
			t.Fatalf("failed to reload listing: %v", err)
		}
		if listing.Status != models.ListingStatusActive {
			t.Errorf("expected listing still active, got %s", listing.Status)
		}
	})

	t.Run("already_resolved", func(t *testing.T) {
		svc, f := newBidFixture(t)

		bid := testutil.CreateTestBid(t, f.db, f.listing.ID, f.buyer.ID)

		_, err := svc.RejectBid(f.seller.ID, bid.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.RejectBid(f.seller.ID, bid.ID)
		testutil.AssertAppError(t, err, "BID_NOT_PENDING")
	})
}
