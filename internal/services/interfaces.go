package services

import (
	"agrolink/internal/models"
	"agrolink/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Register(email, password, name string, role models.UserRole, location, phone string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// CropTypeServicer defines the contract for crop reference data.
type CropTypeServicer interface {
	ListCropTypes() ([]models.CropType, error)
	GetCropTypeByID(id uint) (*models.CropType, error)
	GetCropTypeByName(name string) (*models.CropType, error)
	CreateCropType(name, category string) (*models.CropType, error)
}

// ListingSummary is a listing enriched with joined display data.
type ListingSummary struct {
	models.Listing
	CropName   string `json:"crop_name"`
	SellerName string `json:"seller_name"`
	BidCount   int64  `json:"bid_count"`
}

// ListingServicer defines the contract for listing-related business logic.
type ListingServicer interface {
	CreateListing(sellerID, cropTypeID uint, quantityKg, pricePerKg float64, quality models.QualityGrade, location string) (*models.Listing, error)
	GetListingByID(listingID uint) (*ListingSummary, error)
	ListActiveListings(page pagination.PageRequest) (*pagination.PageResponse[ListingSummary], error)
	ListSellerListings(sellerID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Listing], error)
	UpdateListing(sellerID, listingID uint, quantityKg, pricePerKg *float64) (*models.Listing, error)
	CancelListing(sellerID, listingID uint) error
}

// BidServicer defines the contract for bid-related business logic.
type BidServicer interface {
	PlaceBid(buyerID, listingID uint, amountPerKg, quantityKg float64) (*models.Bid, error)
	ListBidsForListing(listingID uint) ([]models.Bid, error)
	AcceptBid(sellerID, bidID uint) (*models.Bid, error)
	RejectBid(sellerID, bidID uint) (*models.Bid, error)
}

// BarterServicer defines the contract for barter-related business logic.
type BarterServicer interface {
	ProposeBarter(proposerID, receiverID, offeredCropID, requestedCropID uint, offeredQty, requestedQty float64, note string) (*models.BarterOffer, error)
	ListUserBarterOffers(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.BarterOffer], error)
	RespondToBarter(receiverID, offerID uint, accept bool) (*models.BarterOffer, error)
}

// PriceHistoryServicer defines read access to the price history series.
// The series is append-only and written by seeding alone, so no mutation
// methods exist.
type PriceHistoryServicer interface {
	ListByCropType(cropTypeID uint, location string) ([]models.PriceHistory, error)
}

// PricePrediction is the derived prediction payload. It is computed on
// demand and never persisted. Field names follow the published API.
type PricePrediction struct {
	AveragePrice     float64 `json:"averagePrice"`
	MinPrice         float64 `json:"minPrice"`
	MaxPrice         float64 `json:"maxPrice"`
	PriceRange       string  `json:"priceRange"`
	MarketComparison string  `json:"marketComparison"`
}

// PredictionServicer defines the contract for price prediction.
type PredictionServicer interface {
	// PredictPrice returns the raw, unrounded price estimate.
	PredictPrice(cropTypeID uint, location string, quality models.QualityGrade) (float64, error)
	// BuildPrediction returns the full client-facing prediction with the
	// surrounding range.
	BuildPrediction(cropTypeID uint, location string, quality models.QualityGrade) (*PricePrediction, error)
}

// ForecastDataset is a single crop's projected series.
type ForecastDataset struct {
	CropID   uint   `json:"cropId"`
	CropName string `json:"cropName"`
	Data     []int  `json:"data"`
}

// DemandGroups partitions crop names into demand tiers.
type DemandGroups struct {
	High     []string `json:"high"`
	Moderate []string `json:"moderate"`
	Low      []string `json:"low"`
}

// ForecastReport is the full forecast payload. Computed on demand, never
// persisted. Field names follow the published API.
type ForecastReport struct {
	Labels       []string          `json:"labels"`
	Datasets     []ForecastDataset `json:"datasets"`
	DemandGroups DemandGroups      `json:"demandGroups"`
}

// ForecastServicer defines the contract for demand/price forecasting.
type ForecastServicer interface {
	GetForecastData() (*ForecastReport, error)
}
