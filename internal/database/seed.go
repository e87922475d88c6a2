package database

import (
	"fmt"
	"time"

	"agrolink/internal/logger"
	"agrolink/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// seedCropTypes defines the reference crops, in the order forecasting
// expects them to be stored.
var seedCropTypes = []models.CropType{
	{Name: "Rice", Category: "grain"},
	{Name: "Wheat", Category: "grain"},
	{Name: "Tomato", Category: "vegetable"},
	{Name: "Onion", Category: "vegetable"},
	{Name: "Green Chillies", Category: "vegetable"},
	{Name: "Eggplant", Category: "vegetable"},
	{Name: "Potato", Category: "vegetable"},
}

// priceSeries is a per-crop base price used to generate a short history
// per location and quality grade.
var priceSeries = map[string]float64{
	"Rice":           42,
	"Wheat":          30,
	"Tomato":         25,
	"Onion":          22,
	"Green Chillies": 55,
	"Eggplant":       28,
	"Potato":         18,
}

var seedLocations = []string{"Colombo", "Kandy", "Jaffna"}

// Seed populates the database with demo users, crop types, listings, and a
// price history series per crop, location, and quality grade. It is the only
// writer of price history; requests never mutate that table. Seeding is
// idempotent: it does nothing if crop types already exist.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.CropType{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing crop types: %w", err)
	}
	if count > 0 {
		logger.Get().Info("Sample data already present, skipping seed")
		return nil
	}

	log := logger.Get()
	log.Info("Seeding sample data...")

	return db.Transaction(func(tx *gorm.DB) error {
		crops := make([]models.CropType, len(seedCropTypes))
		copy(crops, seedCropTypes)
		if err := tx.Create(&crops).Error; err != nil {
			return fmt.Errorf("failed to seed crop types: %w", err)
		}

		farmer, err := seedUser(tx, "farmer@agrolink.dev", "Sunil Perera", models.UserRoleFarmer, "Kandy")
		if err != nil {
			return err
		}
		buyer, err := seedUser(tx, "buyer@agrolink.dev", "Amara Silva", models.UserRoleBuyer, "Colombo")
		if err != nil {
			return err
		}

		// A couple of active listings so the marketplace isn't empty.
		listings := []models.Listing{
			{SellerID: farmer.ID, CropTypeID: crops[0].ID, QuantityKg: 500, PricePerKg: 44, Quality: models.QualityGradeA, Location: "Kandy"},
			{SellerID: farmer.ID, CropTypeID: crops[2].ID, QuantityKg: 120, PricePerKg: 26, Quality: models.QualityGradeB, Location: "Kandy"},
		}
		if err := tx.Create(&listings).Error; err != nil {
			return fmt.Errorf("failed to seed listings: %w", err)
		}

		bid := models.Bid{ListingID: listings[0].ID, BuyerID: buyer.ID, AmountPerKg: 43, QuantityKg: 200}
		if err := tx.Create(&bid).Error; err != nil {
			return fmt.Errorf("failed to seed bid: %w", err)
		}

		if err := seedPriceHistory(tx, crops); err != nil {
			return err
		}

		log.Infow("sample data seeded", "crop_types", len(crops), "locations", len(seedLocations))
		return nil
	})
}

func seedUser(tx *gorm.DB, email, name string, role models.UserRole, location string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash seed password: %w", err)
	}
	user := &models.User{
		Email:    email,
		Password: string(hash),
		Name:     name,
		Role:     role,
		Location: location,
		IsActive: true,
	}
	if err := tx.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to seed user %s: %w", email, err)
	}
	return user, nil
}

// seedPriceHistory writes four weekly observations per crop, location, and
// quality. Grade A trades above the base price, grade C below.
func seedPriceHistory(tx *gorm.DB, crops []models.CropType) error {
	now := time.Now()
	qualityOffsets := map[models.QualityGrade]float64{
		models.QualityGradeA: 4,
		models.QualityGradeB: 0,
		models.QualityGradeC: -3,
	}

	var entries []models.PriceHistory
	for _, crop := range crops {
		base := priceSeries[crop.Name]
		for li, loc := range seedLocations {
			for quality, offset := range qualityOffsets {
				for week := 0; week < 4; week++ {
					entries = append(entries, models.PriceHistory{
						CropTypeID:   crop.ID,
						Location:     loc,
						Price:        base + offset + float64(li) + float64(week)*0.5,
						Quality:      quality,
						RecordedDate: now.AddDate(0, 0, -7*week),
					})
				}
			}
		}
	}

	if err := tx.CreateInBatches(&entries, 100).Error; err != nil {
		return fmt.Errorf("failed to seed price history: %w", err)
	}
	return nil
}
