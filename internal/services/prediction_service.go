package services

import (
	"fmt"
	"math"

	"gorm.io/gorm"

	apperrors "agrolink/internal/errors"
	"agrolink/internal/models"
)

const (
	// fallbackBasePrice is returned (plus the quality bonus) when no
	// history exists for the requested crop, location, and quality.
	fallbackBasePrice = 20.0

	// recentSampleSize is how many of the most recent observations feed
	// the estimate.
	recentSampleSize = 3
)

// predictionService estimates unit prices from the price history series.
type predictionService struct {
	db         *gorm.DB
	jitter     PriceJitter
	comparison MarketComparisonStrategy
}

// NewPredictionService creates a new PredictionServicer. The jitter and
// comparison strategies are injected so callers control the randomness.
func NewPredictionService(db *gorm.DB, jitter PriceJitter, comparison MarketComparisonStrategy) PredictionServicer {
	return &predictionService{db: db, jitter: jitter, comparison: comparison}
}

// PredictPrice estimates the unit price for a crop at a location and quality
// grade. The estimate is the mean of the up-to-3 most recent matching
// observations, scaled by the jitter factor. With no matching history it
// falls back to a deterministic base price plus the quality bonus. The
// result is unrounded; BuildPrediction handles presentation.
func (s *predictionService) PredictPrice(cropTypeID uint, location string, quality models.QualityGrade) (float64, error) {
	if cropTypeID == 0 || location == "" || quality == "" {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "crop type, location, and quality are required")
	}

	// Matching is exact on all three dimensions; location is case-sensitive.
	var entries []models.PriceHistory
	if err := s.db.
		Where("crop_type_id = ? AND location = ? AND quality = ?", cropTypeID, location, quality).
		Order("recorded_date DESC").
		Limit(recentSampleSize).
		Find(&entries).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if len(entries) == 0 {
		return fallbackBasePrice + qualityBonus(quality), nil
	}

	var sum float64
	for _, e := range entries {
		sum += e.Price
	}
	mean := sum / float64(len(entries))

	return mean * s.jitter.Factor(), nil
}

// BuildPrediction wraps PredictPrice with the client-facing range: the
// rounded average, a ±10% band, the formatted range label, and the market
// comparison signal.
func (s *predictionService) BuildPrediction(cropTypeID uint, location string, quality models.QualityGrade) (*PricePrediction, error) {
	price, err := s.PredictPrice(cropTypeID, location, quality)
	if err != nil {
		return nil, err
	}

	avg := round2(price)
	minPrice := round2(avg * 0.9)
	maxPrice := round2(avg * 1.1)

	return &PricePrediction{
		AveragePrice:     avg,
		MinPrice:         minPrice,
		MaxPrice:         maxPrice,
		PriceRange:       fmt.Sprintf("₹%.2f-%.2f", minPrice, maxPrice),
		MarketComparison: s.comparison.Compare(avg),
	}, nil
}

// qualityBonus is the fallback premium per quality grade.
func qualityBonus(quality models.QualityGrade) float64 {
	switch quality {
	case models.QualityGradeA:
		return 10
	case models.QualityGradeB:
		return 5
	default:
		return 0
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
