package services

import (
	"math/rand"
	"sync"

	"agrolink/internal/models"
)

// lockedRand wraps a seedable rand.Rand with a mutex so strategies can be
// shared across request goroutines.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newLockedRand(seed int64) *lockedRand {
	return &lockedRand{rng: rand.New(rand.NewSource(seed))}
}

func (r *lockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

// PriceJitter supplies the multiplicative variance factor applied to a raw
// price estimate.
type PriceJitter interface {
	Factor() float64
}

// uniformJitter draws factors uniformly from [0.95, 1.05) to simulate model
// variance.
type uniformJitter struct {
	rng *lockedRand
}

// NewUniformJitter creates a PriceJitter over a seedable randomness source.
func NewUniformJitter(seed int64) PriceJitter {
	return &uniformJitter{rng: newLockedRand(seed)}
}

func (j *uniformJitter) Factor() float64 {
	return 0.95 + j.rng.Float64()*0.10
}

// fixedJitter always returns the same factor.
type fixedJitter struct {
	factor float64
}

// NewFixedJitter creates a PriceJitter that always returns factor. A factor
// of 1.0 makes predictions deterministic.
func NewFixedJitter(factor float64) PriceJitter {
	return &fixedJitter{factor: factor}
}

func (j *fixedJitter) Factor() float64 { return j.factor }

// MarketComparisonStrategy labels a prediction relative to the wider market.
type MarketComparisonStrategy interface {
	Compare(averagePrice float64) string
}

// randomComparison is a placeholder until a real market model exists: it
// picks "above" or "below" uniformly at random, ignoring the price.
type randomComparison struct {
	rng *lockedRand
}

// NewRandomComparison creates the stub comparison strategy.
func NewRandomComparison(seed int64) MarketComparisonStrategy {
	return &randomComparison{rng: newLockedRand(seed)}
}

func (s *randomComparison) Compare(_ float64) string {
	if s.rng.Intn(2) == 0 {
		return "above"
	}
	return "below"
}

// fixedComparison always returns the same label.
type fixedComparison struct {
	label string
}

// NewFixedComparison creates a MarketComparisonStrategy that always returns
// label. Useful for tests.
func NewFixedComparison(label string) MarketComparisonStrategy {
	return &fixedComparison{label: label}
}

func (s *fixedComparison) Compare(_ float64) string { return s.label }

// CropSelectionStrategy picks which crops to forecast out of the full
// reference set.
type CropSelectionStrategy interface {
	SelectTop(crops []models.CropType, n int) []models.CropType
}

// firstNSelection takes the first n crops in stored order. Selecting by
// listing or bid volume instead is an open question; until that is settled
// this placeholder keeps the original behavior.
type firstNSelection struct{}

// NewFirstNSelection creates the stub crop selection strategy.
func NewFirstNSelection() CropSelectionStrategy {
	return firstNSelection{}
}

func (firstNSelection) SelectTop(crops []models.CropType, n int) []models.CropType {
	if len(crops) < n {
		n = len(crops)
	}
	return crops[:n]
}
