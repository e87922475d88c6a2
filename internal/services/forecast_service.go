package services

import (
	"gorm.io/gorm"

	apperrors "agrolink/internal/errors"
	"agrolink/internal/models"
)

// topCropCount is how many crops appear in the forecast.
const topCropCount = 3

// forecastLabels names the six consecutive future periods.
var forecastLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

// knownCurves holds hand-authored trend curves for crops the original
// analysts profiled. Everything else gets a random series.
var knownCurves = map[string][]int{
	"Tomato": {30, 45, 60, 70, 65, 55},
	"Rice":   {50, 55, 52, 50, 48, 45},
	"Onion":  {40, 42, 38, 35, 32, 30},
}

// staticDemandGroups is static market metadata. It is not derived from
// price history or listing volume and is independent of which crops exist
// in the store.
var staticDemandGroups = DemandGroups{
	High:     []string{"Green Chillies", "Tomato", "Eggplant"},
	Moderate: []string{"Onion", "Potato", "Rice"},
	Low:      []string{"Wheat", "Maize", "Sugarcane"},
}

// forecastService produces the fixed-horizon demand/price forecast.
type forecastService struct {
	db       *gorm.DB
	selector CropSelectionStrategy
	rng      *lockedRand
}

// NewForecastService creates a new ForecastServicer. The selection strategy
// and the seed for the random series generator are injected.
func NewForecastService(db *gorm.DB, selector CropSelectionStrategy, seed int64) ForecastServicer {
	return &forecastService{db: db, selector: selector, rng: newLockedRand(seed)}
}

// GetForecastData assembles the six-period forecast for the selected top
// crops plus the static demand tiers. An empty crop-type table yields empty
// datasets, which is a valid degenerate result rather than an error.
func (s *forecastService) GetForecastData() (*ForecastReport, error) {
	var crops []models.CropType
	if err := s.db.Order("id").Find(&crops).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	top := s.selector.SelectTop(crops, topCropCount)

	datasets := make([]ForecastDataset, 0, len(top))
	for _, crop := range top {
		var data []int
		if curve, ok := knownCurves[crop.Name]; ok {
			data = append([]int(nil), curve...)
		} else {
			data = s.randomSeries()
		}
		datasets = append(datasets, ForecastDataset{
			CropID:   crop.ID,
			CropName: crop.Name,
			Data:     data,
		})
	}

	return &ForecastReport{
		Labels:       append([]string(nil), forecastLabels...),
		Datasets:     datasets,
		DemandGroups: staticDemandGroups,
	}, nil
}

// randomSeries draws six independent values in [20, 69].
func (s *forecastService) randomSeries() []int {
	data := make([]int, len(forecastLabels))
	for i := range data {
		data[i] = 20 + s.rng.Intn(50)
	}
	return data
}
