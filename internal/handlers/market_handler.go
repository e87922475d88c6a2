package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "agrolink/internal/errors"
	"agrolink/internal/models"
	"agrolink/internal/services"
)

// MarketHandler handles price prediction and forecast requests
type MarketHandler struct {
	predictionService services.PredictionServicer
	forecastService   services.ForecastServicer
	cropTypeService   services.CropTypeServicer
}

// NewMarketHandler creates a new MarketHandler
func NewMarketHandler(predictionService services.PredictionServicer, forecastService services.ForecastServicer, cropTypeService services.CropTypeServicer) *MarketHandler {
	return &MarketHandler{
		predictionService: predictionService,
		forecastService:   forecastService,
		cropTypeService:   cropTypeService,
	}
}

// PredictPriceRequest represents the prediction request payload. Either the
// crop type ID or its name must be supplied. Field names follow the
// published API and are camelCase.
type PredictPriceRequest struct {
	CropTypeID   uint   `json:"cropTypeId"`
	CropTypeName string `json:"cropTypeName"`
	Location     string `json:"location" binding:"required,max=100"`
	Quality      string `json:"quality" binding:"required,quality_grade"`
}

// PredictPrice estimates the unit price for a crop
// @Summary     Predict a crop price
// @Description Estimate the unit price and range for a crop at a location and quality grade
// @Tags        market
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body PredictPriceRequest true "Prediction parameters"
// @Success     200 {object} services.PricePrediction "Prediction"
// @Failure     400 {object} ErrorResponse "Missing field or unknown crop type"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /predict-price [post]
func (h *MarketHandler) PredictPrice(c *gin.Context) {
	var req PredictPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	cropTypeID := req.CropTypeID
	if cropTypeID == 0 {
		if req.CropTypeName == "" {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "cropTypeId or cropTypeName is required"))
			return
		}
		crop, err := h.cropTypeService.GetCropTypeByName(req.CropTypeName)
		if err != nil {
			respondWithError(c, err)
			return
		}
		cropTypeID = crop.ID
	}

	prediction, err := h.predictionService.BuildPrediction(cropTypeID, req.Location, models.QualityGrade(req.Quality))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, prediction)
}

// GetForecast returns the demand/price forecast
// @Summary     Get the market forecast
// @Description Get the six-period demand/price trend for the top crops plus static demand tiers
// @Tags        market
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.ForecastReport "Forecast"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /forecast [get]
func (h *MarketHandler) GetForecast(c *gin.Context) {
	report, err := h.forecastService.GetForecastData()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
