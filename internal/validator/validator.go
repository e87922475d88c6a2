// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("quality_grade", validateQualityGrade)
		_ = v.RegisterValidation("user_role", validateUserRole)
		_ = v.RegisterValidation("listing_status", validateListingStatus)
		_ = v.RegisterValidation("offer_response", validateOfferResponse)
	}
}

func validateQualityGrade(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "A", "B", "C":
		return true
	}
	return false
}

func validateUserRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "farmer", "buyer":
		return true
	}
	return false
}

func validateListingStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "active", "sold", "cancelled":
		return true
	}
	return false
}

func validateOfferResponse(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "accepted", "rejected":
		return true
	}
	return false
}
