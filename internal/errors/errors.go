// Package errors provides custom error types for the AgroLink API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Crop type errors.
var (
	ErrUnknownCropType   = &AppError{Code: "UNKNOWN_CROP_TYPE", Message: "Unknown crop type", StatusCode: http.StatusBadRequest}
	ErrDuplicateCropType = &AppError{Code: "DUPLICATE_CROP_TYPE", Message: "A crop type with this name already exists", StatusCode: http.StatusConflict}
)

// Listing errors.
var (
	ErrListingNotFound  = &AppError{Code: "LISTING_NOT_FOUND", Message: "Listing not found", StatusCode: http.StatusNotFound}
	ErrListingNotActive = &AppError{Code: "LISTING_NOT_ACTIVE", Message: "Listing is no longer active", StatusCode: http.StatusBadRequest}
)

// Bid errors.
var (
	ErrBidNotFound    = &AppError{Code: "BID_NOT_FOUND", Message: "Bid not found", StatusCode: http.StatusNotFound}
	ErrBidNotPending  = &AppError{Code: "BID_NOT_PENDING", Message: "Bid has already been resolved", StatusCode: http.StatusBadRequest}
	ErrOwnListingBid  = &AppError{Code: "OWN_LISTING_BID", Message: "Cannot bid on your own listing", StatusCode: http.StatusBadRequest}
)

// Barter errors.
var (
	ErrBarterOfferNotFound = &AppError{Code: "BARTER_OFFER_NOT_FOUND", Message: "Barter offer not found", StatusCode: http.StatusNotFound}
	ErrBarterNotPending    = &AppError{Code: "BARTER_NOT_PENDING", Message: "Barter offer has already been resolved", StatusCode: http.StatusBadRequest}
	ErrSelfBarter          = &AppError{Code: "SELF_BARTER", Message: "Cannot barter with yourself", StatusCode: http.StatusBadRequest}
)
