package dto

import "net/http"

// General error codes
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeValidation = "VALIDATION_ERROR"
)

// Resource error codes
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeConflict      = "CONFLICT"
)

// Domain error codes surfaced through the API
const (
	ErrCodeDuplicateSku  = "DUPLICATE_SKU"
	ErrCodeDuplicateCode = "DUPLICATE_CODE"
	ErrCodeSkuExhausted  = "SKU_EXHAUSTED"
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeInvalidPrice  = "INVALID_PRICE"
	ErrCodeInvalidState  = "INVALID_STATE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeValidation: http.StatusBadRequest,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeConflict:      http.StatusConflict,

	// SKU_EXHAUSTED is a conflict: every candidate SKU was already taken
	ErrCodeDuplicateSku:  http.StatusConflict,
	ErrCodeDuplicateCode: http.StatusConflict,
	ErrCodeSkuExhausted:  http.StatusConflict,

	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidPrice: http.StatusBadRequest,
	ErrCodeInvalidState: http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
