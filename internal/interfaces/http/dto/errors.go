package dto

import "net/http"

// Standardized error codes returned in the response envelope.
const (
	ErrCodeUnknown  = "ERR_UNKNOWN"
	ErrCodeInternal = "ERR_INTERNAL"

	ErrCodeValidation   = "ERR_VALIDATION"
	ErrCodeBadRequest   = "ERR_BAD_REQUEST"
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	ErrCodeInvalidJSON  = "ERR_INVALID_JSON"

	ErrCodeNotFound      = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	ErrCodeConflict      = "ERR_CONFLICT"
	ErrCodeInvalidState  = "ERR_INVALID_STATE"

	ErrCodePayloadTooLarge = "ERR_PAYLOAD_TOO_LARGE"

	// ErrCodeUpstream signals a failure while relaying to the detection service.
	ErrCodeUpstream = "ERR_UPSTREAM"
)

// errorStatusMap maps error codes to HTTP status codes
var errorStatusMap = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeConflict:      http.StatusConflict,
	ErrCodeInvalidState:  http.StatusUnprocessableEntity,

	ErrCodePayloadTooLarge: http.StatusRequestEntityTooLarge,

	ErrCodeUpstream: http.StatusBadGateway,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes default to 500.
func GetHTTPStatus(code string) int {
	if status, ok := errorStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// domainErrorCodeMapping maps domain layer error codes to API error codes
var domainErrorCodeMapping = map[string]string{
	"NOT_FOUND":      ErrCodeNotFound,
	"ALREADY_EXISTS": ErrCodeAlreadyExists,
	"CONFLICT":       ErrCodeConflict,
	"INVALID_STATE":  ErrCodeInvalidState,
	"INVALID_INPUT":  ErrCodeInvalidInput,
	"INTERNAL_ERROR": ErrCodeInternal,

	"INVALID_USERNAME":  ErrCodeValidation,
	"INVALID_PASSWORD":  ErrCodeValidation,
	"INVALID_NAME":      ErrCodeValidation,
	"INVALID_ROLE":      ErrCodeValidation,
	"INVALID_SEVERITY":  ErrCodeValidation,
	"INVALID_STATUS":    ErrCodeValidation,
	"INVALID_TYPE":      ErrCodeValidation,
	"INVALID_LOCATION":  ErrCodeValidation,
	"INVALID_CAMERA":    ErrCodeValidation,
	"INVALID_INCIDENT":  ErrCodeValidation,
	"INVALID_RECIPIENT": ErrCodeValidation,
	"INVALID_CPU":       ErrCodeValidation,
	"INVALID_MEMORY":    ErrCodeValidation,
	"INVALID_FILENAME":  ErrCodeValidation,

	"INVALID_FILE_TYPE": ErrCodeValidation,
	"FILE_TOO_LARGE":    ErrCodePayloadTooLarge,
}

// NormalizeErrorCode converts a domain error code to an API error code.
// Codes already in API form pass through unchanged; anything
// unrecognized becomes ERR_UNKNOWN.
func NormalizeErrorCode(code string) string {
	if _, ok := errorStatusMap[code]; ok {
		return code
	}
	if mapped, ok := domainErrorCodeMapping[code]; ok {
		return mapped
	}
	return ErrCodeUnknown
}
