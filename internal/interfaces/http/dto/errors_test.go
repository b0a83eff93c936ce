package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeInvalidJSON, http.StatusBadRequest},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeAlreadyExists, http.StatusConflict},
		{ErrCodeInvalidState, http.StatusUnprocessableEntity},
		{ErrCodePayloadTooLarge, http.StatusRequestEntityTooLarge},
		{ErrCodeUpstream, http.StatusBadGateway},
		{ErrCodeInternal, http.StatusInternalServerError},
		{"ERR_SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.status, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"passthrough api code", ErrCodeNotFound, ErrCodeNotFound},
		{"domain not found", "NOT_FOUND", ErrCodeNotFound},
		{"domain duplicate", "ALREADY_EXISTS", ErrCodeAlreadyExists},
		{"domain field validation", "INVALID_SEVERITY", ErrCodeValidation},
		{"domain camera reference", "INVALID_CAMERA", ErrCodeValidation},
		{"domain incident reference", "INVALID_INCIDENT", ErrCodeValidation},
		{"domain recipient", "INVALID_RECIPIENT", ErrCodeValidation},
		{"domain cpu range", "INVALID_CPU", ErrCodeValidation},
		{"domain memory range", "INVALID_MEMORY", ErrCodeValidation},
		{"domain type", "INVALID_TYPE", ErrCodeValidation},
		{"domain location", "INVALID_LOCATION", ErrCodeValidation},
		{"domain file type", "INVALID_FILE_TYPE", ErrCodeValidation},
		{"domain file size", "FILE_TOO_LARGE", ErrCodePayloadTooLarge},
		{"unknown code", "SOMETHING_WEIRD", ErrCodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeErrorCode(tt.in))
		})
	}
}

func TestResponseConstructors(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		resp := NewSuccessResponse(map[string]int{"id": 1})
		assert.True(t, resp.Success)
		assert.NotNil(t, resp.Data)
		assert.Nil(t, resp.Error)
	})

	t.Run("success with meta", func(t *testing.T) {
		resp := NewSuccessResponseWithMeta([]int{1, 2, 3}, 3)
		assert.True(t, resp.Success)
		assert.Equal(t, 3, resp.Meta.Total)
	})

	t.Run("error", func(t *testing.T) {
		resp := NewErrorResponse(ErrCodeNotFound, "Camera not found")
		assert.False(t, resp.Success)
		assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
		assert.Equal(t, "Camera not found", resp.Error.Message)
	})

	t.Run("error with request id", func(t *testing.T) {
		resp := NewErrorResponseWithRequestID(ErrCodeInternal, "boom", "req-123")
		assert.Equal(t, "req-123", resp.Error.RequestID)
	})

	t.Run("validation error", func(t *testing.T) {
		resp := NewValidationErrorResponse("Request validation failed", "req-1", []ValidationDetail{
			{Field: "severity", Message: "must be one of low, medium, high, critical"},
		})
		assert.Equal(t, ErrCodeValidation, resp.Error.Code)
		assert.Len(t, resp.Error.Details, 1)
	})
}
