package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		code string
		want int
	}{
		{"not found maps to 404", ErrCodeNotFound, http.StatusNotFound},
		{"duplicate sku maps to 409", ErrCodeDuplicateSku, http.StatusConflict},
		{"duplicate code maps to 409", ErrCodeDuplicateCode, http.StatusConflict},
		{"sku exhausted maps to 409", ErrCodeSkuExhausted, http.StatusConflict},
		{"already exists maps to 409", ErrCodeAlreadyExists, http.StatusConflict},
		{"invalid input maps to 400", ErrCodeInvalidInput, http.StatusBadRequest},
		{"invalid price maps to 400", ErrCodeInvalidPrice, http.StatusBadRequest},
		{"invalid state maps to 422", ErrCodeInvalidState, http.StatusUnprocessableEntity},
		{"unknown code maps to 500", "SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatus(tt.code))
		})
	}
}

func TestNewErrorResponseWithRequestID(t *testing.T) {
	resp := NewErrorResponseWithRequestID(ErrCodeNotFound, "Product not found", "req-123")

	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "Product not found", resp.Error.Message)
	assert.Equal(t, "req-123", resp.Error.RequestID)
}

func TestListRequest_Normalize(t *testing.T) {
	t.Run("fills defaults", func(t *testing.T) {
		var req ListRequest
		req.Normalize()

		assert.Equal(t, 1, req.Page)
		assert.Equal(t, 20, req.PageSize)
		assert.Equal(t, "created_at", req.OrderBy)
		assert.Equal(t, "desc", req.OrderDir)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		req := ListRequest{Page: 3, PageSize: 50, OrderBy: "sku", OrderDir: "asc"}
		req.Normalize()

		assert.Equal(t, 3, req.Page)
		assert.Equal(t, 50, req.PageSize)
		assert.Equal(t, "sku", req.OrderBy)
		assert.Equal(t, "asc", req.OrderDir)
	})
}
