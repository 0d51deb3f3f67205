package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prudhivi99/shop-manager/internal/apperrors"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperrors.Validation("bad"), http.StatusBadRequest},
		{"not found", apperrors.NotFound("missing"), http.StatusNotFound},
		{"invalid reference", apperrors.InvalidReference("Product %s not found in stock", "p1"), http.StatusBadRequest},
		{"insufficient stock", apperrors.InsufficientStock("p1", "Widget", 2, 5), http.StatusBadRequest},
		{"conflict", apperrors.Conflict("in use"), http.StatusConflict},
		{"store", apperrors.Store(errors.New("pq: connection refused")), http.StatusInternalServerError},
		{"untyped", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("create delivery: %w", apperrors.NotFound("Delivery not found")), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.HTTPStatus(tt.err))
		})
	}
}

func TestInsufficientStockMessage(t *testing.T) {
	err := apperrors.InsufficientStock("p1", "Widget", 2, 5)
	assert.Equal(t, "Insufficient stock for Widget. Available: 2, Requested: 5", err.Error())

	unnamed := apperrors.InsufficientStock("p1", "", 0, 1)
	assert.Equal(t, "Insufficient stock for product. Available: 0, Requested: 1", unnamed.Error())
}

func TestStoreKeepsMessage(t *testing.T) {
	cause := errors.New("failed to query payments: pq: relation \"payments\" does not exist")
	err := apperrors.Store(cause)

	assert.Equal(t, cause.Error(), err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, apperrors.Is(err, apperrors.KindStore))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, apperrors.Kind(""), apperrors.KindOf(nil))
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(apperrors.Validation("x")))
	assert.False(t, apperrors.Is(nil, apperrors.KindStore))
}
