package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cinescope/cinescope/internal/usecase"
)

func TestMapUsecaseError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"movie not found", usecase.ErrMovieNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"summary not found", usecase.ErrSummaryNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"classifier unavailable", usecase.ErrClassifierUnavailable, http.StatusBadGateway, "SERVICE_UNAVAILABLE"},
		{"wrapped classifier unavailable", fmt.Errorf("%w: connection refused", usecase.ErrClassifierUnavailable), http.StatusBadGateway, "SERVICE_UNAVAILABLE"},
		{"invalid genre", usecase.ErrInvalidGenre, http.StatusBadRequest, "INVALID_REQUEST"},
		{"invalid gender", usecase.ErrInvalidGender, http.StatusBadRequest, "INVALID_REQUEST"},
		{"invalid height range", usecase.ErrInvalidHeightRange, http.StatusBadRequest, "INVALID_REQUEST"},
		{"invalid request", usecase.ErrInvalidRequest, http.StatusBadRequest, "INVALID_REQUEST"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := MapUsecaseError(tt.err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.NotEmpty(t, resp.Message)
		})
	}
}
