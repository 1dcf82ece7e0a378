package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sharedhouse/shared/failure"
	"sharedhouse/transport/http/response"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "failure keeps its code and message",
			err:        failure.Conflict("time slot already booked"),
			wantStatus: http.StatusConflict,
			wantBody:   `{"message":"time slot already booked","errorCode":"CONFLICT"}`,
		},
		{
			name:       "unauthorized maps to 403",
			err:        failure.Unauthorized("unauthorized or booking not found"),
			wantStatus: http.StatusForbidden,
			wantBody:   `{"message":"unauthorized or booking not found","errorCode":"UNAUTHORIZED"}`,
		},
		{
			name:       "storage cause is hidden",
			err:        failure.Storage(errors.New("pq: password authentication failed")),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"storage is temporarily unavailable, please retry","errorCode":"STORAGE_ERROR"}`,
		},
		{
			name:       "plain errors are internal",
			err:        errors.New("nil map"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"internal server error","errorCode":"INTERNAL_ERROR"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]int{"count": 1})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"count":1}}`, rec.Body.String())
}

func TestWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithMessage(rec, http.StatusOK, "Booking deleted successfully")

	assert.JSONEq(t, `{"message":"Booking deleted successfully"}`, rec.Body.String())
}
