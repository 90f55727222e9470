package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/adikale/placementhub/internal/app/models/dto"
	"github.com/adikale/placementhub/internal/pkg/apperrors"
)

func performWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)
	return w
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"drive not found", apperrors.ErrDriveNotFound, http.StatusNotFound},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound},
		{"profile not found", apperrors.ErrProfileNotFound, http.StatusNotFound},
		{"slot not found", apperrors.ErrSlotNotFound, http.StatusNotFound},
		{"already applied", apperrors.ErrAlreadyApplied, http.StatusConflict},
		{"drive completed", apperrors.ErrDriveCompleted, http.StatusConflict},
		{"interview slot taken", apperrors.ErrInterviewSlotTaken, http.StatusConflict},
		{"slot unavailable", apperrors.ErrSlotUnavailable, http.StatusConflict},
		{"email taken", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"token expired", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"token revoked", apperrors.ErrTokenRevoked, http.StatusUnauthorized},
		{"bad request", apperrors.ErrBadRequest, http.StatusBadRequest},
		{"invalid status", apperrors.ErrInvalidStatus, http.StatusBadRequest},
		{"invalid transition", apperrors.ErrInvalidTransition, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performWithError(t, tt.err)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var resp dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if resp.Success {
				t.Error("success = true, want false")
			}
			if resp.Error == nil {
				t.Fatal("error detail missing")
			}
		})
	}
}

func TestHandleAPIErrorWrappedError(t *testing.T) {
	wrapped := apperrors.NewBadRequestError("message is required")

	w := performWithError(t, wrapped)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if resp.Error.Message != "message is required" {
		t.Errorf("message = %q, want %q", resp.Error.Message, "message is required")
	}
}

func TestHandleAPIErrorInternalHidesDetails(t *testing.T) {
	w := performWithError(t, errors.New("pq: connection refused"))

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if resp.Error.Message == "pq: connection refused" {
		t.Error("internal error detail leaked to the client")
	}
}

func TestHandleAPIErrorNil(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleAPIError(c, nil)
	if w.Body.Len() != 0 {
		t.Errorf("expected empty body for nil error, got %q", w.Body.String())
	}
}
