package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestMarkReadRejectsBadID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	controller := NewNotificationController(nil)

	tests := []struct {
		name string
		id   string
	}{
		{"non-numeric", "abc"},
		{"empty", ""},
		{"float", "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request = httptest.NewRequest(http.MethodPost, "/notifications/"+tt.id+"/read", nil)
			ctx.Params = gin.Params{{Key: "id", Value: tt.id}}

			controller.MarkRead(ctx)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
			if !strings.Contains(w.Body.String(), "notification ID") {
				t.Errorf("body %q does not name the bad parameter", w.Body.String())
			}
		})
	}
}
