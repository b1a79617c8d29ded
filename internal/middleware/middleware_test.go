package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/yigit/contractors/internal/app/models/dto"
	"github.com/yigit/contractors/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(handler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), Recovery(), CORS(), AccessLog())
	router.GET("/test", handler)
	return router
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) dto.APIResponse {
	t.Helper()
	var body dto.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not an envelope: %v (%s)", err, rec.Body.String())
	}
	return body
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"contractor not found", apperrors.ErrContractorNotFound, http.StatusNotFound, "人员不存在"},
		{"wrapped not found", fmt.Errorf("lookup: %w", apperrors.ErrResourceNotFound), http.StatusNotFound, "resource not found"},
		{"validation collapses to 500", apperrors.NewValidationError("page must be at least 1, got 0"), http.StatusInternalServerError, "page must be at least 1, got 0"},
		{"database failure", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), http.StatusInternalServerError, "dial tcp 127.0.0.1:5432: connect: connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(func(c *gin.Context) { HandleAPIError(c, tt.err) })
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			body := decodeEnvelope(t, rec)
			if body.Code != tt.wantStatus || body.Message != tt.wantMessage || body.Data != nil {
				t.Errorf("envelope = %+v, want code %d message %q", body, tt.wantStatus, tt.wantMessage)
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	router := newTestRouter(func(c *gin.Context) { panic("boom") })
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if body := decodeEnvelope(t, rec); body.Code != 500 || body.Message != "boom" {
		t.Errorf("envelope = %+v", body)
	}
}

func TestCORSPreflight(t *testing.T) {
	called := false
	router := newTestRouter(func(c *gin.Context) { called = true })
	router.OPTIONS("/test", func(c *gin.Context) { called = true })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/test", nil))

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
	if called {
		t.Error("preflight reached the handler")
	}
}

func TestCORSHeadersOnGet(t *testing.T) {
	router := newTestRouter(func(c *gin.Context) { c.Status(http.StatusOK) })
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	router := newTestRouter(func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))
	generated := rec.Header().Get(RequestIDHeader)
	if generated == "" || generated != seen {
		t.Errorf("generated id %q, handler saw %q", generated, seen)
	}

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got != "abc-123" || seen != "abc-123" {
		t.Errorf("incoming id not reused: header %q, handler %q", got, seen)
	}
}
