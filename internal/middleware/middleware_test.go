package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"item-service/internal/middleware"
	"item-service/pkg/log"
)

type stubStorage struct {
	err error
}

func (s stubStorage) Ready(ctx context.Context) error { return s.err }

func newEngine(mw middleware.Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": log.RequestIDFromContext(c.Request.Context())})
	})
	r.GET("/", handlers...)
	return r
}

func TestRequireStorage(t *testing.T) {
	tcs := []struct {
		name     string
		storage  middleware.StorageChecker
		wantCode int
	}{
		{name: "ready", storage: stubStorage{}, wantCode: http.StatusOK},
		{name: "unavailable", storage: stubStorage{err: errors.New("down")}, wantCode: http.StatusInternalServerError},
		{name: "unset", storage: nil, wantCode: http.StatusInternalServerError},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			mw := middleware.New(log.NewNop(), middleware.Config{Storage: tc.storage})
			r := newEngine(mw, mw.RequireStorage())

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, w.Code)
			}
			if tc.wantCode == http.StatusInternalServerError {
				if w.Body.String() != `{"detail":"Database Connection Error"}` {
					t.Errorf("unexpected body: %s", w.Body.String())
				}
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{})
	r := newEngine(mw, mw.RequestID())

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		id := w.Header().Get(middleware.HeaderRequestID)
		if id == "" {
			t.Fatal("expected a generated request id")
		}
		var body map[string]string
		json.Unmarshal(w.Body.Bytes(), &body)
		if body["request_id"] != id {
			t.Errorf("context id %q != header id %q", body["request_id"], id)
		}
	})

	t.Run("propagated", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.HeaderRequestID, "abc-123")
		r.ServeHTTP(w, req)

		if got := w.Header().Get(middleware.HeaderRequestID); got != "abc-123" {
			t.Errorf("expected abc-123, got %q", got)
		}
	})
}

func TestRateLimit(t *testing.T) {
	// 60/min gives a burst of 6
	mw := middleware.New(log.NewNop(), middleware.Config{RateLimitPerMin: 60})
	r := newEngine(mw, mw.RateLimit())

	var limited int
	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code == http.StatusTooManyRequests {
			limited++
		}
	}
	if limited == 0 {
		t.Error("expected some requests to be rate limited")
	}
}

func TestRateLimitDisabled(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{})
	r := newEngine(mw, mw.RateLimit())

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
}

func TestCORS(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{AllowOrigins: []string{"http://app.example"}})
	r := newEngine(mw, mw.CORS())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://app.example")
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://app.example" {
		t.Errorf("expected allowed origin header, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("expected credentials allowed, got %q", got)
	}

	// other origins are served, just without CORS headers
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.com")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for other origin, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no allow-origin header, got %q", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(log.NewNop(), middleware.Config{AllowOrigins: []string{"http://localhost"}})
	r := gin.New()
	r.Use(mw.CORS())
	r.POST("/item/", func(c *gin.Context) { c.Status(http.StatusOK) })

	tcs := []struct {
		name      string
		requested string
		want      []string
	}{
		{name: "content type", requested: "content-type", want: []string{"Content-Type"}},
		{name: "custom", requested: "content-type,x-custom", want: []string{"Content-Type", "X-Custom"}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodOptions, "/item/", nil)
			req.Header.Set("Origin", "http://localhost")
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			req.Header.Set("Access-Control-Request-Headers", tc.requested)
			r.ServeHTTP(w, req)

			if w.Code != http.StatusNoContent {
				t.Fatalf("expected 204, got %d", w.Code)
			}
			allowHeaders := w.Header().Get("Access-Control-Allow-Headers")
			if allowHeaders == "*" {
				t.Fatal("allow-headers must not be a wildcard with credentials")
			}
			for _, h := range tc.want {
				if !strings.Contains(allowHeaders, h) {
					t.Errorf("expected %s in allow-headers %q", h, allowHeaders)
				}
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost" {
				t.Errorf("expected echoed origin, got %q", got)
			}
			if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
				t.Errorf("expected credentials allowed, got %q", got)
			}
		})
	}
}
