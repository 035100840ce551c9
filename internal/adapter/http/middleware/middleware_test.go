package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type fakeCounter struct {
	allowed   bool
	remaining int
	err       error
	keys      []string
}

func (f *fakeCounter) Allow(_ context.Context, key string, _ int, window time.Duration) (bool, int, time.Time, error) {
	f.keys = append(f.keys, key)
	return f.allowed, f.remaining, time.Now().Add(window), f.err
}

func newLimitedRouter(counter Counter) *gin.Engine {
	r := gin.New()
	r.Use(RateLimit(counter, 5, time.Minute))
	r.GET("/api/payment/status", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("allowed", func(t *testing.T) {
		counter := &fakeCounter{allowed: true, remaining: 4}
		w := httptest.NewRecorder()
		newLimitedRouter(counter).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/payment/status?id=1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get("X-RateLimit-Limit") != "5" || w.Header().Get("X-RateLimit-Remaining") != "4" {
			t.Fatalf("missing rate limit headers: %+v", w.Header())
		}
		if len(counter.keys) != 1 || counter.keys[0] != "rate_limit:pix:192.0.2.1:/api/payment/status" {
			t.Fatalf("unexpected keys: %v", counter.keys)
		}
	})

	t.Run("blocked", func(t *testing.T) {
		w := httptest.NewRecorder()
		newLimitedRouter(&fakeCounter{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/payment/status", nil))

		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}
		if w.Header().Get("Retry-After") == "" {
			t.Fatalf("expected Retry-After header")
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != false || body["code"] != "RATE_LIMITED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("counter failure lets request through", func(t *testing.T) {
		w := httptest.NewRecorder()
		newLimitedRouter(&fakeCounter{err: errors.New("redis down")}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/payment/status", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get("X-RateLimit-Limit") != "" {
			t.Fatalf("headers must not be set when the counter fails")
		}
	})
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ContextRequestID)) })

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		id := w.Header().Get(HeaderRequestID)
		if id == "" || w.Body.String() != id {
			t.Fatalf("expected generated id in header and context, got header=%q body=%q", id, w.Body.String())
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Header().Get(HeaderRequestID) != "abc-123" {
			t.Fatalf("expected incoming id, got %q", w.Header().Get(HeaderRequestID))
		}
	})
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["message"] != "Erro interno" || body["error"] != "boom" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
