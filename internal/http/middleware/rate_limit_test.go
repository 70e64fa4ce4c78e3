package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type fakeLimiter struct {
	allowed int
	calls   int
	err     error
}

func (f *fakeLimiter) Allow(_ context.Context, _ string) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return f.calls <= f.allowed, nil
}

func serveLimited(t *testing.T, lim *fakeLimiter, n int) []int {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(lim, nil))
	r.GET("/store/collections/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, n)
	for i := 0; i < n; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/store/collections/", nil))
		codes = append(codes, rec.Code)
		if rec.Code == http.StatusTooManyRequests && rec.Body.String() != `{"detail":"Request was throttled."}` {
			t.Fatalf("unexpected throttle body: %s", rec.Body.String())
		}
	}
	return codes
}

func TestRateLimitRejectsOnceLimiterDenies(t *testing.T) {
	codes := serveLimited(t, &fakeLimiter{allowed: 2}, 3)
	want := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("request %d: got=%d want=%d", i, codes[i], want[i])
		}
	}
}

func TestRateLimitFailsOpen(t *testing.T) {
	codes := serveLimited(t, &fakeLimiter{err: errors.New("redis down")}, 2)
	for i, code := range codes {
		if code != http.StatusOK {
			t.Fatalf("request %d: got=%d want=%d", i, code, http.StatusOK)
		}
	}
}
