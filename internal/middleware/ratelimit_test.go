package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"layover-os/config"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func newTestRouter(requestsPerMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(mockLogger{}, config.RateLimitConfig{RequestsPerMin: requestsPerMin})
	r := gin.New()
	r.GET("/ping", mw.RateLimit(), func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func doRequest(r http.Handler, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit(t *testing.T) {
	// 60/min gives a burst of 6 and a refill of one per second.
	r := newTestRouter(60)

	for i := 0; i < 6; i++ {
		if code := doRequest(r, "10.0.0.1:1234"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, code)
		}
	}
	if code := doRequest(r, "10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Errorf("expected 429 after burst, got %d", code)
	}
	if code := doRequest(r, "10.0.0.2:1234"); code != http.StatusOK {
		t.Errorf("other clients must not be limited, got %d", code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	r := newTestRouter(0)
	for i := 0; i < 50; i++ {
		if code := doRequest(r, "10.0.0.1:1234"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, code)
		}
	}
}

func TestNewRateLimiter_MinimumBurst(t *testing.T) {
	rl := newRateLimiter(3)
	if rl.burst != 1 {
		t.Errorf("expected burst 1, got %d", rl.burst)
	}
	if !rl.Allow("k") {
		t.Error("first request must pass")
	}
}
