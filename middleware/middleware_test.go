package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/seo-optimizer/contentseo/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(r http.Handler, method, path, remote string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if remote != "" {
		req.RemoteAddr = remote
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestErrorHandler(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	r := gin.New()
	r.Use(ErrorHandler(zap.New(core)))
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "fine") })

	rec := perform(r, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"An unexpected error occurred"}`, rec.Body.String())
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "/boom", logs.All()[0].ContextMap()["path"])

	rec = perform(r, http.MethodGet, "/ok", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(RequestLogger(zap.New(core)))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusAccepted) })

	perform(r, http.MethodGet, "/x", "")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, int64(http.StatusAccepted), logs.All()[0].ContextMap()["status"])
}

func withClock(t *testing.T, now *time.Time) {
	t.Helper()
	prev := timeNow
	timeNow = func() time.Time { return *now }
	t.Cleanup(func() { timeNow = prev })
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	withClock(t, &now)

	rl := NewRateLimiter(2, 5)
	r := gin.New()
	r.Use(rl.RateLimit())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/", "10.0.0.1:1234").Code, "request %d", i)
	}
	rec := perform(r, http.MethodGet, "/", "10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Other clients have their own bucket.
	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/", "10.0.0.2:1234").Code)

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/", "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/", "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, perform(r, http.MethodGet, "/", "10.0.0.1:1234").Code)
}

func TestRateLimiterPrune(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	withClock(t, &now)

	rl := NewRateLimiter(1, 1)
	rl.Allow("a")
	now = now.Add(11 * time.Minute)
	rl.Allow("b")

	assert.Equal(t, 1, rl.Prune())
	assert.Equal(t, 1, rl.Clients())
}

func TestStats(t *testing.T) {
	stats := logging.NewStatistics("", true, nil)
	r := gin.New()
	r.Use(Stats(stats))
	r.POST("/api/analyze/url", func(c *gin.Context) {
		c.Set(PageURLKey, "https://example.com/post")
		c.Status(http.StatusBadGateway)
	})
	r.POST("/api/analyze", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	perform(r, http.MethodPost, "/api/analyze/url", "10.0.0.1:1")
	perform(r, http.MethodPost, "/api/analyze", "10.0.0.2:1")
	perform(r, http.MethodGet, "/api/health", "10.0.0.1:1")

	snap := stats.Snapshot()
	assert.Equal(t, 3, snap["totalRequests"])
	assert.Equal(t, 2, snap["analysisRequests"])
	assert.Equal(t, 2, snap["uniqueVisitors24h"])
	assert.InDelta(t, 50.0, snap["errorRate"], 1e-9)
	assert.Equal(t, []logging.HostCount{{Host: "example.com", Count: 1}}, stats.GetPopularHosts(5))
}
