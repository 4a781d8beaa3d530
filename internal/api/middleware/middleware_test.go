package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dessert-catalog/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeClock 可手動推進的時鐘
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestRateLimiter(t *testing.T) {
	t.Run("Should allow a full burst then reject", func(t *testing.T) {
		clock := &fakeClock{t: time.Unix(0, 0)}
		limiter := newRateLimiter(3, time.Minute, clock.now)

		assert.True(t, limiter.Allow())
		assert.True(t, limiter.Allow())
		assert.True(t, limiter.Allow())
		assert.False(t, limiter.Allow())
	})

	t.Run("Should refill proportionally to elapsed time", func(t *testing.T) {
		clock := &fakeClock{t: time.Unix(0, 0)}
		limiter := newRateLimiter(2, 10*time.Second, clock.now)
		require.True(t, limiter.Allow())
		require.True(t, limiter.Allow())
		require.False(t, limiter.Allow())

		clock.advance(6 * time.Second)

		assert.True(t, limiter.Allow())
		assert.False(t, limiter.Allow())
	})

	t.Run("Should not exceed capacity after a long pause", func(t *testing.T) {
		clock := &fakeClock{t: time.Unix(0, 0)}
		limiter := newRateLimiter(2, time.Second, clock.now)

		clock.advance(time.Hour)

		assert.True(t, limiter.Allow())
		assert.True(t, limiter.Allow())
		assert.False(t, limiter.Allow())
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	router := gin.New()
	router.Use(rateLimitWith(newRateLimiter(1, 1500*time.Millisecond, clock.now), 1500*time.Millisecond))
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "2", second.Header().Get("Retry-After"))
	assert.Contains(t, second.Body.String(), common.ErrCodeTooManyRequests)
}

func TestTimeout(t *testing.T) {
	t.Run("Should answer 504 when the handler gives up after the deadline", func(t *testing.T) {
		router := gin.New()
		router.Use(Timeout(20 * time.Millisecond))
		router.GET("/", func(c *gin.Context) {
			<-c.Request.Context().Done()
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusGatewayTimeout, w.Code)
		assert.Contains(t, w.Body.String(), common.ErrCodeGatewayTimeout)
	})

	t.Run("Should keep a response written before the deadline", func(t *testing.T) {
		router := gin.New()
		router.Use(Timeout(20 * time.Millisecond))
		router.GET("/", func(c *gin.Context) {
			c.String(http.StatusOK, "done")
			<-c.Request.Context().Done()
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "done", w.Body.String())
	})

	t.Run("Should pass through when disabled", func(t *testing.T) {
		router := gin.New()
		router.Use(Timeout(0))
		router.GET("/", func(c *gin.Context) {
			_, hasDeadline := c.Request.Context().Deadline()
			assert.False(t, hasDeadline)
			c.Status(http.StatusNoContent)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(Recovery())
	router.GET("/", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), common.ErrCodeInternalError)
}

func TestMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics, err := NewMetrics(registry)
	require.NoError(t, err)

	router := gin.New()
	router.Use(metrics.Handler())
	router.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/items/1", "/items/2", "/missing"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	w := httptest.NewRecorder()
	promhttp.HandlerFor(registry, promhttp.HandlerOpts{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := w.Body.String()
	assert.Contains(t, body, `dessert_catalog_http_requests_total{method="GET",route="/items/:id",status="200"} 2`)
	assert.Contains(t, body, `dessert_catalog_http_requests_total{method="GET",route="unmatched",status="404"} 1`)

	_, err = NewMetrics(registry)
	assert.Error(t, err, "registering twice should fail")
}
