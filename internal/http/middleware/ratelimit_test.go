package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newLimitedRouter(max int, window time.Duration) *gin.Engine {
	r := gin.New()
	r.GET("/ping", RateLimit(max, window), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return r
}

func hit(r *gin.Engine, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestLocalRateLimitBlocksAboveWindow(t *testing.T) {
	r := newLimitedRouter(3, time.Minute)

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, hit(r, "10.0.0.1:1000"))
	}
	require.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.1:1000"))
	require.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.1:1000"))
}

func TestLocalRateLimitIsPerIP(t *testing.T) {
	r := newLimitedRouter(1, time.Minute)

	require.Equal(t, http.StatusOK, hit(r, "10.0.0.2:1000"))
	require.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.2:1000"))
	// a different client gets its own window
	require.Equal(t, http.StatusOK, hit(r, "10.0.0.3:1000"))
}

func TestLocalRateLimitWindowExpires(t *testing.T) {
	r := newLimitedRouter(1, 50*time.Millisecond)

	require.Equal(t, http.StatusOK, hit(r, "10.0.0.4:1000"))
	require.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.4:1000"))

	time.Sleep(60 * time.Millisecond)
	require.Equal(t, http.StatusOK, hit(r, "10.0.0.4:1000"))
}
