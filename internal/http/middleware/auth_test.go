package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"briks_webapp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newSessionRouter() *gin.Engine {
	r := gin.New()
	r.GET("/me", Session(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString("user_id")})
	})
	return r
}

func TestSessionAcceptsValidToken(t *testing.T) {
	service.InitSessions("test-secret")
	r := newSessionRouter()

	token, err := service.GenerateSessionToken("user-42")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "user-42")
}

func TestSessionRejectsBadCredentials(t *testing.T) {
	service.InitSessions("test-secret")
	r := newSessionRouter()

	cases := map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic abc",
		"empty token":    "Bearer ",
		"garbage token":  "Bearer not-a-jwt",
	}
	for name, header := range cases {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code, name)
	}
}
