package middleware

import (
	"net/http"
	"strings"

	"briks_webapp/internal/service"

	"github.com/gin-gonic/gin"
)

// Session requires a bearer session token and stores the resolved user id
// in the context under "user_id".
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		userID, err := service.ParseSessionToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
