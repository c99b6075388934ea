package router

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"maasaicraft.co.ke/shop/api/pkg/checkout"
	"maasaicraft.co.ke/shop/api/pkg/global"
	"maasaicraft.co.ke/shop/api/pkg/redis"
)

const sessionContextKey = "session"

// SessionMiddleware resolves the :sessionId path parameter to a live
// checkout session and aborts with 404 when it does not exist.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionId")
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("session id required", []global.ValidationError{
				{Field: "sessionId", Message: "session id path parameter is required", Code: "required"},
			}))
			c.Abort()
			return
		}

		session, ok := sessions.Get(sessionID)
		if !ok {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Session not found", []global.ValidationError{
				{Field: "sessionId", Message: "No session exists with this id", Code: "not_found"},
			}))
			c.Abort()
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

func currentSession(c *gin.Context) *checkout.Session {
	return c.MustGet(sessionContextKey).(*checkout.Session)
}

// AdminAuthMiddleware checks the Bearer token against the active admin
// tokens in Redis.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || token == "" {
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("Authorization required", nil))
			c.Abort()
			return
		}

		email, err := redis.CheckAdminToken(c.Request.Context(), token)
		if err != nil {
			log.Printf("Error checking admin token: %v", err)
			c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to verify credentials", nil))
			c.Abort()
			return
		}
		if email == "" {
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid or expired token", nil))
			c.Abort()
			return
		}

		c.Set("admin_email", email)
		c.Set("admin_token", token)
		c.Next()
	}
}
