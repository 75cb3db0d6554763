package websocket

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"police-feedback-server/utils"
)

// AdminFeedHandler upgrades authenticated admin dashboards onto the live
// feedback feed. Browsers cannot set headers on websocket requests, so the
// JWT is passed as a query parameter instead of a Bearer header.
func AdminFeedHandler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication token required"})
			return
		}

		claims, err := utils.VerifyToken(token)
		if err != nil {
			log.Printf("❌ WebSocket token verification failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if claims.Role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		ServeWebSocket(hub, c.Writer, c.Request)
	}
}
