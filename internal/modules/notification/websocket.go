package notification

import (
	"log"
	"net/http"

	jwtsvc "powerlink/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,

	// Browsers cannot set custom headers on websocket handshakes, so the
	// origin check is left open; tighten per deployment.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSHandler upgrades authenticated clients and parks them in the hub.
//
// Endpoint: GET /api/ws?token=JWT_TOKEN
// Token comes via query parameter because websocket handshakes cannot carry
// an Authorization header from the browser.
type WSHandler struct {
	hub        *Hub
	jwtService *jwtsvc.Service
}

func NewWSHandler(hub *Hub, jwtService *jwtsvc.Service) *WSHandler {
	return &WSHandler{hub: hub, jwtService: jwtService}
}

func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Token is required. Use ?token=YOUR_JWT_TOKEN",
		})
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Invalid or expired token",
		})
		return
	}

	userID := claims.UserID

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	log.Printf("user %d connected for notifications", userID)
	h.hub.ServeWS(conn, userID)
	log.Printf("user %d disconnected from notifications", userID)
}
