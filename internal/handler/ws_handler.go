package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	gorillaws "github.com/gorilla/websocket"

	"github.com/yourusername/checkmyxy-api/internal/websocket"
	"github.com/yourusername/checkmyxy-api/pkg/auth"
)

// WSHandler обрабатывает WebSocket-подключения панели учителя
type WSHandler struct {
	manager    *websocket.Manager
	jwtService *auth.JWTService
	upgrader   gorillaws.Upgrader
}

// NewWSHandler создает новый обработчик WebSocket
func NewWSHandler(manager *websocket.Manager, jwtService *auth.JWTService) *WSHandler {
	return &WSHandler{
		manager:    manager,
		jwtService: jwtService,
		upgrader: gorillaws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleConnection апгрейдит соединение для live-ленты результатов.
// Браузерный WebSocket не умеет ставить заголовки, поэтому JWT
// передаётся query-параметром token.
func (h *WSHandler) HandleConnection(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token query parameter is required"})
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil || claims.Role != auth.RoleTeacher {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WSHandler] Ошибка апгрейда соединения: %v", err)
		return
	}

	client := websocket.NewClient(h.manager.Hub(), conn)
	go client.WritePump()
	go client.ReadPump()
}
