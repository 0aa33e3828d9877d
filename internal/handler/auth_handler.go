package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/checkmyxy-api/internal/service"
)

// AuthHandler обрабатывает вход учителя
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler создает новый обработчик аутентификации
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// TeacherLoginRequest представляет запрос на вход учителя
type TeacherLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginTeacher проверяет пароль учителя и выдаёт JWT
func (h *AuthHandler) LoginTeacher(c *gin.Context) {
	var req TeacherLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authService.LoginTeacher(req.Password)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
