package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/checkmyxy-api/internal/domain/entity"
	"github.com/yourusername/checkmyxy-api/internal/service"
)

// IdentityKey — ключ контекста Gin с идентичностью ученика
const IdentityKey = "student_identity"

// SessionMiddleware связывает токен сессии с идентичностью ученика
type SessionMiddleware struct {
	studentService *service.StudentService
}

// NewSessionMiddleware создает новый middleware сессий учеников
func NewSessionMiddleware(studentService *service.StudentService) *SessionMiddleware {
	return &SessionMiddleware{studentService: studentService}
}

// RequireStudent проверяет заголовок X-Session-Token и кладёт идентичность в контекст
func (m *SessionMiddleware) RequireStudent() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Session-Token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session token is required", "error_type": "session_missing"})
			c.Abort()
			return
		}

		identity, err := m.studentService.IdentityFor(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session", "error_type": "session_invalid"})
			c.Abort()
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// StudentIdentity извлекает идентичность ученика из контекста Gin
func StudentIdentity(c *gin.Context) (entity.StudentIdentity, bool) {
	value, exists := c.Get(IdentityKey)
	if !exists {
		return entity.StudentIdentity{}, false
	}
	identity, ok := value.(entity.StudentIdentity)
	return identity, ok
}
