package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/checkmyxy-api/internal/pkg/errors"
)

// handleError преобразует доменные ошибки в HTTP-ответы
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, apperrors.ErrStageLocked):
		c.JSON(http.StatusForbidden, gin.H{"error": "Stage is locked", "error_type": "stage_locked"})
	case errors.Is(err, apperrors.ErrStageCompleted):
		c.JSON(http.StatusConflict, gin.H{"error": "Stage already completed", "error_type": "stage_completed"})
	case errors.Is(err, apperrors.ErrNoActiveAttempt):
		c.JSON(http.StatusConflict, gin.H{"error": "No active attempt", "error_type": "no_active_attempt"})
	case errors.Is(err, apperrors.ErrNoQuestions):
		c.JSON(http.StatusNotFound, gin.H{"error": "No questions for this stage", "error_type": "no_questions"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Conflict"})
	default:
		log.Printf("[Handler] Внутренняя ошибка: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
