package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/checkmyxy-api/internal/domain/entity"
)

// StageKey — ключ контекста Gin с номером этапа
const StageKey = "stage"

// ExtractUintParam создает middleware для извлечения и валидации числового параметра URL.
// paramName - имя параметра в URL (например, "id").
// contextKey - ключ, под которым значение будет сохранено в контексте Gin.
func ExtractUintParam(paramName, contextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param(paramName)
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid %s", paramName)})
			c.Abort()
			return
		}
		// Сохраняем как uint для единообразия
		c.Set(contextKey, uint(id))
		c.Next()
	}
}

// ExtractStageParam извлекает параметр этапа и проверяет диапазон 1..3
func ExtractStageParam(paramName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		stageStr := c.Param(paramName)
		stage, err := strconv.Atoi(stageStr)
		if err != nil || stage < entity.MinStage || stage > entity.MaxStage {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid stage, expected %d..%d", entity.MinStage, entity.MaxStage)})
			c.Abort()
			return
		}
		c.Set(StageKey, stage)
		c.Next()
	}
}
