package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultCommandsLimit = 50

// RecentCommands возвращает журнал команд управления фильтром.
// @Summary Журнал команд
// @Description Возвращает последние записи журнала команд, новые первыми.
// @Tags Commands
// @Produce json
// @Param limit query int false "Максимальное число записей (по умолчанию 50)"
// @Success 200 {object} map[string]interface{} "Список записей журнала"
// @Failure 400 {object} models.ErrorResponse "Неверный параметр limit"
// @Failure 500 {object} models.ErrorResponse "Внутренняя ошибка сервера"
// @Router /commands [get]
func (h *Handler) RecentCommands(c *gin.Context) {
	limit := defaultCommandsLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.BadRequest(c, err, "Parameter 'limit' must be a positive integer")
			return
		}
		limit = parsed
	}

	records, err := h.usecase.RecentCommands(limit)
	if err != nil {
		h.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "commands": records})
}
