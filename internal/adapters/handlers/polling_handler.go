package handlers

import (
	"net/http"
	"time"

	"github.com/iwtcode/lltfService/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// StartPolling запускает периодический опрос фильтра.
// @Summary Запустить опрос
// @Description Запускает периодический сбор статуса фильтра с заданным интервалом и публикацию его в Kafka.
// @Tags Polling
// @Accept json
// @Produce json
// @Param input body models.PollingRequest true "Параметры для запуска опроса"
// @Success 200 {object} models.MessageResponse "Сообщение об успешном запуске"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 500 {object} models.ErrorResponse "Внутренняя ошибка сервера"
// @Router /polling/start [post]
func (h *Handler) StartPolling(c *gin.Context) {
	var req models.PollingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid request payload")
		return
	}

	duration := time.Duration(req.Interval) * time.Millisecond
	h.logger.Info("Attempting to start polling", "interval", duration)

	if err := h.usecase.StartPolling(duration); err != nil {
		h.InternalError(c, err)
		return
	}

	h.logger.Info("Polling started successfully", "interval", duration)
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Polling started successfully",
	})
}

// StopPolling останавливает периодический опрос фильтра.
// @Summary Остановить опрос
// @Description Останавливает периодический сбор статуса фильтра.
// @Tags Polling
// @Produce json
// @Success 200 {object} models.MessageResponse "Сообщение об успешной остановке"
// @Failure 500 {object} models.ErrorResponse "Внутренняя ошибка сервера"
// @Router /polling/stop [post]
func (h *Handler) StopPolling(c *gin.Context) {
	h.logger.Info("Attempting to stop polling")

	if err := h.usecase.StopPolling(); err != nil {
		h.InternalError(c, err)
		return
	}

	h.logger.Info("Polling stopped successfully")
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Polling stopped successfully",
	})
}
