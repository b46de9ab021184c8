package handlers

import (
	"net/http"

	"github.com/iwtcode/lltfService/internal/domain/models"
	"github.com/iwtcode/lltfService/internal/lltf"

	"github.com/gin-gonic/gin"
)

// Command выполняет команду управления фильтром.
// @Summary Выполнить команду фильтра
// @Description Принимает JSON-команду: {"command":"status"} или {"command":"set_wave","data":600.0}.
// @Tags LLTF
// @Accept json
// @Produce json
// @Param input body models.CommandRequest true "Команда и её аргумент"
// @Success 200 {object} models.StatusResponse "Снимок состояния или результат установки"
// @Failure 400 {object} models.ErrorResponse "Неверная команда или длина волны вне диапазона"
// @Failure 500 {object} models.ErrorResponse "Ошибка устройства"
// @Router /lltf [post]
func (h *Handler) Command(c *gin.Context) {
	var req models.CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid request payload")
		return
	}

	switch req.Command {
	case "status":
		h.status(c)
	case "set_wave":
		h.setWave(c, req)
	}
}

func (h *Handler) status(c *gin.Context) {
	h.logger.Info("Requesting filter status")

	status, err := h.usecase.Status()
	if err != nil {
		h.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "filter": status})
}

func (h *Handler) setWave(c *gin.Context, req models.CommandRequest) {
	if req.Data == nil {
		h.BadRequest(c, nil, "Specify wavelength (nm) in the 'data' field")
		return
	}
	wavelength := *req.Data

	h.logger.Info("Requesting wavelength change", "wavelength", wavelength)

	result, err := h.usecase.SetWave(wavelength)
	if err != nil {
		// Длина волны вне диапазона прибора — ошибка входных данных,
		// а не неисправность устройства.
		if lltf.IsInvalidWavelength(err) {
			h.BadRequest(c, err, "Invalid input wavelength")
			return
		}
		h.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "result": result})
}
