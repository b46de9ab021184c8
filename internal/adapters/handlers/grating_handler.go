package handlers

import (
	"net/http"

	"github.com/iwtcode/lltfService/internal/domain/models"
	"github.com/iwtcode/lltfService/internal/lltf"

	"github.com/gin-gonic/gin"
)

// CalibrateGrating калибрует центральную длину волны решётки.
// @Summary Калибровать решётку
// @Description Выставляет центральную длину волны решётки с заданным индексом.
// @Tags Grating
// @Accept json
// @Produce json
// @Param input body models.CalibrateRequest true "Индекс решётки и длина волны (нм)"
// @Success 200 {object} models.MessageResponse "Сообщение об успешной калибровке"
// @Failure 400 {object} models.ErrorResponse "Неверный запрос или длина волны вне диапазона решётки"
// @Failure 500 {object} models.ErrorResponse "Ошибка устройства"
// @Router /grating/calibrate [post]
func (h *Handler) CalibrateGrating(c *gin.Context) {
	var req models.CalibrateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid request payload")
		return
	}

	h.logger.Info("Requesting grating calibration", "grating", req.GratingIndex, "wavelength", req.Wavelength)

	if err := h.usecase.CalibrateGrating(req.GratingIndex, req.Wavelength); err != nil {
		if lltf.IsInvalidWavelength(err) {
			h.BadRequest(c, err, "Invalid calibration wavelength")
			return
		}
		h.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Grating calibrated successfully",
	})
}
