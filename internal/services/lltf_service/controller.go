package lltf_service

import (
	"sync"

	"github.com/iwtcode/lltfService/internal/domain/models"
	"github.com/iwtcode/lltfService/internal/lltf"
	"github.com/iwtcode/lltfService/internal/middleware/logging"
)

// DeviceController сериализует доступ к единственному фильтру процесса.
// Ядро (lltf.Filter/Session) не реентерабельно для конкурентных вызовов:
// мьютекс удерживается на весь цикл open → operate → close, так что два
// запроса никогда не чередуются на одном хендле.
type DeviceController struct {
	mu     sync.Mutex
	filter *lltf.Filter
	logger *logging.Logger
}

func NewDeviceController(filter *lltf.Filter, logger *logging.Logger) *DeviceController {
	return &DeviceController{
		filter: filter,
		logger: logger.WithPrefix("DEVICE"),
	}
}

// Status возвращает агрегированный снимок состояния фильтра.
func (c *DeviceController) Status() (*models.FilterStatus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	status, err := c.filter.Status()
	if err != nil {
		c.logger.Error("Status request failed", "error", err)
		return nil, err
	}
	return status, nil
}

// CalibrateGrating выставляет центральную длину волны решётки.
func (c *DeviceController) CalibrateGrating(gratingIndex int, wavelength float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.filter.CalibrateGrating(gratingIndex, wavelength); err != nil {
		c.logger.Error("CalibrateGrating request failed", "grating", gratingIndex, "wavelength", wavelength, "error", err)
		return err
	}
	return nil
}

// SetWave устанавливает центральную длину волны фильтра.
func (c *DeviceController) SetWave(wavelength float64) (*models.SetWaveResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	result, err := c.filter.SetWave(wavelength)
	if err != nil {
		c.logger.Error("SetWave request failed", "wavelength", wavelength, "error", err)
		return nil, err
	}
	if !result.Changed {
		c.logger.Info("Wavelength already within tolerance, no change needed", "wavelength", wavelength)
	}
	return result, nil
}
