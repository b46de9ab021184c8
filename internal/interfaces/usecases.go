package interfaces

import (
	"time"

	"github.com/iwtcode/lltfService/internal/domain/entities"
	"github.com/iwtcode/lltfService/internal/domain/models"
)

// Usecases - это агрегирующий интерфейс для всех use cases
type Usecases interface {
	Status() (*models.FilterStatus, error)
	SetWave(wavelength float64) (*models.SetWaveResult, error)
	CalibrateGrating(gratingIndex int, wavelength float64) error
	RecentCommands(limit int) ([]entities.CommandRecord, error)
	StartPolling(interval time.Duration) error
	StopPolling() error
}
