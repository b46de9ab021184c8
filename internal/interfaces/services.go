package interfaces

import (
	"time"

	"github.com/iwtcode/lltfService/internal/domain/models"
)

// LLTFService — это агрегирующий интерфейс для всей бизнес-логики.
type LLTFService interface {
	FilterController
	PollingManager
}

// FilterController определяет контракт для операций над фильтром.
// Реализация обязана сериализовать вызовы: у процесса ровно один хендл
// к прибору, и операции над ним строго последовательны.
type FilterController interface {
	Status() (*models.FilterStatus, error)
	SetWave(wavelength float64) (*models.SetWaveResult, error)
	CalibrateGrating(gratingIndex int, wavelength float64) error
}

// PollingManager определяет контракт для периодического опроса фильтра.
type PollingManager interface {
	StartPolling(interval time.Duration) error
	StopPolling() error
	IsPollingActive() bool
}
