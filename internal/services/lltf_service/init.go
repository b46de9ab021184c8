package lltf_service

import (
	"time"

	"github.com/iwtcode/lltfService/internal/config"
	"github.com/iwtcode/lltfService/internal/domain/models"
	"github.com/iwtcode/lltfService/internal/interfaces"
	"github.com/iwtcode/lltfService/internal/lltf"
	"github.com/iwtcode/lltfService/internal/middleware/logging"
)

type lltfService struct {
	ctrl    *DeviceController
	pollMgr *PollingManager
}

// NewLLTFService собирает сервисный слой вокруг единственной сессии фильтра.
func NewLLTFService(cfg *config.AppConfig, binding lltf.Binding, repo interfaces.CommandRepository, producer interfaces.KafkaService, logger *logging.Logger) interfaces.LLTFService {
	session := lltf.NewSession(binding, cfg.LLTF.ConfigFile, logger)
	policy := lltf.Policy{
		ToleranceNM:   cfg.LLTF.ToleranceNM,
		HarmonicMinNM: cfg.LLTF.HarmonicMinNM,
		HarmonicMaxNM: cfg.LLTF.HarmonicMaxNM,
	}
	filter := lltf.NewFilter(session, cfg.LLTF.SystemIndex, policy, logger)

	controller := NewDeviceController(filter, logger)
	pollingManager := NewPollingManager(controller, repo, producer, logger)

	return &lltfService{
		ctrl:    controller,
		pollMgr: pollingManager,
	}
}

// --- Реализация методов интерфейса LLTFService ---

func (s *lltfService) Status() (*models.FilterStatus, error) {
	return s.ctrl.Status()
}

func (s *lltfService) SetWave(wavelength float64) (*models.SetWaveResult, error) {
	return s.ctrl.SetWave(wavelength)
}

func (s *lltfService) CalibrateGrating(gratingIndex int, wavelength float64) error {
	return s.ctrl.CalibrateGrating(gratingIndex, wavelength)
}

func (s *lltfService) StartPolling(interval time.Duration) error {
	return s.pollMgr.StartPolling(interval)
}

func (s *lltfService) StopPolling() error {
	return s.pollMgr.StopPolling()
}

func (s *lltfService) IsPollingActive() bool {
	return s.pollMgr.IsPollingActive()
}
