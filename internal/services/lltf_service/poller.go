package lltf_service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/iwtcode/lltfService/internal/interfaces"
	"github.com/iwtcode/lltfService/internal/middleware/logging"
)

type activePoll struct {
	ticker *time.Ticker
	done   chan bool
}

// PollingManager периодически снимает статус фильтра и публикует его в
// Kafka. Опрос один на процесс, как и сам фильтр.
type PollingManager struct {
	ctrl       *DeviceController
	dbRepo     interfaces.CommandRepository
	producer   interfaces.KafkaService
	logger     *logging.Logger
	poll       *activePoll
	pollsMutex sync.Mutex
}

func NewPollingManager(ctrl *DeviceController, dbRepo interfaces.CommandRepository, producer interfaces.KafkaService, logger *logging.Logger) *PollingManager {
	return &PollingManager{
		ctrl:     ctrl,
		dbRepo:   dbRepo,
		producer: producer,
		logger:   logger.WithPrefix("POLLER"),
	}
}

func (pm *PollingManager) IsPollingActive() bool {
	pm.pollsMutex.Lock()
	defer pm.pollsMutex.Unlock()
	return pm.poll != nil
}

func (pm *PollingManager) StartPolling(interval time.Duration) error {
	pm.pollsMutex.Lock()
	defer pm.pollsMutex.Unlock()

	if pm.poll != nil {
		return fmt.Errorf("опрос фильтра уже запущен")
	}

	if err := pm.dbRepo.UpdatePollingState(true, int(interval.Milliseconds())); err != nil {
		return fmt.Errorf("не удалось сохранить состояние опроса в БД: %w", err)
	}

	pm.startPollingUnsafe(interval)
	return nil
}

func (pm *PollingManager) StopPolling() error {
	pm.pollsMutex.Lock()
	defer pm.pollsMutex.Unlock()

	if err := pm.dbRepo.UpdatePollingState(false, 0); err != nil {
		pm.logger.Error("Failed to update polling state in DB when stopping", "error", err)
	}

	pm.stopPollingUnsafe()
	return nil
}

func (pm *PollingManager) stopPollingUnsafe() {
	if pm.poll == nil {
		return
	}
	pm.poll.ticker.Stop()
	pm.poll.done <- true
	close(pm.poll.done)
	pm.poll = nil
	pm.logger.Info("Polling stopped")
}

func (pm *PollingManager) startPollingUnsafe(interval time.Duration) {
	ticker := time.NewTicker(interval)
	done := make(chan bool)

	pm.poll = &activePoll{
		ticker: ticker,
		done:   done,
	}

	go func() {
		pm.logger.Info("Starting polling goroutine", "interval", interval)

		defer func() {
			pm.logger.Info("Polling goroutine stopped")
		}()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				// Каждый тик — полный цикл open → status → close; контроллер
				// сериализует его с запросами плоскости управления.
				status, err := pm.ctrl.Status()
				if err != nil {
					pm.logger.Error("Error getting filter status", "error", err)
					continue // Пропускаем эту итерацию, попробуем на следующей
				}

				jsonData, err := json.Marshal(status)
				if err != nil {
					pm.logger.Error("Failed to serialize status for Kafka", "error", err)
					continue
				}

				if err := pm.producer.Produce(context.Background(), []byte(status.SystemName), jsonData); err != nil {
					pm.logger.Error("Failed to send status to Kafka", "error", err)
				}
			}
		}
	}()
}
