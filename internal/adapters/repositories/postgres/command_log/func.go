package command_log

import (
	"errors"

	"github.com/iwtcode/lltfService/internal/domain/entities"
	"gorm.io/gorm"
)

func (r *CommandRepositoryImpl) RecordCommand(record *entities.CommandRecord) error {
	return r.db.Create(record).Error
}

// RecentCommands возвращает последние записи журнала команд, новые первыми
func (r *CommandRepositoryImpl) RecentCommands(limit int) ([]entities.CommandRecord, error) {
	var records []entities.CommandRecord
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// UpdatePollingState сохраняет состояние опроса (единственная строка таблицы)
func (r *CommandRepositoryImpl) UpdatePollingState(enabled bool, interval int) error {
	state := entities.PollingState{
		ID:       1,
		Enabled:  enabled,
		Interval: interval,
	}
	return r.db.Save(&state).Error
}

// GetPollingState возвращает сохранённое состояние опроса. Отсутствие
// записи — не ошибка: опрос ещё ни разу не включался.
func (r *CommandRepositoryImpl) GetPollingState() (*entities.PollingState, error) {
	var state entities.PollingState
	err := r.db.First(&state, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entities.PollingState{ID: 1}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}
