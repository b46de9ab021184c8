package interfaces

import (
	"github.com/iwtcode/lltfService/internal/domain/entities"
)

// CommandRepository определяет контракт для журнала команд и состояния
// опроса в БД
type CommandRepository interface {
	RecordCommand(record *entities.CommandRecord) error
	RecentCommands(limit int) ([]entities.CommandRecord, error)
	UpdatePollingState(enabled bool, interval int) error
	GetPollingState() (*entities.PollingState, error)
}
