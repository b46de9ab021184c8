package command_log

import (
	"github.com/iwtcode/lltfService/internal/interfaces"
	"gorm.io/gorm"
)

type CommandRepositoryImpl struct {
	db *gorm.DB
}

func NewCommandRepository(db *gorm.DB) interfaces.CommandRepository {
	return &CommandRepositoryImpl{db: db}
}
