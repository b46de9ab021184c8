package usecases

import (
	"time"

	"github.com/google/uuid"
	"github.com/iwtcode/lltfService/internal/domain/entities"
	"github.com/iwtcode/lltfService/internal/domain/models"
	"github.com/iwtcode/lltfService/internal/interfaces"
	"github.com/iwtcode/lltfService/internal/lltf"
	"github.com/iwtcode/lltfService/internal/middleware/logging"
)

type Usecase struct {
	lltfSvc interfaces.LLTFService
	dbRepo  interfaces.CommandRepository
	logger  *logging.Logger
}

func NewUsecases(lltfSvc interfaces.LLTFService, dbRepo interfaces.CommandRepository, logger *logging.Logger) interfaces.Usecases {
	return &Usecase{
		lltfSvc: lltfSvc,
		dbRepo:  dbRepo,
		logger:  logger.WithPrefix("USECASE"),
	}
}

// record пишет журнальную запись команды. Отказ журнала не считается
// фатальным для самой команды.
func (u *Usecase) record(command string, wavelength float64, outcome, errText string) {
	rec := &entities.CommandRecord{
		ID:         uuid.New().String(),
		Command:    command,
		Wavelength: wavelength,
		Outcome:    outcome,
		ErrorText:  errText,
	}
	if err := u.dbRepo.RecordCommand(rec); err != nil {
		u.logger.Error("Failed to record command in audit log", "command", command, "error", err)
	}
}

func (u *Usecase) Status() (*models.FilterStatus, error) {
	status, err := u.lltfSvc.Status()
	if err != nil {
		u.record("status", 0, entities.OutcomeFailed, err.Error())
		return nil, err
	}
	u.record("status", 0, entities.OutcomeOK, "")
	return status, nil
}

func (u *Usecase) SetWave(wavelength float64) (*models.SetWaveResult, error) {
	result, err := u.lltfSvc.SetWave(wavelength)
	if err != nil {
		outcome := entities.OutcomeFailed
		if lltf.IsInvalidWavelength(err) {
			outcome = entities.OutcomeRejected
		}
		u.record("set_wave", wavelength, outcome, err.Error())
		return nil, err
	}
	if result.Changed {
		u.record("set_wave", wavelength, entities.OutcomeOK, "")
	} else {
		u.record("set_wave", wavelength, entities.OutcomeNoChange, "")
	}
	return result, nil
}

func (u *Usecase) CalibrateGrating(gratingIndex int, wavelength float64) error {
	if err := u.lltfSvc.CalibrateGrating(gratingIndex, wavelength); err != nil {
		outcome := entities.OutcomeFailed
		if lltf.IsInvalidWavelength(err) {
			outcome = entities.OutcomeRejected
		}
		u.record("calibrate_grating", wavelength, outcome, err.Error())
		return err
	}
	u.record("calibrate_grating", wavelength, entities.OutcomeOK, "")
	return nil
}

// RecentCommands возвращает последние записи журнала команд.
func (u *Usecase) RecentCommands(limit int) ([]entities.CommandRecord, error) {
	return u.dbRepo.RecentCommands(limit)
}

func (u *Usecase) StartPolling(interval time.Duration) error {
	return u.lltfSvc.StartPolling(interval)
}

func (u *Usecase) StopPolling() error {
	return u.lltfSvc.StopPolling()
}
