package usecases

import (
	"errors"
	"testing"
	"time"

	"github.com/iwtcode/lltfService/internal/domain/entities"
	"github.com/iwtcode/lltfService/internal/domain/models"
	"github.com/iwtcode/lltfService/internal/lltf"
	"github.com/iwtcode/lltfService/internal/middleware/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	status    *models.FilterStatus
	statusErr error
	result    *models.SetWaveResult
	setErr    error
}

func (s *stubService) Status() (*models.FilterStatus, error) { return s.status, s.statusErr }

func (s *stubService) SetWave(wavelength float64) (*models.SetWaveResult, error) {
	return s.result, s.setErr
}

func (s *stubService) CalibrateGrating(gratingIndex int, wavelength float64) error {
	return s.setErr
}

func (s *stubService) StartPolling(interval time.Duration) error { return nil }
func (s *stubService) StopPolling() error                        { return nil }
func (s *stubService) IsPollingActive() bool                     { return false }

type recordingRepo struct {
	records []entities.CommandRecord
	err     error
}

func (r *recordingRepo) RecordCommand(record *entities.CommandRecord) error {
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, *record)
	return nil
}

func (r *recordingRepo) RecentCommands(limit int) ([]entities.CommandRecord, error) {
	return r.records, nil
}

func (r *recordingRepo) UpdatePollingState(enabled bool, interval int) error { return nil }

func (r *recordingRepo) GetPollingState() (*entities.PollingState, error) {
	return &entities.PollingState{}, nil
}

func newTestUsecase(svc *stubService, repo *recordingRepo) *Usecase {
	logger := logging.NewLogger(&logging.Config{Enabled: false}, "TEST")
	return NewUsecases(svc, repo, logger).(*Usecase)
}

func TestStatusRecordsOutcome(t *testing.T) {
	svc := &stubService{status: &models.FilterStatus{SystemName: "LLTF Contrast VIS-1"}}
	repo := &recordingRepo{}
	uc := newTestUsecase(svc, repo)

	status, err := uc.Status()
	require.NoError(t, err)
	assert.Equal(t, "LLTF Contrast VIS-1", status.SystemName)

	require.Len(t, repo.records, 1)
	assert.Equal(t, "status", repo.records[0].Command)
	assert.Equal(t, entities.OutcomeOK, repo.records[0].Outcome)
	assert.NotEmpty(t, repo.records[0].ID)
}

func TestSetWaveRecordsRejectedOnInvalidWavelength(t *testing.T) {
	svc := &stubService{setErr: &lltf.DeviceError{Op: "cannot set wavelength", Status: lltf.StatusInvalidWavelength}}
	repo := &recordingRepo{}
	uc := newTestUsecase(svc, repo)

	_, err := uc.SetWave(5000)
	require.Error(t, err)

	require.Len(t, repo.records, 1)
	assert.Equal(t, entities.OutcomeRejected, repo.records[0].Outcome)
	assert.Equal(t, 5000.0, repo.records[0].Wavelength)
	assert.Contains(t, repo.records[0].ErrorText, "Requested wavelength is out of bounds.")
}

func TestSetWaveRecordsFailedOnDeviceError(t *testing.T) {
	svc := &stubService{setErr: &lltf.DeviceError{Op: "cannot open LLTF system", Status: lltf.StatusFailure}}
	repo := &recordingRepo{}
	uc := newTestUsecase(svc, repo)

	_, err := uc.SetWave(600)
	require.Error(t, err)

	require.Len(t, repo.records, 1)
	assert.Equal(t, entities.OutcomeFailed, repo.records[0].Outcome)
}

func TestSetWaveRecordsNoChange(t *testing.T) {
	svc := &stubService{result: &models.SetWaveResult{Requested: 600, Reached: 600.4, Changed: false}}
	repo := &recordingRepo{}
	uc := newTestUsecase(svc, repo)

	result, err := uc.SetWave(600)
	require.NoError(t, err)
	assert.False(t, result.Changed)

	require.Len(t, repo.records, 1)
	assert.Equal(t, entities.OutcomeNoChange, repo.records[0].Outcome)
}

func TestCalibrateGratingRecordsOutcome(t *testing.T) {
	svc := &stubService{}
	repo := &recordingRepo{}
	uc := newTestUsecase(svc, repo)

	require.NoError(t, uc.CalibrateGrating(1, 550))

	require.Len(t, repo.records, 1)
	assert.Equal(t, "calibrate_grating", repo.records[0].Command)
	assert.Equal(t, entities.OutcomeOK, repo.records[0].Outcome)
	assert.Equal(t, 550.0, repo.records[0].Wavelength)
}

func TestAuditFailureDoesNotFailCommand(t *testing.T) {
	svc := &stubService{status: &models.FilterStatus{}}
	repo := &recordingRepo{err: errors.New("db down")}
	uc := newTestUsecase(svc, repo)

	_, err := uc.Status()
	require.NoError(t, err)
}
