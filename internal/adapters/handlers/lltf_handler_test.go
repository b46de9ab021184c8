package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iwtcode/lltfService/internal/config"
	"github.com/iwtcode/lltfService/internal/domain/entities"
	"github.com/iwtcode/lltfService/internal/domain/models"
	"github.com/iwtcode/lltfService/internal/lltf"
	"github.com/iwtcode/lltfService/internal/middleware/logging"
	"github.com/iwtcode/lltfService/internal/middleware/swagger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUsecases подменяет бизнес-логику в тестах обработчиков.
type stubUsecases struct {
	status       *models.FilterStatus
	statusErr    error
	result       *models.SetWaveResult
	setWaveErr   error
	calibrateErr error
	startErr     error
	stopErr      error
	commands     []entities.CommandRecord
	lastWave     float64
	lastGrating  int
	lastLimit    int
	lastInterval time.Duration
}

func (s *stubUsecases) Status() (*models.FilterStatus, error) {
	return s.status, s.statusErr
}

func (s *stubUsecases) SetWave(wavelength float64) (*models.SetWaveResult, error) {
	s.lastWave = wavelength
	return s.result, s.setWaveErr
}

func (s *stubUsecases) CalibrateGrating(gratingIndex int, wavelength float64) error {
	s.lastGrating = gratingIndex
	s.lastWave = wavelength
	return s.calibrateErr
}

func (s *stubUsecases) RecentCommands(limit int) ([]entities.CommandRecord, error) {
	s.lastLimit = limit
	return s.commands, nil
}

func (s *stubUsecases) StartPolling(interval time.Duration) error {
	s.lastInterval = interval
	return s.startErr
}

func (s *stubUsecases) StopPolling() error { return s.stopErr }

func setupRouter(t *testing.T, uc *stubUsecases) http.Handler {
	t.Helper()
	logger := logging.NewLogger(&logging.Config{Enabled: false}, "TEST")
	h := NewHandler(uc, logger)
	cfg := &config.AppConfig{GinMode: gin.TestMode}
	return ProvideRouter(h, cfg, &swagger.Config{Enabled: false})
}

func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCommandStatus(t *testing.T) {
	uc := &stubUsecases{
		status: &models.FilterStatus{
			SystemName:     "LLTF Contrast VIS-1",
			LibraryVersion: 312,
			Wavelength: models.WavelengthReading{
				Central: 600,
				Minimum: 400,
				Maximum: 1000,
			},
		},
	}
	router := setupRouter(t, uc)

	w := doRequest(t, router, http.MethodPost, "/lltf", gin.H{"command": "status"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string               `json:"status"`
		Filter *models.FilterStatus `json:"filter"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.NotNil(t, resp.Filter)
	assert.Equal(t, "LLTF Contrast VIS-1", resp.Filter.SystemName)
	assert.Equal(t, 600.0, resp.Filter.Wavelength.Central)
}

func TestCommandStatusDeviceError(t *testing.T) {
	uc := &stubUsecases{statusErr: lltf.ErrNotOpen}
	router := setupRouter(t, uc)

	w := doRequest(t, router, http.MethodPost, "/lltf", gin.H{"command": "status"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestCommandSetWave(t *testing.T) {
	uc := &stubUsecases{
		result: &models.SetWaveResult{Requested: 600, Target: 1200, Reached: 1200.1, Changed: true},
	}
	router := setupRouter(t, uc)

	w := doRequest(t, router, http.MethodPost, "/lltf", gin.H{"command": "set_wave", "data": 600.0})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 600.0, uc.lastWave)

	var resp struct {
		Status string                `json:"status"`
		Result *models.SetWaveResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.NotNil(t, resp.Result)
	assert.Equal(t, 1200.0, resp.Result.Target)
	assert.True(t, resp.Result.Changed)
}

func TestCommandSetWaveMissingData(t *testing.T) {
	uc := &stubUsecases{}
	router := setupRouter(t, uc)

	w := doRequest(t, router, http.MethodPost, "/lltf", gin.H{"command": "set_wave"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "data")
}

func TestCommandSetWaveOutOfBounds(t *testing.T) {
	uc := &stubUsecases{
		setWaveErr: &lltf.DeviceError{Op: "cannot set wavelength", Status: lltf.StatusInvalidWavelength},
	}
	router := setupRouter(t, uc)

	w := doRequest(t, router, http.MethodPost, "/lltf", gin.H{"command": "set_wave", "data": 5000.0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Requested wavelength is out of bounds.")
}

func TestCommandUnknown(t *testing.T) {
	uc := &stubUsecases{}
	router := setupRouter(t, uc)

	w := doRequest(t, router, http.MethodPost, "/lltf", gin.H{"command": "reboot"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommandMalformedBody(t *testing.T) {
	uc := &stubUsecases{}
	router := setupRouter(t, uc)

	req := httptest.NewRequest(http.MethodPost, "/lltf", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalibrateGrating(t *testing.T) {
	uc := &stubUsecases{}
	router := setupRouter(t, uc)

	w := doRequest(t, router, http.MethodPost, "/api/v1/grating/calibrate", gin.H{"grating_index": 1, "wavelength": 550.0})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, uc.lastGrating)
	assert.Equal(t, 550.0, uc.lastWave)
}

func TestCalibrateGratingOutOfBounds(t *testing.T) {
	uc := &stubUsecases{
		calibrateErr: &lltf.DeviceError{Op: "cannot calibrate grating", Status: lltf.StatusInvalidWavelength},
	}
	router := setupRouter(t, uc)

	w := doRequest(t, router, http.MethodPost, "/api/v1/grating/calibrate", gin.H{"grating_index": 0, "wavelength": 5000.0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStartPolling(t *testing.T) {
	uc := &stubUsecases{}
	router := setupRouter(t, uc)

	w := doRequest(t, router, http.MethodPost, "/api/v1/polling/start", gin.H{"interval": 1000})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, time.Second, uc.lastInterval)
}

func TestStartPollingInvalidInterval(t *testing.T) {
	uc := &stubUsecases{}
	router := setupRouter(t, uc)

	w := doRequest(t, router, http.MethodPost, "/api/v1/polling/start", gin.H{"interval": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecentCommands(t *testing.T) {
	uc := &stubUsecases{
		commands: []entities.CommandRecord{
			{ID: "a", Command: "set_wave", Wavelength: 600, Outcome: entities.OutcomeOK},
		},
	}
	router := setupRouter(t, uc)

	w := doRequest(t, router, http.MethodGet, "/api/v1/commands?limit=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, uc.lastLimit)
	assert.Contains(t, w.Body.String(), "set_wave")
}

func TestRecentCommandsBadLimit(t *testing.T) {
	uc := &stubUsecases{}
	router := setupRouter(t, uc)

	w := doRequest(t, router, http.MethodGet, "/api/v1/commands?limit=zero", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStopPolling(t *testing.T) {
	uc := &stubUsecases{}
	router := setupRouter(t, uc)

	w := doRequest(t, router, http.MethodPost, "/api/v1/polling/stop", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Polling stopped successfully")
}
