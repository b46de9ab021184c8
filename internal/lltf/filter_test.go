package lltf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestFilter(b Binding) (*Filter, *Session) {
	s := newTestSession(b)
	return NewFilter(s, 0, DefaultPolicy(), testLogger()), s
}

func TestFilterStatusAggregates(t *testing.T) {
	b := newFakeBinding()
	f, s := newTestFilter(b)

	status, err := f.Status()
	require.NoError(t, err)
	require.Equal(t, 312, status.LibraryVersion)
	require.Equal(t, "LLTF Contrast VIS-1", status.SystemName)
	require.Equal(t, 1, status.SystemCount)
	require.Equal(t, 600.0, status.Wavelength.Central)
	require.Equal(t, 400.0, status.Wavelength.Minimum)
	require.Equal(t, 1000.0, status.Wavelength.Maximum)
	require.Equal(t, "VIS", status.Grating.Name)
	require.NotNil(t, status.HarmonicFilter)
	require.True(t, status.HarmonicFilter.Available)

	// Сессия закрыта после сбора снимка.
	require.False(t, s.IsOpen())
}

func TestFilterStatusClosesOnFailure(t *testing.T) {
	b := newFakeBinding()
	b.gratingStatus = StatusFailure
	f, s := newTestFilter(b)

	_, err := f.Status()
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot retrieve grating")
	require.False(t, s.IsOpen())
	require.Equal(t, 1, b.closeCalls)
	require.Equal(t, 1, b.destroyCalls)
}

func TestFilterSetWaveNoopWithinTolerance(t *testing.T) {
	b := newFakeBinding()
	b.wavelength = 600.0
	f, s := newTestFilter(b)

	res, err := f.SetWave(601.0)
	require.NoError(t, err)
	require.False(t, res.Changed)
	require.Equal(t, 600.0, res.Reached)

	// Нативная установка не выполнялась, сессия закрыта.
	require.Equal(t, 0, b.setCalls)
	require.False(t, s.IsOpen())
}

func TestFilterSetWaveAppliesHarmonicDoubling(t *testing.T) {
	b := newFakeBinding()
	b.wavelength = 450.0
	f, _ := newTestFilter(b)

	// 600 нм лежит в окне второй гармоники (500..1000): устройству
	// отправляется удвоенное значение.
	res, err := f.SetWave(600.0)
	require.NoError(t, err)
	require.True(t, res.Changed)
	require.Equal(t, 1200.0, res.Target)
	require.Equal(t, 1200.0, b.lastSet)
	require.InDelta(t, res.Target, res.Reached, DefaultToleranceNM)
}

func TestFilterSetWaveOutsideHarmonicWindow(t *testing.T) {
	b := newFakeBinding()
	b.wavelength = 600.0
	f, _ := newTestFilter(b)

	res, err := f.SetWave(450.0)
	require.NoError(t, err)
	require.True(t, res.Changed)
	require.Equal(t, 450.0, res.Target)
	require.Equal(t, 450.0, b.lastSet)
	require.InDelta(t, 450.0, res.Reached, DefaultToleranceNM)
}

func TestFilterSetWaveRoundTrip(t *testing.T) {
	b := newFakeBinding()
	b.wavelength = 450.0
	// Политика без окна гармоники: запрошенное значение уходит как есть.
	s := newTestSession(b)
	f := NewFilter(s, 0, Policy{ToleranceNM: DefaultToleranceNM}, testLogger())

	res, err := f.SetWave(600.0)
	require.NoError(t, err)
	require.Equal(t, 600.0, res.Target)
	require.InDelta(t, 600.0, res.Reached, DefaultToleranceNM)
}

func TestFilterSetWaveInvalidWavelength(t *testing.T) {
	b := newFakeBinding()
	b.wavelength = 600.0
	b.setStatus = StatusInvalidWavelength
	f, s := newTestFilter(b)

	_, err := f.SetWave(2000.0)
	require.Error(t, err)
	require.True(t, IsInvalidWavelength(err))
	require.Contains(t, err.Error(), "Requested wavelength is out of bounds.")

	// Ошибка входных данных тоже закрывает сессию.
	require.False(t, s.IsOpen())
}

func TestFilterSetWaveCalibrationMismatch(t *testing.T) {
	b := newFakeBinding()
	b.wavelength = 450.0
	b.driftOnSet = true
	f, s := newTestFilter(b)

	_, err := f.SetWave(1200.0)
	require.Error(t, err)
	var calErr *CalibrationError
	require.ErrorAs(t, err, &calErr)
	require.Equal(t, 1200.0, calErr.Target)
	require.Equal(t, 450.0, calErr.Reached)
	require.False(t, s.IsOpen())
}

func TestFilterSetWaveClosesOnReadFailure(t *testing.T) {
	b := newFakeBinding()
	b.wavelengthStatus = StatusNoFilterConnected
	f, s := newTestFilter(b)

	_, err := f.SetWave(600.0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "No filter connected.")
	require.False(t, s.IsOpen())
}

func TestFilterCalibrateGrating(t *testing.T) {
	b := newFakeBinding()
	f, s := newTestFilter(b)

	require.NoError(t, f.CalibrateGrating(1, 550.0))
	require.False(t, s.IsOpen())
}

func TestFilterCalibrateGratingOutOfRange(t *testing.T) {
	b := newFakeBinding()
	b.calibrateStatus = StatusInvalidWavelength
	f, s := newTestFilter(b)

	err := f.CalibrateGrating(1, 5000.0)
	require.Error(t, err)
	require.True(t, IsInvalidWavelength(err))
	require.False(t, s.IsOpen())
}
