package lltf

import (
	"math"

	"github.com/iwtcode/lltfService/internal/domain/models"
	"github.com/iwtcode/lltfService/internal/middleware/logging"
)

// Значения по умолчанию для доменной политики фильтра. Допуск равен
// половине полосы пропускания (FWHM 5.0 нм); окно второй гармоники —
// диапазон, в котором аппарат разрешает только удвоенную длину волны.
const (
	DefaultToleranceNM   = 2.5
	DefaultHarmonicMinNM = 500.0
	DefaultHarmonicMaxNM = 1000.0
)

// Policy — настраиваемая доменная политика фильтра. Конкретные значения
// зависят от установленной конфигурации прибора и задаются в конфигурации
// приложения, а не зашиваются в код.
type Policy struct {
	// ToleranceNM — допуск сравнения длин волн в нм. Точность калибровки
	// устройства не гарантирует точного совпадения запрошенного значения
	// с прочитанным, поэтому равенство всегда проверяется в допуске.
	ToleranceNM float64
	// HarmonicMinNM и HarmonicMaxNM ограничивают окно второй гармоники:
	// запрошенная длина волны строго внутри окна удваивается перед
	// нативной установкой.
	HarmonicMinNM float64
	HarmonicMaxNM float64
}

// DefaultPolicy возвращает политику наблюдаемой конфигурации прибора.
func DefaultPolicy() Policy {
	return Policy{
		ToleranceNM:   DefaultToleranceNM,
		HarmonicMinNM: DefaultHarmonicMinNM,
		HarmonicMaxNM: DefaultHarmonicMaxNM,
	}
}

// Filter — пользовательский фасад над сессией: два глагола, status и
// set_wave. Каждый вызов открывает сессию, выполняет операции и закрывает
// сессию на всех путях выхода — успех, отказ политики, нативная ошибка.
type Filter struct {
	session *Session
	index   int
	policy  Policy
	logger  *logging.Logger
}

// NewFilter создаёт фасад над готовой сессией.
func NewFilter(session *Session, systemIndex int, policy Policy, logger *logging.Logger) *Filter {
	return &Filter{
		session: session,
		index:   systemIndex,
		policy:  policy,
		logger:  logger.WithPrefix("FILTER"),
	}
}

// withinTolerance сравнивает длины волн в допуске политики.
func (f *Filter) withinTolerance(a, b float64) bool {
	return math.Abs(a-b) < f.policy.ToleranceNM
}

// applyHarmonic возвращает длину волны, которую нужно фактически отправить
// устройству: внутри окна второй гармоники значение удваивается, поскольку
// аппарат нативно разрешает только фундаментальный диапазон.
func (f *Filter) applyHarmonic(nm float64) float64 {
	if nm > f.policy.HarmonicMinNM && nm < f.policy.HarmonicMaxNM {
		return nm * 2
	}
	return nm
}

// closeQuietly закрывает сессию, не затирая результат самой операции.
// Ошибку закрытия нельзя молча глотать, поэтому она уходит в лог.
func (f *Filter) closeQuietly() {
	if err := f.session.Close(); err != nil {
		f.logger.Error("Close after failed operation reported an error", "error", err)
	}
}

// Status открывает сессию, собирает агрегированный снимок состояния
// фильтра и закрывает сессию в любом случае.
func (f *Filter) Status() (*models.FilterStatus, error) {
	if err := f.session.Open(f.index); err != nil {
		return nil, err
	}
	defer f.closeQuietly()

	version, err := f.session.LibraryVersion()
	if err != nil {
		return nil, err
	}
	count, err := f.session.SystemCount()
	if err != nil {
		return nil, err
	}
	reading, err := f.session.Reading()
	if err != nil {
		return nil, err
	}
	grating, err := f.session.GratingStatus()
	if err != nil {
		return nil, err
	}
	harmonic, err := f.session.HarmonicFilter()
	if err != nil {
		return nil, err
	}

	return &models.FilterStatus{
		LibraryVersion: version,
		SystemName:     f.session.Name(),
		SystemCount:    count,
		Wavelength:     *reading,
		Grating:        *grating,
		HarmonicFilter: harmonic,
	}, nil
}

// CalibrateGrating выставляет центральную длину волны конкретной решётки.
// Поправка второй гармоники здесь не применяется: калибровка адресует
// решётку напрямую, в её собственном диапазоне.
func (f *Filter) CalibrateGrating(gratingIndex int, wavelength float64) error {
	if err := f.session.Open(f.index); err != nil {
		return err
	}
	defer f.closeQuietly()

	if err := f.session.CalibrateGrating(gratingIndex, wavelength); err != nil {
		return err
	}

	f.logger.Info("Grating calibrated", "grating", gratingIndex, "wavelength", wavelength)
	return nil
}

// SetWave устанавливает центральную длину волны фильтра.
//
// Если текущая длина волны уже в допуске от запрошенной, нативная установка
// не выполняется и возвращается результат с Changed == false. Иначе к
// запрошенному значению применяется поправка второй гармоники, выполняется
// установка и контрольное чтение: прочитанное значение обязано попасть в
// допуск от целевого, иначе устройство не отразило запрошенную калибровку.
func (f *Filter) SetWave(wavelength float64) (*models.SetWaveResult, error) {
	if err := f.session.Open(f.index); err != nil {
		return nil, err
	}
	defer f.closeQuietly()

	current, err := f.session.Wavelength()
	if err != nil {
		return nil, err
	}

	if f.withinTolerance(current, wavelength) {
		f.logger.Debug("Wavelength already set", "wavelength", current)
		return &models.SetWaveResult{
			Requested: wavelength,
			Target:    wavelength,
			Reached:   current,
			Changed:   false,
		}, nil
	}

	target := f.applyHarmonic(wavelength)
	if target != wavelength {
		f.logger.Debug("Applying second harmonic correction", "requested", wavelength, "target", target)
	}

	if err := f.session.SetWavelength(target); err != nil {
		return nil, err
	}

	reached, err := f.session.Wavelength()
	if err != nil {
		return nil, err
	}
	if !f.withinTolerance(reached, target) {
		return nil, &CalibrationError{Target: target, Reached: reached}
	}

	f.logger.Info("Wavelength set", "requested", wavelength, "target", target, "reached", reached)
	return &models.SetWaveResult{
		Requested: wavelength,
		Target:    target,
		Reached:   reached,
		Changed:   true,
	}, nil
}
