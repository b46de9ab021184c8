package lltf

import (
	"errors"

	"github.com/iwtcode/lltfService/internal/domain/models"
	"github.com/iwtcode/lltfService/internal/middleware/logging"
)

// Session владеет одним нативным хендлом LLTF и его жизненным циклом.
// Состояния: CLOSED (хендла нет) и OPEN (хендл валиден). Все операции
// запросов и установки допустимы только из OPEN.
//
// Session не потокобезопасна: вызывающая сторона обязана сериализовать
// все операции над одним экземпляром (см. lltf_service).
type Session struct {
	binding    Binding
	configPath string
	logger     *logging.Logger

	handle Handle
	name   string
}

// NewSession создаёт закрытую сессию. Путь к XML-конфигурации фиксируется
// на весь срок жизни сессии.
func NewSession(binding Binding, configPath string, logger *logging.Logger) *Session {
	return &Session{
		binding:    binding,
		configPath: configPath,
		logger:     logger.WithPrefix("SESSION"),
	}
}

// IsOpen сообщает, держит ли сессия живой хендл.
func (s *Session) IsOpen() bool {
	return s.handle != NoHandle
}

// Name возвращает имя системы, полученное при последнем Open.
func (s *Session) Name() string {
	return s.name
}

// Open создаёт хендл и открывает канал связи с системой под номером index.
// Если сессия уже открыта, она принудительно закрывается и открывается
// заново: повторный Open детерминированно даёт свежий хендл.
//
// Последовательность атомарна по ресурсу: если любой подшаг после
// успешного PE_Create завершился ошибкой, хендл уничтожается до возврата,
// чтобы нативный ресурс не утёк.
func (s *Session) Open(index int) error {
	if s.IsOpen() {
		s.logger.Warn("Session already open, reopening", "system", s.name)
		if err := s.Close(); err != nil {
			s.logger.Error("Close before reopen reported an error", "error", err)
		}
	}

	handle, st := s.binding.Create(s.configPath)
	if !st.IsSuccess() {
		return deviceErr("cannot create connection to LLTF", st)
	}

	name, st := s.binding.SystemName(handle, index)
	if !st.IsSuccess() {
		// Хендл уже существует, но бесполезен: уничтожаем его до возврата
		// ошибки, иначе ресурс SDK утечёт.
		if dst := s.binding.Destroy(handle); !dst.IsSuccess() {
			s.logger.Error("Destroy after failed name retrieval reported an error", "status", dst.Describe())
		}
		return deviceErr("cannot retrieve LLTF name", st)
	}

	if st := s.binding.Open(handle, name); !st.IsSuccess() {
		if dst := s.binding.Destroy(handle); !dst.IsSuccess() {
			s.logger.Error("Destroy after failed open reported an error", "status", dst.Describe())
		}
		return deviceErr("cannot open LLTF system", st)
	}

	s.handle = handle
	s.name = name
	s.logger.Info("Session opened", "system", name, "index", index)
	return nil
}

// Close закрывает канал связи и уничтожает хендл. Идемпотентен: на закрытой
// сессии — no-op. Переход в CLOSED происходит безусловно, даже если нативные
// вызовы вернули ошибку: повторный teardown заведомо мусорного хендла
// небезопасен, и сессия не должна считать, что всё ещё владеет ресурсом.
func (s *Session) Close() error {
	if !s.IsOpen() {
		s.logger.Debug("Already closed.")
		return nil
	}

	handle := s.handle
	s.handle = NoHandle

	closeStatus := s.binding.Close(handle)
	if closeStatus == StatusInvalidHandle {
		// Хендл по определению невалиден — уничтожать нечего.
		return deviceErr("cannot close LLTF system", closeStatus)
	}

	var errs []error
	if !closeStatus.IsSuccess() {
		errs = append(errs, deviceErr("cannot close LLTF system", closeStatus))
	}
	if st := s.binding.Destroy(handle); !st.IsSuccess() {
		errs = append(errs, deviceErr("cannot destroy LLTF system", st))
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	s.logger.Debug("Session closed", "system", s.name)
	return nil
}

// LibraryVersion возвращает номер версии нативной библиотеки.
func (s *Session) LibraryVersion() (int, error) {
	if !s.IsOpen() {
		return 0, ErrNotOpen
	}
	return s.binding.LibraryVersion(), nil
}

// SystemCount возвращает число систем, перечисленных в конфигурации
// (подключённых и нет).
func (s *Session) SystemCount() (int, error) {
	if !s.IsOpen() {
		return 0, ErrNotOpen
	}
	return s.binding.SystemCount(s.handle), nil
}

// Wavelength возвращает текущую центральную длину волны в нм.
func (s *Session) Wavelength() (float64, error) {
	if !s.IsOpen() {
		return 0, ErrNotOpen
	}
	nm, st := s.binding.Wavelength(s.handle)
	if !st.IsSuccess() {
		return 0, deviceErr("cannot retrieve wavelength", st)
	}
	return nm, nil
}

// WavelengthRange возвращает границы диапазона системы в нм.
func (s *Session) WavelengthRange() (float64, float64, error) {
	if !s.IsOpen() {
		return 0, 0, ErrNotOpen
	}
	min, max, st := s.binding.WavelengthRange(s.handle)
	if !st.IsSuccess() {
		return 0, 0, deviceErr("cannot retrieve wavelength range", st)
	}
	return min, max, nil
}

// Reading собирает текущую длину волны и границы диапазона в один снимок.
func (s *Session) Reading() (*models.WavelengthReading, error) {
	nm, err := s.Wavelength()
	if err != nil {
		return nil, err
	}
	min, max, err := s.WavelengthRange()
	if err != nil {
		return nil, err
	}
	return &models.WavelengthReading{Central: nm, Minimum: min, Maximum: max}, nil
}

// SetWavelength задаёт центральную длину волны в нм без какой-либо
// доменной политики (допуск и вторая гармоника применяются в Filter).
func (s *Session) SetWavelength(nm float64) error {
	if !s.IsOpen() {
		return ErrNotOpen
	}
	if st := s.binding.SetWavelength(s.handle, nm); !st.IsSuccess() {
		return deviceErr("cannot set wavelength", st)
	}
	return nil
}

// GratingStatus собирает сведения о текущей решётке: индекс, имя, число
// решёток, диапазон и расширенный диапазон. Пять нативных вызовов, каждый
// статус проверяется отдельно; первая же ошибка обрывает операцию с
// указанием конкретного подшага.
func (s *Session) GratingStatus() (*models.GratingInfo, error) {
	if !s.IsOpen() {
		return nil, ErrNotOpen
	}

	index, st := s.binding.Grating(s.handle)
	if !st.IsSuccess() {
		return nil, deviceErr("cannot retrieve grating", st)
	}

	name, st := s.binding.GratingName(s.handle, index)
	if !st.IsSuccess() {
		return nil, deviceErr("cannot retrieve grating name", st)
	}

	count, st := s.binding.GratingCount(s.handle)
	if !st.IsSuccess() {
		return nil, deviceErr("cannot retrieve grating count", st)
	}

	min, max, st := s.binding.GratingWavelengthRange(s.handle, index)
	if !st.IsSuccess() {
		return nil, deviceErr("cannot retrieve grating wavelength range", st)
	}

	extMin, extMax, st := s.binding.GratingWavelengthExtendedRange(s.handle, index)
	if !st.IsSuccess() {
		return nil, deviceErr("cannot retrieve grating extended wavelength range", st)
	}

	return &models.GratingInfo{
		Index:       index,
		Name:        name,
		Count:       count,
		Minimum:     min,
		Maximum:     max,
		ExtendedMin: extMin,
		ExtendedMax: extMax,
	}, nil
}

// CalibrateGrating калибрует центральную длину волны решётки с данным
// индексом.
func (s *Session) CalibrateGrating(index int, nm float64) error {
	if !s.IsOpen() {
		return ErrNotOpen
	}
	if st := s.binding.SetWavelengthOnGrating(s.handle, index, nm); !st.IsSuccess() {
		return deviceErr("cannot calibrate grating", st)
	}
	return nil
}

// HarmonicFilter возвращает наличие и состояние гармонического фильтра.
// Если аксессуар отсутствует, состояние не запрашивается.
func (s *Session) HarmonicFilter() (*models.HarmonicFilterState, error) {
	if !s.IsOpen() {
		return nil, ErrNotOpen
	}

	state := &models.HarmonicFilterState{}
	state.Available = s.binding.HasHarmonicFilter(s.handle)
	if !state.Available {
		return state, nil
	}

	enabled, st := s.binding.HarmonicFilterEnabled(s.handle)
	if !st.IsSuccess() {
		return nil, deviceErr("cannot retrieve harmonic filter state", st)
	}
	state.Enabled = enabled
	return state, nil
}

// SetHarmonicFilterEnabled включает или выключает гармонический фильтр.
func (s *Session) SetHarmonicFilterEnabled(enabled bool) error {
	if !s.IsOpen() {
		return ErrNotOpen
	}
	if st := s.binding.SetHarmonicFilterEnabled(s.handle, enabled); !st.IsSuccess() {
		return deviceErr("cannot set harmonic filter state", st)
	}
	return nil
}
