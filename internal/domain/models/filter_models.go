package models

// WavelengthReading — результат запроса текущей длины волны. Значения в
// нанометрах. Снимок не кэшируется: состояние устройства может измениться
// между вызовами.
type WavelengthReading struct {
	Central float64 `json:"central_wavelength"`
	Minimum float64 `json:"minimum"`
	Maximum float64 `json:"maximum"`
}

// GratingInfo описывает текущую дифракционную решётку системы.
type GratingInfo struct {
	Index       int     `json:"index"`
	Name        string  `json:"name"`
	Count       int     `json:"count"`
	Minimum     float64 `json:"minimum"`
	Maximum     float64 `json:"maximum"`
	ExtendedMin float64 `json:"extended_minimum"`
	ExtendedMax float64 `json:"extended_maximum"`
}

// HarmonicFilterState описывает аксессуар гармонического фильтра.
// Enabled имеет смысл только при Available == true.
type HarmonicFilterState struct {
	Available bool `json:"available"`
	Enabled   bool `json:"enabled"`
}

// FilterStatus — агрегированный снимок состояния фильтра, возвращаемый
// командой status.
type FilterStatus struct {
	LibraryVersion int                  `json:"library_version"`
	SystemName     string               `json:"system_name"`
	SystemCount    int                  `json:"system_count"`
	Wavelength     WavelengthReading    `json:"wavelength"`
	Grating        GratingInfo          `json:"grating"`
	HarmonicFilter *HarmonicFilterState `json:"harmonic_filter,omitempty"`
}

// SetWaveResult — результат команды set_wave.
type SetWaveResult struct {
	Requested float64 `json:"requested"`
	// Target — длина волны, фактически отправленная устройству
	// (после применения поправки второй гармоники).
	Target  float64 `json:"target"`
	Reached float64 `json:"reached"`
	// Changed == false означает, что длина волны уже была в допуске
	// и нативный вызов установки не выполнялся.
	Changed bool `json:"changed"`
}
