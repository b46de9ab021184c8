package lltf

// Handle — непрозрачный идентификатор нативного ресурса PE_HANDLE.
// Сессия владеет ровно одним живым хендлом и никогда не использует его
// как число: все операции идут через интерфейс Binding.
type Handle uintptr

// NoHandle обозначает отсутствие хендла (закрытое состояние сессии).
const NoHandle Handle = 0

// NameBufferSize — фиксированный размер буфера для имён системы и решётки.
// SDK не сообщает требуемый размер заранее; 80 байт достаточно для всех
// известных конфигураций, а переполнение трактуется как ошибка.
const NameBufferSize = 80

// Binding описывает сырой ABI PE_Filter_SDK: по одному методу на каждую
// точку входа библиотеки. Этот слой ничего не валидирует и не повторяет
// вызовы — он лишь механически возвращает коды состояния вызывающему.
type Binding interface {
	// Create создаёт ресурс фильтра по пути к XML-конфигурации (PE_Create).
	Create(configPath string) (Handle, Status)
	// SystemName возвращает имя системы с данным индексом (PE_GetSystemName).
	SystemName(h Handle, index int) (string, Status)
	// Open открывает канал связи с системой по её имени (PE_Open).
	Open(h Handle, name string) Status
	// Close закрывает канал связи (PE_Close).
	Close(h Handle) Status
	// Destroy освобождает ресурс, созданный Create (PE_Destroy).
	Destroy(h Handle) Status

	// LibraryVersion возвращает номер версии библиотеки (PE_GetLibraryVersion).
	LibraryVersion() int
	// SystemCount возвращает число систем в конфигурации (PE_GetSystemCount).
	SystemCount(h Handle) int

	// Wavelength возвращает текущую центральную длину волны в нм (PE_GetWavelength).
	Wavelength(h Handle) (float64, Status)
	// WavelengthRange возвращает границы диапазона системы в нм (PE_GetWavelengthRange).
	WavelengthRange(h Handle) (min, max float64, st Status)
	// SetWavelength задаёт центральную длину волны в нм (PE_SetWavelength).
	SetWavelength(h Handle, nm float64) Status

	// Grating возвращает индекс текущей решётки (PE_GetGrating).
	Grating(h Handle) (int, Status)
	// GratingName возвращает имя решётки с данным индексом (PE_GetGratingName).
	GratingName(h Handle, index int) (string, Status)
	// GratingCount возвращает число решёток системы (PE_GetGratingCount).
	GratingCount(h Handle) (int, Status)
	// GratingWavelengthRange возвращает диапазон решётки в нм (PE_GetGratingWavelengthRange).
	GratingWavelengthRange(h Handle, index int) (min, max float64, st Status)
	// GratingWavelengthExtendedRange возвращает расширенный диапазон решётки
	// в нм (PE_GetGratingWavelengthExtendedRange).
	GratingWavelengthExtendedRange(h Handle, index int) (min, max float64, st Status)
	// SetWavelengthOnGrating калибрует центральную длину волны решётки
	// (PE_SetWavelengthOnGrating).
	SetWavelengthOnGrating(h Handle, index int, nm float64) Status

	// HasHarmonicFilter сообщает о наличии гармонического фильтра (PE_HasHarmonicFilter).
	HasHarmonicFilter(h Handle) bool
	// HarmonicFilterEnabled возвращает состояние гармонического фильтра
	// (PE_GetHarmonicFilterEnabled).
	HarmonicFilterEnabled(h Handle) (bool, Status)
	// SetHarmonicFilterEnabled включает или выключает гармонический фильтр
	// (PE_SetHarmonicFilterEnabled).
	SetHarmonicFilterEnabled(h Handle, enabled bool) Status
}
