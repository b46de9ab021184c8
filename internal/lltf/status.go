package lltf

// Status представляет собой код возврата PE_STATUS из SDK фильтра (PE_Filter_SDK).
// Любой результат нативного вызова интерпретируется только через этот тип:
// ни один компонент не сравнивает сырые целые числа напрямую.
type Status int

const (
	StatusSuccess                  Status = 0
	StatusInvalidHandle            Status = 1
	StatusFailure                  Status = 2
	StatusMissingConfigFile        Status = 3
	StatusInvalidConfiguration     Status = 4
	StatusInvalidWavelength        Status = 5
	StatusMissingHarmonicFilter    Status = 6
	StatusInvalidFilter            Status = 7
	StatusUnknown                  Status = 8
	StatusInvalidGrating           Status = 9
	StatusInvalidBuffer            Status = 10
	StatusInvalidBufferSize        Status = 11
	StatusUnsupportedConfiguration Status = 12
	StatusNoFilterConnected        Status = 13
)

// unknownStatusText возвращается для кодов, которые не перечислены в SDK
// этой версии. Новые версии библиотеки могут возвращать коды, о которых
// привязка ещё не знает — деградируем, а не падаем.
const unknownStatusText = "Unknown Error"

var statusDescriptions = map[Status]string{
	StatusSuccess:                  "Success",
	StatusInvalidHandle:            "Supplied handle is corrupted or has a NULL value.",
	StatusFailure:                  "Communication with system failed.",
	StatusMissingConfigFile:        "Configuration file is missing.",
	StatusInvalidConfiguration:     "Configuration file is corrupted.",
	StatusInvalidWavelength:        "Requested wavelength is out of bounds.",
	StatusMissingHarmonicFilter:    "No harmonic filter present in the system configuration.",
	StatusInvalidFilter:            "Requested filter does not match any available.",
	StatusUnknown:                  "An unknown status code has been returned by the system.",
	StatusInvalidGrating:           "Requested grating does not match any available.",
	StatusInvalidBuffer:            "Output buffer has a NULL value.",
	StatusInvalidBufferSize:        "Output buffer size is too small to receive the value.",
	StatusUnsupportedConfiguration: "The system configuration is not supported by this SDK.",
	StatusNoFilterConnected:        "No filter connected.",
}

var statusNames = map[Status]string{
	StatusSuccess:                  "PE_SUCCESS",
	StatusInvalidHandle:            "PE_INVALID_HANDLE",
	StatusFailure:                  "PE_FAILURE",
	StatusMissingConfigFile:        "PE_MISSING_CONFIGFILE",
	StatusInvalidConfiguration:     "PE_INVALID_CONFIGURATION",
	StatusInvalidWavelength:        "PE_INVALID_WAVELENGTH",
	StatusMissingHarmonicFilter:    "PE_MISSING_HARMONIC_FILTER",
	StatusInvalidFilter:            "PE_INVALID_FILTER",
	StatusUnknown:                  "PE_UNKNOWN",
	StatusInvalidGrating:           "PE_INVALID_GRATING",
	StatusInvalidBuffer:            "PE_INVALID_BUFFER",
	StatusInvalidBufferSize:        "PE_INVALID_BUFFER_SIZE",
	StatusUnsupportedConfiguration: "PE_UNSUPPORTED_CONFIGURATION",
	StatusNoFilterConnected:        "PE_NO_FILTER_CONNECTED",
}

// Describe возвращает фиксированное описание кода состояния из документации SDK.
func (s Status) Describe() string {
	if text, ok := statusDescriptions[s]; ok {
		return text
	}
	return unknownStatusText
}

// IsSuccess — единственный предикат успеха во всём модуле.
func (s Status) IsSuccess() bool {
	return s == StatusSuccess
}

// String возвращает символьное имя кода (PE_SUCCESS, PE_FAILURE, ...).
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return unknownStatusText
}
