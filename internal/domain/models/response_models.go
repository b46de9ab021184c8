package models

// ErrorResponse представляет стандартный ответ с ошибкой.
type ErrorResponse struct {
	Status string `json:"status" example:"error"`
	Error  struct {
		Code    int    `json:"code" example:"400"`
		Message string `json:"message" example:"Requested wavelength is out of bounds."`
	} `json:"error"`
}

// MessageResponse представляет стандартный успешный ответ с сообщением.
type MessageResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message" example:"Polling started successfully"`
}

// StatusResponse представляет ответ на команду status.
type StatusResponse struct {
	Status string        `json:"status" example:"ok"`
	Filter *FilterStatus `json:"filter"`
}

// SetWaveResponse представляет ответ на команду set_wave.
type SetWaveResponse struct {
	Status string         `json:"status" example:"ok"`
	Result *SetWaveResult `json:"result"`
}
