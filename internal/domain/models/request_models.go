package models

// CommandRequest — единый запрос плоскости управления: POST /lltf с JSON
// телом {"command": "...", "data": <float>}. Поле Data обязательно только
// для команды set_wave.
type CommandRequest struct {
	Command string   `json:"command" binding:"required,oneof=status set_wave"`
	Data    *float64 `json:"data"`
}

// CalibrateRequest — запрос калибровки решётки.
type CalibrateRequest struct {
	GratingIndex int     `json:"grating_index" binding:"gte=0"`
	Wavelength   float64 `json:"wavelength" binding:"required,gt=0"` // в нанометрах
}

// PollingRequest определяет структуру для запроса на запуск опроса.
type PollingRequest struct {
	Interval int `json:"interval" binding:"required,gt=0"` // в миллисекундах
}
