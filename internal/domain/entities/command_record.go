package entities

import "time"

const (
	OutcomeOK       = "ok"
	OutcomeNoChange = "no_change"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// CommandRecord — журнальная запись одной команды управления фильтром.
type CommandRecord struct {
	ID         string    `gorm:"primaryKey;not null" json:"id"`
	Command    string    `gorm:"not null" json:"command"` // status / set_wave / calibrate_grating
	Wavelength float64   `json:"wavelength"`              // нм, для set_wave
	Outcome    string    `gorm:"not null" json:"outcome"` // ok / no_change / rejected / failed
	ErrorText  string    `json:"error_text"`
	CreatedAt  time.Time `json:"created_at"`
}

// PollingState хранит состояние периодического опроса фильтра между
// перезапусками сервиса. В таблице живёт одна строка.
type PollingState struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Enabled   bool      `gorm:"not null" json:"enabled"`
	Interval  int       `json:"interval"` // Интервал опроса в мс
	UpdatedAt time.Time `json:"updated_at"`
}
