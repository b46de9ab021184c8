package lltf

import (
	"errors"
	"fmt"
)

// ErrNotOpen возвращается при попытке выполнить операцию на закрытой сессии.
// Это нарушение контракта вызывающей стороны: нативный вызов не выполняется.
var ErrNotOpen = errors.New("lltf: session is not open")

// DeviceError — ошибка нативного вызова. Op называет конкретный подшаг,
// на котором операция оборвалась, Status несёт код SDK.
type DeviceError struct {
	Op     string
	Status Status
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Status.Describe())
}

// deviceErr строит DeviceError для неуспешного статуса.
func deviceErr(op string, st Status) error {
	return &DeviceError{Op: op, Status: st}
}

// CalibrationError возвращается, когда контрольное чтение после установки
// длины волны не попало в допуск от целевого значения.
type CalibrationError struct {
	Target  float64
	Reached float64
}

func (e *CalibrationError) Error() string {
	return fmt.Sprintf("retrieved wavelength %.3f nm does not reflect set wavelength %.3f nm", e.Reached, e.Target)
}

// IsInvalidWavelength сообщает, является ли ошибка отказом SDK из-за длины
// волны вне допустимого диапазона. Такие ошибки — ошибки входных данных,
// а не неисправность устройства, и HTTP-слой отвечает на них кодом 400.
func IsInvalidWavelength(err error) bool {
	var devErr *DeviceError
	return errors.As(err, &devErr) && devErr.Status == StatusInvalidWavelength
}
