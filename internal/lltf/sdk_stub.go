//go:build !windows

package lltf

import "errors"

// ErrPlatformNotSupported возвращается на платформах, для которых вендор
// не поставляет PE_Filter_SDK (библиотека существует только для win32/win64).
var ErrPlatformNotSupported = errors.New("lltf: PE_Filter_SDK is only available on windows (win32/win64)")

// NewSDKBinding на не-Windows платформах всегда завершается ошибкой.
// Выбор варианта библиотеки фатален на старте приложения.
func NewSDKBinding() (Binding, error) {
	return nil, ErrPlatformNotSupported
}
