//go:build windows

package lltf

/*
#cgo CFLAGS: -I${SRCDIR}/../../sdk/include
#cgo amd64 LDFLAGS: -L${SRCDIR}/../../sdk/win64 -lPE_Filter_SDK
#cgo 386 LDFLAGS: -L${SRCDIR}/../../sdk/win32 -lPE_Filter_SDK

#include <stdlib.h>
#include "PE_Filter_SDK.h"

static int go_pe_create(const char* conffile, PE_HANDLE* handle_out) {
    return PE_Create(conffile, handle_out);
}

static int go_pe_get_system_name(CPE_HANDLE h, int index, char* name_out, int size) {
    return PE_GetSystemName(h, index, name_out, size);
}

static int go_pe_open(PE_HANDLE h, const char* name) {
    return PE_Open(h, name);
}

static int go_pe_close(PE_HANDLE h) {
    return PE_Close(h);
}

static int go_pe_destroy(PE_HANDLE h) {
    return PE_Destroy(h);
}

static int go_pe_library_version(void) {
    return PE_GetLibraryVersion();
}

static int go_pe_system_count(CPE_HANDLE h) {
    return PE_GetSystemCount(h);
}

static int go_pe_get_wavelength(CPE_HANDLE h, double* wavelength_out) {
    return PE_GetWavelength(h, wavelength_out);
}

static int go_pe_get_wavelength_range(CPE_HANDLE h, double* min_out, double* max_out) {
    return PE_GetWavelengthRange(h, min_out, max_out);
}

static int go_pe_set_wavelength(PE_HANDLE h, double wavelength) {
    return PE_SetWavelength(h, wavelength);
}

static int go_pe_get_grating(PE_HANDLE h, int* index_out) {
    return PE_GetGrating(h, index_out);
}

static int go_pe_get_grating_name(CPE_HANDLE h, int index, char* name_out, int size) {
    return PE_GetGratingName(h, index, name_out, size);
}

static int go_pe_get_grating_count(CPE_HANDLE h, int* count_out) {
    return PE_GetGratingCount(h, count_out);
}

static int go_pe_get_grating_wavelength_range(CPE_HANDLE h, int index, double* min_out, double* max_out) {
    return PE_GetGratingWavelengthRange(h, index, min_out, max_out);
}

static int go_pe_get_grating_wavelength_extended_range(CPE_HANDLE h, int index, double* min_out, double* max_out) {
    return PE_GetGratingWavelengthExtendedRange(h, index, min_out, max_out);
}

static int go_pe_set_wavelength_on_grating(PE_HANDLE h, int index, double wavelength) {
    return PE_SetWavelengthOnGrating(h, index, wavelength);
}

static int go_pe_has_harmonic_filter(CPE_HANDLE h) {
    return PE_HasHarmonicFilter(h);
}

static int go_pe_get_harmonic_filter_enabled(CPE_HANDLE h, int* enabled_out) {
    return PE_GetHarmonicFilterEnabled(h, enabled_out);
}

static int go_pe_set_harmonic_filter_enabled(PE_HANDLE h, int enabled) {
    return PE_SetHarmonicFilterEnabled(h, enabled);
}
*/
import "C"

import (
	"strings"
	"unsafe"
)

// sdkBinding — реализация Binding поверх PE_Filter_SDK через cgo.
// Вариант библиотеки (win32/win64) выбирается на этапе сборки по GOARCH.
type sdkBinding struct{}

// NewSDKBinding возвращает привязку к нативной библиотеке PE_Filter_SDK.
func NewSDKBinding() (Binding, error) {
	return sdkBinding{}, nil
}

func trimNull(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}

// readName извлекает строку из буфера фиксированного размера. Буфер без
// нулевого терминатора означает, что SDK обрезал имя — это дефект.
func readName(buf []byte) (string, Status) {
	if buf[len(buf)-1] != 0 {
		return "", StatusInvalidBufferSize
	}
	return trimNull(string(buf)), StatusSuccess
}

func (sdkBinding) Create(configPath string) (Handle, Status) {
	cpath := C.CString(configPath)
	defer C.free(unsafe.Pointer(cpath))

	var h C.PE_HANDLE
	st := Status(C.go_pe_create(cpath, &h))
	return Handle(uintptr(unsafe.Pointer(h))), st
}

func (sdkBinding) SystemName(h Handle, index int) (string, Status) {
	buf := make([]byte, NameBufferSize)
	st := Status(C.go_pe_get_system_name(C.CPE_HANDLE(unsafe.Pointer(uintptr(h))), C.int(index),
		(*C.char)(unsafe.Pointer(&buf[0])), C.int(len(buf))))
	if !st.IsSuccess() {
		return "", st
	}
	return readName(buf)
}

func (sdkBinding) Open(h Handle, name string) Status {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return Status(C.go_pe_open(C.PE_HANDLE(unsafe.Pointer(uintptr(h))), cname))
}

func (sdkBinding) Close(h Handle) Status {
	return Status(C.go_pe_close(C.PE_HANDLE(unsafe.Pointer(uintptr(h)))))
}

func (sdkBinding) Destroy(h Handle) Status {
	return Status(C.go_pe_destroy(C.PE_HANDLE(unsafe.Pointer(uintptr(h)))))
}

func (sdkBinding) LibraryVersion() int {
	return int(C.go_pe_library_version())
}

func (sdkBinding) SystemCount(h Handle) int {
	return int(C.go_pe_system_count(C.CPE_HANDLE(unsafe.Pointer(uintptr(h)))))
}

func (sdkBinding) Wavelength(h Handle) (float64, Status) {
	var nm C.double
	st := Status(C.go_pe_get_wavelength(C.CPE_HANDLE(unsafe.Pointer(uintptr(h))), &nm))
	return float64(nm), st
}

func (sdkBinding) WavelengthRange(h Handle) (float64, float64, Status) {
	var min, max C.double
	st := Status(C.go_pe_get_wavelength_range(C.CPE_HANDLE(unsafe.Pointer(uintptr(h))), &min, &max))
	return float64(min), float64(max), st
}

func (sdkBinding) SetWavelength(h Handle, nm float64) Status {
	return Status(C.go_pe_set_wavelength(C.PE_HANDLE(unsafe.Pointer(uintptr(h))), C.double(nm)))
}

func (sdkBinding) Grating(h Handle) (int, Status) {
	var index C.int
	st := Status(C.go_pe_get_grating(C.PE_HANDLE(unsafe.Pointer(uintptr(h))), &index))
	return int(index), st
}

func (sdkBinding) GratingName(h Handle, index int) (string, Status) {
	buf := make([]byte, NameBufferSize)
	st := Status(C.go_pe_get_grating_name(C.CPE_HANDLE(unsafe.Pointer(uintptr(h))), C.int(index),
		(*C.char)(unsafe.Pointer(&buf[0])), C.int(len(buf))))
	if !st.IsSuccess() {
		return "", st
	}
	return readName(buf)
}

func (sdkBinding) GratingCount(h Handle) (int, Status) {
	var count C.int
	st := Status(C.go_pe_get_grating_count(C.CPE_HANDLE(unsafe.Pointer(uintptr(h))), &count))
	return int(count), st
}

func (sdkBinding) GratingWavelengthRange(h Handle, index int) (float64, float64, Status) {
	var min, max C.double
	st := Status(C.go_pe_get_grating_wavelength_range(C.CPE_HANDLE(unsafe.Pointer(uintptr(h))), C.int(index), &min, &max))
	return float64(min), float64(max), st
}

func (sdkBinding) GratingWavelengthExtendedRange(h Handle, index int) (float64, float64, Status) {
	var min, max C.double
	st := Status(C.go_pe_get_grating_wavelength_extended_range(C.CPE_HANDLE(unsafe.Pointer(uintptr(h))), C.int(index), &min, &max))
	return float64(min), float64(max), st
}

func (sdkBinding) SetWavelengthOnGrating(h Handle, index int, nm float64) Status {
	return Status(C.go_pe_set_wavelength_on_grating(C.PE_HANDLE(unsafe.Pointer(uintptr(h))), C.int(index), C.double(nm)))
}

func (sdkBinding) HasHarmonicFilter(h Handle) bool {
	return C.go_pe_has_harmonic_filter(C.CPE_HANDLE(unsafe.Pointer(uintptr(h)))) != 0
}

func (sdkBinding) HarmonicFilterEnabled(h Handle) (bool, Status) {
	var enabled C.int
	st := Status(C.go_pe_get_harmonic_filter_enabled(C.CPE_HANDLE(unsafe.Pointer(uintptr(h))), &enabled))
	return enabled != 0, st
}

func (sdkBinding) SetHarmonicFilterEnabled(h Handle, enabled bool) Status {
	val := C.int(0)
	if enabled {
		val = 1
	}
	return Status(C.go_pe_set_harmonic_filter_enabled(C.PE_HANDLE(unsafe.Pointer(uintptr(h))), val))
}
