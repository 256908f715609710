// Package main exports the Born scalar and device boundary as a C shared
// library.
// Build with: go build -buildmode=c-shared -o libborn.so .
//
// Every export is non-throwing. Failures land in the calling thread's
// last-error slot; poll born_get_and_reset_last_err after any call that
// can fail. Strings returned by the library must be released with
// born_free_string.
package main

/*
#include <stdlib.h>
#include <stdint.h>
*/
import "C"

import (
	"os"
	"unsafe"

	"github.com/born-ml/bornffi/internal/config"
	"github.com/born-ml/bornffi/internal/logging"
	"github.com/born-ml/bornffi/internal/shim"
)

func init() {
	// init runs on the loader's thread, so problems are logged rather than
	// parked in an error slot no caller would read.
	cfg, err := config.LoadEnv(os.Getenv("BORN_CONFIG"))
	if err != nil {
		logging.Warnf("libborn: using default config: %v", err)
		cfg = config.DefaultConfig()
	}
	if err := shim.Init(cfg); err != nil {
		logging.Errorf("libborn: %v", err)
	}
}

func cBool(b bool) C.int {
	return C.int(boolToInt(b))
}

// -----------------------------------------------------------------------------
// Engine state
// -----------------------------------------------------------------------------

//export born_manual_seed
func born_manual_seed(seed C.int64_t) {
	shim.ManualSeed(int64(seed))
}

//export born_cuda_is_available
func born_cuda_is_available() C.int {
	return cBool(shim.CUDAIsAvailable())
}

//export born_cudnn_is_available
func born_cudnn_is_available() C.int {
	return cBool(shim.CuDNNIsAvailable())
}

//export born_cuda_device_count
func born_cuda_device_count() C.int {
	return C.int(shim.CUDADeviceCount())
}

// -----------------------------------------------------------------------------
// Errors
// -----------------------------------------------------------------------------

//export born_get_and_reset_last_err
func born_get_and_reset_last_err() *C.char {
	msg, ok := shim.GetAndResetLastErr()
	if !ok {
		return nil
	}
	return C.CString(msg)
}

//export born_free_string
func born_free_string(s *C.char) {
	C.free(unsafe.Pointer(s))
}

func main() {}
