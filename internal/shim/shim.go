// Package shim is the flat, non-throwing function surface exported to
// foreign callers.
//
// No function here returns an error or lets a panic escape. A failure is
// recorded in the calling thread's last-error slot (see package lasterr)
// and the function returns its zero value: handle 0, 0, false. Every call
// clears the slot on entry, so the slot only ever describes the most recent
// call on that thread. Callers poll GetAndResetLastErr right after any call
// that can fail.
//
// Scalar handles are owned by the caller from creation until
// DisposeScalar. Using a handle after disposal records ErrInvalidHandle.
package shim

import (
	"github.com/pkg/errors"
	"github.com/x448/float16"

	"github.com/born-ml/bornffi/internal/config"
	"github.com/born-ml/bornffi/internal/device"
	"github.com/born-ml/bornffi/internal/lasterr"
	"github.com/born-ml/bornffi/internal/logging"
	"github.com/born-ml/bornffi/internal/random"
	"github.com/born-ml/bornffi/internal/scalar"
)

// ErrInvalidHandle is recorded when a scalar handle is 0, unknown or
// already disposed.
var ErrInvalidHandle = errors.New("invalid scalar handle")

var scalars = newRegistry()

// Init applies cfg: logging, device probe options and the optional
// startup seed.
func Init(cfg *config.Config) error {
	if err := logging.Init(cfg.Logging.Level, cfg.Logging.File, cfg.Logging.Console); err != nil {
		return errors.Wrap(err, "init logging")
	}
	device.Configure(cfg.DeviceOptions())
	if cfg.Random.DefaultSeed != nil {
		random.ManualSeed(*cfg.Random.DefaultSeed)
	}
	return nil
}

// guard clears the calling thread's error slot, then runs fn, storing a
// returned error or recovered panic in the slot.
func guard(op string, fn func() error) {
	lasterr.Clear()
	defer func() {
		if r := recover(); r != nil {
			record(op, errors.Errorf("panic: %v", r))
		}
	}()
	if err := fn(); err != nil {
		record(op, err)
	}
}

func record(op string, err error) {
	err = errors.Wrap(err, op)
	logging.WithField("op", op).Debug(err.Error())
	lasterr.SetError(err)
}

// GetAndResetLastErr returns and clears the calling thread's last error.
// ok is false when none is pending.
func GetAndResetLastErr() (msg string, ok bool) {
	return lasterr.GetAndReset()
}

// ManualSeed seeds the engine's default generator.
func ManualSeed(seed int64) {
	guard("manual_seed", func() error {
		random.ManualSeed(seed)
		return nil
	})
}

// CUDAIsAvailable reports whether a CUDA device is usable.
func CUDAIsAvailable() bool {
	var ok bool
	guard("cuda_is_available", func() error {
		ok = device.CUDAIsAvailable()
		return nil
	})
	return ok
}

// CuDNNIsAvailable reports whether cuDNN is usable.
func CuDNNIsAvailable() bool {
	var ok bool
	guard("cudnn_is_available", func() error {
		ok = device.CuDNNIsAvailable()
		return nil
	})
	return ok
}

// CUDADeviceCount returns the number of CUDA devices.
func CUDADeviceCount() int {
	var n int
	guard("cuda_device_count", func() error {
		n = device.CUDADeviceCount()
		return nil
	})
	return n
}

func toScalar[T scalar.Value](op string, v T) uintptr {
	var h uintptr
	guard(op, func() error {
		h = scalars.register(scalar.From(v))
		return nil
	})
	return h
}

func fromScalar[T scalar.Value](op string, h uintptr) T {
	var out T
	guard(op, func() error {
		s, ok := scalars.get(h)
		if !ok {
			return errors.Wrapf(ErrInvalidHandle, "handle %d", h)
		}
		v, err := scalar.To[T](s)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out
}

// The *ToScalar functions box a primitive and return a new owning handle.

func Int8ToScalar(v int8) uintptr   { return toScalar("int8_to_scalar", v) }
func Int16ToScalar(v int16) uintptr { return toScalar("int16_to_scalar", v) }
func Int32ToScalar(v int32) uintptr { return toScalar("int32_to_scalar", v) }
func Int64ToScalar(v int64) uintptr { return toScalar("int64_to_scalar", v) }
func Uint8ToScalar(v uint8) uintptr { return toScalar("uint8_to_scalar", v) }

func Float16ToScalar(v float16.Float16) uintptr {
	return toScalar("float16_to_scalar", v)
}

func BFloat16ToScalar(v scalar.BF16) uintptr {
	return toScalar("bfloat16_to_scalar", v)
}

func Float32ToScalar(v float32) uintptr { return toScalar("float32_to_scalar", v) }
func Float64ToScalar(v float64) uintptr { return toScalar("float64_to_scalar", v) }
func BoolToScalar(v bool) uintptr       { return toScalar("bool_to_scalar", v) }

// The ScalarTo* functions read h, coercing to the requested type. Overflow
// or an invalid handle records an error and yields the zero value.

func ScalarToInt8(h uintptr) int8   { return fromScalar[int8]("scalar_to_int8", h) }
func ScalarToInt16(h uintptr) int16 { return fromScalar[int16]("scalar_to_int16", h) }
func ScalarToInt32(h uintptr) int32 { return fromScalar[int32]("scalar_to_int32", h) }
func ScalarToInt64(h uintptr) int64 { return fromScalar[int64]("scalar_to_int64", h) }
func ScalarToUint8(h uintptr) uint8 { return fromScalar[uint8]("scalar_to_uint8", h) }

func ScalarToFloat16(h uintptr) float16.Float16 {
	return fromScalar[float16.Float16]("scalar_to_float16", h)
}

func ScalarToBFloat16(h uintptr) scalar.BF16 {
	return fromScalar[scalar.BF16]("scalar_to_bfloat16", h)
}

func ScalarToFloat32(h uintptr) float32 { return fromScalar[float32]("scalar_to_float32", h) }
func ScalarToFloat64(h uintptr) float64 { return fromScalar[float64]("scalar_to_float64", h) }
func ScalarToBool(h uintptr) bool       { return fromScalar[bool]("scalar_to_bool", h) }

// ScalarKind returns the kind h was created with, or -1 for an invalid
// handle.
func ScalarKind(h uintptr) int {
	kind := -1
	guard("scalar_kind", func() error {
		s, ok := scalars.get(h)
		if !ok {
			return errors.Wrapf(ErrInvalidHandle, "handle %d", h)
		}
		kind = int(s.Kind())
		return nil
	})
	return kind
}

// ScalarString formats the value behind h. Invalid handles yield "".
func ScalarString(h uintptr) string {
	var str string
	guard("scalar_to_string", func() error {
		s, ok := scalars.get(h)
		if !ok {
			return errors.Wrapf(ErrInvalidHandle, "handle %d", h)
		}
		str = s.String()
		return nil
	})
	return str
}

// DisposeScalar releases h. Disposing 0 is a no-op; disposing an unknown
// or already released handle records ErrInvalidHandle.
func DisposeScalar(h uintptr) {
	guard("dispose_scalar", func() error {
		if h == 0 {
			return nil
		}
		if !scalars.release(h) {
			return errors.Wrapf(ErrInvalidHandle, "handle %d", h)
		}
		return nil
	})
}

// LiveScalars returns the number of handles not yet disposed.
func LiveScalars() int {
	return scalars.live()
}
