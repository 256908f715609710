package main

import (
	"math"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/born-ml/bornffi/internal/scalar"
	"github.com/born-ml/bornffi/internal/shim"
)

// pin keeps the test on one OS thread so it reads its own error slot.
func pin(t *testing.T) {
	t.Helper()
	runtime.LockOSThread()
	t.Cleanup(runtime.UnlockOSThread)
	if p := born_get_and_reset_last_err(); p != nil {
		born_free_string(p)
	}
}

func TestBoolEncoding(t *testing.T) {
	assert.Equal(t, int32(1), boolToInt(true))
	assert.Equal(t, int32(0), boolToInt(false))
	assert.True(t, intToBool(1))
	assert.True(t, intToBool(-7))
	assert.False(t, intToBool(0))

	pin(t)
	h := born_bool_to_scalar(0)
	assert.Equal(t, int32(0), int32(born_scalar_to_bool(h)))
	born_dispose_scalar(h)

	h = born_bool_to_scalar(2)
	assert.Equal(t, int32(1), int32(born_scalar_to_bool(h)))
	born_dispose_scalar(h)

	h = born_bool_to_scalar(-1)
	assert.Equal(t, int32(1), int32(born_scalar_to_bool(h)))
	born_dispose_scalar(h)

	h = born_int8_to_scalar(-3)
	assert.Equal(t, int32(1), int32(born_scalar_to_bool(h)))
	born_dispose_scalar(h)

	assert.Nil(t, born_get_and_reset_last_err())
}

func TestLastErrIsNullWhenClean(t *testing.T) {
	pin(t)

	h := born_int32_to_scalar(42)
	assert.Equal(t, int32(42), int32(born_scalar_to_int32(h)))
	born_dispose_scalar(h)
	assert.Nil(t, born_get_and_reset_last_err())

	born_dispose_scalar(h)
	p := born_get_and_reset_last_err()
	require.NotNil(t, p, "double dispose must be reported")
	born_free_string(p)

	assert.Nil(t, born_get_and_reset_last_err(), "second read must be NULL")
}

func TestOverflowThroughExports(t *testing.T) {
	pin(t)

	h := born_float64_to_scalar(127.5)
	defer born_dispose_scalar(h)

	assert.Equal(t, int8(0), int8(born_scalar_to_int8(h)))
	p := born_get_and_reset_last_err()
	require.NotNil(t, p)
	born_free_string(p)
}

func TestHalfFloatsTakeFloats(t *testing.T) {
	assert.Equal(t, float16.Fromfloat32(1.5).Bits(), halfFromFloat(1.5).Bits())
	assert.Equal(t, uint16(0x3C00), halfFromFloat(1).Bits())
	assert.Equal(t, uint16(0x3F80), bf16FromFloat(1).Bits())
	assert.Equal(t, scalar.BFloat16FromFloat32(-0.15625).Bits(), bf16FromFloat(-0.15625).Bits())

	pin(t)

	h := born_float16_to_scalar(-2.5)
	assert.Equal(t, float32(-2.5), float32(born_scalar_to_float16(h)))
	assert.Equal(t, uint16(0xC100), uint16(born_scalar_to_float16_bits(h)))
	born_dispose_scalar(h)

	h = born_bfloat16_to_scalar(0.5)
	assert.Equal(t, float32(0.5), float32(born_scalar_to_bfloat16(h)))
	assert.Equal(t, uint16(0x3F00), uint16(born_scalar_to_bfloat16_bits(h)))
	born_dispose_scalar(h)

	h = born_float16_to_scalar(1e6)
	assert.True(t, math.IsInf(float64(born_scalar_to_float16(h)), 1), "out of range floats round to infinity")
	born_dispose_scalar(h)

	// Signalling NaN patterns survive the bits exports unchanged.
	h = born_float16_bits_to_scalar(0x7C01)
	assert.Equal(t, uint16(0x7C01), uint16(born_scalar_to_float16_bits(h)))
	born_dispose_scalar(h)

	h = born_bfloat16_bits_to_scalar(0x7F81)
	assert.Equal(t, uint16(0x7F81), uint16(born_scalar_to_bfloat16_bits(h)))
	born_dispose_scalar(h)

	assert.Nil(t, born_get_and_reset_last_err())
}

func TestHalfBitsRoundTrip(t *testing.T) {
	pin(t)

	for i := 0; i <= math.MaxUint16; i++ {
		bits := uint16(i)

		h := shim.Float16ToScalar(halfFromBits(bits))
		require.Equal(t, bits, shim.ScalarToFloat16(h).Bits(), "float16 %#04x", bits)
		shim.DisposeScalar(h)

		h = shim.BFloat16ToScalar(bf16FromBits(bits))
		require.Equal(t, bits, shim.ScalarToBFloat16(h).Bits(), "bfloat16 %#04x", bits)
		shim.DisposeScalar(h)
	}
	assert.Nil(t, born_get_and_reset_last_err())
}

func TestDeviceExports(t *testing.T) {
	pin(t)

	n := int(born_cuda_device_count())
	assert.GreaterOrEqual(t, n, 0)
	if n == 0 {
		assert.Equal(t, int32(0), int32(born_cuda_is_available()))
		assert.Equal(t, int32(0), int32(born_cudnn_is_available()))
	}
	assert.Nil(t, born_get_and_reset_last_err())
}
