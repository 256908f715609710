// scalar.go exports scalar boxing for the C API. Handles are size_t; 0 is
// the null handle. float16 and bfloat16 travel as C float, rounded inside
// the library; the *_bits variants carry the raw uint16_t pattern.
package main

/*
#include <stdint.h>
*/
import "C"

import "github.com/born-ml/bornffi/internal/shim"

//export born_int8_to_scalar
func born_int8_to_scalar(v C.int8_t) C.size_t {
	return C.size_t(shim.Int8ToScalar(int8(v)))
}

//export born_int16_to_scalar
func born_int16_to_scalar(v C.int16_t) C.size_t {
	return C.size_t(shim.Int16ToScalar(int16(v)))
}

//export born_int32_to_scalar
func born_int32_to_scalar(v C.int32_t) C.size_t {
	return C.size_t(shim.Int32ToScalar(int32(v)))
}

//export born_int64_to_scalar
func born_int64_to_scalar(v C.int64_t) C.size_t {
	return C.size_t(shim.Int64ToScalar(int64(v)))
}

//export born_uint8_to_scalar
func born_uint8_to_scalar(v C.uint8_t) C.size_t {
	return C.size_t(shim.Uint8ToScalar(uint8(v)))
}

//export born_float16_to_scalar
func born_float16_to_scalar(v C.float) C.size_t {
	return C.size_t(shim.Float16ToScalar(halfFromFloat(float32(v))))
}

//export born_bfloat16_to_scalar
func born_bfloat16_to_scalar(v C.float) C.size_t {
	return C.size_t(shim.BFloat16ToScalar(bf16FromFloat(float32(v))))
}

//export born_float16_bits_to_scalar
func born_float16_bits_to_scalar(bits C.uint16_t) C.size_t {
	return C.size_t(shim.Float16ToScalar(halfFromBits(uint16(bits))))
}

//export born_bfloat16_bits_to_scalar
func born_bfloat16_bits_to_scalar(bits C.uint16_t) C.size_t {
	return C.size_t(shim.BFloat16ToScalar(bf16FromBits(uint16(bits))))
}

//export born_float32_to_scalar
func born_float32_to_scalar(v C.float) C.size_t {
	return C.size_t(shim.Float32ToScalar(float32(v)))
}

//export born_float64_to_scalar
func born_float64_to_scalar(v C.double) C.size_t {
	return C.size_t(shim.Float64ToScalar(float64(v)))
}

//export born_bool_to_scalar
func born_bool_to_scalar(v C.int) C.size_t {
	return C.size_t(shim.BoolToScalar(intToBool(int32(v))))
}

//export born_scalar_to_int8
func born_scalar_to_int8(h C.size_t) C.int8_t {
	return C.int8_t(shim.ScalarToInt8(uintptr(h)))
}

//export born_scalar_to_int16
func born_scalar_to_int16(h C.size_t) C.int16_t {
	return C.int16_t(shim.ScalarToInt16(uintptr(h)))
}

//export born_scalar_to_int32
func born_scalar_to_int32(h C.size_t) C.int32_t {
	return C.int32_t(shim.ScalarToInt32(uintptr(h)))
}

//export born_scalar_to_int64
func born_scalar_to_int64(h C.size_t) C.int64_t {
	return C.int64_t(shim.ScalarToInt64(uintptr(h)))
}

//export born_scalar_to_uint8
func born_scalar_to_uint8(h C.size_t) C.uint8_t {
	return C.uint8_t(shim.ScalarToUint8(uintptr(h)))
}

//export born_scalar_to_float16
func born_scalar_to_float16(h C.size_t) C.float {
	return C.float(shim.ScalarToFloat16(uintptr(h)).Float32())
}

//export born_scalar_to_bfloat16
func born_scalar_to_bfloat16(h C.size_t) C.float {
	return C.float(shim.ScalarToBFloat16(uintptr(h)).Float32())
}

//export born_scalar_to_float16_bits
func born_scalar_to_float16_bits(h C.size_t) C.uint16_t {
	return C.uint16_t(shim.ScalarToFloat16(uintptr(h)).Bits())
}

//export born_scalar_to_bfloat16_bits
func born_scalar_to_bfloat16_bits(h C.size_t) C.uint16_t {
	return C.uint16_t(shim.ScalarToBFloat16(uintptr(h)).Bits())
}

//export born_scalar_to_float32
func born_scalar_to_float32(h C.size_t) C.float {
	return C.float(shim.ScalarToFloat32(uintptr(h)))
}

//export born_scalar_to_float64
func born_scalar_to_float64(h C.size_t) C.double {
	return C.double(shim.ScalarToFloat64(uintptr(h)))
}

//export born_scalar_to_bool
func born_scalar_to_bool(h C.size_t) C.int {
	return cBool(shim.ScalarToBool(uintptr(h)))
}

//export born_scalar_kind
func born_scalar_kind(h C.size_t) C.int {
	return C.int(shim.ScalarKind(uintptr(h)))
}

//export born_dispose_scalar
func born_dispose_scalar(h C.size_t) {
	shim.DisposeScalar(uintptr(h))
}
