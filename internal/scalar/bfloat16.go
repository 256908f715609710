package scalar

import "github.com/gomlx/gopjrt/dtypes/bfloat16"

// BF16 is the "brain" floating point format: the upper 16 bits of an
// IEEE 754 float32 (1 sign bit, 8 exponent bits, 7 mantissa bits).
type BF16 = bfloat16.BFloat16

// MaxBFloat16 is the largest finite BF16 value.
const MaxBFloat16 = 3.3895313892515355e+38

// BFloat16FromFloat32 rounds f to a BF16.
func BFloat16FromFloat32(f float32) BF16 {
	return bfloat16.FromFloat32(f)
}

// BFloat16FromBits returns the BF16 with the given bit pattern.
func BFloat16FromBits(u uint16) BF16 {
	return bfloat16.FromBits(u)
}

