package main

import (
	"github.com/x448/float16"

	"github.com/born-ml/bornffi/internal/scalar"
)

// The helpers below hold every C <-> Go value rule of the exports, in plain
// Go so tests can reach them.

// boolToInt encodes b as a C int: 1 for true, 0 for false.
func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// intToBool treats any non-zero C int as true.
func intToBool(v int32) bool {
	return v != 0
}

// halfFromFloat rounds a C float to IEEE half precision.
func halfFromFloat(f float32) float16.Float16 {
	return float16.Fromfloat32(f)
}

// bf16FromFloat rounds a C float to bfloat16.
func bf16FromFloat(f float32) scalar.BF16 {
	return scalar.BFloat16FromFloat32(f)
}

func halfFromBits(bits uint16) float16.Float16 {
	return float16.Frombits(bits)
}

func bf16FromBits(bits uint16) scalar.BF16 {
	return scalar.BFloat16FromBits(bits)
}
