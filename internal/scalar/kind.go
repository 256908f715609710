// Package scalar provides the boxed single-value type used across the Born
// foreign-interface boundary.
package scalar

import (
	"fmt"
	"strings"
)

// Kind represents the runtime type a Scalar was created from.
type Kind int

// Supported scalar kinds.
const (
	Int8 Kind = iota
	Int16
	Int32
	Int64
	Uint8
	Float16
	BFloat16
	Float32
	Float64
	Bool
)

// Kinds lists every supported kind in declaration order.
var Kinds = []Kind{Int8, Int16, Int32, Int64, Uint8, Float16, BFloat16, Float32, Float64, Bool}

// Size returns the byte size of the kind.
func (k Kind) Size() int {
	switch k {
	case Int8, Uint8, Bool:
		return 1
	case Int16, Float16, BFloat16:
		return 2
	case Int32, Float32:
		return 4
	case Int64, Float64:
		return 8
	default:
		panic("unknown scalar kind")
	}
}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Float16:
		return "float16"
	case BFloat16:
		return "bfloat16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// IsFloatingPoint reports whether the kind stores a floating point value.
func (k Kind) IsFloatingPoint() bool {
	switch k {
	case Float16, BFloat16, Float32, Float64:
		return true
	}
	return false
}

// IsIntegral reports whether the kind stores an integer. Bool is not integral.
func (k Kind) IsIntegral() bool {
	switch k {
	case Int8, Int16, Int32, Int64, Uint8:
		return true
	}
	return false
}

// ParseKind returns the kind named by s. Common aliases ("half", "double",
// "long", "byte") are accepted.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "int8", "char":
		return Int8, nil
	case "int16", "short":
		return Int16, nil
	case "int32", "int":
		return Int32, nil
	case "int64", "long":
		return Int64, nil
	case "uint8", "byte":
		return Uint8, nil
	case "float16", "half":
		return Float16, nil
	case "bfloat16", "bf16":
		return BFloat16, nil
	case "float32", "float":
		return Float32, nil
	case "float64", "double":
		return Float64, nil
	case "bool":
		return Bool, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
