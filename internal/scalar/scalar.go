package scalar

import (
	"fmt"
	"math"
	"strconv"

	"github.com/x448/float16"
)

// MaxFloat16 is the largest finite IEEE 754 half precision value.
const MaxFloat16 = 65504

// storage selects which payload field of a Scalar is live.
type storage uint8

const (
	integral storage = iota
	floating
	boolean
)

// Scalar is a boxed single numeric or boolean value.
//
// Integers are held as int64, floating point values (including half and
// bfloat16) as float64, booleans as bool. Half and bfloat16 values also keep
// their original bit pattern, so reading one back as its own kind is exact,
// NaN payloads included. Kind records the type the value was created from;
// conversions to another kind go through the checked coercion rules of the
// To* methods.
//
// The zero Scalar is the int8 value 0.
type Scalar struct {
	kind    Kind
	storage storage
	i       int64
	f       float64
	b       bool
	half    uint16
}

// FromInt8 boxes an int8.
func FromInt8(v int8) Scalar { return Scalar{kind: Int8, storage: integral, i: int64(v)} }

// FromInt16 boxes an int16.
func FromInt16(v int16) Scalar { return Scalar{kind: Int16, storage: integral, i: int64(v)} }

// FromInt32 boxes an int32.
func FromInt32(v int32) Scalar { return Scalar{kind: Int32, storage: integral, i: int64(v)} }

// FromInt64 boxes an int64.
func FromInt64(v int64) Scalar { return Scalar{kind: Int64, storage: integral, i: v} }

// FromUint8 boxes a uint8.
func FromUint8(v uint8) Scalar { return Scalar{kind: Uint8, storage: integral, i: int64(v)} }

// FromFloat16 boxes a half precision value.
func FromFloat16(v float16.Float16) Scalar {
	return Scalar{kind: Float16, storage: floating, f: float64(v.Float32()), half: v.Bits()}
}

// FromBFloat16 boxes a bfloat16 value.
func FromBFloat16(v BF16) Scalar {
	return Scalar{kind: BFloat16, storage: floating, f: float64(v.Float32()), half: v.Bits()}
}

// FromFloat32 boxes a float32.
func FromFloat32(v float32) Scalar { return Scalar{kind: Float32, storage: floating, f: float64(v)} }

// FromFloat64 boxes a float64.
func FromFloat64(v float64) Scalar { return Scalar{kind: Float64, storage: floating, f: v} }

// FromBool boxes a bool.
func FromBool(v bool) Scalar { return Scalar{kind: Bool, storage: boolean, b: v} }

// Kind returns the kind the scalar was created from.
func (s Scalar) Kind() Kind {
	return s.kind
}

// IsFloatingPoint reports whether the stored value is floating point.
func (s Scalar) IsFloatingPoint() bool {
	return s.storage == floating
}

// IsIntegral reports whether the stored value is an integer.
func (s Scalar) IsIntegral() bool {
	return s.storage == integral
}

// IsBool reports whether the stored value is a boolean.
func (s Scalar) IsBool() bool {
	return s.storage == boolean
}

// ToInt8 converts the value to int8.
func (s Scalar) ToInt8() (int8, error) {
	v, err := s.toInteger(Int8, math.MinInt8, math.MaxInt8)
	return int8(v), err
}

// ToInt16 converts the value to int16.
func (s Scalar) ToInt16() (int16, error) {
	v, err := s.toInteger(Int16, math.MinInt16, math.MaxInt16)
	return int16(v), err
}

// ToInt32 converts the value to int32.
func (s Scalar) ToInt32() (int32, error) {
	v, err := s.toInteger(Int32, math.MinInt32, math.MaxInt32)
	return int32(v), err
}

// ToInt64 converts the value to int64.
func (s Scalar) ToInt64() (int64, error) {
	return s.toInteger(Int64, math.MinInt64, math.MaxInt64)
}

// ToUint8 converts the value to uint8.
//
// Negative integers down to -255 wrap using two's complement, so -1 becomes
// 255; anything outside [-255, 255] overflows. Floating point values must
// lie in [0, 255].
func (s Scalar) ToUint8() (uint8, error) {
	v, err := s.toInteger(Uint8, -math.MaxUint8, math.MaxUint8)
	return uint8(v), err
}

// ToFloat16 converts the value to half precision.
func (s Scalar) ToFloat16() (float16.Float16, error) {
	if s.kind == Float16 {
		return float16.Frombits(s.half), nil
	}
	f, err := s.toFloat(Float16, MaxFloat16)
	if err != nil {
		return 0, err
	}
	return float16.Fromfloat32(float32(f)), nil
}

// ToBFloat16 converts the value to bfloat16.
func (s Scalar) ToBFloat16() (BF16, error) {
	if s.kind == BFloat16 {
		return BFloat16FromBits(s.half), nil
	}
	f, err := s.toFloat(BFloat16, MaxBFloat16)
	if err != nil {
		return 0, err
	}
	return BFloat16FromFloat32(float32(f)), nil
}

// ToFloat32 converts the value to float32.
func (s Scalar) ToFloat32() (float32, error) {
	f, err := s.toFloat(Float32, math.MaxFloat32)
	return float32(f), err
}

// ToFloat64 converts the value to float64. It never fails.
func (s Scalar) ToFloat64() (float64, error) {
	return s.float(), nil
}

// ToBool converts the value to bool: any non-zero number is true.
func (s Scalar) ToBool() (bool, error) {
	switch s.storage {
	case integral:
		return s.i != 0, nil
	case floating:
		return s.f != 0, nil
	default:
		return s.b, nil
	}
}

// toInteger converts to an integer in [lo, hi]. Floating values are range
// checked before truncation toward zero, so 127.5 does not fit int8; NaN and
// infinities always overflow.
func (s Scalar) toInteger(k Kind, lo, hi int64) (int64, error) {
	switch s.storage {
	case boolean:
		if s.b {
			return 1, nil
		}
		return 0, nil
	case integral:
		if s.i < lo || s.i > hi {
			return 0, s.overflow(k)
		}
		return s.i, nil
	default:
		// The uint8 wrap applies to integer sources only.
		if k == Uint8 {
			lo = 0
		}
		// float64(math.MaxInt64) rounds up to 2^63, which int64 cannot hold.
		f := s.f
		if math.IsNaN(f) || f < float64(lo) || f > float64(hi) || f >= 0x1p63 {
			return 0, s.overflow(k)
		}
		return int64(math.Trunc(f)), nil
	}
}

// toFloat converts to a float64 whose magnitude is at most limit.
// Non-finite values pass through unchanged.
func (s Scalar) toFloat(k Kind, limit float64) (float64, error) {
	f := s.float()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f, nil
	}
	if f > limit || f < -limit {
		return 0, s.overflow(k)
	}
	return f, nil
}

func (s Scalar) float() float64 {
	switch s.storage {
	case integral:
		return float64(s.i)
	case floating:
		return s.f
	default:
		if s.b {
			return 1
		}
		return 0
	}
}

func (s Scalar) overflow(k Kind) error {
	return fmt.Errorf("%w: value %s cannot be converted to type %s", ErrOverflow, s, k)
}

// Equal reports whether s and o have the same kind and value.
// NaN is never equal to anything.
func (s Scalar) Equal(o Scalar) bool {
	if s.kind != o.kind || s.storage != o.storage {
		return false
	}
	switch s.storage {
	case integral:
		return s.i == o.i
	case floating:
		return s.f == o.f
	default:
		return s.b == o.b
	}
}

// String formats the stored value.
func (s Scalar) String() string {
	switch s.storage {
	case integral:
		return strconv.FormatInt(s.i, 10)
	case floating:
		bitSize := 64
		if s.kind != Float64 {
			bitSize = 32
		}
		return strconv.FormatFloat(s.f, 'g', -1, bitSize)
	default:
		return strconv.FormatBool(s.b)
	}
}
