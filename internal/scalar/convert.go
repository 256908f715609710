package scalar

import (
	"fmt"

	"github.com/x448/float16"
)

// Value is a constraint for the primitive types a Scalar can box.
type Value interface {
	int8 | int16 | int32 | int64 | uint8 | float16.Float16 | BF16 | float32 | float64 | bool
}

// From boxes v, choosing the kind from T.
func From[T Value](v T) Scalar {
	switch x := any(v).(type) {
	case int8:
		return FromInt8(x)
	case int16:
		return FromInt16(x)
	case int32:
		return FromInt32(x)
	case int64:
		return FromInt64(x)
	case uint8:
		return FromUint8(x)
	case float16.Float16:
		return FromFloat16(x)
	case BF16:
		return FromBFloat16(x)
	case float32:
		return FromFloat32(x)
	case float64:
		return FromFloat64(x)
	case bool:
		return FromBool(x)
	default:
		panic("unsupported scalar type")
	}
}

// To converts s to T using the checked coercion rules.
func To[T Value](s Scalar) (T, error) {
	var zero T
	var (
		out any
		err error
	)
	switch any(zero).(type) {
	case int8:
		out, err = s.ToInt8()
	case int16:
		out, err = s.ToInt16()
	case int32:
		out, err = s.ToInt32()
	case int64:
		out, err = s.ToInt64()
	case uint8:
		out, err = s.ToUint8()
	case float16.Float16:
		out, err = s.ToFloat16()
	case BF16:
		out, err = s.ToBFloat16()
	case float32:
		out, err = s.ToFloat32()
	case float64:
		out, err = s.ToFloat64()
	case bool:
		out, err = s.ToBool()
	default:
		panic("unsupported scalar type")
	}
	if err != nil {
		return zero, err
	}
	return out.(T), nil
}

// KindOf returns the kind corresponding to T.
func KindOf[T Value]() Kind {
	var zero T
	return From(zero).Kind()
}

// Convert re-boxes s as kind k, applying the checked coercion rules.
func Convert(s Scalar, k Kind) (Scalar, error) {
	switch k {
	case Int8:
		return convertTo[int8](s)
	case Int16:
		return convertTo[int16](s)
	case Int32:
		return convertTo[int32](s)
	case Int64:
		return convertTo[int64](s)
	case Uint8:
		return convertTo[uint8](s)
	case Float16:
		return convertTo[float16.Float16](s)
	case BFloat16:
		return convertTo[BF16](s)
	case Float32:
		return convertTo[float32](s)
	case Float64:
		return convertTo[float64](s)
	case Bool:
		return convertTo[bool](s)
	default:
		return Scalar{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
}

func convertTo[T Value](s Scalar) (Scalar, error) {
	v, err := To[T](s)
	if err != nil {
		return Scalar{}, err
	}
	return From(v), nil
}
