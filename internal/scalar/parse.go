package scalar

import (
	"fmt"
	"strconv"
)

// Parse boxes the textual value str as kind k.
//
// Integers are parsed in base 10 with the kind's bit size, floating point
// kinds go through float64 and the same checked narrowing as Convert.
func Parse(k Kind, str string) (Scalar, error) {
	switch k {
	case Int8, Int16, Int32, Int64:
		v, err := strconv.ParseInt(str, 10, k.Size()*8)
		if err != nil {
			return Scalar{}, fmt.Errorf("parse %s: %w", k, err)
		}
		return Convert(FromInt64(v), k)
	case Uint8:
		v, err := strconv.ParseUint(str, 10, 8)
		if err != nil {
			return Scalar{}, fmt.Errorf("parse %s: %w", k, err)
		}
		return FromUint8(uint8(v)), nil
	case Float16, BFloat16, Float32, Float64:
		v, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return Scalar{}, fmt.Errorf("parse %s: %w", k, err)
		}
		return Convert(FromFloat64(v), k)
	case Bool:
		v, err := strconv.ParseBool(str)
		if err != nil {
			return Scalar{}, fmt.Errorf("parse %s: %w", k, err)
		}
		return FromBool(v), nil
	default:
		return Scalar{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
}
