// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar provides boxed single values for the Born boundary layer.
//
// A Scalar holds one integer, floating point or boolean value together with
// the kind it was created from. Reading it back as another kind applies
// checked coercion: narrowing that would overflow returns ErrOverflow.
//
// Example:
//
//	s := scalar.FromFloat64(3.7)
//	n, err := s.ToInt8() // 3, nil
//	_, err = scalar.FromInt64(1000).ToInt8() // ErrOverflow
package scalar

import (
	"github.com/x448/float16"

	"github.com/born-ml/bornffi/internal/scalar"
)

// Scalar is a boxed single value.
type Scalar = scalar.Scalar

// Kind identifies the type a Scalar was created from.
type Kind = scalar.Kind

// BF16 is the 16-bit brain floating point format.
type BF16 = scalar.BF16

// Half is the IEEE 754 half precision format.
type Half = float16.Float16

// Value is the constraint for types a Scalar can box.
type Value = scalar.Value

// Supported kinds.
const (
	Int8     = scalar.Int8
	Int16    = scalar.Int16
	Int32    = scalar.Int32
	Int64    = scalar.Int64
	Uint8    = scalar.Uint8
	Float16  = scalar.Float16
	BFloat16 = scalar.BFloat16
	Float32  = scalar.Float32
	Float64  = scalar.Float64
	Bool     = scalar.Bool
)

// Errors returned by conversions.
var (
	ErrOverflow    = scalar.ErrOverflow
	ErrUnknownKind = scalar.ErrUnknownKind
)

// Constructors.
var (
	FromInt8     = scalar.FromInt8
	FromInt16    = scalar.FromInt16
	FromInt32    = scalar.FromInt32
	FromInt64    = scalar.FromInt64
	FromUint8    = scalar.FromUint8
	FromFloat16  = scalar.FromFloat16
	FromBFloat16 = scalar.FromBFloat16
	FromFloat32  = scalar.FromFloat32
	FromFloat64  = scalar.FromFloat64
	FromBool     = scalar.FromBool
)

// ParseKind returns the kind named by s.
func ParseKind(s string) (Kind, error) {
	return scalar.ParseKind(s)
}

// Parse boxes the textual value str as kind k.
func Parse(k Kind, str string) (Scalar, error) {
	return scalar.Parse(k, str)
}

// Convert re-boxes s as kind k.
func Convert(s Scalar, k Kind) (Scalar, error) {
	return scalar.Convert(s, k)
}

// From boxes v, choosing the kind from T.
func From[T Value](v T) Scalar {
	return scalar.From(v)
}

// To converts s to T.
func To[T Value](s Scalar) (T, error) {
	return scalar.To[T](s)
}
