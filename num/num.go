// Package num provides the floating-point abstraction the rest of the
// library is generic over, plus a small 3x3 matrix type used for color
// space transforms.
package num

import "math"

// Float covers the two floating-point widths supported by the library.
// Formulas are written once against this constraint instead of being
// duplicated per precision.
type Float interface {
	~float32 | ~float64
}

func Sqrt[T Float](x T) T  { return T(math.Sqrt(float64(x))) }
func Cbrt[T Float](x T) T  { return T(math.Cbrt(float64(x))) }
func Abs[T Float](x T) T   { return T(math.Abs(float64(x))) }
func Sin[T Float](x T) T   { return T(math.Sin(float64(x))) }
func Cos[T Float](x T) T   { return T(math.Cos(float64(x))) }
func Exp[T Float](x T) T   { return T(math.Exp(float64(x))) }
func Log10[T Float](x T) T { return T(math.Log10(float64(x))) }

func Pow[T Float](x, y T) T    { return T(math.Pow(float64(x), float64(y))) }
func Hypot[T Float](x, y T) T  { return T(math.Hypot(float64(x), float64(y))) }
func Atan2[T Float](y, x T) T  { return T(math.Atan2(float64(y), float64(x))) }
func Mod[T Float](x, y T) T    { return T(math.Mod(float64(x), float64(y))) }

// Powi raises x to a small positive integer power by repeated
// multiplication.
func Powi[T Float](x T, n int) T {
	r := T(1)
	for range n {
		r *= x
	}
	return r
}

func Sqr[T Float](x T) T { return x * x }

func Radians[T Float](deg T) T { return deg * T(math.Pi) / 180 }
func Degrees[T Float](rad T) T { return rad * 180 / T(math.Pi) }

func Clamp[T Float](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func Lerp[T Float](a, b, t T) T { return a*(1-t) + b*t }
