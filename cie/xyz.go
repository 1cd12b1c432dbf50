// Package cie provides CIE XYZ tristimulus values, xyY chromaticity
// coordinates, the L*a*b* space with its color difference formulas, and
// chromatic adaptation transforms.
package cie

import (
	"fmt"

	"colorimetry/num"
)

// XYZ is a CIE XYZ tristimulus value. Throughout the library the
// convention is that a perfect diffuser under the reference illuminant
// has Y = 100.
type XYZ[T num.Float] struct {
	X, Y, Z T
}

type XYZ32 = XYZ[float32]
type XYZ64 = XYZ[float64]

func NewXYZ[T num.Float](x, y, z T) XYZ[T] {
	return XYZ[T]{X: x, Y: y, Z: z}
}

func XYZFromScalar[T num.Float](a T) XYZ[T] {
	return XYZ[T]{X: a, Y: a, Z: a}
}

func (c XYZ[T]) Add(rhs XYZ[T]) XYZ[T] {
	return XYZ[T]{X: c.X + rhs.X, Y: c.Y + rhs.Y, Z: c.Z + rhs.Z}
}

func (c XYZ[T]) Sub(rhs XYZ[T]) XYZ[T] {
	return XYZ[T]{X: c.X - rhs.X, Y: c.Y - rhs.Y, Z: c.Z - rhs.Z}
}

func (c XYZ[T]) Mul(rhs XYZ[T]) XYZ[T] {
	return XYZ[T]{X: c.X * rhs.X, Y: c.Y * rhs.Y, Z: c.Z * rhs.Z}
}

func (c XYZ[T]) Div(rhs XYZ[T]) XYZ[T] {
	return XYZ[T]{X: c.X / rhs.X, Y: c.Y / rhs.Y, Z: c.Z / rhs.Z}
}

func (c XYZ[T]) Scale(s T) XYZ[T] {
	return XYZ[T]{X: c.X * s, Y: c.Y * s, Z: c.Z * s}
}

func (c XYZ[T]) Abs() XYZ[T] {
	return XYZ[T]{X: num.Abs(c.X), Y: num.Abs(c.Y), Z: num.Abs(c.Z)}
}

// Normalized returns a unit-luminance version of this color.
func (c XYZ[T]) Normalized() XYZ[T] {
	return c.Div(XYZFromScalar(c.Y))
}

// NormalizedY scales the color so that Y = 100.
func (c XYZ[T]) NormalizedY() XYZ[T] {
	return c.Scale(100 / c.Y)
}

func (c XYZ[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", c.X, c.Y, c.Z)
}

// Transform applies a 3x3 matrix to the tristimulus column vector.
func Transform[T num.Float](m num.Matrix33[T], c XYZ[T]) XYZ[T] {
	x, y, z := m.Apply(c.X, c.Y, c.Z)
	return XYZ[T]{X: x, Y: y, Z: z}
}

// XYY is a chromaticity coordinate pair with an associated luminance.
type XYY[T num.Float] struct {
	X, Y T
	// Lum is the Y tristimulus value associated with the coordinate,
	// on a 0-1 scale.
	Lum T
}

type XYY32 = XYY[float32]
type XYY64 = XYY[float64]

func NewXYY[T num.Float](x, y, lum T) XYY[T] {
	return XYY[T]{X: x, Y: y, Lum: lum}
}

// Chromaticity returns the xy chromaticity coordinate of c, discarding
// luminance.
func (c XYZ[T]) Chromaticity() XYY[T] {
	s := c.X + c.Y + c.Z
	return XYY[T]{X: c.X / s, Y: c.Y / s, Lum: 1}
}

// FromChromaticity converts xyY coordinates to an XYZ tristimulus value
// on the Y = 100 scale.
func FromChromaticity[T num.Float](c XYY[T]) XYZ[T] {
	return XYZ[T]{
		X: c.X * c.Lum / c.Y,
		Y: c.Lum,
		Z: (1 - c.X - c.Y) * c.Lum / c.Y,
	}.Scale(100)
}
