// Package rgb provides tristimulus RGB value types in floating-point
// and integer widths.
package rgb

import (
	"fmt"

	"colorimetry/num"
)

// RGB is a floating-point RGB triple. The color space it is expressed
// in is tracked by the caller, usually via rgbspace.Space.
type RGB[T num.Float] struct {
	R, G, B T
}

type RGB32 = RGB[float32]
type RGB64 = RGB[float64]

func New[T num.Float](r, g, b T) RGB[T] {
	return RGB[T]{R: r, G: g, B: b}
}

func FromScalar[T num.Float](s T) RGB[T] {
	return RGB[T]{R: s, G: s, B: s}
}

func (c RGB[T]) Add(rhs RGB[T]) RGB[T] {
	return RGB[T]{R: c.R + rhs.R, G: c.G + rhs.G, B: c.B + rhs.B}
}

func (c RGB[T]) Sub(rhs RGB[T]) RGB[T] {
	return RGB[T]{R: c.R - rhs.R, G: c.G - rhs.G, B: c.B - rhs.B}
}

func (c RGB[T]) Mul(rhs RGB[T]) RGB[T] {
	return RGB[T]{R: c.R * rhs.R, G: c.G * rhs.G, B: c.B * rhs.B}
}

func (c RGB[T]) Scale(s T) RGB[T] {
	return RGB[T]{R: c.R * s, G: c.G * s, B: c.B * s}
}

func (c RGB[T]) Powf(x T) RGB[T] {
	return RGB[T]{R: num.Pow(c.R, x), G: num.Pow(c.G, x), B: num.Pow(c.B, x)}
}

func (c RGB[T]) Clamp(lo, hi T) RGB[T] {
	return RGB[T]{
		R: num.Clamp(c.R, lo, hi),
		G: num.Clamp(c.G, lo, hi),
		B: num.Clamp(c.B, lo, hi),
	}
}

// HMax returns the largest of the three channels.
func (c RGB[T]) HMax() T {
	m := c.R
	if c.G > m {
		m = c.G
	}
	if c.B > m {
		m = c.B
	}
	return m
}

// Normalize scales the color so its largest channel is 1.
func (c RGB[T]) Normalize() RGB[T] {
	return c.Scale(1 / c.HMax())
}

func (c RGB[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", c.R, c.G, c.B)
}

// RGB8 is an 8-bit-per-channel RGB triple.
type RGB8 struct {
	R, G, B uint8
}

// RGB16 is a 16-bit-per-channel RGB triple.
type RGB16 struct {
	R, G, B uint16
}

// To8 converts a [0, 1] display-referred color to 8 bits per channel,
// clamping out-of-range values.
func To8[T num.Float](c RGB[T]) RGB8 {
	return RGB8{
		R: uint8(num.Clamp(c.R, 0, 1)*255 + 0.5),
		G: uint8(num.Clamp(c.G, 0, 1)*255 + 0.5),
		B: uint8(num.Clamp(c.B, 0, 1)*255 + 0.5),
	}
}

// To16 converts a [0, 1] display-referred color to 16 bits per channel,
// clamping out-of-range values.
func To16[T num.Float](c RGB[T]) RGB16 {
	return RGB16{
		R: uint16(num.Clamp(c.R, 0, 1)*65535 + 0.5),
		G: uint16(num.Clamp(c.G, 0, 1)*65535 + 0.5),
		B: uint16(num.Clamp(c.B, 0, 1)*65535 + 0.5),
	}
}

// From8 converts an 8-bit color to floating point on [0, 1].
func From8[T num.Float](c RGB8) RGB[T] {
	return RGB[T]{R: T(c.R) / 255, G: T(c.G) / 255, B: T(c.B) / 255}
}
