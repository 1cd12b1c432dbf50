// Package rgbspace defines RGB color spaces from primaries, white point
// and transfer functions, and the matrices that convert between them
// and CIE XYZ.
package rgbspace

import (
	"fmt"

	"colorimetry/cie"
	"colorimetry/num"
	"colorimetry/rgb"
)

// TransferFunction maps an RGB triple between scene-linear and
// display-referred encodings.
type TransferFunction[T num.Float] func(rgb.RGB[T]) rgb.RGB[T]

// Space defines a tristimulus RGB color space as a collection of
// primaries, a white point and an OETF/EOTF pair. The conversion
// matrices are derived at construction and never mutated, so a Space
// may be shared freely across goroutines.
type Space[T num.Float] struct {
	XYZToRGB num.Matrix33[T]
	RGBToXYZ num.Matrix33[T]

	Red, Green, Blue, White cie.XYY[T]

	OETF TransferFunction[T]
	EOTF TransferFunction[T]
}

// New builds a color space from its primaries and white point, deriving
// the XYZ conversion matrices.
func New[T num.Float](red, green, blue, white cie.XYY[T], oetf, eotf TransferFunction[T]) (*Space[T], error) {
	toRGB := xyzToRGBMatrix(red, green, blue, white)
	toXYZ, err := toRGB.Inverse()
	if err != nil {
		return nil, fmt.Errorf("rgbspace: degenerate primaries: %w", err)
	}

	return &Space[T]{
		XYZToRGB: toRGB,
		RGBToXYZ: toXYZ,
		Red:      red,
		Green:    green,
		Blue:     blue,
		White:    white,
		OETF:     oetf,
		EOTF:     eotf,
	}, nil
}

// NewWithMatrices builds a color space using the supplied XYZ
// conversion matrices instead of deriving them from the primaries. This
// is useful when the published spec for a color space differs from its
// mathematical definition due to rounding, as with sRGB.
func NewWithMatrices[T num.Float](red, green, blue, white cie.XYY[T],
	xyzToRGB, rgbToXYZ num.Matrix33[T], oetf, eotf TransferFunction[T]) *Space[T] {
	return &Space[T]{
		XYZToRGB: xyzToRGB,
		RGBToXYZ: rgbToXYZ,
		Red:      red,
		Green:    green,
		Blue:     blue,
		White:    white,
		OETF:     oetf,
		EOTF:     eotf,
	}
}

// Encode converts a scene-referred, linear color to a display-referred,
// possibly non-linear color using the opto-electrical transfer
// function.
func (s *Space[T]) Encode(c rgb.RGB[T]) rgb.RGB[T] {
	return s.OETF(c)
}

// Decode converts a display-referred, possibly non-linear color to a
// scene-referred, linear color using the electro-optical transfer
// function.
func (s *Space[T]) Decode(c rgb.RGB[T]) rgb.RGB[T] {
	return s.EOTF(c)
}

func xyzToRGBMatrix[T num.Float](red, green, blue, white cie.XYY[T]) num.Matrix33[T] {
	xr, yr := red.X, red.Y
	zr := 1 - (xr + yr)
	xg, yg := green.X, green.Y
	zg := 1 - (xg + yg)
	xb, yb := blue.X, blue.Y
	zb := 1 - (xb + yb)

	xw, yw := white.X, white.Y
	zw := 1 - (xw + yw)

	// xyz -> rgb matrix, before scaling to white
	rx := yg*zb - yb*zg
	ry := xb*zg - xg*zb
	rz := xg*yb - xb*yg
	gx := yb*zr - yr*zb
	gy := xr*zb - xb*zr
	gz := xb*yr - xr*yb
	bx := yr*zg - yg*zr
	by := xg*zr - xr*zg
	bz := xr*yg - xg*yr

	// White scaling factors. Dividing by yw scales the white
	// luminance to unity, as conventional.
	rw := (rx*xw + ry*yw + rz*zw) / yw
	gw := (gx*xw + gy*yw + gz*zw) / yw
	bw := (bx*xw + by*yw + bz*zw) / yw

	return num.NewMatrix33([9]T{
		rx / rw, ry / rw, rz / rw,
		gx / gw, gy / gw, gz / gw,
		bx / bw, by / bw, bz / bw,
	})
}
