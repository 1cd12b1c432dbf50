package rgbspace

import (
	"colorimetry/cie"
	"colorimetry/num"
	"colorimetry/rgb"
)

// XYZToRGBMatrix builds a matrix converting XYZ values relative to the
// given white point into linear RGB in the target space, Bradford
// adapting the white point to the space's own.
func XYZToRGBMatrix[T num.Float](white cie.XYY[T], space *Space[T]) num.Matrix33[T] {
	cat := cie.Bradford(cie.FromChromaticity(white), cie.FromChromaticity(space.White))
	return space.XYZToRGB.Mul(cat)
}

// RGBToRGBMatrix builds a matrix converting linear RGB between two
// spaces, Bradford adapting between their white points.
func RGBToRGBMatrix[T num.Float](from, to *Space[T]) num.Matrix33[T] {
	cat := cie.Bradford(cie.FromChromaticity(from.White), cie.FromChromaticity(to.White))
	return to.XYZToRGB.Mul(cat).Mul(from.RGBToXYZ)
}

// XYZToRGB applies a conversion matrix to a tristimulus value.
func XYZToRGB[T num.Float](m num.Matrix33[T], c cie.XYZ[T]) rgb.RGB[T] {
	r, g, b := m.Apply(c.X, c.Y, c.Z)
	return rgb.RGB[T]{R: r, G: g, B: b}
}

// RGBToXYZ applies a conversion matrix to a linear RGB value.
func RGBToXYZ[T num.Float](m num.Matrix33[T], c rgb.RGB[T]) cie.XYZ[T] {
	x, y, z := m.Apply(c.R, c.G, c.B)
	return cie.XYZ[T]{X: x, Y: y, Z: z}
}
