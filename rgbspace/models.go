package rgbspace

import (
	"colorimetry/cie"
	"colorimetry/num"
)

// Standard color space models. The float64 singletons below are
// constructed eagerly and are immutable; for other precisions use the
// New* constructors.
var (
	SRGB         = NewSRGB[float64]()
	BT709        = NewBT709[float64]()
	BT2020       = NewBT2020[float64]()
	DCIP3        = NewDCIP3[float64]()
	AdobeRGB1998 = NewAdobeRGB1998[float64]()
)

// NewSRGB returns the sRGB (IEC 61966-2-1) color space. The published
// matrices are used rather than ones derived from the primaries, since
// the standard's rounded values differ slightly from the mathematical
// derivation.
func NewSRGB[T num.Float]() *Space[T] {
	return NewWithMatrices(
		cie.NewXYY[T](0.64, 0.33, 1),
		cie.NewXYY[T](0.30, 0.60, 1),
		cie.NewXYY[T](0.15, 0.06, 1),
		cie.NewXYY[T](0.3127, 0.3290, 1),
		num.NewMatrix33([9]T{
			3.2406, -1.5372, -0.4986,
			-0.9689, 1.8758, 0.0415,
			0.0557, -0.2040, 1.0570,
		}),
		num.NewMatrix33([9]T{
			0.4124, 0.3576, 0.1805,
			0.2126, 0.7152, 0.0722,
			0.0193, 0.1192, 0.9505,
		}),
		PerChannel(EncodeSRGB[T]),
		PerChannel(DecodeSRGB[T]),
	)
}

// NewBT709 returns the ITU-R BT.709 color space.
func NewBT709[T num.Float]() *Space[T] {
	return mustSpace(New(
		cie.NewXYY[T](0.64, 0.33, 1),
		cie.NewXYY[T](0.30, 0.60, 1),
		cie.NewXYY[T](0.15, 0.06, 1),
		cie.NewXYY[T](0.3127, 0.3290, 1),
		PerChannel(EncodeBT709[T]),
		PerChannel(DecodeBT709[T]),
	))
}

// NewBT2020 returns the ITU-R BT.2020 wide-gamut color space.
func NewBT2020[T num.Float]() *Space[T] {
	return mustSpace(New(
		cie.NewXYY[T](0.708, 0.292, 1),
		cie.NewXYY[T](0.170, 0.797, 1),
		cie.NewXYY[T](0.131, 0.046, 1),
		cie.NewXYY[T](0.3127, 0.3290, 1),
		PerChannel(EncodeBT2020[T]),
		PerChannel(DecodeBT2020[T]),
	))
}

// NewDCIP3 returns the DCI-P3 cinema color space with its 2.6 gamma.
func NewDCIP3[T num.Float]() *Space[T] {
	return mustSpace(New(
		cie.NewXYY[T](0.680, 0.320, 1),
		cie.NewXYY[T](0.265, 0.690, 1),
		cie.NewXYY[T](0.150, 0.060, 1),
		cie.NewXYY[T](0.314, 0.351, 1),
		PerChannel(func(x T) T { return num.Pow(num.Clamp(x, 0, 1), 1/2.6) }),
		PerChannel(func(f T) T { return num.Pow(num.Clamp(f, 0, 1), 2.6) }),
	))
}

// NewAdobeRGB1998 returns the Adobe RGB (1998) color space.
func NewAdobeRGB1998[T num.Float]() *Space[T] {
	const gamma = 563.0 / 256.0
	return mustSpace(New(
		cie.NewXYY[T](0.64, 0.33, 1),
		cie.NewXYY[T](0.21, 0.71, 1),
		cie.NewXYY[T](0.15, 0.06, 1),
		cie.NewXYY[T](0.3127, 0.3290, 1),
		PerChannel(func(x T) T { return num.Pow(num.Clamp(x, 0, 1), 1/gamma) }),
		PerChannel(func(f T) T { return num.Pow(num.Clamp(f, 0, 1), gamma) }),
	))
}

// the model primaries above are fixed and non-degenerate
func mustSpace[T num.Float](s *Space[T], err error) *Space[T] {
	if err != nil {
		panic(err)
	}
	return s
}
