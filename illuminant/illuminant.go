// Package illuminant provides standard illuminants as relative
// spectral power distributions, normalized to 100 at 560nm.
package illuminant

import (
	"fmt"
	"math"

	"colorimetry/spectral"
)

// Second radiation constant in m*K. Illuminant A is defined with the
// 1931 value, Planckian radiators with the current CODATA one.
const (
	c2A    = 1.435e-2
	c2     = 1.4388e-2
	tempA  = 2848.0
	normNm = 560.0
)

// E returns the equal-energy illuminant over shape.
func E(shape spectral.Shape) (*spectral.VSPD, error) {
	return spectral.Constant(shape, 100)
}

// A returns CIE standard illuminant A over shape, the exact Planckian
// formula at 2848K with the 1931 radiation constant, per CIE 15.
func A(shape spectral.Shape) (*spectral.VSPD, error) {
	wl, err := shape.Wavelengths()
	if err != nil {
		return nil, fmt.Errorf("illuminant: %w", err)
	}

	den := math.Exp(c2A/(tempA*normNm*1e-9)) - 1
	v := make([]float64, len(wl))
	for i, nm := range wl {
		r := normNm / nm
		v[i] = 100 * r * r * r * r * r * den / (math.Exp(c2A/(tempA*nm*1e-9)) - 1)
	}
	return spectral.FromValues(shape, v)
}

// Planckian returns the relative spectral power of a blackbody radiator
// at the given temperature in kelvin, normalized to 100 at 560nm.
func Planckian(tempK float64, shape spectral.Shape) (*spectral.VSPD, error) {
	if tempK <= 0 {
		return nil, fmt.Errorf("illuminant: temperature must be positive, got %vK", tempK)
	}
	wl, err := shape.Wavelengths()
	if err != nil {
		return nil, fmt.Errorf("illuminant: %w", err)
	}

	norm := planck(normNm*1e-9, tempK)
	v := make([]float64, len(wl))
	for i, nm := range wl {
		v[i] = 100 * planck(nm*1e-9, tempK) / norm
	}
	return spectral.FromValues(shape, v)
}

// planck evaluates Planck's law at wavelength lambda in metres, up to a
// constant factor that cancels under normalization.
func planck(lambda, tempK float64) float64 {
	return 1 / (math.Pow(lambda, 5) * (math.Exp(c2/(lambda*tempK)) - 1))
}
