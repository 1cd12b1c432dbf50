// Package spectral implements spectral power distribution containers,
// the Sprague and linear interpolators used to resample them, and the
// ASTM E308 integration that converts spectra to CIE XYZ tristimulus
// values.
package spectral

import (
	"fmt"
	"math"
)

// Sample is a single spectral measurement: a wavelength in nanometres
// paired with the value of the distribution at that wavelength. Samples
// are immutable; transforms always allocate new ones.
type Sample struct {
	Nm float64
	V  float64
}

func (s Sample) String() string {
	return fmt.Sprintf("(%v, %v)", s.Nm, s.V)
}

// ApproxEqual reports whether both the wavelength and the value of two
// samples agree within eps absolute error or ulps units in the last
// place.
func (s Sample) ApproxEqual(other Sample, eps float64, ulps int64) bool {
	return almostEqual(s.Nm, other.Nm, eps, ulps) &&
		almostEqual(s.V, other.V, eps, ulps)
}

// Tolerances used when deriving a shape from raw samples.
const (
	intervalEpsilon = 1e-11
	intervalUlps    = 2
)

// almostEqual reports |a-b| <= eps, or that a and b are within ulps
// representable values of each other.
func almostEqual(a, b, eps float64, ulps int64) bool {
	if math.Abs(a-b) <= eps {
		return true
	}
	if math.Signbit(a) != math.Signbit(b) {
		return a == b
	}
	ai := int64(math.Float64bits(a))
	bi := int64(math.Float64bits(b))
	d := ai - bi
	if d < 0 {
		d = -d
	}
	return d <= ulps
}
