package spectral

import (
	"fmt"

	"colorimetry/num"
)

// Boundary extrapolation coefficient rows for the Sprague interpolator,
// from CIE 167:2005. Each synthesized boundary sample is the dot
// product of one row with the six nearest original samples, divided by
// 209.
var (
	spragueC0 = [6]float64{884, -1960, 3033, -2648, 1080, -180}
	spragueC1 = [6]float64{508, -540, 488, -367, 144, -24}
	spragueC2 = [6]float64{-24, 144, -367, 488, -540, 508}
	spragueC3 = [6]float64{-180, 1080, -2648, 3033, -1960, 884}
)

// SpragueInterpolator evaluates a smooth estimate of a uniformly
// sampled VSPD at arbitrary wavelengths using the CIE-recommended
// sixth-order Sprague central-difference formula. Construction
// synthesizes two extra samples beyond each end of the domain so the
// formula has the neighbors it needs near the original boundaries.
//
// The interpolator is immutable after construction and safe for
// concurrent use.
type SpragueInterpolator struct {
	x []float64
	y []float64
}

// NewSpragueInterpolator builds an interpolator over v, which must be
// uniformly sampled with at least six samples.
func NewSpragueInterpolator(v *VSPD) (*SpragueInterpolator, error) {
	if !v.Interval().IsUniform() {
		return nil, fmt.Errorf("spectral: Sprague interpolation requires a uniform interval, got %v", v.Shape())
	}
	if v.Len() < 6 {
		return nil, fmt.Errorf("spectral: Sprague interpolation requires at least 6 samples, got %d", v.Len())
	}

	n := v.Len()
	first := v.samples[0].Nm
	last := v.samples[n-1].Nm
	h := v.samples[1].Nm - first

	x := make([]float64, 0, n+4)
	x = append(x, first-2*h, first-h)
	for _, s := range v.samples {
		x = append(x, s.Nm)
	}
	x = append(x, last+h, last+2*h)

	var y1, y2, y3, y4 float64
	for i := range 6 {
		y1 += spragueC0[i] * v.samples[i].V
		y2 += spragueC1[i] * v.samples[i].V
		y3 += spragueC2[5-i] * v.samples[n-1-i].V
		y4 += spragueC3[5-i] * v.samples[n-1-i].V
	}

	y := make([]float64, 0, n+4)
	y = append(y, y1/209, y2/209)
	for _, s := range v.samples {
		y = append(y, s.V)
	}
	y = append(y, y3/209, y4/209)

	return &SpragueInterpolator{x: x, y: y}, nil
}

// Evaluate returns the interpolated value at wavelength x. Wavelengths
// outside the padded domain are clamped onto the outermost interval.
func (sp *SpragueInterpolator) Evaluate(x float64) float64 {
	i := len(sp.x) - 4
	for k, t := range sp.x {
		if x < t {
			i = k - 1
			break
		}
	}
	if i < 2 {
		i = 2
	}
	if i > len(sp.x)-4 {
		i = len(sp.x) - 4
	}

	dx := (x - sp.x[i]) / (sp.x[i+1] - sp.x[i])
	a := spragueA(sp.y, i)

	dx2 := dx * dx
	dx3 := dx2 * dx
	dx4 := dx2 * dx2
	dx5 := dx4 * dx
	return a[0] + a[1]*dx + a[2]*dx2 + a[3]*dx3 + a[4]*dx4 + a[5]*dx5
}

// spragueA derives the six quintic coefficients from the neighborhood
// r[i-2..i+3], per ASTM E308 / CIE 167:2005.
func spragueA(r []float64, i int) [6]float64 {
	a0 := r[i]
	a1 := (2*r[i-2] - 16*r[i-1] + 16*r[i+1] - 2*r[i+2]) / 24
	a2 := (-r[i-2] + 16*r[i-1] - 30*r[i] + 16*r[i+1] - r[i+2]) / 24
	a3 := (-9*r[i-2] + 39*r[i-1] - 70*r[i] + 66*r[i+1] - 33*r[i+2] + 7*r[i+3]) / 24
	a4 := (13*r[i-2] - 64*r[i-1] + 126*r[i] - 124*r[i+1] + 61*r[i+2] - 12*r[i+3]) / 24
	a5 := (-5*r[i-2] + 25*r[i-1] - 50*r[i] + 50*r[i+1] - 25*r[i+2] + 5*r[i+3]) / 24
	return [6]float64{a0, a1, a2, a3, a4, a5}
}

// LinearInterpolator evaluates a piecewise-linear estimate of a VSPD.
// Outside the domain it clamps to the boundary values. It is intended
// for real-time use and for resampling irregularly spaced data.
type LinearInterpolator struct {
	spd *VSPD
}

func NewLinearInterpolator(spd *VSPD) *LinearInterpolator {
	return &LinearInterpolator{spd: spd}
}

func (li *LinearInterpolator) Evaluate(x float64) float64 {
	s := li.spd.samples
	if x <= s[0].Nm {
		return s[0].V
	}
	if x >= s[len(s)-1].Nm {
		return s[len(s)-1].V
	}
	i := 0
	for k := range s {
		if x < s[k].Nm {
			i = k - 1
			break
		}
	}
	d := (x - s[i].Nm) / (s[i+1].Nm - s[i].Nm)
	return num.Lerp(s[i].V, s[i+1].V, d)
}

// ConstantExtrapolator evaluates to the first sample's value below the
// domain and the last sample's value above it. It is the extrapolation
// policy used by VSPD.Extrapolate.
type ConstantExtrapolator struct {
	spd *VSPD
}

func NewConstantExtrapolator(spd *VSPD) *ConstantExtrapolator {
	return &ConstantExtrapolator{spd: spd}
}

func (ce *ConstantExtrapolator) Evaluate(x float64) float64 {
	if x < ce.spd.samples[0].Nm {
		return ce.spd.samples[0].V
	}
	return ce.spd.samples[len(ce.spd.samples)-1].V
}
