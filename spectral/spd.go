package spectral

import (
	"errors"

	"colorimetry/cie"
	"colorimetry/num"
)

// Sample32 is a single-precision spectral sample.
type Sample32 struct {
	Nm float32
	V  float32
}

// SPD is the single-precision counterpart of VSPD, tuned for tight
// per-pixel loops. It trades the shape transforms of VSPD for cheap
// lookups: construction detects whether the samples are uniformly
// spaced, and if so ValueAt locates its bracket by position arithmetic
// instead of search.
type SPD struct {
	samples []Sample32
	step    float32
	uniform bool
}

// NewSPD builds an SPD from at least two samples ordered by strictly
// increasing wavelength.
func NewSPD(samples []Sample32) (*SPD, error) {
	if len(samples) < 2 {
		return nil, errors.New("spectral: an SPD needs at least 2 samples")
	}
	for i := 1; i < len(samples); i++ {
		if samples[i].Nm <= samples[i-1].Nm {
			return nil, errors.New("spectral: SPD samples must have strictly increasing wavelengths")
		}
	}

	s := &SPD{samples: append([]Sample32(nil), samples...)}

	step := samples[1].Nm - samples[0].Nm
	s.step, s.uniform = step, true
	for i := 2; i < len(samples); i++ {
		if !almostEqual(float64(samples[i].Nm-samples[i-1].Nm), float64(step), intervalEpsilon, intervalUlps) {
			s.step, s.uniform = 0, false
			break
		}
	}
	return s, nil
}

func (s *SPD) Len() int        { return len(s.samples) }
func (s *SPD) Start() float32  { return s.samples[0].Nm }
func (s *SPD) End() float32    { return s.samples[len(s.samples)-1].Nm }
func (s *SPD) IsUniform() bool { return s.uniform }

func (s *SPD) Samples() []Sample32 {
	return append([]Sample32(nil), s.samples...)
}

// ValueAt linearly interpolates the distribution at nm. Wavelengths
// outside the domain clamp to the boundary samples.
func (s *SPD) ValueAt(nm float32) float32 {
	if nm <= s.samples[0].Nm {
		return s.samples[0].V
	}
	last := len(s.samples) - 1
	if nm >= s.samples[last].Nm {
		return s.samples[last].V
	}

	i := 0
	if s.uniform {
		i = int((nm - s.samples[0].Nm) / s.step)
		if i < 0 {
			i = 0
		}
		if i > last-1 {
			i = last - 1
		}
	} else {
		for k := 1; k <= last; k++ {
			if nm < s.samples[k].Nm {
				i = k - 1
				break
			}
		}
	}

	a, b := s.samples[i], s.samples[i+1]
	return num.Lerp(a.V, b.V, (nm-a.Nm)/(b.Nm-a.Nm))
}

// ValueAtExtrapolate is ValueAt with the clamping made explicit in the
// name, for call sites that sample beyond the measured domain on
// purpose.
func (s *SPD) ValueAtExtrapolate(nm float32) float32 {
	return s.ValueAt(nm)
}

// CMF32 holds a standard observer in single precision.
type CMF32 struct {
	XBar *SPD
	YBar *SPD
	ZBar *SPD
}

// ToXYZ accumulates unnormalized tristimulus values, sampling the
// distribution at the observer's wavelengths. Useful when the caller
// applies its own normalization, as a renderer accumulating radiance
// does.
func (s *SPD) ToXYZ(cmf *CMF32) cie.XYZ32 {
	var out cie.XYZ32
	for i, xb := range cmf.XBar.samples {
		v := s.ValueAt(xb.Nm)
		out.X += v * xb.V
		out.Y += v * cmf.YBar.samples[i].V
		out.Z += v * cmf.ZBar.samples[i].V
	}
	return out
}

// ToXYZWithIlluminant accumulates tristimulus values of the
// distribution seen as a reflectance under the illuminant, normalized
// so that a perfect diffuser has Y=100.
func (s *SPD) ToXYZWithIlluminant(illuminant *SPD, cmf *CMF32) cie.XYZ32 {
	var out cie.XYZ32
	var norm float32
	for i, xb := range cmf.XBar.samples {
		ill := illuminant.ValueAt(xb.Nm)
		yb := cmf.YBar.samples[i].V
		norm += ill * yb

		v := s.ValueAt(xb.Nm) * ill
		out.X += v * xb.V
		out.Y += v * yb
		out.Z += v * cmf.ZBar.samples[i].V
	}
	if norm == 0 {
		return cie.XYZ32{}
	}
	return out.Scale(100 / norm)
}
