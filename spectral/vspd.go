package spectral

import (
	"fmt"
	"slices"
	"strings"
)

// VSPD is a varying spectral power distribution: an ordered list of
// (wavelength, value) samples together with the shape derived from
// them. Wavelengths are in nanometres and strictly increasing.
//
// The samples may have uniform or varying spacing, although most
// operations require uniform samples and will either return an error or
// pre-interpolate when given a varying VSPD.
//
// VSPD is designed for flexibility and accuracy: it stores float64
// samples and every transform copies the whole sample slice into a
// fresh VSPD, so values are immutable and safe to share across
// goroutines. For a type optimized for per-pixel use at the expense of
// accuracy, see SPD.
type VSPD struct {
	samples []Sample
	shape   Shape
}

// New creates a VSPD from the given samples, which must number at least
// two and be sorted by strictly increasing wavelength. The slice is
// copied.
func New(samples []Sample) (*VSPD, error) {
	if len(samples) < 2 {
		return nil, fmt.Errorf("spectral: VSPD must have at least 2 samples, got %d", len(samples))
	}
	for i := 1; i < len(samples); i++ {
		if samples[i].Nm <= samples[i-1].Nm {
			return nil, fmt.Errorf("spectral: sample wavelengths must be strictly increasing, got %v after %v",
				samples[i].Nm, samples[i-1].Nm)
		}
	}
	owned := slices.Clone(samples)
	return &VSPD{samples: owned, shape: calculateShape(owned)}, nil
}

// Constant creates a VSPD of the given shape with every sample set to
// value.
func Constant(shape Shape, value float64) (*VSPD, error) {
	wl, err := shape.Wavelengths()
	if err != nil {
		return nil, fmt.Errorf("spectral: cannot create a constant VSPD: %w", err)
	}
	if len(wl) < 2 {
		return nil, fmt.Errorf("spectral: VSPD must have at least 2 samples, shape given was %v", shape)
	}
	samples := make([]Sample, len(wl))
	for i, nm := range wl {
		samples[i] = Sample{Nm: nm, V: value}
	}
	return &VSPD{samples: samples, shape: shape}, nil
}

// FromValues creates a VSPD of the given shape with the sample values
// taken from values, whose length must match the shape's sample count.
func FromValues(shape Shape, values []float64) (*VSPD, error) {
	if len(values) < 2 {
		return nil, fmt.Errorf("spectral: VSPD must have at least 2 samples, got slice of %d values", len(values))
	}
	wl, err := shape.Wavelengths()
	if err != nil {
		return nil, fmt.Errorf("spectral: cannot create a VSPD with a varying interval: %w", err)
	}
	if len(wl) != len(values) {
		return nil, fmt.Errorf("spectral: shape %v has %d samples but %d values were given",
			shape, len(wl), len(values))
	}
	samples := make([]Sample, len(wl))
	for i, nm := range wl {
		samples[i] = Sample{Nm: nm, V: values[i]}
	}
	return &VSPD{samples: samples, shape: shape}, nil
}

// FromPairs creates a VSPD from parallel wavelength and value slices of
// equal length.
func FromPairs(nm, v []float64) (*VSPD, error) {
	if len(nm) != len(v) {
		return nil, fmt.Errorf("spectral: wavelength and value slices differ in length: %d vs %d", len(nm), len(v))
	}
	samples := make([]Sample, len(nm))
	for i := range nm {
		samples[i] = Sample{Nm: nm[i], V: v[i]}
	}
	return New(samples)
}

// Shape returns this distribution's shape.
func (v *VSPD) Shape() Shape { return v.shape }

// Start returns the first sample's wavelength.
func (v *VSPD) Start() float64 { return v.shape.Start }

// End returns the last sample's wavelength.
func (v *VSPD) End() float64 { return v.shape.End }

// Interval returns the sample spacing.
func (v *VSPD) Interval() Interval { return v.shape.Interval }

// Len returns the number of samples.
func (v *VSPD) Len() int { return len(v.samples) }

// First returns the first sample.
func (v *VSPD) First() Sample { return v.samples[0] }

// Last returns the last sample.
func (v *VSPD) Last() Sample { return v.samples[len(v.samples)-1] }

// Samples returns a copy of the sample slice.
func (v *VSPD) Samples() []Sample {
	return slices.Clone(v.samples)
}

// Values returns the sample values in wavelength order.
func (v *VSPD) Values() []float64 {
	out := make([]float64, len(v.samples))
	for i, s := range v.samples {
		out[i] = s.V
	}
	return out
}

// Wavelengths returns the sample wavelengths in order.
func (v *VSPD) Wavelengths() []float64 {
	out := make([]float64, len(v.samples))
	for i, s := range v.samples {
		out[i] = s.Nm
	}
	return out
}

// Interpolate returns a new VSPD resampled onto the target shape's
// interval, with boundaries narrowed to the intersection of the target
// and this distribution's domain. It never extrapolates. The target
// interval must be uniform. Uniformly sampled input is resampled with
// the Sprague interpolator; varying input falls back to linear
// interpolation.
func (v *VSPD) Interpolate(target Shape) (*VSPD, error) {
	step, ok := target.Interval.Step()
	if !ok {
		return nil, fmt.Errorf("spectral: interpolate requires a uniform target interval, got %v", target)
	}

	eval := NewLinearInterpolator(v).Evaluate
	if v.shape.Interval.IsUniform() {
		sp, err := NewSpragueInterpolator(v)
		if err != nil {
			return nil, err
		}
		eval = sp.Evaluate
	}

	sh := Shape{
		Start:    max(target.Start, v.Start()),
		End:      min(target.End, v.End()),
		Interval: Uniform(step),
	}
	wl, err := sh.Wavelengths()
	if err != nil {
		return nil, err
	}
	if len(wl) < 2 {
		return nil, fmt.Errorf("spectral: interpolating %v to %v leaves fewer than 2 samples", v.shape, target)
	}

	samples := make([]Sample, len(wl))
	for i, nm := range wl {
		samples[i] = Sample{Nm: nm, V: eval(nm)}
	}
	return &VSPD{samples: samples, shape: sh}, nil
}

// Extrapolate returns a new VSPD whose domain is widened to the union
// of this distribution's range and the target's, filling the added
// samples with the nearest boundary value (flat extrapolation). The
// step used for the added samples is this distribution's interval if
// uniform, otherwise the target's.
func (v *VSPD) Extrapolate(target Shape) (*VSPD, error) {
	step, ok := v.shape.Interval.Step()
	if !ok {
		if step, ok = target.Interval.Step(); !ok {
			return nil, fmt.Errorf("spectral: cannot extrapolate without a uniform interval")
		}
	}

	ex := NewConstantExtrapolator(v)
	start := min(v.Start(), target.Start)
	end := max(v.End(), target.End)

	var samples []Sample
	for i := 0; ; i++ {
		nm := start + float64(i)*step
		if nm >= v.Start() {
			break
		}
		samples = append(samples, Sample{Nm: nm, V: ex.Evaluate(nm)})
	}
	samples = append(samples, v.samples...)
	for i := 1; ; i++ {
		nm := v.End() + float64(i)*step
		if nm > end {
			break
		}
		samples = append(samples, Sample{Nm: nm, V: ex.Evaluate(nm)})
	}

	return &VSPD{samples: samples, shape: calculateShape(samples)}, nil
}

// Align returns a new VSPD whose shape matches the target exactly,
// interpolating within the existing domain and flat-extrapolating
// outside it.
func (v *VSPD) Align(target Shape) (*VSPD, error) {
	interp, err := v.Interpolate(target)
	if err != nil {
		return nil, err
	}
	return interp.Extrapolate(target)
}

// Trim discards samples outside the target's wavelength range without
// resampling. The resulting shape's boundaries are the retained
// samples' actual wavelengths, which may lie inside the requested
// bounds.
func (v *VSPD) Trim(target Shape) (*VSPD, error) {
	lo, hi := 0, len(v.samples)
	for lo < hi && v.samples[lo].Nm < target.Start {
		lo++
	}
	for hi > lo && v.samples[hi-1].Nm > target.End {
		hi--
	}
	if hi-lo < 2 {
		return nil, fmt.Errorf("spectral: trimming %v to %v leaves fewer than 2 samples", v.shape, target)
	}

	samples := slices.Clone(v.samples[lo:hi])
	return &VSPD{
		samples: samples,
		shape: Shape{
			Start:    samples[0].Nm,
			End:      samples[len(samples)-1].Nm,
			Interval: v.shape.Interval,
		},
	}, nil
}

// Scale returns a new VSPD with every value multiplied by s.
func (v *VSPD) Scale(s float64) *VSPD {
	samples := make([]Sample, len(v.samples))
	for i, smp := range v.samples {
		samples[i] = Sample{Nm: smp.Nm, V: smp.V * s}
	}
	return &VSPD{samples: samples, shape: v.shape}
}

// Div returns a new VSPD with every value divided by s.
func (v *VSPD) Div(s float64) *VSPD {
	samples := make([]Sample, len(v.samples))
	for i, smp := range v.samples {
		samples[i] = Sample{Nm: smp.Nm, V: smp.V / s}
	}
	return &VSPD{samples: samples, shape: v.shape}
}

// Equal reports exact equality of shape and samples.
func (v *VSPD) Equal(other *VSPD) bool {
	return v.shape.Equal(other.shape) && slices.Equal(v.samples, other.samples)
}

// ApproxEqual reports sample-wise approximate equality within eps
// absolute error or ulps units in the last place.
func (v *VSPD) ApproxEqual(other *VSPD, eps float64, ulps int64) bool {
	if len(v.samples) != len(other.samples) {
		return false
	}
	for i := range v.samples {
		if !v.samples[i].ApproxEqual(other.samples[i], eps, ulps) {
			return false
		}
	}
	return true
}

func (v *VSPD) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "VSPD(%v, %v, %v)[", v.Start(), v.End(), v.Interval())
	for _, s := range v.samples {
		fmt.Fprintf(&b, "%v, ", s)
	}
	b.WriteString("]")
	return b.String()
}

func calculateInterval(samples []Sample) Interval {
	assumed := samples[1].Nm - samples[0].Nm
	for i := 2; i < len(samples); i++ {
		d := samples[i].Nm - samples[i-1].Nm
		if !almostEqual(d, assumed, intervalEpsilon, intervalUlps) {
			return Varying()
		}
	}
	return Uniform(assumed)
}

func calculateShape(samples []Sample) Shape {
	return Shape{
		Start:    samples[0].Nm,
		End:      samples[len(samples)-1].Nm,
		Interval: calculateInterval(samples),
	}
}
