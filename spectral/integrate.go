package spectral

import (
	"fmt"
	"log/slog"

	"colorimetry/cie"
)

// ToXYZ integrates the distribution against an illuminant and a set of
// color matching functions, returning CIE XYZ tristimulus values scaled
// so that a perfect reflecting diffuser has Y=100.
//
// The integration method follows ASTM E308: distributions sampled at
// 1nm or 5nm are integrated directly on the 360-780nm practice range,
// and distributions sampled at 10nm go through the tristimulus
// weighting factors of ASTM E2022. Irregularly spaced distributions are
// resampled to 1nm over their own domain first. Any other uniform
// interval falls back to 1nm integration.
func (v *VSPD) ToXYZ(illuminant *VSPD, cmf *CMF) (cie.XYZ64, error) {
	step, uniform := v.Interval().Step()
	switch {
	case !uniform:
		return integrationXYZ(v, illuminant, cmf, NewShape(v.Start(), v.End(), 1))
	case step == 1:
		return integrationXYZ(v, illuminant, cmf, ASTME308Shape())
	case step == 5:
		return integrationXYZ(v, illuminant, cmf, NewShape(360, 780, 5))
	case step == 10:
		return weightingXYZ(v, illuminant, cmf)
	default:
		slog.Warn("no ASTM E308 practice for sample interval, integrating at 1nm",
			slog.Float64("interval", step))
		return integrationXYZ(v, illuminant, cmf, ASTME308Shape())
	}
}

// integrationXYZ computes tristimulus values by direct Riemann
// summation over shape, which must be uniform. All inputs are resampled
// onto shape first.
func integrationXYZ(spd, illuminant *VSPD, cmf *CMF, shape Shape) (cie.XYZ64, error) {
	var zero cie.XYZ64

	c, err := cmf.Align(shape)
	if err != nil {
		return zero, fmt.Errorf("aligning observer: %w", err)
	}
	ill, err := illuminant.Align(shape)
	if err != nil {
		return zero, fmt.Errorf("aligning illuminant: %w", err)
	}
	s, err := spd.Align(shape)
	if err != nil {
		return zero, fmt.Errorf("aligning distribution: %w", err)
	}

	// Domains that do not land on the shape's grid leave the aligned
	// inputs with mismatched sampling.
	if s.Len() != ill.Len() || s.Len() != c.YBar.Len() {
		return zero, fmt.Errorf("spectral: inputs do not align onto %v: %d, %d and %d samples",
			shape, s.Len(), ill.Len(), c.YBar.Len())
	}

	dw, _ := shape.Interval.Step()

	var norm float64
	for i, smp := range ill.samples {
		norm += smp.V * c.YBar.samples[i].V * dw
	}
	if norm == 0 {
		return zero, fmt.Errorf("spectral: illuminant has no power over %v", shape)
	}
	k := 100 / norm

	var out cie.XYZ64
	for i, smp := range s.samples {
		si := smp.V * ill.samples[i].V * dw
		out.X += si * c.XBar.samples[i].V
		out.Y += si * c.YBar.samples[i].V
		out.Z += si * c.ZBar.samples[i].V
	}
	return out.Scale(k), nil
}

// weightingXYZ computes tristimulus values with the ASTM E2022
// weighting factor method. The factors carry the illuminant and the
// Lagrange-interpolated matching functions, so the distribution itself
// is only sampled at its measurement wavelengths.
func weightingXYZ(spd, illuminant *VSPD, cmf *CMF) (cie.XYZ64, error) {
	var zero cie.XYZ64

	interval, ok := spd.Interval().Step()
	if !ok {
		return zero, fmt.Errorf("spectral: weighting factors require a uniform interval, got %v", spd.Shape())
	}

	// The factor table is always built on the 360-780nm practice range
	// at 1nm, whatever domain the observer and illuminant come in on.
	practice := ASTME308Shape()
	c, err := cmf.Align(practice)
	if err != nil {
		return zero, fmt.Errorf("aligning observer: %w", err)
	}
	ill, err := illuminant.Align(practice)
	if err != nil {
		return zero, fmt.Errorf("aligning illuminant: %w", err)
	}

	trimmed, err := spd.Trim(practice)
	if err != nil {
		return zero, fmt.Errorf("trimming distribution: %w", err)
	}

	w, err := tristimulusWeightingFactors(c, ill, NewShape(practice.Start, practice.End, interval))
	if err != nil {
		return zero, err
	}

	startW := practice.Start
	endW := startW + interval*float64(len(w)-1)
	startIndex := int((trimmed.Start() - startW) / interval)
	endIndex := int((endW - trimmed.End()) / interval)
	w = adjustWeights(w, startIndex, endIndex)

	if len(w) != trimmed.Len() {
		return zero, fmt.Errorf("spectral: %d weighting factors for %d samples", len(w), trimmed.Len())
	}

	var out cie.XYZ64
	for i, smp := range trimmed.samples {
		out.X += w[i].X * smp.V
		out.Y += w[i].Y * smp.V
		out.Z += w[i].Z * smp.V
	}
	return out, nil
}

// tristimulusWeightingFactors computes one weighting factor triple per
// measurement wavelength of shape, per ASTM E2022. The matching
// functions must be sampled at 1nm and the illuminant must share their
// shape. Factors are normalized so the Y column sums to 100.
func tristimulusWeightingFactors(cmf *CMF, illuminant *VSPD, shape Shape) ([]cie.XYZ64, error) {
	if step, ok := cmf.Shape().Interval.Step(); !ok || step != 1 {
		return nil, fmt.Errorf("spectral: weighting factors require 1nm matching functions, got %v", cmf.Shape())
	}
	if !illuminant.Shape().Equal(cmf.Shape()) {
		return nil, fmt.Errorf("spectral: illuminant shape %v does not match observer shape %v",
			illuminant.Shape(), cmf.Shape())
	}

	interval, ok := shape.Interval.Step()
	if !ok {
		return nil, fmt.Errorf("spectral: weighting factors require a uniform target interval")
	}
	intervalI := int(interval)

	s := illuminant.Values()
	x := cmf.XBar.Values()
	y := cmf.YBar.Values()
	z := cmf.ZBar.Values()

	cc := lagrangeCoefficientsASTME2022(interval, 3)
	cb := lagrangeCoefficientsASTME2022(interval, 4)

	// Total 1nm wavelength count, interpolated values per measurement
	// interval, and measurement interval count.
	wc := len(y)
	rc := len(cb)
	ic := (wc-1)/intervalI + 1
	icm := ic - 1

	// First interpolated wavelength of the last complete interval.
	wLif := wc - (wc-1)%intervalI - 1 - rc

	w := make([]cie.XYZ64, ic)
	for i := range w {
		k := i * intervalI
		w[i] = cie.XYZ64{X: x[k], Y: y[k], Z: z[k]}.Scale(s[k])
	}

	// First boundary interval: its interpolated points draw on the
	// first three measurement wavelengths.
	for j := range rc {
		f := s[j+1]
		for k := range 3 {
			w[k].X += cc[j][k] * f * x[j+1]
			w[k].Y += cc[j][k] * f * y[j+1]
			w[k].Z += cc[j][k] * f * z[j+1]
		}
	}

	// Last boundary interval, mirrored.
	for j := range rc {
		f := s[j+wLif]
		for k := icm; k > icm-3; k-- {
			c := cc[rc-j-1][icm-k]
			w[k].X += c * f * x[j+wLif]
			w[k].Y += c * f * y[j+wLif]
			w[k].Z += c * f * z[j+wLif]
		}
	}

	// Interior intervals use the degree-4 coefficients across four
	// measurement wavelengths each.
	for j := 0; j < ic-3; j++ {
		for k := range rc {
			wi := (rc+1)*(j+1) + 1 + k
			f := s[wi]
			for m := range 4 {
				w[j+m].X += cb[k][m] * f * x[wi]
				w[j+m].Y += cb[k][m] * f * y[wi]
				w[j+m].Z += cb[k][m] * f * z[wi]
			}
		}
	}

	// Wavelengths past the last complete interval accumulate onto the
	// final factor unweighted.
	for j := wc - (wc-1)%intervalI; j < wc; j++ {
		w[icm].X += s[j] * x[j]
		w[icm].Y += s[j] * y[j]
		w[icm].Z += s[j] * z[j]
	}

	var sumY float64
	for _, t := range w {
		sumY += t.Y
	}
	if sumY == 0 {
		return nil, fmt.Errorf("spectral: illuminant has no power over %v", cmf.Shape())
	}
	k := 100 / sumY
	for i := range w {
		w[i] = w[i].Scale(k)
	}
	return w, nil
}

// adjustWeights conserves the total weight when a distribution covers
// fewer measurement wavelengths than the factors do, folding the
// truncated boundary factors into the outermost retained ones per ASTM
// E308 section 7.3.
func adjustWeights(w []cie.XYZ64, startIndex, endIndex int) []cie.XYZ64 {
	for i := 0; i < startIndex; i++ {
		w[startIndex] = w[startIndex].Add(w[i])
	}
	last := len(w) - endIndex - 1
	for i := last + 1; i < len(w); i++ {
		w[last] = w[last].Add(w[i])
	}
	return w[startIndex : last+1]
}

// lagrangeCoefficients returns the n Lagrange basis polynomials over
// the integer knots 0..n-1 evaluated at r.
func lagrangeCoefficients(r float64, n int) []float64 {
	out := make([]float64, n)
	for j := range out {
		l := 1.0
		for k := range n {
			if k == j {
				continue
			}
			l *= (r - float64(k)) / float64(j-k)
		}
		out[j] = l
	}
	return out
}

// lagrangeCoefficientsASTME2022 returns one coefficient row per
// interpolated wavelength inside a measurement interval. Degree 3 rows
// serve the boundary intervals, degree 4 rows the interior ones, which
// evaluate one knot further in.
func lagrangeCoefficientsASTME2022(interval float64, degree int) [][]float64 {
	n := int(interval) - 1
	var d float64
	if degree == 4 {
		d = 1
	}
	out := make([][]float64, n)
	for i := range out {
		r := (1 + float64(i)) / interval
		out[i] = lagrangeCoefficients(r+d, degree)
	}
	return out
}
