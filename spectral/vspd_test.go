package spectral

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// rampVSPD is a linear ramp from 0.5 at 380nm down to 0 at 480nm,
// sampled every 20nm.
func rampVSPD(t *testing.T) *VSPD {
	t.Helper()
	v, err := FromValues(NewShape(380, 480, 20), []float64{0.5, 0.4, 0.3, 0.2, 0.1, 0})
	if err != nil {
		t.Fatalf("FromValues() failed: %v", err)
	}
	return v
}

func TestNewErrors(t *testing.T) {
	if _, err := New([]Sample{{Nm: 380, V: 1}}); err == nil {
		t.Error("New() with one sample: expected error")
	}
	if _, err := New([]Sample{{Nm: 380, V: 1}, {Nm: 380, V: 2}}); err == nil {
		t.Error("New() with duplicate wavelengths: expected error")
	}
	if _, err := New([]Sample{{Nm: 400, V: 1}, {Nm: 380, V: 2}}); err == nil {
		t.Error("New() with decreasing wavelengths: expected error")
	}
}

func TestFromValuesLengthMismatch(t *testing.T) {
	if _, err := FromValues(NewShape(380, 480, 20), []float64{1, 2, 3}); err == nil {
		t.Error("FromValues() with 3 values for a 6-sample shape: expected error")
	}
}

func TestIntervalDetection(t *testing.T) {
	uniform, err := FromPairs([]float64{380, 400, 420, 440}, []float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("FromPairs() failed: %v", err)
	}
	if !uniform.Interval().Equal(Uniform(20)) {
		t.Errorf("interval of uniform samples = %v, want 20", uniform.Interval())
	}

	varying, err := FromPairs([]float64{380, 400, 410, 440}, []float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("FromPairs() failed: %v", err)
	}
	if varying.Interval().IsUniform() {
		t.Errorf("interval of irregular samples = %v, want Varying", varying.Interval())
	}

	// A drift in the very last gap must also be detected.
	tail, err := FromPairs([]float64{380, 400, 420, 445}, []float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("FromPairs() failed: %v", err)
	}
	if tail.Interval().IsUniform() {
		t.Errorf("interval with irregular tail = %v, want Varying", tail.Interval())
	}
}

func TestInterpolate(t *testing.T) {
	got, err := rampVSPD(t).Interpolate(NewShape(380, 480, 10))
	if err != nil {
		t.Fatalf("Interpolate() failed: %v", err)
	}

	want := []float64{0.5, 0.45, 0.4, 0.35, 0.3, 0.25, 0.2, 0.15, 0.1, 0.05, 0}
	if diff := cmp.Diff(want, got.Values(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("interpolated values mismatch (-want +got):\n%s", diff)
	}
	if !got.Shape().Equal(NewShape(380, 480, 10)) {
		t.Errorf("interpolated shape = %v", got.Shape())
	}
}

func TestInterpolateNarrowsToIntersection(t *testing.T) {
	got, err := rampVSPD(t).Interpolate(NewShape(300, 1000, 10))
	if err != nil {
		t.Fatalf("Interpolate() failed: %v", err)
	}
	if got.Start() != 380 || got.End() != 480 {
		t.Errorf("interpolated domain = [%v, %v], want [380, 480]", got.Start(), got.End())
	}
}

func TestInterpolateVaryingTarget(t *testing.T) {
	if _, err := rampVSPD(t).Interpolate(Shape{Start: 380, End: 480, Interval: Varying()}); err == nil {
		t.Error("Interpolate() to a varying shape: expected error")
	}
}

func TestExtrapolate(t *testing.T) {
	got, err := rampVSPD(t).Extrapolate(NewShape(320, 520, 10))
	if err != nil {
		t.Fatalf("Extrapolate() failed: %v", err)
	}

	// New samples use the source's own 20nm interval and the nearest
	// boundary value.
	want := []Sample{
		{320, 0.5}, {340, 0.5}, {360, 0.5},
		{380, 0.5}, {400, 0.4}, {420, 0.3}, {440, 0.2}, {460, 0.1}, {480, 0},
		{500, 0}, {520, 0},
	}
	if diff := cmp.Diff(want, got.Samples(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("extrapolated samples mismatch (-want +got):\n%s", diff)
	}
	if !got.Interval().Equal(Uniform(20)) {
		t.Errorf("extrapolated interval = %v, want 20", got.Interval())
	}
}

func TestExtrapolateNoOpInsideDomain(t *testing.T) {
	v := rampVSPD(t)
	got, err := v.Extrapolate(NewShape(400, 440, 20))
	if err != nil {
		t.Fatalf("Extrapolate() failed: %v", err)
	}
	if !got.Equal(v) {
		t.Errorf("extrapolating inside the domain changed the VSPD: %v", got)
	}
}

func TestAlignIdentity(t *testing.T) {
	v := rampVSPD(t)
	got, err := v.Align(v.Shape())
	if err != nil {
		t.Fatalf("Align() failed: %v", err)
	}
	if !got.ApproxEqual(v, 1e-12, 4) {
		t.Errorf("aligning to own shape changed the VSPD: %v", got)
	}
}

func TestTrim(t *testing.T) {
	v := rampVSPD(t)

	got, err := v.Trim(NewShape(400, 440, 20))
	if err != nil {
		t.Fatalf("Trim() failed: %v", err)
	}
	if got.Len() != 3 || got.Start() != 400 || got.End() != 440 {
		t.Errorf("trimmed to [400, 440]: got %v", got)
	}

	// Bounds between samples keep only the fully contained ones.
	got, err = v.Trim(NewShape(390, 450, 20))
	if err != nil {
		t.Fatalf("Trim() failed: %v", err)
	}
	if got.Len() != 3 || got.Start() != 400 || got.End() != 440 {
		t.Errorf("trimmed to [390, 450]: got %v", got)
	}

	if _, err := v.Trim(NewShape(481, 520, 20)); err == nil {
		t.Error("Trim() past the domain: expected error")
	}
}

func TestScaleDiv(t *testing.T) {
	v := rampVSPD(t)
	got := v.Scale(2).Div(2)
	if !got.Equal(v) {
		t.Errorf("Scale(2).Div(2) changed the VSPD: %v", got)
	}
	if s := v.Scale(2).First(); s.V != 1 {
		t.Errorf("Scale(2) first value = %v, want 1", s.V)
	}
}

func TestConstant(t *testing.T) {
	v, err := Constant(NewShape(360, 780, 5), 100)
	if err != nil {
		t.Fatalf("Constant() failed: %v", err)
	}
	if v.Len() != 85 {
		t.Errorf("Len() = %d, want 85", v.Len())
	}
	for _, s := range v.Samples() {
		if s.V != 100 {
			t.Fatalf("sample at %vnm = %v, want 100", s.Nm, s.V)
		}
	}

	if _, err := Constant(Shape{Start: 360, End: 780, Interval: Varying()}, 1); err == nil {
		t.Error("Constant() with varying shape: expected error")
	}
}
