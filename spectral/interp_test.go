package spectral

import (
	"math"
	"testing"
)

func TestSpragueReproducesLinearData(t *testing.T) {
	sp, err := NewSpragueInterpolator(rampVSPD(t))
	if err != nil {
		t.Fatalf("NewSpragueInterpolator() failed: %v", err)
	}

	// On linear data every higher-order term vanishes.
	if got := sp.Evaluate(390); math.Abs(got-0.45) > 1e-12 {
		t.Errorf("Evaluate(390) = %v, want 0.45", got)
	}
	if got := sp.Evaluate(437); math.Abs(got-0.215) > 1e-12 {
		t.Errorf("Evaluate(437) = %v, want 0.215", got)
	}
}

func TestSpragueExactAtKnots(t *testing.T) {
	v, err := FromValues(NewShape(380, 480, 20), []float64{0.5, 0.9, 0.1, 0.8, 0.2, 0.7})
	if err != nil {
		t.Fatalf("FromValues() failed: %v", err)
	}
	sp, err := NewSpragueInterpolator(v)
	if err != nil {
		t.Fatalf("NewSpragueInterpolator() failed: %v", err)
	}

	for _, s := range v.Samples() {
		if got := sp.Evaluate(s.Nm); math.Abs(got-s.V) > 1e-12 {
			t.Errorf("Evaluate(%v) = %v, want %v", s.Nm, got, s.V)
		}
	}
}

func TestSpragueRequirements(t *testing.T) {
	varying, err := FromPairs([]float64{380, 400, 410}, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("FromPairs() failed: %v", err)
	}
	if _, err := NewSpragueInterpolator(varying); err == nil {
		t.Error("NewSpragueInterpolator() with varying samples: expected error")
	}

	short, err := FromValues(NewShape(380, 460, 20), []float64{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("FromValues() failed: %v", err)
	}
	if _, err := NewSpragueInterpolator(short); err == nil {
		t.Error("NewSpragueInterpolator() with 5 samples: expected error")
	}
}

func TestLinearInterpolator(t *testing.T) {
	v, err := FromPairs([]float64{380, 400, 410}, []float64{0, 1, 3})
	if err != nil {
		t.Fatalf("FromPairs() failed: %v", err)
	}
	li := NewLinearInterpolator(v)

	cases := []struct{ nm, want float64 }{
		{390, 0.5},
		{405, 2},
		{400, 1},
		{300, 0}, // clamps below
		{500, 3}, // clamps above
	}
	for _, tc := range cases {
		if got := li.Evaluate(tc.nm); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Evaluate(%v) = %v, want %v", tc.nm, got, tc.want)
		}
	}
}

func TestConstantExtrapolator(t *testing.T) {
	ex := NewConstantExtrapolator(rampVSPD(t))
	if got := ex.Evaluate(100); got != 0.5 {
		t.Errorf("Evaluate(100) = %v, want 0.5", got)
	}
	if got := ex.Evaluate(900); got != 0 {
		t.Errorf("Evaluate(900) = %v, want 0", got)
	}
}
