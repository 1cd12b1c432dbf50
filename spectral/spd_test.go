package spectral

import (
	"math"
	"testing"
)

func TestNewSPDErrors(t *testing.T) {
	if _, err := NewSPD([]Sample32{{Nm: 380, V: 1}}); err == nil {
		t.Error("NewSPD() with one sample: expected error")
	}
	if _, err := NewSPD([]Sample32{{Nm: 400, V: 1}, {Nm: 380, V: 2}}); err == nil {
		t.Error("NewSPD() with decreasing wavelengths: expected error")
	}
}

func TestSPDUniformDetection(t *testing.T) {
	uniform, err := NewSPD([]Sample32{{380, 1}, {400, 2}, {420, 3}})
	if err != nil {
		t.Fatalf("NewSPD() failed: %v", err)
	}
	if !uniform.IsUniform() {
		t.Error("uniform samples not detected as uniform")
	}

	varying, err := NewSPD([]Sample32{{380, 1}, {400, 2}, {410, 3}})
	if err != nil {
		t.Fatalf("NewSPD() failed: %v", err)
	}
	if varying.IsUniform() {
		t.Error("irregular samples detected as uniform")
	}
}

func TestSPDValueAt(t *testing.T) {
	for name, samples := range map[string][]Sample32{
		"uniform": {{380, 0}, {400, 1}, {420, 0.5}},
		"varying": {{380, 0}, {400, 1}, {430, 0.25}},
	} {
		s, err := NewSPD(samples)
		if err != nil {
			t.Fatalf("%s: NewSPD() failed: %v", name, err)
		}

		if got := s.ValueAt(390); math.Abs(float64(got)-0.5) > 1e-6 {
			t.Errorf("%s: ValueAt(390) = %v, want 0.5", name, got)
		}
		if got := s.ValueAt(400); got != 1 {
			t.Errorf("%s: ValueAt(400) = %v, want 1", name, got)
		}
		if got := s.ValueAt(100); got != 0 {
			t.Errorf("%s: ValueAt(100) = %v, want 0", name, got)
		}
		if got := s.ValueAtExtrapolate(900); got != samples[2].V {
			t.Errorf("%s: ValueAtExtrapolate(900) = %v, want %v", name, got, samples[2].V)
		}
	}
}

func TestSPDToXYZWithIlluminant(t *testing.T) {
	shape := ASTME308Shape()
	wl, err := shape.Wavelengths()
	if err != nil {
		t.Fatalf("Wavelengths() failed: %v", err)
	}

	lobe := func(mu, sigma float64) *SPD {
		samples := make([]Sample32, len(wl))
		for i, nm := range wl {
			d := (nm - mu) / sigma
			samples[i] = Sample32{Nm: float32(nm), V: float32(math.Exp(-0.5 * d * d))}
		}
		s, err := NewSPD(samples)
		if err != nil {
			t.Fatalf("NewSPD() failed: %v", err)
		}
		return s
	}
	flat := func(v float32) *SPD {
		samples := make([]Sample32, len(wl))
		for i, nm := range wl {
			samples[i] = Sample32{Nm: float32(nm), V: v}
		}
		s, err := NewSPD(samples)
		if err != nil {
			t.Fatalf("NewSPD() failed: %v", err)
		}
		return s
	}

	cmf := &CMF32{XBar: lobe(595, 40), YBar: lobe(557, 45), ZBar: lobe(445, 25)}

	got := flat(1).ToXYZWithIlluminant(flat(100), cmf)
	if math.Abs(float64(got.Y)-100) > 0.01 {
		t.Errorf("diffuser Y = %v, want 100", got.Y)
	}

	half := flat(0.5).ToXYZWithIlluminant(flat(100), cmf)
	if math.Abs(float64(half.Y)-50) > 0.01 {
		t.Errorf("half diffuser Y = %v, want 50", half.Y)
	}
}
