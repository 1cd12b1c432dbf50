package num

import (
	"math"
	"testing"
)

func TestLerp(t *testing.T) {
	if got := Lerp(2.0, 6.0, 0.25); got != 3 {
		t.Errorf("Lerp(2, 6, 0.25) = %v, want 3", got)
	}
	if got := Lerp(2.0, 6.0, 0.0); got != 2 {
		t.Errorf("Lerp(2, 6, 0) = %v, want 2", got)
	}
	if got := Lerp(2.0, 6.0, 1.0); got != 6 {
		t.Errorf("Lerp(2, 6, 1) = %v, want 6", got)
	}
	if got := Lerp(float32(1), float32(3), float32(0.5)); got != 2 {
		t.Errorf("Lerp(1, 3, 0.5) = %v, want 2", got)
	}
}

func TestMod(t *testing.T) {
	// Hue angles from Atan2 land in (-180, 180]; adding a full turn
	// before the modulo wraps them onto [0, 360).
	for _, tc := range []struct{ h, want float64 }{
		{-90, 270},
		{-180, 180},
		{0, 0},
		{45, 45},
		{180, 180},
	} {
		if got := Mod(tc.h+360, 360); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Mod(%v+360, 360) = %v, want %v", tc.h, got, tc.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-0.5, 0.0, 1.0); got != 0 {
		t.Errorf("Clamp(-0.5, 0, 1) = %v, want 0", got)
	}
	if got := Clamp(1.5, 0.0, 1.0); got != 1 {
		t.Errorf("Clamp(1.5, 0, 1) = %v, want 1", got)
	}
	if got := Clamp(0.25, 0.0, 1.0); got != 0.25 {
		t.Errorf("Clamp(0.25, 0, 1) = %v, want 0.25", got)
	}
}

func TestPowi(t *testing.T) {
	if got := Powi(3.0, 4); got != 81 {
		t.Errorf("Powi(3, 4) = %v, want 81", got)
	}
	if got := Powi(2.0, 0); got != 1 {
		t.Errorf("Powi(2, 0) = %v, want 1", got)
	}
}
