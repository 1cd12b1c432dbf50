package num

import (
	"errors"
	"math"
	"testing"
)

func TestMatrix33Inverse(t *testing.T) {
	m := NewMatrix33([9]float64{
		2, 1, 0,
		0, 3, 1,
		1, 0, 2,
	})

	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Inverse() failed: %v", err)
	}

	got := m.Mul(inv)
	want := Identity[float64]()
	for i := range got.M {
		if math.Abs(got.M[i]-want.M[i]) > 1e-14 {
			t.Errorf("m * m^-1 at %d: got %v, want %v", i, got.M[i], want.M[i])
		}
	}
}

func TestMatrix33InverseSingular(t *testing.T) {
	m := NewMatrix33([9]float64{
		1, 2, 3,
		2, 4, 6,
		0, 1, 1,
	})

	if _, err := m.Inverse(); !errors.Is(err, ErrSingular) {
		t.Fatalf("Inverse() of singular matrix: got err %v, want %v", err, ErrSingular)
	}
}

func TestMatrix33Apply(t *testing.T) {
	m := NewMatrix33([9]float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})

	x, y, z := m.Apply(1, 1, 1)
	if x != 6 || y != 15 || z != 24 {
		t.Errorf("Apply(1,1,1) = (%v, %v, %v), want (6, 15, 24)", x, y, z)
	}
}

func TestMatrix33MulIdentity(t *testing.T) {
	m := NewMatrix33([9]float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 10,
	})

	if got := m.Mul(Identity[float64]()); got != m {
		t.Errorf("m * I = %v, want %v", got, m)
	}
	if got := Identity[float64]().Mul(m); got != m {
		t.Errorf("I * m = %v, want %v", got, m)
	}
}

func TestMatrix33Transposed(t *testing.T) {
	m := NewMatrix33([9]float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})

	if got := m.Transposed().Transposed(); got != m {
		t.Errorf("double transpose = %v, want %v", got, m)
	}
	if got := m.Transposed().At(0, 2); got != 7 {
		t.Errorf("transposed At(0,2) = %v, want 7", got)
	}
}
