package cie

import "colorimetry/num"

// Lab is a CIE L*a*b* color. L* is in [0, 100] for in-gamut colors.
type Lab[T num.Float] struct {
	L, A, B T
}

type Lab32 = Lab[float32]
type Lab64 = Lab[float64]

func NewLab[T num.Float](l, a, b T) Lab[T] {
	return Lab[T]{L: l, A: a, B: b}
}

// CIE constants, see http://www.brucelindbloom.com
const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// XYZToLab converts a tristimulus value to L*a*b* relative to the given
// reference white (Y = 100 scale).
func XYZToLab[T num.Float](c, refWhite XYZ[T]) Lab[T] {
	r := c.Div(refWhite)

	fx := labF(r.X)
	fy := labF(r.Y)
	fz := labF(r.Z)

	return Lab[T]{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// LabToXYZ is the exact inverse of XYZToLab for the same reference
// white.
func LabToXYZ[T num.Float](c Lab[T], refWhite XYZ[T]) XYZ[T] {
	fy := (c.L + 16) / 116
	fx := fy + c.A/500
	fz := fy - c.B/200

	var yr T
	if c.L > labKappa*labEpsilon {
		yr = num.Powi(fy, 3)
	} else {
		yr = c.L / labKappa
	}

	return XYZ[T]{X: labFInv(fx), Y: yr, Z: labFInv(fz)}.Mul(refWhite)
}

func labF[T num.Float](t T) T {
	if t > labEpsilon {
		return num.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func labFInv[T num.Float](f T) T {
	if c := num.Powi(f, 3); c > labEpsilon {
		return c
	}
	return (116*f - 16) / labKappa
}

// DeltaE1976 computes the CIE 1976 color difference, i.e. the Euclidean
// distance in L*a*b*.
func DeltaE1976[T num.Float](c1, c2 Lab[T]) T {
	return num.Sqrt(num.Sqr(c1.L-c2.L) + num.Sqr(c1.A-c2.A) + num.Sqr(c1.B-c2.B))
}

// DeltaE2000 computes the CIEDE2000 color difference.
//
// Implementation based on "The CIEDE2000 Color-Difference Formula:
// Implementation Notes, Supplementary Test Data, and Mathematical
// Observations" by Sharma et al.
func DeltaE2000[T num.Float](c1, c2 Lab[T]) T {
	const pow7of25 = 6103515625 // 25^7

	// Step 1: C'i, h'i
	c1ab := num.Hypot(c1.A, c1.B)
	c2ab := num.Hypot(c2.A, c2.B)
	cBarAB := (c1ab + c2ab) / 2
	g := T(0.5) * (1 - num.Sqrt(num.Powi(cBarAB, 7)/(num.Powi(cBarAB, 7)+pow7of25)))

	ap1 := (1 + g) * c1.A
	ap2 := (1 + g) * c2.A
	cp1 := num.Hypot(ap1, c1.B)
	cp2 := num.Hypot(ap2, c2.B)

	hp1 := num.Mod(num.Degrees(num.Atan2(c1.B, ap1))+360, 360)
	hp2 := num.Mod(num.Degrees(num.Atan2(c2.B, ap2))+360, 360)

	// Step 2: ΔL', ΔC', ΔH'
	dL := c2.L - c1.L
	dC := cp2 - cp1
	dh := hp2 - hp1
	switch {
	case cp1*cp2 == 0:
		dh = 0
	case num.Abs(dh) <= 180:
	case dh > 180:
		dh -= 360
	default:
		dh += 360
	}
	dH := 2 * num.Sqrt(cp1*cp2) * num.Sin(num.Radians(dh/2))

	// Step 3: ΔE00
	lBar := (c1.L + c2.L) / 2
	cBar := (cp1 + cp2) / 2

	var hBar T
	switch {
	case cp1*cp2 == 0:
		hBar = hp1 + hp2
	case num.Abs(hp1-hp2) <= 180:
		hBar = (hp1 + hp2) / 2
	case hp1+hp2 < 360:
		hBar = (hp1 + hp2 + 360) / 2
	default:
		hBar = (hp1 + hp2 - 360) / 2
	}

	t := 1 - T(0.17)*num.Cos(num.Radians(hBar-30)) +
		T(0.24)*num.Cos(num.Radians(2*hBar)) +
		T(0.32)*num.Cos(num.Radians(3*hBar+6)) -
		T(0.20)*num.Cos(num.Radians(4*hBar-63))

	dTheta := 30 * num.Exp(-num.Sqr((hBar-275)/25))
	rc := 2 * num.Sqrt(num.Powi(cBar, 7)/(num.Powi(cBar, 7)+pow7of25))

	sl := 1 + (T(0.015)*num.Sqr(lBar-50))/num.Sqrt(20+num.Sqr(lBar-50))
	sc := 1 + T(0.045)*cBar
	sh := 1 + T(0.015)*cBar*t
	rt := -num.Sin(num.Radians(2*dTheta)) * rc

	return num.Sqrt(
		num.Sqr(dL/sl) + num.Sqr(dC/sc) + num.Sqr(dH/sh) +
			rt*(dC/sc)*(dH/sh))
}
