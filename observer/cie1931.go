// Package observer provides standard colorimetric observers as
// spectral color matching functions.
package observer

import (
	"fmt"
	"math"

	"colorimetry/spectral"
)

// gauss is a piecewise Gaussian lobe with separate widths below and
// above the peak.
func gauss(nm, mu, s1, s2 float64) float64 {
	s := s1
	if nm >= mu {
		s = s2
	}
	t := (nm - mu) / s
	return math.Exp(-0.5 * t * t)
}

// XBar evaluates the 1931 2-degree x-bar matching function at nm,
// using the multi-lobe Gaussian fit of Wyman, Sloan and Shirley
// (JCGT 2013).
func XBar(nm float64) float64 {
	return 1.056*gauss(nm, 599.8, 37.9, 31.0) +
		0.362*gauss(nm, 442.0, 16.0, 26.7) -
		0.065*gauss(nm, 501.1, 20.4, 26.2)
}

// YBar evaluates the 1931 2-degree y-bar matching function at nm.
func YBar(nm float64) float64 {
	return 0.821*gauss(nm, 568.8, 46.9, 40.5) +
		0.286*gauss(nm, 530.9, 16.3, 31.1)
}

// ZBar evaluates the 1931 2-degree z-bar matching function at nm.
func ZBar(nm float64) float64 {
	return 1.217*gauss(nm, 437.0, 11.8, 36.0) +
		0.681*gauss(nm, 459.0, 26.0, 13.8)
}

// CIE1931 samples the CIE 1931 2-degree standard observer over shape,
// which must be uniform.
func CIE1931(shape spectral.Shape) (*spectral.CMF, error) {
	wl, err := shape.Wavelengths()
	if err != nil {
		return nil, fmt.Errorf("observer: %w", err)
	}

	xv := make([]float64, len(wl))
	yv := make([]float64, len(wl))
	zv := make([]float64, len(wl))
	for i, nm := range wl {
		xv[i] = XBar(nm)
		yv[i] = YBar(nm)
		zv[i] = ZBar(nm)
	}

	x, err := spectral.FromValues(shape, xv)
	if err != nil {
		return nil, err
	}
	y, err := spectral.FromValues(shape, yv)
	if err != nil {
		return nil, err
	}
	z, err := spectral.FromValues(shape, zv)
	if err != nil {
		return nil, err
	}
	return spectral.NewCMF(x, y, z)
}

// CIE1931Fast samples the observer in single precision for per-pixel
// work.
func CIE1931Fast(shape spectral.Shape) (*spectral.CMF32, error) {
	wl, err := shape.Wavelengths()
	if err != nil {
		return nil, fmt.Errorf("observer: %w", err)
	}

	xs := make([]spectral.Sample32, len(wl))
	ys := make([]spectral.Sample32, len(wl))
	zs := make([]spectral.Sample32, len(wl))
	for i, nm := range wl {
		xs[i] = spectral.Sample32{Nm: float32(nm), V: float32(XBar(nm))}
		ys[i] = spectral.Sample32{Nm: float32(nm), V: float32(YBar(nm))}
		zs[i] = spectral.Sample32{Nm: float32(nm), V: float32(ZBar(nm))}
	}

	x, err := spectral.NewSPD(xs)
	if err != nil {
		return nil, err
	}
	y, err := spectral.NewSPD(ys)
	if err != nil {
		return nil, err
	}
	z, err := spectral.NewSPD(zs)
	if err != nil {
		return nil, err
	}
	return &spectral.CMF32{XBar: x, YBar: y, ZBar: z}, nil
}
