package spectral

import (
	"errors"
	"fmt"
)

// Interval describes the spacing between consecutive samples of a
// spectral distribution: either a uniform step in nanometres, or
// varying. It is a proper sum type rather than a sentinel float so that
// an irregular spacing can never be mistaken for a step size.
type Interval struct {
	step    float64
	uniform bool
}

// Uniform returns an interval with the given constant step.
func Uniform(step float64) Interval {
	return Interval{step: step, uniform: true}
}

// Varying returns the interval marker for irregularly spaced samples.
func Varying() Interval {
	return Interval{}
}

func (iv Interval) IsUniform() bool { return iv.uniform }

// Step returns the uniform step size. The second return value is false
// for a varying interval.
func (iv Interval) Step() (float64, bool) {
	return iv.step, iv.uniform
}

func (iv Interval) Equal(other Interval) bool {
	if iv.uniform != other.uniform {
		return false
	}
	return !iv.uniform || iv.step == other.step
}

func (iv Interval) String() string {
	if iv.uniform {
		return fmt.Sprintf("%v", iv.step)
	}
	return "Varying"
}

// Shape describes the domain of a spectral function: the wavelength
// range it covers and the spacing of its samples.
type Shape struct {
	Start    float64
	End      float64
	Interval Interval
}

// NewShape returns a uniform shape covering [start, end] nm with the
// given step.
func NewShape(start, end, step float64) Shape {
	return Shape{Start: start, End: end, Interval: Uniform(step)}
}

// ASTME308Shape is the canonical integration domain of ASTM E308:
// 360-780nm at 1nm.
func ASTME308Shape() Shape {
	return NewShape(360, 780, 1)
}

func (s Shape) Equal(other Shape) bool {
	return s.Start == other.Start && s.End == other.End && s.Interval.Equal(other.Interval)
}

// Count returns the number of samples the shape implies. It fails for a
// varying interval, which implies no particular sample positions.
func (s Shape) Count() (int, error) {
	step, ok := s.Interval.Step()
	if !ok {
		return 0, errors.New("spectral: varying interval implies no sample count")
	}
	return int((s.End-s.Start)/step) + 1, nil
}

// Wavelengths enumerates the sample wavelengths the shape implies.
func (s Shape) Wavelengths() ([]float64, error) {
	n, err := s.Count()
	if err != nil {
		return nil, err
	}
	step, _ := s.Interval.Step()
	wl := make([]float64, n)
	for i := range wl {
		wl[i] = s.Start + float64(i)*step
	}
	return wl, nil
}

func (s Shape) String() string {
	return fmt.Sprintf("(%v, %v, %v)", s.Start, s.End, s.Interval)
}
