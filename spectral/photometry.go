package spectral

import "fmt"

// MaxLuminousEfficacy is the luminous efficacy of 555nm monochromatic
// radiation in lm/W, the constant that ties radiometric watts to
// photometric lumens.
const MaxLuminousEfficacy = 683.0

// Luminance computes the photometric luminance of a spectral radiance
// distribution in cd/m^2, integrating against the observer's luminous
// efficiency function over the distribution's own domain.
func Luminance(spd *VSPD, cmf *CMF) (float64, error) {
	step, ok := spd.Interval().Step()
	if !ok {
		aligned, err := spd.Align(NewShape(spd.Start(), spd.End(), 1))
		if err != nil {
			return 0, fmt.Errorf("resampling distribution: %w", err)
		}
		spd = aligned
		step = 1
	}

	yBar, err := cmf.YBar.Align(spd.Shape())
	if err != nil {
		return 0, fmt.Errorf("aligning luminous efficiency: %w", err)
	}
	if yBar.Len() != spd.Len() {
		return 0, fmt.Errorf("spectral: luminous efficiency does not align onto %v", spd.Shape())
	}

	var sum float64
	for i, smp := range spd.samples {
		sum += smp.V * yBar.samples[i].V * step
	}
	return MaxLuminousEfficacy * sum, nil
}
