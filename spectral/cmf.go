package spectral

import "fmt"

// CMF holds the three color matching functions of a standard observer,
// sampled over a common shape.
type CMF struct {
	XBar *VSPD
	YBar *VSPD
	ZBar *VSPD
}

// NewCMF builds a CMF from the three matching functions, which must
// share a shape.
func NewCMF(xBar, yBar, zBar *VSPD) (*CMF, error) {
	if !xBar.Shape().Equal(yBar.Shape()) || !xBar.Shape().Equal(zBar.Shape()) {
		return nil, fmt.Errorf("spectral: color matching functions have mismatched shapes %v, %v, %v",
			xBar.Shape(), yBar.Shape(), zBar.Shape())
	}
	return &CMF{XBar: xBar, YBar: yBar, ZBar: zBar}, nil
}

// Shape returns the common shape of the three matching functions.
func (c *CMF) Shape() Shape {
	return c.XBar.Shape()
}

// Trim discards samples of all three matching functions outside the
// shape's wavelength range.
func (c *CMF) Trim(shape Shape) (*CMF, error) {
	x, err := c.XBar.Trim(shape)
	if err != nil {
		return nil, fmt.Errorf("trimming x-bar: %w", err)
	}
	y, err := c.YBar.Trim(shape)
	if err != nil {
		return nil, fmt.Errorf("trimming y-bar: %w", err)
	}
	z, err := c.ZBar.Trim(shape)
	if err != nil {
		return nil, fmt.Errorf("trimming z-bar: %w", err)
	}
	return &CMF{XBar: x, YBar: y, ZBar: z}, nil
}

// Align resamples all three matching functions onto shape.
func (c *CMF) Align(shape Shape) (*CMF, error) {
	x, err := c.XBar.Align(shape)
	if err != nil {
		return nil, fmt.Errorf("aligning x-bar: %w", err)
	}
	y, err := c.YBar.Align(shape)
	if err != nil {
		return nil, fmt.Errorf("aligning y-bar: %w", err)
	}
	z, err := c.ZBar.Align(shape)
	if err != nil {
		return nil, fmt.Errorf("aligning z-bar: %w", err)
	}
	return &CMF{XBar: x, YBar: y, ZBar: z}, nil
}
