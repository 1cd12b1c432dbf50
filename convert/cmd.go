// Package convert prints a display color in colorimetric and
// device-space terms.
package convert

import (
	"fmt"

	"colorimetry/cie"
	"colorimetry/rgb"
	"colorimetry/rgbspace"

	"github.com/alecthomas/kong"
	"github.com/lucasb-eyer/go-colorful"
)

type CLICmd struct {
	Color string `arg:"" help:"Source color as an sRGB hex triplet, e.g. #6a5acd"`
	To    string `help:"Destination color space" enum:"srgb,bt709,bt2020,dcip3,adobe" default:"srgb"`

	Parsed colorful.Color `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	parsed, err := colorful.Hex(c.Color)
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", c.Color, err)
	}
	c.Parsed = parsed
	return nil
}

func (c *CLICmd) Run() error {
	dst, err := space(c.To)
	if err != nil {
		return err
	}

	srgb := rgbspace.SRGB
	lin := srgb.Decode(rgb.RGB64{R: c.Parsed.R, G: c.Parsed.G, B: c.Parsed.B})
	xyz := rgbspace.RGBToXYZ(srgb.RGBToXYZ, lin)

	white := cie.FromChromaticity(srgb.White)
	lab := cie.XYZToLab(xyz.Scale(100), white)

	m := rgbspace.RGBToRGBMatrix(srgb, dst)
	r, g, b := m.Apply(lin.R, lin.G, lin.B)
	out := dst.Encode(rgb.RGB64{R: r, G: g, B: b}.Clamp(0, 1))

	fmt.Printf("XYZ: %v\n", xyz)
	fmt.Printf("Lab: %v\n", lab)
	fmt.Printf("%s: %v %v\n", c.To, out, rgb.To8(out))
	return nil
}

func space(name string) (*rgbspace.Space[float64], error) {
	switch name {
	case "srgb":
		return rgbspace.SRGB, nil
	case "bt709":
		return rgbspace.BT709, nil
	case "bt2020":
		return rgbspace.BT2020, nil
	case "dcip3":
		return rgbspace.DCIP3, nil
	case "adobe":
		return rgbspace.AdobeRGB1998, nil
	default:
		return nil, fmt.Errorf("unsupported color space: %s", name)
	}
}
