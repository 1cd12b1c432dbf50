// Package chart renders the visible spectrum as an image, one column
// of Gaussian-band color per wavelength.
package chart

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"colorimetry/cie"
	"colorimetry/illuminant"
	"colorimetry/num"
	"colorimetry/observer"
	"colorimetry/rgb"
	"colorimetry/rgbspace"
	"colorimetry/spectral"

	"github.com/alecthomas/kong"
	"github.com/alitto/pond"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

const (
	chartStartNm = 380.0
	chartEndNm   = 720.0
)

type CLICmd struct {
	Out       string  `help:"Destination file for the rendered chart" default:"spectrum.png"`
	Width     int     `help:"Chart width in pixels" default:"1024"`
	Height    int     `help:"Chart height in pixels" default:"128"`
	Format    string  `help:"Output format" enum:"png,bmp,tiff" default:"png"`
	Workers   int     `help:"Number of parallel workers, 0 for one per CPU" default:"0"`
	Temp      float64 `help:"Planckian illuminant temperature in kelvin, 0 for equal energy" default:"0"`
	Bandwidth float64 `help:"Gaussian band width of each column's reflectance, in nm" default:"10"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	out, err := filepath.Abs(c.Out)
	if err != nil {
		return fmt.Errorf("invalid output path %q: %w", c.Out, err)
	}
	c.Out = out

	if c.Width < 2 || c.Height < 1 {
		return fmt.Errorf("invalid chart dimensions: %dx%d", c.Width, c.Height)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid worker count: %d", c.Workers)
	}
	if c.Temp < 0 {
		return fmt.Errorf("invalid temperature: %vK", c.Temp)
	}
	if c.Bandwidth <= 0 {
		return fmt.Errorf("invalid bandwidth: %vnm", c.Bandwidth)
	}
	return nil
}

func (c *CLICmd) Run() error {
	shape := spectral.ASTME308Shape()

	cmf, err := observer.CIE1931(shape)
	if err != nil {
		return fmt.Errorf("sampling observer: %w", err)
	}

	var ill *spectral.VSPD
	if c.Temp == 0 {
		ill, err = illuminant.E(shape)
	} else {
		ill, err = illuminant.Planckian(c.Temp, shape)
	}
	if err != nil {
		return fmt.Errorf("sampling illuminant: %w", err)
	}

	colors, err := c.renderColumns(ill, cmf)
	if err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for x, col := range colors {
		q := rgb.To8(col)
		for y := 0; y < c.Height; y++ {
			i := img.PixOffset(x, y)
			img.Pix[i+0] = q.R
			img.Pix[i+1] = q.G
			img.Pix[i+2] = q.B
			img.Pix[i+3] = 0xFF
		}
	}

	return save(img, c.Format, c.Out)
}

// renderColumns integrates one Gaussian band reflectance per column and
// maps the results into display sRGB, normalized so the brightest
// column just reaches full scale.
func (c *CLICmd) renderColumns(ill *spectral.VSPD, cmf *spectral.CMF) ([]rgb.RGB64, error) {
	srgb := rgbspace.SRGB
	toRGB := rgbspace.XYZToRGBMatrix(srgb.White, srgb)

	xyzs := make([]cie.XYZ64, c.Width)

	workers := c.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	pool := pond.New(workers, c.Width)
	var errCount atomic.Uint64
	for x := 0; x < c.Width; x++ {
		pool.Submit(func(col int) func() {
			return func() {
				center := chartStartNm + (chartEndNm-chartStartNm)*float64(col)/float64(c.Width-1)
				logger := slog.Default().With("column", col, "center", center)

				band, err := gaussianBand(ill.Shape(), center, c.Bandwidth)
				if err != nil {
					errCount.Add(1)
					logger.Error("could not build band reflectance", "error", err)
					return
				}
				xyz, err := band.ToXYZ(ill, cmf)
				if err != nil {
					errCount.Add(1)
					logger.Error("could not integrate band", "error", err)
					return
				}
				xyzs[col] = xyz
			}
		}(x))
	}
	pool.StopAndWait()

	if n := errCount.Load(); n > 0 {
		return nil, fmt.Errorf("error rendering %d columns", n)
	}

	maxY := 0.0
	for _, t := range xyzs {
		if t.Y > maxY {
			maxY = t.Y
		}
	}
	if maxY == 0 {
		return nil, fmt.Errorf("chart has no luminance, illuminant and bands do not overlap")
	}

	out := make([]rgb.RGB64, c.Width)
	for i, t := range xyzs {
		lin := rgbspace.XYZToRGB(toRGB, t.Scale(1/maxY))
		out[i] = srgb.Encode(lin.Clamp(0, 1))
	}
	return out, nil
}

// gaussianBand builds a reflectance with a Gaussian peak of 1 at center
// and the given full width at half maximum.
func gaussianBand(shape spectral.Shape, center, fwhm float64) (*spectral.VSPD, error) {
	wl, err := shape.Wavelengths()
	if err != nil {
		return nil, err
	}
	sigma := fwhm / 2.3548200450309493
	v := make([]float64, len(wl))
	for i, nm := range wl {
		t := (nm - center) / sigma
		v[i] = num.Exp(-0.5 * t * t)
	}
	return spectral.FromValues(shape, v)
}

func save(img image.Image, format, dest string) (err error) {
	outFile, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest))
	if err != nil {
		return fmt.Errorf("could not create temporary destination %q: %w", dest, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", dest, defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", dest, defErr)
		}

		if err != nil || !canRename {
			os.Remove(outFile.Name())
			return
		}
		if defErr := os.Rename(outFile.Name(), dest); defErr != nil {
			os.Remove(outFile.Name())
			err = fmt.Errorf("could not rename destination file %q: %w", dest, defErr)
		}
	}()

	switch format {
	case "png":
		if err = png.Encode(outFile, img); err != nil {
			return fmt.Errorf("could not encode PNG destination %q: %w", dest, err)
		}
	case "bmp":
		if err = bmp.Encode(outFile, img); err != nil {
			return fmt.Errorf("could not encode BMP destination %q: %w", dest, err)
		}
	case "tiff":
		if err = tiff.Encode(outFile, img, nil); err != nil {
			return fmt.Errorf("could not encode TIFF destination %q: %w", dest, err)
		}
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}

	canRename = true
	return err
}
