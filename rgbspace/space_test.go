package rgbspace

import (
	"math"
	"testing"

	"colorimetry/cie"
	"colorimetry/num"
	"colorimetry/rgb"

	"github.com/lucasb-eyer/go-colorful"
)

func TestSRGBPublishedMatrices(t *testing.T) {
	// The published sRGB matrices are rounded to four digits, so their
	// product only approximates the identity.
	got := SRGB.XYZToRGB.Mul(SRGB.RGBToXYZ)
	want := num.Identity[float64]()
	for i := range got.M {
		if math.Abs(got.M[i]-want.M[i]) > 1e-3 {
			t.Errorf("XYZToRGB * RGBToXYZ at %d: got %v, want %v", i, got.M[i], want.M[i])
		}
	}
}

func TestDerivedMatrixMatchesPublished(t *testing.T) {
	// BT.709 shares the sRGB primaries and white point; its derived
	// matrix must match the published sRGB one up to the latter's
	// rounding.
	for i := range BT709.RGBToXYZ.M {
		if math.Abs(BT709.RGBToXYZ.M[i]-SRGB.RGBToXYZ.M[i]) > 1e-3 {
			t.Errorf("derived RGBToXYZ at %d: got %v, published %v",
				i, BT709.RGBToXYZ.M[i], SRGB.RGBToXYZ.M[i])
		}
	}
}

func TestWhiteMapsToUnitRGB(t *testing.T) {
	spaces := map[string]*Space[float64]{
		"bt709":  BT709,
		"bt2020": BT2020,
		"dcip3":  DCIP3,
		"adobe":  AdobeRGB1998,
	}
	for name, s := range spaces {
		white := cie.FromChromaticity(s.White).Scale(0.01)
		c := XYZToRGB(s.XYZToRGB, white)
		if math.Abs(c.R-1) > 1e-9 || math.Abs(c.G-1) > 1e-9 || math.Abs(c.B-1) > 1e-9 {
			t.Errorf("%s: white maps to %v, want (1, 1, 1)", name, c)
		}
	}
}

func TestEncodeDecodeInverse(t *testing.T) {
	spaces := map[string]*Space[float64]{
		"srgb":   SRGB,
		"bt709":  BT709,
		"bt2020": BT2020,
		"dcip3":  DCIP3,
		"adobe":  AdobeRGB1998,
	}
	values := []float64{0, 0.001, 0.0031308, 0.018, 0.1, 0.18, 0.5, 0.9, 1}

	for name, s := range spaces {
		for _, v := range values {
			in := rgb.FromScalar(v)
			out := s.Decode(s.Encode(in))
			if math.Abs(out.R-v) > 1e-9 {
				t.Errorf("%s: decode(encode(%v)) = %v", name, v, out.R)
			}
		}
	}
}

func TestAlexaLogCV3RoundTrip(t *testing.T) {
	for _, v := range []float64{0, 0.005, 0.0105, 0.18, 1, 8} {
		f := EncodeAlexaLogCV3(v)
		if got := DecodeAlexaLogCV3(f); math.Abs(got-v) > 1e-9 {
			t.Errorf("LogC round trip of %v: got %v via %v", v, got, f)
		}
	}

	// 18% gray lands at the documented code value for EI 800.
	if got := EncodeAlexaLogCV3(0.18); math.Abs(got-0.391007) > 1e-4 {
		t.Errorf("LogC(0.18) = %v, want 0.391007", got)
	}
}

func TestRGBToRGBMatrixSameSpace(t *testing.T) {
	m := RGBToRGBMatrix(BT2020, BT2020)
	want := num.Identity[float64]()
	for i := range m.M {
		if math.Abs(m.M[i]-want.M[i]) > 1e-12 {
			t.Errorf("same-space matrix at %d: got %v, want %v", i, m.M[i], want.M[i])
		}
	}
}

func TestRGBToRGBMatrixRoundTrip(t *testing.T) {
	fwd := RGBToRGBMatrix(SRGB, BT2020)
	back := RGBToRGBMatrix(BT2020, SRGB)

	in := rgb.RGB64{R: 0.2, G: 0.5, B: 0.8}
	r, g, b := fwd.Apply(in.R, in.G, in.B)
	r, g, b = back.Apply(r, g, b)
	// Limited by the rounding of the published sRGB matrices.
	if math.Abs(r-in.R) > 1e-3 || math.Abs(g-in.G) > 1e-3 || math.Abs(b-in.B) > 1e-3 {
		t.Errorf("round trip of %v = (%v, %v, %v)", in, r, g, b)
	}
}

func TestSRGBDecodeAgainstColorful(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#6a5acd", "#123456", "#f0e080"} {
		c, err := colorful.Hex(hex)
		if err != nil {
			t.Fatalf("parsing %q: %v", hex, err)
		}

		wantR, wantG, wantB := c.LinearRgb()
		got := SRGB.Decode(rgb.RGB64{R: c.R, G: c.G, B: c.B})
		if math.Abs(got.R-wantR) > 1e-6 ||
			math.Abs(got.G-wantG) > 1e-6 ||
			math.Abs(got.B-wantB) > 1e-6 {
			t.Errorf("%s: decode = %v, colorful = (%v, %v, %v)", hex, got, wantR, wantG, wantB)
		}
	}
}
