package rgbspace

import (
	"colorimetry/num"
	"colorimetry/rgb"
)

// Opto-electrical (encode) and electro-optical (decode) transfer
// functions for the supported color spaces, per channel. Channel values
// are scene-linear on the decode side and display-referred on the
// encode side.

func EncodeSRGB[T num.Float](x T) T {
	if x <= 0.0031308 {
		return x * 12.92
	}
	return (1+0.055)*num.Pow(x, 1/2.4) - 0.055
}

func DecodeSRGB[T num.Float](f T) T {
	if f <= 0.040449936 {
		return f / 12.92
	}
	return num.Pow((f+0.055)/1.055, 2.4)
}

func EncodeBT709[T num.Float](x T) T {
	if x <= 0.018 {
		return x * 4.5
	}
	return 1.099*num.Pow(x, 0.45) - 0.099
}

func DecodeBT709[T num.Float](f T) T {
	if f <= 0.018*4.5 {
		return f / 4.5
	}
	return num.Pow((f+0.099)/1.099, 1/0.45)
}

func EncodeBT2020[T num.Float](x T) T {
	const alpha = 1.099
	const beta = 0.018
	if x < beta {
		return x * 4.5
	}
	return alpha*num.Pow(x, 0.45) - (alpha - 1)
}

func DecodeBT2020[T num.Float](f T) T {
	const alpha = 1.099
	const beta = 0.018
	if f < beta*4.5 {
		return f / 4.5
	}
	return num.Pow((f+(alpha-1))/alpha, 1/0.45)
}

func EncodeLinear[T num.Float](x T) T { return x }
func DecodeLinear[T num.Float](f T) T { return f }

// ALEXA LogC v3 parameters for EI 800.
func EncodeAlexaLogCV3[T num.Float](x T) T {
	const (
		cut = 0.010591
		a   = 5.555556
		b   = 0.052272
		c   = 0.247190
		d   = 0.385537
		e   = 5.367655
		f   = 0.092809
	)
	if x > cut {
		return c*num.Log10(a*x+b) + d
	}
	return e*x + f
}

func DecodeAlexaLogCV3[T num.Float](t T) T {
	const (
		cut = 0.010591
		a   = 5.555556
		b   = 0.052272
		c   = 0.247190
		d   = 0.385537
		e   = 5.367655
		f   = 0.092809
	)
	if t > e*cut+f {
		return (num.Pow(10, (t-d)/c) - b) / a
	}
	return (t - f) / e
}

// PerChannel lifts a scalar transfer function to an RGB one.
func PerChannel[T num.Float](f func(T) T) TransferFunction[T] {
	return func(c rgb.RGB[T]) rgb.RGB[T] {
		return rgb.RGB[T]{R: f(c.R), G: f(c.G), B: f(c.B)}
	}
}
