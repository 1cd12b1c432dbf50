package cie

import "colorimetry/num"

// Chromatic adaptation transforms. XYZ colors are specified relative to
// a reference illuminant; the returned matrix adapts colors from one
// illuminant's white point to another's.
// See http://www.brucelindbloom.com for derivations.

// Bradford computes the Bradford chromatic adaptation matrix from
// srcWhite to dstWhite.
func Bradford[T num.Float](srcWhite, dstWhite XYZ[T]) num.Matrix33[T] {
	ma := num.NewMatrix33([9]T{
		0.8951000, 0.2664000, -0.1614000,
		-0.7502000, 1.7135000, 0.0367000,
		0.0389000, -0.0685000, 1.0296000,
	})
	return adaptation(ma, srcWhite, dstWhite)
}

// VonKries computes the Von Kries chromatic adaptation matrix from
// srcWhite to dstWhite.
func VonKries[T num.Float](srcWhite, dstWhite XYZ[T]) num.Matrix33[T] {
	ma := num.NewMatrix33([9]T{
		0.4002400, 0.7076000, -0.0808100,
		-0.2263000, 1.1653200, 0.0457000,
		0.0000000, 0.0000000, 0.9182200,
	})
	return adaptation(ma, srcWhite, dstWhite)
}

// CAT02 computes the CIECAM02 chromatic adaptation matrix from srcWhite
// to dstWhite.
func CAT02[T num.Float](srcWhite, dstWhite XYZ[T]) num.Matrix33[T] {
	ma := num.NewMatrix33([9]T{
		0.7328, 0.4296, -0.1624,
		-0.7036, 1.6975, 0.0061,
		0.0030, 0.0136, 0.9834,
	})
	return adaptation(ma, srcWhite, dstWhite)
}

func adaptation[T num.Float](ma num.Matrix33[T], srcWhite, dstWhite XYZ[T]) num.Matrix33[T] {
	if srcWhite == dstWhite {
		return num.Identity[T]()
	}

	// the cone response matrices are fixed and invertible
	maInv, err := ma.Inverse()
	if err != nil {
		panic(err)
	}

	src := Transform(ma, srcWhite)
	dst := Transform(ma, dstWhite)

	mwp := num.NewMatrix33([9]T{
		dst.X / src.X, 0, 0,
		0, dst.Y / src.Y, 0,
		0, 0, dst.Z / src.Z,
	})

	return maInv.Mul(mwp).Mul(ma)
}
