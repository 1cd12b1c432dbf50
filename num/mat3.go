package num

import "errors"

// ErrSingular is returned when a matrix cannot be inverted.
var ErrSingular = errors.New("num: singular matrix")

// Matrix33 is a 3x3 matrix stored in row-major order.
type Matrix33[T Float] struct {
	M [9]T
}

type M3f32 = Matrix33[float32]
type M3f64 = Matrix33[float64]

func NewMatrix33[T Float](values [9]T) Matrix33[T] {
	return Matrix33[T]{M: values}
}

func Identity[T Float]() Matrix33[T] {
	return Matrix33[T]{M: [9]T{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}}
}

// At returns the element at row r, column c.
func (m Matrix33[T]) At(r, c int) T { return m.M[r*3+c] }

func (m Matrix33[T]) Transposed() Matrix33[T] {
	return Matrix33[T]{M: [9]T{
		m.M[0], m.M[3], m.M[6],
		m.M[1], m.M[4], m.M[7],
		m.M[2], m.M[5], m.M[8],
	}}
}

func (m Matrix33[T]) Determinant() T {
	return m.M[0]*(m.M[4]*m.M[8]-m.M[5]*m.M[7]) -
		m.M[1]*(m.M[3]*m.M[8]-m.M[5]*m.M[6]) +
		m.M[2]*(m.M[3]*m.M[7]-m.M[4]*m.M[6])
}

// Inverse computes the inverse via the matrix of cofactors. It returns
// ErrSingular when the determinant vanishes.
func (m Matrix33[T]) Inverse() (Matrix33[T], error) {
	cof := Matrix33[T]{M: [9]T{
		m.M[4]*m.M[8] - m.M[5]*m.M[7],
		m.M[5]*m.M[6] - m.M[3]*m.M[8],
		m.M[3]*m.M[7] - m.M[4]*m.M[6],
		m.M[2]*m.M[7] - m.M[1]*m.M[8],
		m.M[0]*m.M[8] - m.M[2]*m.M[6],
		m.M[1]*m.M[6] - m.M[0]*m.M[7],
		m.M[1]*m.M[5] - m.M[2]*m.M[4],
		m.M[2]*m.M[3] - m.M[0]*m.M[5],
		m.M[0]*m.M[4] - m.M[1]*m.M[3],
	}}

	det := m.M[0]*cof.M[0] + m.M[1]*cof.M[1] + m.M[2]*cof.M[2]
	if Abs(det) == 0 {
		return Matrix33[T]{}, ErrSingular
	}

	// inverse = adjugate / determinant, adjugate = cofactors transposed
	inv := cof.Transposed()
	for i := range inv.M {
		inv.M[i] /= det
	}
	return inv, nil
}

// Mul computes the matrix product m * rhs.
func (m Matrix33[T]) Mul(rhs Matrix33[T]) Matrix33[T] {
	var out Matrix33[T]
	for r := range 3 {
		for c := range 3 {
			out.M[r*3+c] = m.M[r*3]*rhs.M[c] + m.M[r*3+1]*rhs.M[3+c] + m.M[r*3+2]*rhs.M[6+c]
		}
	}
	return out
}

// Apply transforms the column vector (x, y, z).
func (m Matrix33[T]) Apply(x, y, z T) (T, T, T) {
	return m.M[0]*x + m.M[1]*y + m.M[2]*z,
		m.M[3]*x + m.M[4]*y + m.M[5]*z,
		m.M[6]*x + m.M[7]*y + m.M[8]*z
}

func (m Matrix33[T]) Scale(s T) Matrix33[T] {
	for i := range m.M {
		m.M[i] *= s
	}
	return m
}
