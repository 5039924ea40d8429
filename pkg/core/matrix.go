package core

import (
	"errors"
	"math"
)

// ErrNonInvertibleTransform is returned when a transform matrix has a zero
// determinant. Rendering must not proceed with such a transform since the
// intersection and normal math depends on the inverse.
var ErrNonInvertibleTransform = errors.New("transform matrix is not invertible")

// Matrix is a 4x4 row-major transform matrix
type Matrix [4][4]float64

// IdentityMatrix returns the 4x4 identity matrix
func IdentityMatrix() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns the matrix product a*b
func (m Matrix) Multiply(other Matrix) Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[row][k] * other[k][col]
			}
			result[row][col] = sum
		}
	}
	return result
}

// MultiplyTuple applies the matrix to a tuple
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose returns the matrix with rows and columns swapped
func (m Matrix) Transpose() Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[col][row]
		}
	}
	return result
}

// submatrix returns the 3x3 matrix left after removing the given row and column
func (m Matrix) submatrix(row, col int) [3][3]float64 {
	var result [3][3]float64
	ri := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		ci := 0
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			result[ri][ci] = m[r][c]
			ci++
		}
		ri++
	}
	return result
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// cofactor returns the signed minor at the given row and column
func (m Matrix) cofactor(row, col int) float64 {
	minor := det3(m.submatrix(row, col))
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant returns the determinant via cofactor expansion along the first row
func (m Matrix) Determinant() float64 {
	det := 0.0
	for col := 0; col < 4; col++ {
		det += m[0][col] * m.cofactor(0, col)
	}
	return det
}

// Inverse returns the inverse of the matrix, or ErrNonInvertibleTransform
// if the determinant is zero
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) < Epsilon {
		return Matrix{}, ErrNonInvertibleTransform
	}

	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// transposed on purpose: cofactor of (row,col) lands at (col,row)
			result[col][row] = m.cofactor(row, col) / det
		}
	}
	return result, nil
}

// Equals reports whether two matrices are equal within Epsilon
func (m Matrix) Equals(other Matrix) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if math.Abs(m[row][col]-other[row][col]) >= Epsilon {
				return false
			}
		}
	}
	return true
}
