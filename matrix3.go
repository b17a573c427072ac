package rawshade

// Matrix3 is a row-major 3x3 matrix used for the AgX rendering-space
// round-trip (spec.md §3, §4.2 step 10): a host-supplied forward matrix
// that rotates linear scene-referred RGB into the AgX working space, and
// its inverse to rotate the tone-mapped result back.
type Matrix3 [3][3]float64

// IdentityMatrix3 returns the 3x3 identity matrix.
func IdentityMatrix3() Matrix3 {
	return Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// MulVec3 applies the matrix to a column vector (r, g, b).
func (m Matrix3) MulVec3(r, g, b float64) (float64, float64, float64) {
	return m[0][0]*r + m[0][1]*g + m[0][2]*b,
		m[1][0]*r + m[1][1]*g + m[1][2]*b,
		m[2][0]*r + m[2][1]*g + m[2][2]*b
}
