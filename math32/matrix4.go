// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import "errors"

// Matrix4 is 4x4 matrix organized internally as column matrix,
// so that element (row r, column c) is at index c*4 + r and the
// translation of an affine transform lives in elements 12, 13, 14.
// Because it is an array type, assignment copies all elements.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() Matrix4 {
	m := Matrix4{}
	m.SetIdentity()
	return m
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix4) SetIdentity() {
	*m = Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// IsIdentity returns true if this matrix is exactly the identity matrix.
func (m *Matrix4) IsIdentity() bool {
	return *m == Identity4()
}

// Translate3D returns a translation matrix for the given offsets.
func Translate3D(x, y, z float32) Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Scale3D returns a scaling matrix with the given per-axis factors.
func Scale3D(x, y, z float32) Matrix4 {
	return Matrix4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotateX3D returns a rotation matrix about the X axis by the given angle in radians.
func RotateX3D(angle float32) Matrix4 {
	c, s := Cos(angle), Sin(angle)
	return Matrix4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY3D returns a rotation matrix about the Y axis by the given angle in radians.
func RotateY3D(angle float32) Matrix4 {
	c, s := Cos(angle), Sin(angle)
	return Matrix4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ3D returns a rotation matrix about the Z axis by the given angle in radians.
func RotateZ3D(angle float32) Matrix4 {
	c, s := Cos(angle), Sin(angle)
	return Matrix4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns the matrix product m * other.
// When applied to a point, other is applied first.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var r Matrix4
	r.MulMatrices(&m, &other)
	return r
}

// MulMatrices sets this matrix as matrix multiplication a by b (i.e., a * b).
// It is safe for a or b to be m itself.
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	var r Matrix4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			r[c*4+row] = a[row]*b[c*4] + a[4+row]*b[c*4+1] + a[8+row]*b[c*4+2] + a[12+row]*b[c*4+3]
		}
	}
	*m = r
}

// SetMul sets this matrix to m * other (post-multiply), so that other
// is applied to points before the existing transform.
func (m *Matrix4) SetMul(other *Matrix4) {
	m.MulMatrices(m, other)
}

// Translate post-multiplies this matrix by a translation, in place.
func (m *Matrix4) Translate(x, y, z float32) {
	t := Translate3D(x, y, z)
	m.SetMul(&t)
}

// Scale post-multiplies this matrix by a scaling, in place.
func (m *Matrix4) Scale(x, y, z float32) {
	s := Scale3D(x, y, z)
	m.SetMul(&s)
}

// RotateX post-multiplies this matrix by a rotation about X, in place.
func (m *Matrix4) RotateX(angle float32) {
	r := RotateX3D(angle)
	m.SetMul(&r)
}

// RotateY post-multiplies this matrix by a rotation about Y, in place.
func (m *Matrix4) RotateY(angle float32) {
	r := RotateY3D(angle)
	m.SetMul(&r)
}

// RotateZ post-multiplies this matrix by a rotation about Z, in place.
func (m *Matrix4) RotateZ(angle float32) {
	r := RotateZ3D(angle)
	m.SetMul(&r)
}

// SetPerspective sets this matrix to a perspective projection matrix
// with the specified vertical field of view in degrees,
// aspect ratio (width/height) and near and far planes.
func (m *Matrix4) SetPerspective(fov, aspect, near, far float32) {
	f := 1 / Tan(DegToRad(fov)/2)
	nf := 1 / (near - far)
	*m = Matrix4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

// SetLookAt sets this matrix to a view matrix for a camera at eye
// looking at target with the given up direction.
func (m *Matrix4) SetLookAt(eye, target, up Vector3) {
	f := target.Sub(eye).Normal()
	s := f.Cross(up).Normal()
	u := s.Cross(f)
	*m = Matrix4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}

// Transpose returns the transpose of this matrix.
func (m *Matrix4) Transpose() Matrix4 {
	var r Matrix4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			r[row*4+c] = m[c*4+row]
		}
	}
	return r
}

// Determinant calculates and returns the determinant of this matrix.
func (m *Matrix4) Determinant() float32 {
	inv := m.adjugate()
	return m[0]*inv[0] + m[1]*inv[4] + m[2]*inv[8] + m[3]*inv[12]
}

// Inverse returns the inverse of this matrix.
// If the matrix cannot be inverted it returns the identity
// matrix and an error.
func (m *Matrix4) Inverse() (*Matrix4, error) {
	inv := m.adjugate()
	det := m[0]*inv[0] + m[1]*inv[4] + m[2]*inv[8] + m[3]*inv[12]
	if det == 0 {
		nm := Identity4()
		return &nm, errors.New("cannot invert matrix, determinant is 0")
	}
	detInv := 1 / det
	for i := range inv {
		inv[i] *= detInv
	}
	return &inv, nil
}

// adjugate returns the transposed cofactor matrix.
func (m *Matrix4) adjugate() Matrix4 {
	var inv Matrix4
	inv[0] = m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] + m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	inv[4] = -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] + m[8]*m[6]*m[15] - m[8]*m[7]*m[14] - m[12]*m[6]*m[11] + m[12]*m[7]*m[10]
	inv[8] = m[4]*m[9]*m[15] - m[4]*m[11]*m[13] - m[8]*m[5]*m[15] + m[8]*m[7]*m[13] + m[12]*m[5]*m[11] - m[12]*m[7]*m[9]
	inv[12] = -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] + m[8]*m[5]*m[14] - m[8]*m[6]*m[13] - m[12]*m[5]*m[10] + m[12]*m[6]*m[9]
	inv[1] = -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] - m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	inv[5] = m[0]*m[10]*m[15] - m[0]*m[11]*m[14] - m[8]*m[2]*m[15] + m[8]*m[3]*m[14] + m[12]*m[2]*m[11] - m[12]*m[3]*m[10]
	inv[9] = -m[0]*m[9]*m[15] + m[0]*m[11]*m[13] + m[8]*m[1]*m[15] - m[8]*m[3]*m[13] - m[12]*m[1]*m[11] + m[12]*m[3]*m[9]
	inv[13] = m[0]*m[9]*m[14] - m[0]*m[10]*m[13] - m[8]*m[1]*m[14] + m[8]*m[2]*m[13] + m[12]*m[1]*m[10] - m[12]*m[2]*m[9]
	inv[2] = m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] + m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	inv[6] = -m[0]*m[6]*m[15] + m[0]*m[7]*m[14] + m[4]*m[2]*m[15] - m[4]*m[3]*m[14] - m[12]*m[2]*m[7] + m[12]*m[3]*m[6]
	inv[10] = m[0]*m[5]*m[15] - m[0]*m[7]*m[13] - m[4]*m[1]*m[15] + m[4]*m[3]*m[13] + m[12]*m[1]*m[7] - m[12]*m[3]*m[5]
	inv[14] = -m[0]*m[5]*m[14] + m[0]*m[6]*m[13] + m[4]*m[1]*m[14] - m[4]*m[2]*m[13] - m[12]*m[1]*m[6] + m[12]*m[2]*m[5]
	inv[3] = -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] - m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6]
	inv[7] = m[0]*m[6]*m[11] - m[0]*m[7]*m[10] - m[4]*m[2]*m[11] + m[4]*m[3]*m[10] + m[8]*m[2]*m[7] - m[8]*m[3]*m[6]
	inv[11] = -m[0]*m[5]*m[11] + m[0]*m[7]*m[9] + m[4]*m[1]*m[11] - m[4]*m[3]*m[9] - m[8]*m[1]*m[7] + m[8]*m[3]*m[5]
	inv[15] = m[0]*m[5]*m[10] - m[0]*m[6]*m[9] - m[4]*m[1]*m[10] + m[4]*m[2]*m[9] + m[8]*m[1]*m[6] - m[8]*m[2]*m[5]
	return inv
}

// NormalMatrix returns the matrix used to transform normals:
// the inverse transpose of the upper 3x3 rotation/scale part.
// Degenerate transforms (e.g., a zero scale used to flatten a panel)
// are not invertible, and return the rotation/scale part unchanged.
func (m *Matrix4) NormalMatrix() Matrix4 {
	rs := *m
	rs[3], rs[7], rs[11] = 0, 0, 0
	rs[12], rs[13], rs[14] = 0, 0, 0
	rs[15] = 1
	inv, err := rs.Inverse()
	if err != nil {
		return rs
	}
	return inv.Transpose()
}

// MulVector3AsPoint multiplies the given point by this matrix (w = 1),
// without any perspective divide.
func (m *Matrix4) MulVector3AsPoint(v Vector3) Vector3 {
	return Vec3(
		m[0]*v.X+m[4]*v.Y+m[8]*v.Z+m[12],
		m[1]*v.X+m[5]*v.Y+m[9]*v.Z+m[13],
		m[2]*v.X+m[6]*v.Y+m[10]*v.Z+m[14],
	)
}

// MulVector3AsVector multiplies the given direction by this matrix (w = 0),
// ignoring translation.
func (m *Matrix4) MulVector3AsVector(v Vector3) Vector3 {
	return Vec3(
		m[0]*v.X+m[4]*v.Y+m[8]*v.Z,
		m[1]*v.X+m[5]*v.Y+m[9]*v.Z,
		m[2]*v.X+m[6]*v.Y+m[10]*v.Z,
	)
}

