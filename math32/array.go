// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// ArrayF32 is a slice of float32 with additional convenience methods
// for setting vector values at float offsets, as uploaded to vertex buffers.
type ArrayF32 []float32

// NewArrayF32 creates a returns a new array of floats
// with the specified initial size and capacity
func NewArrayF32(size, capacity int) ArrayF32 {
	return make([]float32, size, capacity)
}

// Len returns the number of float32 elements in the array
// It is equivalent to Size()
func (a *ArrayF32) Len() int {
	return len(*a)
}

// Append appends any number of values to the array
func (a *ArrayF32) Append(v ...float32) {
	*a = append(*a, v...)
}

// Set sets the values of the array starting at the specified pos
// from the specified values
func (a ArrayF32) Set(pos int, v ...float32) {
	copy(a[pos:], v)
}

// SetVector2 stores the elements of the vector in the specified position
func (a ArrayF32) SetVector2(pos int, v Vector2) {
	a[pos] = v.X
	a[pos+1] = v.Y
}

// SetVector3 stores the elements of the vector in the specified position
func (a ArrayF32) SetVector3(pos int, v Vector3) {
	a[pos] = v.X
	a[pos+1] = v.Y
	a[pos+2] = v.Z
}

// GetVector2 stores in the specified Vector2 the
// values from the array starting at the specified pos.
func (a ArrayF32) GetVector2(pos int, v *Vector2) {
	v.X = a[pos]
	v.Y = a[pos+1]
}

// GetVector3 stores in the specified Vector3 the
// values from the array starting at the specified pos.
func (a ArrayF32) GetVector3(pos int, v *Vector3) {
	v.X = a[pos]
	v.Y = a[pos+1]
	v.Z = a[pos+2]
}

// ArrayU16 is a slice of uint16 with additional convenience methods,
// matching the 16-bit element index format used for indexed draws.
type ArrayU16 []uint16

// NewArrayU16 creates a returns a new array of uint16
// with the specified initial size and capacity
func NewArrayU16(size, capacity int) ArrayU16 {
	return make([]uint16, size, capacity)
}

// Len returns the number of uint16 elements in the array
func (a *ArrayU16) Len() int {
	return len(*a)
}

// Append appends n elements to the array updating the slice if necessary
func (a *ArrayU16) Append(v ...uint16) {
	*a = append(*a, v...)
}

// Set sets the values of the array starting at the specified pos
// from the specified values
func (a ArrayU16) Set(pos int, v ...uint16) {
	copy(a[pos:], v)
}
