// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transform provides a model-view matrix stack for drawing
// hierarchical parts: the current transform is saved with [Stack.Push]
// before drawing a child part relative to it, and restored with
// [Stack.Pop] afterwards.
package transform

import (
	"errors"

	"cogentcore.org/orbital/math32"
)

// ErrEmptyStack is returned by [Stack.Pop] when there is no
// saved transform to restore, which means that a Pop was not
// matched by an earlier Push.
var ErrEmptyStack = errors.New("transform: stack was empty")

// Stack holds the Current model-view matrix and a LIFO of saved copies.
// The zero value is not ready for use: its Current matrix is all zeros.
// Use [NewStack] or call [Stack.Reset].
type Stack struct {

	// Current is the active model-view matrix, which is modified
	// in place with its Translate, Rotate and Scale methods.
	Current math32.Matrix4

	// saved copies of Current, most recent last
	saved []math32.Matrix4
}

// NewStack returns a new Stack with an identity Current matrix
// and nothing saved.
func NewStack() *Stack {
	st := &Stack{}
	st.Reset()
	return st
}

// Reset sets Current to the identity and discards all saved matrices.
func (st *Stack) Reset() {
	st.Current.SetIdentity()
	st.saved = st.saved[:0]
}

// Len returns the number of saved matrices.
func (st *Stack) Len() int {
	return len(st.saved)
}

// Push saves a copy of the Current matrix.
func (st *Stack) Push() {
	st.saved = append(st.saved, st.Current)
}

// Pop restores the most recently saved matrix into Current.
// It returns [ErrEmptyStack] and leaves Current unchanged
// if nothing is saved.
func (st *Stack) Pop() error {
	sz := len(st.saved)
	if sz == 0 {
		return ErrEmptyStack
	}
	st.Current = st.saved[sz-1]
	st.saved = st.saved[:sz-1]
	return nil
}

// Scoped calls Push, then the given function, then Pop, so that any
// changes the function makes to Current are undone afterwards.
// It returns the error from the function, joined with any error
// from Pop, which happens when the function pops more than it pushes.
func (st *Stack) Scoped(fun func() error) error {
	st.Push()
	err := fun()
	return errors.Join(err, st.Pop())
}
