// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// failT records whether an assertion failed.
type failT struct {
	failed bool
}

func (ft *failT) Errorf(format string, args ...any) {
	ft.failed = true
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(t, float32(1), 1.0004))
	assert.True(t, Equal(t, 2.5, 2.5009))

	mt := &failT{}
	assert.False(t, Equal(mt, 1.0, 1.01))
	assert.True(t, mt.failed)
}

func TestEqualTol(t *testing.T) {
	assert.True(t, EqualTol(t, 10, 12, 2))
	assert.True(t, EqualTol(t, float32(0.5), 0.55, 0.1))

	mt := &failT{}
	assert.False(t, EqualTol(mt, 10, 13, 2))
	assert.True(t, mt.failed)
}

func TestEqualTolSlice(t *testing.T) {
	assert.True(t, EqualTolSlice(t, []float32{1, 2, 3}, []float32{1.01, 1.99, 3}, 0.05))

	mt := &failT{}
	assert.False(t, EqualTolSlice(mt, []float32{1, 2}, []float32{1, 2, 3}, 0.05))
	assert.False(t, EqualTolSlice(mt, []float32{1, 2}, []float32{1, 2.5}, 0.05))
	assert.True(t, mt.failed)
}
