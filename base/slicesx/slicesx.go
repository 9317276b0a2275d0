// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slicesx provides additional slice functions
// beyond those in the standard [slices] package.
package slicesx

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// SetLength sets the length of the given slice,
// re-using and preserving existing values to the extent possible.
func SetLength[E any](s []E, n int) []E {
	if len(s) == n {
		return s
	}
	if s == nil {
		return make([]E, n)
	}
	if cap(s) < n {
		s = slices.Grow(s, n-len(s))
	}
	return s[:n]
}

// Narrow copies the given values into a new slice of a narrower
// element type. It is the caller's responsibility to ensure the
// values fit.
func Narrow[To, From constraints.Unsigned](s []From) []To {
	out := make([]To, len(s))
	for i, v := range s {
		out[i] = To(v)
	}
	return out
}
