// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "time"

// Clock is the animation clock of a scene. Times are given by the
// caller as durations since an arbitrary epoch, and the first
// time seen starts the animation.
type Clock struct {

	// time of the first tick
	Start time.Duration

	// time of the latest tick
	Now time.Duration

	// frames per second, updated once a second
	FPS int

	// whether the clock has seen a tick
	started bool

	// frames rendered since the last FPS update
	frames int

	// time of the last FPS update
	lastFPS time.Duration
}

// Tick advances the clock to the given time, updating the FPS
// count if a second or more has passed since its last update.
func (cl *Clock) Tick(now time.Duration) {
	if !cl.started {
		cl.started = true
		cl.Start = now
		cl.lastFPS = now
	}
	cl.Now = now
	if now-cl.lastFPS >= time.Second {
		cl.FPS = cl.frames
		cl.frames = 0
		cl.lastFPS = now
	}
}

// Frame counts a rendered frame.
func (cl *Clock) Frame() {
	cl.frames++
}

// Elapsed returns the animation time since the first tick.
func (cl *Clock) Elapsed() time.Duration {
	return cl.Now - cl.Start
}

// Reset restarts the clock at the next tick.
func (cl *Clock) Reset() {
	*cl = Clock{}
}
