// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stim

import "github.com/goki/mat32"

// Pressure is a sustained indentation stimulus: constant amplitude shaped
// only by the temporal envelope and the spatial falloff kernel.
type Pressure struct {
	Field
}

// NewPressure returns a pressure stimulus with given peak amplitude,
// center location (mm), and total duration (msec), with default envelope
// (onset 0, 5 msec rise and fall, offset at duration - fall) and radius.
func NewPressure(amplitude float32, loc mat32.Vec2, duration float32) *Pressure {
	pr := &Pressure{}
	pr.Defaults()
	pr.Amplitude = amplitude
	pr.Loc = loc
	pr.Dur = duration
	pr.Update()
	return pr
}

func (pr *Pressure) Value(t float32, loc mat32.Vec2) float32 {
	return pr.Amplitude * pr.Env.Factor(t) * pr.Kernel(loc)
}

// Sample evaluates the stimulus at loc on the sampling grid over [tStart, tEnd).
func (pr *Pressure) Sample(loc mat32.Vec2, tStart, tEnd float32) []float32 {
	return Sample(pr, loc, tStart, tEnd)
}
