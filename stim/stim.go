// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stim provides spatially-localized, time-varying skin stimulus fields
for driving mechanoreceptor models.

A stimulus combines a piecewise-linear temporal envelope (onset, linear rise,
plateau, linear fall), a Gaussian spatial falloff kernel around a center
location, and a waveform: constant for Pressure, a sum of sinusoids for
Vibration.  Time is in milliseconds and space in millimeters throughout.
*/
package stim

import (
	"github.com/chewxy/math32"
	"github.com/goki/mat32"
)

// Stimulus is the common interface for stimulus fields: a scalar intensity
// as a function of time (msec) and skin location (mm).
type Stimulus interface {
	// Value returns the stimulus intensity at time t (msec) and location loc
	Value(t float32, loc mat32.Vec2) float32

	// Duration returns the total duration of the stimulus in msec --
	// Value is 0 at and beyond this time
	Duration() float32

	// SampleRate returns the sampling rate in Hz used by Sample
	SampleRate() float32
}

// Sample evaluates st at location loc on the regular sampling grid over the
// half-open interval [tStart, tEnd).  The grid is anchored at t = 0 with
// spacing 1000 / SampleRate msec, so samples land at the same times
// regardless of tStart.  tEnd is clipped to the stimulus duration.
func Sample(st Stimulus, loc mat32.Vec2, tStart, tEnd float32) []float32 {
	step := 1000 / st.SampleRate()
	end := math32.Min(tEnd, st.Duration())
	i := int(math32.Ceil(tStart / step))
	if i < 0 {
		i = 0
	}
	for float32(i)*step < tStart { // Ceil can round to just below tStart
		i++
	}
	var vals []float32
	for {
		t := float32(i) * step
		if t >= end {
			break
		}
		vals = append(vals, st.Value(t, loc))
		i++
	}
	return vals
}

// Envelope is a piecewise-linear temporal amplitude profile: 0 before Onset,
// linear ramp up over Rise, 1 during the plateau, linear ramp down over Fall
// starting at Offset, 0 after.
type Envelope struct {
	Onset  float32 `desc:"time at which the stimulus starts ramping up, in msec"`
	Rise   float32 `def:"5" desc:"duration of the linear ramp from 0 to full amplitude, in msec"`
	Offset float32 `desc:"time at which the stimulus starts ramping down, in msec -- 0 = set from stimulus duration minus Fall"`
	Fall   float32 `def:"5" desc:"duration of the linear ramp from full amplitude back to 0, in msec"`
}

// Factor returns the envelope amplitude factor in [0,1] at time t (msec).
func (ev *Envelope) Factor(t float32) float32 {
	switch {
	case t < ev.Onset:
		return 0
	case t < ev.Onset+ev.Rise:
		return (t - ev.Onset) / ev.Rise
	case t < ev.Offset:
		return 1
	case t < ev.Offset+ev.Fall:
		return 1 - (t-ev.Offset)/ev.Fall
	}
	return 0
}

// Field has the parameters shared by all stimulus fields: amplitude,
// spatial center and extent, temporal envelope, duration, and sampling rate.
type Field struct {
	Amplitude float32    `desc:"peak stimulus intensity at the field center during the envelope plateau"`
	Loc       mat32.Vec2 `desc:"center of the stimulus field on the skin, in mm"`
	Radius    float32    `def:"1" min:"0" desc:"Gaussian spatial falloff radius (sigma) in mm -- intensity at distance d is scaled by exp(-d^2 / (2 r^2))"`
	Env       Envelope   `view:"inline" desc:"temporal amplitude envelope"`
	Dur       float32    `desc:"total stimulus duration in msec"`
	SampleHz  float32    `def:"1000" min:"0" desc:"sampling rate in Hz for Sample"`
}

func (fl *Field) Defaults() {
	fl.Radius = 1
	fl.SampleHz = 1000
	fl.Env.Rise = 5
	fl.Env.Fall = 5
}

// Update resolves derived values: a zero Env.Offset is treated as unset
// and is set to Dur - Env.Fall.
func (fl *Field) Update() {
	if fl.Env.Offset == 0 {
		fl.Env.Offset = fl.Dur - fl.Env.Fall
	}
}

// Kernel returns the Gaussian spatial falloff factor at skin location loc.
func (fl *Field) Kernel(loc mat32.Vec2) float32 {
	d := loc.Sub(fl.Loc)
	return math32.Exp(-d.LengthSq() / (2 * fl.Radius * fl.Radius))
}

func (fl *Field) Duration() float32 {
	return fl.Dur
}

func (fl *Field) SampleRate() float32 {
	return fl.SampleHz
}
