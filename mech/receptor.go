// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import (
	"github.com/goki/mat32"

	"github.com/JHKim-ETRI/tsnnhome/izhi"
	"github.com/JHKim-ETRI/tsnnhome/stim"
)

// Receptor is one mechanoreceptor: a skin location, class-specific
// transduction of the stimulus into input current, and an Izhikevich
// spiking neuron integrating that current.
type Receptor struct {
	Typ    ReceptorClasses `desc:"class of receptor -- determines transduction function and spiking preset -- matches against .Class parameter styles (e.g., .SA1)"`
	Nm     string          `desc:"name of the receptor -- defaults to the class name -- matches against #Name parameter styles"`
	Cls    string          `desc:"additional class tags for applying parameter styles, space separated"`
	Loc    mat32.Vec2      `desc:"location of the receptor on the skin, in mm"`
	Trans  TransParams     `view:"inline" desc:"stimulus transduction parameters"`
	Izhi   izhi.Params     `view:"inline" desc:"spiking neuron parameters"`
	Neuron izhi.Neuron     `desc:"neuron state variables"`
	Hist   TransHist       `desc:"transduction history for derivative estimates"`
	Spikes SpikeLog        `desc:"log of emitted spike times in msec"`
}

// New returns a new receptor of the given class at the given skin location,
// with class defaults applied and state reset.
func New(class ReceptorClasses, loc mat32.Vec2) *Receptor {
	rc := &Receptor{Typ: class, Loc: loc}
	rc.Nm = class.String()
	rc.Defaults()
	rc.Reset()
	return rc
}

// Defaults sets all parameters to the standard values for the receptor
// class: SA1 uses the regular spiking neuron preset, RA1 and RA2 the fast
// spiking one.
func (rc *Receptor) Defaults() {
	rc.Trans.Defaults(rc.Typ)
	rc.Izhi.Defaults()
	if rc.Typ == RA1 || rc.Typ == RA2 {
		rc.Izhi.FastSpiking()
	}
}

// UpdateParams updates all derived parameters after any manual changes.
func (rc *Receptor) UpdateParams() {
	rc.Trans.Update()
	rc.Izhi.Update()
}

// Reset reinitializes all dynamic state: neuron variables, transduction
// history, and the spike log.  Parameters are untouched.
func (rc *Receptor) Reset() {
	rc.Izhi.Init(&rc.Neuron)
	rc.Hist.Init()
	rc.Spikes.Reset()
}

// Step advances the receptor by one integration step of size dt (msec) at
// time t (msec): the stimulus is sampled at the receptor location,
// transduced into input current, and integrated by the neuron.  A spike is
// logged at time t.  Returns true if the receptor spiked on this step.
func (rc *Receptor) Step(st stim.Stimulus, dt, t float32) bool {
	return rc.StepStim(st.Value(t, rc.Loc), dt, t)
}

// StepStim advances by one step with an already-sampled stimulus value.
func (rc *Receptor) StepStim(sval, dt, t float32) bool {
	cur := rc.Trans.CurrentFmStim(rc.Typ, &rc.Hist, sval)
	spk := rc.Izhi.StepFmI(&rc.Neuron, cur, dt)
	if spk {
		rc.Spikes.Add(t)
	}
	return spk
}

// SpikesIn returns the logged spike times t with start <= t < end, in
// chronological order.  Use math32.Inf(-1) or math32.Inf(1) for an
// unbounded start or end.
func (rc *Receptor) SpikesIn(start, end float32) []float32 {
	var sp []float32
	for _, t := range rc.Spikes.Seq() {
		if t >= start && t < end {
			sp = append(sp, t)
		}
	}
	return sp
}
