// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stim

import (
	"fmt"
	"log"

	"github.com/chewxy/math32"
	"github.com/goki/mat32"
)

// Vibration is an oscillating stimulus: a sum of sinusoids (one per entry
// in Freqs, with matching Phases) averaged and shaped by the envelope and
// spatial kernel.  The single-frequency case is the common one.
type Vibration struct {
	Field
	Freqs  []float32 `desc:"frequencies of the sinusoidal components, in Hz"`
	Phases []float32 `desc:"phase offsets of the components in radians -- must be same length as Freqs"`
}

// NewVibration returns a single-frequency vibration stimulus with given
// peak amplitude, frequency (Hz), center location (mm), and total duration
// (msec), with default envelope and radius.
func NewVibration(amplitude, freq float32, loc mat32.Vec2, duration float32) *Vibration {
	vb := &Vibration{}
	vb.Defaults()
	vb.Amplitude = amplitude
	vb.Loc = loc
	vb.Dur = duration
	vb.Freqs = []float32{freq}
	vb.Phases = []float32{0}
	vb.Update()
	return vb
}

// NewVibrationMulti returns a multi-frequency vibration stimulus.
// phases can be nil, in which case all phases are 0.  Returns an error
// if phases is non-nil and not the same length as freqs.
func NewVibrationMulti(amplitude float32, loc mat32.Vec2, duration float32, freqs, phases []float32) (*Vibration, error) {
	vb := &Vibration{}
	vb.Defaults()
	vb.Amplitude = amplitude
	vb.Loc = loc
	vb.Dur = duration
	vb.Freqs = freqs
	if phases == nil {
		phases = make([]float32, len(freqs))
	}
	vb.Phases = phases
	if err := vb.Validate(); err != nil {
		return nil, err
	}
	vb.Update()
	return vb, nil
}

// Validate checks that Freqs and Phases are consistent.
func (vb *Vibration) Validate() error {
	if len(vb.Freqs) == 0 {
		err := fmt.Errorf("stim.Vibration: no frequencies specified")
		log.Println(err)
		return err
	}
	if len(vb.Phases) != len(vb.Freqs) {
		err := fmt.Errorf("stim.Vibration: %d phases for %d frequencies", len(vb.Phases), len(vb.Freqs))
		log.Println(err)
		return err
	}
	return nil
}

func (vb *Vibration) Value(t float32, loc mat32.Vec2) float32 {
	tsec := t / 1000
	sum := float32(0)
	for i, f := range vb.Freqs {
		sum += math32.Sin(2*math32.Pi*f*tsec + vb.Phases[i])
	}
	return vb.Amplitude * vb.Env.Factor(t) * vb.Kernel(loc) * (sum / float32(len(vb.Freqs)))
}

// Sample evaluates the stimulus at loc on the sampling grid over [tStart, tEnd).
func (vb *Vibration) Sample(loc mat32.Vec2, tStart, tEnd float32) []float32 {
	return Sample(vb, loc, tStart, tEnd)
}
