// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/goki/mat32"

	"github.com/JHKim-ETRI/tsnnhome/stim"
)

func TestNewDefaults(t *testing.T) {
	rc := New(SA1, mat32.Vec2{})
	if rc.Izhi.B != 0.2 || rc.Izhi.C != -65 || rc.Izhi.D != 6 {
		t.Errorf("SA1 not regular spiking: %+v\n", rc.Izhi)
	}
	if rc.Nm != "SA1" {
		t.Errorf("SA1 name: %v\n", rc.Nm)
	}
	for _, cl := range []ReceptorClasses{RA1, RA2} {
		rc = New(cl, mat32.Vec2{})
		if rc.Izhi.B != 0.25 || rc.Izhi.C != -60 || rc.Izhi.D != 4 {
			t.Errorf("%v not fast spiking: %+v\n", cl, rc.Izhi)
		}
	}
}

// sustained pressure drives tonic SA1 firing through the stimulus window,
// and sub-transduction-threshold pressure drives none
func TestSA1Pressure(t *testing.T) {
	pr := NewPressTest(50)
	rc := New(SA1, mat32.Vec2{})
	nspk := Run(rc, pr, nil, 1000, 1)
	if nspk < 55 || nspk > 75 {
		t.Errorf("SA1 tonic spike count out of range: %v\n", nspk)
	}
	sp := rc.Spikes.Seq()
	for _, st := range sp {
		if st < 200 || st > 850 {
			t.Errorf("SA1 spike outside stimulus window: %v\n", st)
		}
	}
	plat := rc.SpikesIn(300, 700)
	if len(plat) < 30 {
		t.Errorf("SA1 plateau spike count too low: %v\n", len(plat))
	}

	rc = New(SA1, mat32.Vec2{})
	nspk = Run(rc, NewPressTest(5), nil, 1000, 1)
	if nspk != 0 {
		t.Errorf("SA1 subthreshold pressure spiked: %v\n", nspk)
	}
}

// NewPressTest returns the standard test pressure stimulus: 1 sec long with
// a 200-800 msec stimulus window and 50 msec ramps.
func NewPressTest(amp float32) *stim.Pressure {
	pr := stim.NewPressure(amp, mat32.Vec2{}, 1000)
	pr.Env.Onset = 200
	pr.Env.Offset = 800
	pr.Env.Rise = 50
	pr.Env.Fall = 50
	return pr
}

// RA1 entrains to a low-frequency vibration at roughly one spike per cycle
func TestRA1Vibration(t *testing.T) {
	vb := stim.NewVibration(106.1, 30, mat32.Vec2{}, 1000)
	vb.Env.Onset = 100
	vb.Env.Offset = 0
	vb.Env.Rise = 20
	vb.Env.Fall = 20
	vb.Update()

	rc := New(RA1, mat32.Vec2{})
	Run(rc, vb, nil, 1000, 0.1)
	sp := rc.SpikesIn(120, 980)
	rate := float32(len(sp)) * 1000 / (980 - 120)
	if rate < 20 || rate > 40 {
		t.Errorf("RA1 entrainment rate out of range: %v Hz (%v spikes)\n", rate, len(sp))
	}
}

// RA2 is selective for high-frequency vibration: a 200 Hz stimulus drives
// sustained firing at an amplitude where a 30 Hz one drives none
func TestRA2FreqSelectivity(t *testing.T) {
	hi := stim.NewVibration(1, 200, mat32.Vec2{}, 1000)
	hi.Env.Onset = 100
	hi.Env.Rise = 20
	hi.Env.Fall = 20

	rc := New(RA2, mat32.Vec2{})
	Run(rc, hi, nil, 1000, 1)
	sp := rc.SpikesIn(120, 980)
	rate := float32(len(sp)) * 1000 / (980 - 120)
	if rate < 100 || rate > 250 {
		t.Errorf("RA2 200 Hz rate out of range: %v Hz\n", rate)
	}

	lo := stim.NewVibration(1, 30, mat32.Vec2{}, 1000)
	lo.Env.Onset = 100
	lo.Env.Rise = 20
	lo.Env.Fall = 20

	rc = New(RA2, mat32.Vec2{})
	nspk := Run(rc, lo, nil, 1000, 1)
	if nspk != 0 {
		t.Errorf("RA2 spiked to 30 Hz low-amplitude vibration: %v\n", nspk)
	}
}

// the spatial kernel attenuates the stimulus for receptors away from the
// field center, reducing or eliminating firing
func TestSpatialFalloff(t *testing.T) {
	pr := NewPressTest(50)
	ctr := New(SA1, mat32.Vec2{})
	off := New(SA1, mat32.Vec2{X: 1, Y: 0})
	far := New(SA1, mat32.Vec2{X: 5, Y: 0})
	nc := Run(ctr, pr, nil, 1000, 1)
	no := Run(off, pr, nil, 1000, 1)
	nf := Run(far, pr, nil, 1000, 1)
	if no >= nc {
		t.Errorf("off-center receptor fired as much as center: %v >= %v\n", no, nc)
	}
	if nf != 0 {
		t.Errorf("distant receptor fired: %v\n", nf)
	}
}

func TestFixedUnitInterval(t *testing.T) {
	// derivative transduction uses the fixed 1 msec unit interval, so the
	// current from a given per-step stimulus jump is the same at any dt
	for _, dt := range []float32{0.1, 0.5, 1} {
		rc := New(RA1, mat32.Vec2{})
		rc.StepStim(5, dt, 0)
		if math32.Abs(rc.Neuron.I-500) > difTol {
			t.Errorf("dt %v: derivative current %v != 500\n", dt, rc.Neuron.I)
		}
	}
}

func TestResetReproducible(t *testing.T) {
	pr := NewPressTest(50)
	rc := New(SA1, mat32.Vec2{})
	n1 := Run(rc, pr, nil, 1000, 1)
	sp1 := append([]float32{}, rc.Spikes.Seq()...)
	n2 := Run(rc, pr, nil, 1000, 1)
	sp2 := rc.Spikes.Seq()
	if n1 != n2 || len(sp1) != len(sp2) {
		t.Fatalf("rerun spike counts differ: %v vs %v\n", n1, n2)
	}
	for i := range sp1 {
		if sp1[i] != sp2[i] {
			t.Errorf("rerun spike time %v differs: %v vs %v\n", i, sp1[i], sp2[i])
		}
	}
}

func TestSpikesIn(t *testing.T) {
	rc := New(SA1, mat32.Vec2{})
	for _, st := range []float32{10, 20, 30, 40} {
		rc.Spikes.Add(st)
	}
	if sp := rc.SpikesIn(20, 40); len(sp) != 2 || sp[0] != 20 || sp[1] != 30 {
		t.Errorf("SpikesIn [20,40): %v\n", sp)
	}
	if sp := rc.SpikesIn(math32.Inf(-1), math32.Inf(1)); len(sp) != 4 {
		t.Errorf("SpikesIn unbounded: %v\n", sp)
	}
	if sp := rc.SpikesIn(math32.Inf(-1), 10); len(sp) != 0 {
		t.Errorf("SpikesIn before first: %v\n", sp)
	}
	if sp := rc.SpikesIn(40, math32.Inf(1)); len(sp) != 1 || sp[0] != 40 {
		t.Errorf("SpikesIn inclusive start: %v\n", sp)
	}
}
