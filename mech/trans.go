// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import "github.com/chewxy/math32"

// TransDt is the fixed unit interval in msec for the finite-difference
// derivatives used in RA1 and RA2 transduction.  It is independent of the
// integration step size, so the derivative estimates are per-step
// differences scaled to this unit, matching the standard formulation.
const TransDt = float32(1)

// TransParams are the transduction parameters mapping stimulus intensity
// to input current for one receptor class.  The transduced quantity is the
// stimulus itself for SA1, its first derivative for RA1, and its second
// derivative for RA2.
type TransParams struct {
	Thr  float32 `desc:"threshold on the transduced quantity -- below this (in magnitude for derivatives) the input current is 0"`
	Gain float32 `desc:"gain multiplying the suprathreshold transduced quantity to produce input current"`
}

// Defaults sets the standard threshold and gain for the given receptor
// class: SA1 = 8, 20; RA1 = 2, 100; RA2 = 0.75, 40.
func (tp *TransParams) Defaults(class ReceptorClasses) {
	switch class {
	case SA1:
		tp.Thr = 8
		tp.Gain = 20
	case RA1:
		tp.Thr = 2
		tp.Gain = 100
	case RA2:
		tp.Thr = 0.75
		tp.Gain = 40
	}
	tp.Update()
}

func (tp *TransParams) Update() {
}

// TransHist holds the per-receptor transduction history needed for the
// finite-difference derivative estimates.
type TransHist struct {
	PrevStim  float32 `desc:"stimulus value from the previous step"`
	PrevDeriv float32 `desc:"first derivative estimate from the previous step"`
}

func (th *TransHist) Init() {
	th.PrevStim = 0
	th.PrevDeriv = 0
}

// CurrentFmStim returns the input current transduced from stimulus value s
// for the given receptor class, updating the history th.  SA1 applies
// logarithmic compression to the stimulus itself: Gain * log(s/Thr + 1) for
// s >= Thr, else 0.  RA1 and RA2 rectify the first and second derivative
// respectively: Gain * |d| for |d| >= Thr, else 0.  The history is updated
// on every call, including subthreshold ones.
func (tp *TransParams) CurrentFmStim(class ReceptorClasses, th *TransHist, s float32) float32 {
	switch class {
	case SA1:
		if s < tp.Thr {
			return 0
		}
		return tp.Gain * math32.Log(s/tp.Thr+1)
	case RA1:
		d := (s - th.PrevStim) / TransDt
		th.PrevStim = s
		if math32.Abs(d) < tp.Thr {
			return 0
		}
		return tp.Gain * math32.Abs(d)
	case RA2:
		d := (s - th.PrevStim) / TransDt
		dd := (d - th.PrevDeriv) / TransDt
		th.PrevStim = s
		th.PrevDeriv = d
		if math32.Abs(dd) < tp.Thr {
			return 0
		}
		return tp.Gain * math32.Abs(dd)
	}
	return 0
}
