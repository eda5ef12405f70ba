// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import (
	"github.com/chewxy/math32"
	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"

	"github.com/JHKim-ETRI/tsnnhome/stim"
)

// ConfigTrajTable configures dt to record a per-step state trajectory of
// one receptor: time, stimulus value, input current, membrane potential,
// recovery variable, and spike flag.
func ConfigTrajTable(dt *etable.Table) {
	sch := etable.Schema{
		{Name: "Time", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Stim", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "I", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Vm", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "U", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Spike", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
	}
	dt.SetFromSchema(sch, 0)
}

// Run resets rc and steps it against st for dur msec with integration step
// dtms, recording one row per step into tab, which must have been
// configured with ConfigTrajTable (pass nil to skip recording).  The step
// times form the grid t = i * dtms for i in [0, round(dur/dtms)).
// Returns the total number of spikes.
func Run(rc *Receptor, st stim.Stimulus, tab *etable.Table, dur, dtms float32) int {
	rc.Reset()
	n := int(math32.Round(dur / dtms))
	if tab != nil {
		tab.SetNumRows(n)
	}
	nspk := 0
	for i := 0; i < n; i++ {
		t := float32(i) * dtms
		sval := st.Value(t, rc.Loc)
		if rc.StepStim(sval, dtms, t) {
			nspk++
		}
		if tab != nil {
			tab.SetCellFloat("Time", i, float64(t))
			tab.SetCellFloat("Stim", i, float64(sval))
			tab.SetCellFloat("I", i, float64(rc.Neuron.I))
			tab.SetCellFloat("Vm", i, float64(rc.Neuron.Vm))
			tab.SetCellFloat("U", i, float64(rc.Neuron.U))
			tab.SetCellFloat("Spike", i, float64(rc.Neuron.Spike))
		}
	}
	return nspk
}

// RunPop resets pp and steps every receptor against st for dur msec with
// integration step dtms.  Spike times accumulate in each receptor's log.
func RunPop(pp *Pop, st stim.Stimulus, dur, dtms float32) {
	pp.ResetAll()
	n := int(math32.Round(dur / dtms))
	for i := 0; i < n; i++ {
		t := float32(i) * dtms
		pp.StepAll(st, dtms, t)
	}
}
