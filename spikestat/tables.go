// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikestat

import (
	"github.com/chewxy/math32"
	"github.com/emer/etable/v2/agg"
	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/minmax"
	"github.com/goki/ki/ints"

	"github.com/JHKim-ETRI/tsnnhome/mech"
)

// ConfigPSTH configures dt as a peri-stimulus time histogram table,
// with Time (bin start, msec) and Count columns.
func ConfigPSTH(dt *etable.Table) {
	sch := etable.Schema{
		{Name: "Time", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Count", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
	}
	dt.SetFromSchema(sch, 0)
}

// PSTH bins the spike train into bins of width binw (msec) over the window
// [w.Min, w.Max), writing one row per bin into dt, which must have been
// configured with ConfigPSTH.  Spikes landing exactly at w.Max are
// excluded, per the half-open window.
func PSTH(dt *etable.Table, spikes []float32, w minmax.F32, binw float32) {
	if w.Max <= w.Min || binw <= 0 {
		dt.SetNumRows(0)
		return
	}
	nbin := ints.MaxInt(int(math32.Ceil((w.Max-w.Min)/binw)), 1)
	counts := make([]int, nbin)
	for _, t := range spikes {
		if t < w.Min || t >= w.Max {
			continue
		}
		bi := ints.MinInt(int((t-w.Min)/binw), nbin-1)
		counts[bi]++
	}
	dt.SetNumRows(nbin)
	for i, c := range counts {
		dt.SetCellFloat("Time", i, float64(w.Min+float32(i)*binw))
		dt.SetCellFloat("Count", i, float64(c))
	}
}

// ConfigRates configures dt as a per-receptor rate table: class, name,
// skin location, spike count, and firing rate.
func ConfigRates(dt *etable.Table) {
	sch := etable.Schema{
		{Name: "Class", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "Name", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "X", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Y", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "NSpikes", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Rate", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
	}
	dt.SetFromSchema(sch, 0)
}

// RatesFmPop writes one row per receptor in the population into dt, which
// must have been configured with ConfigRates, with the firing rate computed
// over window w.
func RatesFmPop(dt *etable.Table, pp *mech.Pop, w minmax.F32) {
	dt.SetNumRows(len(pp.Rcps))
	for i, rc := range pp.Rcps {
		sp := rc.Spikes.Seq()
		dt.SetCellString("Class", i, rc.Typ.String())
		dt.SetCellString("Name", i, rc.Nm)
		dt.SetCellFloat("X", i, float64(rc.Loc.X))
		dt.SetCellFloat("Y", i, float64(rc.Loc.Y))
		dt.SetCellFloat("NSpikes", i, float64(len(sp)))
		dt.SetCellFloat("Rate", i, float64(Rate(sp, w)))
	}
}

// RateStats returns the mean, min, and max of the Rate column of a rates
// table, aggregated over all rows.
func RateStats(dt *etable.Table) (mean, min, max float64) {
	ix := etable.NewIdxView(dt)
	return agg.Mean(ix, "Rate")[0], agg.Min(ix, "Rate")[0], agg.Max(ix, "Rate")[0]
}
