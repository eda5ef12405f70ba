// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package spikestat computes summary statistics over spike trains: firing
rates within time windows, inter-spike interval statistics, peri-stimulus
time histograms, and per-population rate tables for analysis and plotting.

Spike times are in msec, as recorded by the mech receptors, and rates are
in Hz.  Windows are half-open: [Min, Max).
*/
package spikestat

import (
	"github.com/chewxy/math32"
	"github.com/emer/etable/v2/minmax"
)

// Rate returns the mean firing rate in Hz of the given spike train over
// the half-open time window [w.Min, w.Max) (msec).
func Rate(spikes []float32, w minmax.F32) float32 {
	if w.Max <= w.Min {
		return 0
	}
	n := 0
	for _, t := range spikes {
		if t >= w.Min && t < w.Max {
			n++
		}
	}
	return float32(n) * 1000 / (w.Max - w.Min)
}

// ISIs returns the inter-spike intervals (msec) of the given
// chronologically-ordered spike train.  Returns nil for fewer than 2 spikes.
func ISIs(spikes []float32) []float32 {
	if len(spikes) < 2 {
		return nil
	}
	isi := make([]float32, len(spikes)-1)
	for i := 1; i < len(spikes); i++ {
		isi[i-1] = spikes[i] - spikes[i-1]
	}
	return isi
}

// ISIStats returns the mean and coefficient of variation (CV = sd / mean,
// sample sd) of the inter-spike intervals of the given spike train.
// A CV near 0 indicates regular firing, near 1 Poisson-like firing.
func ISIStats(spikes []float32) (mean, cv float32) {
	isi := ISIs(spikes)
	if len(isi) == 0 {
		return 0, 0
	}
	for _, iv := range isi {
		mean += iv
	}
	mean /= float32(len(isi))
	if mean == 0 || len(isi) < 2 {
		return mean, 0
	}
	var vr float32
	for _, iv := range isi {
		d := iv - mean
		vr += d * d
	}
	vr /= float32(len(isi) - 1)
	return mean, math32.Sqrt(vr) / mean
}
