// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package tsnnhome simulates tactile spiking neural responses: cutaneous
mechanoreceptors that convert skin stimulation into spike trains.

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* izhi: the Izhikevich (2003) simple spiking neuron model, with the regular
spiking and fast spiking parameter presets.

* stim: spatially-localized, time-varying skin stimulus fields: sustained
pressure and sinusoidal vibration, with piecewise-linear temporal envelopes
and Gaussian spatial falloff.

* mech: the mechanoreceptor models (SA1, RA1, RA2), combining class-specific
transduction of the stimulus into input current with an izhi spiking neuron,
plus populations, parameter styling, and trajectory recording.

* spikestat: spike train statistics: firing rates, inter-spike intervals,
peri-stimulus time histograms, and per-population rate tables.

* examples: these compile into runnable programs.  examples/receptors runs
the three receptor classes against a stimulus and reports their responses;
examples/tuning sweeps amplitude and frequency to produce tuning curves.
*/
package tsnnhome
