// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package mech implements cutaneous mechanoreceptor models that convert skin
stimulus fields into spike trains.

Each Receptor combines a skin location, class-specific transduction of the
stimulus into an input current, and an Izhikevich spiking neuron that
integrates that current.  Three receptor classes are supported:

  - SA1 (slowly adapting type 1, Merkel): responds to sustained indentation,
    with logarithmic compression of stimulus intensity and a regular spiking
    neuron, producing tonic firing for the duration of a pressure stimulus.
  - RA1 (rapidly adapting type 1, Meissner): responds to stimulus velocity
    (first time derivative), with a fast spiking neuron, producing firing at
    stimulus onset, offset, and during low-frequency vibration.
  - RA2 (rapidly adapting type 2, Pacinian): responds to stimulus
    acceleration (second time derivative), with a fast spiking neuron,
    selective for high-frequency vibration.

Populations of receptors (Pop) can be stepped together across a shared
stimulus, in parallel across goroutines.  Run records full state
trajectories into an etable.Table for analysis and plotting.
*/
package mech
