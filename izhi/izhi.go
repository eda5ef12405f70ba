// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package izhi implements the Izhikevich (2003) simple spiking neuron model,
a two-variable quadratic integrate-and-fire approximation that captures the
major firing regimes of cortical neurons (regular spiking, fast spiking,
bursting, etc.) at very low computational cost.

The model integrates membrane potential Vm and a slow recovery variable U:

	dVm/dt = 0.04 Vm^2 + 5 Vm + 140 - U + I
	dU/dt  = a (b Vm - U)

with forward Euler integration.  When Vm crosses VmThr the neuron emits a
spike, Vm is reset to C and U is incremented by D.  The standard parameter
presets from the 2003 paper are provided via RegularSpiking and FastSpiking.
*/
package izhi

// Params are the Izhikevich neuron equation parameters, which select for
// different qualitative firing regimes.  Defaults are the regular spiking
// (RS) cortical pyramidal preset.
type Params struct {
	A       float32 `def:"0.02" desc:"time scale of the recovery variable U -- smaller values produce slower recovery"`
	B       float32 `def:"0.2,0.25" desc:"sensitivity of recovery variable U to subthreshold fluctuations of Vm -- larger values couple U more strongly to Vm"`
	C       float32 `def:"-65,-60" desc:"after-spike reset value of the membrane potential Vm, in mV"`
	D       float32 `def:"6,4" desc:"after-spike increment of the recovery variable U -- models slow conductances activated by the spike"`
	VmThr   float32 `def:"30" desc:"spike cutoff potential in mV -- when the integrated Vm reaches this value a spike is emitted and the reset is applied"`
	VmReset float32 `def:"-65" desc:"initial resting membrane potential in mV, used by Init -- U starts at B * VmReset"`
}

func (iz *Params) Defaults() {
	iz.A = 0.02
	iz.B = 0.2
	iz.C = -65
	iz.D = 6
	iz.VmThr = 30
	iz.VmReset = -65
	iz.Update()
}

func (iz *Params) Update() {
}

// RegularSpiking sets the RS preset (cortical pyramidal cells):
// b = 0.2, c = -65, d = 6.  This is also the default.
func (iz *Params) RegularSpiking() {
	iz.B = 0.2
	iz.C = -65
	iz.D = 6
}

// FastSpiking sets the FS preset (cortical interneurons):
// b = 0.25, c = -60, d = 4.
func (iz *Params) FastSpiking() {
	iz.B = 0.25
	iz.C = -60
	iz.D = 4
}

// Neuron holds the state variables for one Izhikevich neuron.
type Neuron struct {
	Vm    float32 `desc:"membrane potential in mV"`
	U     float32 `desc:"recovery variable -- accounts for K+ activation and Na+ inactivation"`
	I     float32 `desc:"input current applied on the last step, for recording"`
	Spike float32 `desc:"1 if the neuron spiked on the last step, 0 otherwise"`
}

// Init initializes neuron state to the resting condition:
// Vm = VmReset, U = B * VmReset.
func (iz *Params) Init(nrn *Neuron) {
	nrn.Vm = iz.VmReset
	nrn.U = iz.B * iz.VmReset
	nrn.I = 0
	nrn.Spike = 0
}

// StepFmI advances the neuron state by one Euler step of size dt (msec)
// with input current I.  The derivatives are evaluated on the state from
// before the update.  Returns true if the neuron spiked on this step,
// in which case Vm has been reset to C and U incremented by D.
func (iz *Params) StepFmI(nrn *Neuron, I, dt float32) bool {
	v := nrn.Vm
	u := nrn.U
	dv := (0.04*v*v + 5*v + 140 - u + I) * dt
	du := (iz.A * (iz.B*v - u)) * dt
	nrn.I = I
	nrn.Vm = v + dv
	nrn.U = u + du
	if nrn.Vm >= iz.VmThr {
		nrn.Spike = 1
		nrn.Vm = iz.C
		nrn.U += iz.D
		return true
	}
	nrn.Spike = 0
	return false
}
