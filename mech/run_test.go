// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import (
	"testing"

	"github.com/emer/etable/v2/etable"
	"github.com/goki/mat32"
)

func TestRunTrajTable(t *testing.T) {
	pr := NewPressTest(50)
	rc := New(SA1, mat32.Vec2{})
	dt := &etable.Table{}
	ConfigTrajTable(dt)

	nspk := Run(rc, pr, dt, 1000, 1)
	if dt.Rows != 1000 {
		t.Fatalf("trajectory rows: %v != 1000\n", dt.Rows)
	}
	if dt.CellFloat("Time", 0) != 0 || dt.CellFloat("Time", 999) != 999 {
		t.Errorf("trajectory times: %v .. %v\n", dt.CellFloat("Time", 0), dt.CellFloat("Time", 999))
	}
	spksum := 0
	for i := 0; i < dt.Rows; i++ {
		spksum += int(dt.CellFloat("Spike", i))
	}
	if spksum != nspk {
		t.Errorf("recorded spike flags %v != spike count %v\n", spksum, nspk)
	}
	// before onset everything is at rest
	if dt.CellFloat("Stim", 100) != 0 || dt.CellFloat("I", 100) != 0 {
		t.Errorf("pre-onset stim / current not zero: %v %v\n", dt.CellFloat("Stim", 100), dt.CellFloat("I", 100))
	}
	// during the plateau the stimulus is at full amplitude
	if dt.CellFloat("Stim", 500) != 50 {
		t.Errorf("plateau stim: %v != 50\n", dt.CellFloat("Stim", 500))
	}
	// recorded Vm stays in the physical range between reset and threshold
	for i := 0; i < dt.Rows; i++ {
		vm := dt.CellFloat("Vm", i)
		if vm > 30 || vm < -100 {
			t.Errorf("Vm out of range at row %v: %v\n", i, vm)
		}
	}
}

func TestRunStepGrid(t *testing.T) {
	// Run uses the grid t = i * dt, so a dt of 0.5 over 10 msec gives 20 steps
	pr := NewPressTest(50)
	rc := New(SA1, mat32.Vec2{})
	dt := &etable.Table{}
	ConfigTrajTable(dt)
	Run(rc, pr, dt, 10, 0.5)
	if dt.Rows != 20 {
		t.Fatalf("rows at dt=0.5: %v != 20\n", dt.Rows)
	}
	if dt.CellFloat("Time", 3) != 1.5 {
		t.Errorf("time at step 3: %v != 1.5\n", dt.CellFloat("Time", 3))
	}
}
