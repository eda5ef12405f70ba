// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import (
	"fmt"
	"strings"
	"sync"
	"unsafe"

	"github.com/c2h5oh/datasize"
	"github.com/goki/mat32"

	"github.com/JHKim-ETRI/tsnnhome/stim"
)

// Pop is a population of receptors stepped together over a shared stimulus,
// optionally in parallel across goroutines.  Receptors are independent so
// parallel and sequential stepping produce identical results.
type Pop struct {
	Rcps     []*Receptor    `desc:"the receptors in this population"`
	NThreads int            `desc:"number of goroutines to use for stepping -- 0 or 1 = sequential"`
	WaitGp   sync.WaitGroup `view:"-" desc:"synchronization for parallel stepping"`
}

// Add appends a receptor to the population.
func (pp *Pop) Add(rc *Receptor) {
	pp.Rcps = append(pp.Rcps, rc)
}

// AddGrid adds an n x n grid of receptors of the given class covering a
// square skin patch of the given extent (mm), centered on the origin.
// n = 1 places a single receptor at the origin.
func (pp *Pop) AddGrid(class ReceptorClasses, n int, extent float32) {
	if n <= 0 {
		return
	}
	if n == 1 {
		pp.Add(New(class, mat32.Vec2{}))
		return
	}
	sp := extent / float32(n-1)
	off := extent / 2
	for yi := 0; yi < n; yi++ {
		for xi := 0; xi < n; xi++ {
			loc := mat32.Vec2{X: float32(xi)*sp - off, Y: float32(yi)*sp - off}
			pp.Add(New(class, loc))
		}
	}
}

// StepAll advances every receptor by one step of size dt (msec) at time t
// (msec) against the given stimulus, using NThreads goroutines over even
// chunks of the population when NThreads > 1.
func (pp *Pop) StepAll(st stim.Stimulus, dt, t float32) {
	nt := pp.NThreads
	n := len(pp.Rcps)
	if nt <= 1 || n < nt {
		for _, rc := range pp.Rcps {
			rc.Step(st, dt, t)
		}
		return
	}
	ch := (n + nt - 1) / nt
	for ti := 0; ti < nt; ti++ {
		lo := ti * ch
		hi := lo + ch
		if hi > n {
			hi = n
		}
		if lo >= hi {
			break
		}
		pp.WaitGp.Add(1)
		go func(rcs []*Receptor) {
			for _, rc := range rcs {
				rc.Step(st, dt, t)
			}
			pp.WaitGp.Done()
		}(pp.Rcps[lo:hi])
	}
	pp.WaitGp.Wait()
}

// ResetAll reinitializes the dynamic state of every receptor.
func (pp *Pop) ResetAll() {
	for _, rc := range pp.Rcps {
		rc.Reset()
	}
}

// SizeReport returns a string reporting the number of receptors and spikes
// per class and the total memory footprint of the population.
func (pp *Pop) SizeReport() string {
	var b strings.Builder
	nrc := make([]int, ReceptorClassesN)
	nspk := make([]int, ReceptorClassesN)
	mem := 0
	for _, rc := range pp.Rcps {
		nrc[rc.Typ]++
		nspk[rc.Typ] += rc.Spikes.Len()
		mem += int(unsafe.Sizeof(*rc)) + 4*cap(rc.Spikes.Times)
	}
	for cl := SA1; cl < ReceptorClassesN; cl++ {
		if nrc[cl] == 0 {
			continue
		}
		fmt.Fprintf(&b, "%4s:\t Receptors: %d\t Spikes: %d\n", cl.String(), nrc[cl], nspk[cl])
	}
	fmt.Fprintf(&b, "Total:\t Receptors: %d\t Mem: %v\n", len(pp.Rcps), (datasize.ByteSize)(mem).HumanReadable())
	return b.String()
}
