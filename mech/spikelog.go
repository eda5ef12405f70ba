// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

// SpikeLog records spike times in msec.  With Max = 0 (the default) all
// spikes are kept.  With Max > 0 only the most recent Max spikes are
// retained, in a ring buffer, which bounds memory for long runs.
type SpikeLog struct {
	Max   int       `desc:"maximum number of spikes to retain -- 0 = unbounded"`
	Times []float32 `view:"-" desc:"spike times -- a ring once at capacity, use Seq for chronological order"`
	St    int       `view:"-" desc:"ring index of the oldest recorded spike"`
}

// Reset clears all recorded spikes, preserving Max.
func (sl *SpikeLog) Reset() {
	sl.Times = sl.Times[:0]
	sl.St = 0
}

// Add records a spike at time t (msec), evicting the oldest spike if the
// log is at capacity.
func (sl *SpikeLog) Add(t float32) {
	if sl.Max <= 0 || len(sl.Times) < sl.Max {
		sl.Times = append(sl.Times, t)
		return
	}
	sl.Times[sl.St] = t
	sl.St++
	if sl.St >= sl.Max {
		sl.St = 0
	}
}

// Len returns the number of recorded spikes.
func (sl *SpikeLog) Len() int {
	return len(sl.Times)
}

// Seq returns the recorded spike times in chronological order.  The
// returned slice is the internal one when no eviction has occurred, and a
// copy otherwise.
func (sl *SpikeLog) Seq() []float32 {
	if sl.St == 0 {
		return sl.Times
	}
	seq := make([]float32, 0, len(sl.Times))
	seq = append(seq, sl.Times[sl.St:]...)
	seq = append(seq, sl.Times[:sl.St]...)
	return seq
}
