// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import "github.com/goki/ki/kit"

// ReceptorClasses are the functional classes of cutaneous mechanoreceptors,
// which determine both the transduction function and the spiking preset.
type ReceptorClasses int

//go:generate stringer -type=ReceptorClasses

var KiT_ReceptorClasses = kit.Enums.AddEnum(ReceptorClassesN, false, nil)

func (ev ReceptorClasses) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *ReceptorClasses) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// SA1 is the slowly-adapting type 1 receptor (Merkel cell endings) -- responds
	// to sustained skin indentation with logarithmic intensity compression, firing
	// tonically for the duration of a pressure stimulus
	SA1 ReceptorClasses = iota

	// RA1 is the rapidly-adapting type 1 receptor (Meissner corpuscles) -- responds
	// to the velocity (first time derivative) of skin deformation, firing at
	// stimulus onset and offset and entraining to low-frequency vibration
	RA1

	// RA2 is the rapidly-adapting type 2 receptor (Pacinian corpuscles) -- responds
	// to the acceleration (second time derivative) of skin deformation, selective
	// for high-frequency vibration
	RA2

	ReceptorClassesN
)
