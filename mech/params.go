// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import "github.com/emer/emergent/v2/params"

// params.Styler interface methods

// Name returns the receptor name, for #Name parameter selectors.
func (rc *Receptor) Name() string { return rc.Nm }

// Label satisfies the gui label interface.
func (rc *Receptor) Label() string { return rc.Nm }

// TypeName returns the type category for parameter styling, to match
// against plain "Receptor" selectors.
func (rc *Receptor) TypeName() string { return "Receptor" }

// Class returns the receptor class name plus any additional class tags,
// so param selectors like ".SA1" target all receptors of one class.
func (rc *Receptor) Class() string { return rc.Typ.String() + " " + rc.Cls }

// SetClass sets additional class tag(s) for parameter styling.
func (rc *Receptor) SetClass(cls string) { rc.Cls = cls }

// SetName sets the receptor name.
func (rc *Receptor) SetName(nm string) { rc.Nm = nm }

// ApplyParams applies given parameter style Sheet to this receptor.
// Calls UpdateParams if anything was set, to ensure derived parameters
// are all updated.  If setMsg is true, then a message is printed to
// confirm each parameter that is set.  It always prints a message if a
// parameter fails to be set.  Returns true if any params were set, and
// error if there were any errors.
func (rc *Receptor) ApplyParams(pars *params.Sheet, setMsg bool) (bool, error) {
	app, err := pars.Apply(rc, setMsg)
	if app {
		rc.UpdateParams()
	}
	return app, err
}

// ApplyParams applies given parameter style Sheet to all receptors in
// the population.
func (pp *Pop) ApplyParams(pars *params.Sheet, setMsg bool) (bool, error) {
	applied := false
	var rerr error
	for _, rc := range pp.Rcps {
		app, err := rc.ApplyParams(pars, setMsg)
		if app {
			applied = true
		}
		if err != nil {
			rerr = err
		}
	}
	return applied, rerr
}
