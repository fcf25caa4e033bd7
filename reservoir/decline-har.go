// Copyright 2020 The Petrocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reservoir

import (
	"math"

	"github.com/Farzad0514/petrocalc/check"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Harmonic implements the Arps harmonic decline (b = 1)
type Harmonic struct {
	qi float64 // initial rate [vol/day]
	di float64 // nominal decline rate [1/day]
}

// add model to factory
func init() {
	allocators["har"] = func() Model { return new(Harmonic) }
}

// Init initialises model
func (o *Harmonic) Init(prms utl.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "qi":
			o.qi = p.V
		case "di":
			o.di = p.V
		default:
			return chk.Err("har: parameter named %q is incorrect\n", p.N)
		}
	}
	if err = check.Positive("qi", o.qi); err != nil {
		return
	}
	return check.Positive("di", o.di)
}

// GetPrms gets (an example) of parameters
func (o Harmonic) GetPrms(example bool) utl.Params {
	if example {
		return utl.Params{
			&utl.P{N: "qi", V: 1000}, // [vol/day]
			&utl.P{N: "di", V: 0.3},  // [1/day]
		}
	}
	return utl.Params{
		&utl.P{N: "qi", V: o.qi},
		&utl.P{N: "di", V: o.di},
	}
}

// Rate computes the rate at time t
func (o Harmonic) Rate(t float64) float64 {
	return o.qi / (1.0 + o.di*t)
}

// Cumulative computes the cumulative production from 0 to t
func (o Harmonic) Cumulative(t float64) float64 {
	return o.qi / o.di * math.Log(1.0+o.di*t)
}
