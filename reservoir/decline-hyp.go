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

// Hyperbolic implements the Arps hyperbolic decline (0 < b < 1)
type Hyperbolic struct {
	qi float64 // initial rate [vol/day]
	di float64 // nominal decline rate [1/day]
	b  float64 // decline exponent [-]
}

// add model to factory
func init() {
	allocators["hyp"] = func() Model { return new(Hyperbolic) }
}

// Init initialises model
func (o *Hyperbolic) Init(prms utl.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "qi":
			o.qi = p.V
		case "di":
			o.di = p.V
		case "b":
			o.b = p.V
		default:
			return chk.Err("hyp: parameter named %q is incorrect\n", p.N)
		}
	}
	if err = check.Positive("qi", o.qi); err != nil {
		return
	}
	if err = check.Positive("di", o.di); err != nil {
		return
	}
	if o.b <= 0 || o.b >= 1 {
		return check.Invalid("b", o.b, "must be strictly between 0 and 1; use models \"exp\" or \"har\" for the limits")
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Hyperbolic) GetPrms(example bool) utl.Params {
	if example {
		return utl.Params{
			&utl.P{N: "qi", V: 1000}, // [vol/day]
			&utl.P{N: "di", V: 0.3},  // [1/day]
			&utl.P{N: "b", V: 0.5},   // [-]
		}
	}
	return utl.Params{
		&utl.P{N: "qi", V: o.qi},
		&utl.P{N: "di", V: o.di},
		&utl.P{N: "b", V: o.b},
	}
}

// Rate computes the rate at time t
func (o Hyperbolic) Rate(t float64) float64 {
	return o.qi * math.Pow(1.0+o.b*o.di*t, -1.0/o.b)
}

// Cumulative computes the cumulative production from 0 to t
func (o Hyperbolic) Cumulative(t float64) float64 {
	q := o.Rate(t)
	return math.Pow(o.qi, o.b) / (o.di * (1.0 - o.b)) *
		(math.Pow(o.qi, 1.0-o.b) - math.Pow(q, 1.0-o.b))
}
