// Copyright 2020 The Petrocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reservoir

import (
	"github.com/Farzad0514/petrocalc/check"
	"github.com/Farzad0514/petrocalc/roots"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Model implements an Arps decline-curve model [2]
type Model interface {
	Init(prms utl.Params) error      // initialises decline model
	GetPrms(example bool) utl.Params // gets (an example) of parameters
	Rate(t float64) float64          // rate at time t [vol/day]
	Cumulative(t float64) float64    // cumulative production from 0 to t [vol]
}

// TimeToCumulative finds the time [days] at which the model reaches a
// cumulative production target. Newton's method applies here because the
// derivative of the cumulative integral is the (cheap, monotonic) rate
// itself. An error is returned when the target exceeds the reachable
// ultimate recovery.
func TimeToCumulative(mdl Model, target, tGuess float64) (t float64, err error) {
	if err = check.NonNegative("target", target); err != nil {
		return
	}
	if err = check.NonNegative("tGuess", tGuess); err != nil {
		return
	}
	f := func(t float64) float64 { return mdl.Cumulative(t) - target }
	t, _, err = roots.Newton(f, mdl.Rate, tGuess, 1e-8, 100)
	return
}

// New returns a new decline-curve model
//  Available: "exp" (exponential), "hyp" (hyperbolic), "har" (harmonic)
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("decline model %q is not available in 'reservoir' database", name)
	}
	return allocator(), nil
}

// allocators holds all available decline models
var allocators = map[string]func() Model{}
