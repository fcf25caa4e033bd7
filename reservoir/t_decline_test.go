// Copyright 2020 The Petrocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reservoir

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_decline01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("decline01. Arps branches")

	qi, di, t := 1000.0, 0.3, 2.0

	q, err := ArpsRate(qi, di, 0, t)
	if err != nil {
		tst.Errorf("ArpsRate failed: %v\n", err)
		return
	}
	chk.Float64(tst, "exponential", 1e-10, q, 548.8116360940264)

	q, err = ArpsRate(qi, di, 1, t)
	if err != nil {
		tst.Errorf("ArpsRate failed: %v\n", err)
		return
	}
	chk.Float64(tst, "harmonic", 1e-10, q, 625.0)

	q, err = ArpsRate(qi, di, 0.5, t)
	if err != nil {
		tst.Errorf("ArpsRate failed: %v\n", err)
		return
	}
	chk.Float64(tst, "hyperbolic", 1e-10, q, 591.7159763313609)

	// rate at time zero equals the initial rate on all branches
	for _, b := range []float64{0, 0.3, 0.5, 0.8, 1} {
		q, err = ArpsRate(qi, di, b, 0)
		if err != nil {
			tst.Errorf("ArpsRate failed at t=0: %v\n", err)
			return
		}
		chk.Float64(tst, io.Sf("q(0) at b=%g", b), 1e-15, q, qi)
	}

	// exponent bounds
	if _, err := ArpsRate(qi, di, -0.1, t); err == nil {
		tst.Errorf("ArpsRate accepted b < 0\n")
		return
	}
	if _, err := ArpsRate(qi, di, 1.2, t); err == nil {
		tst.Errorf("ArpsRate accepted b > 1\n")
		return
	}
}

func Test_decline02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("decline02. decline model database")

	names := []string{"exp", "hyp", "har"}
	rates := []float64{548.8116360940264, 591.7159763313609, 625.0}
	cumul := []float64{1503.961213019912, 1538.4615384615386, 1566.6787641524522}

	for i, name := range names {
		mdl, err := New(name)
		if err != nil {
			tst.Errorf("New failed: %v\n", err)
			return
		}
		err = mdl.Init(mdl.GetPrms(true))
		if err != nil {
			tst.Errorf("cannot initialise model: %v\n", err)
			return
		}
		chk.Float64(tst, name+": q(0)", 1e-15, mdl.Rate(0), 1000.0)
		chk.Float64(tst, name+": q(2)", 1e-10, mdl.Rate(2), rates[i])
		chk.Float64(tst, name+": Np(2)", 1e-9, mdl.Cumulative(2), cumul[i])
		chk.Float64(tst, name+": Np(0)", 1e-15, mdl.Cumulative(0), 0.0)
	}

	if _, err := New("linear"); err == nil {
		tst.Errorf("New accepted an unknown model name\n")
		return
	}

	// bad parameters
	mdl, err := New("hyp")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(utl.Params{
		&utl.P{N: "qi", V: 1000},
		&utl.P{N: "di", V: 0.3},
		&utl.P{N: "b", V: 1.0},
	})
	if err == nil {
		tst.Errorf("hyperbolic model accepted b = 1\n")
		return
	}
	err = mdl.Init(utl.Params{&utl.P{N: "slope", V: 1}})
	if err == nil {
		tst.Errorf("Init accepted an unknown parameter name\n")
		return
	}

	if chk.Verbose {
		T := utl.LinSpace(0, 10, 11)
		for _, name := range names {
			m, _ := New(name)
			m.Init(m.GetPrms(true))
			io.Pf("%s:", name)
			for _, t := range T {
				io.Pf(" %8.2f", m.Rate(t))
			}
			io.Pf("\n")
		}
	}
}

func Test_decline03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("decline03. time to cumulative target")

	mdl, err := New("exp")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}

	// round trip: the time at which Np(2) is reached is 2
	target := mdl.Cumulative(2)
	t, err := TimeToCumulative(mdl, target, 1.0)
	if err != nil {
		tst.Errorf("TimeToCumulative failed: %v\n", err)
		return
	}
	io.Pforan("t = %v days\n", t)
	chk.Float64(tst, "time to target", 1e-8, t, 2.0)

	// a target beyond the ultimate recovery (qi/di) is unreachable
	_, err = TimeToCumulative(mdl, 5000, 1.0)
	if err == nil {
		tst.Errorf("TimeToCumulative accepted a target beyond the ultimate recovery\n")
		return
	}
	io.Pforan("unreachable target: %v\n", err)
}
