// Copyright 2020 The Petrocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package econ

import (
	"math"
	"testing"

	"github.com/Farzad0514/petrocalc/check"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
)

func Test_npv01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("npv01. net present value")

	cf := []float64{500, 400, 300, 200}

	v, err := NPV(cf, 0.1, 1000)
	if err != nil {
		tst.Errorf("NPV failed: %v\n", err)
		return
	}
	io.Pforan("NPV = %v\n", v)
	chk.Float64(tst, "NPV at 10%", 1e-9, v, 147.12109828563598)

	// zero rate degenerates to the plain sum
	v, err = NPV(cf, 0, 1000)
	if err != nil {
		tst.Errorf("NPV failed at zero rate: %v\n", err)
		return
	}
	chk.Float64(tst, "NPV at 0%", 1e-12, v, 400.0)

	if _, err := NPV(nil, 0.1, 1000); err == nil {
		tst.Errorf("NPV accepted an empty sequence\n")
		return
	}
	if _, err := NPV(cf, -1.5, 1000); err == nil {
		tst.Errorf("NPV accepted a rate below -1\n")
		return
	}
}

func Test_npv02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("npv02. NPV decreases with the rate (random sequences)")

	rnd.Init(1234)

	for sample := 0; sample < 50; sample++ {
		n := 2 + sample%8
		cf := make([]float64, n)
		for i := range cf {
			cf[i] = rnd.Float64(0, 100)
		}
		inv := rnd.Float64(0, 500)
		prevRate := -0.5
		prev, err := NPV(cf, prevRate, inv)
		if err != nil {
			tst.Errorf("NPV failed: %v\n", err)
			return
		}
		for k := 0; k < 10; k++ {
			rate := prevRate + rnd.Float64(0.01, 1.0)
			v, err := NPV(cf, rate, inv)
			if err != nil {
				tst.Errorf("NPV failed: %v\n", err)
				return
			}
			if v >= prev {
				tst.Errorf("NPV must decrease with the rate: NPV(%v)=%v >= NPV(%v)=%v\n", rate, v, prevRate, prev)
				return
			}
			prevRate, prev = rate, v
		}
	}
}

func Test_irr01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("irr01. internal rate of return")

	cf := []float64{500, 400, 300, 200}

	r, err := IRR(cf, 1000)
	if err != nil {
		tst.Errorf("IRR failed: %v\n", err)
		return
	}
	io.Pforan("IRR = %v\n", r)
	chk.Float64(tst, "IRR", 1e-8, r, 0.17804746059594778)

	// round trip: the NPV at the IRR vanishes
	v, err := NPV(cf, r, 1000)
	if err != nil {
		tst.Errorf("NPV failed: %v\n", err)
		return
	}
	chk.Float64(tst, "NPV at IRR", 1e-8, v, 0.0)

	// all outflows: NPV never changes sign in the bracket
	_, err = IRR([]float64{-100, -50}, 1000)
	if err == nil {
		tst.Errorf("IRR accepted an all-negative sequence\n")
		return
	}
	if _, ok := err.(*check.DomainError); !ok {
		tst.Errorf("no sign change did not surface as a *check.DomainError: %T\n", err)
		return
	}
	io.Pforan("no sign change: %v\n", err)
}

func Test_irr02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("irr02. IRR round trip on random projects")

	rnd.Init(5678)

	for sample := 0; sample < 50; sample++ {
		n := 3 + sample%6
		cf := make([]float64, n)
		total := 0.0
		for i := range cf {
			cf[i] = rnd.Float64(50, 300)
			total += cf[i]
		}
		// invest less than the undiscounted total so a root exists in
		// the bracket
		inv := rnd.Float64(0.2, 0.8) * total
		r, err := IRR(cf, inv)
		if err != nil {
			tst.Errorf("IRR failed: %v\n", err)
			return
		}
		v, err := NPV(cf, r, inv)
		if err != nil {
			tst.Errorf("NPV failed: %v\n", err)
			return
		}
		if math.Abs(v) > 1e-8 {
			tst.Errorf("NPV at the IRR must vanish: %v\n", v)
			return
		}
	}
}

func Test_payback01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("payback01. discounted payback")

	cf := []float64{500, 400, 300, 200}

	// the cumulative discounted sum turns positive inside period 3
	p, err := DiscountedPayback(cf, 0.1, 1000)
	if err != nil {
		tst.Errorf("DiscountedPayback failed: %v\n", err)
		return
	}
	io.Pforan("payback = %v periods\n", p)
	chk.Float64(tst, "discounted payback", 1e-10, p, 2.953333333333334)

	// undiscounted: 500+400 = 900, crossing 100 into period 3
	p, err = SimplePayback(cf, 1000)
	if err != nil {
		tst.Errorf("SimplePayback failed: %v\n", err)
		return
	}
	chk.Float64(tst, "simple payback", 1e-12, p, 2.0+100.0/300.0)

	// nothing to recover
	p, err = DiscountedPayback(cf, 0.1, 0)
	if err != nil {
		tst.Errorf("DiscountedPayback failed with zero investment: %v\n", err)
		return
	}
	chk.Float64(tst, "zero investment", 1e-15, p, 0.0)
}

func Test_payback02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("payback02. payback never achieved")

	// heavy discounting keeps the cumulative sum below zero forever
	_, err := DiscountedPayback([]float64{500, 400, 300, 200}, 2.5, 1000)
	if err == nil {
		tst.Errorf("DiscountedPayback recovered an unrecoverable investment\n")
		return
	}
	perr, ok := err.(*PaybackNeverAchievedError)
	if !ok {
		tst.Errorf("error is not a *PaybackNeverAchievedError: %T\n", err)
		return
	}
	if perr.Shortfall <= 0 {
		tst.Errorf("shortfall must be positive: %v\n", perr.Shortfall)
		return
	}
	io.Pforan("never achieved: %v\n", err)
}

func Test_pi01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pi01. profitability index")

	cf := []float64{500, 400, 300, 200}

	pi, err := ProfitabilityIndex(cf, 0.1, 1000)
	if err != nil {
		tst.Errorf("ProfitabilityIndex failed: %v\n", err)
		return
	}
	chk.Float64(tst, "PI", 1e-10, pi, 1.147121098285636)

	// at the IRR the index is one
	r, err := IRR(cf, 1000)
	if err != nil {
		tst.Errorf("IRR failed: %v\n", err)
		return
	}
	pi, err = ProfitabilityIndex(cf, r, 1000)
	if err != nil {
		tst.Errorf("ProfitabilityIndex failed: %v\n", err)
		return
	}
	chk.Float64(tst, "PI at IRR", 1e-8, pi, 1.0)
}
