// Copyright 2020 The Petrocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package econ implements discounted-cash-flow metrics for project
// screening: NPV, IRR, payback and the profitability index. Cash-flow
// sequences are ordered by period: index 0 is the flow received at the end
// of period 1, not at time 0; the initial investment is a separate input
// paid at time 0.
package econ

import (
	"math"

	"github.com/Farzad0514/petrocalc/check"
	"github.com/Farzad0514/petrocalc/roots"
	"github.com/cpmech/gosl/io"
)

// IRR search bracket and solver settings; the bracket is scanned in fixed
// steps so the iteration path is deterministic
const (
	irrRateLo  = -0.99
	irrRateHi  = 10.0
	irrScanDiv = 64
	irrTol     = 1e-9
	irrMaxIt   = 200
)

// PaybackNeverAchievedError indicates that the cumulative discounted cash
// flow never recovers the initial investment
type PaybackNeverAchievedError struct {
	Investment float64 // initial investment
	Shortfall  float64 // outstanding balance after the last period
}

// Error returns the message
func (o *PaybackNeverAchievedError) Error() string {
	return io.Sf("payback never achieved: investment %g is short by %g after the last period",
		o.Investment, o.Shortfall)
}

// NPV computes the net present value of a cash-flow sequence:
//  NPV = -I0 + Σ CFt/(1+r)^t,  t = 1...n
//  Input:
//   cashFlows  -- one cash flow per period, ordered; must not be empty
//   rate       -- periodic discount rate [fraction]; must be above -1
//   investment -- initial investment paid at time 0; must not be negative
func NPV(cashFlows []float64, rate, investment float64) (float64, error) {
	if len(cashFlows) == 0 {
		return 0, check.Invalid("cashFlows", 0, "sequence must not be empty")
	}
	if rate <= -1 {
		return 0, check.Invalid("rate", rate, "must be greater than -1")
	}
	if err := check.NonNegative("investment", investment); err != nil {
		return 0, err
	}
	return npv(cashFlows, rate, investment), nil
}

// npv computes the net present value without validation; shared by the
// public function and the IRR objective
func npv(cashFlows []float64, rate, investment float64) float64 {
	v := -investment
	d := 1.0
	for _, cf := range cashFlows {
		d *= 1.0 + rate
		v += cf / d
	}
	return v
}

// IRR computes the internal rate of return: the discount rate at which the
// NPV of the sequence is zero. The bracket [-0.99, 10] is scanned in fixed
// steps for a sign change and the enclosing interval is bisected; a
// *check.DomainError is returned when NPV does not change sign anywhere in
// the bracket (e.g. all cash flows negative).
//  Input:
//   cashFlows  -- one cash flow per period, ordered; must not be empty
//   investment -- initial investment paid at time 0; must not be negative
func IRR(cashFlows []float64, investment float64) (float64, error) {
	if len(cashFlows) == 0 {
		return 0, check.Invalid("cashFlows", 0, "sequence must not be empty")
	}
	if err := check.NonNegative("investment", investment); err != nil {
		return 0, err
	}
	f := func(rate float64) float64 { return npv(cashFlows, rate, investment) }
	step := (irrRateHi - irrRateLo) / irrScanDiv
	lo := irrRateLo
	flo := f(lo)
	if math.Abs(flo) < irrTol {
		return lo, nil
	}
	for i := 1; i <= irrScanDiv; i++ {
		hi := irrRateLo + float64(i)*step
		fhi := f(hi)
		if math.Abs(fhi) < irrTol {
			return hi, nil
		}
		if (flo < 0) != (fhi < 0) {
			rate, _, err := roots.Bisection(f, lo, hi, irrTol, irrMaxIt)
			return rate, err
		}
		lo, flo = hi, fhi
	}
	return 0, check.Invalid("cashFlows", investment,
		"NPV does not change sign for rates in [%g, %g]: no internal rate of return", irrRateLo, irrRateHi)
}

// DiscountedPayback computes the time [periods, fractional] at which the
// cumulative discounted cash flow recovers the initial investment, with
// linear interpolation inside the crossing period. A
// *PaybackNeverAchievedError is returned when the cumulative sum never
// turns non-negative.
//  Input:
//   cashFlows  -- one cash flow per period, ordered; must not be empty
//   rate       -- periodic discount rate [fraction]; must be above -1
//   investment -- initial investment paid at time 0; must not be negative
func DiscountedPayback(cashFlows []float64, rate, investment float64) (float64, error) {
	if len(cashFlows) == 0 {
		return 0, check.Invalid("cashFlows", 0, "sequence must not be empty")
	}
	if rate <= -1 {
		return 0, check.Invalid("rate", rate, "must be greater than -1")
	}
	if err := check.NonNegative("investment", investment); err != nil {
		return 0, err
	}
	cum := -investment
	if cum >= 0 {
		return 0, nil
	}
	d := 1.0
	for t, cf := range cashFlows {
		d *= 1.0 + rate
		disc := cf / d
		prev := cum
		cum += disc
		if cum >= 0 {
			return float64(t) - prev/disc, nil
		}
	}
	return 0, &PaybackNeverAchievedError{Investment: investment, Shortfall: -cum}
}

// SimplePayback computes the undiscounted payback time [periods,
// fractional]; equivalent to DiscountedPayback at a zero discount rate
func SimplePayback(cashFlows []float64, investment float64) (float64, error) {
	return DiscountedPayback(cashFlows, 0, investment)
}

// ProfitabilityIndex computes the present value of the cash flows per unit
// of investment:
//  PI = (NPV + I0) / I0
//  Input:
//   cashFlows  -- one cash flow per period, ordered; must not be empty
//   rate       -- periodic discount rate [fraction]; must be above -1
//   investment -- initial investment paid at time 0; must be positive
func ProfitabilityIndex(cashFlows []float64, rate, investment float64) (float64, error) {
	if err := check.Positive("investment", investment); err != nil {
		return 0, err
	}
	v, err := NPV(cashFlows, rate, investment)
	if err != nil {
		return 0, err
	}
	return (v + investment) / investment, nil
}
