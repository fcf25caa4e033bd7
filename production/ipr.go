// Copyright 2020 The Petrocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package production implements inflow performance relationships (IPR):
// rate versus flowing bottomhole pressure.
//  References:
//   [1] Vogel JV (1968) Inflow performance relationships for solution-gas
//       drive wells. Journal of Petroleum Technology, 20(1), 83-92
package production

import "github.com/Farzad0514/petrocalc/check"

// Vogel curvature constants [1]
const (
	vogelLin  = 0.2
	vogelQuad = 0.8
)

// VogelRate computes the oil rate [STB/day] of a solution-gas drive well
// with Vogel's dimensionless IPR [1]:
//  q = qmax・(1 - 0.2・(pwf/pr) - 0.8・(pwf/pr)²)
//  Input:
//   pr   -- average reservoir pressure [psia]; must be positive
//   pwf  -- flowing bottomhole pressure [psia]; 0 to pr
//   qmax -- rate at zero bottomhole pressure (AOF) [STB/day]; must be positive
func VogelRate(pr, pwf, qmax float64) (float64, error) {
	if err := check.Positive("pr", pr); err != nil {
		return 0, err
	}
	if err := check.NonNegative("pwf", pwf); err != nil {
		return 0, err
	}
	if pwf > pr {
		return 0, check.Invalid("pwf", pwf, "exceeds reservoir pressure pr = %v", pr)
	}
	if err := check.Positive("qmax", qmax); err != nil {
		return 0, err
	}
	x := pwf / pr
	return qmax * (1.0 - vogelLin*x - vogelQuad*x*x), nil
}

// VogelMaxRate computes the absolute open flow potential [STB/day] from a
// single flowing test point, inverting Vogel's IPR [1]
//  Input:
//   q   -- tested rate [STB/day]; must be positive
//   pr  -- average reservoir pressure [psia]; must be positive
//   pwf -- tested bottomhole pressure [psia]; 0 to pr, strictly below pr
func VogelMaxRate(q, pr, pwf float64) (float64, error) {
	if err := check.Positive("q", q); err != nil {
		return 0, err
	}
	if err := check.Positive("pr", pr); err != nil {
		return 0, err
	}
	if err := check.NonNegative("pwf", pwf); err != nil {
		return 0, err
	}
	if pwf >= pr {
		return 0, check.Invalid("pwf", pwf, "must be strictly below reservoir pressure pr = %v", pr)
	}
	x := pwf / pr
	return q / (1.0 - vogelLin*x - vogelQuad*x*x), nil
}

// ProductivityIndex computes the straight-line productivity index
// J [STB/day/psi] from a flowing test point
//  Input:
//   q   -- tested rate [STB/day]; must be positive
//   pr  -- average reservoir pressure [psia]; must be positive
//   pwf -- tested bottomhole pressure [psia]; strictly below pr
func ProductivityIndex(q, pr, pwf float64) (float64, error) {
	if err := check.Positive("q", q); err != nil {
		return 0, err
	}
	if err := check.Positive("pr", pr); err != nil {
		return 0, err
	}
	if err := check.NonNegative("pwf", pwf); err != nil {
		return 0, err
	}
	if pwf >= pr {
		return 0, check.Invalid("pwf", pwf, "must be strictly below reservoir pressure pr = %v", pr)
	}
	return q / (pr - pwf), nil
}

// DarcyRate computes the single-phase (above bubble point) inflow rate
// [STB/day] from a productivity index
//  Input:
//   j   -- productivity index [STB/day/psi]; must be positive
//   pr  -- average reservoir pressure [psia]; must be positive
//   pwf -- flowing bottomhole pressure [psia]; 0 to pr
func DarcyRate(j, pr, pwf float64) (float64, error) {
	if err := check.Positive("j", j); err != nil {
		return 0, err
	}
	if err := check.Positive("pr", pr); err != nil {
		return 0, err
	}
	if err := check.NonNegative("pwf", pwf); err != nil {
		return 0, err
	}
	if pwf > pr {
		return 0, check.Invalid("pwf", pwf, "exceeds reservoir pressure pr = %v", pr)
	}
	return j * (pr - pwf), nil
}

// CompositeRate computes the inflow rate [STB/day] of an undersaturated
// reservoir: straight-line Darcy inflow above the bubble point and a Vogel
// curve below it [1]
//  Input:
//   j   -- productivity index [STB/day/psi]; must be positive
//   pr  -- average reservoir pressure [psia]; must be positive
//   pb  -- bubble-point pressure [psia]; 0 to pr
//   pwf -- flowing bottomhole pressure [psia]; 0 to pr
func CompositeRate(j, pr, pb, pwf float64) (float64, error) {
	if err := check.Positive("j", j); err != nil {
		return 0, err
	}
	if err := check.Positive("pr", pr); err != nil {
		return 0, err
	}
	if err := check.NonNegative("pb", pb); err != nil {
		return 0, err
	}
	if pb > pr {
		return 0, check.Invalid("pb", pb, "exceeds reservoir pressure pr = %v", pr)
	}
	if err := check.NonNegative("pwf", pwf); err != nil {
		return 0, err
	}
	if pwf > pr {
		return 0, check.Invalid("pwf", pwf, "exceeds reservoir pressure pr = %v", pr)
	}
	if pwf >= pb {
		return j * (pr - pwf), nil
	}
	qb := j * (pr - pb)
	x := pwf / pb
	return qb + j*pb/1.8*(1.0-vogelLin*x-vogelQuad*x*x), nil
}
