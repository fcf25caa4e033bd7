// Copyright 2020 The Petrocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flow implements single-phase pipe-flow formulas in SI units:
// densities in kg/m³, velocities in m/s, diameters in m, viscosities in
// Pa·s, pressures in Pa.
//  References:
//   [1] Colebrook CF (1939) Turbulent flow in pipes, with particular
//       reference to the transition region between the smooth and rough
//       pipe laws. Journal of the ICE, 11(4), 133-156
package flow

import (
	"math"

	"github.com/Farzad0514/petrocalc/check"
	"github.com/Farzad0514/petrocalc/roots"
)

// flow-regime limits for the Darcy friction factor
const (
	laminarReMax   = 2100.0
	turbulentReMin = 4000.0
)

// bracket for the turbulent Darcy friction factor
const (
	frictionLo = 0.005
	frictionHi = 0.12
)

// ReynoldsNumber computes the Reynolds number of pipe flow
//  Input:
//   rho  -- fluid density [kg/m³]; must be positive
//   vel  -- mean velocity [m/s]; must be positive
//   diam -- pipe inner diameter [m]; must be positive
//   visc -- dynamic viscosity [Pa·s]; must be positive
func ReynoldsNumber(rho, vel, diam, visc float64) (float64, error) {
	if err := check.Positive("rho", rho); err != nil {
		return 0, err
	}
	if err := check.Positive("vel", vel); err != nil {
		return 0, err
	}
	if err := check.Positive("diam", diam); err != nil {
		return 0, err
	}
	if err := check.Positive("visc", visc); err != nil {
		return 0, err
	}
	return rho * vel * diam / visc, nil
}

// MeanVelocity computes the mean velocity [m/s] of a volumetric rate
// through a circular pipe
//  Input:
//   rate -- volumetric flow rate [m³/s]; must be positive
//   diam -- pipe inner diameter [m]; must be positive
func MeanVelocity(rate, diam float64) (float64, error) {
	if err := check.Positive("rate", rate); err != nil {
		return 0, err
	}
	if err := check.Positive("diam", diam); err != nil {
		return 0, err
	}
	return 4.0 * rate / (math.Pi * diam * diam), nil
}

// ColebrookWhite computes the turbulent Darcy friction factor by solving
// the implicit Colebrook-White equation [1] with bisection:
//  1/√f = -2・log10( ε/D/3.7 + 2.51/(Re・√f) )
//  Input:
//   re       -- Reynolds number; must be at least 4000
//   relRough -- relative roughness ε/D [-]; 0 to 0.05
func ColebrookWhite(re, relRough float64) (float64, error) {
	if err := check.Range("re", re, turbulentReMin, math.Inf(1)); err != nil {
		return 0, err
	}
	if err := check.Range("relRough", relRough, 0, 0.05); err != nil {
		return 0, err
	}
	g := func(f float64) float64 {
		s := math.Sqrt(f)
		return 1.0/s + 2.0*math.Log10(relRough/3.7+2.51/(re*s))
	}
	f, _, err := roots.Bisection(g, frictionLo, frictionHi, 1e-10, 200)
	if err != nil {
		return 0, err
	}
	return f, nil
}

// FrictionFactor computes the Darcy friction factor for laminar
// (f = 64/Re) or turbulent (Colebrook-White) pipe flow. The transition
// region 2100 < Re < 4000 has no reliable correlation and is rejected
// with a *check.DomainError.
//  Input:
//   re       -- Reynolds number; must be positive
//   relRough -- relative roughness ε/D [-]; 0 to 0.05
func FrictionFactor(re, relRough float64) (float64, error) {
	if err := check.Positive("re", re); err != nil {
		return 0, err
	}
	if re <= laminarReMax {
		return 64.0 / re, nil
	}
	if re < turbulentReMin {
		return 0, check.Invalid("re", re, "lies in the laminar-turbulent transition region (%g, %g)", laminarReMax, turbulentReMin)
	}
	return ColebrookWhite(re, relRough)
}

// DarcyWeisbachDrop computes the frictional pressure drop [Pa] along a pipe
//  Input:
//   friction -- Darcy friction factor [-]; must be positive
//   length   -- pipe length [m]; must be positive
//   diam     -- pipe inner diameter [m]; must be positive
//   rho      -- fluid density [kg/m³]; must be positive
//   vel      -- mean velocity [m/s]; must be positive
func DarcyWeisbachDrop(friction, length, diam, rho, vel float64) (float64, error) {
	if err := check.Positive("friction", friction); err != nil {
		return 0, err
	}
	if err := check.Positive("length", length); err != nil {
		return 0, err
	}
	if err := check.Positive("diam", diam); err != nil {
		return 0, err
	}
	if err := check.Positive("rho", rho); err != nil {
		return 0, err
	}
	if err := check.Positive("vel", vel); err != nil {
		return 0, err
	}
	return friction * length / diam * rho * vel * vel / 2.0, nil
}
