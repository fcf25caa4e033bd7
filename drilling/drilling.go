// Copyright 2020 The Petrocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package drilling implements drilling-hydraulics formulas in API field
// units: mud weight in ppg, depth in ft, pressure in psi, flow rate in gpm
package drilling

import "github.com/Farzad0514/petrocalc/check"

// ppgToPsiPerFt converts a mud weight in ppg to a pressure gradient in
// psi/ft (0.052 = 12 in/ft ÷ 231 in³/gal)
const ppgToPsiPerFt = 0.052

// HydrostaticPressure computes the hydrostatic pressure [psi] exerted by a
// static mud column
//  Input:
//   mudWeight -- mud weight [ppg]; must be positive
//   depth     -- true vertical depth [ft]; must not be negative
func HydrostaticPressure(mudWeight, depth float64) (float64, error) {
	if err := check.Positive("mudWeight", mudWeight); err != nil {
		return 0, err
	}
	if err := check.NonNegative("depth", depth); err != nil {
		return 0, err
	}
	return ppgToPsiPerFt * mudWeight * depth, nil
}

// PressureGradient computes the pressure gradient [psi/ft] of a mud
//  Input:
//   mudWeight -- mud weight [ppg]; must be positive
func PressureGradient(mudWeight float64) (float64, error) {
	if err := check.Positive("mudWeight", mudWeight); err != nil {
		return 0, err
	}
	return ppgToPsiPerFt * mudWeight, nil
}

// BalancedMudWeight computes the mud weight [ppg] whose hydrostatic column
// exactly balances a formation pressure at depth
//  Input:
//   formationPressure -- formation pore pressure [psi]; must not be negative
//   depth             -- true vertical depth [ft]; must be positive
func BalancedMudWeight(formationPressure, depth float64) (float64, error) {
	if err := check.NonNegative("formationPressure", formationPressure); err != nil {
		return 0, err
	}
	if err := check.Positive("depth", depth); err != nil {
		return 0, err
	}
	return formationPressure / (ppgToPsiPerFt * depth), nil
}

// EquivalentCirculatingDensity computes the ECD [ppg] seen by the formation
// while circulating: the static mud weight plus the annular friction loss
// expressed as an equivalent density
//  Input:
//   mudWeight   -- static mud weight [ppg]; must be positive
//   annularLoss -- annular friction pressure loss [psi]; must not be negative
//   depth       -- true vertical depth [ft]; must be positive
func EquivalentCirculatingDensity(mudWeight, annularLoss, depth float64) (float64, error) {
	if err := check.Positive("mudWeight", mudWeight); err != nil {
		return 0, err
	}
	if err := check.NonNegative("annularLoss", annularLoss); err != nil {
		return 0, err
	}
	if err := check.Positive("depth", depth); err != nil {
		return 0, err
	}
	return mudWeight + annularLoss/(ppgToPsiPerFt*depth), nil
}

// AnnularVelocity computes the average annular velocity [ft/min] of mud
// returning up the hole/pipe annulus
//  Input:
//   flowRate -- pump output [gpm]; must be positive
//   holeDiam -- hole (or casing inner) diameter [in]; must be positive
//   pipeDiam -- pipe outer diameter [in]; must be smaller than holeDiam
func AnnularVelocity(flowRate, holeDiam, pipeDiam float64) (float64, error) {
	if err := check.Positive("flowRate", flowRate); err != nil {
		return 0, err
	}
	if err := check.Positive("holeDiam", holeDiam); err != nil {
		return 0, err
	}
	if err := check.NonNegative("pipeDiam", pipeDiam); err != nil {
		return 0, err
	}
	if pipeDiam >= holeDiam {
		return 0, check.Invalid("pipeDiam", pipeDiam, "must be smaller than holeDiam = %v", holeDiam)
	}
	return 24.5 * flowRate / (holeDiam*holeDiam - pipeDiam*pipeDiam), nil
}
