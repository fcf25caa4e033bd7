// Copyright 2020 The Petrocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package rock implements petrophysical formulas for porosity, saturation
// and permeability.
//  References:
//   [1] Archie GE (1942) The electrical resistivity log as an aid in
//       determining some reservoir characteristics. Transactions of the
//       AIME, 146(1), 54-62
//   [2] Timur A (1968) An investigation of permeability, porosity, and
//       residual water saturation relationships for sandstone reservoirs.
//       The Log Analyst, 9(4)
package rock

import (
	"math"

	"github.com/Farzad0514/petrocalc/check"
)

// Timur regression constants [2]; porosity and saturation in percent,
// permeability in mD
const (
	timurCoef   = 0.136
	timurPorExp = 4.4
	timurSwExp  = 2.0
)

// DensityPorosity computes porosity [fraction] from a bulk density log
//  Input:
//   rhoMatrix -- matrix grain density [g/cm³]; must be positive
//   rhoBulk   -- measured bulk density [g/cm³]; between rhoFluid and rhoMatrix
//   rhoFluid  -- pore fluid density [g/cm³]; strictly below rhoMatrix
func DensityPorosity(rhoMatrix, rhoBulk, rhoFluid float64) (float64, error) {
	if err := check.Positive("rhoMatrix", rhoMatrix); err != nil {
		return 0, err
	}
	if err := check.Positive("rhoFluid", rhoFluid); err != nil {
		return 0, err
	}
	if rhoFluid >= rhoMatrix {
		return 0, check.Invalid("rhoFluid", rhoFluid, "must be below the matrix density rhoMatrix = %v", rhoMatrix)
	}
	if err := check.Range("rhoBulk", rhoBulk, rhoFluid, rhoMatrix); err != nil {
		return 0, err
	}
	return (rhoMatrix - rhoBulk) / (rhoMatrix - rhoFluid), nil
}

// FormationFactor computes Archie's formation resistivity factor [1]:
//  F = a / φ^m
//  Input:
//   a        -- tortuosity factor [-]; must be positive
//   porosity -- effective porosity [fraction]; must be positive
//   m        -- cementation exponent [-]; typical range 1.3 to 3
func FormationFactor(a, porosity, m float64) (float64, error) {
	if err := check.Positive("a", a); err != nil {
		return 0, err
	}
	if err := check.Positive("porosity", porosity); err != nil {
		return 0, err
	}
	if err := check.Fraction("porosity", porosity); err != nil {
		return 0, err
	}
	if err := check.Range("m", m, 1.3, 3); err != nil {
		return 0, err
	}
	return a / math.Pow(porosity, m), nil
}

// WaterSaturationArchie computes the water saturation [fraction] with
// Archie's equation [1]:
//  Sw = ( a・Rw / (φ^m・Rt) )^(1/n)
//  Input:
//   a        -- tortuosity factor [-]; must be positive
//   m        -- cementation exponent [-]; typical range 1.3 to 3
//   n        -- saturation exponent [-]; typical range 1.5 to 2.5
//   rw       -- formation water resistivity [ohm·m]; must be positive
//   rt       -- true formation resistivity [ohm·m]; must be positive
//   porosity -- effective porosity [fraction]; must be positive
func WaterSaturationArchie(a, m, n, rw, rt, porosity float64) (float64, error) {
	f, err := FormationFactor(a, porosity, m)
	if err != nil {
		return 0, err
	}
	if err := check.Range("n", n, 1.5, 2.5); err != nil {
		return 0, err
	}
	if err := check.Positive("rw", rw); err != nil {
		return 0, err
	}
	if err := check.Positive("rt", rt); err != nil {
		return 0, err
	}
	return math.Pow(f*rw/rt, 1.0/n), nil
}

// PermeabilityTimur computes the absolute permeability [mD] of a sandstone
// with Timur's correlation [2]
//  Input:
//   porosity -- effective porosity [percent]; valid range 1 to 45
//   waterSat -- irreducible water saturation [percent]; valid range 1 to 100
func PermeabilityTimur(porosity, waterSat float64) (float64, error) {
	if err := check.Range("porosity", porosity, 1, 45); err != nil {
		return 0, err
	}
	if err := check.Range("waterSat", waterSat, 1, 100); err != nil {
		return 0, err
	}
	return timurCoef * math.Pow(porosity, timurPorExp) / math.Pow(waterSat, timurSwExp), nil
}
