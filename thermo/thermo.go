// Copyright 2020 The Petrocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package thermo implements thermodynamic formulas for reservoir gases and
// the geothermal temperature profile
package thermo

import "github.com/Farzad0514/petrocalc/check"

// rankineOffset converts °F to °R
const rankineOffset = 459.67

// airMolarMass is the molar mass of air [lbm/lbmol]
const airMolarMass = 28.97

// gasConstant is the universal gas constant [psia·ft³/(lbmol·°R)]
const gasConstant = 10.732

// bgCoef collects the surface-condition constants of the real-gas FVF:
// (14.65 psia / 519.67 °R in ft³/scf terms)
const bgCoef = 0.02827

// FormationTemperature computes the static formation temperature [°F] at
// depth on a linear geothermal gradient
//  Input:
//   surfaceTemp -- mean surface temperature [°F]
//   gradient    -- geothermal gradient [°F/100 ft]; must be positive
//   depth       -- true vertical depth [ft]; must not be negative
func FormationTemperature(surfaceTemp, gradient, depth float64) (float64, error) {
	if err := check.Range("surfaceTemp", surfaceTemp, -60, 150); err != nil {
		return 0, err
	}
	if err := check.Positive("gradient", gradient); err != nil {
		return 0, err
	}
	if err := check.NonNegative("depth", depth); err != nil {
		return 0, err
	}
	return surfaceTemp + gradient*depth/100.0, nil
}

// GasDensity computes the density [lbm/ft³] of a real gas:
//  ρ = P・M・γg / (z・R・T)
//  Input:
//   pres  -- pressure [psia]; must be positive
//   temp  -- temperature [°F]; must be above absolute zero
//   gasSG -- gas specific gravity (air = 1); must be positive
//   z     -- gas deviation factor [-]; must be positive
func GasDensity(pres, temp, gasSG, z float64) (float64, error) {
	if err := check.Positive("pres", pres); err != nil {
		return 0, err
	}
	if err := check.Range("temp", temp, -rankineOffset, 1000); err != nil {
		return 0, err
	}
	if err := check.Positive("gasSG", gasSG); err != nil {
		return 0, err
	}
	if err := check.Positive("z", z); err != nil {
		return 0, err
	}
	return airMolarMass * gasSG * pres / (z * gasConstant * (temp + rankineOffset)), nil
}

// GasFVF computes the gas formation volume factor [ft³/scf]:
//  Bg = 0.02827・z・T / P
//  Input:
//   pres -- pressure [psia]; must be positive
//   temp -- temperature [°F]; must be above absolute zero
//   z    -- gas deviation factor [-]; must be positive
func GasFVF(pres, temp, z float64) (float64, error) {
	if err := check.Positive("pres", pres); err != nil {
		return 0, err
	}
	if err := check.Range("temp", temp, -rankineOffset, 1000); err != nil {
		return 0, err
	}
	if err := check.Positive("z", z); err != nil {
		return 0, err
	}
	return bgCoef * z * (temp + rankineOffset) / pres, nil
}

// GasCompressibilityIdeal computes the isothermal compressibility [1/psi]
// of an ideal gas, cg = 1/P; a usable first estimate away from the
// critical region
//  Input:
//   pres -- pressure [psia]; must be positive
func GasCompressibilityIdeal(pres float64) (float64, error) {
	if err := check.Positive("pres", pres); err != nil {
		return 0, err
	}
	return 1.0 / pres, nil
}
