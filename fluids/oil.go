// Copyright 2020 The Petrocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluids implements oil, gas and water property correlations.
//  References:
//   [1] Standing MB (1947) A pressure-volume-temperature correlation for
//       mixtures of California oils and gases. API Drilling and Production
//       Practice, 275-287
//   [2] Beggs HD and Robinson JR (1975) Estimating the viscosity of crude
//       oil systems. Journal of Petroleum Technology, 27(9), 1140-1141
//   [3] Sutton RP (1985) Compressibility factors for high-molecular-weight
//       reservoir gases. SPE 14265
//   [4] Beggs HD and Brill JP (1973) A study of two-phase flow in inclined
//       pipes. Journal of Petroleum Technology, 25(5), 607-617
package fluids

import (
	"math"

	"github.com/Farzad0514/petrocalc/check"
)

// water specific gravity reference for the API scale
const apiScaleNum = 141.5
const apiScaleDen = 131.5

// Beggs-Robinson dead-oil regression constants [2]
const (
	brDeadA = 3.0324
	brDeadB = 0.02023
	brDeadC = 1.163
)

// Beggs-Robinson live-oil regression constants [2]
const (
	brLiveA1 = 10.715
	brLiveA2 = 100.0
	brLiveA3 = 0.515
	brLiveB1 = 5.44
	brLiveB2 = 150.0
	brLiveB3 = 0.338
)

// OilSpecificGravity computes the oil specific gravity (water = 1) from the
// API gravity
//  Input:
//   api -- stock-tank oil gravity [°API]; valid range 5 to 70
func OilSpecificGravity(api float64) (float64, error) {
	if err := check.Range("api", api, 5, 70); err != nil {
		return 0, err
	}
	return apiScaleNum / (apiScaleDen + api), nil
}

// APIGravity computes the API gravity from the oil specific gravity
//  Input:
//   sg -- oil specific gravity (water = 1); valid range 0.7 to 1.04
func APIGravity(sg float64) (float64, error) {
	if err := check.Range("sg", sg, 0.7, 1.04); err != nil {
		return 0, err
	}
	return apiScaleNum/sg - apiScaleDen, nil
}

// DeadOilViscosityBR computes the dead (gas-free) oil viscosity [cp] with
// the Beggs-Robinson correlation [2]
//  Input:
//   api  -- stock-tank oil gravity [°API]; correlation range 16 to 58
//   temp -- temperature [°F]; correlation range 70 to 295
func DeadOilViscosityBR(api, temp float64) (float64, error) {
	if err := check.Range("api", api, 16, 58); err != nil {
		return 0, err
	}
	if err := check.Range("temp", temp, 70, 295); err != nil {
		return 0, err
	}
	x := math.Pow(10, brDeadA-brDeadB*api) * math.Pow(temp, -brDeadC)
	return math.Pow(10, x) - 1.0, nil
}

// LiveOilViscosityBR computes the viscosity [cp] of saturated (live) oil
// with the Beggs-Robinson correlation [2]; the dead-oil viscosity sub-step
// uses DeadOilViscosityBR
//  Input:
//   gor  -- solution gas-oil ratio [scf/STB]; correlation range 20 to 2070
//   api  -- stock-tank oil gravity [°API]; correlation range 16 to 58
//   temp -- temperature [°F]; correlation range 70 to 295
func LiveOilViscosityBR(gor, api, temp float64) (float64, error) {
	if err := check.Range("gor", gor, 20, 2070); err != nil {
		return 0, err
	}
	mud, err := DeadOilViscosityBR(api, temp)
	if err != nil {
		return 0, err
	}
	a := brLiveA1 * math.Pow(gor+brLiveA2, -brLiveA3)
	b := brLiveB1 * math.Pow(gor+brLiveB2, -brLiveB3)
	return a * math.Pow(mud, b), nil
}
