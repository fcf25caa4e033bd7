// Copyright 2020 The Petrocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pressure implements pore-pressure and fracture-pressure
// correlations used in well planning.
//  References:
//   [1] Hubbert MK and Willis DG (1957) Mechanics of hydraulic fracturing.
//       Transactions of the AIME, 210(1), 153-168
//   [2] Eaton BA (1969) Fracture gradient prediction and its application
//       in oilfield operations. Journal of Petroleum Technology, 21(10)
//   [3] Eaton BA (1975) The equation for geopressure prediction from well
//       logs. SPE 5544
package pressure

import (
	"math"

	"github.com/Farzad0514/petrocalc/check"
)

// gccToPsiPerFt converts a bulk density in g/cm³ to a gradient in psi/ft
const gccToPsiPerFt = 0.433

// eatonSonicExp is Eaton's exponent for the sonic travel-time ratio [3]
const eatonSonicExp = 3.0

// OverburdenGradient computes the overburden gradient [psi/ft] from an
// average bulk density
//  Input:
//   bulkDensity -- average sediment bulk density [g/cm³]; must be positive
func OverburdenGradient(bulkDensity float64) (float64, error) {
	if err := check.Positive("bulkDensity", bulkDensity); err != nil {
		return 0, err
	}
	return gccToPsiPerFt * bulkDensity, nil
}

// FractureHubbertWillis computes the minimum fracture pressure [psi] with
// the Hubbert-Willis relation [1]:
//  Pf = (S + 2・Pp) / 3
//  Input:
//   overburden   -- overburden stress at depth [psi]; must be positive
//   porePressure -- pore pressure at depth [psi]; 0 to overburden
func FractureHubbertWillis(overburden, porePressure float64) (float64, error) {
	if err := check.Positive("overburden", overburden); err != nil {
		return 0, err
	}
	if err := check.NonNegative("porePressure", porePressure); err != nil {
		return 0, err
	}
	if porePressure > overburden {
		return 0, check.Invalid("porePressure", porePressure, "exceeds the overburden stress = %v", overburden)
	}
	return (overburden + 2.0*porePressure) / 3.0, nil
}

// FractureEaton computes the fracture pressure [psi] with Eaton's
// relation [2]:
//  Pf = ν/(1-ν)・(S - Pp) + Pp
//  Input:
//   overburden   -- overburden stress at depth [psi]; must be positive
//   porePressure -- pore pressure at depth [psi]; 0 to overburden
//   poisson      -- Poisson's ratio of the formation [-]; 0 to 0.5 exclusive
func FractureEaton(overburden, porePressure, poisson float64) (float64, error) {
	if err := check.Positive("overburden", overburden); err != nil {
		return 0, err
	}
	if err := check.NonNegative("porePressure", porePressure); err != nil {
		return 0, err
	}
	if porePressure > overburden {
		return 0, check.Invalid("porePressure", porePressure, "exceeds the overburden stress = %v", overburden)
	}
	if poisson < 0 || poisson >= 0.5 {
		return 0, check.Invalid("poisson", poisson, "must be in [0, 0.5)")
	}
	return poisson/(1.0-poisson)*(overburden-porePressure) + porePressure, nil
}

// PorePressureEatonSonic computes the pore-pressure gradient [psi/ft] from
// the observed deviation of sonic travel time off the normal compaction
// trend, with Eaton's geopressure relation [3]:
//  Pp = S - (S - Pn)・(Δtn/Δt)³
//  Input:
//   overburdenGrad -- overburden gradient [psi/ft]; must be positive
//   normalGrad     -- normal (hydrostatic) pressure gradient [psi/ft];
//                     0 to overburdenGrad
//   dtNormal       -- travel time on the normal trend [µs/ft]; must be positive
//   dtObserved     -- observed travel time [µs/ft]; must be positive
func PorePressureEatonSonic(overburdenGrad, normalGrad, dtNormal, dtObserved float64) (float64, error) {
	if err := check.Positive("overburdenGrad", overburdenGrad); err != nil {
		return 0, err
	}
	if err := check.NonNegative("normalGrad", normalGrad); err != nil {
		return 0, err
	}
	if normalGrad > overburdenGrad {
		return 0, check.Invalid("normalGrad", normalGrad, "exceeds the overburden gradient = %v", overburdenGrad)
	}
	if err := check.Positive("dtNormal", dtNormal); err != nil {
		return 0, err
	}
	if err := check.Positive("dtObserved", dtObserved); err != nil {
		return 0, err
	}
	ratio := dtNormal / dtObserved
	return overburdenGrad - (overburdenGrad-normalGrad)*math.Pow(ratio, eatonSonicExp), nil
}
