// Copyright 2020 The Petrocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package reservoir implements reservoir PVT correlations, volumetric
// reserves estimates and Arps decline-curve models.
//  References:
//   [1] Standing MB (1947) A pressure-volume-temperature correlation for
//       mixtures of California oils and gases. API Drilling and Production
//       Practice, 275-287
//   [2] Arps JJ (1945) Analysis of decline curves. Transactions of the
//       AIME, 160(1), 228-247
package reservoir

import (
	"math"

	"github.com/Farzad0514/petrocalc/check"
	"github.com/Farzad0514/petrocalc/fluids"
	"github.com/Farzad0514/petrocalc/roots"
)

// Standing bubble-point regression constants [1]
const (
	standingCoef  = 18.2
	standingExp   = 0.83
	standingTemp  = 0.00091
	standingAPI   = 0.0125
	standingShift = 1.4
)

// Standing oil-FVF regression constants [1]
const (
	standingBo0   = 0.9759
	standingBo1   = 0.00012
	standingBoExp = 1.2
	standingBoT   = 1.25
)

// Standing correlation ranges [1]
const (
	standingGORMin = 20.0
	standingGORMax = 1425.0
	standingSGMin  = 0.59
	standingSGMax  = 0.95
	standingAPIMin = 16.5
	standingAPIMax = 63.8
	standingTMin   = 100.0
	standingTMax   = 258.0
)

// pbStanding computes the raw Standing correlation without validation; it
// is shared by the forward bubble-point function and the GOR inversion
func pbStanding(gor, gasSG, api, temp float64) float64 {
	yield := math.Pow(gor/gasSG, standingExp) * math.Pow(10, standingTemp*temp-standingAPI*api)
	return standingCoef * (yield - standingShift)
}

// BubblePointStanding computes the bubble-point pressure [psia] of a
// saturated oil with Standing's correlation [1]
//  Input:
//   gor   -- solution gas-oil ratio [scf/STB]; correlation range 20 to 1425
//   gasSG -- gas specific gravity (air = 1); correlation range 0.59 to 0.95
//   api   -- stock-tank oil gravity [°API]; correlation range 16.5 to 63.8
//   temp  -- reservoir temperature [°F]; correlation range 100 to 258
func BubblePointStanding(gor, gasSG, api, temp float64) (float64, error) {
	if err := check.Range("gor", gor, standingGORMin, standingGORMax); err != nil {
		return 0, err
	}
	if err := check.Range("gasSG", gasSG, standingSGMin, standingSGMax); err != nil {
		return 0, err
	}
	if err := check.Range("api", api, standingAPIMin, standingAPIMax); err != nil {
		return 0, err
	}
	if err := check.Range("temp", temp, standingTMin, standingTMax); err != nil {
		return 0, err
	}
	return pbStanding(gor, gasSG, api, temp), nil
}

// SolutionGORStanding computes the solution gas-oil ratio [scf/STB] of a
// saturated oil at a given pressure by numerically inverting Standing's
// bubble-point correlation [1] with bisection. The result always lies
// within the correlation's GOR range of 20 to 1425 scf/STB; a
// *check.DomainError is returned when the pressure maps outside it.
//  Input:
//   pres  -- pressure [psia]; must be positive
//   gasSG -- gas specific gravity (air = 1); correlation range 0.59 to 0.95
//   api   -- stock-tank oil gravity [°API]; correlation range 16.5 to 63.8
//   temp  -- reservoir temperature [°F]; correlation range 100 to 258
func SolutionGORStanding(pres, gasSG, api, temp float64) (float64, error) {
	if err := check.Positive("pres", pres); err != nil {
		return 0, err
	}
	if err := check.Range("gasSG", gasSG, standingSGMin, standingSGMax); err != nil {
		return 0, err
	}
	if err := check.Range("api", api, standingAPIMin, standingAPIMax); err != nil {
		return 0, err
	}
	if err := check.Range("temp", temp, standingTMin, standingTMax); err != nil {
		return 0, err
	}
	// the correlation is monotonic in gor, so the invertible pressures are
	// those between the bubble points of the GOR range endpoints
	pbLo := pbStanding(standingGORMin, gasSG, api, temp)
	pbHi := pbStanding(standingGORMax, gasSG, api, temp)
	if err := check.Range("pres", pres, pbLo, pbHi); err != nil {
		return 0, err
	}
	f := func(gor float64) float64 {
		return pbStanding(gor, gasSG, api, temp) - pres
	}
	gor, _, err := roots.Bisection(f, standingGORMin, standingGORMax, 1e-6, 200)
	if err != nil {
		return 0, err
	}
	return gor, nil
}

// OilFVFStanding computes the formation volume factor [bbl/STB] of a
// saturated oil with Standing's correlation [1]; the oil specific gravity
// sub-step uses fluids.OilSpecificGravity
//  Input:
//   gor   -- solution gas-oil ratio [scf/STB]; correlation range 20 to 1425
//   gasSG -- gas specific gravity (air = 1); correlation range 0.59 to 0.95
//   api   -- stock-tank oil gravity [°API]; correlation range 16.5 to 63.8
//   temp  -- reservoir temperature [°F]; correlation range 100 to 258
func OilFVFStanding(gor, gasSG, api, temp float64) (float64, error) {
	if err := check.Range("gor", gor, standingGORMin, standingGORMax); err != nil {
		return 0, err
	}
	if err := check.Range("gasSG", gasSG, standingSGMin, standingSGMax); err != nil {
		return 0, err
	}
	if err := check.Range("api", api, standingAPIMin, standingAPIMax); err != nil {
		return 0, err
	}
	if err := check.Range("temp", temp, standingTMin, standingTMax); err != nil {
		return 0, err
	}
	oilSG, err := fluids.OilSpecificGravity(api)
	if err != nil {
		return 0, err
	}
	x := gor*math.Sqrt(gasSG/oilSG) + standingBoT*temp
	return standingBo0 + standingBo1*math.Pow(x, standingBoExp), nil
}
