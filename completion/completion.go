// Copyright 2020 The Petrocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package completion implements completion-design formulas: gas-well
// liquid loading and gravel-pack sizing.
//  References:
//   [1] Turner RG, Hubbard MG and Dukler AE (1969) Analysis and prediction
//       of minimum flow rate for the continuous removal of liquids from
//       gas wells. Journal of Petroleum Technology, 21(11), 1475-1482
//   [2] Saucier RJ (1974) Considerations in gravel pack design. Journal of
//       Petroleum Technology, 26(2), 205-212
package completion

import (
	"math"

	"github.com/Farzad0514/petrocalc/check"
)

// turnerCoef is Turner's droplet coefficient including the recommended
// +20% field adjustment [1]
const turnerCoef = 1.92

// rateCoef converts p·v·A/(T·z) to MMscf/day [1]
const rateCoef = 3.067

// rankineOffset converts °F to °R
const rankineOffset = 459.67

// saucierRatio is the gravel-to-formation-sand median size ratio [2]
const saucierRatio = 6.0

// TurnerCriticalVelocity computes the minimum upward gas velocity [ft/s]
// that keeps liquid droplets moving up the well [1]:
//  v = 1.92・σ^(1/4)・(ρl - ρg)^(1/4) / ρg^(1/2)
//  Input:
//   surfTension -- gas-liquid interfacial tension [dyn/cm]; must be positive
//   rhoLiquid   -- liquid density [lbm/ft³]; must exceed rhoGas
//   rhoGas      -- gas density at flowing conditions [lbm/ft³]; must be positive
func TurnerCriticalVelocity(surfTension, rhoLiquid, rhoGas float64) (float64, error) {
	if err := check.Positive("surfTension", surfTension); err != nil {
		return 0, err
	}
	if err := check.Positive("rhoGas", rhoGas); err != nil {
		return 0, err
	}
	if rhoLiquid <= rhoGas {
		return 0, check.Invalid("rhoLiquid", rhoLiquid, "must exceed the gas density rhoGas = %v", rhoGas)
	}
	return turnerCoef * math.Pow(surfTension, 0.25) * math.Pow(rhoLiquid-rhoGas, 0.25) / math.Sqrt(rhoGas), nil
}

// TurnerCriticalRate computes the minimum gas rate [MMscf/day] for
// continuous liquid unloading [1]:
//  q = 3.067・P・v・A / (T・z)
//  Input:
//   pres     -- flowing wellhead pressure [psia]; must be positive
//   critVel  -- Turner critical velocity [ft/s]; must be positive
//   area     -- tubing flow area [ft²]; must be positive
//   temp     -- flowing temperature [°F]; must be above absolute zero
//   z        -- gas deviation factor [-]; must be positive
func TurnerCriticalRate(pres, critVel, area, temp, z float64) (float64, error) {
	if err := check.Positive("pres", pres); err != nil {
		return 0, err
	}
	if err := check.Positive("critVel", critVel); err != nil {
		return 0, err
	}
	if err := check.Positive("area", area); err != nil {
		return 0, err
	}
	if err := check.Range("temp", temp, -rankineOffset, 1000); err != nil {
		return 0, err
	}
	if err := check.Positive("z", z); err != nil {
		return 0, err
	}
	return rateCoef * pres * critVel * area / ((temp + rankineOffset) * z), nil
}

// SaucierGravelSize computes the median gravel size [in] for a gravel pack
// from the median formation sand size [2]
//  Input:
//   sandD50 -- median formation sand grain size [in]; must be positive
func SaucierGravelSize(sandD50 float64) (float64, error) {
	if err := check.Positive("sandD50", sandD50); err != nil {
		return 0, err
	}
	return saucierRatio * sandD50, nil
}
