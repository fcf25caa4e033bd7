// Copyright 2020 The Petrocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reservoir

import "github.com/Farzad0514/petrocalc/check"

// acreFtToBbl converts acre-ft of reservoir rock to barrels
const acreFtToBbl = 7758.0

// OriginalOilInPlace computes the volumetric OOIP [STB]
//  Input:
//   area      -- drainage area [acres]; must be positive
//   thickness -- net pay thickness [ft]; must be positive
//   porosity  -- effective porosity [fraction]
//   waterSat  -- initial water saturation [fraction]
//   boi       -- initial oil formation volume factor [bbl/STB]; 1 to 3
func OriginalOilInPlace(area, thickness, porosity, waterSat, boi float64) (float64, error) {
	if err := check.Positive("area", area); err != nil {
		return 0, err
	}
	if err := check.Positive("thickness", thickness); err != nil {
		return 0, err
	}
	if err := check.Fraction("porosity", porosity); err != nil {
		return 0, err
	}
	if err := check.Fraction("waterSat", waterSat); err != nil {
		return 0, err
	}
	if err := check.Range("boi", boi, 1.0, 3.0); err != nil {
		return 0, err
	}
	return acreFtToBbl * area * thickness * porosity * (1.0 - waterSat) / boi, nil
}

// RecoverableReserves computes the recoverable volume [STB] from the OOIP
// and a recovery factor
//  Input:
//   ooip           -- original oil in place [STB]; must not be negative
//   recoveryFactor -- expected recovery [fraction]
func RecoverableReserves(ooip, recoveryFactor float64) (float64, error) {
	if err := check.NonNegative("ooip", ooip); err != nil {
		return 0, err
	}
	if err := check.Fraction("recoveryFactor", recoveryFactor); err != nil {
		return 0, err
	}
	return ooip * recoveryFactor, nil
}
