// Copyright 2020 The Petrocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluids

import (
	"math"

	"github.com/Farzad0514/petrocalc/check"
)

// Sutton pseudo-critical regression constants [3]; gas gravity in (air = 1),
// temperature in °R, pressure in psia
const (
	suttonT0 = 169.2
	suttonT1 = 349.5
	suttonT2 = 74.0
	suttonP0 = 756.8
	suttonP1 = 131.0
	suttonP2 = 3.6
)

// rankineOffset converts °F to °R
const rankineOffset = 459.67

// PseudoCriticalSutton computes the pseudo-critical temperature [°R] and
// pressure [psia] of a natural gas from its specific gravity, after
// Sutton [3]
//  Input:
//   gasSG -- gas specific gravity (air = 1); correlation range 0.57 to 1.68
func PseudoCriticalSutton(gasSG float64) (tpc, ppc float64, err error) {
	if err = check.Range("gasSG", gasSG, 0.57, 1.68); err != nil {
		return
	}
	tpc = suttonT0 + suttonT1*gasSG - suttonT2*gasSG*gasSG
	ppc = suttonP0 - suttonP1*gasSG - suttonP2*gasSG*gasSG
	return
}

// ZFactorBrillBeggs computes the real-gas deviation factor Z with the
// explicit Beggs-Brill fit to the Standing-Katz chart [4]. Pseudo-critical
// properties come from PseudoCriticalSutton.
//  Input:
//   pres  -- pressure [psia]; must be positive
//   temp  -- temperature [°F]
//   gasSG -- gas specific gravity (air = 1); correlation range 0.57 to 1.68
//  Valid range: 1.15 < Tpr < 2.4 and 0 < Ppr < 15
func ZFactorBrillBeggs(pres, temp, gasSG float64) (float64, error) {
	if err := check.Positive("pres", pres); err != nil {
		return 0, err
	}
	tpc, ppc, err := PseudoCriticalSutton(gasSG)
	if err != nil {
		return 0, err
	}
	tpr := (temp + rankineOffset) / tpc
	ppr := pres / ppc
	if err := check.Range("Tpr", tpr, 1.15, 2.4); err != nil {
		return 0, err
	}
	if err := check.Range("Ppr", ppr, 0, 15); err != nil {
		return 0, err
	}
	a := 1.39*math.Sqrt(tpr-0.92) - 0.36*tpr - 0.101
	b := (0.62-0.23*tpr)*ppr +
		(0.066/(tpr-0.86)-0.037)*ppr*ppr +
		0.32*math.Pow(ppr, 6)/math.Pow(10, 9*(tpr-1))
	c := 0.132 - 0.32*math.Log10(tpr)
	d := math.Pow(10, 0.3106-0.49*tpr+0.1824*tpr*tpr)
	return a + (1-a)/math.Exp(b) + c*math.Pow(ppr, d), nil
}
