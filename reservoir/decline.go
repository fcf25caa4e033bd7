// Copyright 2020 The Petrocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reservoir

import (
	"math"

	"github.com/Farzad0514/petrocalc/check"
)

// ArpsRate computes the production rate at time t with the Arps decline
// family [2]. The branch is selected by the b exponent: b = 0 is
// exponential, b = 1 is harmonic and 0 < b < 1 is hyperbolic.
//  Input:
//   qi -- initial rate [vol/day]; must be positive
//   di -- initial nominal decline rate [1/day]; must be positive
//   b  -- decline exponent [-]; valid range 0 to 1
//   t  -- elapsed time [days]; must not be negative
//  Output: rate at time t [vol/day]
func ArpsRate(qi, di, b, t float64) (float64, error) {
	if err := check.Positive("qi", qi); err != nil {
		return 0, err
	}
	if err := check.Positive("di", di); err != nil {
		return 0, err
	}
	if err := check.Range("b", b, 0, 1); err != nil {
		return 0, err
	}
	if err := check.NonNegative("t", t); err != nil {
		return 0, err
	}
	switch b {
	case 0:
		return qi * math.Exp(-di*t), nil
	case 1:
		return qi / (1.0 + di*t), nil
	}
	return qi * math.Pow(1.0+b*di*t, -1.0/b), nil
}
