// Copyright 2020 The Petrocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package roots implements scalar root-finding for correlations that are
// defined implicitly; e.g. the internal rate of return, the Colebrook-White
// friction factor and the inversion of bubble-point correlations.
// Bisection is the default solver because convergence is guaranteed for a
// valid bracket; Newton is reserved for targets whose derivative is cheap
// and whose domain is well-behaved (monotonic decline integrals).
package roots

import (
	"math"

	"github.com/Farzad0514/petrocalc/check"
	"github.com/cpmech/gosl/io"
)

// ConvergenceError indicates that an iterative solver exhausted its
// iteration budget without meeting the requested tolerance
type ConvergenceError struct {
	Iterations int     // iteration budget that was exhausted
	Tolerance  float64 // requested tolerance on |f(x)|
	Residual   float64 // best |f(x)| reached
}

// Error returns the message
func (o *ConvergenceError) Error() string {
	return io.Sf("no convergence after %d iterations: |f(x)| = %g > tolerance = %g",
		o.Iterations, o.Residual, o.Tolerance)
}

// Bisection finds x in [lo, hi] such that |f(x)| < tol using the bisection
// method. The bracket must contain a root: f(lo) and f(hi) must have
// opposite signs, otherwise a *check.DomainError is returned. A
// *ConvergenceError is returned if maxIt iterations do not reach tol.
// The iteration path is fully deterministic.
//  Output:
//   x  -- the root
//   it -- number of iterations performed
func Bisection(f func(x float64) float64, lo, hi, tol float64, maxIt int) (x float64, it int, err error) {
	if err = check.Positive("tol", tol); err != nil {
		return
	}
	if maxIt < 1 {
		err = check.Invalid("maxIt", float64(maxIt), "must be at least one")
		return
	}
	if lo >= hi {
		err = check.Invalid("lo", lo, "bracket is empty: lo must be smaller than hi = %v", hi)
		return
	}
	flo := f(lo)
	if math.Abs(flo) < tol {
		return lo, 0, nil
	}
	fhi := f(hi)
	if math.Abs(fhi) < tol {
		return hi, 0, nil
	}
	if (flo < 0) == (fhi < 0) {
		err = check.Invalid("[lo,hi]", lo, "bracket [%v, %v] does not contain a root: f has the same sign at both ends", lo, hi)
		return
	}
	var fx float64
	for it = 1; it <= maxIt; it++ {
		x = (lo + hi) / 2.0
		fx = f(x)
		if math.Abs(fx) < tol {
			return
		}
		if (flo < 0) == (fx < 0) {
			lo, flo = x, fx
		} else {
			hi = x
		}
	}
	it = maxIt
	err = &ConvergenceError{Iterations: maxIt, Tolerance: tol, Residual: math.Abs(fx)}
	return
}

// Newton finds x near x0 such that |f(x)| < tol using Newton-Raphson
// iterations with the analytical derivative dfdx. A *ConvergenceError is
// returned if maxIt iterations do not reach tol or if the iteration
// degenerates (zero derivative or non-finite iterate).
func Newton(f, dfdx func(x float64) float64, x0, tol float64, maxIt int) (x float64, it int, err error) {
	if err = check.Positive("tol", tol); err != nil {
		return
	}
	if maxIt < 1 {
		err = check.Invalid("maxIt", float64(maxIt), "must be at least one")
		return
	}
	x = x0
	fx := f(x)
	if math.Abs(fx) < tol {
		return
	}
	for it = 1; it <= maxIt; it++ {
		d := dfdx(x)
		if d == 0 || math.IsNaN(d) {
			err = check.Invalid("dfdx", d, "derivative vanished at x = %v", x)
			return
		}
		x -= fx / d
		if math.IsNaN(x) || math.IsInf(x, 0) {
			err = &ConvergenceError{Iterations: it, Tolerance: tol, Residual: math.Abs(fx)}
			return
		}
		fx = f(x)
		if math.Abs(fx) < tol {
			return
		}
	}
	it = maxIt
	err = &ConvergenceError{Iterations: maxIt, Tolerance: tol, Residual: math.Abs(fx)}
	return
}
