// Copyright 2020 The Petrocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package check implements input-domain validation for correlation functions.
// Every correlation validates its inputs with these helpers before computing
// anything; an out-of-range input produces a *DomainError naming the
// offending parameter and its valid range, never a NaN or a sentinel value.
package check

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// DomainError indicates that an input (or a combination of inputs) falls
// outside the physically or correlation-valid domain
type DomainError struct {
	Param  string  // name of the offending parameter
	Value  float64 // offending value
	Lo, Hi float64 // valid range; ±Inf for open-ended bounds
	Reason string  // set instead of Lo/Hi for combined constraints
}

// Error returns the message
func (o *DomainError) Error() string {
	if o.Reason != "" {
		return io.Sf("parameter %q = %v is invalid: %s", o.Param, o.Value, o.Reason)
	}
	lo, hi := io.Sf("%v", o.Lo), io.Sf("%v", o.Hi)
	if math.IsInf(o.Lo, -1) {
		lo = "-∞"
	}
	if math.IsInf(o.Hi, 1) {
		hi = "+∞"
	}
	return io.Sf("parameter %q = %v is outside its valid range [%s, %s]", o.Param, o.Value, lo, hi)
}

// Range returns a *DomainError if v is outside [lo, hi]; nil otherwise.
// NaN always fails.
func Range(param string, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return &DomainError{Param: param, Value: v, Lo: lo, Hi: hi}
	}
	return nil
}

// Positive returns a *DomainError unless v > 0
func Positive(param string, v float64) error {
	if math.IsNaN(v) || v <= 0 {
		return &DomainError{Param: param, Value: v, Reason: "must be positive"}
	}
	return nil
}

// NonNegative returns a *DomainError unless v ≥ 0
func NonNegative(param string, v float64) error {
	if math.IsNaN(v) || v < 0 {
		return &DomainError{Param: param, Value: v, Reason: "must not be negative"}
	}
	return nil
}

// Fraction returns a *DomainError unless 0 ≤ v ≤ 1
func Fraction(param string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return &DomainError{Param: param, Value: v, Lo: 0, Hi: 1}
	}
	return nil
}

// Invalid builds a *DomainError for a constraint that involves more than one
// parameter; e.g. a bottomhole pressure exceeding the reservoir pressure
func Invalid(param string, v float64, reason string, prm ...interface{}) error {
	return &DomainError{Param: param, Value: v, Reason: io.Sf(reason, prm...)}
}
