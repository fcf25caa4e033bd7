// Copyright 2020 The Petrocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluids

// Water handles the reference properties of fresh water at standard
// conditions (60°F, atmospheric pressure)
type Water struct {
	Temp float64 // reference temperature [°F]
	Rho  float64 // density [lbm/ft³]
	SG   float64 // specific gravity [-]
	C    float64 // isothermal compressibility [1/psi]
	Grad float64 // fresh-water pressure gradient [psi/ft]
}

// DryAir handles the reference properties of dry air at standard conditions
type DryAir struct {
	Temp float64 // reference temperature [°F]
	R    float64 // specific gas constant [ft·lbf/(lbm·°R)]
	Patm float64 // absolute atmospheric pressure [psia]
	Rho  float64 // density [lbm/ft³]
	M    float64 // molar mass [lbm/lbmol]
}

// Init initialises data
func (o *Water) Init() {
	o.Temp = 60.0  // [°F]
	o.Rho = 62.37  // [lbm/ft³]  60°F
	o.SG = 1.0     // [-]
	o.C = 3.0e-6   // [1/psi]    60°F
	o.Grad = 0.433 // [psi/ft]
}

// Init initialises data
func (o *DryAir) Init() {
	o.Temp = 60.0                                       // [°F]
	o.R = 53.35                                         // [ft·lbf/(lbm·°R)]
	o.Patm = 14.696                                     // [psia]
	o.M = 28.97                                         // [lbm/lbmol]
	o.Rho = 144.0 * o.Patm / (o.R * (o.Temp + 459.67)) // [lbm/ft³]  60°F
}
