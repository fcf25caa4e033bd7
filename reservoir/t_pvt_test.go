// Copyright 2020 The Petrocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reservoir

import (
	"testing"

	"github.com/Farzad0514/petrocalc/check"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_pvt01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pvt01. Standing bubble point")

	pb, err := BubblePointStanding(600, 0.75, 32, 180)
	if err != nil {
		tst.Errorf("BubblePointStanding failed: %v\n", err)
		return
	}
	io.Pforan("Pb = %v psia\n", pb)
	chk.Float64(tst, "Pb", 1e-9, pb, 2687.4343151087332)

	// correlation bounds
	_, err = BubblePointStanding(2000, 0.75, 32, 180)
	if err == nil {
		tst.Errorf("BubblePointStanding accepted GOR outside the correlation range\n")
		return
	}
	derr, ok := err.(*check.DomainError)
	if !ok {
		tst.Errorf("error is not a *check.DomainError: %T\n", err)
		return
	}
	if derr.Param != "gor" {
		tst.Errorf("wrong offending parameter: %q\n", derr.Param)
		return
	}
	if _, err := BubblePointStanding(600, 1.2, 32, 180); err == nil {
		tst.Errorf("BubblePointStanding accepted gas gravity outside the correlation range\n")
		return
	}
	if _, err := BubblePointStanding(600, 0.75, 10, 180); err == nil {
		tst.Errorf("BubblePointStanding accepted API outside the correlation range\n")
		return
	}
	if _, err := BubblePointStanding(600, 0.75, 32, 400); err == nil {
		tst.Errorf("BubblePointStanding accepted temperature outside the correlation range\n")
		return
	}
}

func Test_pvt02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pvt02. solution GOR by inversion")

	// round trip through the forward correlation
	pb, err := BubblePointStanding(600, 0.75, 32, 180)
	if err != nil {
		tst.Errorf("BubblePointStanding failed: %v\n", err)
		return
	}
	gor, err := SolutionGORStanding(pb, 0.75, 32, 180)
	if err != nil {
		tst.Errorf("SolutionGORStanding failed: %v\n", err)
		return
	}
	io.Pforan("Rs(Pb(600)) = %v scf/STB\n", gor)
	chk.Float64(tst, "round trip GOR", 1e-5, gor, 600.0)

	gor, err = SolutionGORStanding(2000, 0.75, 32, 180)
	if err != nil {
		tst.Errorf("SolutionGORStanding failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Rs at 2000 psia", 1e-5, gor, 421.93922752270595)

	// the inversion never leaves the correlation's GOR range, so its result
	// is always a valid input for the forward correlation
	for _, p := range []float64{150, 500, 2000, 5000} {
		gor, err = SolutionGORStanding(p, 0.75, 32, 180)
		if err != nil {
			tst.Errorf("SolutionGORStanding failed at %v psia: %v\n", p, err)
			return
		}
		if gor < 20 || gor > 1425 {
			tst.Errorf("GOR outside the correlation range at %v psia: %v\n", p, gor)
			return
		}
		if _, err = BubblePointStanding(gor, 0.75, 32, 180); err != nil {
			tst.Errorf("inverted GOR rejected by the forward correlation: %v\n", err)
			return
		}
	}

	// pressures beyond the invertible range of the correlation
	_, err = SolutionGORStanding(50000, 0.75, 32, 180)
	if err == nil {
		tst.Errorf("SolutionGORStanding accepted a pressure above the invertible range\n")
		return
	}
	if _, ok := err.(*check.DomainError); !ok {
		tst.Errorf("high pressure did not surface as a *check.DomainError: %T\n", err)
		return
	}
	io.Pforan("above range: %v\n", err)

	_, err = SolutionGORStanding(100, 0.75, 32, 180)
	if err == nil {
		tst.Errorf("SolutionGORStanding accepted a pressure below the invertible range\n")
		return
	}
	derr, ok := err.(*check.DomainError)
	if !ok {
		tst.Errorf("low pressure did not surface as a *check.DomainError: %T\n", err)
		return
	}
	if derr.Param != "pres" {
		tst.Errorf("wrong offending parameter: %q\n", derr.Param)
		return
	}
	io.Pforan("below range: %v\n", err)
}

func Test_pvt03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pvt03. Standing oil FVF")

	bo, err := OilFVFStanding(600, 0.75, 32, 180)
	if err != nil {
		tst.Errorf("OilFVFStanding failed: %v\n", err)
		return
	}
	io.Pforan("Bo = %v bbl/STB\n", bo)
	chk.Float64(tst, "Bo", 1e-12, bo, 1.3324017929889955)

	// swelling: more dissolved gas means a larger FVF
	bo2, err := OilFVFStanding(900, 0.75, 32, 180)
	if err != nil {
		tst.Errorf("OilFVFStanding failed: %v\n", err)
		return
	}
	if bo2 <= bo {
		tst.Errorf("Bo must grow with GOR: %v <= %v\n", bo2, bo)
		return
	}
}

func Test_vol01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vol01. volumetric OOIP")

	n, err := OriginalOilInPlace(640, 50, 0.2, 0.25, 1.33)
	if err != nil {
		tst.Errorf("OriginalOilInPlace failed: %v\n", err)
		return
	}
	chk.Float64(tst, "OOIP [STB]", 1e-6, n, 2.7998796992481202e7)

	res, err := RecoverableReserves(n, 0.35)
	if err != nil {
		tst.Errorf("RecoverableReserves failed: %v\n", err)
		return
	}
	chk.Float64(tst, "reserves [STB]", 1e-6, res, 0.35*n)

	if _, err := OriginalOilInPlace(640, 50, 1.2, 0.25, 1.33); err == nil {
		tst.Errorf("OriginalOilInPlace accepted a porosity above one\n")
		return
	}
	if _, err := RecoverableReserves(n, 1.5); err == nil {
		tst.Errorf("RecoverableReserves accepted a recovery factor above one\n")
		return
	}
}
