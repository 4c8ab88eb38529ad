/*
 * stat_test.go, part of gohbond.
 *
 * Copyright 2024 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * gohbond is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package hbstat

import (
	"math"
	"testing"

	hbond "github.com/rmera/gohbond"
)

func someBonds() []*hbond.Bond {
	return []*hbond.Bond{
		{ID: "HB1", Distance: 2.7, Angle: 170, Strength: hbond.Strong},
		{ID: "HB2", Distance: 3.0, Angle: 150, Strength: hbond.Moderate},
		{ID: "HB3", Distance: 3.4, Angle: 130, Strength: hbond.Weak},
		{ID: "HB4", Distance: 3.1, Angle: 142, Strength: hbond.Moderate},
	}
}

func TestSummarize(Te *testing.T) {
	S := Summarize(someBonds())
	if S.N != 4 || S.Strong != 1 || S.Moderate != 2 || S.Weak != 1 {
		Te.Errorf("Counts wrong: %s", S)
	}
	wantMeanD := (2.7 + 3.0 + 3.4 + 3.1) / 4
	if math.Abs(S.MeanDistance-wantMeanD) > 1e-12 {
		Te.Errorf("Mean distance: got %f, want %f", S.MeanDistance, wantMeanD)
	}
	wantMeanA := (170.0 + 150 + 130 + 142) / 4
	if math.Abs(S.MeanAngle-wantMeanA) > 1e-12 {
		Te.Errorf("Mean angle: got %f, want %f", S.MeanAngle, wantMeanA)
	}
	if S.StdevDistance <= 0 || S.StdevAngle <= 0 {
		Te.Errorf("Spread missing: %s", S)
	}
}

func TestSummarizeEmpty(Te *testing.T) {
	S := Summarize(nil)
	if S.N != 0 {
		Te.Errorf("Counts on empty set: %s", S)
	}
	if math.IsNaN(S.MeanDistance) || math.IsNaN(S.StdevDistance) {
		Te.Error("NaN leaked out of an empty summary")
	}
}

func TestHistogram(Te *testing.T) {
	D, err := UniformData(2.5, 3.5, 4) //bins of 0.25
	if err != nil {
		Te.Fatal(err)
	}
	D.Add(Distances(someBonds())...)
	counts := D.Counts()
	//2.7 -> bin 0; 3.0, 3.1 -> bin 2; 3.4 -> bin 3
	want := []float64{1, 0, 2, 1}
	for i := range want {
		if counts[i] != want[i] {
			Te.Fatalf("Histogram: got %v, want %v", counts, want)
		}
	}
	//out of range values are dropped, not binned
	D.Add(1.0, 3.5, 99)
	if tot := sum(D.Counts()); tot != 4 {
		Te.Errorf("Out-of-range values were binned, total %g", tot)
	}
}

func TestBadDividers(Te *testing.T) {
	if _, err := NewData([]float64{1}); err == nil {
		Te.Error("Single divider accepted")
	}
	if _, err := NewData([]float64{2, 1}); err == nil {
		Te.Error("Unsorted dividers accepted")
	}
	if _, err := UniformData(3, 2, 5); err == nil {
		Te.Error("Inverted range accepted")
	}
}

func sum(v []float64) float64 {
	var t float64
	for _, x := range v {
		t += x
	}
	return t
}
