/*
 * v3_test.go, part of gohbond.
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

package v3

import (
	"math"
	"testing"
)

func TestVecOps(Te *testing.T) {
	a, err := NewMatrix([]float64{1, 0, 0, 0, 2, 0})
	if err != nil {
		Te.Fatal(err)
	}
	if a.NVecs() != 2 || a.Len() != 2 {
		Te.Errorf("Wrong vector count: %d", a.NVecs())
	}
	v1 := a.VecView(0)
	v2 := a.VecView(1)
	if d := v1.Dot(v2); d != 0 {
		Te.Errorf("Orthogonal vectors with dot product %f", d)
	}
	diff := Zeros(1)
	diff.Sub(v1, v2)
	want := math.Sqrt(5)
	if n := diff.Norm(); math.Abs(n-want) > 1e-12 {
		Te.Errorf("Norm: got %f, want %f", n, want)
	}
	//a view must write through to the parent matrix
	v1.Set(0, 0, 3)
	if a.At(0, 0) != 3 {
		Te.Error("VecView did not return a view")
	}
}

func TestSomeVecs(Te *testing.T) {
	a, _ := NewMatrix([]float64{1, 1, 1, 2, 2, 2, 3, 3, 3})
	b := Zeros(2)
	b.SomeVecs(a, []int{2, 0})
	if b.At(0, 0) != 3 || b.At(1, 0) != 1 {
		Te.Errorf("SomeVecs picked wrong vectors: %v", b)
	}
}

func TestCross(Te *testing.T) {
	x, _ := NewMatrix([]float64{1, 0, 0})
	y, _ := NewMatrix([]float64{0, 1, 0})
	z := Zeros(1)
	z.Cross(x, y)
	if z.At(0, 0) != 0 || z.At(0, 1) != 0 || z.At(0, 2) != 1 {
		Te.Errorf("Cross product wrong: %v", z)
	}
}

func TestFinite(Te *testing.T) {
	a, _ := NewMatrix([]float64{0, 0, 0, math.NaN(), 0, 0, 0, math.Inf(1), 0})
	if !a.Finite(0) {
		Te.Error("Finite vector reported as non-finite")
	}
	if a.Finite(1) || a.Finite(2) {
		Te.Error("Non-finite vector reported as finite")
	}
}

func TestBadData(Te *testing.T) {
	if _, err := NewMatrix([]float64{1, 2, 3, 4}); err == nil {
		Te.Error("NewMatrix accepted data not divisible by 3")
	}
}
