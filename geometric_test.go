/*
 * geometric_test.go, part of gohbond.
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

package hbond

import (
	"math"
	"testing"

	v3 "github.com/rmera/gohbond/v3"
)

func vec(x, y, z float64) *v3.Matrix {
	m, err := v3.NewMatrix([]float64{x, y, z})
	if err != nil {
		panic(err.Error())
	}
	return m
}

func TestDistance(Te *testing.T) {
	if d := Distance(vec(0, 0, 0), vec(3, 4, 0)); math.Abs(d-5) > 1e-12 {
		Te.Errorf("3-4-5 triangle broke: %f", d)
	}
	if d := Distance(vec(1, 1, 1), vec(1, 1, 1)); d != 0 {
		Te.Errorf("Distance to self: %f", d)
	}
}

func TestAngle(Te *testing.T) {
	cases := []struct {
		vertex, arm1, arm2 *v3.Matrix
		want               float64
	}{
		{vec(0, 0, 0), vec(1, 0, 0), vec(0, 1, 0), 90},
		{vec(0, 0, 0), vec(1, 0, 0), vec(-1, 0, 0), 180},
		{vec(0, 0, 0), vec(1, 0, 0), vec(2, 0, 0), 0},
		{vec(0, 0, 1), vec(0, 0, 0), vec(0, 0, 2.7), 180}, //vertex off origin
		{vec(0, 0, 0), vec(1, 0, 0), vec(1, 1, 0), 45},
	}
	for _, c := range cases {
		if got := Angle(c.vertex, c.arm1, c.arm2); math.Abs(got-c.want) > 1e-9 {
			Te.Errorf("Angle: got %f, want %f", got, c.want)
		}
	}
}

//A zero-length arm means the angle is undefined; we want 0.0, not NaN.
func TestAngleDegenerate(Te *testing.T) {
	got := Angle(vec(1, 1, 1), vec(1, 1, 1), vec(2, 2, 2))
	if math.IsNaN(got) || got != 0.0 {
		Te.Errorf("Degenerate angle: got %f, want 0.0", got)
	}
}

//Near-collinear arms can push the cosine slightly out of [-1,1] by
//floating point error; the clamp must keep Acos defined.
func TestAngleClamp(Te *testing.T) {
	//these arms are collinear by construction, but computing their norms
	//and dot product accumulates rounding either way
	a := vec(0.1+0.2, 0.3, 0.7)
	b := vec(-3*(0.1+0.2), -3*0.3, -3*0.7)
	got := Angle(vec(0, 0, 0), a, b)
	if math.IsNaN(got) {
		Te.Fatal("Clamp failed, got NaN")
	}
	if math.Abs(got-180) > 1e-6 {
		Te.Errorf("Near-collinear angle: got %f, want 180", got)
	}
}
