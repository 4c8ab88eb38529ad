/*
 * geometric.go, part of gohbond.
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

	v3 "github.com/rmera/gohbond/v3"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//Deg2Rad and Rad2Deg convert between degrees and radians on multiplication.
const (
	Deg2Rad = math.Pi / 180
	Rad2Deg = 180 / math.Pi
)

//Distance returns the Euclidean distance between the first vectors of
//a and b, in whatever unit the coordinates are (A, in this library).
func Distance(a, b *v3.Matrix) float64 {
	return dist(a, b, v3.Zeros(1))
}

//dist is Distance with caller-provided scratch, for hot loops.
func dist(a, b, temp *v3.Matrix) float64 {
	temp.Sub(a, b)
	return temp.Norm()
}

//Angle returns the angle, in degrees, at vertex between the rays towards
//arm1 and arm2, via the dot-product formula. The cosine is clamped to
//[-1,1] before the arccos, so accumulated floating point error can not
//produce a NaN. If either ray has zero length the angle is not defined;
//0.0 is returned rather than dividing by zero.
func Angle(vertex, arm1, arm2 *v3.Matrix) float64 {
	v1 := v3.Zeros(1)
	v2 := v3.Zeros(1)
	v1.Sub(arm1, vertex)
	v2.Sub(arm2, vertex)
	normproduct := v1.Norm() * v2.Norm()
	if normproduct <= appzero {
		return 0.0
	}
	argument := v1.Dot(v2) / normproduct
	//Take care of floating point math errors
	if argument > 1 {
		argument = 1
	} else if argument < -1 {
		argument = -1
	}
	angle := math.Acos(argument)
	if math.Abs(angle) <= appzero {
		return 0.0
	}
	return angle * Rad2Deg
}
