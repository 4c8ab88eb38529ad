/*
 * v3.go, part of gohbond.
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
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//Matrix is a set of vectors in 3D space. Within the package it is understood
//that a "vector" is a row vector, i.e. the cartesian coordinates of a point
//in 3D space.
type Matrix struct {
	*mat.Dense
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//NewMatrix creates and returns a Matrix with the given data, which must have
//a length divisible by 3, as the Matrix will have 3 columns.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	if len(data)%cols != 0 {
		return nil, Error(fmt.Sprintf("gohbond/v3: data length %d not divisible by 3", len(data)))
	}
	r := len(data) / cols
	return &Matrix{mat.NewDense(r, cols, data)}, nil
}

//Dense2Matrix returns a Matrix backed by the given Dense. It panics if
//the Dense doesn't have exactly 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(not3xXMatrix)
	}
	return &Matrix{A}
}

//VecView returns a view (not a copy) of the ith vector of the Matrix.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.RawRowView(i)
	return &Matrix{mat.NewDense(1, 3, r)}
}

//NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(not3xXMatrix)
	}
	return r
}

//Len returns the number of vectors in F. It is an alias for NVecs, so
//coordinate sets and their Atomer counterparts answer the same question
//with the same name.
func (F *Matrix) Len() int {
	return F.NVecs()
}

//Sub puts the difference A-B in the receiver. Panics on shape mismatch.
func (F *Matrix) Sub(A, B *Matrix) {
	F.Dense.Sub(A.Dense, B.Dense)
}

//Add puts the sum A+B in the receiver. Panics on shape mismatch.
func (F *Matrix) Add(A, B *Matrix) {
	F.Dense.Add(A.Dense, B.Dense)
}

//Scale scales every element of A by v, putting the result in the receiver.
func (F *Matrix) Scale(v float64, A *Matrix) {
	F.Dense.Scale(v, A.Dense)
}

//Copy copies A into the receiver. Panics on shape mismatch.
func (F *Matrix) Copy(A *Matrix) {
	F.Dense.Copy(A.Dense)
}

//Norm returns the Frobenius norm of the Matrix, which, for a single
//vector, is its Euclidean norm.
func (F *Matrix) Norm() float64 {
	return mat.Norm(F.Dense, 2)
}

//Dot returns the dot product of the first vectors of F and B.
func (F *Matrix) Dot(B *Matrix) float64 {
	if F.NVecs() < 1 || B.NVecs() < 1 {
		panic("gohbond/v3: Dot needs at least one vector on each operand")
	}
	var d float64
	for j := 0; j < 3; j++ {
		d += F.At(0, j) * B.At(0, j)
	}
	return d
}

//Cross puts the cross product of the first vecs of a and b in the first vec
//of F. Panics if any operand has no vectors.
func (F *Matrix) Cross(a, b *Matrix) {
	if a.NVecs() < 1 || b.NVecs() < 1 || F.NVecs() < 1 {
		panic("gohbond/v3: Invalid Matrix for Cross")
	}
	F.Set(0, 0, a.At(0, 1)*b.At(0, 2)-a.At(0, 2)*b.At(0, 1))
	F.Set(0, 1, a.At(0, 2)*b.At(0, 0)-a.At(0, 0)*b.At(0, 2))
	F.Set(0, 2, a.At(0, 0)*b.At(0, 1)-a.At(0, 1)*b.At(0, 0))
}

//SomeVecs puts in F a matrix containing the ith vectors of matrix A,
//where i are the numbers in clist, in the order given by clist.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	fr, _ := F.Dims()
	if fr != len(clist) {
		panic(mat.ErrShape)
	}
	for k, i := range clist {
		for j := 0; j < 3; j++ {
			F.Set(k, j, A.At(i, j))
		}
	}
}

//Finite returns true only if every component of the ith vector of F is
//neither NaN nor an infinity.
func (F *Matrix) Finite(i int) bool {
	for j := 0; j < 3; j++ {
		v := F.At(i, j)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

//String returns a neat string representation of a Matrix.
func (F *Matrix) String() string {
	r, _ := F.Dims()
	v := make([]string, 0, r+2)
	v = append(v, "\n[")
	for i := 0; i < r; i++ {
		v = append(v, fmt.Sprintf(" %6.2f %6.2f %6.2f", F.At(i, 0), F.At(i, 1), F.At(i, 2)))
	}
	v = append(v, " ]")
	return strings.Join(v, "\n")
}

const not3xXMatrix = "gohbond/v3: A Matrix should have 3 columns"

//Error is the error type for the v3 package. It implements the error
//interface and, unlike the errors in the parent package, carries no
//decoration: v3 errors are always programmer errors.
type Error string

func (err Error) Error() string { return string(err) }
