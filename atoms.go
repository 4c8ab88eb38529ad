/*
 * atoms.go, part of gohbond.
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

//Atom contains the metadata for one atom. Coordinates are kept apart, in a
//v3.Matrix with the same indexing as the Atomer, as goChem does.
type Atom struct {
	Name    string //PDB atom name, "N", "CA", "OD1"...
	Molname string //3-letter residue name
	MolID   int    //residue sequence number
	Chain   string
	Symbol  string //element symbol, "H" for hydrogen
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("gohbond: Attempted to copy a nil atom")
	}
	at := new(Atom)
	*at = *A
	return at
}

//Atomer is the interface between the host program's structure representation
//and this library. Anything that can hand out atoms by index can be searched
//for hydrogen bonds.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i.
	//Should panic if out of range.
	Atom(i int) *Atom

	Len() int
}

//Atoms is the trivial Atomer: a plain slice of atoms.
type Atoms []*Atom

//Atom returns the ith atom in the slice.
func (A Atoms) Atom(i int) *Atom {
	return A[i]
}

//Len returns the number of atoms in the slice.
func (A Atoms) Len() int {
	return len(A)
}

//Selection identifies one residue in the structure.
type Selection struct {
	Chain string
	MolID int
}

//Options controls one detection run. The zero values for MaxDistance and
//MinAngle mean "use the default"; use DefaultOptions to get the defaults
//spelled out. A bond closer than MinDonorAcceptorDist is never reported,
//whatever MaxDistance says.
type Options struct {
	MaxDistance float64    //donor-acceptor heavy atom distance ceiling, A. Default 3.5.
	MinAngle    float64    //donor-hydrogen-acceptor angle floor, degrees. Default 120.
	Radius      float64    //if >0 and Sel is given, only consider atoms within Radius of Sel's centroid.
	Sel         *Selection //focal residue for the Radius filter.
}

//DefaultOptions returns the customary detection thresholds: 3.5 A maximum
//donor-acceptor distance and 120 degree minimum angle, no spatial narrowing.
func DefaultOptions() *Options {
	return &Options{
		MaxDistance: DefaultMaxDistance,
		MinAngle:    DefaultMinAngle,
	}
}

//fill replaces zero-valued thresholds with the defaults. The original
//Options is not touched.
func (O *Options) fill() *Options {
	if O == nil {
		return DefaultOptions()
	}
	ret := *O
	if ret.MaxDistance == 0 {
		ret.MaxDistance = DefaultMaxDistance
	}
	if ret.MinAngle == 0 {
		ret.MinAngle = DefaultMinAngle
	}
	return &ret
}
