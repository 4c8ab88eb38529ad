/*
 * detect.go, part of gohbond.
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
	"fmt"
	"log"

	v3 "github.com/rmera/gohbond/v3"
)

//Detect enumerates the hydrogen bonds in a structure. mol and coord must
//have the same length and indexing; opt can be nil, meaning DefaultOptions.
//Atoms with non-finite coordinates are left out of every calculation. An
//empty or nil structure yields an empty list, not an error. For a fixed
//input the output list is identical call after call, bonds in donor-major
//atom order, each with a sequential ID.
//
//The scan is a plain donor x acceptor cross product, O(D*A); the radius
//filter in opt is the lever to narrow it around a focal residue.
func Detect(mol Atomer, coord *v3.Matrix, opt *Options) ([]*Bond, error) {
	bonds := make([]*Bond, 0, 30)
	if mol == nil || mol.Len() == 0 {
		log.Println("gohbond: Detect called over an empty structure")
		return bonds, nil
	}
	if coord == nil || coord.NVecs() != mol.Len() {
		return nil, CError{"gohbond: coordinates and atoms don't match", []string{"Detect"}}
	}
	opt = opt.fill()
	temp := v3.Zeros(1) //scratch for all the distance math in this run
	donors := make([]int, 0, mol.Len()/4)
	acceptors := make([]int, 0, mol.Len()/4)
	for i := 0; i < mol.Len(); i++ {
		if !coord.Finite(i) {
			continue
		}
		at := mol.Atom(i)
		if IsDonor(at.Name, at.Symbol, at.Molname) {
			donors = append(donors, i)
		}
		if IsAcceptor(at.Name, at.Symbol, at.Molname) {
			acceptors = append(acceptors, i)
		}
	}
	if opt.Radius > 0 && opt.Sel != nil {
		center := ResidueCentroid(mol, coord, opt.Sel)
		donors = filterByRadius(donors, coord, center, opt.Radius, temp)
		acceptors = filterByRadius(acceptors, coord, center, opt.Radius, temp)
	}
	for _, d := range donors {
		//The donor's hydrogen doesn't depend on the acceptor, so look it
		//up once per donor, not once per pair.
		h := bondedHydrogen(mol, coord, d, temp)
		dv := coord.VecView(d)
		for _, a := range acceptors {
			b := evaluatePair(mol, coord, dv, d, a, h, opt, temp)
			if b == nil {
				continue
			}
			b.ID = fmt.Sprintf("HB%d", len(bonds)+1)
			bonds = append(bonds, b)
		}
	}
	return bonds, nil
}

//EvaluatePair applies the full geometric test to one donor/acceptor pair,
//returning the resulting bond, or nil if the pair doesn't qualify. The
//returned bond carries no ID; Detect assigns those. Mostly useful to
//interrogate one specific contact.
func EvaluatePair(mol Atomer, coord *v3.Matrix, donor, acceptor int, opt *Options) *Bond {
	opt = opt.fill()
	temp := v3.Zeros(1)
	if !coord.Finite(donor) || !coord.Finite(acceptor) {
		return nil
	}
	da := mol.Atom(donor)
	aa := mol.Atom(acceptor)
	if !IsDonor(da.Name, da.Symbol, da.Molname) || !IsAcceptor(aa.Name, aa.Symbol, aa.Molname) {
		return nil
	}
	return evaluatePair(mol, coord, coord.VecView(donor), donor, acceptor, bondedHydrogen(mol, coord, donor, temp), opt, temp)
}

//evaluatePair is the per-pair core. dv is the donor's coordinate view,
//hoisted by the caller since it doesn't change across acceptors; h is the
//index of the donor's explicit hydrogen, or -1. Rejections, in order:
//intra-residue pair, distance outside [MinDonorAcceptorDist, MaxDistance],
//angle under MinAngle. Without an explicit hydrogen the angle is taken as
//an idealized linear 180.0.
func evaluatePair(mol Atomer, coord *v3.Matrix, dv *v3.Matrix, donor, acceptor, h int, opt *Options, temp *v3.Matrix) *Bond {
	da := mol.Atom(donor)
	aa := mol.Atom(acceptor)
	if da.Chain == aa.Chain && da.MolID == aa.MolID {
		return nil //no intra-residue bonds
	}
	av := coord.VecView(acceptor)
	distance := dist(dv, av, temp)
	if distance < MinDonorAcceptorDist || distance > opt.MaxDistance {
		return nil
	}
	angle := 180.0 //idealized linear geometry when no hydrogen is modeled
	var hydrogen *BondHydrogen
	if h >= 0 {
		angle = Angle(coord.VecView(h), dv, av)
		hydrogen = &BondHydrogen{
			Name:     mol.Atom(h).Name,
			Position: position(coord, h),
		}
	}
	if angle < opt.MinAngle {
		return nil
	}
	return &Bond{
		Donor:    bondAtom(da, coord, donor),
		Hydrogen: hydrogen,
		Acceptor: bondAtom(aa, coord, acceptor),
		Distance: distance,
		Angle:    angle,
		Strength: classify(distance, angle),
	}
}

func bondAtom(at *Atom, coord *v3.Matrix, i int) BondAtom {
	return BondAtom{
		Chain:    at.Chain,
		MolID:    at.MolID,
		Molname:  at.Molname,
		Name:     at.Name,
		Position: position(coord, i),
	}
}

func position(coord *v3.Matrix, i int) [3]float64 {
	return [3]float64{coord.At(i, 0), coord.At(i, 1), coord.At(i, 2)}
}
