/*
 * hydrogen.go, part of gohbond.
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
	v3 "github.com/rmera/gohbond/v3"
)

//BondedHydrogen returns the index of the first hydrogen in atom order that
//belongs to the donor's residue (same chain and MolID) and sits within
//XHBondMax of it, or -1 if there is none. Absence is the normal case for
//structures determined without hydrogens. When several hydrogens are in
//covalent range, the first one wins; no disambiguation by bond graph is
//attempted.
func BondedHydrogen(mol Atomer, coord *v3.Matrix, donor int) int {
	return bondedHydrogen(mol, coord, donor, v3.Zeros(1))
}

func bondedHydrogen(mol Atomer, coord *v3.Matrix, donor int, temp *v3.Matrix) int {
	da := mol.Atom(donor)
	dv := coord.VecView(donor)
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		if at.Symbol != "H" || at.Chain != da.Chain || at.MolID != da.MolID {
			continue
		}
		if !coord.Finite(i) {
			continue
		}
		if dist(dv, coord.VecView(i), temp) <= XHBondMax {
			return i
		}
	}
	return -1
}
