/*
 * filter.go, part of gohbond.
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

//ResidueCentroid returns the centroid (plain mean, no mass weighting) of the
//finite-coordinate atoms of the residue sel identifies, as a 1x3 matrix, or
//nil if the structure has no such atoms. A nil return is not an error: the
//radius filter just becomes a no-op.
func ResidueCentroid(mol Atomer, coord *v3.Matrix, sel *Selection) *v3.Matrix {
	sum := v3.Zeros(1)
	n := 0
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		if at.Chain != sel.Chain || at.MolID != sel.MolID {
			continue
		}
		if !coord.Finite(i) {
			continue
		}
		sum.Add(sum, coord.VecView(i))
		n++
	}
	if n == 0 {
		return nil
	}
	sum.Scale(1/float64(n), sum)
	return sum
}

//filterByRadius keeps only the indexes whose coordinates lie within radius
//of center. center==nil (selected residue absent from the structure) keeps
//the full set.
func filterByRadius(indexes []int, coord, center *v3.Matrix, radius float64, temp *v3.Matrix) []int {
	if center == nil {
		return indexes
	}
	ret := make([]int, 0, len(indexes))
	for _, i := range indexes {
		if dist(coord.VecView(i), center, temp) <= radius {
			ret = append(ret, i)
		}
	}
	return ret
}
