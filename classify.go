/*
 * classify.go, part of gohbond.
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

//IsDonor reports whether an atom with the given name, element symbol and
//residue name can donate a hydrogen bond. The backbone amide N qualifies for
//every residue; side-chain atoms qualify only if listed for their residue.
//Pure function of its three arguments.
func IsDonor(name, symbol, molname string) bool {
	if !donorElements[symbol] {
		return false
	}
	if name == "N" { //backbone amide
		return true
	}
	return isInString(sidechainDonors[molname], name)
}

//IsAcceptor reports whether an atom with the given name, element symbol and
//residue name can accept a hydrogen bond. The backbone carbonyl O qualifies
//for every residue; side-chain atoms qualify only if listed for their
//residue. Pure function of its three arguments.
func IsAcceptor(name, symbol, molname string) bool {
	if !acceptorElements[symbol] {
		return false
	}
	if name == "O" { //backbone carbonyl
		return true
	}
	return isInString(sidechainAcceptors[molname], name)
}

//classify buckets a bond by its geometry. Ordered rule evaluation,
//first match wins.
func classify(distance, angle float64) Strength {
	if distance < strongMaxDist && angle > strongMinAngle {
		return Strong
	}
	if distance < modMaxDist && angle > modMinAngle {
		return Moderate
	}
	return Weak
}

func isInString(container []string, test string) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}
