/*
 * tables.go, part of gohbond.
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

//Geometric criteria. Thresholds from the donor-acceptor geometry
//conventions in Jeffrey, An Introduction to Hydrogen Bonding (1997).
const (
	DefaultMaxDistance = 3.5 //A, donor-acceptor
	DefaultMinAngle    = 120 //degrees, donor-hydrogen-acceptor

	//No donor-acceptor pair closer than this is a hydrogen bond;
	//at that range the contact is covalent or a clash.
	MinDonorAcceptorDist = 2.5

	//XHBondMax is the maximum distance at which an explicit hydrogen is
	//taken as covalently bonded to a donor (typical X-H bond length).
	XHBondMax = 1.2
)

//Strength bucket thresholds, first match wins: Strong, then Moderate,
//then everything else is Weak. Fixed by convention, not configurable.
const (
	strongMaxDist  = 2.8
	strongMinAngle = 150
	modMaxDist     = 3.2
	modMinAngle    = 135
)

//Elements that can play each role. Donors need a polar X-H, acceptors a
//lone pair.
var donorElements = map[string]bool{"N": true, "O": true, "S": true}
var acceptorElements = map[string]bool{"N": true, "O": true, "S": true, "F": true}

//Side-chain donor atom names per residue. The backbone amide N is a donor
//for every residue and is handled apart, so it is not listed here.
//Residues not in the table (including ligands and non-standard residues)
//contribute backbone donors only.
var sidechainDonors = map[string][]string{
	"ARG": {"NE", "NH1", "NH2"},
	"ASN": {"ND2"},
	"GLN": {"NE2"},
	"HIS": {"ND1", "NE2"},
	"LYS": {"NZ"},
	"SER": {"OG"},
	"THR": {"OG1"},
	"TRP": {"NE1"},
	"TYR": {"OH"},
	"CYS": {"SG"},
}

//Side-chain acceptor atom names per residue. The backbone carbonyl O is an
//acceptor for every residue and is handled apart. Hydroxyls and the HIS
//imidazole nitrogens appear in both tables since they can play both roles.
var sidechainAcceptors = map[string][]string{
	"ASP": {"OD1", "OD2"},
	"GLU": {"OE1", "OE2"},
	"ASN": {"OD1"},
	"GLN": {"OE1"},
	"HIS": {"ND1", "NE2"},
	"SER": {"OG"},
	"THR": {"OG1"},
	"TYR": {"OH"},
	"MET": {"SD"},
	"CYS": {"SG"},
}
