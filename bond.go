/*
 * bond.go, part of gohbond.
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

import "fmt"

//Strength is the coarse Strong/Moderate/Weak bucket for a detected bond,
//derived from distance and angle thresholds.
type Strength int

const (
	Weak Strength = iota
	Moderate
	Strong
)

//String returns the usual name for the bucket.
func (S Strength) String() string {
	switch S {
	case Strong:
		return "strong"
	case Moderate:
		return "moderate"
	default:
		return "weak"
	}
}

//MarshalJSON serializes the bucket by name, so external consumers don't
//depend on the numeric values.
func (S Strength) MarshalJSON() ([]byte, error) {
	return []byte(`"` + S.String() + `"`), nil
}

//UnmarshalJSON parses a bucket serialized by name, so reports written by
//this library (and by anything else speaking its JSON) read back losslessly.
//Unknown names are an error, not silently Weak.
func (S *Strength) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"strong"`:
		*S = Strong
	case `"moderate"`:
		*S = Moderate
	case `"weak"`:
		*S = Weak
	default:
		return CError{fmt.Sprintf("gohbond: unknown strength %s", data), []string{"Strength.UnmarshalJSON"}}
	}
	return nil
}

//BondAtom is the heavy-atom end of a detected bond, plain data ready
//for serialization.
type BondAtom struct {
	Chain    string     `json:"chain"`
	MolID    int        `json:"molid"`
	Molname  string     `json:"molname"`
	Name     string     `json:"name"`
	Position [3]float64 `json:"position"`
}

//BondHydrogen is the explicitly modeled hydrogen of a detected bond,
//when one was found.
type BondHydrogen struct {
	Name     string     `json:"name"`
	Position [3]float64 `json:"position"`
}

//Bond is one detected hydrogen bond. Bonds are pure values: they are built
//once per detection run and never mutated afterwards.
type Bond struct {
	ID       string        `json:"id"` //stable within one run, not globally unique.
	Donor    BondAtom      `json:"donor"`
	Hydrogen *BondHydrogen `json:"hydrogen,omitempty"` //nil when no explicit hydrogen was located.
	Acceptor BondAtom      `json:"acceptor"`
	Distance float64       `json:"distance"` //donor to acceptor heavy atom, A.
	Angle    float64       `json:"angle"`    //donor-hydrogen-acceptor, degrees. 180.0 when Hydrogen is nil.
	Strength Strength      `json:"strength"`
}

//String returns a one-line human-readable description of the bond.
func (B *Bond) String() string {
	h := "no-H"
	if B.Hydrogen != nil {
		h = B.Hydrogen.Name
	}
	return fmt.Sprintf("%s: %s%d-%s(%s) ... %s ... %s%d-%s(%s) D: %4.2f A: %5.1f (%s)",
		B.ID, B.Donor.Chain, B.Donor.MolID, B.Donor.Molname, B.Donor.Name, h,
		B.Acceptor.Chain, B.Acceptor.MolID, B.Acceptor.Molname, B.Acceptor.Name,
		B.Distance, B.Angle, B.Strength)
}
