/*
 * json_test.go, part of gohbond.
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

package hbjson

import (
	"bytes"
	"strings"
	"testing"

	hbond "github.com/rmera/gohbond"
	v3 "github.com/rmera/gohbond/v3"
)

func detectSome(Te *testing.T) []*hbond.Bond {
	mol := hbond.Atoms{
		{Name: "N", Molname: "GLY", MolID: 1, Chain: "A", Symbol: "N"},
		{Name: "O", Molname: "GLY", MolID: 5, Chain: "A", Symbol: "O"},
	}
	coord, err := v3.NewMatrix([]float64{0, 0, 0, 0, 0, 3.0})
	if err != nil {
		Te.Fatal(err)
	}
	bonds, err2 := hbond.Detect(mol, coord, nil)
	if err2 != nil {
		Te.Fatal(err2)
	}
	if len(bonds) != 1 {
		Te.Fatalf("Setup structure should give 1 bond, got %d", len(bonds))
	}
	return bonds
}

func TestReportRoundTrip(Te *testing.T) {
	bonds := detectSome(Te)
	R := NewReport(bonds, nil)
	var buf bytes.Buffer
	if jerr := R.Send(&buf); jerr != nil {
		Te.Fatal(jerr)
	}
	if !strings.Contains(buf.String(), `"strength":"moderate"`) {
		Te.Errorf("Strength not serialized by name: %s", buf.String())
	}
	R2, jerr := ReadReport(&buf)
	if jerr != nil {
		Te.Fatal(jerr)
	}
	if R2.NBonds != 1 || len(R2.Bonds) != 1 {
		Te.Fatalf("Wrong bond count after round trip: %d", R2.NBonds)
	}
	if R2.Bonds[0].ID != bonds[0].ID || R2.Bonds[0].Distance != bonds[0].Distance {
		Te.Error("Bond mangled in transit")
	}
	if R2.Bonds[0].Strength != bonds[0].Strength {
		Te.Errorf("Strength mangled in transit: got %v, want %v", R2.Bonds[0].Strength, bonds[0].Strength)
	}
	if R2.MaxDistance != hbond.DefaultMaxDistance {
		Te.Errorf("Options not recorded: %f", R2.MaxDistance)
	}
}

func TestReportCompressed(Te *testing.T) {
	bonds := detectSome(Te)
	R := NewReport(bonds, hbond.DefaultOptions())
	var buf bytes.Buffer
	if jerr := R.SendCompressed(&buf); jerr != nil {
		Te.Fatal(jerr)
	}
	//a zstd stream is not readable as plain JSON
	if _, jerr := ReadReport(bytes.NewReader(buf.Bytes())); jerr == nil {
		Te.Error("Compressed stream decoded as plain JSON")
	}
	R2, jerr := ReadReportCompressed(&buf)
	if jerr != nil {
		Te.Fatal(jerr)
	}
	if R2.NBonds != 1 {
		Te.Errorf("Wrong bond count after compressed round trip: %d", R2.NBonds)
	}
}

func TestJSONError(Te *testing.T) {
	err := NewError("TestJSONError", &Error{IsError: true, Message: "boom"})
	m := err.Marshal()
	if !strings.Contains(string(m), `"boom"`) || !strings.Contains(string(m), "TestJSONError") {
		Te.Errorf("Error serialization wrong: %s", m)
	}
	err.Decorate("caller1")
	if d := err.Decorate(""); len(d) != 1 || d[0] != "caller1" {
		Te.Errorf("Decoration wrong: %v", d)
	}
}
