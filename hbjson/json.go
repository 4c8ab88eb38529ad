/*
 * json.go, part of gohbond.
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
	"encoding/json"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	hbond "github.com/rmera/gohbond"
)

//Report is a ready-to-serialize container for the outcome of one detection
//run: the thresholds used and every bond found.
type Report struct {
	NBonds      int           `json:"nbonds"`
	MaxDistance float64       `json:"max_distance"`
	MinAngle    float64       `json:"min_angle"`
	Bonds       []*hbond.Bond `json:"bonds"`
}

//NewReport builds a Report from detected bonds and the options that
//produced them. opt can be nil, in which case the defaults are recorded.
func NewReport(bonds []*hbond.Bond, opt *hbond.Options) *Report {
	if opt == nil {
		opt = hbond.DefaultOptions()
	}
	return &Report{
		NBonds:      len(bonds),
		MaxDistance: opt.MaxDistance,
		MinAngle:    opt.MinAngle,
		Bonds:       bonds,
	}
}

//Send encodes the report and writes it to out, returning an error or nil.
func (R *Report) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(R); err != nil {
		return NewError("Report.Send", err)
	}
	return nil
}

//SendCompressed writes the report to out as a zstd-compressed JSON stream.
func (R *Report) SendCompressed(out io.Writer) *Error {
	z, err := zstd.NewWriter(out)
	if err != nil {
		return NewError("Report.SendCompressed", err)
	}
	if jerr := R.Send(z); jerr != nil {
		z.Close()
		return jerr
	}
	if err := z.Close(); err != nil {
		return NewError("Report.SendCompressed", err)
	}
	return nil
}

//ReadReport decodes a report from a plain JSON stream.
func ReadReport(in io.Reader) (*Report, *Error) {
	R := new(Report)
	dec := json.NewDecoder(in)
	if err := dec.Decode(R); err != nil {
		return nil, NewError("ReadReport", err)
	}
	return R, nil
}

//ReadReportCompressed decodes a report from a zstd-compressed JSON stream.
func ReadReportCompressed(in io.Reader) (*Report, *Error) {
	z, err := zstd.NewReader(in)
	if err != nil {
		return nil, NewError("ReadReportCompressed", err)
	}
	defer z.Close()
	return ReadReport(z)
}

//Error is an easily JSON-serializable error type. If IsError is false
//(no error) all the other fields are at their zero values.
type Error struct {
	deco     []string
	IsError  bool   `json:"is_error"`
	Function string `json:"function"` //which go function gave the error
	Message  string `json:"message"`  //the error itself
}

//Error implements the error interface.
func (J *Error) Error() string {
	return J.Message
}

//Decorate adds the dec string to the decoration slice of strings of the
//error, and returns the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

//Marshal serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - ")) // Yo, dawg, I heard you like errors, so I got an error while serializing your error so you can... you know the drill.
	}
	return ret
}

//NewError takes an error and the function where it happened, and builds a
//json-marshal-able error.
func NewError(function string, err error) *Error {
	return &Error{
		IsError:  true,
		Function: function,
		Message:  err.Error(),
	}
}
