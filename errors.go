/*
 * errors.go, part of gohbond.
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

//Error is the interface for errors in this library, the same scheme goChem
//uses. The Decorate method allows adding and retrieving info from the error
//without changing its type or wrapping it around something else. Each call
//appends the given string (normally the name of the caller, possibly with
//extra info as "FunctionName: Extra info") and returns the resulting slice.
//If passed an empty string it just returns the current decoration.
type Error interface {
	Error() string
	Decorate(string) []string
}

//CError (Concrete Error) is the concrete type implementing Error
//in this package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate adds the dec string to the decoration slice, and returns the
//resulting slice.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
