/*
 * doc.go, part of gohbond.
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

/*Package hbond detects and classifies hydrogen bonds in static molecular
structures from their geometry alone.



	**gohbond Capabilities**

    Enumerates donor/acceptor pairs satisfying distance and angle criteria
	for a hydrogen bond, over any structure exposed as an Atomer plus an
	Nx3 coordinate matrix.

    Classifies donor and acceptor capability from element plus per-residue
	atom-name tables (backbone N/O always qualify).

    Locates explicitly modeled hydrogens covalently bonded to a donor
	(<= 1.2 A) and measures the donor-hydrogen-acceptor angle at the
	hydrogen. Structures without hydrogens, the common case for
	experimentally determined proteins, fall back to an idealized linear
	(180 degree) geometry.

    Buckets each detected bond as Strong, Moderate or Weak following the
	usual distance/angle conventions of structural biology.

    Optionally narrows the search to the neighborhood of one residue
	(every candidate within a radius of the residue centroid).

    Subpackages serialize results to (optionally zstd-compressed) JSON
	(hbjson), summarize their geometry distributions (hbstat) and draw
	distance-angle maps (hbplot).


The detector is a pure computation: it reads an immutable snapshot, holds no
state between calls, and is safe to invoke from as many goroutines as wanted.

Note that the angle reported for bonds without an explicit hydrogen is an
idealized 180.0, not a measurement, and that when a donor has several
hydrogens within covalent range the first one in atom order is taken, with
no chemical disambiguation. Both are deliberate simplifications.

Loading structures from files, rendering and everything else that is not
geometry belongs to the host program; see goChem (github.com/rmera/gochem)
for reading PDB/XYZ files into something easily adapted to an Atomer.
*/
package hbond
