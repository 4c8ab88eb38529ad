/*
 * plot.go, part of gohbond.
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

//Package hbplot draws diagnostic plots of detected hydrogen bonds with the
//gonum plot library. The distance-angle map is the geometric analogue of a
//Ramachandran plot: each bond is one point, and the Strong/Moderate/Weak
//regions are immediately visible as clusters.
package hbplot

import (
	"fmt"
	"image/color"

	hbond "github.com/rmera/gohbond"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicMap(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Distance (A)"
	p.Y.Label.Text = "Angle (deg)"
	//Constant axes, so maps from different structures compare by eye.
	p.X.Min = 2.4
	p.X.Max = 4.0
	p.Y.Min = 90
	p.Y.Max = 185
	p.Add(plotter.NewGrid())
	return p
}

var strengthColors = map[hbond.Strength]color.RGBA{
	hbond.Strong:   {R: 178, G: 34, B: 34, A: 255},
	hbond.Moderate: {R: 218, G: 165, B: 32, A: 255},
	hbond.Weak:     {R: 100, G: 149, B: 237, A: 255},
}

//DistanceAngleMap writes a PNG scatter plot of the bonds' distance vs
//angle, one color per strength bucket, to plotname.png.
func DistanceAngleMap(bonds []*hbond.Bond, title, plotname string) error {
	if bonds == nil {
		return fmt.Errorf("gohbond/hbplot: given nil bonds")
	}
	p := basicMap(title)
	for _, st := range []hbond.Strength{hbond.Strong, hbond.Moderate, hbond.Weak} {
		pts := make(plotter.XYs, 0, len(bonds))
		for _, b := range bonds {
			if b.Strength != st {
				continue
			}
			pts = append(pts, plotter.XY{X: b.Distance, Y: b.Angle})
		}
		if len(pts) == 0 {
			continue
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = strengthColors[st]
		p.Add(s)
		p.Legend.Add(st.String(), s)
	}
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(12*vg.Centimeter, 12*vg.Centimeter, filename)
}

//DistanceHisto writes a PNG histogram of the bonds' donor-acceptor
//distances to plotname.png.
func DistanceHisto(bonds []*hbond.Bond, title, plotname string, bins int) error {
	if len(bonds) == 0 {
		return fmt.Errorf("gohbond/hbplot: no bonds to plot")
	}
	vals := make(plotter.Values, 0, len(bonds))
	for _, b := range bonds {
		vals = append(vals, b.Distance)
	}
	h, err := plotter.NewHist(vals, bins)
	if err != nil {
		return err
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Distance (A)"
	p.Add(h)
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(12*vg.Centimeter, 8*vg.Centimeter, filename)
}
