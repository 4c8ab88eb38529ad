/*
 * stat.go, part of gohbond.
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

//Package hbstat summarizes the geometry of a set of detected hydrogen
//bonds: per-strength counts, moments and histograms of the distance and
//angle distributions.
package hbstat

import (
	"fmt"
	"sort"
	"strings"

	hbond "github.com/rmera/gohbond"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Summary holds the aggregate geometry of a bond set. Mean and standard
//deviation are zero, not NaN, for an empty set.
type Summary struct {
	N             int     `json:"n"`
	Strong        int     `json:"strong"`
	Moderate      int     `json:"moderate"`
	Weak          int     `json:"weak"`
	MeanDistance  float64 `json:"mean_distance"`
	StdevDistance float64 `json:"stdev_distance"`
	MeanAngle     float64 `json:"mean_angle"`
	StdevAngle    float64 `json:"stdev_angle"`
}

//Summarize computes the Summary for a set of bonds.
func Summarize(bonds []*hbond.Bond) *Summary {
	S := &Summary{N: len(bonds)}
	for _, b := range bonds {
		switch b.Strength {
		case hbond.Strong:
			S.Strong++
		case hbond.Moderate:
			S.Moderate++
		default:
			S.Weak++
		}
	}
	if len(bonds) == 0 {
		return S
	}
	d := Distances(bonds)
	a := Angles(bonds)
	S.MeanDistance = stat.Mean(d, nil)
	S.MeanAngle = stat.Mean(a, nil)
	if len(bonds) > 1 {
		S.StdevDistance = stat.StdDev(d, nil)
		S.StdevAngle = stat.StdDev(a, nil)
	}
	return S
}

func (S *Summary) String() string {
	return fmt.Sprintf("n:%d (s:%d m:%d w:%d) D: %4.2f+/-%4.2f A: %5.1f+/-%5.1f",
		S.N, S.Strong, S.Moderate, S.Weak, S.MeanDistance, S.StdevDistance,
		S.MeanAngle, S.StdevAngle)
}

//Distances returns the donor-acceptor distances of the bonds, in order.
func Distances(bonds []*hbond.Bond) []float64 {
	ret := make([]float64, len(bonds))
	for i, b := range bonds {
		ret[i] = b.Distance
	}
	return ret
}

//Angles returns the donor-hydrogen-acceptor angles of the bonds, in order.
func Angles(bonds []*hbond.Bond) []float64 {
	ret := make([]float64, len(bonds))
	for i, b := range bonds {
		ret[i] = b.Angle
	}
	return ret
}

//Data is a histogram. The dividers work as in gonum's stat.Histogram:
//n dividers delimit n-1 bins, values outside [dividers[0], dividers[n-1])
//are dropped.
type Data struct {
	dividers []float64
	counts   []float64
}

//NewData returns a histogram with the given dividers, which must be sorted
//and at least 2.
func NewData(dividers []float64) (*Data, error) {
	if len(dividers) < 2 {
		return nil, fmt.Errorf("gohbond/hbstat: need at least 2 dividers, got %d", len(dividers))
	}
	if !sort.Float64sAreSorted(dividers) {
		return nil, fmt.Errorf("gohbond/hbstat: dividers not sorted")
	}
	return &Data{dividers: dividers, counts: make([]float64, len(dividers)-1)}, nil
}

//UniformData returns a histogram of bins equal-width bins covering [min,max).
func UniformData(min, max float64, bins int) (*Data, error) {
	if bins < 1 || max <= min {
		return nil, fmt.Errorf("gohbond/hbstat: bad histogram range [%f,%f)/%d", min, max, bins)
	}
	dividers := make([]float64, bins+1)
	floats.Span(dividers, min, max)
	return NewData(dividers)
}

//Add accumulates values into the histogram. Values outside the divider
//range are silently dropped, as in gonum.
func (D *Data) Add(vals ...float64) {
	for _, v := range vals {
		if v < D.dividers[0] || v >= D.dividers[len(D.dividers)-1] {
			continue
		}
		i := sort.SearchFloat64s(D.dividers, v)
		//SearchFloat64s returns the divider index when v sits exactly on
		//a divider, and the index after it otherwise; both map to the bin
		//to the right of the divider.
		if i > 0 && v < D.dividers[i] {
			i--
		}
		D.counts[i]++
	}
}

//Counts returns a copy of the per-bin counts.
func (D *Data) Counts() []float64 {
	ret := make([]float64, len(D.counts))
	copy(ret, D.counts)
	return ret
}

//Dividers returns a copy of the bin dividers.
func (D *Data) Dividers() []float64 {
	ret := make([]float64, len(D.dividers))
	copy(ret, D.dividers)
	return ret
}

func (D *Data) String() string {
	t := make([]string, 0, len(D.counts))
	for i, c := range D.counts {
		t = append(t, fmt.Sprintf("[%5.2f,%5.2f): %g", D.dividers[i], D.dividers[i+1], c))
	}
	return strings.Join(t, "\n")
}
