/*
 * perturb.go, part of gopic.
 *
 * Copyright 2024 The goPIC authors
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
 */

package resample

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	pic "github.com/opmdtools/gopic"
)

// PerturbMode selects how RepeatAndPerturb spreads the replicated records.
type PerturbMode int

const (
	//StandardizedNoise standardizes each column, adds Gaussian noise with
	//standard deviation amount*|standardized value|, and un-standardizes.
	StandardizedNoise PerturbMode = iota
	//ProportionalNoise adds uniform noise in [-eps, eps] with
	//eps = |value|*amount, directly on the raw values.
	ProportionalNoise
)

func (m PerturbMode) String() string {
	switch m {
	case StandardizedNoise:
		return "standardized"
	case ProportionalNoise:
		return "proportional"
	}
	return fmt.Sprintf("PerturbMode(%d)", int(m))
}

// RepeatAndPerturb expands a weighted dataset into a larger, uniformly
// weighted one, for consumers that cannot handle non-unit weights (particle
// trackers, mostly). Each record is replicated round(weight) times -- a
// weight below 0.5 drops the record -- and all weights are then set to 1.
// Every column except the weights is perturbed according to mode and
// amount so that no exact duplicates are left, since duplicated
// position/momentum tuples are unphysical. A value of exactly zero in
// proportional mode, or a constant column in standardized mode, is left
// unperturbed. The energy column, which the perturbation of the momenta
// would invalidate, is dropped first and recomputed at the end, kinetic or
// total as it was originally derived.
//
// amount is the relative noise scale, typically 0.001 to 0.01; it must be
// positive.
func RepeatAndPerturb(W *Weighted, mode PerturbMode, amount float64, src rand.Source) error {
	if amount <= 0 {
		return &Error{
			message: fmt.Sprintf("noise amount %g, must be positive", amount),
			op:      "RepeatAndPerturb",
			invalid: true,
		}
	}
	if mode != StandardizedNoise && mode != ProportionalNoise {
		return &Error{
			message: "unknown perturbation mode " + mode.String(),
			op:      "RepeatAndPerturb",
			invalid: true,
		}
	}
	set := W.Set()
	hadEnergy := set.HasColumn(pic.ColEnergy)
	if hadEnergy {
		if err := set.DropColumn(pic.ColEnergy); err != nil {
			return err
		}
	}

	w := W.Weights()
	counts := make([]int, len(w))
	for i, v := range w {
		counts[i] = int(math.Round(v))
	}
	set.RepeatRows(counts)
	W.SetAll(1)

	uni := distuv.Uniform{Min: -1, Max: 1, Src: src}
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	for _, name := range set.Names() {
		if name == W.WeightColumn() {
			continue
		}
		col, err := set.Column(name)
		if err != nil {
			return err
		}
		switch mode {
		case StandardizedNoise:
			if len(col) < 2 {
				continue
			}
			mean, std := stat.MeanStdDev(col, nil)
			if std == 0 {
				continue
			}
			for i, v := range col {
				z := (v - mean) / std
				z += norm.Rand() * math.Abs(z) * amount
				col[i] = z*std + mean
			}
		case ProportionalNoise:
			for i, v := range col {
				col[i] = v + uni.Rand()*math.Abs(v)*amount
			}
		}
	}

	if hadEnergy {
		if err := set.AddEnergy(pic.ElectronMassMeV, set.EnergyKinetic()); err != nil {
			return err
		}
	}
	W.assertValid()
	return nil
}
