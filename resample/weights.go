/*
 * weights.go, part of gopic.
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

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// SetWeightsTo overwrites every weight with v, which must be non-negative.
// Setting the weights to 1 is only allowed when they already hold one single
// value: the usual sequence is a leveling pass, which equalizes them, and
// then this. Overwriting a spread of weights with 1 would silently change
// the represented charge, so it is refused.
func SetWeightsTo(W *Weighted, v float64) error {
	if v < 0 {
		return &Error{
			message: fmt.Sprintf("new weight %g, must be non-negative", v),
			op:      "SetWeightsTo",
			invalid: true,
		}
	}
	if v == 1 && !W.Uniform() {
		return &Error{
			message: "weights are not all equal; setting them to 1 would discard the weight distribution",
			op:      "SetWeightsTo",
		}
	}
	W.SetAll(v)
	W.assertValid()
	return nil
}

// RandomWeights replaces every weight with an independent uniform draw from
// the current [min, max] weight range. It does NOT conserve total weight and
// exists only to build synthetic datasets for tests and benchmarks; never
// use it on an analysis pipeline.
func RandomWeights(W *Weighted, src rand.Source) error {
	w := W.Weights()
	if len(w) == 0 {
		return nil
	}
	uni := distuv.Uniform{Min: floats.Min(w), Max: floats.Max(w), Src: src}
	for i := range w {
		w[i] = uni.Rand()
	}
	W.assertValid()
	return nil
}
