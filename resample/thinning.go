/*
 * thinning.go, part of gopic.
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
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// SimpleThinning deletes records uniformly at random, without replacement,
// until exactly target remain, then multiplies every surviving weight by
// N/target. The total weight is therefore conserved exactly. target must be
// in [1, N]; target == N leaves the dataset untouched.
func SimpleThinning(W *Weighted, target int, src rand.Source) error {
	n := W.Len()
	if target < 1 || target > n {
		return &Error{
			message: fmt.Sprintf("target count %d outside [1, %d]", target, n),
			op:      "SimpleThinning",
			invalid: true,
		}
	}
	if target == n {
		return nil
	}
	rng := rand.New(src)
	//Distinct deletion indexes by drawing with replacement and redrawing
	//duplicates. With target >= 1 at most N-1 indexes are drawn, so the
	//loop always terminates.
	drawn := make(map[int]struct{}, n-target)
	indexes := make([]int, 0, n-target)
	for len(indexes) < n-target {
		i := rng.Intn(n)
		if _, ok := drawn[i]; ok {
			continue
		}
		drawn[i] = struct{}{}
		indexes = append(indexes, i)
	}
	W.DeleteIndexes(indexes)
	factor := float64(n) / float64(target)
	floats.Scale(factor, W.Weights())
	W.assertValid()
	return nil
}

// GlobalLevelingThinning culls low-weight records by russian roulette and
// floors the survivors, reducing the record count by roughly a factor of k.
// With threshold = k*mean(weights), each record below the threshold survives
// with probability weight/threshold and is then raised to exactly the
// threshold; records at or above the threshold always survive, untouched.
// E[post-culling weight] of each record equals its original weight, so the
// total weight is conserved in expectation. The surviving count is a random
// outcome, not exactly N/k.
//
// Exactly one uniform value is drawn per record, in record order, which
// makes the draw sequence independent of the outcome.
//
// A zero mean weight makes the threshold zero and culls nothing. k must be
// positive.
func GlobalLevelingThinning(W *Weighted, k float64, src rand.Source) error {
	if k <= 0 {
		return &Error{
			message: fmt.Sprintf("leveling factor k = %g, must be positive", k),
			op:      "GlobalLevelingThinning",
			invalid: true,
		}
	}
	w := W.Weights()
	n := len(w)
	if n == 0 {
		return nil
	}
	threshold := k * stat.Mean(w, nil)
	uni := distuv.Uniform{Min: 0, Max: 1, Src: src}
	keep := make([]bool, n)
	for i, wt := range w {
		r := uni.Rand()
		//threshold == 0 never enters the division: no weight is below it
		keep[i] = wt >= threshold || r <= wt/threshold
	}
	W.Keep(keep)
	w = W.Weights()
	for i, wt := range w {
		if wt < threshold {
			w[i] = threshold
		}
	}
	W.assertValid()
	return nil
}
