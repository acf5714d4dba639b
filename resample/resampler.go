/*
 * resampler.go, part of gopic.
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
	"golang.org/x/exp/rand"

	pic "github.com/opmdtools/gopic"
)

// DefaultSeed seeds every randomized operation unless the caller overrides
// it with Seed. Fixed, so that repeated runs on identical input reproduce
// bit for bit.
const DefaultSeed uint64 = 42

// Resampler sequences resampling strategies over one working copy of a
// dataset. Construction copies the dataset, so the chain never mutates the
// caller's original. Operations return the Resampler for chaining and are
// no-ops once an error occurred; the first error comes out of Finalize (or
// Err). After Finalize only reading the result remains valid.
//
// Seeding policy: each operation draws from a fresh source seeded with the
// Resampler's seed, restarting the stream per call rather than continuing
// it across the chain. A given operation is thus reproducible regardless
// of its position in the chain.
type Resampler struct {
	w         *Weighted
	seed      uint64
	err       error
	lateErr   error //an operation attempted after Finalize
	finalized bool
}

// New returns a Resampler owning a copy of set. The weight column defaults
// to "weights" when none is given.
func New(set *pic.ParticleSet, weightCol ...string) *Resampler {
	w, err := NewWeighted(set, weightCol...)
	return &Resampler{w: w, seed: DefaultSeed, err: err}
}

// Seed replaces the seed used by all subsequent randomized operations.
func (R *Resampler) Seed(seed uint64) *Resampler {
	R.seed = seed
	return R
}

// Err returns the first error of the chain, or nil. An operation attempted
// after Finalize also shows up here, without invalidating the finalized
// result.
func (R *Resampler) Err() error {
	if R.err != nil {
		return R.err
	}
	return R.lateErr
}

// run guards an operation with the sticky error and the finalized state.
// Operations rejected for coming after Finalize are recorded aside, so
// they do not poison what Finalize already returned.
func (R *Resampler) run(op string, f func() error) *Resampler {
	if R.err != nil {
		return R
	}
	if R.finalized {
		R.lateErr = &Error{message: "operation after Finalize", op: op}
		return R
	}
	if err := f(); err != nil {
		R.err = errDecorate(err, "Resampler")
	}
	return R
}

// SimpleThinning thins the working copy to exactly target records.
// See the strategy function of the same name.
func (R *Resampler) SimpleThinning(target int) *Resampler {
	return R.run("SimpleThinning", func() error {
		return SimpleThinning(R.w, target, rand.NewSource(R.seed))
	})
}

// GlobalLevelingThinning reduces the record count by roughly a factor of k.
// See the strategy function of the same name.
func (R *Resampler) GlobalLevelingThinning(k float64) *Resampler {
	return R.run("GlobalLevelingThinning", func() error {
		return GlobalLevelingThinning(R.w, k, rand.NewSource(R.seed))
	})
}

// SetWeightsTo overwrites every weight with v.
// See the strategy function of the same name.
func (R *Resampler) SetWeightsTo(v float64) *Resampler {
	return R.run("SetWeightsTo", func() error {
		return SetWeightsTo(R.w, v)
	})
}

// RandomWeights randomizes the weights within their current range. Test
// data only; see the strategy function of the same name.
func (R *Resampler) RandomWeights() *Resampler {
	return R.run("RandomWeights", func() error {
		return RandomWeights(R.w, rand.NewSource(R.seed))
	})
}

// RepeatAndPerturb expands the working copy into a unit-weight dataset.
// See the strategy function of the same name.
func (R *Resampler) RepeatAndPerturb(mode PerturbMode, amount float64) *Resampler {
	return R.run("RepeatAndPerturb", func() error {
		return RepeatAndPerturb(R.w, mode, amount, rand.NewSource(R.seed))
	})
}

// Finalize ends the chain and hands the resulting dataset over, together
// with the first error of the chain, if any. Calling it again returns the
// same result; mutating operations are no longer accepted.
func (R *Resampler) Finalize() (*pic.ParticleSet, error) {
	R.finalized = true
	if R.err != nil {
		return nil, R.err
	}
	return R.w.Set(), nil
}
