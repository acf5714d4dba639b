/*
 * weighted.go, part of gopic.
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

	"gonum.org/v1/gonum/floats"

	pic "github.com/opmdtools/gopic"
)

// DefaultWeightColumn is the weight column name assumed when none is given.
const DefaultWeightColumn = "weights"

// Weighted is a particle dataset together with the name of its weight
// column. It owns an independent copy of the dataset handed to it, so the
// strategies can mutate freely without touching the caller's data.
type Weighted struct {
	set  *pic.ParticleSet
	wcol string
}

// NewWeighted copies set and returns it wrapped with its weight column.
// The weight column defaults to "weights" when none is given. A dataset
// without the weight column, or with a negative weight in it, is rejected.
func NewWeighted(set *pic.ParticleSet, weightCol ...string) (*Weighted, error) {
	wcol := DefaultWeightColumn
	if len(weightCol) > 0 {
		wcol = weightCol[0]
	}
	w, err := set.Column(wcol)
	if err != nil {
		return nil, &Error{message: fmt.Sprintf("dataset has no weight column %q", wcol), op: "NewWeighted"}
	}
	for i, v := range w {
		if v < 0 {
			return nil, &Error{message: fmt.Sprintf("negative weight %g in record %d", v, i), op: "NewWeighted"}
		}
	}
	return &Weighted{set: set.Copy(), wcol: wcol}, nil
}

// Set returns the wrapped dataset. The strategies share its storage, so
// the caller must treat it as read-only while operations are pending.
func (W *Weighted) Set() *pic.ParticleSet {
	return W.set
}

// Len returns the number of records.
func (W *Weighted) Len() int {
	return W.set.Len()
}

// WeightColumn returns the name of the weight column.
func (W *Weighted) WeightColumn() string {
	return W.wcol
}

// Weights returns the weight column itself, not a copy.
func (W *Weighted) Weights() []float64 {
	w, err := W.set.Column(W.wcol)
	if err != nil {
		//the column was checked at construction, so this is a bug
		panic(err.Error())
	}
	return w
}

// SetAll overwrites every weight with v.
func (W *Weighted) SetAll(v float64) {
	w := W.Weights()
	for i := range w {
		w[i] = v
	}
}

// Uniform reports whether all weights hold one single value. An empty
// dataset counts as uniform.
func (W *Weighted) Uniform() bool {
	w := W.Weights()
	for _, v := range w {
		if v != w[0] {
			return false
		}
	}
	return true
}

// Keep deletes every record whose entry in keep is false.
func (W *Weighted) Keep(keep []bool) {
	W.set.KeepRows(keep)
}

// DeleteIndexes deletes the records at the given indexes.
func (W *Weighted) DeleteIndexes(indexes []int) {
	W.set.DeleteRows(indexes)
}

// WeightStats returns summary statistics of the weight column.
func (W *Weighted) WeightStats() pic.Stats {
	s, err := W.set.ColumnStats(W.wcol)
	if err != nil {
		panic(err.Error())
	}
	return s
}

// TotalWeight returns the sum of all weights.
func (W *Weighted) TotalWeight() float64 {
	return floats.Sum(W.Weights())
}

// assertValid panics if the weight column went missing or holds a negative
// value. A strategy that produces either has a bug; this is not a runtime
// condition for callers to handle.
func (W *Weighted) assertValid() {
	w, err := W.set.Column(W.wcol)
	if err != nil {
		panic("goPIC/resample: weight column lost during an operation")
	}
	for i, v := range w {
		if v < 0 {
			panic(fmt.Sprintf("goPIC/resample: negative weight %g in record %d after an operation", v, i))
		}
	}
}
