/*
 * pic.go, part of gopic.
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

package pic

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

/**Note: Some functions here panic instead of returning errors. This is because they are "fundamental"
 * functions, only reachable with ill-formed arguments through a programming error, never through bad
 * input data. The error-returning variants cover everything a caller can get wrong with valid code.**/

// ParticleSet is an ordered collection of macroparticle records stored as
// named float64 columns of one common length. The zero value is not usable;
// build one with NewParticleSet.
type ParticleSet struct {
	names   []string
	cols    map[string][]float64
	kinetic bool
}

// NewParticleSet returns an empty dataset with no columns.
func NewParticleSet() *ParticleSet {
	return &ParticleSet{names: []string{}, cols: map[string][]float64{}}
}

// Len returns the number of records in the dataset.
func (P *ParticleSet) Len() int {
	if len(P.names) == 0 {
		return 0
	}
	return len(P.cols[P.names[0]])
}

// Names returns the column names, in order. The returned slice is a copy.
func (P *ParticleSet) Names() []string {
	r := make([]string, len(P.names))
	copy(r, P.names)
	return r
}

// HasColumn returns whether the dataset has a column called name.
func (P *ParticleSet) HasColumn(name string) bool {
	_, ok := P.cols[name]
	return ok
}

// AddColumn appends a column to the dataset. The data slice is used directly,
// not copied. It is an error to add a column that already exists or whose
// length differs from that of the existing columns.
func (P *ParticleSet) AddColumn(name string, data []float64) error {
	if _, ok := P.cols[name]; ok {
		return fmt.Errorf("goPIC: column %q already present", name)
	}
	if len(P.names) > 0 && len(data) != P.Len() {
		return fmt.Errorf("goPIC: column %q has %d values, dataset has %d records", name, len(data), P.Len())
	}
	P.names = append(P.names, name)
	P.cols[name] = data
	return nil
}

// Column returns the column called name. The returned slice is the dataset's
// own storage, so writes to it are writes to the dataset.
func (P *ParticleSet) Column(name string) ([]float64, error) {
	col, ok := P.cols[name]
	if !ok {
		return nil, fmt.Errorf("goPIC: no column %q in dataset", name)
	}
	return col, nil
}

// DropColumn removes the column called name. Dropping an absent column
// is an error.
func (P *ParticleSet) DropColumn(name string) error {
	if _, ok := P.cols[name]; !ok {
		return fmt.Errorf("goPIC: no column %q to drop", name)
	}
	delete(P.cols, name)
	for i, v := range P.names {
		if v == name {
			P.names = append(P.names[:i], P.names[i+1:]...)
			break
		}
	}
	return nil
}

// Copy returns a deep copy of the dataset. The copy shares no storage with
// the original.
func (P *ParticleSet) Copy() *ParticleSet {
	if P == nil {
		panic("goPIC: attempted to copy a nil ParticleSet")
	}
	N := NewParticleSet()
	N.kinetic = P.kinetic
	for _, name := range P.names {
		c := make([]float64, len(P.cols[name]))
		copy(c, P.cols[name])
		N.names = append(N.names, name)
		N.cols[name] = c
	}
	return N
}

// KeepRows deletes, in place, every record whose entry in keep is false.
// It panics if keep does not have exactly one entry per record.
func (P *ParticleSet) KeepRows(keep []bool) {
	if len(keep) != P.Len() {
		panic(fmt.Sprintf("goPIC: KeepRows mask has %d entries for %d records", len(keep), P.Len()))
	}
	for _, name := range P.names {
		col := P.cols[name]
		kept := col[:0]
		for i, v := range col {
			if keep[i] {
				kept = append(kept, v)
			}
		}
		P.cols[name] = kept
	}
}

// DeleteRows deletes, in place, the records at the given indexes. Indexes
// out of range cause a panic. Duplicated indexes are tolerated.
func (P *ParticleSet) DeleteRows(indexes []int) {
	keep := make([]bool, P.Len())
	for i := range keep {
		keep[i] = true
	}
	for _, v := range indexes {
		if v < 0 || v >= len(keep) {
			panic(fmt.Sprintf("goPIC: DeleteRows index %d out of range for %d records", v, len(keep)))
		}
		keep[v] = false
	}
	P.KeepRows(keep)
}

// RepeatRows replaces, in place, each record with counts[i] consecutive
// copies of itself. A count of zero deletes the record. It panics if counts
// does not have exactly one entry per record or contains a negative count.
func (P *ParticleSet) RepeatRows(counts []int) {
	if len(counts) != P.Len() {
		panic(fmt.Sprintf("goPIC: RepeatRows has %d counts for %d records", len(counts), P.Len()))
	}
	total := 0
	for _, v := range counts {
		if v < 0 {
			panic("goPIC: RepeatRows given a negative count")
		}
		total += v
	}
	for _, name := range P.names {
		col := P.cols[name]
		rep := make([]float64, 0, total)
		for i, v := range col {
			for j := 0; j < counts[i]; j++ {
				rep = append(rep, v)
			}
		}
		P.cols[name] = rep
	}
}

// Stats holds summary statistics of one column.
type Stats struct {
	Count int
	Sum   float64
	Mean  float64
	Std   float64
	Min   float64
	Max   float64
}

// ColumnStats returns summary statistics for the column called name.
// An empty dataset yields a zero Stats with no error.
func (P *ParticleSet) ColumnStats(name string) (Stats, error) {
	col, err := P.Column(name)
	if err != nil {
		return Stats{}, err
	}
	if len(col) == 0 {
		return Stats{}, nil
	}
	s := Stats{
		Count: len(col),
		Sum:   floats.Sum(col),
		Mean:  stat.Mean(col, nil),
		Min:   floats.Min(col),
		Max:   floats.Max(col),
	}
	if len(col) > 1 {
		s.Std = stat.StdDev(col, nil)
	}
	return s, nil
}

// WeightedMean returns the mean of the column called name, weighted by the
// column called weights.
func (P *ParticleSet) WeightedMean(name, weights string) (float64, error) {
	col, err := P.Column(name)
	if err != nil {
		return 0, err
	}
	w, err := P.Column(weights)
	if err != nil {
		return 0, err
	}
	return stat.Mean(col, w), nil
}

// TotalWeight returns the sum of the weights column, i.e. the number of
// "real" particles the dataset stands in for.
func (P *ParticleSet) TotalWeight() (float64, error) {
	w, err := P.Column(ColWeights)
	if err != nil {
		return 0, err
	}
	return floats.Sum(w), nil
}

// AddEnergy derives the relativistic energy column from the momentum
// columns and the rest mass given (in MeV/c^2):
//
//	E = sqrt(px^2+py^2+pz^2+m^2)
//
// If kinetic is true the rest mass is subtracted from the result. The
// dataset remembers the variant (see EnergyKinetic), so that the column can
// be rederived consistently after the momenta change.
// The column is named energy_mev; deriving it twice is an error.
func (P *ParticleSet) AddEnergy(massMeV float64, kinetic bool) error {
	if P.HasColumn(ColEnergy) {
		return fmt.Errorf("goPIC: dataset already has an %s column", ColEnergy)
	}
	px, err := P.Column(ColMomX)
	if err != nil {
		return err
	}
	py, err := P.Column(ColMomY)
	if err != nil {
		return err
	}
	pz, err := P.Column(ColMomZ)
	if err != nil {
		return err
	}
	e := make([]float64, len(px))
	for i := range e {
		e[i] = math.Sqrt(px[i]*px[i] + py[i]*py[i] + pz[i]*pz[i] + massMeV*massMeV)
		if kinetic {
			e[i] -= massMeV
		}
	}
	P.kinetic = kinetic
	return P.AddColumn(ColEnergy, e)
}

// EnergyKinetic reports whether the last AddEnergy derived kinetic rather
// than total energies. It keeps reporting that after the column is dropped,
// so a recomputation can pick the same variant.
func (P *ParticleSet) EnergyKinetic() bool {
	return P.kinetic
}

// Equal reports whether the two datasets have the same columns, in the same
// order, with bit-identical values.
func (P *ParticleSet) Equal(Q *ParticleSet) bool {
	if len(P.names) != len(Q.names) || P.Len() != Q.Len() {
		return false
	}
	for i, name := range P.names {
		if Q.names[i] != name {
			return false
		}
		a := P.cols[name]
		b := Q.cols[name]
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}
	return true
}

// Describe returns a human-readable summary of the dataset: record count,
// total weight and charge (when a weights column exists), and per-column
// statistics.
func (P *ParticleSet) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d macroparticles\n", P.Len())
	if w, err := P.TotalWeight(); err == nil {
		fmt.Fprintf(&b, "representing %.0f real particles, total charge %.2f pC\n", w, w*ElectronChargePC)
	}
	for _, name := range P.names {
		s, _ := P.ColumnStats(name)
		fmt.Fprintf(&b, "%-18s (%s)\tmean %.6e\tstd %.6e\tmin %.6e\tmax %.6e\n",
			name, Unit(name), s.Mean, s.Std, s.Min, s.Max)
	}
	return b.String()
}
