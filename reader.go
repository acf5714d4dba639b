/*
 * reader.go, part of gopic.
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
	"compress/gzip"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/klauspost/compress/zstd"
)

// DumpOptions controls how a particle dump is turned into a dataset.
type DumpOptions struct {
	//SwapYZ exchanges the y and z axes of positions and momenta. PIConGPU
	//dumps propagate the bunch along y, the analysis convention is z.
	SwapYZ bool
	//Kinetic derives the kinetic instead of the total energy.
	Kinetic bool
	//Logger, when non-nil, receives a summary of the dataset read.
	Logger *slog.Logger
}

// dumpRow is one record of a particle dump, in SI units.
type dumpRow struct {
	PosX   float64 `csv:"position_x"`
	PosY   float64 `csv:"position_y"`
	PosZ   float64 `csv:"position_z"`
	MomX   float64 `csv:"momentum_x"`
	MomY   float64 `csv:"momentum_y"`
	MomZ   float64 `csv:"momentum_z"`
	OffX   float64 `csv:"positionOffset_x"`
	OffY   float64 `csv:"positionOffset_y"`
	OffZ   float64 `csv:"positionOffset_z"`
	Weight float64 `csv:"weighting"`
}

// ReadDump reads the particle dump in name and returns it as a converted
// dataset: position offsets folded into the positions, positions in um,
// momenta in MeV/c, and the energy column derived from the momenta and the
// electron rest mass. Files ending in .gz or .zst are decompressed on the
// fly. A nil opts reads with the defaults.
func ReadDump(name string, opts *DumpOptions) (*ParticleSet, error) {
	if opts == nil {
		opts = &DumpOptions{}
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, closer, err := decompressor(name, f)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		defer closer()
	}
	return readDump(r, opts)
}

// decompressor wraps the reader according to the file extension, as the
// trajectory readers do. The second return, when non-nil, must be called
// after the reader is drained.
func decompressor(name string, f io.Reader) (io.Reader, func(), error) {
	format := strings.ToLower(name)
	switch {
	case strings.HasSuffix(format, ".zst"):
		z, err := zstd.NewReader(f)
		if err != nil {
			return nil, nil, fmt.Errorf("goPIC: opening zstd dump %s: %w", name, err)
		}
		return z, z.Close, nil
	case strings.HasSuffix(format, ".gz"):
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, nil, fmt.Errorf("goPIC: opening gzip dump %s: %w", name, err)
		}
		return z, func() { z.Close() }, nil
	}
	return f, nil, nil
}

func readDump(r io.Reader, opts *DumpOptions) (*ParticleSet, error) {
	var rows []*dumpRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("goPIC: ill-formatted particle dump: %w", err)
	}
	n := len(rows)
	px := make([]float64, n)
	py := make([]float64, n)
	pz := make([]float64, n)
	mx := make([]float64, n)
	my := make([]float64, n)
	mz := make([]float64, n)
	w := make([]float64, n)
	for i, row := range rows {
		//offsets first, conversion afterwards, so both are in SI here
		px[i] = (row.PosX + row.OffX) * Meters2Microns
		py[i] = (row.PosY + row.OffY) * Meters2Microns
		pz[i] = (row.PosZ + row.OffZ) * Meters2Microns
		mx[i] = row.MomX * KgMS2MeVC
		my[i] = row.MomY * KgMS2MeVC
		mz[i] = row.MomZ * KgMS2MeVC
		if w[i] = row.Weight; w[i] < 0 {
			return nil, fmt.Errorf("goPIC: negative weighting %g in record %d", w[i], i)
		}
	}
	if opts.SwapYZ {
		py, pz = pz, py
		my, mz = mz, my
	}
	set := NewParticleSet()
	for _, c := range []struct {
		name string
		data []float64
	}{
		{ColPosX, px}, {ColPosY, py}, {ColPosZ, pz},
		{ColMomX, mx}, {ColMomY, my}, {ColMomZ, mz},
		{ColWeights, w},
	} {
		if err := set.AddColumn(c.name, c.data); err != nil {
			return nil, err
		}
	}
	if err := set.AddEnergy(ElectronMassMeV, opts.Kinetic); err != nil {
		return nil, err
	}
	if opts.Logger != nil {
		tw, _ := set.TotalWeight()
		me, _ := set.WeightedMean(ColEnergy, ColWeights)
		opts.Logger.Info("particle dump read",
			"macroparticles", set.Len(),
			"total_weight", tw,
			"charge_pC", tw*ElectronChargePC,
			"mean_energy_MeV", me,
			"swap_yz", opts.SwapYZ)
	}
	return set, nil
}
