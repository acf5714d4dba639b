/*
 * units.go, part of gopic.
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

//This provides physical constants and the conversion factors used when
//turning the SI values of a particle dump into analysis units.

// Physical constants (CODATA 2018)
const (
	SpeedOfLight     = 299792458.0 //m/s
	ElectronMassKg   = 9.1093837015e-31
	ElementaryCharge = 1.602176634e-19 //C
	Joule2EV         = 1 / 1.602176634e-19
	EV2MeV           = 1e-6
)

// Conversions
const (
	Meters2Microns = 1e6
	//1 kg m/s expressed in MeV/c
	KgMS2MeVC = SpeedOfLight * Joule2EV * EV2MeV
	//electron rest mass in MeV/c^2
	ElectronMassMeV = ElectronMassKg * SpeedOfLight * SpeedOfLight * Joule2EV * EV2MeV
	//elementary charge in pC
	ElectronChargePC = ElementaryCharge * 1e12
)

// Canonical column names of a converted dataset.
const (
	ColPosX    = "position_x_um"
	ColPosY    = "position_y_um"
	ColPosZ    = "position_z_um"
	ColMomX    = "momentum_x_mev_c"
	ColMomY    = "momentum_y_mev_c"
	ColMomZ    = "momentum_z_mev_c"
	ColWeights = "weights"
	ColEnergy  = "energy_mev"
)

// StandardColumns is the column order of a freshly read dataset.
var StandardColumns = []string{
	ColPosX, ColPosY, ColPosZ,
	ColMomX, ColMomY, ColMomZ,
	ColWeights, ColEnergy,
}

// ColumnUnits maps the canonical column names to the unit each one
// is expressed in. Exporters use it to annotate their headers.
var ColumnUnits = map[string]string{
	ColPosX:    "um",
	ColPosY:    "um",
	ColPosZ:    "um",
	ColMomX:    "MeV/c",
	ColMomY:    "MeV/c",
	ColMomZ:    "MeV/c",
	ColWeights: "1",
	ColEnergy:  "MeV",
}

// Unit returns the unit of the column name, or "?" if the column
// is not one of the canonical ones.
func Unit(name string) string {
	u, ok := ColumnUnits[name]
	if !ok {
		return "?"
	}
	return u
}
