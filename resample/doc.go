/*
 * doc.go, part of gopic.
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

/*
Package resample reduces or expands the number of macroparticles in a
dataset while preserving the physical quantities they represent.

Each macroparticle carries a weight, the number of real particles it stands
in for. The total weight is proportional to the total charge of the bunch,
so every strategy here either conserves it exactly (SimpleThinning) or in
expectation over its random draws (GlobalLevelingThinning).

The strategies are pure functions over a Weighted dataset; the Resampler
ties them into a chainable pipeline:

	out, err := resample.New(set).
		GlobalLevelingThinning(2.0).
		SetWeightsTo(1).
		Finalize()

All randomness is drawn from a source seeded at the start of each
operation, so a given input dataset and operation sequence always yields
bit-identical output.
*/
package resample
