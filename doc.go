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
Package pic handles macroparticle data from particle-in-cell simulations.
It provides a columnar particle dataset, readers for the delimited dumps
produced by the simulation post-processors (plain, gzip or zstd compressed),
and the unit conversions needed to go from the SI quantities stored in the
dumps to the micrometer/MeV units used for analysis.

		**goPIC capabilities**

	    Reads particle dumps (position, momentum, position offset and weighting
		columns in SI units), folds the position offsets into the positions,
		optionally swaps the y and z axes, and derives the relativistic
		energy column.

	    Reduces or expands the number of macroparticles through the resample
		subpackage, preserving total weight (charge) exactly or in
		expectation depending on the strategy.

	    Builds weighted histograms of any column (histo subpackage) and renders
		phase-space figures with them (picplot subpackage).

	    Exports datasets as delimited text with a unit-annotated header
		(txt subpackage).

Randomized operations are deterministically seeded, so a given input and
operation sequence always produces bit-identical output.
*/
package pic
