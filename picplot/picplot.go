/*
 * picplot.go, part of gopic.
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

// Package picplot renders phase-space figures of a particle dataset:
// weighted 2D histograms of the position and momentum planes and the
// weighted energy spectrum, singly or paired to compare two datasets.
package picplot

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	pic "github.com/opmdtools/gopic"
	"github.com/opmdtools/gopic/histo"
)

// DefaultBins is the number of bins per axis used when none is set.
const DefaultBins = 128

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

// HeatMap returns a plot of the grid as a heat map.
func HeatMap(g *histo.Grid, title, xlabel, ylabel string) *plot.Plot {
	p := basicPlot(title, xlabel, ylabel)
	pal := palette.Heat(16, 1)
	p.Add(plotter.NewHeatMap(g, pal))
	return p
}

// Spectrum returns a step plot of the 1D histogram.
func Spectrum(d *histo.Data, title, xlabel string) (*plot.Plot, error) {
	p := basicPlot(title, xlabel, "dN/dE (1/MeV)")
	line, err := spectrumLine(d)
	if err != nil {
		return nil, err
	}
	p.Add(line)
	return p, nil
}

func spectrumLine(d *histo.Data) (*plotter.Line, error) {
	pts := make(plotter.XYs, d.Bins())
	counts := d.Counts()
	for i := range pts {
		pts[i].X = d.Center(i)
		pts[i].Y = counts[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.StepStyle = plotter.MidStep
	return line, nil
}

// A plane is one 2D projection of the phase space.
type plane struct {
	xcol, ycol string
	name       string
}

// PhaseSpace builds the standard set of phase-space figures of one dataset.
// The bunch is taken to propagate along z, as the reader arranges.
type PhaseSpace struct {
	set   *pic.ParticleSet
	label string
	bins  int
}

// NewPhaseSpace returns a PhaseSpace for set, labeled with label in the
// figure titles.
func NewPhaseSpace(set *pic.ParticleSet, label string) *PhaseSpace {
	return &PhaseSpace{set: set, label: label, bins: DefaultBins}
}

// Bins sets the number of bins per axis.
func (ps *PhaseSpace) Bins(n int) *PhaseSpace {
	ps.bins = n
	return ps
}

// planes is the fixed set of projections rendered by SaveAll.
var planes = []plane{
	{pic.ColPosZ, pic.ColPosX, "position_zx"},
	{pic.ColPosZ, pic.ColPosY, "position_zy"},
	{pic.ColPosX, pic.ColPosY, "position_xy"},
	{pic.ColMomZ, pic.ColMomX, "momentum_zx"},
	{pic.ColMomZ, pic.ColMomY, "momentum_zy"},
	{pic.ColPosZ, pic.ColMomZ, "longitudinal"},
}

// grid builds the weighted 2D histogram of one plane, spanning the actual
// data range of both columns.
func (ps *PhaseSpace) grid(pl plane) (*histo.Grid, error) {
	xs, err := ps.set.Column(pl.xcol)
	if err != nil {
		return nil, err
	}
	ys, err := ps.set.Column(pl.ycol)
	if err != nil {
		return nil, err
	}
	ws, err := ps.set.Column(pic.ColWeights)
	if err != nil {
		return nil, err
	}
	xstats, err := ps.set.ColumnStats(pl.xcol)
	if err != nil {
		return nil, err
	}
	ystats, err := ps.set.ColumnStats(pl.ycol)
	if err != nil {
		return nil, err
	}
	g := histo.NewGrid(histo.Span(xstats.Min, xstats.Max, ps.bins),
		histo.Span(ystats.Min, ystats.Max, ps.bins))
	g.Fill(xs, ys, ws)
	return g, nil
}

// spectrum builds the weighted energy histogram over the dataset's own
// energy range.
func (ps *PhaseSpace) spectrum() (*histo.Data, error) {
	s, err := ps.set.ColumnStats(pic.ColEnergy)
	if err != nil {
		return nil, err
	}
	return ps.spectrumOn(histo.Span(s.Min, s.Max, ps.bins))
}

// spectrumOn builds the weighted energy histogram over the given bin
// dividers, so two datasets can share one binning.
func (ps *PhaseSpace) spectrumOn(dividers []float64) (*histo.Data, error) {
	es, err := ps.set.Column(pic.ColEnergy)
	if err != nil {
		return nil, err
	}
	ws, err := ps.set.Column(pic.ColWeights)
	if err != nil {
		return nil, err
	}
	d := histo.NewData(dividers)
	d.Fill(es, ws)
	return d, nil
}

// planePlot renders the heat map of one projection.
func (ps *PhaseSpace) planePlot(pl plane) (*plot.Plot, error) {
	g, err := ps.grid(pl)
	if err != nil {
		return nil, err
	}
	title := fmt.Sprintf("%s: %s", ps.label, pl.name)
	return HeatMap(g, title, axisLabel(pl.xcol), axisLabel(pl.ycol)), nil
}

// SaveAll writes one PNG per phase-space plane plus the energy spectrum
// into dir, prefixed with prefix.
func (ps *PhaseSpace) SaveAll(dir, prefix string) error {
	for _, pl := range planes {
		p, err := ps.planePlot(pl)
		if err != nil {
			return err
		}
		filename := filepath.Join(dir, fmt.Sprintf("%s_%s.png", prefix, pl.name))
		if err := p.Save(14*vg.Centimeter, 10*vg.Centimeter, filename); err != nil {
			return err
		}
	}
	d, err := ps.spectrum()
	if err != nil {
		return err
	}
	p, err := Spectrum(d, fmt.Sprintf("%s: energy spectrum", ps.label), axisLabel(pic.ColEnergy))
	if err != nil {
		return err
	}
	filename := filepath.Join(dir, fmt.Sprintf("%s_spectrum.png", prefix))
	return p.Save(14*vg.Centimeter, 10*vg.Centimeter, filename)
}

// SaveComparative renders ps and other against each other, to make the
// effect of a resampling step visible: one PNG per phase-space plane with
// the two heat maps paired left and right, plus one figure overlaying the
// two energy spectra on a common binning. Files go into dir, prefixed with
// prefix.
func (ps *PhaseSpace) SaveComparative(other *PhaseSpace, dir, prefix string) error {
	for _, pl := range planes {
		left, err := ps.planePlot(pl)
		if err != nil {
			return err
		}
		right, err := other.planePlot(pl)
		if err != nil {
			return err
		}
		filename := filepath.Join(dir, fmt.Sprintf("%s_%s.png", prefix, pl.name))
		if err := savePair(left, right, filename); err != nil {
			return err
		}
	}
	s1, err := ps.set.ColumnStats(pic.ColEnergy)
	if err != nil {
		return err
	}
	s2, err := other.set.ColumnStats(pic.ColEnergy)
	if err != nil {
		return err
	}
	dividers := histo.Span(math.Min(s1.Min, s2.Min), math.Max(s1.Max, s2.Max), ps.bins)
	d1, err := ps.spectrumOn(dividers)
	if err != nil {
		return err
	}
	d2, err := other.spectrumOn(dividers)
	if err != nil {
		return err
	}
	p := basicPlot("energy spectrum", axisLabel(pic.ColEnergy), "dN/dE (1/MeV)")
	l1, err := spectrumLine(d1)
	if err != nil {
		return err
	}
	l2, err := spectrumLine(d2)
	if err != nil {
		return err
	}
	l1.Color = color.RGBA{B: 255, A: 255}
	l2.Color = color.RGBA{R: 255, A: 255}
	p.Add(l1, l2)
	p.Legend.Add(ps.label, l1)
	p.Legend.Add(other.label, l2)
	p.Legend.Top = true
	filename := filepath.Join(dir, fmt.Sprintf("%s_spectrum.png", prefix))
	return p.Save(14*vg.Centimeter, 10*vg.Centimeter, filename)
}

// savePair draws two plots side by side into one PNG.
func savePair(left, right *plot.Plot, filename string) error {
	img := vgimg.New(28*vg.Centimeter, 10*vg.Centimeter)
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: 1, Cols: 2, PadX: 2 * vg.Millimeter}
	canvases := plot.Align([][]*plot.Plot{{left, right}}, tiles, dc)
	left.Draw(canvases[0][0])
	right.Draw(canvases[0][1])
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func axisLabel(col string) string {
	return fmt.Sprintf("%s (%s)", col, pic.Unit(col))
}
