package histo

import (
	"fmt"
)

// Grid is a two-dimensional weighted histogram over the plane of two
// columns. It implements the GridXYZ interface of gonum/plot's HeatMap
// plotter, so a filled Grid can be handed to a plot directly.
type Grid struct {
	xdiv, ydiv []float64
	cells      []float64 //row-major: cells[iy*xbins + ix]
	total      float64
}

// NewGrid returns an empty grid with the given bin edges per axis. The
// edges follow the same rules as for NewData.
func NewGrid(xdividers, ydividers []float64) *Grid {
	//NewData validates the edges; the Data values themselves are discarded
	NewData(xdividers)
	NewData(ydividers)
	g := new(Grid)
	g.xdiv = make([]float64, len(xdividers))
	copy(g.xdiv, xdividers)
	g.ydiv = make([]float64, len(ydividers))
	copy(g.ydiv, ydividers)
	g.cells = make([]float64, (len(xdividers)-1)*(len(ydividers)-1))
	return g
}

// Add bins the point (x, y) with weight w. Points outside the edges are
// dropped silently.
func (G *Grid) Add(x, y, w float64) {
	ix := bin(G.xdiv, x)
	iy := bin(G.ydiv, y)
	if ix < 0 || iy < 0 {
		return
	}
	G.cells[iy*(len(G.xdiv)-1)+ix] += w
	G.total += w
}

// Fill bins every (xs[i], ys[i]) pair with the matching weight of ws. A nil
// ws fills with unit weights. Mismatched lengths are a panic.
func (G *Grid) Fill(xs, ys, ws []float64) {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf("goPIC/histo: %d x values for %d y values", len(xs), len(ys)))
	}
	if ws != nil && len(ws) != len(xs) {
		panic(fmt.Sprintf("goPIC/histo: %d weights for %d points", len(ws), len(xs)))
	}
	for i := range xs {
		if ws == nil {
			G.Add(xs[i], ys[i], 1)
		} else {
			G.Add(xs[i], ys[i], ws[i])
		}
	}
}

// Total returns the summed weight binned so far.
func (G *Grid) Total() float64 {
	return G.total
}

// Dims returns the number of columns and rows, for plotter.HeatMap.
func (G *Grid) Dims() (c, r int) {
	return len(G.xdiv) - 1, len(G.ydiv) - 1
}

// X returns the center of column c, for plotter.HeatMap.
func (G *Grid) X(c int) float64 {
	return (G.xdiv[c] + G.xdiv[c+1]) / 2
}

// Y returns the center of row r, for plotter.HeatMap.
func (G *Grid) Y(r int) float64 {
	return (G.ydiv[r] + G.ydiv[r+1]) / 2
}

// Z returns the binned weight of the cell at column c, row r, for
// plotter.HeatMap.
func (G *Grid) Z(c, r int) float64 {
	return G.cells[r*(len(G.xdiv)-1)+c]
}
