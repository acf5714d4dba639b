// Package histo provides weight-aware histograms for macroparticle data:
// 1D Data for spectra and 2D Grid for phase-space planes. Fills carry a
// weight, so a histogram of N macroparticles reflects the real particle
// counts they stand in for.
package histo

import (
	"encoding/json"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Data is a one-dimensional weighted histogram. The dividers slice holds
// the len(histo)+1 bin edges; values outside [dividers[0], dividers[last])
// are dropped on fill.
type Data struct {
	dividers []float64
	histo    []float64
	total    float64 //summed weight of everything binned so far
}

// NewData returns an empty histogram with the given bin edges. The edges
// are copied and must be strictly increasing; fewer than two edges is a
// panic, since no bin can be formed.
func NewData(dividers []float64) *Data {
	if len(dividers) < 2 {
		panic("goPIC/histo: at least two dividers needed")
	}
	for i := 1; i < len(dividers); i++ {
		if dividers[i] <= dividers[i-1] {
			panic("goPIC/histo: dividers must be strictly increasing")
		}
	}
	d := new(Data)
	d.dividers = make([]float64, len(dividers))
	copy(d.dividers, dividers)
	d.histo = make([]float64, len(dividers)-1)
	return d
}

// Span returns len(n)+1 evenly spaced dividers covering [min, max]. A
// degenerate range (min == max) is widened by one unit on each side so the
// bins keep a non-zero width.
func Span(min, max float64, n int) []float64 {
	if min == max {
		min, max = min-1, max+1
	}
	dst := make([]float64, n+1)
	return floats.Span(dst, min, max)
}

// Add bins the value v with weight w. Values left of the first divider or
// at/past the last one are dropped silently, like the out-of-range policy
// of the plotting code this feeds.
func (D *Data) Add(v, w float64) {
	i := bin(D.dividers, v)
	if i < 0 {
		return
	}
	D.histo[i] += w
	D.total += w
}

// Fill bins every value of vals with the matching weight of ws. A nil ws
// fills with unit weights. Mismatched lengths are a panic.
func (D *Data) Fill(vals, ws []float64) {
	if ws != nil && len(ws) != len(vals) {
		panic(fmt.Sprintf("goPIC/histo: %d weights for %d values", len(ws), len(vals)))
	}
	for i, v := range vals {
		if ws == nil {
			D.Add(v, 1)
		} else {
			D.Add(v, ws[i])
		}
	}
}

// Bins returns the number of bins.
func (D *Data) Bins() int {
	return len(D.histo)
}

// Counts returns a copy of the binned weights.
func (D *Data) Counts() []float64 {
	c := make([]float64, len(D.histo))
	copy(c, D.histo)
	return c
}

// Total returns the summed weight binned so far, dropped values excluded.
func (D *Data) Total() float64 {
	return D.total
}

// Center returns the center of bin i.
func (D *Data) Center(i int) float64 {
	return (D.dividers[i] + D.dividers[i+1]) / 2
}

// Dividers returns a copy of the bin edges.
func (D *Data) Dividers() []float64 {
	d := make([]float64, len(D.dividers))
	copy(d, D.dividers)
	return d
}

func (D *Data) String() string {
	d := make([]string, 0, len(D.histo))
	h := make([]string, 0, len(D.histo))
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return fmt.Sprintf("Total: %.3f\n%s\n%s", D.total, strings.Join(d, " "), strings.Join(h, " "))
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Dividers []float64 `json:"dividers"`
		Histo    []float64 `json:"histo"`
		Total    float64   `json:"total"`
	}{
		Dividers: D.dividers,
		Histo:    D.histo,
		Total:    D.total,
	})
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a struct {
		Dividers []float64 `json:"dividers"`
		Histo    []float64 `json:"histo"`
		Total    float64   `json:"total"`
	}
	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	D.dividers = a.Dividers
	D.histo = a.Histo
	D.total = a.Total
	return nil
}

// bin returns the bin index of v given the dividers, or -1 when v falls
// outside them. Linear scan; the bin counts here are small (tens to a few
// hundred) and fills happen once per plot.
func bin(dividers []float64, v float64) int {
	if v < dividers[0] {
		return -1
	}
	for i := 1; i < len(dividers); i++ {
		if v < dividers[i] {
			return i - 1
		}
	}
	return -1
}
