package picplot

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/exp/rand"

	pic "github.com/opmdtools/gopic"
	"github.com/opmdtools/gopic/histo"
)

func plotSet(Te *testing.T, n int) *pic.ParticleSet {
	rng := rand.New(rand.NewSource(1))
	set := pic.NewParticleSet()
	for _, name := range []string{pic.ColPosX, pic.ColPosY, pic.ColPosZ, pic.ColMomX, pic.ColMomY, pic.ColMomZ} {
		c := make([]float64, n)
		for i := range c {
			c[i] = rng.NormFloat64()
		}
		if err := set.AddColumn(name, c); err != nil {
			Te.Fatal(err)
		}
	}
	w := make([]float64, n)
	for i := range w {
		w[i] = 1 + rng.Float64()
	}
	if err := set.AddColumn(pic.ColWeights, w); err != nil {
		Te.Fatal(err)
	}
	if err := set.AddEnergy(pic.ElectronMassMeV, false); err != nil {
		Te.Fatal(err)
	}
	return set
}

func TestSaveAll(Te *testing.T) {
	dir := Te.TempDir()
	ps := NewPhaseSpace(plotSet(Te, 500), "Test data").Bins(16)
	if err := ps.SaveAll(dir, "test"); err != nil {
		Te.Fatal(err)
	}
	for _, name := range []string{
		"test_position_zx.png",
		"test_position_zy.png",
		"test_position_xy.png",
		"test_momentum_zx.png",
		"test_momentum_zy.png",
		"test_longitudinal.png",
		"test_spectrum.png",
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			Te.Errorf("figure %s not written: %v", name, err)
		}
	}
}

func TestSaveComparative(Te *testing.T) {
	dir := Te.TempDir()
	before := NewPhaseSpace(plotSet(Te, 500), "Before").Bins(16)
	after := NewPhaseSpace(plotSet(Te, 200), "After").Bins(16)
	if err := before.SaveComparative(after, dir, "comparison"); err != nil {
		Te.Fatal(err)
	}
	for _, name := range []string{
		"comparison_position_zx.png",
		"comparison_position_zy.png",
		"comparison_position_xy.png",
		"comparison_momentum_zx.png",
		"comparison_momentum_zy.png",
		"comparison_longitudinal.png",
		"comparison_spectrum.png",
	} {
		fi, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			Te.Errorf("figure %s not written: %v", name, err)
			continue
		}
		if fi.Size() == 0 {
			Te.Errorf("figure %s is empty", name)
		}
	}
}

func TestHeatMapDegenerate(Te *testing.T) {
	//a single-value column must still give usable axes
	g := histo.NewGrid(histo.Span(5, 5, 8), histo.Span(0, 1, 8))
	g.Add(5, 0.5, 2)
	p := HeatMap(g, "degenerate", "x", "y")
	if err := p.Save(100, 100, filepath.Join(Te.TempDir(), "degenerate.png")); err != nil {
		Te.Error(err)
	}
}
