package pic

import (
	"math"
	"testing"
)

func smallSet(Te *testing.T) *ParticleSet {
	set := NewParticleSet()
	cols := []struct {
		name string
		data []float64
	}{
		{ColPosX, []float64{1, 2, 3, 4}},
		{ColPosY, []float64{5, 6, 7, 8}},
		{ColPosZ, []float64{9, 10, 11, 12}},
		{ColMomX, []float64{3, 0, 0, 1}},
		{ColMomY, []float64{4, 0, 3, 2}},
		{ColMomZ, []float64{0, 5, 4, 2}},
		{ColWeights, []float64{1, 2, 3, 4}},
	}
	for _, c := range cols {
		if err := set.AddColumn(c.name, c.data); err != nil {
			Te.Fatal(err)
		}
	}
	return set
}

func TestCopyIndependence(Te *testing.T) {
	set := smallSet(Te)
	cp := set.Copy()
	w, err := cp.Column(ColWeights)
	if err != nil {
		Te.Fatal(err)
	}
	w[0] = 99
	worig, _ := set.Column(ColWeights)
	if worig[0] != 1 {
		Te.Error("mutating a copy reached the original")
	}
	if !set.Equal(set.Copy()) {
		Te.Error("a fresh copy does not compare equal to its original")
	}
}

func TestKeepAndDeleteRows(Te *testing.T) {
	set := smallSet(Te)
	set.KeepRows([]bool{true, false, true, false})
	if set.Len() != 2 {
		Te.Fatalf("got %d records, want 2", set.Len())
	}
	x, _ := set.Column(ColPosX)
	if x[0] != 1 || x[1] != 3 {
		Te.Errorf("kept the wrong records: %v", x)
	}
	set = smallSet(Te)
	set.DeleteRows([]int{0, 3, 3}) //duplicates tolerated
	if set.Len() != 2 {
		Te.Fatalf("got %d records, want 2", set.Len())
	}
	x, _ = set.Column(ColPosX)
	if x[0] != 2 || x[1] != 3 {
		Te.Errorf("deleted the wrong records: %v", x)
	}
}

func TestRepeatRows(Te *testing.T) {
	set := smallSet(Te)
	set.RepeatRows([]int{2, 0, 1, 3})
	if set.Len() != 6 {
		Te.Fatalf("got %d records, want 6", set.Len())
	}
	x, _ := set.Column(ColPosX)
	want := []float64{1, 1, 3, 4, 4, 4}
	for i, v := range want {
		if x[i] != v {
			Te.Errorf("record %d is %g, want %g", i, x[i], v)
		}
	}
}

func TestColumnStats(Te *testing.T) {
	set := smallSet(Te)
	s, err := set.ColumnStats(ColWeights)
	if err != nil {
		Te.Fatal(err)
	}
	if s.Count != 4 || s.Sum != 10 || s.Mean != 2.5 || s.Min != 1 || s.Max != 4 {
		Te.Errorf("wrong stats: %+v", s)
	}
	tw, err := set.TotalWeight()
	if err != nil {
		Te.Fatal(err)
	}
	if tw != 10 {
		Te.Errorf("total weight %g, want 10", tw)
	}
	empty := NewParticleSet()
	if err := empty.AddColumn(ColWeights, nil); err != nil {
		Te.Fatal(err)
	}
	if s, err := empty.ColumnStats(ColWeights); err != nil || s.Count != 0 {
		Te.Errorf("empty column stats: %+v, %v", s, err)
	}
}

func TestWeightedMean(Te *testing.T) {
	set := smallSet(Te)
	m, err := set.WeightedMean(ColPosX, ColWeights)
	if err != nil {
		Te.Fatal(err)
	}
	//(1*1 + 2*2 + 3*3 + 4*4) / 10
	if m != 3.0 {
		Te.Errorf("weighted mean %g, want 3", m)
	}
}

func TestAddEnergy(Te *testing.T) {
	set := smallSet(Te)
	m := 0.5
	if err := set.AddEnergy(m, false); err != nil {
		Te.Fatal(err)
	}
	e, err := set.Column(ColEnergy)
	if err != nil {
		Te.Fatal(err)
	}
	//first record has |p| = 5
	if want := math.Sqrt(25 + m*m); e[0] != want {
		Te.Errorf("energy %g, want %g", e[0], want)
	}
	if err := set.AddEnergy(m, false); err == nil {
		Te.Error("deriving the energy column twice should be an error")
	}
	set2 := smallSet(Te)
	if err := set2.AddEnergy(m, true); err != nil {
		Te.Fatal(err)
	}
	e2, _ := set2.Column(ColEnergy)
	if want := math.Sqrt(25+m*m) - m; e2[0] != want {
		Te.Errorf("kinetic energy %g, want %g", e2[0], want)
	}
	//the variant is remembered, also through Copy and a drop of the column
	if set.EnergyKinetic() || !set2.EnergyKinetic() {
		Te.Error("energy variant not recorded")
	}
	cp := set2.Copy()
	if err := cp.DropColumn(ColEnergy); err != nil {
		Te.Fatal(err)
	}
	if !cp.EnergyKinetic() {
		Te.Error("energy variant lost by Copy or DropColumn")
	}
}

func TestDropColumn(Te *testing.T) {
	set := smallSet(Te)
	if err := set.DropColumn(ColPosY); err != nil {
		Te.Fatal(err)
	}
	if set.HasColumn(ColPosY) {
		Te.Error("dropped column still present")
	}
	if len(set.Names()) != 6 {
		Te.Errorf("column order list not updated: %v", set.Names())
	}
	if err := set.DropColumn(ColPosY); err == nil {
		Te.Error("dropping an absent column should be an error")
	}
}

func TestUnit(Te *testing.T) {
	if Unit(ColPosX) != "um" || Unit(ColEnergy) != "MeV" {
		Te.Error("wrong canonical units")
	}
	if Unit("no_such_column") != "?" {
		Te.Error("unknown columns should map to ?")
	}
}
