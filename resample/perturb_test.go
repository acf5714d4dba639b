package resample

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/rand"

	pic "github.com/opmdtools/gopic"
)

func TestRepeatAndPerturbCardinality(Te *testing.T) {
	set := testSet(4, 1.0)
	w, err := set.Column(pic.ColWeights)
	if err != nil {
		Te.Fatal(err)
	}
	copy(w, []float64{2.3, 0.6, 3.5, 0.4})
	want := 0
	for _, v := range w {
		want += int(math.Round(v))
	}
	W, err := NewWeighted(set)
	if err != nil {
		Te.Fatal(err)
	}
	if err := RepeatAndPerturb(W, ProportionalNoise, 0.001, rand.NewSource(DefaultSeed)); err != nil {
		Te.Fatal(err)
	}
	if W.Len() != want {
		Te.Errorf("got %d records, want sum of rounded weights %d", W.Len(), want)
	}
	for i, v := range W.Weights() {
		if v != 1 {
			Te.Errorf("weight %d is %g, want 1", i, v)
		}
	}
}

func TestRepeatAndPerturbNoDuplicates(Te *testing.T) {
	W, err := NewWeighted(testSet(10, 3.0))
	if err != nil {
		Te.Fatal(err)
	}
	if err := RepeatAndPerturb(W, ProportionalNoise, 0.01, rand.NewSource(DefaultSeed)); err != nil {
		Te.Fatal(err)
	}
	x, err := W.Set().Column(pic.ColPosX)
	if err != nil {
		Te.Fatal(err)
	}
	seen := make(map[float64]bool, len(x))
	for _, v := range x {
		if seen[v] {
			Te.Errorf("duplicated position %g left after perturbation", v)
		}
		seen[v] = true
	}
}

func TestRepeatAndPerturbEnergyRecomputed(Te *testing.T) {
	W, err := NewWeighted(testSet(5, 2.0))
	if err != nil {
		Te.Fatal(err)
	}
	if err := RepeatAndPerturb(W, StandardizedNoise, 0.001, rand.NewSource(DefaultSeed)); err != nil {
		Te.Fatal(err)
	}
	set := W.Set()
	if !set.HasColumn(pic.ColEnergy) {
		Te.Fatal("energy column not recomputed")
	}
	px, _ := set.Column(pic.ColMomX)
	py, _ := set.Column(pic.ColMomY)
	pz, _ := set.Column(pic.ColMomZ)
	e, _ := set.Column(pic.ColEnergy)
	m := pic.ElectronMassMeV
	for i := range e {
		want := math.Sqrt(px[i]*px[i] + py[i]*py[i] + pz[i]*pz[i] + m*m)
		if e[i] != want {
			Te.Errorf("energy %d is %g, want %g from the perturbed momenta", i, e[i], want)
		}
	}
}

func TestRepeatAndPerturbKineticEnergy(Te *testing.T) {
	//a dataset carrying kinetic energies must get kinetic ones back
	set := testSet(5, 2.0)
	if err := set.DropColumn(pic.ColEnergy); err != nil {
		Te.Fatal(err)
	}
	if err := set.AddEnergy(pic.ElectronMassMeV, true); err != nil {
		Te.Fatal(err)
	}
	W, err := NewWeighted(set)
	if err != nil {
		Te.Fatal(err)
	}
	if err := RepeatAndPerturb(W, StandardizedNoise, 0.001, rand.NewSource(DefaultSeed)); err != nil {
		Te.Fatal(err)
	}
	out := W.Set()
	px, _ := out.Column(pic.ColMomX)
	py, _ := out.Column(pic.ColMomY)
	pz, _ := out.Column(pic.ColMomZ)
	e, _ := out.Column(pic.ColEnergy)
	m := pic.ElectronMassMeV
	for i := range e {
		want := math.Sqrt(px[i]*px[i]+py[i]*py[i]+pz[i]*pz[i]+m*m) - m
		if e[i] != want {
			Te.Errorf("energy %d is %g, want kinetic %g", i, e[i], want)
		}
	}
}

func TestRepeatAndPerturbZeroValue(Te *testing.T) {
	set := testSet(3, 2.0)
	py, err := set.Column(pic.ColPosY)
	if err != nil {
		Te.Fatal(err)
	}
	for i := range py {
		py[i] = 0
	}
	W, err := NewWeighted(set)
	if err != nil {
		Te.Fatal(err)
	}
	if err := RepeatAndPerturb(W, ProportionalNoise, 0.01, rand.NewSource(DefaultSeed)); err != nil {
		Te.Fatal(err)
	}
	py, _ = W.Set().Column(pic.ColPosY)
	for i, v := range py {
		if v != 0 {
			Te.Errorf("zero value %d perturbed to %g", i, v)
		}
	}
}

func TestRepeatAndPerturbConstantColumn(Te *testing.T) {
	//a constant column has zero standard deviation and must come through
	//standardized-noise mode untouched
	set := testSet(4, 1.0)
	pz, err := set.Column(pic.ColPosZ)
	if err != nil {
		Te.Fatal(err)
	}
	for i := range pz {
		pz[i] = 7.5
	}
	W, err := NewWeighted(set)
	if err != nil {
		Te.Fatal(err)
	}
	if err := RepeatAndPerturb(W, StandardizedNoise, 0.01, rand.NewSource(DefaultSeed)); err != nil {
		Te.Fatal(err)
	}
	pz, _ = W.Set().Column(pic.ColPosZ)
	for i, v := range pz {
		if v != 7.5 {
			Te.Errorf("constant column value %d perturbed to %g", i, v)
		}
	}
}

func TestRepeatAndPerturbBadAmount(Te *testing.T) {
	for _, amount := range []float64{0, -0.01} {
		W, err := NewWeighted(testSet(5, 1.0))
		if err != nil {
			Te.Fatal(err)
		}
		err = RepeatAndPerturb(W, ProportionalNoise, amount, rand.NewSource(DefaultSeed))
		if !errors.Is(err, ErrInvalidParameter) {
			Te.Errorf("amount %g: got %v, want an invalid-parameter error", amount, err)
		}
	}
}

func TestRepeatAndPerturbReproducible(Te *testing.T) {
	mk := func() *Weighted {
		W, err := NewWeighted(testSet(50, 2.5))
		if err != nil {
			Te.Fatal(err)
		}
		return W
	}
	a, b := mk(), mk()
	if err := RepeatAndPerturb(a, StandardizedNoise, 0.005, rand.NewSource(99)); err != nil {
		Te.Fatal(err)
	}
	if err := RepeatAndPerturb(b, StandardizedNoise, 0.005, rand.NewSource(99)); err != nil {
		Te.Fatal(err)
	}
	if !a.Set().Equal(b.Set()) {
		Te.Error("identical seeds produced different perturbations")
	}
}
