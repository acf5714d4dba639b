package pic

import (
	"compress/gzip"
	"math"
	"os"
	"path/filepath"
	"testing"
)

const dumpHeader = "position_x,position_y,position_z," +
	"momentum_x,momentum_y,momentum_z," +
	"positionOffset_x,positionOffset_y,positionOffset_z,weighting\n"

// two records in SI units: positions of 1 um plus offsets of 1 um, and a
// momentum of 1e-21 kg m/s on one axis each
const dumpBody = "1e-6,0,0,1e-21,0,0,1e-6,0,0,1000\n" +
	"0,1e-6,0,0,1e-21,0,0,1e-6,0,2000\n"

func writeDump(Te *testing.T, name, content string, compress bool) string {
	path := filepath.Join(Te.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		Te.Fatal(err)
	}
	defer f.Close()
	if compress {
		z := gzip.NewWriter(f)
		if _, err := z.Write([]byte(content)); err != nil {
			Te.Fatal(err)
		}
		if err := z.Close(); err != nil {
			Te.Fatal(err)
		}
	} else {
		if _, err := f.WriteString(content); err != nil {
			Te.Fatal(err)
		}
	}
	return path
}

func TestReadDump(Te *testing.T) {
	path := writeDump(Te, "bunch.csv", dumpHeader+dumpBody, false)
	set, err := ReadDump(path, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if set.Len() != 2 {
		Te.Fatalf("got %d records, want 2", set.Len())
	}
	x, _ := set.Column(ColPosX)
	//1e-6 m position plus 1e-6 m offset is 2 um
	if x[0] != 2.0 {
		Te.Errorf("position_x is %g um, want 2", x[0])
	}
	px, _ := set.Column(ColMomX)
	want := 1e-21 * KgMS2MeVC
	if math.Abs(px[0]-want) > 1e-12*want {
		Te.Errorf("momentum_x is %g MeV/c, want %g", px[0], want)
	}
	w, _ := set.Column(ColWeights)
	if w[0] != 1000 || w[1] != 2000 {
		Te.Errorf("weights read as %v", w)
	}
	e, _ := set.Column(ColEnergy)
	wantE := math.Sqrt(want*want + ElectronMassMeV*ElectronMassMeV)
	if math.Abs(e[0]-wantE) > 1e-12*wantE {
		Te.Errorf("energy is %g MeV, want %g", e[0], wantE)
	}
	if tw, _ := set.TotalWeight(); tw != 3000 {
		Te.Errorf("total weight %g, want 3000", tw)
	}
}

func TestReadDumpSwapYZ(Te *testing.T) {
	path := writeDump(Te, "bunch.csv", dumpHeader+dumpBody, false)
	set, err := ReadDump(path, &DumpOptions{SwapYZ: true})
	if err != nil {
		Te.Fatal(err)
	}
	y, _ := set.Column(ColPosY)
	z, _ := set.Column(ColPosZ)
	//the second record had its position on y; after the swap it is on z
	if y[1] != 0 || z[1] != 2.0 {
		Te.Errorf("swap left y = %g, z = %g, want 0 and 2", y[1], z[1])
	}
}

func TestReadDumpGzip(Te *testing.T) {
	plain := writeDump(Te, "bunch.csv", dumpHeader+dumpBody, false)
	zipped := writeDump(Te, "bunch.csv.gz", dumpHeader+dumpBody, true)
	a, err := ReadDump(plain, nil)
	if err != nil {
		Te.Fatal(err)
	}
	b, err := ReadDump(zipped, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if !a.Equal(b) {
		Te.Error("compressed and plain dumps read differently")
	}
}

func TestReadDumpNegativeWeight(Te *testing.T) {
	body := "0,0,0,0,0,0,0,0,0,-5\n"
	path := writeDump(Te, "bad.csv", dumpHeader+body, false)
	if _, err := ReadDump(path, nil); err == nil {
		Te.Error("negative weighting accepted")
	}
}

func TestReadDumpMissing(Te *testing.T) {
	if _, err := ReadDump(filepath.Join(Te.TempDir(), "nope.csv"), nil); err == nil {
		Te.Error("missing file accepted")
	}
}
