package pointlist

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"spherecoord/internal/mathutil"
)

const sampleXML = `<?xml version="1.0"?>
<PointList>
  <Set Index="0" Name="fixtures">
    <Point X="0" Y="0" Z="293"/>
    <Point X="-60" Y="0" Z="293"/>
    <Point X="oops" Y="1" Z="2"/>
  </Set>
  <Set Index="x" Name="skipped">
    <Point X="1" Y="1" Z="1"/>
  </Set>
  <Set Index="4" Name="turned" RotZ="90">
    <Point X="60" Y="0" Z="293"/>
  </Set>
  <Set Index="5" Name="empty"/>
  <Set Index="4" Name="turned again">
    <Point X="1" Y="2" Z="3"/>
  </Set>
</PointList>`

func writeList(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "points.xml")
	if err := os.WriteFile(path, []byte(sampleXML), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParse(t *testing.T) {
	sets, err := Parse(writeList(t))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(sets) != 3 {
		t.Fatalf("got %d sets, want 3", len(sets))
	}

	first := sets[0]
	if first.Index != 0 || first.Name != "fixtures" || len(first.Points) != 2 {
		t.Errorf("first set = %+v", first)
	}
	if first.Points[1] != (mathutil.Vec3{-60, 0, 293}) {
		t.Errorf("second point = %v", first.Points[1])
	}
	if sets[1].RotZ != 90 || sets[1].RotX != 0 {
		t.Errorf("rotation = %v/%v", sets[1].RotX, sets[1].RotZ)
	}
	if sets[2].Name != "empty" || len(sets[2].Points) != 0 {
		t.Errorf("empty set = %+v", sets[2])
	}
	if sets[1].Name != "turned" {
		t.Errorf("repeated index replaced the first set: %+v", sets[1])
	}
}

func TestParseMissingFile(t *testing.T) {
	if _, err := Parse(filepath.Join(t.TempDir(), "nope.xml")); err == nil {
		t.Error("expected error")
	}
}

func TestSphericalUsesFrame(t *testing.T) {
	sets, err := Parse(writeList(t))
	if err != nil {
		t.Fatal(err)
	}

	plain := sets[0].Spherical()
	if plain[0] != (mathutil.Spherical{R: 293}) {
		t.Errorf("z-axis point = %+v", plain[0])
	}
	if plain[1].Theta != math.Pi {
		t.Errorf("-x point theta = %v, want π", plain[1].Theta)
	}

	turned := sets[1].Spherical()[0]
	if math.Abs(turned.Theta-math.Pi/2) > 1e-9 {
		t.Errorf("rotated theta = %v, want π/2", turned.Theta)
	}
}
