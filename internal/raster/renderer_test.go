package raster

import (
	"image"
	"image/color"
	"math"
	"testing"

	"spherecoord/internal/mathutil"
)

func TestProject(t *testing.T) {
	const w, h = 400, 200
	tests := []struct {
		name   string
		s      mathutil.Spherical
		wx, wy float64
	}{
		{"origin", mathutil.Spherical{}, 200, 100},
		{"+y half way", mathutil.Spherical{Theta: math.Pi / 2}, 300, 100},
		{"pi wraps", mathutil.Spherical{Theta: math.Pi}, 0, 100},
		{"-pi/2 phi on top", mathutil.Spherical{Phi: -math.Pi / 2}, 200, 0},
		{"equator at bottom", mathutil.Spherical{Phi: math.Pi / 2}, 200, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Project(tt.s, w, h)
			if math.Abs(x-tt.wx) > 1e-9 || math.Abs(y-tt.wy) > 1e-9 {
				t.Errorf("Project = (%v, %v), want (%v, %v)", x, y, tt.wx, tt.wy)
			}
		})
	}
}

func TestRenderPlotSize(t *testing.T) {
	img, stats := RenderPlot(nil, "", nil, 32, 2, 2)
	if img.Bounds().Dx() != 128 || img.Bounds().Dy() != 64 {
		t.Errorf("bounds = %v, want 128x64", img.Bounds())
	}
	if stats.Drawn != 0 || stats.MinR != 0 || stats.MaxR != 0 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRenderPlotNearerPointWins(t *testing.T) {
	near := mathutil.Spherical{R: 10, Theta: 0.5, Phi: 0.3}
	far := mathutil.Spherical{R: 20, Theta: 0.5, Phi: 0.3}

	for _, order := range [][]mathutil.Spherical{{near, far}, {far, near}} {
		img, stats := RenderPlot(order, "", nil, 64, 1, 3)
		if stats.Drawn != 2 {
			t.Fatalf("drawn = %d", stats.Drawn)
		}
		x, y := Project(near, img.Bounds().Dx(), img.Bounds().Dy())
		r, g, b := RadiusColor(0)
		want := color.NRGBA{r, g, b, 255}
		if got := img.NRGBAAt(int(x), int(y)); got != want {
			t.Errorf("pixel = %v, want near color %v", got, want)
		}
	}
}

func TestRenderPlotSkipsNaN(t *testing.T) {
	pts := []mathutil.Spherical{
		mathutil.CartesianToSpherical(mathutil.Vec3{math.NaN(), 1, 1}),
		mathutil.CartesianToSpherical(mathutil.Vec3{60, 0, 293}),
	}
	_, stats := RenderPlot(pts, "nan", nil, 32, 1, 1)
	if stats.Drawn != 1 || stats.Skipped != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRenderPlotBackdrop(t *testing.T) {
	bg := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for i := 0; i < len(bg.Pix); i += 4 {
		bg.Pix[i], bg.Pix[i+1], bg.Pix[i+2], bg.Pix[i+3] = 10, 200, 30, 255
	}
	img, _ := RenderPlot(nil, "", bg, 32, 1, 1)

	// Away from grid lines the backdrop shows through untouched.
	got := img.NRGBAAt(5, 5)
	if got != (color.NRGBA{10, 200, 30, 255}) {
		t.Errorf("pixel = %v, want backdrop color", got)
	}
}

func TestRadiusColorClamps(t *testing.T) {
	lr, lg, lb := RadiusColor(-1)
	zr, zg, zb := RadiusColor(0)
	if lr != zr || lg != zg || lb != zb {
		t.Error("negative t should clamp to 0")
	}
	hr, hg, hb := RadiusColor(5)
	or, og, ob := RadiusColor(1)
	if hr != or || hg != og || hb != ob {
		t.Error("t > 1 should clamp to 1")
	}
	if nr, _, _ := RadiusColor(math.NaN()); nr != zr {
		t.Error("NaN should clamp to 0")
	}
}

func TestSampleBackdropWrapsAzimuth(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	tex.SetNRGBA(0, 0, color.NRGBA{100, 0, 0, 255})
	tex.SetNRGBA(1, 0, color.NRGBA{200, 0, 0, 255})

	r0, _, _ := SampleBackdrop(tex, 0, 0.5)
	r1, _, _ := SampleBackdrop(tex, 1.0, 0.5)
	if r0 != 100 || r1 != 100 {
		t.Errorf("u=0 -> %d, u=1 -> %d, want both 100", r0, r1)
	}
	if r, _, _ := SampleBackdrop(tex, 0.5, 7); r != 150 {
		t.Errorf("u=0.5 -> %d, want 150", r)
	}
}

func TestProjectPolarLayout(t *testing.T) {
	const w, h = 400, 200
	row := func(v mathutil.Vec3) float64 {
		_, y := Project(mathutil.CartesianToSpherical(v), w, h)
		return y
	}

	nearUp := row(mathutil.Vec3{1, 0, 293})
	nearDown := row(mathutil.Vec3{1, 0, -293})
	if math.Abs(nearUp-h/2) > 1 || math.Abs(nearDown-h/2) > 1 {
		t.Errorf("near ±Z rows = %v, %v, want both about %v", nearUp, nearDown, h/2)
	}
	if nearDown >= nearUp {
		t.Errorf("near -Z row %v should sit above near +Z row %v", nearDown, nearUp)
	}

	if y := row(mathutil.Vec3{60, 0, 0}); y != h {
		t.Errorf("equatorial row = %v, want bottom edge %v", y, h)
	}
	if y := row(mathutil.Vec3{60, 0, -1e-9}); y > 1 {
		t.Errorf("just below equator row = %v, want top edge", y)
	}
}
