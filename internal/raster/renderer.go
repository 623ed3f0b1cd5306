package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"spherecoord/internal/mathutil"
)

var (
	bgColor    = [3]uint8{24, 26, 32}
	gridColor  = [3]uint8{200, 200, 210}
	labelColor = color.NRGBA{235, 235, 240, 255}
)

const gridAlpha = 0.35

// Project maps a spherical point onto a w×h equirectangular plot.
// Theta in (-π, π] spans x ∈ [0, w) left to right, wrapping π onto -π.
// Phi in [-π/2, π/2] spans y ∈ [0, h] top to bottom.
//
// Phi is plotted as CartesianToSpherical reports it, atan(ρ/z), so the
// rows do not read as colatitude. Points near +Z (phi → 0⁺) and near -Z
// (phi → 0⁻) both land around the middle row, on either side of it.
// Points in the equatorial plane go to the bottom edge (phi = π/2), and
// points just below it go to the top edge (phi → -π/2).
func Project(s mathutil.Spherical, w, h int) (px, py float64) {
	px = (s.Theta + math.Pi) / (2 * math.Pi) * float64(w)
	if px >= float64(w) {
		px -= float64(w)
	}
	py = (s.Phi + math.Pi/2) / math.Pi * float64(h)
	return px, py
}

// PlotStats summarizes one render.
type PlotStats struct {
	Drawn   int // points that reached the image
	Skipped int // NaN/Inf points
	MinR    float64
	MaxR    float64
}

// RenderPlot draws spherical points on a 2:1 azimuth/polar chart.
// The returned image is (2·size·supersample) × (size·supersample); callers
// downsample it. Overlapping discs keep the point with the smaller radius.
func RenderPlot(
	pts []mathutil.Spherical,
	label string,
	bg *image.NRGBA,
	size int,
	supersample int,
	radius float64,
) (*image.NRGBA, PlotStats) {
	size = max(size, 1)
	supersample = max(supersample, 1)
	h := size * supersample
	w := 2 * h
	fb := NewFrameBuffer(w, h)

	if bg != nil && bg.Rect.Dx() > 0 && bg.Rect.Dy() > 0 {
		paintBackdrop(fb, bg)
	} else {
		fb.Fill(bgColor[0], bgColor[1], bgColor[2])
	}
	drawGrid(fb, supersample)

	stats := PlotStats{MinR: math.Inf(1), MaxR: math.Inf(-1)}
	for _, p := range pts {
		if !finite(p) {
			stats.Skipped++
			continue
		}
		stats.MinR = math.Min(stats.MinR, p.R)
		stats.MaxR = math.Max(stats.MaxR, p.R)
	}

	span := stats.MaxR - stats.MinR
	rad := radius * float64(supersample)
	for _, p := range pts {
		if !finite(p) {
			continue
		}
		t := 0.0
		if span > 0 {
			t = (p.R - stats.MinR) / span
		}
		cr, cg, cb := RadiusColor(t)
		px, py := Project(p, w, h)
		drawDisc(fb, px, py, rad, p.R, cr, cg, cb)
		stats.Drawn++
	}
	if stats.Drawn == 0 {
		stats.MinR, stats.MaxR = 0, 0
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, fb.Color)

	if label != "" {
		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(labelColor),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(4*supersample, 4*supersample+basicfont.Face7x13.Ascent),
		}
		d.DrawString(label)
	}

	return img, stats
}

func finite(s mathutil.Spherical) bool {
	for _, v := range [3]float64{s.R, s.Theta, s.Phi} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func paintBackdrop(fb *FrameBuffer, bg *image.NRGBA) {
	fw, fh := float64(fb.Width), float64(fb.Height)
	for y := 0; y < fb.Height; y++ {
		v := (float64(y) + 0.5) / fh
		for x := 0; x < fb.Width; x++ {
			r, g, b := SampleBackdrop(bg, (float64(x)+0.5)/fw, v)
			i := (y*fb.Width + x) * 4
			fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3] = r, g, b, 255
		}
	}
}

// drawGrid rules a line every GridStep in both angles.
func drawGrid(fb *FrameBuffer, thickness int) {
	for a := -math.Pi; a <= math.Pi+1e-9; a += mathutil.GridStep {
		x, _ := Project(mathutil.Spherical{Theta: a}, fb.Width, fb.Height)
		for t := 0; t < thickness; t++ {
			for y := 0; y < fb.Height; y++ {
				fb.Blend(int(x)+t, y, gridColor[0], gridColor[1], gridColor[2], gridAlpha)
			}
		}
	}
	for a := -math.Pi / 2; a <= math.Pi/2+1e-9; a += mathutil.GridStep {
		_, y := Project(mathutil.Spherical{Phi: a}, fb.Width, fb.Height)
		row := int(y)
		if row >= fb.Height {
			row = fb.Height - thickness
		}
		for t := 0; t < thickness; t++ {
			for x := 0; x < fb.Width; x++ {
				fb.Blend(x, row+t, gridColor[0], gridColor[1], gridColor[2], gridAlpha)
			}
		}
	}
}

// drawDisc fills a disc centred at (cx, cy). The x axis wraps around.
func drawDisc(fb *FrameBuffer, cx, cy, rad, depth float64, r, g, b uint8) {
	if rad < 0.5 {
		rad = 0.5
	}
	r2 := rad * rad
	y0 := int(math.Floor(cy - rad))
	y1 := int(math.Ceil(cy + rad))
	x0 := int(math.Floor(cx - rad))
	x1 := int(math.Ceil(cx + rad))
	for y := y0; y <= y1; y++ {
		dy := float64(y) + 0.5 - cy
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy > r2 {
				continue
			}
			fb.Plot(wrap(x, fb.Width), y, depth, r, g, b)
		}
	}
}

func wrap(x, w int) int {
	x %= w
	if x < 0 {
		x += w
	}
	return x
}
