package mathutil

import "math"

// Plot grid spacing: one line every 45°.
const GridStep = math.Pi / 4

// AngleDist returns the shortest angular distance between two angles in radians (0–π).
func AngleDist(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	if d > math.Pi {
		return 2*math.Pi - d
	}
	return d
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * 180 / math.Pi
}
