package mathutil

import "math"

// Vec3 is a Cartesian point (x, y, z). Value type, stack-allocated.
type Vec3 [3]float64

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Len is the Euclidean norm. CartesianToSpherical reports exactly this value as R.
// Hypot keeps it finite and nonzero wherever the true norm is.
func (v Vec3) Len() float64 {
	return math.Hypot(math.Hypot(v[0], v[1]), v[2])
}

// MaxAbs returns the largest absolute component.
func (v Vec3) MaxAbs() float64 {
	return math.Max(math.Abs(v[0]), math.Max(math.Abs(v[1]), math.Abs(v[2])))
}
