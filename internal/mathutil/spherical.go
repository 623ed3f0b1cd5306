package mathutil

import "math"

// Spherical is a point in spherical coordinates.
// Theta is the azimuth in the x-y plane measured from +X, Phi the polar
// angle measured from +Z. Both are radians.
type Spherical struct {
	R     float64
	Theta float64
	Phi   float64
}

// Degrees returns a copy with Theta and Phi expressed in degrees. Display only.
func (s Spherical) Degrees() Spherical {
	return Spherical{R: s.R, Theta: Rad2Deg(s.Theta), Phi: Rad2Deg(s.Phi)}
}

// CartesianToSpherical maps (x, y, z) to (r, theta, phi).
//
// Points on the Z axis (x and y exactly zero) return (r, 0, 0). Otherwise
// theta lies in (-π, π] and phi = atan(ρ/z), which is negative for z < 0
// and π/2 for z == 0. Near-axis values that are not exactly zero follow
// the general path. NaN and Inf propagate.
func CartesianToSpherical(c Vec3) Spherical {
	x, y, z := c[0], c[1], c[2]
	r := c.Len()
	if x == 0 && y == 0 {
		return Spherical{R: r}
	}

	theta := math.Atan(y / x)
	phi := math.Atan(math.Hypot(x, y) / z)

	// atan only covers (-π/2, π/2); fold the x < 0 half-plane back in.
	switch {
	case x < 0 && y >= 0 && theta == 0:
		theta = math.Pi
	case x < 0 && y < 0 && signum(theta) > 0:
		theta -= math.Pi
	case x < 0 && y > 0 && signum(theta) < 0:
		theta += math.Pi
	}

	return Spherical{R: r, Theta: theta, Phi: phi}
}

// SphericalToCartesian maps (r, theta, phi) back to (x, y, z). No range checks.
func SphericalToCartesian(s Spherical) Vec3 {
	sinPhi, cosPhi := math.Sincos(s.Phi)
	sinTheta, cosTheta := math.Sincos(s.Theta)
	return Vec3{
		s.R * sinPhi * cosTheta,
		s.R * sinPhi * sinTheta,
		s.R * cosPhi,
	}
}

// ToSpherical is CartesianToSpherical on bare components.
func ToSpherical(x, y, z float64) (r, theta, phi float64) {
	s := CartesianToSpherical(Vec3{x, y, z})
	return s.R, s.Theta, s.Phi
}

// ToCartesian is SphericalToCartesian on bare components.
func ToCartesian(r, theta, phi float64) (x, y, z float64) {
	c := SphericalToCartesian(Spherical{R: r, Theta: theta, Phi: phi})
	return c[0], c[1], c[2]
}

// signum reads the sign bit, so -0 is negative and +0 positive.
func signum(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return v
	case math.Signbit(v):
		return -1
	default:
		return 1
	}
}
