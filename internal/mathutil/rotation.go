package mathutil

import "math"

// RotX returns a 3×3 rotation matrix around the X axis. Angle in radians.
func RotX(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotY returns a 3×3 rotation matrix around the Y axis.
func RotY(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// RotZ returns a 3×3 rotation matrix around the Z axis.
// A pure Z rotation shifts azimuth and leaves the polar angle alone.
func RotZ(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// FrameRotation builds the rotation for a point set frame given Euler XYZ in degrees.
// Zero angles return the identity exactly so unrotated sets keep their exact-zero axes.
func FrameRotation(rxDeg, ryDeg, rzDeg float64) Mat3 {
	if rxDeg == 0 && ryDeg == 0 && rzDeg == 0 {
		return Mat3Identity()
	}
	return QuatToMat3(EulerToQuat(Deg2Rad(rxDeg), Deg2Rad(ryDeg), Deg2Rad(rzDeg)))
}
