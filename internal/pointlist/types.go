package pointlist

import "spherecoord/internal/mathutil"

// PointSet is one named group of Cartesian points, plotted together.
type PointSet struct {
	Index  int
	Name   string
	RotX   float64 // frame rotation, degrees
	RotY   float64
	RotZ   float64
	Points []mathutil.Vec3
}

// Frame returns the points with the set's frame rotation applied.
func (s PointSet) Frame() []mathutil.Vec3 {
	m := mathutil.FrameRotation(s.RotX, s.RotY, s.RotZ)
	out := make([]mathutil.Vec3, len(s.Points))
	for i, p := range s.Points {
		out[i] = m.MulVec3(p)
	}
	return out
}

// Spherical converts every framed point. One scalar conversion per point.
func (s PointSet) Spherical() []mathutil.Spherical {
	pts := s.Frame()
	out := make([]mathutil.Spherical, len(pts))
	for i, p := range pts {
		out[i] = mathutil.CartesianToSpherical(p)
	}
	return out
}
