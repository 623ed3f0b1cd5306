package raster

// ramp runs blue → cyan → yellow → red over t in [0, 1].
var ramp = [...][3]float64{
	{40, 90, 255},
	{40, 220, 230},
	{250, 230, 60},
	{240, 50, 40},
}

// RadiusColor maps a normalized radius to a ramp color. t is clamped.
func RadiusColor(t float64) (r, g, b uint8) {
	if !(t > 0) {
		t = 0
	} else if t > 1 {
		t = 1
	}
	seg := t * float64(len(ramp)-1)
	i := int(seg)
	if i >= len(ramp)-1 {
		i = len(ramp) - 2
	}
	f := seg - float64(i)
	a, c := ramp[i], ramp[i+1]
	return uint8(a[0] + (c[0]-a[0])*f + 0.5),
		uint8(a[1] + (c[1]-a[1])*f + 0.5),
		uint8(a[2] + (c[2]-a[2])*f + 0.5)
}
