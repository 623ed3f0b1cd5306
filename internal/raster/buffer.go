package raster

import "math"

// FrameBuffer holds the plot target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	Depth  []float64 // radius of the point owning each pixel, +inf when none
}

// NewFrameBuffer allocates a zeroed color buffer and +inf depth buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	depth := make([]float64, n)
	for i := range depth {
		depth[i] = math.Inf(1)
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		Depth:  depth,
	}
}

// Fill sets every pixel to one opaque color.
func (fb *FrameBuffer) Fill(r, g, b uint8) {
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3] = r, g, b, 255
	}
}

// Blend mixes color into pixel (x, y) with weight a in [0, 1]. Out-of-range pixels are ignored.
func (fb *FrameBuffer) Blend(x, y int, r, g, b uint8, a float64) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	i := (y*fb.Width + x) * 4
	fb.Color[i] = mix(fb.Color[i], r, a)
	fb.Color[i+1] = mix(fb.Color[i+1], g, a)
	fb.Color[i+2] = mix(fb.Color[i+2], b, a)
	fb.Color[i+3] = 255
}

// Plot writes an opaque pixel if depth is nearer than what is already there.
func (fb *FrameBuffer) Plot(x, y int, depth float64, r, g, b uint8) bool {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return false
	}
	p := y*fb.Width + x
	if depth >= fb.Depth[p] {
		return false
	}
	fb.Depth[p] = depth
	i := p * 4
	fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3] = r, g, b, 255
	return true
}

func mix(dst, src uint8, a float64) uint8 {
	return uint8(float64(dst)*(1-a) + float64(src)*a + 0.5)
}
