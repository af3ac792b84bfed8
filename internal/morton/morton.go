// Package morton implements the z-order (Morton code) comparator used to
// pre-sort rectangles before bulk insertion into an MQR-Tree. This is the
// "external collaborator" described but not implemented by the core
// indexing package: sorting by Morton code improves locality but is never
// required for correctness.
package morton

import "github.com/444lessio/mqrtree/internal/geom"

// bitsPerAxis is the number of bits each normalized axis is quantized to
// before interleaving, giving a 32-bit code.
const bitsPerAxis = 16

const axisRange = 1 << bitsPerAxis

// Code computes the 32-bit Morton (Z-order) code for env's centroid,
// normalized against bounds (the bounding envelope of the whole data set)
// into [0, 2^16) integers per axis before interleaving.
func Code(env, bounds geom.Envelope) uint32 {
	c := env.Centroid()
	x := normalize(c.X, bounds.MinX, bounds.MaxX)
	y := normalize(c.Y, bounds.MinY, bounds.MaxY)
	return interleave(x, y)
}

// normalize maps v from [lo, hi] to [0, 2^16). A degenerate [lo, hi] range
// (lo == hi) maps everything to 0.
func normalize(v, lo, hi float64) uint32 {
	if hi <= lo {
		return 0
	}
	frac := (v - lo) / (hi - lo)
	if frac < 0 {
		frac = 0
	}
	if frac >= 1 {
		frac = 1 - 1.0/float64(axisRange)
	}
	return uint32(frac * float64(axisRange))
}

// interleave bit-interleaves two 16-bit values into a 32-bit Morton code.
func interleave(x, y uint32) uint32 {
	return spreadBits(x) | (spreadBits(y) << 1)
}

// spreadBits inserts a zero bit between each of v's low 16 bits.
func spreadBits(v uint32) uint32 {
	v &= 0x0000FFFF
	v = (v | (v << 8)) & 0x00FF00FF
	v = (v | (v << 4)) & 0x0F0F0F0F
	v = (v | (v << 2)) & 0x33333333
	v = (v | (v << 1)) & 0x55555555
	return v
}

// Compare orders two envelopes by their Morton code relative to bounds,
// suitable for sort.Slice.
func Compare(bounds geom.Envelope) func(a, b geom.Envelope) bool {
	return func(a, b geom.Envelope) bool {
		return Code(a, bounds) < Code(b, bounds)
	}
}
