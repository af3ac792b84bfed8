// Package geom provides the 2D axis-aligned bounding box used throughout
// the mqrtree package as the unit of spatial extent.
package geom

import (
	"fmt"
	"math"
)

// Point is a single coordinate pair used for k-NN queries and centroids.
type Point struct {
	X float64
	Y float64
}

// Envelope is an axis-aligned rectangle over double-precision coordinates.
// The zero value is the zero-area envelope at the origin; construct other
// envelopes with New (which validates the bounds) or NewFromPoint.
type Envelope struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// New builds an Envelope from its four bounds, validating minX<=maxX and
// minY<=maxY per the caller-input error taxonomy.
func New(minX, maxX, minY, maxY float64) (Envelope, error) {
	e := Envelope{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
	if err := e.validate(); err != nil {
		return Envelope{}, err
	}
	return e, nil
}

// NewFromPoint builds a zero-area Envelope at (x, y).
func NewFromPoint(x, y float64) Envelope {
	return Envelope{MinX: x, MaxX: x, MinY: y, MaxY: y}
}

func (e Envelope) validate() error {
	if e.MinX > e.MaxX {
		return fmt.Errorf("geom: malformed envelope: minX %g > maxX %g", e.MinX, e.MaxX)
	}
	if e.MinY > e.MaxY {
		return fmt.Errorf("geom: malformed envelope: minY %g > maxY %g", e.MinY, e.MaxY)
	}
	return nil
}

// Clone returns a defensive, independent copy of e. Callers must never be
// able to mutate an Envelope once it has been handed to the tree.
func (e Envelope) Clone() Envelope {
	return Envelope{MinX: e.MinX, MaxX: e.MaxX, MinY: e.MinY, MaxY: e.MaxY}
}

// Union returns the smallest Envelope containing both e and other.
func (e Envelope) Union(other Envelope) Envelope {
	return Envelope{
		MinX: math.Min(e.MinX, other.MinX),
		MaxX: math.Max(e.MaxX, other.MaxX),
		MinY: math.Min(e.MinY, other.MinY),
		MaxY: math.Max(e.MaxY, other.MaxY),
	}
}

// Intersects reports whether e and other overlap, including shared edges.
func (e Envelope) Intersects(other Envelope) bool {
	if e.MaxX < other.MinX || other.MaxX < e.MinX {
		return false
	}
	if e.MaxY < other.MinY || other.MaxY < e.MinY {
		return false
	}
	return true
}

// Centroid returns the arithmetic mean of e's corners.
func (e Envelope) Centroid() Point {
	return Point{
		X: (e.MinX + e.MaxX) / 2,
		Y: (e.MinY + e.MaxY) / 2,
	}
}

// ContainsCentroid reports whether p's centroid falls within e, inclusive
// of the boundary.
func (e Envelope) ContainsCentroid(p Point) bool {
	return p.X >= e.MinX && p.X <= e.MaxX && p.Y >= e.MinY && p.Y <= e.MaxY
}

// Area returns e's area; zero for a degenerate point envelope.
func (e Envelope) Area() float64 {
	return (e.MaxX - e.MinX) * (e.MaxY - e.MinY)
}

// DistanceSquaredToPoint returns the squared Euclidean distance from p to
// the nearest point on e (zero if p lies inside e). Used as the best-first
// k-NN priority key for internal (node) entries.
func (e Envelope) DistanceSquaredToPoint(p Point) float64 {
	dx := 0.0
	switch {
	case p.X < e.MinX:
		dx = e.MinX - p.X
	case p.X > e.MaxX:
		dx = p.X - e.MaxX
	}
	dy := 0.0
	switch {
	case p.Y < e.MinY:
		dy = e.MinY - p.Y
	case p.Y > e.MaxY:
		dy = p.Y - e.MaxY
	}
	return dx*dx + dy*dy
}

// DistanceSquared returns the squared Euclidean distance between two points.
func DistanceSquared(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
