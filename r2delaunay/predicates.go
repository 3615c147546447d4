// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"github.com/golang/geo/r2"
)

// Orient returns twice the signed area of the triangle (a, b, c).
// It is positive when c lies to the left of the directed line a->b.
func Orient(a, b, c r2.Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// InCircle returns a value that is positive when d lies strictly inside the
// circumcircle of the counter-clockwise triangle (a, b, c), negative when it
// lies outside and zero when the four points are cocircular.
func InCircle(a, b, c, d r2.Point) float64 {
	ad := a.Sub(d)
	bd := b.Sub(d)
	cd := c.Sub(d)

	al := ad.Dot(ad)
	bl := bd.Dot(bd)
	cl := cd.Dot(cd)

	return ad.X*(bd.Y*cl-bl*cd.Y) -
		ad.Y*(bd.X*cl-bl*cd.X) +
		al*(bd.X*cd.Y-bd.Y*cd.X)
}

// SegmentsCross reports whether the segments p1p2 and q1q2 intersect at a
// single point interior to both. Touching at an endpoint or collinear
// overlap is not a crossing.
func SegmentsCross(p1, p2, q1, q2 r2.Point) bool {
	o1 := Orient(p1, p2, q1)
	o2 := Orient(p1, p2, q2)
	o3 := Orient(q1, q2, p1)
	o4 := Orient(q1, q2, p2)
	return ((o1 > 0 && o2 < 0) || (o1 < 0 && o2 > 0)) &&
		((o3 > 0 && o4 < 0) || (o3 < 0 && o4 > 0))
}

// SegmentsOverlap reports whether two collinear segments share more than a
// single point.
func SegmentsOverlap(p1, p2, q1, q2 r2.Point) bool {
	if Orient(p1, p2, q1) != 0 || Orient(p1, p2, q2) != 0 {
		return false
	}
	d := p2.Sub(p1)
	l := d.Dot(d)
	if l == 0 {
		return false
	}
	t1 := q1.Sub(p1).Dot(d) / l
	t2 := q2.Sub(p1).Dot(d) / l
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return min(t2, 1)-max(t1, 0) > 0
}

// OnSegment reports whether p lies on the open segment ab.
func OnSegment(a, b, p r2.Point) bool {
	if Orient(a, b, p) != 0 {
		return false
	}
	d := b.Sub(a)
	t := p.Sub(a).Dot(d)
	return t > 0 && t < d.Dot(d)
}
