// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

const minLocateHops = 10

// Locate walks from triangle start towards p. It returns the triangle that
// contains p and, when p lies on one of its edges, the position of the vertex
// opposite that edge; otherwise edge is -1.
func (m *Mesh) Locate(p r2.Point, start int) (tri, edge int, err error) {
	if start < 0 || start >= len(m.Triangles) {
		start = len(m.Triangles) - 1
	}
	limit := max(minLocateHops, len(m.Triangles))

	cur := start
	var last Edge
	for range limit {
		t := m.Triangles[cur]
		var o [3]float64
		neg, zero := 0, 0
		for i := range 3 {
			a, b := t.Edge(i)
			o[i] = Orient(m.Vertices[a], m.Vertices[b], p)
			switch {
			case o[i] < 0:
				neg++
			case o[i] == 0:
				zero++
			}
		}

		if neg == 0 {
			switch zero {
			case 0:
				return cur, -1, nil
			case 1:
				for i := range 3 {
					if o[i] == 0 {
						return cur, i, nil
					}
				}
			}
			return None, -1, errors.WithStack(&DegenerateInputError{
				Reason: "point coincides with a mesh vertex",
				I:      None,
				J:      None,
			})
		}

		i := m.stepEdge(cur, o, p)
		a, b := t.Edge(i)
		last = NewEdge(a, b)
		next := m.Neighbors[cur][i]
		if next == None {
			return None, -1, errors.WithStack(&LocateFailureError{Edge: last})
		}
		cur = next
	}
	return None, -1, errors.WithStack(&LocateFailureError{Edge: last})
}

// stepEdge picks the edge of triangle cur to cross next. With a single
// failing orientation the choice is forced; with two the edge whose midpoint
// points more towards p wins.
func (m *Mesh) stepEdge(cur int, o [3]float64, p r2.Point) int {
	first, second := -1, -1
	for i := range 3 {
		if o[i] < 0 {
			if first < 0 {
				first = i
			} else {
				second = i
			}
		}
	}
	if second < 0 {
		return first
	}

	t := m.Triangles[cur]
	v := m.Vertices
	centroid := v[t[0]].Add(v[t[1]]).Add(v[t[2]]).Mul(1.0 / 3)
	dir := p.Sub(centroid)
	midpoint := func(i int) r2.Point {
		a, b := t.Edge(i)
		return v[a].Add(v[b]).Mul(0.5)
	}
	if midpoint(second).Sub(centroid).Dot(dir) > midpoint(first).Sub(centroid).Dot(dir) {
		return second
	}
	return first
}
