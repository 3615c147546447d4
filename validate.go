// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2cdt

import (
	"math"

	"github.com/2dChan/r2cdt/r2delaunay"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// inCircleTolerance scales with the fourth power of the bounding box size,
// like the in-circle determinant itself.
const inCircleTolerance = 1e-10

// Validate checks the mesh invariants and the constrained Delaunay property:
// a vertex strictly inside the circumcircle of a triangle must be hidden from
// the triangle by a constraint. It does not modify t.
func (t *Triangulation) Validate() error {
	if err := t.validateTopology(); err != nil {
		return err
	}

	size := r2.RectFromPoints(t.Vertices...).Size()
	d := max(size.X, size.Y)
	tol := inCircleTolerance * math.Pow(d, 4)

	for tIdx, tri := range t.Triangles {
		a, b, c := t.TriangleVertices(tIdx)
		centroid := a.Add(b).Add(c).Mul(1.0 / 3)
		for vIdx, p := range t.Vertices {
			if tri.IndexOf(vIdx) >= 0 {
				continue
			}
			if r2delaunay.InCircle(a, b, c, p) <= tol {
				continue
			}
			if !t.occluded(vIdx, p, centroid) {
				return errors.WithStack(&DelaunayViolationError{Triangle: tIdx, Vertex: vIdx})
			}
		}
	}
	return nil
}

// occluded reports whether the sight line from vertex vIdx at p to target
// properly crosses a constraint not incident on vIdx.
func (t *Triangulation) occluded(vIdx int, p, target r2.Point) bool {
	for _, e := range t.Constraints {
		if e[0] == vIdx || e[1] == vIdx {
			continue
		}
		if r2delaunay.SegmentsCross(p, target, t.Vertices[e[0]], t.Vertices[e[1]]) {
			return true
		}
	}
	return false
}

func (t *Triangulation) validateTopology() error {
	broken := func(tIdx int, reason string) error {
		return errors.WithStack(&TopologyError{Triangle: tIdx, Reason: reason})
	}

	edges := make(map[r2delaunay.Edge]int)
	for tIdx, tri := range t.Triangles {
		a, b, c := t.TriangleVertices(tIdx)
		if r2delaunay.Orient(a, b, c) <= 0 {
			return broken(tIdx, "not counter-clockwise")
		}
		for i := range 3 {
			p, q := tri.Edge(i)
			e := r2delaunay.NewEdge(p, q)
			edges[e]++
			if edges[e] > 2 {
				return broken(tIdx, "edge "+e.String()+" shared by more than two triangles")
			}

			u := t.Neighbors[tIdx][i]
			if u == r2delaunay.None {
				continue
			}
			if u < 0 || u >= len(t.Triangles) {
				return broken(tIdx, "neighbor out of range")
			}
			nb := t.Neighbors[u]
			j := -1
			for s := range 3 {
				if nb[s] == tIdx {
					j = s
				}
			}
			if j < 0 {
				return broken(tIdx, "asymmetric adjacency")
			}
			r, s := t.Triangles[u].Edge(j)
			if r != q || s != p {
				return broken(tIdx, "neighbor disagrees on the shared edge")
			}
		}
	}

	for _, e := range t.Constraints {
		if edges[e] == 0 {
			return broken(r2delaunay.None, "constraint "+e.String()+" missing")
		}
	}
	return nil
}
