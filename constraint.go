// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2cdt

import (
	"fmt"

	"github.com/2dChan/r2cdt/r2delaunay"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// checkConstraints validates the requested edges against each other and
// against the points, and returns them normalized. An edge whose open
// segment contains another point can never be a triangle edge.
func checkConstraints(points []r2.Point, edges [][2]int) ([]r2delaunay.Edge, error) {
	n := len(points)
	out := make([]r2delaunay.Edge, len(edges))
	seen := make(map[r2delaunay.Edge]int, len(edges))

	invalid := func(i, other int, reason string) error {
		return errors.WithStack(&InvalidEdgeError{
			Edge:   edges[i],
			Index:  i,
			Other:  other,
			Reason: reason,
		})
	}

	for i, e := range edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return nil, invalid(i, -1, "vertex index out of range")
		}
		if e[0] == e[1] {
			return nil, invalid(i, -1, "degenerate edge")
		}
		key := r2delaunay.NewEdge(e[0], e[1])
		if j, ok := seen[key]; ok {
			return nil, invalid(i, j, "duplicates")
		}
		seen[key] = i
		out[i] = key
	}

	for i, e := range out {
		p1, p2 := points[e[0]], points[e[1]]
		for j := i + 1; j < len(out); j++ {
			f := out[j]
			q1, q2 := points[f[0]], points[f[1]]
			switch {
			case r2delaunay.SegmentsCross(p1, p2, q1, q2):
				return nil, invalid(i, j, "crosses")
			case r2delaunay.SegmentsOverlap(p1, p2, q1, q2):
				return nil, invalid(i, j, "overlaps")
			case r2delaunay.OnSegment(p1, p2, q1), r2delaunay.OnSegment(p1, p2, q2),
				r2delaunay.OnSegment(q1, q2, p1), r2delaunay.OnSegment(q1, q2, p2):
				return nil, invalid(i, j, "touches the interior of")
			}
		}
	}

	for i, e := range out {
		p1, p2 := points[e[0]], points[e[1]]
		box := r2.RectFromPoints(p1, p2)
		for k, p := range points {
			if box.ContainsPoint(p) && r2delaunay.OnSegment(p1, p2, p) {
				return nil, invalid(i, -1, fmt.Sprintf("passes through vertex %d", k))
			}
		}
	}
	return out, nil
}

// recoverEdge makes e an edge of m by swapping the diagonals it crosses and
// fixes it. It returns every edge whose adjacent triangles changed, which
// are the candidates for legalization.
func recoverEdge(m *r2delaunay.Mesh, e r2delaunay.Edge, log *zap.Logger) ([]r2delaunay.Edge, error) {
	a, b := e[0], e[1]
	if m.HasEdge(a, b) {
		m.Fix(a, b)
		return nil, nil
	}

	crossings, err := crossingEdges(m, e)
	if err != nil {
		return nil, err
	}

	pa, pb := m.Vertices[a], m.Vertices[b]
	initial := len(crossings)
	budget := initial
	extended := false
	var touched []r2delaunay.Edge

	pass := 0
	for ; len(crossings) > 0; pass++ {
		if pass >= budget {
			if extended {
				return nil, unresolved(e, "iteration budget exhausted")
			}
			budget += 2 * initial
			extended = true
		}

		var next []r2delaunay.Edge
		swapped := false
		for i := len(crossings) - 1; i >= 0; i-- {
			c := crossings[i]
			t, k, ok := m.FindEdge(c[0], c[1])
			if !ok {
				return nil, unresolved(e, "crossing edge "+c.String()+" vanished")
			}
			if !m.CanFlip(t, k) {
				next = append(next, c)
				continue
			}

			p0, p1, p2 := m.Triangles[t][k], m.Triangles[t][(k+1)%3], m.Triangles[t][(k+2)%3]
			m.Flip(t, k)
			q := m.Triangles[t][2]
			swapped = true

			d := r2delaunay.NewEdge(p0, q)
			if r2delaunay.SegmentsCross(pa, pb, m.Vertices[p0], m.Vertices[q]) {
				next = append(next, d)
			} else if d != e {
				touched = append(touched, d)
			}
			touched = append(touched,
				r2delaunay.NewEdge(p0, p1), r2delaunay.NewEdge(p1, q),
				r2delaunay.NewEdge(q, p2), r2delaunay.NewEdge(p2, p0))
		}
		if !swapped {
			return nil, unresolved(e, "no convex quadrilateral left to swap")
		}
		crossings = next
	}

	if !m.HasEdge(a, b) {
		return nil, unresolved(e, "edge missing after swaps")
	}
	m.Fix(a, b)
	log.Debug("r2cdt: constraint recovered",
		zap.Stringer("edge", e),
		zap.Int("crossings", initial),
		zap.Int("passes", pass))
	return touched, nil
}

// crossingEdges lists, in order from a to b, the mesh edges that properly
// cross the segment e.
func crossingEdges(m *r2delaunay.Mesh, e r2delaunay.Edge) ([]r2delaunay.Edge, error) {
	a, b := e[0], e[1]
	v := m.Vertices
	pa, pb := v[a], v[b]

	t, k := r2delaunay.None, -1
	for _, tIdx := range m.Ring(a) {
		tri := m.Triangles[tIdx]
		i := tri.IndexOf(a)
		p, q := tri.Edge(i)
		if r2delaunay.OnSegment(pa, pb, v[p]) || r2delaunay.OnSegment(pa, pb, v[q]) {
			return nil, unresolved(e, "passes through a vertex")
		}
		if r2delaunay.SegmentsCross(pa, pb, v[p], v[q]) {
			t, k = tIdx, i
			break
		}
	}
	if t == r2delaunay.None {
		return nil, unresolved(e, "no crossing edge around its first vertex")
	}

	p, q := m.Triangles[t].Edge(k)
	crossings := []r2delaunay.Edge{r2delaunay.NewEdge(p, q)}
	for range len(m.Triangles) {
		u := m.Neighbors[t][k]
		if u == r2delaunay.None {
			return nil, unresolved(e, "walk left the mesh")
		}
		j := m.NeighborSlot(u, t)
		tri := m.Triangles[u]
		o := tri[j]
		if o == b {
			return crossings, nil
		}
		if r2delaunay.OnSegment(pa, pb, v[o]) {
			return nil, unresolved(e, "passes through a vertex")
		}

		x, y := tri[(j+1)%3], tri[(j+2)%3]
		switch {
		case r2delaunay.SegmentsCross(pa, pb, v[o], v[x]):
			t, k = u, (j+2)%3
			crossings = append(crossings, r2delaunay.NewEdge(o, x))
		case r2delaunay.SegmentsCross(pa, pb, v[y], v[o]):
			t, k = u, (j+1)%3
			crossings = append(crossings, r2delaunay.NewEdge(y, o))
		default:
			return nil, unresolved(e, "lost the crossing chain")
		}
	}
	return nil, unresolved(e, "crossing chain longer than the mesh")
}

func unresolved(e r2delaunay.Edge, reason string) error {
	return errors.WithStack(&ConstraintUnresolvedError{Edge: e, Reason: reason})
}
