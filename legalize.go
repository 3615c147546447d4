// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2cdt

import (
	"github.com/2dChan/r2cdt/r2delaunay"
)

// minLegalizePasses is the pass allowance granted regardless of edge count.
const minLegalizePasses = 64

// legalize sweeps edges until a full pass performs no swap, and returns the
// number of swaps. Fixed edges and hull edges are never swapped. Swapping an
// edge adds the four outer edges of its quadrilateral to the sweep.
func legalize(m *r2delaunay.Mesh, edges []r2delaunay.Edge) (int, error) {
	queue := make([]r2delaunay.Edge, 0, len(edges))
	inQueue := make(map[r2delaunay.Edge]bool, len(edges))
	push := func(e r2delaunay.Edge) {
		if inQueue[e] || m.IsFixed(e[0], e[1]) {
			return
		}
		inQueue[e] = true
		queue = append(queue, e)
	}
	for _, e := range edges {
		push(e)
	}

	limit := minLegalizePasses + 4*len(queue)
	total := 0
	for pass := 0; ; pass++ {
		if pass >= limit {
			return total, unresolved(r2delaunay.Edge{r2delaunay.None, r2delaunay.None},
				"legalization did not converge")
		}

		swaps := 0
		for i := 0; i < len(queue); i++ {
			e := queue[i]
			t, k, ok := m.FindEdge(e[0], e[1])
			if !ok || !m.EdgeIllegal(t, k) || !m.CanFlip(t, k) {
				continue
			}

			p0, p1, p2 := m.Triangles[t][k], m.Triangles[t][(k+1)%3], m.Triangles[t][(k+2)%3]
			m.Flip(t, k)
			q := m.Triangles[t][2]
			swaps++

			d := r2delaunay.NewEdge(p0, q)
			delete(inQueue, e)
			queue[i] = d
			inQueue[d] = true
			push(r2delaunay.NewEdge(p0, p1))
			push(r2delaunay.NewEdge(p1, q))
			push(r2delaunay.NewEdge(q, p2))
			push(r2delaunay.NewEdge(p2, p0))
		}
		total += swaps
		if swaps == 0 {
			return total, nil
		}
	}
}
