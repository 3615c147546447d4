// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

// CanFlip reports whether the edge opposite Triangles[t][i] has a neighbor
// and the quadrilateral formed by the two triangles is strictly convex.
func (m *Mesh) CanFlip(t, i int) bool {
	u := m.Neighbors[t][i]
	if u == None {
		return false
	}
	p0, p1, p2 := m.rotated(t, i)
	q := m.apex(t, i)
	v := m.Vertices
	return Orient(v[p0], v[p1], v[q]) > 0 && Orient(v[q], v[p2], v[p0]) > 0
}

// Flip swaps the diagonal shared by triangle t and its neighbor across the
// edge opposite Triangles[t][i]. After the swap t holds (p0, p1, q) and the
// neighbor holds (q, p2, p0), where (p0, p1, p2) is t rotated so that p0 is
// its i-th vertex and q is the neighbor's apex. It returns the neighbor index.
//
// Flip panics if the edge is fixed or on the boundary.
func (m *Mesh) Flip(t, i int) int {
	u := m.Neighbors[t][i]
	if u == None {
		panic("Flip: boundary edge")
	}
	p0, p1, p2 := m.rotated(t, i)
	if m.IsFixed(p1, p2) {
		panic("Flip: constrained edge")
	}
	if m.OnFlip != nil {
		m.OnFlip(p1, p2)
	}

	j := m.NeighborSlot(u, t)
	q := m.Triangles[u][j]
	a := m.Neighbors[t][(i+1)%3] // across (p2, p0)
	b := m.Neighbors[t][(i+2)%3] // across (p0, p1)
	c := m.Neighbors[u][(j+1)%3] // across (p1, q)
	d := m.Neighbors[u][(j+2)%3] // across (q, p2)

	m.Triangles[t] = Triangle{p0, p1, q}
	m.Neighbors[t] = [3]int{c, u, b}
	m.Triangles[u] = Triangle{q, p2, p0}
	m.Neighbors[u] = [3]int{a, t, d}

	m.relink(c, u, t)
	m.relink(a, t, u)
	m.touch(t)
	m.touch(u)
	return u
}

// rotated returns the vertices of t starting at position i.
func (m *Mesh) rotated(t, i int) (int, int, int) {
	tri := m.Triangles[t]
	return tri[i], tri[(i+1)%3], tri[(i+2)%3]
}

// apex returns the vertex of the neighbor across the edge opposite
// Triangles[t][i] that is not on that edge.
func (m *Mesh) apex(t, i int) int {
	u := m.Neighbors[t][i]
	j := m.NeighborSlot(u, t)
	return m.Triangles[u][j]
}

// EdgeIllegal reports whether the edge opposite Triangles[t][i] violates the
// Delaunay condition and should be swapped.
func (m *Mesh) EdgeIllegal(t, i int) bool {
	if m.Neighbors[t][i] == None {
		return false
	}
	p0, p1, p2 := m.rotated(t, i)
	q := m.apex(t, i)
	return m.illegal(p1, p2, p0, q)
}

// illegal tests the edge (e0, e1) shared by the counter-clockwise triangles
// (e0, e1, v) and (e1, e0, q). Frame vertices behave as points at infinity:
// the circumcircle through one of them degenerates to the half-plane bounded
// by the line through the two finite points.
func (m *Mesh) illegal(e0, e1, v, q int) bool {
	f0, f1 := m.IsFrame(e0), m.IsFrame(e1)
	fv, fq := m.IsFrame(v), m.IsFrame(q)
	p := m.Vertices

	switch {
	case f0 && f1:
		return false
	case !f0 && !f1:
		if fv || fq {
			return false
		}
		return InCircle(p[e0], p[e1], p[v], p[q]) > 0
	case fv:
		// Both triangles touch the frame twice; the mirrored test from
		// the other side decides.
		return false
	}

	// Exactly one endpoint of the edge is on the frame.
	r, f := e0, e1
	if f0 {
		r, f = e1, e0
	}
	side := Orient(p[r], p[v], p[f])
	where := Orient(p[r], p[v], p[q])
	return (side > 0 && where > 0) || (side < 0 && where < 0)
}
