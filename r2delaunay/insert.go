// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

// Insert adds vertex vIdx, which must already be present in Vertices and lie
// inside the frame, and restores the Delaunay property around it.
func (m *Mesh) Insert(vIdx int) error {
	t, edge, err := m.Locate(m.Vertices[vIdx], m.lastTri)
	if err != nil {
		return err
	}

	var stack []int
	if edge < 0 {
		stack = m.split3(t, vIdx)
	} else {
		stack = m.split4(t, edge, vIdx)
	}
	m.restore(vIdx, stack)
	m.lastTri = m.vertexTri[vIdx]
	return nil
}

// split3 replaces triangle t = (a, b, c) with (a, b, v), (b, c, v), (c, a, v)
// and returns the three triangles incident on v.
func (m *Mesh) split3(t, v int) []int {
	a, b, c := m.Triangles[t][0], m.Triangles[t][1], m.Triangles[t][2]
	nA, nB, nC := m.Neighbors[t][0], m.Neighbors[t][1], m.Neighbors[t][2]

	t1 := len(m.Triangles)
	t2 := t1 + 1
	m.Triangles[t] = Triangle{a, b, v}
	m.Neighbors[t] = [3]int{t1, t2, nC}
	m.addTriangle(Triangle{b, c, v}, [3]int{t2, t, nA})
	m.addTriangle(Triangle{c, a, v}, [3]int{t, t1, nB})

	m.relink(nA, t, t1)
	m.relink(nB, t, t2)
	m.touch(t)
	m.touch(t1)
	m.touch(t2)
	return []int{t, t1, t2}
}

// split4 inserts v on the edge opposite vertex i of triangle t, splitting t
// and its neighbor into two triangles each.
func (m *Mesh) split4(t, i, v int) []int {
	u := m.Neighbors[t][i]
	if u == None {
		// On the outer boundary of the frame; cannot happen for points
		// strictly inside it.
		panic("split4: boundary edge")
	}
	p0, p1, p2 := m.rotated(t, i)
	j := m.NeighborSlot(u, t)
	q := m.Triangles[u][j]

	a := m.Neighbors[t][(i+1)%3] // across (p2, p0)
	b := m.Neighbors[t][(i+2)%3] // across (p0, p1)
	c := m.Neighbors[u][(j+1)%3] // across (p1, q)
	d := m.Neighbors[u][(j+2)%3] // across (q, p2)
	// c keeps pointing at u, which still owns the edge (p1, q).

	t2 := len(m.Triangles)
	u2 := t2 + 1
	m.Triangles[t] = Triangle{p0, p1, v}
	m.Neighbors[t] = [3]int{u, t2, b}
	m.Triangles[u] = Triangle{p1, q, v}
	m.Neighbors[u] = [3]int{u2, t, c}
	m.addTriangle(Triangle{p2, p0, v}, [3]int{t, u2, a})
	m.addTriangle(Triangle{q, p2, v}, [3]int{t2, u, d})

	m.relink(a, t, t2)
	m.relink(d, u, u2)
	for _, x := range []int{t, u, t2, u2} {
		m.touch(x)
	}
	return []int{t, u, t2, u2}
}

// restore runs Lawson's flip algorithm over the triangles incident on v.
// Each stacked triangle is tested across the edge opposite v; a swap leaves
// v in both triangles of the pair, and both are tested again.
func (m *Mesh) restore(v int, stack []int) {
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		i := m.Triangles[t].IndexOf(v)
		if i < 0 {
			continue
		}
		if !m.EdgeIllegal(t, i) || !m.CanFlip(t, i) {
			continue
		}
		u := m.Flip(t, i)
		stack = append(stack, t, u)
	}
}
