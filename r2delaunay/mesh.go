// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// None marks a missing neighbor across a boundary edge.
const None = -1

// frameScale is the distance, in units of the larger bounding box side, that
// separates the frame vertices from the input points.
const frameScale = 10

// Triangle holds three vertex indices in counter-clockwise order.
type Triangle [3]int

// IndexOf returns the position of vIdx in t, or -1.
func (t Triangle) IndexOf(vIdx int) int {
	switch vIdx {
	case t[0]:
		return 0
	case t[1]:
		return 1
	case t[2]:
		return 2
	}
	return -1
}

func (t Triangle) PrevVertex(vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[2]
	case t[1]:
		return t[0]
	case t[2]:
		return t[1]
	}
	panic("PrevVertex: vIdx not in triangle")
}

func (t Triangle) NextVertex(vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[1]
	case t[1]:
		return t[2]
	case t[2]:
		return t[0]
	}
	panic("NextVertex: vIdx not in triangle")
}

// Edge returns the edge opposite the i-th vertex, directed counter-clockwise.
func (t Triangle) Edge(i int) (int, int) {
	return t[(i+1)%3], t[(i+2)%3]
}

// Edge is an undirected pair of vertex indices, smaller index first.
type Edge [2]int

func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{a, b}
}

func (e Edge) String() string {
	return fmt.Sprintf("(%d, %d)", e[0], e[1])
}

// Mesh is an indexed triangle mesh with per-triangle adjacency.
//
// Neighbors[t][i] is the triangle across the edge opposite Triangles[t][i],
// or None. While the frame exists its three vertices occupy the last three
// slots of Vertices.
type Mesh struct {
	Vertices  []r2.Point
	Triangles []Triangle
	Neighbors [][3]int

	// OnFlip, if set, is called with the endpoints of every edge removed by
	// a diagonal swap.
	OnFlip func(a, b int)

	numReal  int
	hasFrame bool
	fixed    map[Edge]struct{}
	// vertexTri holds one triangle incident on each vertex.
	vertexTri []int
	lastTri   int
}

func newMesh(points []r2.Point) *Mesh {
	n := len(points)
	rect := r2.RectFromPoints(points...)
	size := rect.Size()
	d := max(size.X, size.Y)
	if d == 0 {
		d = 1
	}
	c := rect.Center()
	s := frameScale * d

	m := &Mesh{
		Vertices:  make([]r2.Point, n, n+3),
		Triangles: make([]Triangle, 0, 2*n+1),
		Neighbors: make([][3]int, 0, 2*n+1),
		numReal:   n,
		hasFrame:  true,
		fixed:     make(map[Edge]struct{}),
		vertexTri: make([]int, n+3),
	}
	copy(m.Vertices, points)
	m.Vertices = append(m.Vertices,
		r2.Point{X: c.X - 2*s, Y: c.Y - s},
		r2.Point{X: c.X + 2*s, Y: c.Y - s},
		r2.Point{X: c.X, Y: c.Y + 2*s},
	)
	m.Triangles = append(m.Triangles, Triangle{n, n + 1, n + 2})
	m.Neighbors = append(m.Neighbors, [3]int{None, None, None})
	for i := range m.vertexTri {
		m.vertexTri[i] = None
	}
	m.vertexTri[n], m.vertexTri[n+1], m.vertexTri[n+2] = 0, 0, 0
	return m
}

// NumRealVertices returns the number of input vertices, frame excluded.
func (m *Mesh) NumRealVertices() int {
	return m.numReal
}

// IsFrame reports whether vIdx is one of the frame vertices.
func (m *Mesh) IsFrame(vIdx int) bool {
	return m.hasFrame && vIdx >= m.numReal
}

// Fix marks the edge (a, b) as constrained. Fixed edges are never flipped.
func (m *Mesh) Fix(a, b int) {
	m.fixed[NewEdge(a, b)] = struct{}{}
}

func (m *Mesh) IsFixed(a, b int) bool {
	_, ok := m.fixed[NewEdge(a, b)]
	return ok
}

// FixedEdges returns the constrained edges in no particular order.
func (m *Mesh) FixedEdges() []Edge {
	edges := make([]Edge, 0, len(m.fixed))
	for e := range m.fixed {
		edges = append(edges, e)
	}
	return edges
}

// VertexTriangle returns a triangle incident on vIdx, or None.
func (m *Mesh) VertexTriangle(vIdx int) int {
	if vIdx < 0 || vIdx >= len(m.vertexTri) {
		panic("VertexTriangle: vIdx out of range")
	}
	return m.vertexTri[vIdx]
}

// NeighborSlot returns the position of triangle u in the adjacency of t.
func (m *Mesh) NeighborSlot(t, u int) int {
	nb := m.Neighbors[t]
	switch u {
	case nb[0]:
		return 0
	case nb[1]:
		return 1
	case nb[2]:
		return 2
	}
	return -1
}

// Ring returns the triangles incident on vIdx in counter-clockwise order.
// For a boundary vertex the ring starts at the triangle whose clockwise
// neighbor around vIdx is missing.
func (m *Mesh) Ring(vIdx int) []int {
	start := m.VertexTriangle(vIdx)
	if start == None {
		return nil
	}
	limit := len(m.Triangles)

	// Rewind clockwise to a boundary, or all the way around.
	first := start
	for range limit {
		k := m.Triangles[first].IndexOf(vIdx)
		prev := m.Neighbors[first][(k+2)%3]
		if prev == None || prev == start {
			break
		}
		first = prev
	}

	ring := []int{first}
	cur := first
	for range limit {
		k := m.Triangles[cur].IndexOf(vIdx)
		next := m.Neighbors[cur][(k+1)%3]
		if next == None || next == first {
			break
		}
		ring = append(ring, next)
		cur = next
	}
	return ring
}

// FindEdge returns a triangle t and a position i such that the edge opposite
// Triangles[t][i] joins a and b.
func (m *Mesh) FindEdge(a, b int) (t, i int, ok bool) {
	for _, tIdx := range m.Ring(a) {
		tri := m.Triangles[tIdx]
		k := tri.IndexOf(a)
		if tri[(k+1)%3] == b {
			return tIdx, (k + 2) % 3, true
		}
		if tri[(k+2)%3] == b {
			return tIdx, (k + 1) % 3, true
		}
	}
	return None, -1, false
}

// HasEdge reports whether a and b are joined by a triangle edge.
func (m *Mesh) HasEdge(a, b int) bool {
	_, _, ok := m.FindEdge(a, b)
	return ok
}

func (m *Mesh) addTriangle(tri Triangle, nb [3]int) int {
	m.Triangles = append(m.Triangles, tri)
	m.Neighbors = append(m.Neighbors, nb)
	return len(m.Triangles) - 1
}

// relink makes nIdx point at newT where it used to point at oldT.
func (m *Mesh) relink(nIdx, oldT, newT int) {
	if nIdx == None {
		return
	}
	slot := m.NeighborSlot(nIdx, oldT)
	if slot < 0 {
		panic("relink: asymmetric adjacency")
	}
	m.Neighbors[nIdx][slot] = newT
}

func (m *Mesh) touch(tIdx int) {
	for _, v := range m.Triangles[tIdx] {
		m.vertexTri[v] = tIdx
	}
}
