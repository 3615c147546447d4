// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
)

// Triangle

func TestTriangle_PrevVertex(t *testing.T) {
	assertPanic := func(tri Triangle, in int) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("%v.PrevVertex(%d) did not panic, want panic", tri, in)
			}
		}()
		tri.PrevVertex(in)
	}

	tri := Triangle{1, 2, 3}
	for i, in := range tri {
		got := tri.PrevVertex(in)
		want := tri[(i+2)%len(tri)]
		if got != want {
			t.Errorf("%v.PrevVertex(%d) = %v, want %v", tri, in, got, want)
		}
	}

	assertPanic(tri, -1)
	assertPanic(tri, 4)
}

func TestTriangle_NextVertex(t *testing.T) {
	assertPanic := func(tri Triangle, in int) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("%v.NextVertex(%d) did not panic, want panic", tri, in)
			}
		}()
		tri.NextVertex(in)
	}

	tri := Triangle{1, 2, 3}
	for i, in := range tri {
		got := tri.NextVertex(in)
		want := tri[(i+1)%len(tri)]
		if got != want {
			t.Errorf("%v.NextVertex(%d) = %v, want %v", tri, in, got, want)
		}
	}

	assertPanic(tri, -1)
	assertPanic(tri, 4)
}

func TestTriangle_IndexOfAndEdge(t *testing.T) {
	tri := Triangle{7, 3, 5}
	for i, v := range tri {
		if got := tri.IndexOf(v); got != i {
			t.Errorf("%v.IndexOf(%d) = %v, want %v", tri, v, got, i)
		}
	}
	if got := tri.IndexOf(0); got != -1 {
		t.Errorf("%v.IndexOf(0) = %v, want -1", tri, got)
	}

	a, b := tri.Edge(0)
	if diff := cmp.Diff([2]int{3, 5}, [2]int{a, b}); diff != "" {
		t.Errorf("%v.Edge(0) mismatch (-want +got):\n%s", tri, diff)
	}
}

func TestNewEdge(t *testing.T) {
	if got, want := NewEdge(5, 2), (Edge{2, 5}); got != want {
		t.Errorf("NewEdge(5, 2) = %v, want %v", got, want)
	}
	if got, want := NewEdge(2, 5), (Edge{2, 5}); got != want {
		t.Errorf("NewEdge(2, 5) = %v, want %v", got, want)
	}
}

// Mesh

func TestNewMesh_FrameContainsPoints(t *testing.T) {
	points := []r2.Point{{X: -3, Y: 1}, {X: 5, Y: 2}, {X: 0, Y: -4}, {X: 1, Y: 9}}
	m := newMesh(points)

	if got, want := len(m.Vertices), len(points)+3; got != want {
		t.Fatalf("len(m.Vertices) = %v, want %v", got, want)
	}
	if diff := cmp.Diff([][3]int{{None, None, None}}, m.Neighbors); diff != "" {
		t.Errorf("m.Neighbors mismatch (-want +got):\n%s", diff)
	}

	frame := m.Triangles[0]
	v := m.Vertices
	if Orient(v[frame[0]], v[frame[1]], v[frame[2]]) <= 0 {
		t.Errorf("frame %v is not counter-clockwise", frame)
	}
	for i, p := range points {
		for e := range 3 {
			a, b := frame.Edge(e)
			if Orient(v[a], v[b], p) <= 0 {
				t.Errorf("points[%d] = %v not strictly inside frame edge %d", i, p, e)
			}
		}
		if m.IsFrame(i) {
			t.Errorf("m.IsFrame(%d) = true, want false", i)
		}
	}
	for _, f := range frame {
		if !m.IsFrame(f) {
			t.Errorf("m.IsFrame(%d) = false, want true", f)
		}
	}
}

func TestMesh_Flip(t *testing.T) {
	m := squareMesh()
	var flipped []Edge
	m.OnFlip = func(a, b int) { flipped = append(flipped, NewEdge(a, b)) }

	if !m.CanFlip(0, 1) {
		t.Fatalf("m.CanFlip(0, 1) = false, want true")
	}
	u := m.Flip(0, 1)
	if u != 1 {
		t.Errorf("m.Flip(0, 1) = %v, want 1", u)
	}

	wantTris := []Triangle{{1, 2, 3}, {3, 0, 1}}
	if diff := cmp.Diff(wantTris, m.Triangles); diff != "" {
		t.Errorf("m.Triangles mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Edge{{0, 2}}, flipped); diff != "" {
		t.Errorf("OnFlip edges mismatch (-want +got):\n%s", diff)
	}
	checkMesh(t, m)
	if !m.HasEdge(1, 3) || m.HasEdge(0, 2) {
		t.Errorf("m.HasEdge after flip: (1,3) = %v, (0,2) = %v, want true, false",
			m.HasEdge(1, 3), m.HasEdge(0, 2))
	}
}

func TestMesh_FlipFixedPanics(t *testing.T) {
	m := squareMesh()
	m.Fix(2, 0)
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("m.Flip(0, 1) on a fixed edge did not panic, want panic")
		}
	}()
	m.Flip(0, 1)
}

func TestMesh_FlipBoundaryPanics(t *testing.T) {
	m := squareMesh()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("m.Flip(0, 0) on a boundary edge did not panic, want panic")
		}
	}()
	m.Flip(0, 0)
}

func TestMesh_EdgeIllegal(t *testing.T) {
	m := &Mesh{
		Vertices: []r2.Point{
			{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0.2}, {X: 1, Y: -0.2},
		},
		Triangles: []Triangle{{0, 1, 2}, {1, 0, 3}},
		Neighbors: [][3]int{{None, None, 1}, {None, None, 0}},
		numReal:   4,
		fixed:     make(map[Edge]struct{}),
		vertexTri: []int{0, 0, 0, 1},
	}

	if !m.EdgeIllegal(0, 2) {
		t.Fatalf("m.EdgeIllegal(0, 2) = false, want true")
	}
	if m.EdgeIllegal(0, 0) {
		t.Errorf("m.EdgeIllegal(0, 0) on boundary = true, want false")
	}

	m.Flip(0, 2)
	checkMesh(t, m)
	i := m.Triangles[0].IndexOf(0)
	if m.EdgeIllegal(0, i) {
		t.Errorf("m.EdgeIllegal after flip = true, want false")
	}
}

func TestMesh_Ring(t *testing.T) {
	m, err := Triangulate([]r2.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0.5, Y: 0.4},
	}, defaultTestEps)
	if err != nil {
		t.Fatalf("Triangulate(...) error = %v, want nil", err)
	}

	ring := m.Ring(4)
	if len(ring) != 4 {
		t.Fatalf("m.Ring(4) = %v, want 4 triangles", ring)
	}
	for i := range ring {
		cur := m.Triangles[ring[i]]
		nxt := m.Triangles[ring[(i+1)%len(ring)]]
		if cur.PrevVertex(4) != nxt.NextVertex(4) {
			t.Errorf("m.Ring(4) triangles %d and %d are not CCW neighbors", i, i+1)
		}
	}

	for v := range 4 {
		ring := m.Ring(v)
		if len(ring) == 0 {
			t.Errorf("m.Ring(%d) is empty", v)
			continue
		}
		first := m.Triangles[ring[0]]
		k := first.IndexOf(v)
		if m.Neighbors[ring[0]][(k+2)%3] != None {
			t.Errorf("m.Ring(%d) does not start at the boundary", v)
		}
	}
}

// Helpers

const defaultTestEps = 1e-12

// squareMesh returns the unit square split along the diagonal (0, 2).
func squareMesh() *Mesh {
	return &Mesh{
		Vertices: []r2.Point{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		},
		Triangles: []Triangle{{0, 1, 2}, {0, 2, 3}},
		Neighbors: [][3]int{{None, 1, None}, {None, None, 0}},
		numReal:   4,
		fixed:     make(map[Edge]struct{}),
		vertexTri: []int{0, 0, 0, 1},
	}
}

// checkMesh verifies winding, adjacency symmetry and edge uniqueness.
func checkMesh(t *testing.T, m *Mesh) {
	t.Helper()

	edges := make(map[Edge]int)
	for tIdx, tri := range m.Triangles {
		a, b, c := m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]]
		if Orient(a, b, c) <= 0 {
			t.Errorf("m.Triangles[%d] = %v is not counter-clockwise", tIdx, tri)
		}
		for i := range 3 {
			p, q := tri.Edge(i)
			edges[NewEdge(p, q)]++

			u := m.Neighbors[tIdx][i]
			if u == None {
				continue
			}
			j := m.NeighborSlot(u, tIdx)
			if j < 0 {
				t.Errorf("m.Neighbors[%d][%d] = %d, but %d does not list %d", tIdx, i, u, u, tIdx)
				continue
			}
			r, s := m.Triangles[u].Edge(j)
			if r != q || s != p {
				t.Errorf("triangles %d and %d disagree on shared edge: (%d,%d) vs (%d,%d)",
					tIdx, u, p, q, r, s)
			}
		}
		for _, v := range tri {
			hint := m.VertexTriangle(v)
			if hint == None || m.Triangles[hint].IndexOf(v) < 0 {
				t.Errorf("m.VertexTriangle(%d) = %d does not contain the vertex", v, hint)
			}
		}
	}
	for e, cnt := range edges {
		if cnt > 2 {
			t.Errorf("edge %v appears in %d triangles, want <= 2", e, cnt)
		}
	}
}

// hullSize counts the vertices on the boundary of the mesh.
func hullSize(m *Mesh) int {
	onHull := make(map[int]bool)
	for tIdx, tri := range m.Triangles {
		for i := range 3 {
			if m.Neighbors[tIdx][i] == None {
				a, b := tri.Edge(i)
				onHull[a] = true
				onHull[b] = true
			}
		}
	}
	return len(onHull)
}
