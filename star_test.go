package r2cdt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Star

func TestTriangulation_Star(t *testing.T) {
	tr, _ := mustNewConstrained(t, 10, 2)
	if _, err := tr.Star(-1); err == nil {
		t.Errorf("tr.Star(-1) error = nil, want non-nil")
	}
	if _, err := tr.Star(len(tr.Vertices)); err == nil {
		t.Errorf("tr.Star(%d) error = nil, want non-nil", len(tr.Vertices))
	}
}

func TestStar_Index(t *testing.T) {
	tr, _ := mustNewConstrained(t, 100, 15)
	for i := range tr.Vertices {
		s := mustStar(t, tr, i)
		if got := s.Index(); got != i {
			t.Errorf("s.Index() = %v, want %v", got, i)
		}
	}
}

func TestStar_Point(t *testing.T) {
	tr, _ := mustNewConstrained(t, 100, 15)
	for i, want := range tr.Vertices {
		s := mustStar(t, tr, i)
		if got := s.Point(); got != want {
			t.Errorf("s.Point() = %v, want %v", got, want)
		}
	}
}

func TestStar_TriangleIndices(t *testing.T) {
	tr, _ := mustNewConstrained(t, 100, 15)
	for i := range tr.Vertices {
		s := mustStar(t, tr, i)
		want := tr.IncidentTriangleIndices[tr.IncidentTriangleOffsets[i]:tr.IncidentTriangleOffsets[i+1]]
		got := s.TriangleIndices()
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("s.TriangleIndices() mismatch (-want +got, vertex %d):\n%s", i, diff)
		}
		if s.NumTriangles() != len(got) {
			t.Errorf("s.NumTriangles() = %v, want %v", s.NumTriangles(), len(got))
		}

		// Consecutive triangles share the edge leaving the vertex.
		for j := 0; j+1 < len(got); j++ {
			cur, next := tr.Triangles[got[j]], tr.Triangles[got[j+1]]
			if cur.PrevVertex(i) != next.NextVertex(i) {
				t.Errorf("vertex %d: triangles %d and %d are not consecutive counter-clockwise", i, got[j], got[j+1])
			}
		}
	}
}

func TestStar_Triangle(t *testing.T) {
	tr, _ := mustNewConstrained(t, 100, 15)
	for i := range tr.Vertices {
		s := mustStar(t, tr, i)
		for j, tIdx := range s.TriangleIndices() {
			got, err := s.Triangle(j)
			if err != nil {
				t.Fatalf("s.Triangle(%d) error = %v, want nil", j, err)
			}
			if got != tr.Triangles[tIdx] {
				t.Errorf("s.Triangle(%d) = %v, want %v", j, got, tr.Triangles[tIdx])
			}
		}

		if _, err := s.Triangle(-1); err == nil {
			t.Errorf("s.Triangle(-1) error = nil, want non-nil")
		}
		if _, err := s.Triangle(s.NumTriangles()); err == nil {
			t.Errorf("s.Triangle(%d) error = nil, want non-nil", s.NumTriangles())
		}
	}
}

func TestStar_NeighborIndices(t *testing.T) {
	tr, _ := mustNewConstrained(t, 100, 15)
	for i := range tr.Vertices {
		s := mustStar(t, tr, i)
		nb := s.NeighborIndices()
		if s.NumNeighbors() != len(nb) {
			t.Errorf("s.NumNeighbors() = %v, want %v", s.NumNeighbors(), len(nb))
		}

		seen := make(map[int]bool)
		for _, n := range nb {
			if seen[n] {
				t.Errorf("vertex %d: neighbor %d listed twice", i, n)
			}
			seen[n] = true
			if !tr.HasEdge(i, n) {
				t.Errorf("tr.HasEdge(%d, %d) = false, want true", i, n)
			}
		}
	}
}

func TestStar_Neighbor(t *testing.T) {
	tr, _ := mustNewConstrained(t, 100, 15)
	for i := range tr.Vertices {
		s := mustStar(t, tr, i)
		for j, nIdx := range s.NeighborIndices() {
			got, err := s.Neighbor(j)
			if err != nil {
				t.Fatal(err)
			}
			if got.Index() != nIdx {
				t.Errorf("s.Neighbor(%d).Index() = %v, want %v", j, got.Index(), nIdx)
			}
		}
		if _, err := s.Neighbor(-1); err == nil {
			t.Errorf("s.Neighbor(-1) error = nil, want non-nil")
		}
		if _, err := s.Neighbor(s.NumNeighbors()); err == nil {
			t.Errorf("s.Neighbor(%d) error = nil, want non-nil", s.NumNeighbors())
		}
	}
}

func TestStar_IsHull(t *testing.T) {
	tr, _ := mustNewConstrained(t, 100, 15)
	hull := 0
	for i := range tr.Vertices {
		s := mustStar(t, tr, i)
		if !s.IsHull() {
			if s.NumNeighbors() != s.NumTriangles() {
				t.Errorf("interior vertex %d: s.NumNeighbors() = %v, want %v", i, s.NumNeighbors(), s.NumTriangles())
			}
			continue
		}
		hull++
		if s.NumNeighbors() != s.NumTriangles()+1 {
			t.Errorf("hull vertex %d: s.NumNeighbors() = %v, want %v", i, s.NumNeighbors(), s.NumTriangles()+1)
		}
	}
	if want := tr.NumHullVertices(); hull != want {
		t.Errorf("hull vertices = %v, want %v", hull, want)
	}
}

func TestStar_IsConstrained(t *testing.T) {
	tr, constraints := mustNewConstrained(t, 100, 15)
	want := make(map[[2]int]bool)
	for _, e := range constraints {
		want[e] = true
	}

	got := 0
	for i := range tr.Vertices {
		s := mustStar(t, tr, i)
		for j, n := range s.NeighborIndices() {
			if s.IsConstrained(j) != want[[2]int{min(i, n), max(i, n)}] {
				t.Errorf("vertex %d: s.IsConstrained(%d) = %v, want %v", i, j, s.IsConstrained(j), !s.IsConstrained(j))
			}
			if s.IsConstrained(j) {
				got++
			}
		}
		if s.IsConstrained(-1) || s.IsConstrained(s.NumNeighbors()) {
			t.Errorf("vertex %d: s.IsConstrained out of range = true, want false", i)
		}
	}
	// Each constraint is seen from both endpoints.
	if got != 2*len(constraints) {
		t.Errorf("constrained star edges = %v, want %v", got, 2*len(constraints))
	}
}

func mustStar(t *testing.T, tr *Triangulation, i int) Star {
	t.Helper()
	s, err := tr.Star(i)
	if err != nil {
		t.Fatalf("tr.Star(%d) error = %v, want nil", i, err)
	}
	return s
}
