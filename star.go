// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2cdt

import (
	"fmt"

	"github.com/2dChan/r2cdt/r2delaunay"
	"github.com/golang/geo/r2"
)

// Star represents the triangles and edges around one vertex. It is a view
// structure for accessing a vertex in a Triangulation.
type Star struct {
	idx int
	t   *Triangulation
}

// Star returns the view on vertex i.
func (t *Triangulation) Star(i int) (Star, error) {
	if i < 0 || i >= len(t.Vertices) {
		return Star{}, fmt.Errorf("Star: index %d out of range [0 %d)", i, len(t.Vertices))
	}
	return Star{idx: i, t: t}, nil
}

// Index returns the index of the vertex in the Triangulation's Vertices.
func (s Star) Index() int {
	return s.idx
}

// Point returns the vertex position.
func (s Star) Point() r2.Point {
	return s.t.Vertices[s.idx]
}

// NumTriangles returns the number of triangles incident on the vertex.
func (s Star) NumTriangles() int {
	return s.t.IncidentTriangleOffsets[s.idx+1] - s.t.IncidentTriangleOffsets[s.idx]
}

// TriangleIndices returns the incident triangles sorted counter-clockwise.
// For a hull vertex the fan starts at the hull edge that leaves the vertex
// counter-clockwise.
func (s Star) TriangleIndices() []int {
	return s.t.IncidentTriangles(s.idx)
}

// Triangle returns the incident triangle at the specified index.
// It returns an error if the index is out of range.
func (s Star) Triangle(i int) (r2delaunay.Triangle, error) {
	it := s.TriangleIndices()
	if i < 0 || i >= len(it) {
		return r2delaunay.Triangle{}, fmt.Errorf("Triangle: index %d out of range [0 %d)", i, len(it))
	}
	return s.t.Triangles[it[i]], nil
}

// NumNeighbors returns the number of vertices joined to this one by an edge.
// It exceeds NumTriangles by one on the hull.
func (s Star) NumNeighbors() int {
	return s.t.VertexNeighborOffsets[s.idx+1] - s.t.VertexNeighborOffsets[s.idx]
}

// NeighborIndices returns the adjacent vertices sorted counter-clockwise.
func (s Star) NeighborIndices() []int {
	return s.t.VertexNeighborIndices[s.t.VertexNeighborOffsets[s.idx]:s.t.VertexNeighborOffsets[s.idx+1]]
}

// Neighbor returns the star of the adjacent vertex at the specified index.
// It returns an error if the index is out of range.
func (s Star) Neighbor(i int) (Star, error) {
	start := s.t.VertexNeighborOffsets[s.idx]
	end := s.t.VertexNeighborOffsets[s.idx+1]
	if i < 0 || i >= end-start {
		return Star{}, fmt.Errorf("Neighbor: index %d out of range [0 %d)", i, end-start)
	}
	return s.t.Star(s.t.VertexNeighborIndices[start+i])
}

// IsHull reports whether the vertex lies on the convex hull.
func (s Star) IsHull() bool {
	return s.NumNeighbors() > s.NumTriangles()
}

// IsConstrained reports whether the edge to the adjacent vertex at the
// specified index is a constraint.
func (s Star) IsConstrained(i int) bool {
	nb := s.NeighborIndices()
	if i < 0 || i >= len(nb) {
		return false
	}
	return s.t.IsConstrained(s.idx, nb[i])
}
