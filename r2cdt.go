// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package r2cdt implements planar constrained Delaunay triangulations.

package r2cdt

import (
	"github.com/2dChan/r2cdt/r2delaunay"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	defaultEps = 1e-12
)

// Triangulation is a constrained Delaunay triangulation of a planar point set.
type Triangulation struct {
	Vertices []r2.Point
	// NOTE: Triangles are counter-clockwise.
	Triangles []r2delaunay.Triangle
	// Neighbors[t][i] is the triangle across the edge opposite
	// Triangles[t][i], or r2delaunay.None on the hull.
	Neighbors   [][3]int
	Constraints []r2delaunay.Edge

	// NOTE: Sort in CCW per vertex.
	IncidentTriangleIndices []int
	IncidentTriangleOffsets []int
	// NOTE: Sort in CCW per vertex.
	VertexNeighborIndices []int
	VertexNeighborOffsets []int

	mesh *r2delaunay.Mesh
}

type TriangulationOptions struct {
	Eps         float64
	Constraints [][2]int
	Logger      *zap.Logger

	onFlip func(a, b int)
}

type TriangulationOption func(*TriangulationOptions) error

// WithEps sets the relative tolerance below which two points are considered
// coincident.
func WithEps(eps float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if eps <= 0 {
			return errors.Errorf("WithEps: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// WithConstraints adds edges, given as pairs of point indices, that must
// appear in the triangulation.
func WithConstraints(edges ...[2]int) TriangulationOption {
	return func(o *TriangulationOptions) error {
		o.Constraints = append(o.Constraints, edges...)
		return nil
	}
}

// WithLogger sets the logger that receives debug output.
func WithLogger(l *zap.Logger) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if l == nil {
			return errors.New("WithLogger: logger must not be nil")
		}
		o.Logger = l
		return nil
	}
}

// NewTriangulation computes the constrained Delaunay triangulation of points.
// Either a complete triangulation is returned or an error and no output.
func NewTriangulation(points []r2.Point, setters ...TriangulationOption) (*Triangulation, error) {
	opts := TriangulationOptions{
		Eps:    defaultEps,
		Logger: zap.NewNop(),
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}
	log := opts.Logger

	if err := r2delaunay.CheckPoints(points, opts.Eps); err != nil {
		return nil, err
	}
	constraints, err := checkConstraints(points, opts.Constraints)
	if err != nil {
		return nil, err
	}

	m, err := r2delaunay.Triangulate(points, opts.Eps)
	if err != nil {
		return nil, err
	}
	log.Debug("r2cdt: delaunay triangulation built",
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("triangles", len(m.Triangles)))

	m.OnFlip = opts.onFlip
	var touched []r2delaunay.Edge
	for _, e := range constraints {
		edges, err := recoverEdge(m, e, log)
		if err != nil {
			return nil, err
		}
		touched = append(touched, edges...)
	}

	swaps, err := legalize(m, touched)
	if err != nil {
		return nil, err
	}
	log.Debug("r2cdt: constraints embedded",
		zap.Int("constraints", len(constraints)),
		zap.Int("legalizing swaps", swaps))

	return newTriangulation(m, constraints), nil
}

func newTriangulation(m *r2delaunay.Mesh, constraints []r2delaunay.Edge) *Triangulation {
	inc := m.BuildIncidence()
	t := &Triangulation{
		Vertices:                m.Vertices,
		Triangles:               m.Triangles,
		Neighbors:               m.Neighbors,
		Constraints:             constraints,
		IncidentTriangleIndices: inc.Indices,
		IncidentTriangleOffsets: inc.Offsets,
		VertexNeighborOffsets:   make([]int, len(m.Vertices)+1),
		mesh:                    m,
	}

	for v := range m.Vertices {
		it := t.IncidentTriangles(v)
		cnt := len(it)
		if t.isHullFan(v, it) {
			cnt++
		}
		t.VertexNeighborOffsets[v+1] = t.VertexNeighborOffsets[v] + cnt
	}

	t.VertexNeighborIndices = make([]int, t.VertexNeighborOffsets[len(m.Vertices)])
	for v := range m.Vertices {
		offset := t.VertexNeighborOffsets[v]
		it := t.IncidentTriangles(v)
		for i, tIdx := range it {
			t.VertexNeighborIndices[offset+i] = t.Triangles[tIdx].NextVertex(v)
		}
		if t.isHullFan(v, it) {
			last := it[len(it)-1]
			t.VertexNeighborIndices[offset+len(it)] = t.Triangles[last].PrevVertex(v)
		}
	}
	return t
}

// isHullFan reports whether the fan it around v is open, i.e. v is on the hull.
func (t *Triangulation) isHullFan(v int, it []int) bool {
	if len(it) == 0 {
		return false
	}
	first := it[0]
	k := t.Triangles[first].IndexOf(v)
	return t.Neighbors[first][(k+2)%3] == r2delaunay.None
}

func (t *Triangulation) IncidentTriangles(vIdx int) []int {
	if vIdx < 0 || vIdx+1 >= len(t.IncidentTriangleOffsets) {
		panic("IncidentTriangles: vIdx out of range")
	}
	start := t.IncidentTriangleOffsets[vIdx]
	end := t.IncidentTriangleOffsets[vIdx+1]
	return t.IncidentTriangleIndices[start:end]
}

func (t *Triangulation) TriangleVertices(tIdx int) (r2.Point, r2.Point, r2.Point) {
	if tIdx < 0 || tIdx >= len(t.Triangles) {
		panic("TriangleVertices: tIdx out of bounds")
	}
	tri := t.Triangles[tIdx]
	return t.Vertices[tri[0]], t.Vertices[tri[1]], t.Vertices[tri[2]]
}

// HasEdge reports whether a and b are joined by a triangle edge.
func (t *Triangulation) HasEdge(a, b int) bool {
	if a < 0 || b < 0 || a >= len(t.Vertices) || b >= len(t.Vertices) {
		return false
	}
	return t.mesh.HasEdge(a, b)
}

// IsConstrained reports whether (a, b) is one of the requested constraints.
func (t *Triangulation) IsConstrained(a, b int) bool {
	return t.mesh.IsFixed(a, b)
}

// NumHullVertices returns the number of vertices on the convex hull.
func (t *Triangulation) NumHullVertices() int {
	cnt := 0
	for v := range t.Vertices {
		if t.isHullFan(v, t.IncidentTriangles(v)) {
			cnt++
		}
	}
	return cnt
}
