// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

// Incidence lists the triangles around every vertex in compressed form.
// The triangles of vertex v are Indices[Offsets[v]:Offsets[v+1]], sorted
// counter-clockwise around v.
type Incidence struct {
	Indices []int
	Offsets []int
}

// IncidentTriangles returns the triangles incident on vIdx.
func (inc *Incidence) IncidentTriangles(vIdx int) []int {
	if vIdx < 0 || vIdx+1 >= len(inc.Offsets) {
		panic("IncidentTriangles: vIdx out of range")
	}
	return inc.Indices[inc.Offsets[vIdx]:inc.Offsets[vIdx+1]]
}

// BuildIncidence counts, fills and sorts the vertex-to-triangle index.
func (m *Mesh) BuildIncidence() *Incidence {
	numVertices := len(m.Vertices)
	inc := &Incidence{
		Indices: make([]int, 3*len(m.Triangles)),
		Offsets: make([]int, numVertices+1),
	}

	for _, t := range m.Triangles {
		for _, v := range t {
			inc.Offsets[v+1]++
		}
	}
	for i := range numVertices {
		inc.Offsets[i+1] += inc.Offsets[i]
	}

	nxt := make([]int, numVertices)
	copy(nxt, inc.Offsets[:numVertices])
	for tIdx, t := range m.Triangles {
		for _, v := range t {
			inc.Indices[nxt[v]] = tIdx
			nxt[v]++
		}
	}

	for v := range numVertices {
		sortIncidentTriangleIndicesCCW(v, inc.IncidentTriangles(v), m.Triangles, m.Neighbors)
	}
	return inc
}

// sortIncidentTriangleIndicesCCW orders the triangles around vIdx by walking
// adjacency. A boundary vertex starts at the triangle that has no clockwise
// neighbor.
func sortIncidentTriangleIndicesCCW(vIdx int, incidentTris []int, tris []Triangle, nbs [][3]int) {
	n := len(incidentTris)
	if n < 2 {
		return
	}

	start := 0
	for i, tIdx := range incidentTris {
		k := tris[tIdx].IndexOf(vIdx)
		if nbs[tIdx][(k+2)%3] == None {
			start = i
			break
		}
	}
	incidentTris[0], incidentTris[start] = incidentTris[start], incidentTris[0]

	for i := 1; i < n; i++ {
		prev := incidentTris[i-1]
		k := tris[prev].IndexOf(vIdx)
		next := nbs[prev][(k+1)%3]
		for j := i; j < n; j++ {
			if incidentTris[j] == next {
				incidentTris[i], incidentTris[j] = incidentTris[j], incidentTris[i]
				break
			}
		}
	}
}
