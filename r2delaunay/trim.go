// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

// Trim removes every triangle that touches a frame vertex, compacts the
// triangle and adjacency tables in a single pass and drops the frame
// vertices. It is a no-op once the frame is gone.
func (m *Mesh) Trim() {
	if !m.hasFrame {
		return
	}

	remap := make([]int, len(m.Triangles))
	n := 0
	for tIdx, t := range m.Triangles {
		if m.IsFrame(t[0]) || m.IsFrame(t[1]) || m.IsFrame(t[2]) {
			remap[tIdx] = None
			continue
		}
		remap[tIdx] = n
		m.Triangles[n] = t
		m.Neighbors[n] = m.Neighbors[tIdx]
		n++
	}
	m.Triangles = m.Triangles[:n]
	m.Neighbors = m.Neighbors[:n]

	for tIdx := range m.Neighbors {
		for i, nb := range m.Neighbors[tIdx] {
			if nb != None {
				m.Neighbors[tIdx][i] = remap[nb]
			}
		}
	}

	m.Vertices = m.Vertices[:m.numReal]
	m.vertexTri = m.vertexTri[:m.numReal]
	for i := range m.vertexTri {
		m.vertexTri[i] = None
	}
	for tIdx := range m.Triangles {
		m.touch(tIdx)
	}
	m.hasFrame = false
	m.lastTri = 0
}
