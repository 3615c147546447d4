// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package r2delaunay builds planar Delaunay triangulations by incremental
// insertion into a frame triangle with Lawson flips.

package r2delaunay

import (
	"cmp"
	"slices"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Triangulate returns the Delaunay triangulation of points. Two points closer
// than eps times the larger side of the bounding box are rejected.
//
// The returned mesh keeps the vertex order of points and has its frame
// trimmed.
func Triangulate(points []r2.Point, eps float64) (*Mesh, error) {
	if err := CheckPoints(points, eps); err != nil {
		return nil, err
	}

	m := newMesh(points)
	for _, vIdx := range BinOrder(points) {
		if err := m.Insert(vIdx); err != nil {
			return nil, err
		}
	}
	m.Trim()

	if len(m.Triangles) == 0 {
		return nil, errors.WithStack(&DegenerateInputError{
			Reason: "all points are collinear",
			I:      None,
			J:      None,
		})
	}
	return m, nil
}

// CheckPoints rejects fewer than three points and pairs of points closer than
// the relative tolerance eps.
func CheckPoints(points []r2.Point, eps float64) error {
	n := len(points)
	if n < 3 {
		return errors.WithStack(&DegenerateInputError{
			Reason: "insufficient vertices for triangulation (minimum 3 required)",
			I:      None,
			J:      None,
		})
	}

	size := r2.RectFromPoints(points...).Size()
	d := max(size.X, size.Y)
	if d == 0 {
		d = 1
	}
	tol := eps * d

	order := make([]int, n)
	for i := range n {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return cmp.Compare(points[a].X, points[b].X)
	})
	for i, a := range order {
		for _, b := range order[i+1:] {
			if points[b].X-points[a].X >= tol {
				break
			}
			if points[b].Sub(points[a]).Norm() < tol {
				return errors.WithStack(&DegenerateInputError{
					Reason: "points closer than tolerance",
					I:      min(a, b),
					J:      max(a, b),
				})
			}
		}
	}
	return nil
}
