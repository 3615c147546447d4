// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2cdt

import (
	"fmt"

	"github.com/2dChan/r2cdt/r2delaunay"
)

type (
	// DegenerateInputError reports fewer than three points, points closer
	// than the tolerance or an all-collinear point set.
	DegenerateInputError = r2delaunay.DegenerateInputError
	// LocateFailureError reports a point location walk that ran out of hops.
	LocateFailureError = r2delaunay.LocateFailureError
)

// InvalidEdgeError reports a constraint rejected before triangulation.
// Index is the position of Edge in the constraint list; Other is the
// position of the conflicting constraint, or -1.
type InvalidEdgeError struct {
	Edge   [2]int
	Index  int
	Other  int
	Reason string
}

func (e *InvalidEdgeError) Error() string {
	if e.Other < 0 {
		return fmt.Sprintf("r2cdt: invalid constraint %d %v: %s", e.Index, e.Edge, e.Reason)
	}
	return fmt.Sprintf("r2cdt: invalid constraint %d %v: %s constraint %d", e.Index, e.Edge, e.Reason, e.Other)
}

// ConstraintUnresolvedError reports a constraint that could not be made an
// edge of the triangulation.
type ConstraintUnresolvedError struct {
	Edge   r2delaunay.Edge
	Reason string
}

func (e *ConstraintUnresolvedError) Error() string {
	return fmt.Sprintf("r2cdt: constraint %v unresolved: %s", e.Edge, e.Reason)
}

// DelaunayViolationError reports a vertex visible from inside a triangle
// and strictly inside its circumcircle.
type DelaunayViolationError struct {
	Triangle int
	Vertex   int
}

func (e *DelaunayViolationError) Error() string {
	return fmt.Sprintf("r2cdt: vertex %d violates the circumcircle of triangle %d", e.Vertex, e.Triangle)
}

// TopologyError reports a broken mesh invariant.
type TopologyError struct {
	Triangle int
	Reason   string
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("r2cdt: triangle %d: %s", e.Triangle, e.Reason)
}
