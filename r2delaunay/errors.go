// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import "fmt"

// DegenerateInputError reports input that admits no triangulation: too few
// points, points closer than the tolerance, or all points collinear.
// I and J identify the offending points when known, None otherwise.
type DegenerateInputError struct {
	Reason string
	I, J   int
}

func (e *DegenerateInputError) Error() string {
	if e.I == None {
		return "r2delaunay: degenerate input: " + e.Reason
	}
	return fmt.Sprintf("r2delaunay: degenerate input: %s (points %d and %d)", e.Reason, e.I, e.J)
}

// LocateFailureError reports a point location walk that exceeded its hop
// bound. Edge is the last edge crossed.
type LocateFailureError struct {
	Edge Edge
}

func (e *LocateFailureError) Error() string {
	return fmt.Sprintf("r2delaunay: point location failed near edge %v", e.Edge)
}
