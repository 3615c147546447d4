// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"cmp"
	"math"
	"slices"

	"github.com/golang/geo/r2"
)

// BinOrder returns the indices of points sorted by a boustrophedon walk over
// a grid of roughly sqrt(N) x sqrt(N) cells laid over the bounding square.
// Consecutive indices are spatially close, which keeps location walks short.
func BinOrder(points []r2.Point) []int {
	n := len(points)
	order := make([]int, n)
	for i := range n {
		order[i] = i
	}
	if n == 0 {
		return order
	}

	bins := BinIDs(points)
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(bins[a], bins[b])
	})
	return order
}

// BinIDs returns the boustrophedon bin id of every point.
func BinIDs(points []r2.Point) []int {
	n := len(points)
	bins := make([]int, n)
	if n == 0 {
		return bins
	}

	rect := r2.RectFromPoints(points...)
	lo := rect.Lo()
	size := rect.Size()
	d := max(size.X, size.Y)
	if d == 0 {
		d = 1
	}
	g := max(1, int(math.Round(math.Sqrt(float64(n)))))

	cell := func(x float64) int {
		c := int(x / d * float64(g))
		return min(max(c, 0), g-1)
	}
	for i, p := range points {
		col := cell(p.X - lo.X)
		row := cell(p.Y - lo.Y)
		if row%2 == 0 {
			bins[i] = row*g + col
		} else {
			bins[i] = (row+1)*g - col - 1
		}
	}
	return bins
}
