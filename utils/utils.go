// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating planar point sets and constraint edges.

package utils

import (
	"math/rand"

	"github.com/golang/geo/r2"
)

// GenerateRandomPoints generates random points in the unit square.
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r2.Point, cnt)

	for i := range cnt {
		points[i] = r2.Point{X: random.Float64(), Y: random.Float64()}
	}

	return points
}

// GenerateGridPoints generates an nx by ny lattice with unit spacing,
// row by row starting at the origin.
func GenerateGridPoints(nx, ny int) []r2.Point {
	points := make([]r2.Point, 0, nx*ny)
	for y := range ny {
		for x := range nx {
			points = append(points, r2.Point{X: float64(x), Y: float64(y)})
		}
	}
	return points
}

// GenerateRandomConstraints picks up to cnt vertex pairs that neither cross
// nor overlap each other and whose open segment contains no point. Candidate
// pairs join nearby points so that the result looks like a sparse planar
// graph. The seed parameter ensures reproducibility.
func GenerateRandomConstraints(points []r2.Point, cnt int, seed int64) [][2]int {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	n := len(points)
	edges := make([][2]int, 0, cnt)
	if n < 2 {
		return edges
	}

	seen := make(map[[2]int]bool)
	for attempts := 0; len(edges) < cnt && attempts < 50*cnt; attempts++ {
		a := random.Intn(n)
		b := nearestOf(points, a, random.Perm(n)[:min(n, 8)])
		if b < 0 {
			continue
		}
		key := [2]int{min(a, b), max(a, b)}
		if seen[key] || crossesAny(points, edges, a, b) || passesThroughPoint(points, a, b) {
			continue
		}
		seen[key] = true
		edges = append(edges, key)
	}
	return edges
}

func nearestOf(points []r2.Point, a int, candidates []int) int {
	best, bestDist := -1, 0.0
	for _, c := range candidates {
		if c == a {
			continue
		}
		d := points[c].Sub(points[a]).Norm()
		if best < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// crossesAny reports whether segment ab meets an edge anywhere but at a
// shared endpoint, or runs along an edge it shares an endpoint with.
func crossesAny(points []r2.Point, edges [][2]int, a, b int) bool {
	p1, p2 := points[a], points[b]
	for _, e := range edges {
		q1, q2 := points[e[0]], points[e[1]]
		o1, o2 := orient(p1, p2, q1), orient(p1, p2, q2)
		shared := e[0] == a || e[0] == b || e[1] == a || e[1] == b
		if shared {
			if o1 == 0 && o2 == 0 {
				return true
			}
			continue
		}
		o3, o4 := orient(q1, q2, p1), orient(q1, q2, p2)
		if o1*o2 <= 0 && o3*o4 <= 0 {
			return true
		}
	}
	return false
}

// passesThroughPoint reports whether a point other than a and b lies on the
// closed segment ab.
func passesThroughPoint(points []r2.Point, a, b int) bool {
	p1, p2 := points[a], points[b]
	box := r2.RectFromPoints(p1, p2)
	for k, p := range points {
		if k == a || k == b || !box.ContainsPoint(p) {
			continue
		}
		if orient(p1, p2, p) == 0 {
			return true
		}
	}
	return false
}

// orient mirrors r2delaunay.Orient, which this package cannot import: the
// r2delaunay tests depend on utils.
func orient(a, b, c r2.Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}
