package model

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// PointSet is the lighted-set representation shared by level and lighting.
type PointSet = mapset.Set[Point]

func NewPointSet(points ...Point) PointSet {
	set := mapset.New[Point]()
	for _, p := range points {
		set.Put(p)
	}
	return set
}

// SortedPoints returns the members of set in row-major order.
func SortedPoints(set PointSet) []Point {
	out := make([]Point, 0, set.Size())
	set.Each(func(p Point) {
		out = append(out, p)
	})
	sort.Slice(out, func(i, j int) bool {
		return out[i].Less(out[j])
	})
	return out
}
