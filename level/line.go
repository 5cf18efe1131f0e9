package level

import "github.com/zucenko/boulders/model"

// Line returns the integer line from `from` towards `to`, `from` included and
// `to` excluded.
func Line(from, to model.Point) []model.Point {
	dx := abs(to.X - from.X)
	dy := -abs(to.Y - from.Y)
	sx, sy := sign(to.X-from.X), sign(to.Y-from.Y)
	e := dx + dy

	out := make([]model.Point, 0, max(dx, -dy))
	cur := from
	for cur != to {
		out = append(out, cur)
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			cur.X += sx
		}
		if e2 <= dx {
			e += dx
			cur.Y += sy
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
