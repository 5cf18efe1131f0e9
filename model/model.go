package model

import "fmt"

type Direction int

const (
	DIR_UP Direction = iota
	DIR_DOWN
	DIR_LEFT
	DIR_RIGHT
	DIR_NONE
)

func (d Direction) Name() string {
	switch d {
	case DIR_UP:
		return "UP"
	case DIR_DOWN:
		return "DOWN"
	case DIR_LEFT:
		return "LEFT"
	case DIR_RIGHT:
		return "RIGHT"
	case DIR_NONE:
		return "NONE"
	default:
		return fmt.Sprintf("N/A(%d)", d)
	}
}

// Point is a grid coordinate, not a pixel coordinate.
type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

func (p Point) Mul(v int) Point {
	return Point{p.X * v, p.Y * v}
}

// Step returns the adjacent point in direction d. DIR_NONE returns p.
func (p Point) Step(d Direction) Point {
	switch d {
	case DIR_UP:
		p.Y--
	case DIR_DOWN:
		p.Y++
	case DIR_LEFT:
		p.X--
	case DIR_RIGHT:
		p.X++
	}
	return p
}

// Less orders points row-major, y first.
func (p Point) Less(o Point) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

func (p Point) String() string {
	return fmt.Sprintf("{%d, %d}", p.X, p.Y)
}

type Extents struct {
	Width, Height int
}

func (e Extents) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < e.Width && p.Y < e.Height
}
