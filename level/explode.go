package level

import (
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/boulders/model"
)

// blast endpoints around the center; the rays towards them are the blast
var blastPattern = []model.Point{
	{X: 0, Y: -3},
	{X: -2, Y: -2}, {X: 2, Y: -2},
	{X: -2, Y: 0}, {X: 0, Y: 0}, {X: 2, Y: 0},
	{X: -2, Y: 2}, {X: 2, Y: 2},
	{X: 0, Y: 3},
}

// light cone endpoints for an observer facing down
var conePattern = []model.Point{
	{X: -2, Y: 0}, {X: 2, Y: 0},
	{X: 0, Y: -2}, {X: -2, Y: -2}, {X: 2, Y: -2},
	{X: -3, Y: 2}, {X: 3, Y: 2},
	{X: -4, Y: 4}, {X: 4, Y: 4},
	{X: -3, Y: 6}, {X: -2, Y: 6}, {X: -1, Y: 6}, {X: 0, Y: 6},
	{X: 1, Y: 6}, {X: 2, Y: 6}, {X: 3, Y: 6},
}

// Explode clears every cell reached by the blast rays to EMPTY and spawns a
// fireball on each. A STONE_WALL survives and stops its ray.
func (l *Level) Explode(center model.Point) {
	visited := model.NewPointSet()
	cleared := make([]model.Point, 0, len(blastPattern)*3)

	for _, offset := range blastPattern {
		for _, p := range Line(center, center.Add(offset)) {
			tile, ok := l.TileAt(p)
			if !ok || tile == model.TILE_STONE_WALL {
				break
			}
			if visited.Has(p) {
				continue
			}
			visited.Put(p)
			l.SetTile(p, model.TILE_EMPTY)
			cleared = append(cleared, p)
		}
	}

	log.WithFields(log.Fields{
		"center":  center,
		"cleared": len(cleared),
	}).Debug("explosion")
	l.explosion.Dispatch(center)

	for _, p := range cleared {
		l.store.Create(model.ENTITY_FIREBALL, p)
	}
}

// Illumination returns the points lit by a cone aimed in dir from origin. Rays pass
// DIRT and EMPTY; any other tile is lit and stops its ray.
func (l *Level) Illumination(origin model.Point, dir model.Direction) model.PointSet {
	lit := model.NewPointSet()

	for _, offset := range conePattern {
		for i, p := range Line(origin, origin.Add(rotate(offset, dir))) {
			tile, ok := l.TileAt(p)
			if !ok {
				break
			}
			lit.Put(p)
			// the light source never shadows itself
			if i > 0 && tile != model.TILE_DIRT && tile != model.TILE_EMPTY {
				break
			}
		}
	}
	return lit
}

// rotate turns a facing-down pattern offset towards dir.
func rotate(p model.Point, dir model.Direction) model.Point {
	switch dir {
	case model.DIR_UP:
		return model.Point{X: p.X, Y: -p.Y}
	case model.DIR_RIGHT:
		return model.Point{X: p.Y, Y: p.X}
	case model.DIR_LEFT:
		return model.Point{X: -p.Y, Y: p.X}
	}
	return p
}
