package lighting

import (
	"sort"

	"github.com/zucenko/boulders/level"
	"github.com/zucenko/boulders/model"
)

// Shadow is the last known whereabouts of an entity that went out of sight.
type Shadow struct {
	Point model.Point
	Type  model.EntityType
}

// Lighting is the player's knowledge of the level. Tiles keep their last lit
// value even if the level changes in the dark.
type Lighting struct {
	level   *level.Level
	tiles   []model.TileType
	lighted model.PointSet
	visible []uint32
	shadows map[model.Point]model.EntityType
	reveal  bool
}

func New(l *level.Level) *Lighting {
	size := l.Size()
	tiles := make([]model.TileType, size.Width*size.Height)
	for i := range tiles {
		tiles[i] = model.TILE_UNKNOWN
	}
	return &Lighting{
		level:   l,
		tiles:   tiles,
		lighted: model.NewPointSet(),
		shadows: make(map[model.Point]model.EntityType),
	}
}

// SetReveal switches to showing the live level and every entity, lit or not.
// Entities outside the light are then reported as shadows.
func (li *Lighting) SetReveal(reveal bool) {
	li.reveal = reveal
}

// Update takes the points lit this tick.
func (li *Lighting) Update(lighted model.PointSet) {
	if li.reveal {
		li.updateRevealed(lighted)
		return
	}

	store := li.level.Store()
	for _, id := range li.visible {
		e := store.ById(id)
		if e == nil {
			continue
		}
		if !lighted.Has(e.Position()) {
			li.shadows[e.Position()] = e.Type()
		}
	}

	li.lighted = lighted
	li.visible = li.visible[:0]
	for _, p := range model.SortedPoints(lighted) {
		delete(li.shadows, p)
		li.remember(p)
		if e := store.ByPoint(p); e != nil {
			li.visible = append(li.visible, e.Id())
		}
	}
}

func (li *Lighting) updateRevealed(lighted model.PointSet) {
	li.lighted = lighted
	li.visible = li.visible[:0]
	li.shadows = make(map[model.Point]model.EntityType)
	for _, e := range li.level.Store().All() {
		if lighted.Has(e.Position()) {
			li.visible = append(li.visible, e.Id())
			continue
		}
		li.shadows[e.Position()] = e.Type()
	}
	lighted.Each(func(p model.Point) {
		delete(li.shadows, p)
		li.remember(p)
	})
}

func (li *Lighting) remember(p model.Point) {
	if tile, ok := li.level.TileAt(p); ok {
		li.tiles[p.Y*li.level.Size().Width+p.X] = tile
	}
}

// TileAt returns the remembered tile, UNKNOWN if never lit, false outside the level.
func (li *Lighting) TileAt(p model.Point) (model.TileType, bool) {
	if !li.level.Size().Contains(p) {
		return model.TILE_UNKNOWN, false
	}
	if li.reveal {
		return li.level.TileAt(p)
	}
	return li.tiles[p.Y*li.level.Size().Width+p.X], true
}

func (li *Lighting) Lighted() model.PointSet {
	return li.lighted
}

// VisibleEntities returns the ids standing on lit points, in row-major order of
// their points.
func (li *Lighting) VisibleEntities() []uint32 {
	out := make([]uint32, len(li.visible))
	copy(out, li.visible)
	return out
}

// ShadowEntities returns the remembered entities, in row-major order.
func (li *Lighting) ShadowEntities() []Shadow {
	out := make([]Shadow, 0, len(li.shadows))
	for p, typ := range li.shadows {
		out = append(out, Shadow{Point: p, Type: typ})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Point.Less(out[j].Point)
	})
	return out
}
