package behavior

import (
	"github.com/zucenko/boulders/entity"
	"github.com/zucenko/boulders/level"
	"github.com/zucenko/boulders/model"
)

// Band is a horizontal run of transport tiles of one direction. End is exclusive.
type Band struct {
	Start, End model.Point
	Dir        model.Direction
}

// TransportBand carries the entities resting on top of each band one cell per tick.
type TransportBand struct {
	world *World
	bands []Band
}

func NewTransportBand(w *World) *TransportBand {
	return &TransportBand{world: w, bands: LocateBands(w.Level)}
}

func (t *TransportBand) Bands() []Band {
	return t.bands
}

// Run moves every entity resting on a band one cell along it. Destinations are
// judged by the occupancy before anything moved, so a train of touching entities
// advances from the front one gap at a time.
func (t *TransportBand) Run(ms int) bool {
	var load []carried
	for _, band := range t.bands {
		load = t.collect(band, load)
	}

	moved := false
	for _, c := range load {
		if c.blocked || c.entity.Removed() {
			continue
		}
		dst := c.entity.Position().Step(c.dir)
		if !t.world.Level.IsFree(dst) {
			continue
		}
		c.entity.SetPosition(dst)
		moved = true
	}
	return moved
}

type carried struct {
	entity  *entity.Entity
	dir     model.Direction
	blocked bool
}

// collect appends the entities resting on band, left to right.
func (t *TransportBand) collect(band Band, load []carried) []carried {
	store := t.world.Store()
	for x := band.Start.X; x < band.End.X; x++ {
		e := store.ByPoint(model.Point{X: x, Y: band.Start.Y - 1})
		if e == nil {
			continue
		}
		dst := e.Position().Step(band.Dir)
		load = append(load, carried{entity: e, dir: band.Dir, blocked: store.ByPoint(dst) != nil})
	}
	return load
}

// LocateBands scans every row for maximal runs of LEFT_TRANSPORT tiles and of
// RIGHT_TRANSPORT tiles. Touching runs of opposite direction are separate bands.
func LocateBands(l *level.Level) []Band {
	var bands []Band
	size := l.Size()
	for y := 0; y < size.Height; y++ {
		start := -1
		var run model.TileType
		for x := 0; x <= size.Width; x++ {
			tile, _ := l.TileAt(model.Point{X: x, Y: y})
			if start >= 0 && tile != run {
				bands = append(bands, Band{
					Start: model.Point{X: start, Y: y},
					End:   model.Point{X: x, Y: y},
					Dir:   bandDirection(run),
				})
				start = -1
			}
			if start < 0 && (tile == model.TILE_LEFT_TRANSPORT || tile == model.TILE_RIGHT_TRANSPORT) {
				start, run = x, tile
			}
		}
	}
	return bands
}

func bandDirection(t model.TileType) model.Direction {
	if t == model.TILE_LEFT_TRANSPORT {
		return model.DIR_LEFT
	}
	return model.DIR_RIGHT
}
