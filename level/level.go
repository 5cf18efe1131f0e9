package level

import (
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/boulders/entity"
	"github.com/zucenko/boulders/model"
	"github.com/zucenko/boulders/notify"
)

// Level is the tile grid of one loaded level. Entities live in the Store, never in
// the grid: a cell holding an entity reads as whatever tile is under it.
type Level struct {
	size      model.Extents
	tiles     []model.TileType
	store     *entity.Store
	explosion *notify.Notifier[model.Point]
}

// New returns a level of the given size filled with fill.
func New(size model.Extents, fill model.TileType, store *entity.Store) *Level {
	tiles := make([]model.TileType, size.Width*size.Height)
	for i := range tiles {
		tiles[i] = fill
	}
	return &Level{
		size:      size,
		tiles:     tiles,
		store:     store,
		explosion: notify.New[model.Point](),
	}
}

func (l *Level) Size() model.Extents {
	return l.size
}

func (l *Level) Store() *entity.Store {
	return l.store
}

// TileAt returns false outside the grid.
func (l *Level) TileAt(p model.Point) (model.TileType, bool) {
	if !l.size.Contains(p) {
		return model.TILE_UNKNOWN, false
	}
	return l.tiles[p.Y*l.size.Width+p.X], true
}

// IsTile reports whether p is inside the grid and holds t.
func (l *Level) IsTile(p model.Point, t model.TileType) bool {
	tile, ok := l.TileAt(p)
	return ok && tile == t
}

// IsFree reports an EMPTY tile with nothing standing on it.
func (l *Level) IsFree(p model.Point) bool {
	return l.IsTile(p, model.TILE_EMPTY) && l.store.ByPoint(p) == nil
}

func (l *Level) SetTile(p model.Point, t model.TileType) {
	if !l.size.Contains(p) {
		return
	}
	l.tiles[p.Y*l.size.Width+p.X] = t
}

// Locate returns every point holding t, row-major.
func (l *Level) Locate(t model.TileType) []model.Point {
	var out []model.Point
	for y := 0; y < l.size.Height; y++ {
		for x := 0; x < l.size.Width; x++ {
			if l.tiles[y*l.size.Width+x] == t {
				out = append(out, model.Point{X: x, Y: y})
			}
		}
	}
	return out
}

// OnExplosion subscribes to explosion centers.
func (l *Level) OnExplosion(fn func(model.Point)) *notify.Cookie {
	return l.explosion.Subscribe(fn)
}

func (l *Level) Close() {
	l.explosion.Close()
}

// String serializes the tiles only; entities are not embedded.
func (l *Level) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(l.size.Width))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(l.size.Height))
	b.WriteByte('\n')
	for y := 0; y < l.size.Height; y++ {
		for x := 0; x < l.size.Width; x++ {
			c, ok := l.tiles[y*l.size.Width+x].Char()
			if !ok {
				c = '?'
			}
			b.WriteRune(c)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (l *Level) logFields() log.Fields {
	return log.Fields{
		"width":    l.size.Width,
		"height":   l.size.Height,
		"entities": l.store.Count(),
	}
}
