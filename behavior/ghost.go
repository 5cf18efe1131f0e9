package behavior

import (
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/boulders/entity"
	"github.com/zucenko/boulders/model"
)

var scanOrder = []model.Direction{model.DIR_UP, model.DIR_DOWN, model.DIR_LEFT, model.DIR_RIGHT}

type visit struct {
	where   model.Point
	count   int
	touched int
}

// GhostExplore wanders through EMPTY and TELEPORTER cells, preferring cells it
// has not seen, then the least visited one in scan order. It remembers a bounded
// number of cells; the least recently touched is forgotten first. A player next
// to the ghost is blown up.
type GhostExplore struct {
	world  *World
	entity *entity.Entity
	limit  int

	// sorted by descending count
	visits []visit
	clock  int
}

func NewGhostExplore(w *World, e *entity.Entity, memory int) *GhostExplore {
	return &GhostExplore{world: w, entity: e, limit: memory}
}

func (g *GhostExplore) Run(ms int) bool {
	g.clock++
	pos := g.entity.Position()
	g.touch(pos)

	walkable := make([]model.Point, 0, len(scanOrder))
	for _, dir := range scanOrder {
		p := pos.Step(dir)
		if other := g.world.Store().ByPoint(p); other != nil {
			if other.Type() == model.ENTITY_PLAYER {
				log.WithFields(log.Fields{"ghost": g.entity.String(), "player": other.String()}).Info("ghost caught the player")
				g.world.Level.Explode(p)
			}
			continue
		}
		tile, ok := g.world.Level.TileAt(p)
		if ok && (tile == model.TILE_EMPTY || tile == model.TILE_TELEPORTER) {
			walkable = append(walkable, p)
		}
	}

	if len(walkable) == 0 || g.entity.Removed() {
		return false
	}

	dst := g.choose(walkable)
	g.entity.SetFacing(directionTo(pos, dst))
	g.entity.SetPosition(dst)
	return true
}

// Visited returns the remembered visit count of p.
func (g *GhostExplore) Visited(p model.Point) int {
	if i := g.lookup(p); i >= 0 {
		return g.visits[i].count
	}
	return 0
}

func (g *GhostExplore) Remembered() int {
	return len(g.visits)
}

func (g *GhostExplore) choose(candidates []model.Point) model.Point {
	fresh := make([]model.Point, 0, len(candidates))
	for _, p := range candidates {
		if g.lookup(p) < 0 {
			fresh = append(fresh, p)
		}
	}
	if len(fresh) > 0 {
		which := fresh[g.world.Rand.Intn(len(fresh))]
		g.insert(which)
		return which
	}

	best := -1
	for _, p := range candidates {
		i := g.lookup(p)
		if best < 0 || g.visits[i].count < g.visits[best].count {
			best = i
		}
	}
	g.visits[best].count++
	g.visits[best].touched = g.clock
	which := g.visits[best].where
	g.order()
	return which
}

func (g *GhostExplore) touch(p model.Point) {
	if i := g.lookup(p); i >= 0 {
		g.visits[i].count++
		g.visits[i].touched = g.clock
		g.order()
		return
	}
	g.insert(p)
}

func (g *GhostExplore) insert(p model.Point) {
	if len(g.visits) >= g.limit {
		oldest := 0
		for i := range g.visits {
			if g.visits[i].touched < g.visits[oldest].touched {
				oldest = i
			}
		}
		g.visits = append(g.visits[:oldest], g.visits[oldest+1:]...)
	}
	g.visits = append(g.visits, visit{where: p, count: 1, touched: g.clock})
	g.order()
}

func (g *GhostExplore) order() {
	sort.SliceStable(g.visits, func(i, j int) bool {
		return g.visits[i].count > g.visits[j].count
	})
}

func (g *GhostExplore) lookup(p model.Point) int {
	for i := range g.visits {
		if g.visits[i].where == p {
			return i
		}
	}
	return -1
}

func directionTo(from, to model.Point) model.Direction {
	for _, dir := range scanOrder {
		if from.Step(dir) == to {
			return dir
		}
	}
	return model.DIR_NONE
}
