package behavior

import (
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/boulders/entity"
	"github.com/zucenko/boulders/model"
)

// Teleporter moves an entity resting on a teleporter to another teleporter after
// a delay. Only the first occupied teleporter is serviced. Sending to an occupied
// teleporter destroys every teleporter of the level.
type Teleporter struct {
	world     *World
	delay     int
	timeout   int
	locations []model.Point
}

func NewTeleporter(w *World, delay int) *Teleporter {
	return &Teleporter{
		world:     w,
		delay:     delay,
		timeout:   delay,
		locations: w.Level.Locate(model.TILE_TELEPORTER),
	}
}

func (t *Teleporter) Locations() []model.Point {
	return t.locations
}

func (t *Teleporter) Run(ms int) bool {
	passenger := t.occupant()
	if passenger == nil {
		t.timeout = t.delay
		return false
	}

	t.timeout -= ms
	if t.timeout > 0 {
		return false
	}
	t.timeout = t.delay

	dst, ok := t.destination(passenger.Position())
	if !ok {
		return false
	}
	if t.world.Store().ByPoint(dst) != nil {
		t.malfunction()
		return true
	}

	log.WithFields(log.Fields{"entity": passenger.String(), "to": dst}).Debug("teleported")
	passenger.SetPosition(dst)
	return true
}

func (t *Teleporter) occupant() *entity.Entity {
	for _, p := range t.locations {
		if e := t.world.Store().ByPoint(p); e != nil {
			return e
		}
	}
	return nil
}

// destination draws uniformly among the teleporters other than from.
func (t *Teleporter) destination(from model.Point) (model.Point, bool) {
	others := make([]model.Point, 0, len(t.locations))
	for _, p := range t.locations {
		if p != from {
			others = append(others, p)
		}
	}
	if len(others) == 0 {
		return model.Point{}, false
	}
	return others[t.world.Rand.Intn(len(others))], true
}

func (t *Teleporter) malfunction() {
	log.WithFields(log.Fields{"teleporters": len(t.locations)}).Info("teleporter malfunction")
	locations := t.locations
	t.locations = nil
	for _, p := range locations {
		t.world.Level.Explode(p)
		t.world.Level.SetTile(p, model.TILE_EMPTY)
	}
}
