package behavior

import (
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/boulders/entity"
)

// countdown fires once when the accumulated elapsed time reaches its budget.
type countdown struct {
	remaining int
	fired     bool
}

func (c *countdown) expired(ms int) bool {
	if c.fired {
		return false
	}
	c.remaining -= ms
	if c.remaining > 0 {
		return false
	}
	c.fired = true
	return true
}

// ExplodeAfter explodes the entity's cell and removes the entity once its timeout passes.
type ExplodeAfter struct {
	countdown
	world  *World
	entity *entity.Entity
}

func NewExplodeAfter(w *World, e *entity.Entity, ms int) *ExplodeAfter {
	return &ExplodeAfter{countdown: countdown{remaining: ms}, world: w, entity: e}
}

func (x *ExplodeAfter) Run(ms int) bool {
	if !x.expired(ms) {
		return false
	}
	pos := x.entity.Position()
	log.WithFields(log.Fields{"entity": x.entity.String()}).Debug("timeout reached, exploding")
	x.world.Level.Explode(pos)
	x.entity.Remove()
	return true
}

// DisappearAfter removes the entity once its timeout passes.
type DisappearAfter struct {
	countdown
	entity *entity.Entity
}

func NewDisappearAfter(e *entity.Entity, ms int) *DisappearAfter {
	return &DisappearAfter{countdown: countdown{remaining: ms}, entity: e}
}

func (d *DisappearAfter) Run(ms int) bool {
	if !d.expired(ms) {
		return false
	}
	d.entity.Remove()
	return true
}
