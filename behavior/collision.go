package behavior

import (
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/boulders/entity"
	"github.com/zucenko/boulders/model"
	"github.com/zucenko/boulders/notify"
)

// Collision resolves entity overlaps as they happen. A fireball removes whatever
// it touches. A ghost meeting the player removes both and explodes the cell.
// Other pairs have no effect.
type Collision struct {
	world  *World
	cookie *notify.Cookie
}

func NewCollision(w *World) *Collision {
	c := &Collision{world: w}
	c.cookie = w.Store().OnCollision(c.resolve)
	return c
}

// Run does nothing; collisions are resolved synchronously by the store events.
func (c *Collision) Run(ms int) bool {
	return false
}

func (c *Collision) Close() {
	c.cookie.Release()
}

func (c *Collision) resolve(ev entity.Collision) {
	one, other := ev.One, ev.Other
	if one.Removed() || other.Removed() {
		return
	}

	if victim, ok := pick(one, other, model.ENTITY_FIREBALL); ok {
		victim.Remove()
		return
	}
	if ghost, ok := pick(one, other, model.ENTITY_PLAYER); ok && ghost.Type() == model.ENTITY_GHOST {
		where := ghost.Position()
		log.WithFields(log.Fields{"at": where}).Info("ghost caught the player")
		one.Remove()
		other.Remove()
		c.world.Level.Explode(where)
	}
}

// pick returns the partner of the entity of type typ, if either has it.
func pick(one, other *entity.Entity, typ model.EntityType) (*entity.Entity, bool) {
	switch {
	case one.Type() == typ:
		return other, true
	case other.Type() == typ:
		return one, true
	}
	return nil, false
}
