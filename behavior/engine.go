package behavior

import (
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/boulders/entity"
	"github.com/zucenko/boulders/notify"
)

// Engine advances every entity behavior and then the level rules once per tick.
// Behaviors of removed entities are erased only after the whole pass, and
// entities created during a tick start running on the next one.
type Engine struct {
	world     *World
	behaviors map[uint32]*Behavior
	order     []uint32
	pending   []*entity.Entity
	level     *LevelBehavior
	cookies   notify.Cookies
}

func NewEngine(w *World) *Engine {
	e := &Engine{
		world:     w,
		behaviors: make(map[uint32]*Behavior),
		level:     NewLevelBehavior(w),
	}
	e.cookies = append(e.cookies, w.Store().OnCreation(func(created *entity.Entity) {
		e.pending = append(e.pending, created)
	}))
	for _, ent := range w.Store().All() {
		e.add(ent)
	}
	return e
}

// Run performs one tick of ms simulated milliseconds.
func (e *Engine) Run(ms int) {
	for _, id := range e.order {
		b := e.behaviors[id]
		if b.entity.Removed() {
			continue
		}
		b.Run(ms)
	}
	e.level.Run(ms)

	erased := e.erase()
	added := e.flush()
	if erased > 0 || added > 0 {
		log.WithFields(log.Fields{
			"erased":    erased,
			"added":     added,
			"behaviors": len(e.order),
		}).Debug("engine pass")
	}
}

// Len returns the number of entity behaviors currently tracked.
func (e *Engine) Len() int {
	return len(e.order)
}

// Behavior returns the behavior bound to the entity id, nil if there is none.
func (e *Engine) Behavior(id uint32) *Behavior {
	return e.behaviors[id]
}

func (e *Engine) Close() {
	e.cookies.Release()
	e.level.Close()
}

func (e *Engine) add(ent *entity.Entity) {
	if ent.Removed() {
		return
	}
	if _, ok := e.behaviors[ent.Id()]; ok {
		return
	}
	e.behaviors[ent.Id()] = ForEntity(e.world, ent)
	e.order = append(e.order, ent.Id())
}

func (e *Engine) erase() int {
	kept := e.order[:0]
	erased := 0
	for _, id := range e.order {
		if e.behaviors[id].entity.Removed() {
			delete(e.behaviors, id)
			erased++
			continue
		}
		kept = append(kept, id)
	}
	e.order = kept
	return erased
}

func (e *Engine) flush() int {
	pending := e.pending
	e.pending = nil
	added := 0
	for _, ent := range pending {
		before := len(e.order)
		e.add(ent)
		added += len(e.order) - before
	}
	return added
}
