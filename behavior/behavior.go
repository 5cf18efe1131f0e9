package behavior

import (
	"github.com/zucenko/boulders/entity"
	"github.com/zucenko/boulders/model"
)

// Behavior runs the traits bound to one entity, in order.
type Behavior struct {
	entity *entity.Entity
	traits []Trait
}

// ForEntity builds the fixed trait list of e's type. Types without rules get an
// empty Behavior.
func ForEntity(w *World, e *entity.Entity) *Behavior {
	b := &Behavior{entity: e}
	rules := w.Rules
	switch e.Type() {
	case model.ENTITY_BOULDER, model.ENTITY_DIAMOND:
		b.traits = []Trait{NewFall(w, e)}
	case model.ENTITY_BOMB:
		b.traits = []Trait{NewFall(w, e), NewExplodeAfter(w, e, rules.BombTimeoutMs)}
	case model.ENTITY_FIREBALL:
		b.traits = []Trait{NewFall(w, e), NewDisappearAfter(e, rules.FireballBurnoutMs)}
	case model.ENTITY_GHOST:
		b.traits = []Trait{NewGhostExplore(w, e, rules.GhostMemory)}
	case model.ENTITY_PLAYER:
		b.traits = []Trait{NewWalk(w, e), NewOperate(w, e), NewPlaceBomb(w, e)}
	}
	return b
}

func (b *Behavior) Entity() *entity.Entity {
	return b.entity
}

func (b *Behavior) Traits() []Trait {
	return b.traits
}

// Run stops early once the entity is removed by one of its own traits.
func (b *Behavior) Run(ms int) bool {
	active := false
	for _, t := range b.traits {
		if b.entity.Removed() {
			break
		}
		if t.Run(ms) {
			active = true
		}
	}
	return active
}

// LevelBehavior runs the level-global rules: collisions, transport bands and
// teleporters, in that order.
type LevelBehavior struct {
	collision *Collision
	traits    []Trait
}

func NewLevelBehavior(w *World) *LevelBehavior {
	collision := NewCollision(w)
	return &LevelBehavior{
		collision: collision,
		traits: []Trait{
			collision,
			NewTransportBand(w),
			NewTeleporter(w, w.Rules.TeleporterDelayMs),
		},
	}
}

func (l *LevelBehavior) Run(ms int) bool {
	active := false
	for _, t := range l.traits {
		if t.Run(ms) {
			active = true
		}
	}
	return active
}

// Close detaches the collision rule from the store.
func (l *LevelBehavior) Close() {
	l.collision.Close()
}
