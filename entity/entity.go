package entity

import (
	"fmt"
	"sync/atomic"

	"github.com/zucenko/boulders/model"
)

// ids are unique for the process lifetime, never reused across stores
var lastID atomic.Uint32

type Entity struct {
	id      uint32
	typ     model.EntityType
	pos     model.Point
	facing  model.Direction
	removed bool
	store   *Store
}

func (e *Entity) Id() uint32 {
	return e.id
}

func (e *Entity) Type() model.EntityType {
	return e.typ
}

func (e *Entity) Position() model.Point {
	return e.pos
}

func (e *Entity) Facing() model.Direction {
	return e.facing
}

func (e *Entity) SetFacing(d model.Direction) {
	e.facing = d
}

// Removed reports whether Remove has been called on e.
func (e *Entity) Removed() bool {
	return e.removed
}

// SetPosition moves e. Moving onto the current position is not a movement.
// Moving onto an occupied cell fires a collision after the movement event.
func (e *Entity) SetPosition(dst model.Point) {
	if e.removed || dst == e.pos {
		return
	}
	e.store.move(e, dst)
}

func (e *Entity) Remove() {
	if e.removed {
		return
	}
	e.store.remove(e)
}

func (e *Entity) String() string {
	return fmt.Sprintf("%s#%d@%v", e.typ.Name(), e.id, e.pos)
}
