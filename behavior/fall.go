package behavior

import (
	"github.com/zucenko/boulders/entity"
	"github.com/zucenko/boulders/model"
)

// Fall drops an entity one cell per tick. A falling entity landing on a player,
// ghost or bomb destroys both and explodes. Resting on a boulder, bomb or diamond
// it spills sideways, left before right.
type Fall struct {
	world   *World
	entity  *entity.Entity
	falling bool
}

func NewFall(w *World, e *entity.Entity) *Fall {
	return &Fall{world: w, entity: e}
}

func (f *Fall) Falling() bool {
	return f.falling
}

func (f *Fall) Run(ms int) bool {
	lvl := f.world.Level
	cur := f.entity.Position()
	down := cur.Step(model.DIR_DOWN)
	below := f.world.Store().ByPoint(down)

	if f.falling && crushable(below) {
		f.entity.Remove()
		below.Remove()
		lvl.Explode(down)
		return true
	}

	if below != nil {
		if !spills(below) {
			return f.settle()
		}
		for _, side := range []model.Direction{model.DIR_LEFT, model.DIR_RIGHT} {
			beside := cur.Step(side)
			if lvl.IsFree(beside) && lvl.IsFree(beside.Step(model.DIR_DOWN)) {
				f.entity.SetPosition(beside)
				return f.fall()
			}
		}
		return f.settle()
	}

	if lvl.IsFree(down) {
		f.entity.SetPosition(down)
		return f.fall()
	}
	return f.settle()
}

func (f *Fall) fall() bool {
	f.falling = true
	return true
}

func (f *Fall) settle() bool {
	f.falling = false
	return false
}

func crushable(e *entity.Entity) bool {
	if e == nil {
		return false
	}
	switch e.Type() {
	case model.ENTITY_PLAYER, model.ENTITY_GHOST, model.ENTITY_BOMB:
		return true
	}
	return false
}

// spills reports whether things resting on e roll off its sides.
func spills(e *entity.Entity) bool {
	switch e.Type() {
	case model.ENTITY_BOULDER, model.ENTITY_BOMB, model.ENTITY_DIAMOND:
		return true
	}
	return false
}
