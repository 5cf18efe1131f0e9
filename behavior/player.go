package behavior

import (
	"fmt"
	"math/bits"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/boulders/entity"
	"github.com/zucenko/boulders/model"
)

// player is the shared state of the input driven traits.
type player struct {
	world  *World
	entity *entity.Entity
	input  model.Input
}

// newPlayer binds the world input to e. Binding input to anything but a player is
// a caller bug.
func newPlayer(w *World, e *entity.Entity) player {
	if e.Type() != model.ENTITY_PLAYER {
		panic(fmt.Sprintf("input bound to non-player entity %s", e))
	}
	if w.Input == nil {
		panic(fmt.Sprintf("no input to control %s", e))
	}
	return player{world: w, entity: e, input: w.Input}
}

func (p *player) collect(diamond *entity.Entity) {
	diamond.Remove()
	total := p.world.Props.Add(p.entity, entity.PROP_DIAMONDS, 1)
	log.WithFields(log.Fields{"player": p.entity.String(), "diamonds": total}).Debug("diamond collected")
}

// Walk moves the player one cell in the pressed direction, digging through dirt,
// collecting diamonds and pushing boulders sideways.
type Walk struct {
	player
}

func NewWalk(w *World, e *entity.Entity) *Walk {
	return &Walk{player: newPlayer(w, e)}
}

func (w *Walk) Run(ms int) bool {
	keys := w.input.Keys()
	if keys&model.KEY_DIRECTIONS == 0 || keys&model.KEY_OPERATE != 0 {
		return false
	}

	dir := model.KeysToDirection(keys)
	w.entity.SetFacing(dir)

	lvl := w.world.Level
	dst := w.entity.Position().Step(dir)
	tile, ok := lvl.TileAt(dst)
	if !ok || !tile.Passable() {
		return false
	}

	if other := w.world.Store().ByPoint(dst); other != nil {
		switch other.Type() {
		case model.ENTITY_DIAMOND:
			w.collect(other)
		case model.ENTITY_BOULDER:
			if dir == model.DIR_UP || dir == model.DIR_DOWN {
				return false
			}
			beyond := dst.Step(dir)
			if !lvl.IsFree(beyond) {
				return false
			}
			other.SetPosition(beyond)
		case model.ENTITY_FIREBALL, model.ENTITY_GHOST:
			// collision rules decide
		default:
			return false
		}
	}

	if tile == model.TILE_DIRT {
		lvl.SetTile(dst, model.TILE_EMPTY)
	}
	w.entity.SetPosition(dst)
	return true
}

// Operate digs or collects in the pressed direction without moving. It needs
// OPERATE and exactly one direction.
type Operate struct {
	player
}

func NewOperate(w *World, e *entity.Entity) *Operate {
	return &Operate{player: newPlayer(w, e)}
}

func (o *Operate) Run(ms int) bool {
	keys := o.input.Keys()
	if keys&model.KEY_OPERATE == 0 || bits.OnesCount32(keys&model.KEY_DIRECTIONS) != 1 {
		return false
	}

	dst := o.entity.Position().Step(model.KeysToDirection(keys))
	tile, ok := o.world.Level.TileAt(dst)
	if !ok {
		return false
	}
	if tile == model.TILE_DIRT {
		o.world.Level.SetTile(dst, model.TILE_EMPTY)
	}
	if other := o.world.Store().ByPoint(dst); other != nil && other.Type() == model.ENTITY_DIAMOND {
		o.collect(other)
	}
	return true
}

// PlaceBomb drops a bomb into the free cell the player faces, once per press of
// BOMB, while the player has bombs left.
type PlaceBomb struct {
	player
	pressed bool
}

func NewPlaceBomb(w *World, e *entity.Entity) *PlaceBomb {
	return &PlaceBomb{player: newPlayer(w, e)}
}

func (b *PlaceBomb) Run(ms int) bool {
	down := b.input.Keys()&model.KEY_BOMB != 0
	edge := down && !b.pressed
	b.pressed = down
	if !edge || b.world.Props.Get(b.entity, entity.PROP_BOMBS) <= 0 {
		return false
	}

	facing := b.entity.Facing()
	if facing == model.DIR_NONE {
		facing = model.DIR_DOWN
	}
	dst := b.entity.Position().Step(facing)
	if !b.world.Level.IsFree(dst) {
		return false
	}

	b.world.Store().Create(model.ENTITY_BOMB, dst)
	left := b.world.Props.Add(b.entity, entity.PROP_BOMBS, -1)
	log.WithFields(log.Fields{"player": b.entity.String(), "at": dst, "left": left}).Debug("bomb placed")
	return true
}
