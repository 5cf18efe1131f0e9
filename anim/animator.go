package anim

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/boulders/entity"
	"github.com/zucenko/boulders/model"
)

// Position is a pixel position.
type Position struct {
	X, Y float32
}

// glide is an in-flight move, one tween per axis.
type glide struct {
	x, y     *gween.Tween
	onFinish []func()
}

func (g *glide) addOnFinish(f func()) {
	g.onFinish = append(g.onFinish, f)
}

// Animator turns the grid moves of one entity into per-frame pixel positions.
// A move to a neighbouring cell is spread over frames calls to Animate; longer
// or diagonal moves land in a single frame.
type Animator struct {
	entity *entity.Entity
	width  int
	frames int
	pos    Position
	jump   *Position
	glide  *glide
}

func NewAnimator(e *entity.Entity, width, frames int) *Animator {
	if frames < 1 {
		frames = 1
	}
	return &Animator{
		entity: e,
		width:  width,
		frames: frames,
		pos:    pixels(e.Position(), width),
	}
}

func (a *Animator) Entity() *entity.Entity {
	return a.entity
}

// Move restarts the animation for a move of the entity.
func (a *Animator) Move(from, to model.Point) {
	a.pos = pixels(from, a.width)
	a.glide = nil
	a.jump = nil

	dx, dy := to.X-from.X, to.Y-from.Y
	if abs(dx) > 1 || abs(dy) > 1 || (dx != 0 && dy != 0) {
		dst := pixels(to, a.width)
		a.jump = &dst
		return
	}
	dst := pixels(to, a.width)
	a.glide = &glide{
		x: gween.New(a.pos.X, dst.X, float32(a.frames), ease.Linear),
		y: gween.New(a.pos.Y, dst.Y, float32(a.frames), ease.Linear),
	}
	a.glide.addOnFinish(func() {
		a.pos = dst
	})
}

// Animate advances one frame.
func (a *Animator) Animate() {
	if a.jump != nil {
		a.pos = *a.jump
		a.jump = nil
		return
	}
	if a.glide == nil {
		return
	}
	x, _ := a.glide.x.Update(1)
	y, finished := a.glide.y.Update(1)
	a.pos = Position{X: x, Y: y}
	if finished {
		for _, f := range a.glide.onFinish {
			f()
		}
		a.glide = nil
	}
}

// Moving reports whether frames of a move are still pending.
func (a *Animator) Moving() bool {
	return a.jump != nil || a.glide != nil
}

func (a *Animator) PixelPosition() Position {
	return a.pos
}

func (a *Animator) Frame() ImageEntry {
	return EntityImage(a.entity.Type(), a.entity.Facing())
}

func pixels(p model.Point, width int) Position {
	return Position{X: float32(p.X * width), Y: float32(p.Y * width)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
