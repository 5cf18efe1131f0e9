package game

import (
	"fmt"

	"github.com/zucenko/boulders/anim"
	"github.com/zucenko/boulders/entity"
	"github.com/zucenko/boulders/level"
	"github.com/zucenko/boulders/lighting"
)

type Outcome int

const (
	OUTCOME_DEAD Outcome = iota
	OUTCOME_QUIT
)

func (o Outcome) Name() string {
	switch o {
	case OUTCOME_DEAD:
		return "DEAD"
	case OUTCOME_QUIT:
		return "QUIT"
	default:
		return fmt.Sprintf("N/A(%d)", o)
	}
}

// IO is what Play needs from a front end: the pressed keys, somewhere to show
// a frame and a way to wait. Delay returns false when the user wants to quit.
type IO interface {
	Keys() uint32
	Display(f Frame) error
	Delay(ms int) bool
}

// Frame is a read-only view of the current level for one animation frame.
type Frame struct {
	Player    *entity.Entity
	Level     *level.Level
	Lighting  *lighting.Lighting
	Animators *anim.Animators
	Tiles     *anim.LevelAnimator
	Diamonds  int
	Bombs     int
	Tick      int
}
