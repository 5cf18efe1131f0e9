package behavior

import (
	"math/rand"

	"github.com/zucenko/boulders/config"
	"github.com/zucenko/boulders/entity"
	"github.com/zucenko/boulders/level"
	"github.com/zucenko/boulders/model"
)

// Trait is one rule advanced once per tick. Run reports whether the trait did
// anything this tick.
type Trait interface {
	Run(ms int) bool
}

// World is the level context shared by every trait of one loaded level.
type World struct {
	Level *level.Level
	Props *entity.Properties
	Input model.Input
	Rand  *rand.Rand
	Rules config.Rules
}

func (w *World) Store() *entity.Store {
	return w.Level.Store()
}
