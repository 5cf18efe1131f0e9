package anim

import (
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/boulders/entity"
	"github.com/zucenko/boulders/model"
	"github.com/zucenko/boulders/notify"
)

// Animators keeps one Animator per live entity of a store, following its
// creation, removal and movement events.
type Animators struct {
	width   int
	frames  int
	byID    map[uint32]*Animator
	cookies notify.Cookies
}

func NewAnimators(store *entity.Store, width, frames int) *Animators {
	a := &Animators{
		width:  width,
		frames: frames,
		byID:   make(map[uint32]*Animator),
	}
	for _, e := range store.All() {
		a.byID[e.Id()] = NewAnimator(e, width, frames)
	}
	a.cookies = append(a.cookies,
		store.OnCreation(func(e *entity.Entity) {
			a.byID[e.Id()] = NewAnimator(e, a.width, a.frames)
		}),
		store.OnRemoval(func(e *entity.Entity) {
			delete(a.byID, e.Id())
		}),
		store.OnMovement(func(m entity.Movement) {
			if an, ok := a.byID[m.Entity.Id()]; ok {
				an.Move(m.From, m.To)
			}
		}),
	)
	log.WithFields(log.Fields{
		"animators": len(a.byID),
		"width":     width,
		"frames":    frames,
	}).Debug("animators ready")
	return a
}

// Get returns the animator of the entity id, nil if there is none.
func (a *Animators) Get(id uint32) *Animator {
	return a.byID[id]
}

func (a *Animators) Len() int {
	return len(a.byID)
}

// All returns the animators ordered by entity id.
func (a *Animators) All() []*Animator {
	out := make([]*Animator, 0, len(a.byID))
	for _, an := range a.byID {
		out = append(out, an)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].entity.Id() < out[j].entity.Id()
	})
	return out
}

func (a *Animators) Animate() {
	for _, an := range a.byID {
		an.Animate()
	}
}

func (a *Animators) Close() {
	a.cookies.Release()
}

// TileSource is anything that can tell which tile is known at a point.
type TileSource interface {
	TileAt(p model.Point) (model.TileType, bool)
}

// LevelAnimator picks tile sprites from what the player knows of the level.
type LevelAnimator struct {
	tiles TileSource
}

func NewLevelAnimator(tiles TileSource) *LevelAnimator {
	return &LevelAnimator{tiles: tiles}
}

// ImageEntryAt returns the UNKNOWN frame outside the level.
func (la *LevelAnimator) ImageEntryAt(p model.Point) ImageEntry {
	tile, ok := la.tiles.TileAt(p)
	if !ok {
		tile = model.TILE_UNKNOWN
	}
	return TileImage(tile)
}
