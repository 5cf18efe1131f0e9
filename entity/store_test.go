package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/boulders/model"
)

func TestCreateFromInvalidChar(t *testing.T) {
	s := NewStore()
	e, ok := s.CreateFromChar('.', model.Point{})
	assert.False(t, ok)
	assert.Nil(t, e)
	assert.Equal(t, 0, s.Count())
}

func TestCreateFromChar(t *testing.T) {
	s := NewStore()
	boulder, ok := s.CreateFromChar('o', model.Point{X: 1, Y: 2})
	require.True(t, ok)
	assert.Equal(t, model.ENTITY_BOULDER, boulder.Type())

	player, ok := s.CreateFromChar('p', model.Point{X: 2, Y: 2})
	require.True(t, ok)
	assert.Equal(t, model.ENTITY_PLAYER, player.Type())

	assert.Greater(t, player.Id(), boulder.Id())
	assert.Same(t, boulder, s.ByPoint(model.Point{X: 1, Y: 2}))
	assert.Same(t, player, s.ById(player.Id()))
	assert.Equal(t, []*Entity{boulder, player}, s.All())
}

func TestIdsAreNeverReused(t *testing.T) {
	a := NewStore().Create(model.ENTITY_BOULDER, model.Point{})
	a.Remove()
	b := NewStore().Create(model.ENTITY_BOULDER, model.Point{})
	assert.Greater(t, b.Id(), a.Id())
}

func TestLookupOutsideIsNone(t *testing.T) {
	s := NewStore()
	s.Create(model.ENTITY_PLAYER, model.Point{})
	assert.Nil(t, s.ByPoint(model.Point{X: -1, Y: 0}))
	assert.Nil(t, s.ByPoint(model.Point{X: 100, Y: 100}))
	assert.Nil(t, s.ById(0))
}

func TestMovementEvents(t *testing.T) {
	s := NewStore()
	e := s.Create(model.ENTITY_GHOST, model.Point{X: 1, Y: 1})

	var moves []Movement
	cookie := s.OnMovement(func(m Movement) {
		moves = append(moves, m)
	})
	defer cookie.Release()

	e.SetPosition(model.Point{X: 1, Y: 1})
	assert.Empty(t, moves)

	e.SetPosition(model.Point{X: 2, Y: 1})
	require.Len(t, moves, 1)
	assert.Equal(t, model.Point{X: 1, Y: 1}, moves[0].From)
	assert.Equal(t, model.Point{X: 2, Y: 1}, moves[0].To)
	assert.Nil(t, s.ByPoint(model.Point{X: 1, Y: 1}))
	assert.Same(t, e, s.ByPoint(model.Point{X: 2, Y: 1}))
}

func TestCollisionOnMoveAndCreate(t *testing.T) {
	s := NewStore()
	var collisions []Collision
	s.OnCollision(func(c Collision) {
		collisions = append(collisions, c)
	})

	a := s.Create(model.ENTITY_BOULDER, model.Point{X: 0, Y: 0})
	b := s.Create(model.ENTITY_DIAMOND, model.Point{X: 1, Y: 0})
	assert.Empty(t, collisions)

	b.SetPosition(model.Point{X: 0, Y: 0})
	require.Len(t, collisions, 1)
	assert.Same(t, b, collisions[0].One)
	assert.Same(t, a, collisions[0].Other)

	f := s.Create(model.ENTITY_FIREBALL, model.Point{X: 0, Y: 0})
	require.Len(t, collisions, 2)
	assert.Same(t, f, collisions[1].One)
	assert.Same(t, b, collisions[1].Other)
}

func TestRemoveFiresThenPurges(t *testing.T) {
	s := NewStore()
	e := s.Create(model.ENTITY_BOMB, model.Point{X: 3, Y: 3})

	removed := 0
	s.OnRemoval(func(r *Entity) {
		assert.Same(t, e, r)
		assert.True(t, r.Removed())
		removed++
	})

	e.Remove()
	e.Remove()
	assert.Equal(t, 1, removed)
	assert.Nil(t, s.ById(e.Id()))
	assert.Nil(t, s.ByPoint(model.Point{X: 3, Y: 3}))
	assert.Equal(t, 0, s.Count())

	// a removed entity no longer moves
	e.SetPosition(model.Point{X: 4, Y: 4})
	assert.Nil(t, s.ByPoint(model.Point{X: 4, Y: 4}))
}

func TestSharedCellIndexSurvivesDeparture(t *testing.T) {
	s := NewStore()
	below := s.Create(model.ENTITY_BOULDER, model.Point{X: 0, Y: 0})
	top := s.Create(model.ENTITY_DIAMOND, model.Point{X: 0, Y: 0})
	assert.Same(t, top, s.ByPoint(model.Point{X: 0, Y: 0}))

	top.SetPosition(model.Point{X: 1, Y: 0})
	assert.Same(t, below, s.ByPoint(model.Point{X: 0, Y: 0}))

	top.SetPosition(model.Point{X: 0, Y: 0})
	top.Remove()
	assert.Same(t, below, s.ByPoint(model.Point{X: 0, Y: 0}))
}

func TestOccupancyFollowsMovesAndRemovals(t *testing.T) {
	s := NewStore()
	a := s.Create(model.ENTITY_BOULDER, model.Point{X: 0, Y: 0})
	b := s.Create(model.ENTITY_BOULDER, model.Point{X: 1, Y: 0})

	a.SetPosition(model.Point{X: 0, Y: 1})
	b.SetPosition(model.Point{X: 0, Y: 1})
	assert.Equal(t, map[model.Point]int{{X: 0, Y: 1}: 2}, s.occupants)
	assert.Nil(t, s.ByPoint(model.Point{X: 0, Y: 0}))
	assert.Nil(t, s.ByPoint(model.Point{X: 1, Y: 0}))

	b.SetPosition(model.Point{X: 2, Y: 2})
	assert.Same(t, a, s.ByPoint(model.Point{X: 0, Y: 1}))
	a.Remove()
	assert.Nil(t, s.ByPoint(model.Point{X: 0, Y: 1}))
	assert.Equal(t, map[model.Point]int{{X: 2, Y: 2}: 1}, s.occupants)
}

func TestRemovalInsideCollisionListener(t *testing.T) {
	s := NewStore()
	s.OnCollision(func(c Collision) {
		c.Other.Remove()
	})
	victim := s.Create(model.ENTITY_PLAYER, model.Point{X: 2, Y: 2})
	fire := s.Create(model.ENTITY_FIREBALL, model.Point{X: 2, Y: 2})

	assert.True(t, victim.Removed())
	assert.Same(t, fire, s.ByPoint(model.Point{X: 2, Y: 2}))
	assert.Nil(t, s.FirstOfType(model.ENTITY_PLAYER))
}

func TestCloseMakesCookiesInert(t *testing.T) {
	s := NewStore()
	calls := 0
	cookie := s.OnCreation(func(*Entity) { calls++ })
	s.Create(model.ENTITY_BOULDER, model.Point{})
	s.Close()
	cookie.Release()
	s.Create(model.ENTITY_BOULDER, model.Point{X: 1})
	assert.Equal(t, 1, calls)
}

func TestProperties(t *testing.T) {
	s := NewStore()
	p := s.Create(model.ENTITY_PLAYER, model.Point{})
	props := NewProperties()

	assert.Equal(t, 0, props.Get(p, PROP_DIAMONDS))
	assert.Equal(t, 1, props.Add(p, PROP_DIAMONDS, 1))
	props.Set(p, PROP_BOMBS, 3)
	assert.Equal(t, 3, props.Get(p, PROP_BOMBS))
	assert.Equal(t, 1, props.Get(p, PROP_DIAMONDS))
}
