package behavior

import (
	"math/rand"
	"os"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/boulders/config"
	"github.com/zucenko/boulders/entity"
	"github.com/zucenko/boulders/level"
	"github.com/zucenko/boulders/model"
)

// in ms
const (
	FALL_TIME             = 100
	BOMB_TIMEOUT          = 2000
	FIREBALL_BURNOUT_TIME = 1000
	GHOST_MOVEMENT_TIME   = 100
	TRANSPORT_TIME        = 500
	TELEPORTER_DELAY      = 1500
)

func TestMain(m *testing.M) {
	log.SetLevel(log.WarnLevel)
	os.Exit(m.Run())
}

type keypad struct {
	keys uint32
}

func (k *keypad) Keys() uint32 {
	return k.keys
}

func load(t *testing.T, s string) (*World, *keypad) {
	t.Helper()
	store := entity.NewStore()
	l, err := level.FromString(s, store)
	require.NoError(t, err)
	pad := &keypad{}
	return &World{
		Level: l,
		Props: entity.NewProperties(),
		Input: pad,
		Rand:  rand.New(rand.NewSource(1)),
		Rules: config.Default().Rules,
	}, pad
}

func at(w *World, x, y int) *entity.Entity {
	return w.Store().ByPoint(model.Point{X: x, Y: y})
}

func countType(w *World, typ model.EntityType) int {
	n := 0
	for _, e := range w.Store().All() {
		if e.Type() == typ {
			n++
		}
	}
	return n
}

func TestBoulderOnSolidGroundStays(t *testing.T) {
	w, _ := load(t, "2 4 "+
		"o."+
		".."+
		".."+
		".p")
	boulder := at(w, 0, 0)
	require.NotNil(t, boulder)

	b := ForEntity(w, boulder)
	assert.False(t, b.Run(FALL_TIME))
	assert.Equal(t, model.Point{X: 0, Y: 0}, boulder.Position())
}

func TestBoulderFallsUntilFirmGround(t *testing.T) {
	w, _ := load(t, "2 4 "+
		"o."+
		" ."+
		".."+
		".p")
	boulder := at(w, 0, 0)
	fall := NewFall(w, boulder)

	assert.True(t, fall.Run(FALL_TIME))
	assert.Equal(t, model.Point{X: 0, Y: 1}, boulder.Position())
	assert.True(t, fall.Falling())

	assert.False(t, fall.Run(FALL_TIME))
	assert.Equal(t, model.Point{X: 0, Y: 1}, boulder.Position())
	assert.False(t, fall.Falling())
}

func TestBoulderSpillsLeftFirst(t *testing.T) {
	w, _ := load(t, "3 4 "+
		" o "+
		" o "+
		"..."+
		".p.")
	boulder := at(w, 1, 0)
	b := ForEntity(w, boulder)

	b.Run(FALL_TIME)
	assert.Equal(t, model.Point{X: 0, Y: 0}, boulder.Position())
	b.Run(FALL_TIME)
	assert.Equal(t, model.Point{X: 0, Y: 1}, boulder.Position())
}

func TestBoulderSpillsRight(t *testing.T) {
	w, _ := load(t, "3 4 "+
		".o "+
		".o "+
		"..."+
		".p.")
	boulder := at(w, 1, 0)
	b := ForEntity(w, boulder)

	b.Run(FALL_TIME)
	assert.Equal(t, model.Point{X: 2, Y: 0}, boulder.Position())
	b.Run(FALL_TIME)
	assert.Equal(t, model.Point{X: 2, Y: 1}, boulder.Position())
}

func TestBoulderDoesNotSpillOffPlayer(t *testing.T) {
	w, _ := load(t, "3 3 "+
		" o "+
		" p "+
		"   ")
	boulder := at(w, 1, 0)
	ForEntity(w, boulder).Run(FALL_TIME)
	assert.Equal(t, model.Point{X: 1, Y: 0}, boulder.Position())
}

func TestFallingBoulderCrushesPlayer(t *testing.T) {
	w, _ := load(t, "2 4 "+
		"o."+
		"p."+
		".."+
		"..")
	boulder := at(w, 0, 0)
	b := ForEntity(w, boulder)

	b.Run(FALL_TIME)
	assert.Equal(t, model.Point{X: 0, Y: 0}, boulder.Position(), "a resting boulder does not crush")

	player := at(w, 0, 1)
	require.Equal(t, model.ENTITY_PLAYER, player.Type())
	player.SetPosition(model.Point{X: 0, Y: 2})

	b.Run(FALL_TIME)
	assert.Equal(t, model.Point{X: 0, Y: 1}, boulder.Position())

	assert.True(t, b.Run(FALL_TIME))
	fire := at(w, 0, 2)
	require.NotNil(t, fire)
	assert.Equal(t, model.ENTITY_FIREBALL, fire.Type())
	assert.True(t, player.Removed())
	assert.True(t, boulder.Removed())
	assert.Equal(t, 0, countType(w, model.ENTITY_PLAYER))
}

func TestBombFallsThenExplodes(t *testing.T) {
	w, _ := load(t, "2 4 "+
		"b."+
		" ."+
		".."+
		".p")
	bomb := at(w, 0, 0)
	b := ForEntity(w, bomb)

	b.Run(FALL_TIME)
	assert.Equal(t, model.Point{X: 0, Y: 1}, bomb.Position())

	b.Run(BOMB_TIMEOUT - FALL_TIME - 1)
	assert.Equal(t, model.ENTITY_BOMB, at(w, 0, 1).Type())

	b.Run(2)
	assert.Equal(t, model.ENTITY_FIREBALL, at(w, 0, 1).Type())
	assert.True(t, bomb.Removed())

	assert.False(t, b.Run(BOMB_TIMEOUT), "a removed bomb does nothing")
}

func TestFireballFallsAndBurnsOut(t *testing.T) {
	w, _ := load(t, "2 4 "+
		"f."+
		" ."+
		".."+
		".p")
	fireball := at(w, 0, 0)
	b := ForEntity(w, fireball)

	b.Run(FALL_TIME)
	require.NotNil(t, at(w, 0, 1))
	assert.Equal(t, model.ENTITY_FIREBALL, at(w, 0, 1).Type())

	b.Run(FIREBALL_BURNOUT_TIME)
	assert.Nil(t, at(w, 0, 1))
	assert.True(t, fireball.Removed())
}

func TestCountdownFiresOnce(t *testing.T) {
	w, _ := load(t, "2 1 fp")
	fireball := at(w, 0, 0)
	d := NewDisappearAfter(fireball, 100)
	assert.False(t, d.Run(99))
	assert.True(t, d.Run(1))
	assert.False(t, d.Run(1000))
}

func TestTraitTable(t *testing.T) {
	w, _ := load(t, "6 1 odbfgp")
	kinds := func(e *entity.Entity) []string {
		var out []string
		for _, tr := range ForEntity(w, e).Traits() {
			switch tr.(type) {
			case *Fall:
				out = append(out, "fall")
			case *ExplodeAfter:
				out = append(out, "explode")
			case *DisappearAfter:
				out = append(out, "disappear")
			case *GhostExplore:
				out = append(out, "ghost")
			case *Walk:
				out = append(out, "walk")
			case *Operate:
				out = append(out, "operate")
			case *PlaceBomb:
				out = append(out, "bomb")
			}
		}
		return out
	}
	assert.Equal(t, []string{"fall"}, kinds(at(w, 0, 0)))
	assert.Equal(t, []string{"fall"}, kinds(at(w, 1, 0)))
	assert.Equal(t, []string{"fall", "explode"}, kinds(at(w, 2, 0)))
	assert.Equal(t, []string{"fall", "disappear"}, kinds(at(w, 3, 0)))
	assert.Equal(t, []string{"ghost"}, kinds(at(w, 4, 0)))
	assert.Equal(t, []string{"walk", "operate", "bomb"}, kinds(at(w, 5, 0)))

	key := w.Store().Create(model.ENTITY_IRON_KEY, model.Point{X: 0, Y: 0})
	assert.Empty(t, ForEntity(w, key).Traits())
}
