package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/boulders/config"
	"github.com/zucenko/boulders/game"
	"github.com/zucenko/boulders/model"
)

func TestMain(m *testing.M) {
	log.SetLevel(log.WarnLevel)
	os.Exit(m.Run())
}

func newSimulated(t *testing.T, width, height int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	term, err := NewTerminal(screen, 200*time.Millisecond)
	require.NoError(t, err)
	screen.SetSize(width, height)
	t.Cleanup(term.Close)
	return term, screen
}

func newGame(t *testing.T, data string) *game.Game {
	t.Helper()
	cfg := config.Default()
	cfg.Rules.Seed = 1
	g := game.New(cfg, nil)
	require.NoError(t, g.SetLevel(data))
	t.Cleanup(g.Close)
	return g
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestKeysAreHeldForAWhile(t *testing.T) {
	term, screen := newSimulated(t, 20, 5)
	now := time.Now()
	term.now = func() time.Time { return now }

	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	require.Eventually(t, func() bool {
		term.Delay(10)
		return term.Keys() == model.KEY_LEFT|model.KEY_BOMB
	}, time.Second, 20*time.Millisecond)

	now = now.Add(300 * time.Millisecond)
	assert.Equal(t, uint32(0), term.Keys())
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tcell.Key{tcell.KeyEscape, tcell.KeyCtrlC} {
		term, screen := newSimulated(t, 20, 5)
		screen.InjectKey(key, 0, tcell.ModNone)
		assert.False(t, term.Delay(2000))
	}
	term, screen := newSimulated(t, 20, 5)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	assert.False(t, term.Delay(2000))
	assert.False(t, term.Delay(1), "stays quitting")
}

func TestDelayWaits(t *testing.T) {
	term, _ := newSimulated(t, 20, 5)
	start := time.Now()
	assert.True(t, term.Delay(30))
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestDisplayShowsWhatThePlayerSees(t *testing.T) {
	g := newGame(t, "6 4 "+
		"#....."+
		"..o..."+
		"..p..."+
		"......")
	term, screen := newSimulated(t, 20, 6)

	require.NoError(t, term.Display(g.Frame()))
	assert.Equal(t, 'p', runeAt(screen, 2, 2))
	assert.Equal(t, '.', runeAt(screen, 2, 3), "lit below the player")
	assert.Equal(t, ' ', runeAt(screen, 0, 0), "the wall behind is unknown")
	assert.Equal(t, ' ', runeAt(screen, 10, 1), "outside the level")
	assert.Equal(t, 'd', runeAt(screen, 1, 5))
}

func TestDisplayRevealToggle(t *testing.T) {
	g := newGame(t, "6 4 "+
		"#....."+
		"..o..."+
		"..p..."+
		"......")
	term, screen := newSimulated(t, 20, 6)

	screen.InjectKey(tcell.KeyRune, 'r', tcell.ModNone)
	require.Eventually(t, func() bool {
		term.Delay(10)
		return term.reveal
	}, time.Second, 20*time.Millisecond)
	require.NoError(t, term.Display(g.Frame()))
	g.Tick(100)
	require.NoError(t, term.Display(g.Frame()))
	assert.Equal(t, '#', runeAt(screen, 0, 0))
	assert.Equal(t, 'o', runeAt(screen, 2, 1))
}

func TestDisplayNeedsALevel(t *testing.T) {
	term, _ := newSimulated(t, 20, 5)
	assert.Error(t, term.Display(game.Frame{}))
}

func TestOffsetKeepsPlayerInView(t *testing.T) {
	assert.Equal(t, 0, offset(2, 20, 10))
	assert.Equal(t, 5, offset(15, 20, 40))
	assert.Equal(t, 20, offset(39, 20, 40))
}

func TestPlayInTerminal(t *testing.T) {
	g := newGame(t, "9 9 "+
		"...o....d"+
		"... ....d"+
		"... ....d"+
		"... .. .."+
		".#. t.o  "+
		".##dp.o ."+
		"........."+
		"........."+
		"........t")
	term, screen := newSimulated(t, 20, 12)
	term.hold = time.Hour
	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	require.Eventually(t, func() bool {
		term.Delay(10)
		return term.Keys() == model.KEY_LEFT
	}, time.Second, 20*time.Millisecond)

	outcome, err := g.Play(context.Background(), term)
	require.NoError(t, err)
	assert.Equal(t, game.OUTCOME_DEAD, outcome)
	assert.Equal(t, 'f', runeAt(screen, 3, 5))
}

func TestReadLevel(t *testing.T) {
	data, err := readLevel("")
	require.NoError(t, err)
	assert.Equal(t, game.DefaultLevel, data)

	path := filepath.Join(t.TempDir(), "level.txt")
	require.NoError(t, os.WriteFile(path, []byte("3 2\n p.\n..o\n"), 0o644))
	data, err = readLevel(path)
	require.NoError(t, err)
	assert.Equal(t, "3 2\n p.\n..o", data)

	_, err = readLevel(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
