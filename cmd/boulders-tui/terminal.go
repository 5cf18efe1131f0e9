package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/boulders/game"
	"github.com/zucenko/boulders/model"
)

var keyBits = map[tcell.Key]uint32{
	tcell.KeyUp:    model.KEY_UP,
	tcell.KeyDown:  model.KEY_DOWN,
	tcell.KeyLeft:  model.KEY_LEFT,
	tcell.KeyRight: model.KEY_RIGHT,
	tcell.KeyEnter: model.KEY_OPERATE,
}

var runeBits = map[rune]uint32{
	'w': model.KEY_UP,
	's': model.KEY_DOWN,
	'a': model.KEY_LEFT,
	'd': model.KEY_RIGHT,
	'e': model.KEY_OPERATE,
	' ': model.KEY_BOMB,
}

var entityStyles = map[model.EntityType]tcell.Style{
	model.ENTITY_PLAYER:   tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	model.ENTITY_BOULDER:  tcell.StyleDefault.Foreground(tcell.ColorTan),
	model.ENTITY_DIAMOND:  tcell.StyleDefault.Foreground(tcell.ColorAqua),
	model.ENTITY_BOMB:     tcell.StyleDefault.Foreground(tcell.ColorRed),
	model.ENTITY_FIREBALL: tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true),
	model.ENTITY_GHOST:    tcell.StyleDefault.Foreground(tcell.ColorWhite),
}

var (
	unknownStyle = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray)
	shadowStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	statusStyle  = tcell.StyleDefault.Reverse(true)
)

// Terminal plays the game in a tcell screen. A terminal reports key presses
// only, so a key counts as held for a while after its last press.
type Terminal struct {
	screen   tcell.Screen
	events   chan tcell.Event
	done     chan struct{}
	held     map[uint32]time.Time
	hold     time.Duration
	now      func() time.Time
	quitting bool
	reveal   bool
	revealed bool
}

func NewTerminal(screen tcell.Screen, hold time.Duration) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "initializing screen")
	}
	screen.HideCursor()
	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 64),
		done:   make(chan struct{}),
		held:   make(map[uint32]time.Time),
		hold:   hold,
		now:    time.Now,
	}
	go t.poll()
	return t, nil
}

func (t *Terminal) poll() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

func (t *Terminal) Keys() uint32 {
	now := t.now()
	var keys uint32
	for bit, until := range t.held {
		if now.After(until) {
			delete(t.held, bit)
			continue
		}
		keys |= bit
	}
	return keys
}

// Delay waits ms while handling input. It returns false once the user quits.
func (t *Terminal) Delay(ms int) bool {
	timer := time.NewTimer(time.Duration(ms) * time.Millisecond)
	defer timer.Stop()
	for !t.quitting {
		select {
		case ev := <-t.events:
			t.handle(ev)
		case <-timer.C:
			return true
		}
	}
	return false
}

func (t *Terminal) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			t.quitting = true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			t.quitting = true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
			t.reveal = !t.reveal
		case ev.Key() == tcell.KeyRune:
			if bit, ok := runeBits[ev.Rune()]; ok {
				t.press(bit)
			}
		default:
			if bit, ok := keyBits[ev.Key()]; ok {
				t.press(bit)
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

func (t *Terminal) press(bit uint32) {
	t.held[bit] = t.now().Add(t.hold)
}

// Display draws the known level around the player, one cell per tile.
func (t *Terminal) Display(f game.Frame) error {
	if f.Level == nil {
		return errors.New("nothing to display")
	}
	if t.reveal != t.revealed {
		f.Lighting.SetReveal(t.reveal)
		t.revealed = t.reveal
		log.WithField("reveal", t.reveal).Info("lighting")
	}

	t.screen.Clear()
	width, height := t.screen.Size()
	viewH := height - 1
	extents := f.Level.Size()
	offX := offset(f.Player.Position().X, width, extents.Width)
	offY := offset(f.Player.Position().Y, viewH, extents.Height)

	for y := 0; y < viewH; y++ {
		for x := 0; x < width; x++ {
			p := model.Point{X: x + offX, Y: y + offY}
			tile, ok := f.Lighting.TileAt(p)
			if !ok {
				continue
			}
			if tile == model.TILE_UNKNOWN {
				t.screen.SetContent(x, y, ' ', nil, unknownStyle)
				continue
			}
			c, ok := tile.Char()
			if !ok {
				c = '?'
			}
			t.screen.SetContent(x, y, c, nil, tcell.StyleDefault)
		}
	}

	for _, s := range f.Lighting.ShadowEntities() {
		t.put(s.Point, offX, offY, viewH, s.Type, shadowStyle)
	}
	store := f.Level.Store()
	for _, id := range f.Lighting.VisibleEntities() {
		e := store.ById(id)
		if e == nil {
			continue
		}
		style, ok := entityStyles[e.Type()]
		if !ok {
			style = tcell.StyleDefault
		}
		t.put(e.Position(), offX, offY, viewH, e.Type(), style)
	}

	status := fmt.Sprintf(" diamonds %d  bombs %d  tick %d ", f.Diamonds, f.Bombs, f.Tick)
	for i, c := range status {
		if i >= width {
			break
		}
		t.screen.SetContent(i, height-1, c, nil, statusStyle)
	}
	t.screen.Show()
	return nil
}

func (t *Terminal) put(p model.Point, offX, offY, viewH int, typ model.EntityType, style tcell.Style) {
	x, y := p.X-offX, p.Y-offY
	if x < 0 || y < 0 || y >= viewH {
		return
	}
	c, ok := typ.Char()
	if !ok {
		c = 'k'
	}
	t.screen.SetContent(x, y, c, nil, style)
}

func (t *Terminal) Close() {
	close(t.done)
	t.screen.Fini()
}

// offset scrolls so that pos stays centered, clamped to the level.
func offset(pos, view, size int) int {
	o := pos - view/2
	if o > size-view {
		o = size - view
	}
	if o < 0 {
		o = 0
	}
	return o
}
