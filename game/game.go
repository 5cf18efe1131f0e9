package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/boulders/anim"
	"github.com/zucenko/boulders/behavior"
	"github.com/zucenko/boulders/config"
	"github.com/zucenko/boulders/entity"
	"github.com/zucenko/boulders/level"
	"github.com/zucenko/boulders/lighting"
	"github.com/zucenko/boulders/metrics"
	"github.com/zucenko/boulders/model"
	"github.com/zucenko/boulders/notify"
)

// Current is everything that lives exactly as long as one loaded level.
type Current struct {
	Store     *entity.Store
	Level     *level.Level
	Props     *entity.Properties
	Lighting  *lighting.Lighting
	Engine    *behavior.Engine
	Animators *anim.Animators
	Tiles     *anim.LevelAnimator
	Player    *entity.Entity

	cookies notify.Cookies
}

func (c *Current) Close() {
	c.cookies.Release()
	c.Engine.Close()
	c.Animators.Close()
	c.Level.Close()
	c.Store.Close()
}

type Game struct {
	cfg     config.Config
	metrics *metrics.Collector
	input   model.Input
	current *Current
	ticks   int
}

// New creates a game without a level. The collector may be nil.
func New(cfg config.Config, m *metrics.Collector) *Game {
	return &Game{cfg: cfg, metrics: m}
}

// SetLevel replaces the current level. An invalid level leaves the current one untouched.
func (g *Game) SetLevel(data string) error {
	store := entity.NewStore()
	l, err := level.FromString(data, store)
	if err != nil {
		store.Close()
		return errors.Wrap(err, "loading level")
	}

	seed := g.cfg.Rules.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	props := entity.NewProperties()
	world := &behavior.World{
		Level: l,
		Props: props,
		Input: model.InputFunc(g.keys),
		Rand:  rand.New(rand.NewSource(seed)),
		Rules: g.cfg.Rules,
	}

	player := store.FirstOfType(model.ENTITY_PLAYER)
	player.SetFacing(model.DIR_DOWN)
	props.Set(player, entity.PROP_BOMBS, g.cfg.Rules.InitialBombs)

	c := &Current{
		Store:     store,
		Level:     l,
		Props:     props,
		Lighting:  lighting.New(l),
		Engine:    behavior.NewEngine(world),
		Animators: anim.NewAnimators(store, g.cfg.Display.TileSize, g.cfg.Display.FramesPerTick),
		Player:    player,
	}
	c.Tiles = anim.NewLevelAnimator(c.Lighting)
	c.cookies = append(c.cookies, g.metrics.Watch(l)...)
	c.cookies = append(c.cookies, store.OnRemoval(func(e *entity.Entity) {
		if e == player {
			log.WithFields(log.Fields{
				"position": e.Position(),
				"diamonds": props.Get(e, entity.PROP_DIAMONDS),
			}).Info("player died")
		}
	}))
	c.Lighting.Update(l.Illumination(player.Position(), player.Facing()))

	if g.current != nil {
		g.current.Close()
	}
	g.current = c
	g.ticks = 0

	log.WithFields(log.Fields{
		"seed":     seed,
		"entities": store.Count(),
	}).Info("level set")
	return nil
}

// SetInput binds the keys read by the player traits.
func (g *Game) SetInput(in model.Input) {
	g.input = in
}

func (g *Game) keys() uint32 {
	if g.input == nil {
		return 0
	}
	return g.input.Keys()
}

// Current returns the loaded level, nil before the first SetLevel.
func (g *Game) Current() *Current {
	return g.current
}

// Tick runs one simulation step of ms and refreshes what the player sees.
// It returns false once the player is gone.
func (g *Game) Tick(ms int) bool {
	c := g.current
	if c == nil {
		return false
	}
	start := time.Now()
	c.Engine.Run(ms)
	// a removed player still lights the place where it died
	c.Lighting.Update(c.Level.Illumination(c.Player.Position(), c.Player.Facing()))
	g.metrics.ObserveTick(start)
	g.ticks++
	return !c.Player.Removed()
}

// Frame describes the current level for display.
func (g *Game) Frame() Frame {
	c := g.current
	if c == nil {
		return Frame{Tick: g.ticks}
	}
	return Frame{
		Player:    c.Player,
		Level:     c.Level,
		Lighting:  c.Lighting,
		Animators: c.Animators,
		Tiles:     c.Tiles,
		Diamonds:  c.Props.Get(c.Player, entity.PROP_DIAMONDS),
		Bombs:     c.Props.Get(c.Player, entity.PROP_BOMBS),
		Tick:      g.ticks,
	}
}

// Play runs the current level until the player dies, io asks to quit or ctx is done.
// Each tick is shown as several animation frames spread over the tick.
func (g *Game) Play(ctx context.Context, io IO) (Outcome, error) {
	if g.current == nil {
		return OUTCOME_QUIT, errors.New("no level set")
	}
	g.SetInput(io)

	tickMs := g.cfg.Rules.TickMs
	frames := g.cfg.Display.FramesPerTick
	delay := tickMs / frames

	for {
		select {
		case <-ctx.Done():
			return OUTCOME_QUIT, ctx.Err()
		default:
		}

		alive := g.Tick(tickMs)
		for i := 0; i < frames; i++ {
			g.current.Animators.Animate()
			if err := io.Display(g.Frame()); err != nil {
				return OUTCOME_QUIT, errors.Wrap(err, "display")
			}
			if !io.Delay(delay) {
				log.WithField("tick", g.ticks).Info("quit")
				return OUTCOME_QUIT, nil
			}
		}
		if !alive {
			return OUTCOME_DEAD, nil
		}
	}
}

// Close releases the current level.
func (g *Game) Close() {
	if g.current != nil {
		g.current.Close()
		g.current = nil
	}
}
