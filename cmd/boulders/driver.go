package main

import (
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/boulders/anim"
	"github.com/zucenko/boulders/config"
	"github.com/zucenko/boulders/game"
	"github.com/zucenko/boulders/model"
	"image/color"
)

var errQuit = errors.New("quit")

// how long the last frame stays up after the player died
const deathFrames = 90

var keyBindings = map[ebiten.Key]uint32{
	ebiten.KeyUp:      model.KEY_UP,
	ebiten.KeyW:       model.KEY_UP,
	ebiten.KeyDown:    model.KEY_DOWN,
	ebiten.KeyS:       model.KEY_DOWN,
	ebiten.KeyLeft:    model.KEY_LEFT,
	ebiten.KeyA:       model.KEY_LEFT,
	ebiten.KeyRight:   model.KEY_RIGHT,
	ebiten.KeyD:       model.KEY_RIGHT,
	ebiten.KeyControl: model.KEY_OPERATE,
	ebiten.KeySpace:   model.KEY_BOMB,
}

// driver runs one animation frame per ebiten update and a game tick every
// FramesPerTick frames.
type driver struct {
	game      *game.Game
	cfg       config.Config
	resources *Resources
	hud       *Hud
	frame     int
	dead      int
	reveal    bool
	outcome   game.Outcome
}

func newDriver(g *game.Game, cfg config.Config) (*driver, error) {
	res, err := NewResources(cfg.Display.SpriteSheet, cfg.Display.TileSize)
	if err != nil {
		return nil, err
	}
	hud, err := NewHud()
	if err != nil {
		return nil, err
	}
	d := &driver{game: g, cfg: cfg, resources: res, hud: hud, outcome: game.OUTCOME_QUIT}
	g.SetInput(model.InputFunc(d.keys))
	return d, nil
}

func (d *driver) keys() uint32 {
	var keys uint32
	for k, bit := range keyBindings {
		if ebiten.IsKeyPressed(k) {
			keys |= bit
		}
	}
	return keys
}

func (d *driver) update(screen *ebiten.Image) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}
	current := d.game.Current()
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		d.reveal = !d.reveal
		current.Lighting.SetReveal(d.reveal)
		log.WithField("reveal", d.reveal).Info("lighting")
	}

	if d.dead > 0 {
		d.dead++
		if d.dead > deathFrames {
			return errQuit
		}
	} else if d.frame == 0 && !d.game.Tick(d.cfg.Rules.TickMs) {
		d.outcome = game.OUTCOME_DEAD
		d.dead = 1
	}
	current.Animators.Animate()
	d.frame = (d.frame + 1) % d.cfg.Display.FramesPerTick

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	return d.draw(screen, d.game.Frame())
}

func (d *driver) draw(screen *ebiten.Image, f game.Frame) error {
	if err := screen.Fill(color.Black); err != nil {
		return err
	}
	size := d.cfg.Display.TileSize
	offX, offY := d.camera(f)

	extents := f.Level.Size()
	for y := 0; y < extents.Height; y++ {
		for x := 0; x < extents.Width; x++ {
			px, py := float64(x*size)-offX, float64(y*size)-offY
			if px < -float64(size) || py < -float64(size) || px > screenWidth || py > screenHeight {
				continue
			}
			d.blit(screen, f.Tiles.ImageEntryAt(model.Point{X: x, Y: y}), px, py, 1)
		}
	}

	for _, s := range f.Lighting.ShadowEntities() {
		entry := anim.EntityImage(s.Type, model.DIR_NONE)
		d.blit(screen, entry, float64(s.Point.X*size)-offX, float64(s.Point.Y*size)-offY, 0.4)
	}
	for _, id := range f.Lighting.VisibleEntities() {
		a := f.Animators.Get(id)
		if a == nil {
			continue
		}
		pos := a.PixelPosition()
		d.blit(screen, a.Frame(), float64(pos.X)-offX, float64(pos.Y)-offY, 1)
	}

	d.hud.Update(f)
	d.hud.Draw(screen)
	if d.dead > 0 {
		ebitenutil.DebugPrintAt(screen, "you died", screenWidth/2-24, screenHeight/2)
	}
	return nil
}

func (d *driver) blit(screen *ebiten.Image, entry anim.ImageEntry, x, y, light float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(light, light, light, 1)
	if err := screen.DrawImage(d.resources.Sprite(entry), op); err != nil {
		log.WithError(err).Warn("draw")
	}
}

// camera keeps the player centered without scrolling past the level border.
func (d *driver) camera(f game.Frame) (float64, float64) {
	size := d.cfg.Display.TileSize
	center := anim.Position{
		X: float32(f.Player.Position().X * size),
		Y: float32(f.Player.Position().Y * size),
	}
	if a := f.Animators.Get(f.Player.Id()); a != nil {
		center = a.PixelPosition()
	}
	extents := f.Level.Size()
	x := clamp(float64(center.X)+float64(size)/2-screenWidth/2, float64(extents.Width*size-screenWidth))
	y := clamp(float64(center.Y)+float64(size)/2-screenHeight/2, float64(extents.Height*size-screenHeight))
	return x, y
}

func clamp(v, max float64) float64 {
	if v > max {
		v = max
	}
	if v < 0 {
		v = 0
	}
	return v
}
