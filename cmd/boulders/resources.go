package main

import (
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/boulders/anim"
	"image"
	"image/color"
	_ "image/png"
)

// fallback colors by sprite index, used when no sprite sheet is configured
var palette = map[int]color.RGBA{
	int(anim.IMAGE_PLAYER):   {230, 200, 60, 255},
	int(anim.IMAGE_BOULDER):  {140, 120, 100, 255},
	int(anim.IMAGE_GEM):      {80, 220, 240, 255},
	int(anim.IMAGE_BOMB):     {200, 40, 40, 255},
	int(anim.IMAGE_GHOST):    {220, 220, 255, 255},
	int(anim.IMAGE_FIREBALL): {255, 140, 0, 255},
	int(anim.IMAGE_KEY):      {200, 200, 200, 255},
	int(anim.IMAGE_BLOCK):    {90, 90, 90, 255},
}

// Resources hands out one tile-sized image per sprite index.
type Resources struct {
	sheet   *ebiten.Image
	size    int
	columns int
	cache   map[int]*ebiten.Image
}

func NewResources(sheetPath string, size int) (*Resources, error) {
	r := &Resources{size: size, cache: make(map[int]*ebiten.Image)}
	if sheetPath == "" {
		log.Info("no sprite sheet, drawing plain tiles")
		return r, nil
	}
	sheet, _, err := ebitenutil.NewImageFromFile(sheetPath, ebiten.FilterDefault)
	if err != nil {
		return nil, errors.Wrapf(err, "loading sprite sheet %s", sheetPath)
	}
	w, _ := sheet.Size()
	r.sheet = sheet
	r.columns = w / size
	if r.columns < 1 {
		return nil, errors.Errorf("sprite sheet %s narrower than one tile", sheetPath)
	}
	log.WithFields(log.Fields{"path": sheetPath, "columns": r.columns}).Info("sprite sheet loaded")
	return r, nil
}

// Sprite returns the image of the entry. Missing sprites come back as a flat tile.
func (r *Resources) Sprite(e anim.ImageEntry) *ebiten.Image {
	index := e.Sprite()
	if img, ok := r.cache[index]; ok {
		return img
	}
	img := r.cut(index)
	r.cache[index] = img
	return img
}

func (r *Resources) cut(index int) *ebiten.Image {
	if r.sheet != nil {
		x := (index % r.columns) * r.size
		y := (index / r.columns) * r.size
		return r.sheet.SubImage(image.Rect(x, y, x+r.size, y+r.size)).(*ebiten.Image)
	}
	img, err := ebiten.NewImage(r.size, r.size, ebiten.FilterDefault)
	if err != nil {
		log.WithError(err).Fatal("creating sprite")
	}
	if err := img.Fill(plainColor(index)); err != nil {
		log.WithError(err).Warn("filling sprite")
	}
	return img
}

func plainColor(index int) color.RGBA {
	if c, ok := palette[index]; ok {
		return c
	}
	tile := index - int(anim.IMAGE_TILES)
	switch {
	case tile == 0:
		return color.RGBA{20, 20, 20, 255}
	case tile == 1:
		return color.RGBA{0, 0, 0, 255}
	case tile == 2:
		return color.RGBA{110, 70, 30, 255}
	case tile >= 13 && tile <= 14:
		return color.RGBA{120, 120, 130, 255}
	case tile >= 15:
		return color.RGBA{150, 60, 200, 255}
	default:
		return color.RGBA{60, 120, 60, 255}
	}
}
