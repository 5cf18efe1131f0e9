package main

import (
	"fmt"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/text"
	"github.com/pkg/errors"
	"github.com/zucenko/boulders/game"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"image/color"
)

const (
	hudWidth  = 220
	hudHeight = 90
)

// Hud shows the player's counters in a framed box. Labels are re-rendered only
// when their text changes.
type Hud struct {
	face   font.Face
	panel  *Nine
	labels map[string]*ebiten.Image
	lines  [2]string
}

func NewHud() (*Hud, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parsing hud font")
	}
	const dpi = 72
	face := truetype.NewFace(tt, &truetype.Options{
		Size:    24,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	panel, err := NewFramePanel(3)
	if err != nil {
		return nil, errors.Wrap(err, "creating hud panel")
	}
	panel.alpha = 0.85
	panel.SetPosition(10, 10)
	panel.SetSize(hudWidth, hudHeight)
	return &Hud{face: face, panel: panel, labels: make(map[string]*ebiten.Image)}, nil
}

func (h *Hud) Update(f game.Frame) {
	h.lines[0] = fmt.Sprintf("diamonds %d", f.Diamonds)
	h.lines[1] = fmt.Sprintf("bombs %d", f.Bombs)
}

func (h *Hud) Draw(screen *ebiten.Image) {
	h.panel.Draw(screen)
	for i, line := range h.lines {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(20, float64(16+i*34))
		_ = screen.DrawImage(h.label(line), op)
	}
}

func (h *Hud) label(s string) *ebiten.Image {
	if img, ok := h.labels[s]; ok {
		return img
	}
	img, _ := ebiten.NewImage(hudWidth-20, 34, ebiten.FilterLinear)
	text.Draw(img, s, h.face, 2, 26, color.White)
	h.labels[s] = img
	return img
}
