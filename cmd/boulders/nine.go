package main

import (
	"github.com/hajimehoshi/ebiten"
	"image"
	"image/color"
)

// Nine draws a nine-slice frame: corners keep their size, edges and center stretch.
type Nine struct {
	images          *ebiten.Image
	alpha           float64
	R, G, B         float64
	positions       [4][2]int
	x, y            int
	width, height   int
	scaleCenterW    float64
	scaleCenterH    float64
	targetPositions [3][2]float64
}

// NewFramePanel builds a Nine over a generated bordered square.
func NewFramePanel(border int) (*Nine, error) {
	side := border*2 + 1
	src := image.NewRGBA(image.Rect(0, 0, side, side))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			c := color.RGBA{30, 30, 40, 220}
			if x < border || y < border || x >= side-border || y >= side-border {
				c = color.RGBA{180, 180, 200, 255}
			}
			src.Set(x, y, c)
		}
	}
	img, err := ebiten.NewImageFromImage(src, ebiten.FilterDefault)
	if err != nil {
		return nil, err
	}
	return &Nine{
		images: img,
		alpha:  1,
		R:      1, G: 1, B: 1,
		positions: [4][2]int{{0, 0}, {border, border}, {border + 1, border + 1}, {side, side}},
	}, nil
}

func (n *Nine) SetPosition(x, y int) {
	n.x = x
	n.y = y
	n.SetSize(n.width, n.height)
}

func (n *Nine) SetSize(width, height int) {
	n.width = width
	n.height = height
	n.targetPositions[0][0] = float64(n.x)
	n.targetPositions[0][1] = float64(n.y)

	n.targetPositions[1][0] = float64(n.x + n.positions[1][0])
	n.targetPositions[1][1] = float64(n.y + n.positions[1][1])

	n.targetPositions[2][0] = float64(n.x + n.width - (n.positions[3][0] - n.positions[2][0]))
	n.targetPositions[2][1] = float64(n.y + n.height - (n.positions[3][1] - n.positions[2][1]))

	innerWidth := n.targetPositions[2][0] - n.targetPositions[1][0]
	innerHeight := n.targetPositions[2][1] - n.targetPositions[1][1]

	n.scaleCenterW = innerWidth / float64(n.positions[2][0]-n.positions[1][0])
	n.scaleCenterH = innerHeight / float64(n.positions[2][1]-n.positions[1][1])
}

func (n *Nine) Draw(screen *ebiten.Image) {
	scales := [3]float64{1, n.scaleCenterW, 1}
	vscales := [3]float64{1, n.scaleCenterH, 1}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(scales[col], vscales[row])
			op.GeoM.Translate(n.targetPositions[col][0], n.targetPositions[row][1])
			op.ColorM.Scale(n.R, n.G, n.B, n.alpha)
			part := image.Rect(n.positions[col][0], n.positions[row][1], n.positions[col+1][0], n.positions[row+1][1])
			_ = screen.DrawImage(n.images.SubImage(part).(*ebiten.Image), op)
		}
	}
}
