package anim

import (
	"fmt"

	"github.com/zucenko/boulders/model"
)

// Image is the index of the first sprite of an image in the sprite sheet.
// Multi-frame images occupy consecutive sprites, so a sprite index is Image+Frame.
type Image int

const (
	IMAGE_PLAYER   Image = 0
	IMAGE_BOULDER  Image = 4
	IMAGE_GEM      Image = 5
	IMAGE_BOMB     Image = 8
	IMAGE_GHOST    Image = 9
	IMAGE_FIREBALL Image = 10
	IMAGE_KEY      Image = 12
	IMAGE_BLOCK    Image = 15
	IMAGE_LEVER    Image = 16

	IMAGE_TILES Image = 17
)

func (i Image) Name() string {
	switch i {
	case IMAGE_PLAYER:
		return "PLAYER"
	case IMAGE_BOULDER:
		return "BOULDER"
	case IMAGE_GEM:
		return "GEM"
	case IMAGE_BOMB:
		return "BOMB"
	case IMAGE_GHOST:
		return "GHOST"
	case IMAGE_FIREBALL:
		return "FIREBALL"
	case IMAGE_KEY:
		return "KEY"
	case IMAGE_BLOCK:
		return "BLOCK"
	case IMAGE_LEVER:
		return "LEVER"
	case IMAGE_TILES:
		return "TILES"
	default:
		return fmt.Sprintf("N/A(%d)", i)
	}
}

type ImageEntry struct {
	Image Image
	Frame int
}

// Sprite is the position of the entry in the sprite sheet.
func (e ImageEntry) Sprite() int {
	return int(e.Image) + e.Frame
}

// EntityImage picks the sprite for an entity. Players turn with their facing,
// keys differ by kind.
func EntityImage(typ model.EntityType, facing model.Direction) ImageEntry {
	switch typ {
	case model.ENTITY_PLAYER:
		frame := 0
		if facing != model.DIR_NONE {
			frame = int(facing)
		}
		return ImageEntry{Image: IMAGE_PLAYER, Frame: frame}
	case model.ENTITY_BOULDER:
		return ImageEntry{Image: IMAGE_BOULDER}
	case model.ENTITY_DIAMOND:
		return ImageEntry{Image: IMAGE_GEM}
	case model.ENTITY_BOMB:
		return ImageEntry{Image: IMAGE_BOMB}
	case model.ENTITY_GHOST:
		return ImageEntry{Image: IMAGE_GHOST}
	case model.ENTITY_FIREBALL:
		return ImageEntry{Image: IMAGE_FIREBALL}
	case model.ENTITY_IRON_KEY:
		return ImageEntry{Image: IMAGE_KEY}
	case model.ENTITY_GOLD_KEY:
		return ImageEntry{Image: IMAGE_KEY, Frame: 1}
	case model.ENTITY_RED_KEY:
		return ImageEntry{Image: IMAGE_KEY, Frame: 2}
	default:
		return ImageEntry{Image: IMAGE_BLOCK}
	}
}

var tileFrames = map[model.TileType]int{
	model.TILE_UNKNOWN:         0,
	model.TILE_EMPTY:           1,
	model.TILE_DIRT:            2,
	model.TILE_MAGIC_WALL:      4,
	model.TILE_LEFT_TRANSPORT:  5,
	model.TILE_RIGHT_TRANSPORT: 6,
	model.TILE_STONE_WALL:      13,
	model.TILE_WEAK_STONE_WALL: 14,
	model.TILE_TELEPORTER:      15,
	model.TILE_EXIT:            17,
	model.TILE_CONVEYOR:        19,
}

// TileImage maps a tile to its frame of the tile strip.
func TileImage(tile model.TileType) ImageEntry {
	return ImageEntry{Image: IMAGE_TILES, Frame: tileFrames[tile]}
}
