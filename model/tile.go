package model

import "fmt"

type TileType int

const (
	TILE_UNKNOWN TileType = iota
	TILE_EMPTY
	TILE_DIRT
	TILE_STONE_WALL
	TILE_WEAK_STONE_WALL
	TILE_TELEPORTER
	TILE_LEFT_TRANSPORT
	TILE_RIGHT_TRANSPORT
	TILE_MAGIC_WALL
	TILE_CONVEYOR
	TILE_EXIT
)

var tileChars = map[rune]TileType{
	' ': TILE_EMPTY,
	'.': TILE_DIRT,
	'#': TILE_STONE_WALL,
	'w': TILE_WEAK_STONE_WALL,
	't': TILE_TELEPORTER,
	'<': TILE_LEFT_TRANSPORT,
	'>': TILE_RIGHT_TRANSPORT,
}

func (t TileType) Name() string {
	switch t {
	case TILE_UNKNOWN:
		return "UNKNOWN"
	case TILE_EMPTY:
		return "EMPTY"
	case TILE_DIRT:
		return "DIRT"
	case TILE_STONE_WALL:
		return "STONE_WALL"
	case TILE_WEAK_STONE_WALL:
		return "WEAK_STONE_WALL"
	case TILE_TELEPORTER:
		return "TELEPORTER"
	case TILE_LEFT_TRANSPORT:
		return "LEFT_TRANSPORT"
	case TILE_RIGHT_TRANSPORT:
		return "RIGHT_TRANSPORT"
	case TILE_MAGIC_WALL:
		return "MAGIC_WALL"
	case TILE_CONVEYOR:
		return "CONVEYOR"
	case TILE_EXIT:
		return "EXIT"
	default:
		return fmt.Sprintf("N/A(%d)", t)
	}
}

// Char returns the level-text character of t, false for tiles the text format can't hold.
func (t TileType) Char() (rune, bool) {
	for c, tt := range tileChars {
		if tt == t {
			return c, true
		}
	}
	return 0, false
}

// Passable reports whether the player can walk onto t.
func (t TileType) Passable() bool {
	return t == TILE_DIRT || t == TILE_EMPTY || t == TILE_TELEPORTER
}

func TileFromChar(c rune) (TileType, bool) {
	t, ok := tileChars[c]
	return t, ok
}
