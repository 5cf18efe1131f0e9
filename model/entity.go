package model

import "fmt"

type EntityType int

const (
	ENTITY_BOULDER EntityType = iota
	ENTITY_BLOCK
	ENTITY_GHOST
	ENTITY_PLAYER
	ENTITY_DIAMOND
	ENTITY_BOMB
	ENTITY_FIREBALL
	ENTITY_IRON_KEY
	ENTITY_GOLD_KEY
	ENTITY_RED_KEY
)

var entityChars = map[rune]EntityType{
	'o': ENTITY_BOULDER,
	'p': ENTITY_PLAYER,
	'd': ENTITY_DIAMOND,
	'b': ENTITY_BOMB,
	'f': ENTITY_FIREBALL,
	'g': ENTITY_GHOST,
}

func (t EntityType) Name() string {
	switch t {
	case ENTITY_BOULDER:
		return "BOULDER"
	case ENTITY_BLOCK:
		return "BLOCK"
	case ENTITY_GHOST:
		return "GHOST"
	case ENTITY_PLAYER:
		return "PLAYER"
	case ENTITY_DIAMOND:
		return "DIAMOND"
	case ENTITY_BOMB:
		return "BOMB"
	case ENTITY_FIREBALL:
		return "FIREBALL"
	case ENTITY_IRON_KEY:
		return "IRON_KEY"
	case ENTITY_GOLD_KEY:
		return "GOLD_KEY"
	case ENTITY_RED_KEY:
		return "RED_KEY"
	default:
		return fmt.Sprintf("N/A(%d)", t)
	}
}

func EntityFromChar(c rune) (EntityType, bool) {
	t, ok := entityChars[c]
	return t, ok
}

// Char returns the level character that spawns t, if there is one.
func (t EntityType) Char() (rune, bool) {
	for c, typ := range entityChars {
		if typ == t {
			return c, true
		}
	}
	return 0, false
}
