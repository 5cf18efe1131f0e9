package model

// Pressed-key bits as reported by an Input.
const (
	KEY_UP      uint32 = 1
	KEY_DOWN    uint32 = 2
	KEY_LEFT    uint32 = 4
	KEY_RIGHT   uint32 = 8
	KEY_OPERATE uint32 = 16
	KEY_BOMB    uint32 = 32

	KEY_DIRECTIONS = KEY_UP | KEY_DOWN | KEY_LEFT | KEY_RIGHT
)

// Input reports the currently pressed keys. It is polled once per player trait run.
type Input interface {
	Keys() uint32
}

// InputFunc adapts a plain function to Input.
type InputFunc func() uint32

func (f InputFunc) Keys() uint32 {
	return f()
}

// KeysToDirection picks the first matching direction bit, LEFT > RIGHT > UP > DOWN.
func KeysToDirection(keys uint32) Direction {
	switch {
	case keys&KEY_LEFT != 0:
		return DIR_LEFT
	case keys&KEY_RIGHT != 0:
		return DIR_RIGHT
	case keys&KEY_UP != 0:
		return DIR_UP
	case keys&KEY_DOWN != 0:
		return DIR_DOWN
	}
	return DIR_NONE
}
