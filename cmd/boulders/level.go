package main

import (
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/pkg/errors"
	"github.com/zucenko/boulders/game"
	"github.com/zucenko/boulders/level"
)

// loadLevel reads the level file at path, the built-in level when path is empty.
func loadLevel(path string) (string, error) {
	if path == "" {
		return game.DefaultLevel, nil
	}
	file, err := ebitenutil.OpenFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "opening level %s", path)
	}
	defer file.Close()
	return level.ReadString(file)
}
