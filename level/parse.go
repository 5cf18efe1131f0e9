package level

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/boulders/entity"
	"github.com/zucenko/boulders/model"
)

var ErrInvalidLevel = errors.New("invalid level")

// FromString parses "<width> <height> <cells>". Cells are read left to right, top
// to bottom, newlines ignored. Entity characters spawn into store and leave an
// EMPTY tile behind. Nothing is spawned unless the whole string is valid.
func FromString(s string, store *entity.Store) (*Level, error) {
	size, data, err := split(s)
	if err != nil {
		return nil, err
	}

	cells := []rune(data)
	if len(cells) != size.Width*size.Height {
		return nil, errors.Wrapf(ErrInvalidLevel, "%d cells for a %dx%d level", len(cells), size.Width, size.Height)
	}

	players, teleporters := 0, 0
	for i, c := range cells {
		if t, ok := model.TileFromChar(c); ok {
			if t == model.TILE_TELEPORTER {
				teleporters++
			}
			continue
		}
		typ, ok := model.EntityFromChar(c)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidLevel, "unknown character %q at %v", c, pointOf(i, size))
		}
		if typ == model.ENTITY_PLAYER {
			players++
		}
	}
	if players == 0 {
		return nil, errors.Wrap(ErrInvalidLevel, "no player")
	}
	if teleporters == 1 {
		return nil, errors.Wrap(ErrInvalidLevel, "a lone teleporter has no destination")
	}

	l := New(size, model.TILE_EMPTY, store)
	for i, c := range cells {
		p := pointOf(i, size)
		if t, ok := model.TileFromChar(c); ok {
			l.SetTile(p, t)
			continue
		}
		store.CreateFromChar(c, p)
	}

	log.WithFields(l.logFields()).Info("level loaded")
	return l, nil
}

// FromReader reads a whole level file and parses it with FromString.
func FromReader(r io.Reader, store *entity.Store) (*Level, error) {
	s, err := ReadString(r)
	if err != nil {
		return nil, err
	}
	return FromString(s, store)
}

// ReadString reads a level file into the string form taken by FromString.
func ReadString(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)
	lines := make([]string, 0)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return "", errors.Wrap(err, "reading level")
	}
	return strings.Join(lines, "\n"), nil
}

// split returns the extents and the cell data with newlines stripped. Exactly one
// separator is consumed after the height, since a leading cell may be a space.
func split(s string) (model.Extents, string, error) {
	rest := strings.TrimLeftFunc(s, unicode.IsSpace)
	widthTok, rest := token(rest)
	rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
	heightTok, rest := token(rest)
	if widthTok == "" || heightTok == "" {
		return model.Extents{}, "", errors.Wrap(ErrInvalidLevel, "missing size")
	}

	width, err := strconv.ParseUint(widthTok, 10, 16)
	if err != nil {
		return model.Extents{}, "", errors.Wrapf(ErrInvalidLevel, "width %q", widthTok)
	}
	height, err := strconv.ParseUint(heightTok, 10, 16)
	if err != nil {
		return model.Extents{}, "", errors.Wrapf(ErrInvalidLevel, "height %q", heightTok)
	}

	_, sep := utf8.DecodeRuneInString(rest)
	rest = rest[sep:]
	rest = strings.NewReplacer("\r", "", "\n", "").Replace(rest)

	return model.Extents{Width: int(width), Height: int(height)}, rest, nil
}

func token(s string) (string, string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}

func pointOf(i int, size model.Extents) model.Point {
	return model.Point{X: i % size.Width, Y: i / size.Width}
}
