package entity

import (
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/boulders/model"
	"github.com/zucenko/boulders/notify"
)

type Movement struct {
	Entity   *Entity
	From, To model.Point
}

type Collision struct {
	One, Other *Entity
}

// Store is the registry of all live entities of one level, indexed by id and by point.
type Store struct {
	byID    map[uint32]*Entity
	byPoint map[model.Point]*Entity

	// live entities per point, above one only after a collision
	occupants map[model.Point]int

	creation  *notify.Notifier[*Entity]
	removal   *notify.Notifier[*Entity]
	movement  *notify.Notifier[Movement]
	collision *notify.Notifier[Collision]
}

func NewStore() *Store {
	return &Store{
		byID:      make(map[uint32]*Entity),
		byPoint:   make(map[model.Point]*Entity),
		occupants: make(map[model.Point]int),
		creation:  notify.New[*Entity](),
		removal:   notify.New[*Entity](),
		movement:  notify.New[Movement](),
		collision: notify.New[Collision](),
	}
}

// Create registers a new entity. Creating on an occupied point does not fail;
// it fires a collision between the new and the existing entity.
func (s *Store) Create(typ model.EntityType, where model.Point) *Entity {
	e := &Entity{
		id:     lastID.Add(1),
		typ:    typ,
		pos:    where,
		facing: model.DIR_NONE,
		store:  s,
	}
	existing := s.byPoint[where]

	s.byID[e.id] = e
	s.byPoint[where] = e
	s.occupants[where]++

	s.creation.Dispatch(e)
	if existing != nil && !existing.removed && !e.removed {
		s.collision.Dispatch(Collision{One: e, Other: existing})
	}
	return e
}

// CreateFromChar creates the entity a level character stands for.
func (s *Store) CreateFromChar(c rune, where model.Point) (*Entity, bool) {
	typ, ok := model.EntityFromChar(c)
	if !ok {
		return nil, false
	}
	return s.Create(typ, where), true
}

// ByPoint returns the entity at p, nil if there is none.
func (s *Store) ByPoint(p model.Point) *Entity {
	return s.byPoint[p]
}

// ById returns the live entity with id, nil if there is none.
func (s *Store) ById(id uint32) *Entity {
	return s.byID[id]
}

// All returns the live entities ordered by id.
func (s *Store) All() []*Entity {
	out := make([]*Entity, 0, len(s.byID))
	for _, e := range s.byID {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].id < out[j].id
	})
	return out
}

func (s *Store) Count() int {
	return len(s.byID)
}

// FirstOfType returns the live entity of typ with the lowest id.
func (s *Store) FirstOfType(typ model.EntityType) *Entity {
	var found *Entity
	for _, e := range s.byID {
		if e.typ == typ && (found == nil || e.id < found.id) {
			found = e
		}
	}
	return found
}

func (s *Store) OnCreation(fn func(*Entity)) *notify.Cookie {
	return s.creation.Subscribe(fn)
}

func (s *Store) OnRemoval(fn func(*Entity)) *notify.Cookie {
	return s.removal.Subscribe(fn)
}

func (s *Store) OnMovement(fn func(Movement)) *notify.Cookie {
	return s.movement.Subscribe(fn)
}

func (s *Store) OnCollision(fn func(Collision)) *notify.Cookie {
	return s.collision.Subscribe(fn)
}

// Close drops every subscription. Outstanding cookies become no-ops.
func (s *Store) Close() {
	s.creation.Close()
	s.removal.Close()
	s.movement.Close()
	s.collision.Close()
}

func (s *Store) move(e *Entity, dst model.Point) {
	from := e.pos
	other := s.byPoint[dst]

	e.pos = dst
	s.leave(e, from)
	s.byPoint[dst] = e
	s.occupants[dst]++

	s.movement.Dispatch(Movement{Entity: e, From: from, To: dst})
	if other != nil && other != e && !other.removed && !e.removed {
		s.collision.Dispatch(Collision{One: e, Other: other})
	}
}

func (s *Store) remove(e *Entity) {
	e.removed = true
	log.WithFields(log.Fields{"entity": e.String()}).Debug("entity removed")

	s.removal.Dispatch(e)

	delete(s.byID, e.id)
	s.leave(e, e.pos)
}

// leave drops e from the cell p. The point index is rebuilt only when another
// entity still stands there.
func (s *Store) leave(e *Entity, p model.Point) {
	s.occupants[p]--
	if s.occupants[p] <= 0 {
		delete(s.occupants, p)
	}
	if s.byPoint[p] != e {
		return
	}
	delete(s.byPoint, p)
	if s.occupants[p] > 0 {
		s.reindex(p)
	}
}

// reindex points p at the oldest live entity standing on it.
func (s *Store) reindex(p model.Point) {
	var found *Entity
	for _, e := range s.byID {
		if e.pos == p && !e.removed && (found == nil || e.id < found.id) {
			found = e
		}
	}
	if found != nil {
		s.byPoint[p] = found
	}
}
