package entity

const (
	PROP_DIAMONDS = "diamonds"
	PROP_BOMBS    = "bombs"
)

// Properties keeps scalar counters per entity. Missing keys read as zero.
type Properties struct {
	values map[uint32]map[string]int
}

func NewProperties() *Properties {
	return &Properties{values: make(map[uint32]map[string]int)}
}

func (p *Properties) Get(e *Entity, key string) int {
	return p.values[e.id][key]
}

func (p *Properties) Set(e *Entity, key string, value int) {
	m, ok := p.values[e.id]
	if !ok {
		m = make(map[string]int)
		p.values[e.id] = m
	}
	m[key] = value
}

// Add changes a counter by delta and returns the new value.
func (p *Properties) Add(e *Entity, key string, delta int) int {
	v := p.Get(e, key) + delta
	p.Set(e, key, v)
	return v
}
