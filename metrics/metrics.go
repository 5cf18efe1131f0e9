package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/zucenko/boulders/entity"
	"github.com/zucenko/boulders/level"
	"github.com/zucenko/boulders/model"
	"github.com/zucenko/boulders/notify"
)

// Collector bundles the Prometheus metrics of the simulation.
type Collector struct {
	gatherer prometheus.Gatherer

	Ticks        prometheus.Counter
	TickDuration prometheus.Histogram
	Entities     prometheus.Gauge
	Created      *prometheus.CounterVec
	Removed      *prometheus.CounterVec
	Explosions   prometheus.Counter
	Collisions   prometheus.Counter
}

// NewCollector registers the metrics against reg, the global registry when nil.
// Registering twice against the same registry reuses the existing metrics.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	ticks, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "boulders_ticks_total",
		Help: "Number of simulation ticks run.",
	}), "boulders_ticks_total")
	if err != nil {
		return nil, err
	}

	duration, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "boulders_tick_duration_seconds",
		Help:    "Wall time spent in one simulation tick.",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
	}), "boulders_tick_duration_seconds")
	if err != nil {
		return nil, err
	}

	entities, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "boulders_entities",
		Help: "Current number of live entities.",
	}), "boulders_entities")
	if err != nil {
		return nil, err
	}

	created, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "boulders_entities_created_total",
		Help: "Entities created, labeled by type.",
	}, []string{"type"}), "boulders_entities_created_total")
	if err != nil {
		return nil, err
	}

	removed, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "boulders_entities_removed_total",
		Help: "Entities removed, labeled by type.",
	}, []string{"type"}), "boulders_entities_removed_total")
	if err != nil {
		return nil, err
	}

	explosions, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "boulders_explosions_total",
		Help: "Number of explosions.",
	}), "boulders_explosions_total")
	if err != nil {
		return nil, err
	}

	collisions, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "boulders_collisions_total",
		Help: "Number of entity collisions.",
	}), "boulders_collisions_total")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:     gatherer,
		Ticks:        ticks,
		TickDuration: duration,
		Entities:     entities,
		Created:      created,
		Removed:      removed,
		Explosions:   explosions,
		Collisions:   collisions,
	}, nil
}

// Watch counts the events of a loaded level. Release the cookies when the level goes away.
func (c *Collector) Watch(l *level.Level) notify.Cookies {
	if c == nil {
		return nil
	}
	store := l.Store()
	c.Entities.Set(float64(store.Count()))
	return notify.Cookies{
		store.OnCreation(func(e *entity.Entity) {
			c.Created.WithLabelValues(e.Type().Name()).Inc()
			c.Entities.Inc()
		}),
		store.OnRemoval(func(e *entity.Entity) {
			c.Removed.WithLabelValues(e.Type().Name()).Inc()
			c.Entities.Dec()
		}),
		store.OnCollision(func(entity.Collision) {
			c.Collisions.Inc()
		}),
		l.OnExplosion(func(model.Point) {
			c.Explosions.Inc()
		}),
	}
}

// ObserveTick records one tick that started at start.
func (c *Collector) ObserveTick(start time.Time) {
	if c == nil {
		return
	}
	c.Ticks.Inc()
	c.TickDuration.Observe(time.Since(start).Seconds())
}

// WriteTextfile dumps the gathered metrics in the text exposition format.
func (c *Collector) WriteTextfile(path string) error {
	if c == nil || path == "" {
		return nil
	}
	return errors.Wrapf(prometheus.WriteToTextfile(path, c.gatherer), "writing metrics to %s", path)
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, errors.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, errors.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, errors.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return h, nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, errors.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}
