package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/boulders/entity"
	"github.com/zucenko/boulders/level"
	"github.com/zucenko/boulders/model"
)

func TestWatchCountsLevelEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	store := entity.NewStore()
	l, err := level.FromString("5 5 "+
		"....."+
		"....."+
		"..o.."+
		"....."+
		"....p", store)
	require.NoError(t, err)

	cookies := c.Watch(l)
	defer cookies.Release()
	store.OnCollision(func(col entity.Collision) {
		col.Other.Remove()
	})
	assert.Equal(t, 2.0, testutil.ToFloat64(c.Entities))

	l.Explode(model.Point{X: 2, Y: 2})
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Explosions))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Removed.WithLabelValues("BOULDER")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.Removed.WithLabelValues("PLAYER")))
	fireballs := testutil.ToFloat64(c.Created.WithLabelValues("FIREBALL"))
	assert.Equal(t, 11.0, fireballs)
	assert.Equal(t, float64(store.Count()), testutil.ToFloat64(c.Entities))
	assert.Positive(t, testutil.ToFloat64(c.Collisions), "the fireball on the boulder's cell collides")
	assert.Equal(t, 12.0, testutil.ToFloat64(c.Entities))
}

func TestWatchStopsAfterRelease(t *testing.T) {
	c, err := NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)
	store := entity.NewStore()
	l, err := level.FromString("2 1 p ", store)
	require.NoError(t, err)

	c.Watch(l).Release()
	store.Create(model.ENTITY_BOMB, model.Point{X: 1, Y: 0})
	assert.Equal(t, 0.0, testutil.ToFloat64(c.Created.WithLabelValues("BOMB")))
}

func TestRegisteringTwiceReusesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	one, err := NewCollector(reg)
	require.NoError(t, err)
	other, err := NewCollector(reg)
	require.NoError(t, err)

	one.ObserveTick(time.Now())
	assert.Equal(t, 1.0, testutil.ToFloat64(other.Ticks))
	assert.Equal(t, 1, testutil.CollectAndCount(other.TickDuration))
}

func TestNilCollectorIsSilent(t *testing.T) {
	var c *Collector
	store := entity.NewStore()
	l, err := level.FromString("1 1 p", store)
	require.NoError(t, err)
	assert.Nil(t, c.Watch(l))
	c.ObserveTick(time.Now())
	assert.NoError(t, c.WriteTextfile("ignored"))
}

func TestWriteTextfile(t *testing.T) {
	c, err := NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)
	c.Ticks.Add(3)

	path := filepath.Join(t.TempDir(), "boulders.prom")
	require.NoError(t, c.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "boulders_ticks_total 3"))

	err = c.WriteTextfile(filepath.Join(t.TempDir(), "missing", "boulders.prom"))
	assert.Error(t, err)
}
