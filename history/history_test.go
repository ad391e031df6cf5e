// SPDX-License-Identifier: MIT

package history_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genesim/dish"
	"github.com/katalvlaran/genesim/history"
	"github.com/katalvlaran/genesim/initializer"
	"github.com/katalvlaran/genesim/laggraph"
	"github.com/katalvlaran/genesim/rng"
	"github.com/katalvlaran/genesim/update"
	"github.com/katalvlaran/genesim/window"
)

// counter is a noiseless update: every factor becomes its lag-1 value plus one.
type counter struct {
	ix     *laggraph.Indexed
	maxLag int
}

func (c counter) Value(i int, h *window.Window) float64 { return h.Value(1, i) + 1 }
func (c counter) NumFactors() int                       { return c.ix.NumFactors() }
func (c counter) MaxLag() int                           { return c.maxLag }
func (c counter) Graph() *laggraph.Indexed              { return c.ix }

// fill writes v into row 0 and flattens the window; calls counts invocations.
type fill struct {
	v     float64
	calls int
}

func (f *fill) Initialize(h *window.Window) error {
	f.calls++
	h.Fill(0, f.v)
	h.FillOlderFromNewest()
	return nil
}

func newCounter(t *testing.T, maxLag int, factors ...string) counter {
	t.Helper()
	g := laggraph.New()
	for _, f := range factors {
		require.NoError(t, g.AddFactor(f))
	}
	return counter{ix: laggraph.Compile(g, false), maxLag: maxLag}
}

// glassHistory builds a 3-gene Glass history with a basal initializer from seed.
func glassHistory(t *testing.T, seed int64, opts ...history.Option) *history.History {
	t.Helper()
	src := rng.New(seed)
	g := laggraph.New(laggraph.WithMaxLagAllowable(2))
	for _, f := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddFactor(f))
	}
	require.NoError(t, g.AddEdge("A", laggraph.LaggedFactor{Factor: "C", Lag: 1}))
	require.NoError(t, g.AddEdge("B", laggraph.LaggedFactor{Factor: "A", Lag: 2}))
	require.NoError(t, g.AddEdge("C", laggraph.LaggedFactor{Factor: "B", Lag: 1}))
	fn, err := update.NewBooleanGlass(g, src)
	require.NoError(t, err)
	basal, err := initializer.NewBasal(fn, 0, 0.5, src)
	require.NoError(t, err)
	h, err := history.New(basal, fn, opts...)
	require.NoError(t, err)
	return h
}

func TestNew_Validation(t *testing.T) {
	fn := newCounter(t, 1, "A")
	_, err := history.New(nil, fn)
	assert.ErrorIs(t, err, history.ErrNilInitializer)
	_, err = history.New(&fill{}, nil)
	assert.ErrorIs(t, err, history.ErrNilFunction)
}

func TestUpdate_BeforeInitialize(t *testing.T) {
	h, err := history.New(&fill{}, newCounter(t, 1, "A"))
	require.NoError(t, err)
	assert.ErrorIs(t, h.Update(), history.ErrNotInitialized)
}

// After Initialize and N updates, row k holds the slice k steps before step N-1.
func TestUpdate_RotationInvariant(t *testing.T) {
	const maxLag = 3
	h, err := history.New(&fill{}, newCounter(t, maxLag, "A", "B"))
	require.NoError(t, err)
	require.NoError(t, h.Initialize())
	assert.Equal(t, -1, h.Step())
	require.Len(t, h.HistoryArray(), maxLag+1)

	for n := 1; n <= 7; n++ {
		require.NoError(t, h.Update())
		assert.Equal(t, n-1, h.Step())
		arr := h.HistoryArray()
		for k := 0; k <= maxLag; k++ {
			want := float64(max(n-k, 0))
			assert.Equal(t, []float64{want, want}, arr[k], "n=%d lag=%d", n, k)
		}
	}
}

func TestUpdate_AsynchronousPeriod(t *testing.T) {
	h, err := history.New(&fill{}, newCounter(t, 1, "A", "B"))
	require.NoError(t, err)
	require.NoError(t, h.SetUpdatePeriod(0, 2))
	require.NoError(t, h.Initialize())

	var a, b []float64
	for i := 0; i < 6; i++ {
		require.NoError(t, h.Update())
		a = append(a, h.Window().Value(0, 0))
		b = append(b, h.Window().Value(0, 1))
	}
	// A recomputes on steps 0, 2, 4 and holds on 1, 3, 5.
	assert.Equal(t, []float64{1, 1, 2, 2, 3, 3}, a)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, b)
}

func TestSetUpdatePeriod_Validation(t *testing.T) {
	h, err := history.New(&fill{}, newCounter(t, 1, "A"))
	require.NoError(t, err)
	assert.ErrorIs(t, h.SetUpdatePeriod(0, 0), history.ErrBadUpdatePeriod)
	assert.ErrorIs(t, h.SetUpdatePeriod(1, 2), history.ErrBadFactor)
	_, err = h.UpdatePeriod(-1)
	assert.ErrorIs(t, err, history.ErrBadFactor)
	p, err := h.UpdatePeriod(0)
	require.NoError(t, err)
	assert.Equal(t, 1, p)
}

func TestInitialize_SyncCachesOneDraw(t *testing.T) {
	f := &fill{v: 2}
	h, err := history.New(f, newCounter(t, 1, "A"))
	require.NoError(t, err)
	assert.True(t, h.InitSync())
	assert.Nil(t, h.SyncInitialization())

	for i := 0; i < 3; i++ {
		require.NoError(t, h.Initialize())
		require.NoError(t, h.Update())
	}
	assert.Equal(t, 1, f.calls)
	assert.Equal(t, [][]float64{{2}, {2}}, h.SyncInitialization())

	h.Reset()
	assert.Nil(t, h.SyncInitialization())
	require.NoError(t, h.Initialize())
	assert.Equal(t, 2, f.calls)

	h.SetInitSync(false)
	require.NoError(t, h.Initialize())
	require.NoError(t, h.Initialize())
	assert.Equal(t, 4, f.calls)
}

func TestInitialize_SyncDeterminism(t *testing.T) {
	a := glassHistory(t, 42)
	b := glassHistory(t, 42)
	require.NoError(t, a.Initialize())
	require.NoError(t, b.Initialize())
	assert.Equal(t, a.SyncInitialization(), b.SyncInitialization())

	require.NoError(t, a.Update())
	require.NoError(t, b.Update())
	assert.Equal(t, a.HistoryArray()[0], b.HistoryArray()[0])
}

func TestInitialize_FreshDrawsDiffer(t *testing.T) {
	h := glassHistory(t, 42, history.WithInitSync(false))
	require.NoError(t, h.Initialize())
	first := h.Window().Clone().Snapshot()
	require.NoError(t, h.Initialize())
	assert.NotEqual(t, first, h.HistoryArray())
	assert.Nil(t, h.SyncInitialization())
}

func TestInitialize_DishBump(t *testing.T) {
	m, err := dish.New(2, 10, rng.New(3))
	require.NoError(t, err)
	h, err := history.New(&fill{v: 1}, newCounter(t, 1, "A"), history.WithDishModel(m))
	require.NoError(t, err)
	require.Same(t, m, h.DishModel())

	for d := 0; d < m.NumDishes(); d++ {
		require.NoError(t, m.SetDishNumber(d))
		require.NoError(t, h.Initialize())
		assert.InDelta(t, m.Bump(d)/100, h.Window().Value(0, 0), 1e-12, "dish %d", d)
		assert.InDelta(t, m.Bump(d)/100, h.Window().Value(1, 0), 1e-12, "dish %d", d)
	}
	assert.Equal(t, [][]float64{{1}, {1}}, h.SyncInitialization(), "bumps never touch the cache")
}

func TestAccessors(t *testing.T) {
	h := glassHistory(t, 1)
	assert.Equal(t, 3, h.NumFactors())
	assert.Equal(t, "B", h.Factor(1))
	assert.Equal(t, 2, h.MaxLag())
	assert.NotNil(t, h.Function())
	assert.NotNil(t, h.Initializer())
}
