// SPDX-License-Identifier: MIT

package history

import (
	"fmt"

	"github.com/katalvlaran/genesim/dish"
	"github.com/katalvlaran/genesim/initializer"
	"github.com/katalvlaran/genesim/update"
	"github.com/katalvlaran/genesim/window"
)

// Option configures a History before creation.
type Option func(h *History)

// WithInitSync selects synchronized (true, the default) or fresh initialization.
func WithInitSync(sync bool) Option {
	return func(h *History) { h.initSync = sync }
}

// WithDishModel installs a dish model whose selected bump scales every initialization.
func WithDishModel(m *dish.Model) Option {
	return func(h *History) { h.dish = m }
}

// History is the orchestrator of one simulated time series.
//
// The zero value is not usable; construct with New. A History is not safe
// for concurrent use: Update mutates the shared window in place, so run one
// History per goroutine.
type History struct {
	init    initializer.Initializer
	fn      update.Function
	win     *window.Window
	sync    *window.Window // cached synchronized draw; nil until needed
	periods []int
	dish    *dish.Model

	initSync    bool
	initialized bool
	step        int
}

// New allocates a (MaxLag+1) × NumFactors window sized by fn. Every factor
// starts with update period 1 and initialization is synchronized unless
// WithInitSync(false) is given.
//
// Errors:
//   - ErrNilInitializer: ini is nil.
//   - ErrNilFunction: fn is nil.
//
// Complexity: O(MaxLag·F).
func New(ini initializer.Initializer, fn update.Function, opts ...Option) (*History, error) {
	if ini == nil {
		return nil, fmt.Errorf("history.New: %w", ErrNilInitializer)
	}
	if fn == nil {
		return nil, fmt.Errorf("history.New: %w", ErrNilFunction)
	}
	win, err := window.New(fn.MaxLag()+1, fn.NumFactors())
	if err != nil {
		return nil, fmt.Errorf("history.New: %w", err)
	}
	h := &History{
		init:     ini,
		fn:       fn,
		win:      win,
		periods:  make([]int, fn.NumFactors()),
		initSync: true,
		step:     -1,
	}
	for i := range h.periods {
		h.periods[i] = 1
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Initialize fills the window and resets Step to -1.
//
// With InitSync the first call draws into a cached buffer and every call
// copies that buffer; otherwise the initializer draws afresh. Either way the
// selected dish bump, if a dish model is installed, is then applied.
//
// Errors:
//   - any error of the initializer, wrapped.
//
// Determinism: in sync mode every call after the first consumes no
// randomness, so all cells of a run start from the same draw (before the
// dish bump).
//
// Complexity: O(MaxLag·F).
func (h *History) Initialize() error {
	if h.initSync {
		if h.sync == nil {
			sync, err := window.New(h.win.Depth(), h.win.NumFactors())
			if err != nil {
				return fmt.Errorf("Initialize: %w", err)
			}
			if err := h.init.Initialize(sync); err != nil {
				return fmt.Errorf("Initialize: %w", err)
			}
			h.sync = sync
		}
		if err := h.win.CopyFrom(h.sync); err != nil {
			return fmt.Errorf("Initialize: %w", err)
		}
	} else if err := h.init.Initialize(h.win); err != nil {
		return fmt.Errorf("Initialize: %w", err)
	}

	if h.dish != nil {
		h.dish.BumpInitialization(h.win)
	}
	h.step = -1
	h.initialized = true
	return nil
}

// Update advances one step. A factor whose period does not divide the new
// step carries its previous value forward.
//
// Errors:
//   - ErrNotInitialized: Initialize has never succeeded.
//
// Determinism: factors are evaluated in index order, so the noise draws of
// one step follow a fixed sequence for a given source state.
//
// Complexity: O(F·P) for F factors with at most P parents; no allocation.
func (h *History) Update() error {
	if !h.initialized {
		return fmt.Errorf("Update: %w", ErrNotInitialized)
	}
	row := h.win.Rotate()
	h.step++

	var prev []float64
	if h.win.Depth() > 1 {
		prev = h.win.Row(1)
	}
	for i := range row {
		if h.step%h.periods[i] == 0 {
			row[i] = h.fn.Value(i, h.win)
		} else if prev != nil {
			row[i] = prev[i]
		}
	}
	return nil
}

// Reset drops the cached synchronized draw; the next Initialize redraws it.
func (h *History) Reset() {
	h.sync = nil
}

// Step returns the index of the last update, -1 right after Initialize.
func (h *History) Step() int { return h.step }

// HistoryArray returns the live window rows in lag order; row 0 is the newest.
func (h *History) HistoryArray() [][]float64 { return h.win.Snapshot() }

// Window returns the live window.
func (h *History) Window() *window.Window { return h.win }

// SyncInitialization returns a copy of the cached synchronized draw, or nil.
func (h *History) SyncInitialization() [][]float64 {
	if h.sync == nil {
		return nil
	}
	return h.sync.Clone().Snapshot()
}

// InitSync reports whether initialization is synchronized.
func (h *History) InitSync() bool { return h.initSync }

// SetInitSync switches synchronized initialization on or off.
func (h *History) SetInitSync(sync bool) { h.initSync = sync }

// DishModel returns the installed dish model, or nil.
func (h *History) DishModel() *dish.Model { return h.dish }

// SetDishModel installs m; nil removes it.
func (h *History) SetDishModel(m *dish.Model) { h.dish = m }

// UpdatePeriod returns the update period of factor.
//
// Errors:
//   - ErrBadFactor: factor outside [0, NumFactors).
func (h *History) UpdatePeriod(factor int) (int, error) {
	if factor < 0 || factor >= len(h.periods) {
		return 0, fmt.Errorf("UpdatePeriod(%d): %w", factor, ErrBadFactor)
	}
	return h.periods[factor], nil
}

// SetUpdatePeriod makes factor recompute only on steps divisible by period.
//
// Errors:
//   - ErrBadFactor: factor outside [0, NumFactors).
//   - ErrBadUpdatePeriod: period < 1.
func (h *History) SetUpdatePeriod(factor, period int) error {
	if factor < 0 || factor >= len(h.periods) {
		return fmt.Errorf("SetUpdatePeriod(%d, %d): %w", factor, period, ErrBadFactor)
	}
	if period < 1 {
		return fmt.Errorf("SetUpdatePeriod(%d, %d): %w", factor, period, ErrBadUpdatePeriod)
	}
	h.periods[factor] = period
	return nil
}

// NumFactors returns the number of factors.
func (h *History) NumFactors() int { return h.fn.NumFactors() }

// Factor returns the name of factor i.
func (h *History) Factor(i int) string { return h.fn.Graph().Factor(i) }

// MaxLag returns the update function's maximum lag.
func (h *History) MaxLag() int { return h.fn.MaxLag() }

// Function returns the update function.
func (h *History) Function() update.Function { return h.fn }

// Initializer returns the initializer.
func (h *History) Initializer() initializer.Initializer { return h.init }
