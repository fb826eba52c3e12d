// Package clock tracks the outcome of each level.
//
// Every level has one clock. A clock starts normal, runs while its level is
// played and ends either succeed or failed. Finished clocks never restart.
// Clocks is the only type that changes clock state.
package clock

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/pryahin/Mort/internal/domain/entity"
	"github.com/pryahin/Mort/internal/infrastructure/storage"
)

var (
	ErrUnknownLevel    = errors.New("unknown level")
	ErrClockFinished   = errors.New("clock already finished")
	ErrClockRunning    = errors.New("clock already running")
	ErrClockNotRunning = errors.New("clock not running")
)

// Budget is the countdown a level is played against
type Budget struct {
	Seconds  int
	Interval time.Duration
}

type clock struct {
	state     State
	budget    Budget
	remaining int
	timer     *entity.Timer
}

// time returns the remaining seconds, live while running
func (c *clock) time() int {
	if c.state == StateRunning && c.timer != nil {
		return c.timer.Time()
	}
	return c.remaining
}

// Clocks holds one clock per level
type Clocks struct {
	clocks []*clock
	store  storage.Store
}

// New creates normal clocks for the given budgets, in level order
func New(store storage.Store, budgets []Budget) *Clocks {
	c := &Clocks{store: store}
	for _, b := range budgets {
		c.clocks = append(c.clocks, &clock{
			state:     StateNormal,
			budget:    b,
			remaining: b.Seconds,
		})
	}
	return c
}

func (c *Clocks) get(id int) (*clock, error) {
	if id < 0 || id >= len(c.clocks) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, id)
	}
	return c.clocks[id], nil
}

// Count returns the number of clocks
func (c *Clocks) Count() int {
	return len(c.clocks)
}

// Stop launches a level. The clock's countdown is reset to the budget and
// returned stopped: the level starts it on the first input.
func (c *Clocks) Stop(id int) (*entity.Timer, error) {
	cl, err := c.get(id)
	if err != nil {
		return nil, err
	}
	switch {
	case cl.state.Terminal():
		return nil, fmt.Errorf("level %d: %w", id, ErrClockFinished)
	case cl.state == StateRunning:
		return nil, fmt.Errorf("level %d: %w", id, ErrClockRunning)
	}

	cl.timer = entity.NewTimer(cl.budget.Seconds, cl.budget.Interval)
	cl.state = StateRunning
	return cl.timer, nil
}

// Succeed records a completed level
func (c *Clocks) Succeed(id int) error {
	return c.finish(id, StateSucceed)
}

// Fail records a failed level
func (c *Clocks) Fail(id int) error {
	return c.finish(id, StateFailed)
}

func (c *Clocks) finish(id int, to State) error {
	cl, err := c.get(id)
	if err != nil {
		return err
	}
	if cl.state != StateRunning {
		return fmt.Errorf("level %d is %s: %w", id, cl.state, ErrClockNotRunning)
	}

	cl.timer.Stop()
	cl.remaining = cl.timer.Time()
	cl.state = to
	log.Printf("[Clocks] Level %d %s with %s left", id, to, entity.DecorateSeconds(cl.remaining))
	return nil
}

// Hover highlights a playable clock
func (c *Clocks) Hover(id int) error {
	cl, err := c.get(id)
	if err != nil {
		return err
	}
	if cl.state == StateNormal {
		cl.state = StateHover
	}
	return nil
}

// Unhover removes the highlight
func (c *Clocks) Unhover(id int) error {
	cl, err := c.get(id)
	if err != nil {
		return err
	}
	if cl.state == StateHover {
		cl.state = StateNormal
	}
	return nil
}

// SetBudget changes the countdown of a level that has not been played yet.
// Running and finished clocks keep their budget.
func (c *Clocks) SetBudget(id int, b Budget) error {
	cl, err := c.get(id)
	if err != nil {
		return err
	}
	if !cl.state.Playable() {
		return nil
	}
	cl.budget = b
	cl.remaining = b.Seconds
	return nil
}

// State returns the clock state. Unknown levels read as normal.
func (c *Clocks) State(id int) State {
	cl, err := c.get(id)
	if err != nil {
		return StateNormal
	}
	return cl.state
}

// Playable reports whether the level can be launched
func (c *Clocks) Playable(id int) bool {
	cl, err := c.get(id)
	if err != nil {
		return false
	}
	return cl.state.Playable()
}

// Time returns the remaining seconds of a level
func (c *Clocks) Time(id int) int {
	cl, err := c.get(id)
	if err != nil {
		return 0
	}
	return cl.time()
}

// Elapsed returns the seconds spent on a level
func (c *Clocks) Elapsed(id int) int {
	cl, err := c.get(id)
	if err != nil {
		return 0
	}
	return cl.budget.Seconds - cl.time()
}

// Decorated returns the remaining time as m:ss
func (c *Clocks) Decorated(id int) string {
	return entity.DecorateSeconds(c.Time(id))
}

// Low reports whether the level's remaining time is in the warning range
func (c *Clocks) Low(id int) bool {
	return c.Time(id) <= entity.LowTimeSeconds
}

// BudgetFor returns the countdown of a level
func BudgetFor(level *entity.Level) Budget {
	return Budget{Seconds: level.TimeBudget, Interval: level.TickInterval}
}

// BudgetsFor returns the countdowns of levels in order
func BudgetsFor(levels []*entity.Level) []Budget {
	budgets := make([]Budget, 0, len(levels))
	for _, l := range levels {
		budgets = append(budgets, BudgetFor(l))
	}
	return budgets
}
