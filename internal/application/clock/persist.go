package clock

import (
	"fmt"
	"log"

	"gopkg.in/yaml.v3"
)

// storeKey is the storage key of the clocks payload
const storeKey = "clocks"

type clockRecord struct {
	State     State `yaml:"state"`
	Budget    int   `yaml:"budget"`
	Remaining int   `yaml:"remaining"`
}

type clocksRecord struct {
	Clocks []clockRecord `yaml:"clocks"`
}

// Read restores finished clocks from storage. Missing data leaves every
// clock normal. Clocks that were never finished start over with the current budget.
func (c *Clocks) Read() error {
	if c.store == nil || !c.store.Exists(storeKey) {
		return nil
	}

	data, err := c.store.Load(storeKey)
	if err != nil {
		return fmt.Errorf("failed to load clocks: %w", err)
	}

	var rec clocksRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("failed to unmarshal clocks: %w", err)
	}

	for i, r := range rec.Clocks {
		if i >= len(c.clocks) {
			break
		}
		cl := c.clocks[i]
		cl.timer = nil
		switch r.State {
		case StateSucceed, StateFailed:
			cl.state = r.State
			cl.remaining = r.Remaining
			if r.Budget > 0 {
				cl.budget.Seconds = r.Budget
			}
		case StateRunning:
			// An attempt that never finished counts as failed
			cl.state = StateFailed
			cl.remaining = r.Remaining
		default:
			cl.state = StateNormal
			cl.remaining = cl.budget.Seconds
		}
	}

	log.Printf("[Clocks] Loaded %d clocks", min(len(rec.Clocks), len(c.clocks)))
	return nil
}

// Write saves every clock. Hover is saved as normal and a running clock as failed.
func (c *Clocks) Write() error {
	if c.store == nil {
		return nil
	}

	rec := clocksRecord{Clocks: make([]clockRecord, 0, len(c.clocks))}
	for _, cl := range c.clocks {
		r := clockRecord{
			State:     cl.state,
			Budget:    cl.budget.Seconds,
			Remaining: cl.time(),
		}
		switch cl.state {
		case StateHover:
			r.State = StateNormal
		case StateRunning:
			r.State = StateFailed
		}
		rec.Clocks = append(rec.Clocks, r)
	}

	data, err := yaml.Marshal(&rec)
	if err != nil {
		return fmt.Errorf("failed to marshal clocks: %w", err)
	}
	if err := c.store.Save(storeKey, data); err != nil {
		return fmt.Errorf("failed to save clocks: %w", err)
	}
	return nil
}
