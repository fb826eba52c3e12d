// Package profile keeps the player's name and score between runs.
package profile

import (
	"errors"
	"fmt"
	"log"

	"gopkg.in/yaml.v3"

	"github.com/pryahin/Mort/internal/domain/entity"
	"github.com/pryahin/Mort/internal/infrastructure/storage"
)

// storeKey is the storage key of the user record
const storeKey = "user"

// DefaultMultiplier converts remaining seconds into score
const DefaultMultiplier = 10

// Profile owns the persisted User record.
// A nil store keeps the profile in memory only.
type Profile struct {
	store      storage.Store
	user       entity.User
	multiplier int
}

// New creates a profile and loads any saved user.
// A failed load is logged and the profile starts empty.
func New(store storage.Store, multiplier int) *Profile {
	if multiplier <= 0 {
		multiplier = DefaultMultiplier
	}
	p := &Profile{store: store, multiplier: multiplier}
	if err := p.Load(); err != nil {
		log.Printf("[Profile] Warning: Failed to load user: %v (starting fresh)", err)
	}
	return p
}

// Load reads the user record from storage
func (p *Profile) Load() error {
	p.user = entity.User{}
	if p.store == nil {
		return nil
	}

	data, err := p.store.Load(storeKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}

	var u entity.User
	if err := yaml.Unmarshal(data, &u); err != nil {
		return fmt.Errorf("failed to unmarshal user: %w", err)
	}
	p.user = u
	log.Printf("[Profile] Welcome back, %s", u.Username)
	return nil
}

// Save writes the user record to storage
func (p *Profile) Save() error {
	if p.store == nil {
		return nil
	}
	data, err := yaml.Marshal(&p.user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	if err := p.store.Save(storeKey, data); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// Exists reports whether the player has introduced themselves
func (p *Profile) Exists() bool {
	return p.user.Username != ""
}

// Username returns the current name
func (p *Profile) Username() string {
	return p.user.Username
}

// Score returns the cumulative score
func (p *Profile) Score() int {
	return p.user.Score
}

// User returns a copy of the record
func (p *Profile) User() entity.User {
	return p.user
}

// Rename validates name and stores it.
// The validation error is returned unchanged so callers can show it.
func (p *Profile) Rename(name string) error {
	name, err := entity.ValidateUsername(name)
	if err != nil {
		return err
	}
	p.user.Username = name
	return p.Save()
}

// AddScore credits the remaining seconds of a completed level
func (p *Profile) AddScore(seconds int) error {
	if seconds <= 0 {
		return nil
	}
	p.user.Score += seconds * p.multiplier
	return p.Save()
}
