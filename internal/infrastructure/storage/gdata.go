package storage

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
)

// gdataObject groups every save property of the game
const gdataObject = "mort"

// GdataStore stores each key as a property of one gdata object,
// which lands in the platform's user data directory.
type GdataStore struct {
	manager *gdata.Manager
}

// OpenGdata opens the gdata storage for appName
func OpenGdata(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open gdata: %w", err)
	}
	return NewGdataStore(m), nil
}

// NewGdataStore wraps an opened gdata manager
func NewGdataStore(m *gdata.Manager) *GdataStore {
	return &GdataStore{manager: m}
}

func (s *GdataStore) Exists(key string) bool {
	return s.manager.ObjectPropExists(gdataObject, key)
}

func (s *GdataStore) Load(key string) ([]byte, error) {
	if !s.Exists(key) {
		return nil, ErrNotFound
	}
	data, err := s.manager.LoadObjectProp(gdataObject, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return data, nil
}

func (s *GdataStore) Save(key string, data []byte) error {
	if err := s.manager.SaveObjectProp(gdataObject, key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	log.Printf("[Storage] Saved %s", key)
	return nil
}
