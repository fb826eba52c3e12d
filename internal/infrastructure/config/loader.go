package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Settings *SettingsConfig
	Levels   []*LevelConfig
}

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys fs.FS
	dir  string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(dir string) *Loader {
	return &Loader{
		fsys: os.DirFS(dir),
		dir:  dir,
	}
}

// NewFSLoader creates a new config loader from fs.FS.
// Such a loader has no directory on disk and cannot be watched.
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Dir returns the directory on disk, or "" for an embedded filesystem
func (l *Loader) Dir() string {
	return l.dir
}

// LoadSettings loads settings.json
func (l *Loader) LoadSettings() (*SettingsConfig, error) {
	var cfg SettingsConfig
	if err := l.readJSON("settings.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadLevel loads levels/<name>.json
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	var cfg LevelConfig
	if err := l.readJSON("levels/"+name+".json", &cfg); err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	if cfg.ID == "" {
		cfg.ID = name
	}
	return &cfg, nil
}

// LoadAll loads settings and every level it lists, then validates the result
func (l *Loader) LoadAll() (*GameConfig, error) {
	settings, err := l.LoadSettings()
	if err != nil {
		return nil, err
	}

	levels := make([]*LevelConfig, 0, len(settings.Levels))
	for _, name := range settings.Levels {
		level, err := l.LoadLevel(name)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}

	cfg := &GameConfig{
		Settings: settings,
		Levels:   levels,
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) readJSON(path string, v any) error {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
