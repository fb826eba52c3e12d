package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pryahin/Mort/internal/application/clock"
	"github.com/pryahin/Mort/internal/application/game"
	"github.com/pryahin/Mort/internal/application/profile"
	"github.com/pryahin/Mort/internal/application/scene"
	"github.com/pryahin/Mort/internal/application/scene/hub"
	"github.com/pryahin/Mort/internal/application/scene/naming"
	"github.com/pryahin/Mort/internal/application/system"
	"github.com/pryahin/Mort/internal/infrastructure/config"
	"github.com/pryahin/Mort/internal/infrastructure/storage"
)

const appName = "mort"

func main() {
	// Parse command line flags
	configDir := flag.String("config-dir", "", "Load configs from a directory instead of the embedded ones")
	watchFlag := flag.Bool("watch", false, "Reload level files when they change (requires -config-dir)")
	saveDir := flag.String("save-dir", "", "Keep progress as YAML files in this directory")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play a recorded file without a window and print the outcome")
	flag.Parse()

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" {
		if err := runReplay(cfg, *replayFlag); err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		return
	}

	store := openStore(*saveDir)
	levels := system.LoadLevels(cfg.Levels)
	clocks := clock.New(store, clock.BudgetsFor(levels))
	if err := clocks.Read(); err != nil {
		log.Printf("[Main] Failed to read clocks, starting fresh: %v", err)
	}
	prof := profile.New(store, cfg.Settings.Score.Multiplier)

	var watcher *config.Watcher
	if *watchFlag {
		if loader.Dir() == "" {
			log.Printf("[Main] -watch needs -config-dir, hot reload disabled")
		} else if watcher, err = config.NewWatcher(loader.Dir()); err != nil {
			log.Printf("[Main] Failed to watch configs: %v", err)
			watcher = nil
		}
	}

	h := hub.New(hub.Options{
		Config:     cfg,
		Loader:     loader,
		Watcher:    watcher,
		Clocks:     clocks,
		Profile:    prof,
		RecordPath: *recordFlag,
	})

	display := cfg.Settings.Display
	var first scene.Scene = h
	if !prof.Exists() {
		first = naming.New(prof, display.ScreenWidth, display.ScreenHeight, func() scene.Scene { return h })
	}

	g := game.New(first, display.ScreenWidth, display.ScreenHeight)
	g.SetDT(1.0 / float64(display.Framerate))

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)
	ebiten.SetWindowClosingHandled(true)

	// Run game
	err = ebiten.RunGame(g)
	g.Close()
	if watcher != nil {
		_ = watcher.Close()
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// newLoader reads configs from dir, or from the embedded copy when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys), nil
}

// openStore picks where progress is kept. The gdata store is the default;
// if it cannot be opened progress lives in memory for this run only.
func openStore(saveDir string) storage.Store {
	if saveDir != "" {
		s, err := storage.NewDirStore(saveDir)
		if err == nil {
			return s
		}
		log.Printf("[Main] Failed to open save dir %s: %v", saveDir, err)
	}
	s, err := storage.OpenGdata(appName)
	if err != nil {
		log.Printf("[Main] Failed to open save data, progress will not be kept: %v", err)
		return storage.NewMemoryStore()
	}
	return s
}
