package main

import (
	"flag"
	"fmt"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/gametemplate/internal/application/game"
	"github.com/younwookim/gametemplate/internal/application/replay"
	"github.com/younwookim/gametemplate/internal/application/scene"
	"github.com/younwookim/gametemplate/internal/application/system"
	"github.com/younwookim/gametemplate/internal/application/world"
	"github.com/younwookim/gametemplate/internal/infrastructure/assets"
	"github.com/younwookim/gametemplate/internal/infrastructure/config"
	"github.com/younwookim/gametemplate/internal/infrastructure/log"
)

type options struct {
	record    string
	replay    string
	logLevel  string
	resources string
	configDir string
}

// setup wires configuration, world, scenes and input into a runnable game
func setup(opts options) (*game.Game, *replay.Recorder, error) {
	var loader *config.Loader
	if opts.configDir != "" {
		loader = config.NewLoader(opts.configDir)
	} else {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get config subfs: %w", err)
		}
		loader = config.NewFSLoader(fsys, "configs")
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	levelName := cfg.App.Runtime.LogLevel
	if opts.logLevel != "" {
		levelName = opts.logLevel
	}
	level, err := log.ParseLogLevel(levelName)
	if err != nil {
		return nil, nil, err
	}
	log.SetLevel(level)

	binding, err := system.LoadBinding(cfg.Input.Bindings)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load bindings: %w", err)
	}
	log.Debug("Bound %d keys", binding.Len())

	source, err := inputSource(opts.replay, cfg)
	if err != nil {
		return nil, nil, err
	}

	resources := cfg.App.Runtime.ResourcesDir
	if opts.resources != "" {
		resources = opts.resources
	}
	w := world.New(cfg, assets.NewStore(resources))

	initial, err := newScene(cfg.Scenes.Initial, w)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create initial scene: %w", err)
	}

	g, err := game.New(w, scene.NewStack(initial), binding, source)
	if err != nil {
		return nil, nil, err
	}

	var rec *replay.Recorder
	if opts.record != "" {
		rec = replay.NewRecorder(cfg.Scenes.Initial)
		g.SetRecorder(rec)
		log.Info("Recording enabled: %s", opts.record)
	}

	log.Info("Starting in %s", initial.Name())
	return g, rec, nil
}

func main() {
	// Parse command line flags
	var opts options
	flag.StringVar(&opts.record, "record", "", "Record input to file (e.g., -record replay.json, \"auto\" picks a timestamped name)")
	flag.StringVar(&opts.replay, "replay", "", "Play back a recorded input file")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (error, warn, info, debug, trace)")
	flag.StringVar(&opts.resources, "resources", "", "Resources directory (overrides app.json)")
	flag.StringVar(&opts.configDir, "config", "", "Config directory (defaults to the embedded configs)")
	flag.Parse()

	g, rec, err := setup(opts)
	if err != nil {
		log.Fatal("%v", err)
	}

	d := g.World().Config.App.Display
	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetTPS(d.Framerate)
	if d.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	// Run game
	runErr := ebiten.RunGame(g)
	if rec != nil {
		saveRecording(rec, opts.record)
	}
	if runErr != nil {
		log.Fatal("%v", runErr)
	}
}
