// Package world holds the shared context handed to every scene call.
package world

import (
	"github.com/yohamta/donburi"

	"github.com/younwookim/gametemplate/internal/domain/input"
	"github.com/younwookim/gametemplate/internal/ecs"
	"github.com/younwookim/gametemplate/internal/infrastructure/assets"
	"github.com/younwookim/gametemplate/internal/infrastructure/config"
)

// Profile is what the player told us about themselves
type Profile struct {
	Name string
}

// World is the shared context passed by pointer into every scene call.
// Scenes must not keep it between calls.
type World struct {
	Input    *input.State
	Entities donburi.World
	Assets   *assets.Store
	Config   *config.GameConfig
	Profile  Profile

	// Logical screen size, kept current by the game loop's Layout
	ScreenW int
	ScreenH int
}

// New creates a world with an empty input state and entity world
func New(cfg *config.GameConfig, store *assets.Store) *World {
	return &World{
		Input:    input.NewState(),
		Entities: ecs.NewWorld(),
		Assets:   store,
		Config:   cfg,
		ScreenW:  cfg.App.Display.ScreenWidth,
		ScreenH:  cfg.App.Display.ScreenHeight,
	}
}

// PlayerName returns the profile name or the configured default
func (w *World) PlayerName() string {
	if w.Profile.Name != "" {
		return w.Profile.Name
	}
	return w.Config.Scenes.Level.DefaultName
}
