package main

import (
	"fmt"

	"github.com/younwookim/gametemplate/internal/application/scene"
	"github.com/younwookim/gametemplate/internal/application/scene/level"
	"github.com/younwookim/gametemplate/internal/application/scene/menu"
	"github.com/younwookim/gametemplate/internal/application/scene/title"
	"github.com/younwookim/gametemplate/internal/application/scene/userinput"
	"github.com/younwookim/gametemplate/internal/application/world"
)

// newScene builds the scene a session starts in
func newScene(name string, w *world.World) (scene.Scene, error) {
	switch name {
	case "userinput":
		return userinput.New(w)
	case "title":
		return title.New(w)
	case "menu":
		return menu.New(w)
	case "level":
		return level.New(w)
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}
