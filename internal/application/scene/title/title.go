// Package title provides the title screen with its option list.
package title

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/younwookim/gametemplate/internal/application/scene"
	"github.com/younwookim/gametemplate/internal/application/scene/level"
	"github.com/younwookim/gametemplate/internal/application/scene/menu"
	"github.com/younwookim/gametemplate/internal/application/world"
	"github.com/younwookim/gametemplate/internal/domain/input"
	"github.com/younwookim/gametemplate/internal/infrastructure/config"
	"github.com/younwookim/gametemplate/internal/infrastructure/log"
)

// Layout of the option list
const (
	optionX       = 200
	optionY       = 300
	optionSpacing = 100
)

// Title lets the player pick an option with the vertical axis
type Title struct {
	options  []config.TitleOption
	face     text.Face
	menuIdx  int
	selected bool
	leave    bool
}

// New creates a Title scene
func New(w *world.World) (*Title, error) {
	face, err := scene.LoadFace(w, w.Config.Scenes.Font.BodySize)
	if err != nil {
		return nil, err
	}
	return &Title{
		options: w.Config.Scenes.Title.Options,
		face:    face,
	}, nil
}

// Selected returns the highlighted option index
func (t *Title) Selected() int { return t.menuIdx }

// Update builds the scene for the chosen option, or leaves after a Menu press
func (t *Title) Update(w *world.World) (scene.Switch, error) {
	switch {
	case t.leave:
		t.leave = false
		return scene.Pop(), nil
	case t.selected:
		t.selected = false
		next, err := t.next(w)
		if err != nil {
			return scene.NoChange(), err
		}
		return scene.Push(next), nil
	}
	return scene.NoChange(), nil
}

// next builds the scene the selected option names
func (t *Title) next(w *world.World) (scene.Scene, error) {
	opt := t.options[t.menuIdx]
	log.Debug("Title: selected %q", opt.Label)
	switch opt.Scene {
	case "level":
		l, err := level.New(w)
		if err != nil {
			return nil, fmt.Errorf("failed to create level: %w", err)
		}
		return l, nil
	case "menu":
		m, err := menu.New(w)
		if err != nil {
			return nil, fmt.Errorf("failed to create menu: %w", err)
		}
		return m, nil
	}
	return nil, fmt.Errorf("option %q opens unknown scene %q", opt.Label, opt.Scene)
}

// Draw renders the options, highlighting the selected one
func (t *Title) Draw(_ *world.World, screen *ebiten.Image) error {
	for i, opt := range t.options {
		clr := scene.ColorUnselected
		if i == t.menuIdx {
			clr = scene.ColorText
		}
		scene.DrawText(screen, opt.Label, t.face, optionX, float64(optionY+i*optionSpacing), clr)
	}
	return nil
}

// Input moves the selection on vertical presses and records Confirm and Menu
func (t *Title) Input(_ *world.World, ev input.Event, started bool) {
	if !started {
		return
	}
	n := len(t.options)
	switch {
	case ev.IsAxis() && ev.Axis == input.AxisVertical:
		switch {
		case ev.Value < 0:
			t.menuIdx = (t.menuIdx - 1 + n) % n
		case ev.Value > 0:
			t.menuIdx = (t.menuIdx + 1) % n
		}
	case ev.IsButton() && ev.Button == input.ButtonConfirm:
		t.selected = true
	case ev.IsButton() && ev.Button == input.ButtonMenu:
		t.leave = true
	}
}

// Name returns the scene name
func (t *Title) Name() string { return "TitleScene" }
