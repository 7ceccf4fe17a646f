// Package menu provides the pause/options screen.
package menu

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/younwookim/gametemplate/internal/application/scene"
	"github.com/younwookim/gametemplate/internal/application/world"
	"github.com/younwookim/gametemplate/internal/domain/input"
)

var colorHint = color.RGBA{160, 160, 160, 255}

// Menu shows a heading and leaves on Confirm or Menu
type Menu struct {
	heading string
	hint    string
	face    text.Face
	small   text.Face
	done    bool
}

// New creates a Menu scene
func New(w *world.World) (*Menu, error) {
	fc := w.Config.Scenes.Font
	face, err := scene.LoadFace(w, fc.HeadingSize)
	if err != nil {
		return nil, err
	}
	small, err := scene.LoadFace(w, fc.BodySize)
	if err != nil {
		return nil, err
	}
	return &Menu{
		heading: w.Config.Scenes.Menu.Heading,
		hint:    w.Config.Scenes.Menu.Hint,
		face:    face,
		small:   small,
	}, nil
}

// Update pops the menu once after it was dismissed
func (m *Menu) Update(_ *world.World) (scene.Switch, error) {
	if !m.done {
		return scene.NoChange(), nil
	}
	m.done = false
	return scene.Pop(), nil
}

// Draw renders the heading and hint
func (m *Menu) Draw(w *world.World, screen *ebiten.Image) error {
	x := float64(w.ScreenW) / 4
	y := float64(w.ScreenH) / 3
	scene.DrawText(screen, m.heading, m.face, x, y, scene.ColorText)
	scene.DrawText(screen, m.hint, m.small, x, y+80, colorHint)
	return nil
}

// Input dismisses the menu on a Confirm or Menu press
func (m *Menu) Input(_ *world.World, ev input.Event, started bool) {
	if !started || !ev.IsButton() || m.done {
		return
	}
	if ev.Button == input.ButtonConfirm || ev.Button == input.ButtonMenu {
		m.done = true
	}
}

// Name returns the scene name
func (m *Menu) Name() string { return "MenuScene" }
