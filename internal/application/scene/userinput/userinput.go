// Package userinput provides the name entry screen.
package userinput

import (
	"fmt"
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/gametemplate/internal/application/scene"
	"github.com/younwookim/gametemplate/internal/application/scene/title"
	"github.com/younwookim/gametemplate/internal/application/world"
	"github.com/younwookim/gametemplate/internal/domain/input"
	"github.com/younwookim/gametemplate/internal/infrastructure/log"
)

var (
	colorBackground = color.RGBA{41, 31, 30, 255}
	colorWindow     = color.RGBA{71, 121, 152, 255}
	colorInputBox   = color.RGBA{50, 50, 50, 255}
)

// UserInput collects the player's name
type UserInput struct {
	prompt   string
	maxChars int
	buf      []rune

	promptFace text.Face
	inputFace  text.Face

	confirmed bool
	leave     bool
}

// New creates a UserInput scene
func New(w *world.World) (*UserInput, error) {
	fc := w.Config.Scenes.Font
	promptFace, err := scene.LoadFace(w, fc.PromptSize)
	if err != nil {
		return nil, err
	}
	inputFace, err := scene.LoadFace(w, fc.InputSize)
	if err != nil {
		return nil, err
	}
	cfg := w.Config.Scenes.UserInput
	return &UserInput{
		prompt:     cfg.Prompt,
		maxChars:   cfg.MaxChars,
		promptFace: promptFace,
		inputFace:  inputFace,
	}, nil
}

// Text returns the current buffer
func (u *UserInput) Text() string { return string(u.buf) }

// Update stores the name and moves on after Confirm, or leaves after Menu
func (u *UserInput) Update(w *world.World) (scene.Switch, error) {
	switch {
	case u.leave:
		u.leave = false
		return scene.Pop(), nil
	case u.confirmed:
		u.confirmed = false
		next, err := title.New(w)
		if err != nil {
			return scene.NoChange(), fmt.Errorf("failed to create title: %w", err)
		}
		w.Profile.Name = u.Text()
		log.Info("Player name set to %q", w.Profile.Name)
		return scene.Push(next), nil
	}
	return scene.NoChange(), nil
}

// Draw renders the prompt window and the input box
func (u *UserInput) Draw(w *world.World, screen *ebiten.Image) error {
	sw, sh := float32(w.ScreenW), float32(w.ScreenH)
	x, y, rw, rh := sw/4, sh/3.3, sw/2, sh/3.3

	screen.Fill(colorBackground)
	vector.DrawFilledRect(screen, x, y, rw, rh, colorWindow, false)
	vector.DrawFilledRect(screen, x+30, y+rh-60, rw-60, 30, colorInputBox, false)

	scene.DrawText(screen, u.prompt, u.promptFace, float64(x+rw/4), float64(y+rh-128), scene.ColorText)
	scene.DrawText(screen, u.Text(), u.inputFace, float64(x+38), float64(y+rh-57), scene.ColorText)
	return nil
}

// Input handles Delete, Confirm and Menu presses. Held Delete repeats.
func (u *UserInput) Input(_ *world.World, ev input.Event, started bool) {
	if !started || !ev.IsButton() {
		return
	}
	switch ev.Button {
	case input.ButtonDelete:
		if len(u.buf) > 0 {
			u.buf = u.buf[:len(u.buf)-1]
		}
	case input.ButtonConfirm:
		u.confirmed = true
	case input.ButtonMenu:
		u.leave = true
	}
}

// TextInput appends r while the buffer has room
func (u *UserInput) TextInput(_ *world.World, r rune) {
	if r == utf8.RuneError || len(u.buf) >= u.maxChars {
		return
	}
	u.buf = append(u.buf, r)
}

// Name returns the scene name
func (u *UserInput) Name() string { return "UserInputScene" }
