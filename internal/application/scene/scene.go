// Package scene defines the Scene interface for game screens and the Stack
// that drives them.
//
// Each game screen (title, menu, name entry, level) implements the Scene
// interface to handle its own input, update logic and rendering.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/gametemplate/internal/application/world"
	"github.com/younwookim/gametemplate/internal/domain/input"
)

// Scene represents a game screen (title, menu, name entry, level).
//
// The Stack delegates calls to the top scene only. Scenes request
// transitions by returning a Switch from Update; they never touch the stack.
type Scene interface {
	// Update advances the scene by one tick and returns exactly one Switch.
	// Returns an error only for fatal conditions such as failing to build
	// the next scene.
	Update(w *world.World) (Switch, error)

	// Draw renders the scene to the screen.
	// It may change purely visual state but nothing gameplay-relevant.
	Draw(w *world.World, screen *ebiten.Image) error

	// Input reacts to one logical event. started is true for presses and
	// false for releases.
	Input(w *world.World, ev input.Event, started bool)

	// Name identifies the scene in logs
	Name() string
}

// TextInputer is implemented by scenes that accept free text
type TextInputer interface {
	TextInput(w *world.World, r rune)
}

// SwitchKind is the transition requested by a scene
type SwitchKind int

const (
	SwitchNone SwitchKind = iota
	SwitchPop
	SwitchPush
)

// String returns the string representation of the switch kind
func (k SwitchKind) String() string {
	switch k {
	case SwitchNone:
		return "None"
	case SwitchPop:
		return "Pop"
	case SwitchPush:
		return "Push"
	default:
		return "Unknown"
	}
}

// Switch is the result of Scene.Update
type Switch struct {
	Kind SwitchKind
	// Next is the scene to push, set only for SwitchPush
	Next Scene
}

// NoChange keeps the current scene
func NoChange() Switch {
	return Switch{Kind: SwitchNone}
}

// Pop removes the current scene, revealing the one beneath
func Pop() Switch {
	return Switch{Kind: SwitchPop}
}

// Push suspends the current scene and activates next
func Push(next Scene) Switch {
	return Switch{Kind: SwitchPush, Next: next}
}
