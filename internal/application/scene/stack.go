package scene

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/gametemplate/internal/application/world"
	"github.com/younwookim/gametemplate/internal/domain/input"
	"github.com/younwookim/gametemplate/internal/infrastructure/log"
)

// ErrExit is returned by Stack.Update when the last remaining scene asks to
// be popped. The stack is left unchanged; the caller should end the session.
var ErrExit = errors.New("last scene popped")

// Stack is an ordered collection of scenes. The last scene is the only
// active one; scenes beneath it are suspended but keep their state.
type Stack struct {
	scenes []Scene
}

// NewStack creates a stack with the given initial scenes, bottom first
func NewStack(initial ...Scene) *Stack {
	s := &Stack{}
	for _, sc := range initial {
		s.Push(sc)
	}
	return s
}

// Push makes sc the active scene, suspending the current one
func (s *Stack) Push(sc Scene) {
	if top := s.Top(); top != nil {
		log.Debug("Suspending %s", top.Name())
	}
	s.scenes = append(s.scenes, sc)
	log.Debug("Pushed %s (depth %d)", sc.Name(), len(s.scenes))
}

// Pop removes and returns the active scene.
// It refuses to remove the last scene and returns false instead.
func (s *Stack) Pop() (Scene, bool) {
	if len(s.scenes) <= 1 {
		return nil, false
	}
	top := s.scenes[len(s.scenes)-1]
	s.scenes[len(s.scenes)-1] = nil
	s.scenes = s.scenes[:len(s.scenes)-1]
	log.Debug("Popped %s, resuming %s", top.Name(), s.Top().Name())
	return top, true
}

// Top returns the active scene, nil when the stack is empty
func (s *Stack) Top() Scene {
	if len(s.scenes) == 0 {
		return nil
	}
	return s.scenes[len(s.scenes)-1]
}

// Len returns the number of scenes on the stack
func (s *Stack) Len() int {
	return len(s.scenes)
}

// Names returns the scene names, bottom first
func (s *Stack) Names() []string {
	names := make([]string, len(s.scenes))
	for i, sc := range s.scenes {
		names[i] = sc.Name()
	}
	return names
}

// Update updates the active scene and applies the switch it returns.
// At most one mutation happens per call.
func (s *Stack) Update(w *world.World) error {
	top := s.Top()
	if top == nil {
		return ErrExit
	}

	sw, err := top.Update(w)
	if err != nil {
		return fmt.Errorf("%s: update failed: %w", top.Name(), err)
	}

	switch sw.Kind {
	case SwitchNone:
	case SwitchPop:
		if _, ok := s.Pop(); !ok {
			return ErrExit
		}
	case SwitchPush:
		if sw.Next == nil {
			return fmt.Errorf("%s: push without a scene", top.Name())
		}
		s.Push(sw.Next)
	default:
		return fmt.Errorf("%s: unknown switch %s", top.Name(), sw.Kind)
	}
	return nil
}

// Draw renders the active scene only
func (s *Stack) Draw(w *world.World, screen *ebiten.Image) error {
	top := s.Top()
	if top == nil {
		return nil
	}
	if err := top.Draw(w, screen); err != nil {
		return fmt.Errorf("%s: draw failed: %w", top.Name(), err)
	}
	return nil
}

// Input forwards ev to the active scene
func (s *Stack) Input(w *world.World, ev input.Event, started bool) {
	if top := s.Top(); top != nil {
		top.Input(w, ev, started)
	}
}

// TextInput forwards r to the active scene if it accepts text
func (s *Stack) TextInput(w *world.World, r rune) {
	if ti, ok := s.Top().(TextInputer); ok {
		ti.TextInput(w, r)
	}
}
