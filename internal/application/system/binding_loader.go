package system

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/gametemplate/internal/domain/input"
	"github.com/younwookim/gametemplate/internal/infrastructure/config"
)

// LoadBinding converts binding config entries into an input Binding
func LoadBinding(entries []config.BindingConfig) (*input.Binding, error) {
	if len(entries) == 0 {
		return nil, errors.New("no key bindings")
	}

	table := make(map[ebiten.Key]input.Event, len(entries))
	for i, bc := range entries {
		var key ebiten.Key
		if err := key.UnmarshalText([]byte(bc.Key)); err != nil {
			return nil, fmt.Errorf("binding %d: unknown key %q: %w", i, bc.Key, err)
		}
		if _, dup := table[key]; dup {
			return nil, fmt.Errorf("binding %d: key %s bound twice", i, bc.Key)
		}

		ev, err := bindingEvent(bc)
		if err != nil {
			return nil, fmt.Errorf("binding %d (%s): %w", i, bc.Key, err)
		}
		table[key] = ev
	}

	return input.NewBinding(table), nil
}

func bindingEvent(bc config.BindingConfig) (input.Event, error) {
	switch {
	case bc.Button != "" && bc.Axis != "":
		return input.Event{}, errors.New("both button and axis set")
	case bc.Button != "":
		b, err := input.ParseButton(bc.Button)
		if err != nil {
			return input.Event{}, err
		}
		return input.ButtonEvent(b), nil
	case bc.Axis != "":
		a, err := input.ParseAxis(bc.Axis)
		if err != nil {
			return input.Event{}, err
		}
		if bc.Value != -1 && bc.Value != 1 {
			return input.Event{}, fmt.Errorf("axis value must be -1 or 1, got %g", bc.Value)
		}
		return input.AxisEvent(a, bc.Value), nil
	}
	return input.Event{}, errors.New("neither button nor axis set")
}
