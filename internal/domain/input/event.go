// Package input defines logical input events, the key binding that produces
// them and the per-session input state that scenes query.
package input

import "fmt"

// Button is a discrete logical button
type Button int

const (
	ButtonMenu Button = iota
	ButtonConfirm
	ButtonDelete
)

// String returns the name used in bindings.json
func (b Button) String() string {
	switch b {
	case ButtonMenu:
		return "menu"
	case ButtonConfirm:
		return "confirm"
	case ButtonDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// ParseButton parses a button name as written in bindings.json
func ParseButton(name string) (Button, error) {
	switch name {
	case "menu":
		return ButtonMenu, nil
	case "confirm":
		return ButtonConfirm, nil
	case "delete":
		return ButtonDelete, nil
	default:
		return 0, fmt.Errorf("unknown button: %q", name)
	}
}

// Axis is a continuous logical axis
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// String returns the name used in bindings.json
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// ParseAxis parses an axis name as written in bindings.json
func ParseAxis(name string) (Axis, error) {
	switch name {
	case "vertical":
		return AxisVertical, nil
	case "horizontal":
		return AxisHorizontal, nil
	default:
		return 0, fmt.Errorf("unknown axis: %q", name)
	}
}

// Kind tells which half of an Event is meaningful
type Kind int

const (
	KindButton Kind = iota
	KindAxis
)

// Event is a logical input event. It is a value type; a new one is produced
// for every physical key transition.
type Event struct {
	Kind   Kind
	Button Button
	Axis   Axis
	// Value is -1 or +1 for key-driven axes
	Value float64
}

// ButtonEvent creates an event for a discrete button
func ButtonEvent(b Button) Event {
	return Event{Kind: KindButton, Button: b}
}

// AxisEvent creates an event that drives axis a towards value
func AxisEvent(a Axis, value float64) Event {
	return Event{Kind: KindAxis, Axis: a, Value: value}
}

// IsButton reports whether the event is for a discrete button
func (e Event) IsButton() bool {
	return e.Kind == KindButton
}

// IsAxis reports whether the event is for a continuous axis
func (e Event) IsAxis() bool {
	return e.Kind == KindAxis
}

// Repeatable reports whether holding the key should deliver the event again.
// Only Delete and the axes repeat; Menu and Confirm need a fresh press.
func (e Event) Repeatable() bool {
	return e.Kind == KindAxis || e.Button == ButtonDelete
}

// String is used in debug logs
func (e Event) String() string {
	if e.Kind == KindAxis {
		return fmt.Sprintf("axis(%s, %+g)", e.Axis, e.Value)
	}
	return fmt.Sprintf("button(%s)", e.Button)
}
