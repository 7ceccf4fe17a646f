package input

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Binding maps physical keys to logical events.
// It is built once at startup and never mutated afterwards.
type Binding struct {
	keys map[ebiten.Key]Event
}

// NewBinding creates a binding from a key table.
// The table is copied so later changes to m are not observed.
func NewBinding(m map[ebiten.Key]Event) *Binding {
	keys := make(map[ebiten.Key]Event, len(m))
	for k, ev := range m {
		keys[k] = ev
	}
	return &Binding{keys: keys}
}

// DefaultBinding returns the built-in key table
func DefaultBinding() *Binding {
	return NewBinding(map[ebiten.Key]Event{
		ebiten.KeyArrowUp:    AxisEvent(AxisVertical, -1),
		ebiten.KeyArrowDown:  AxisEvent(AxisVertical, 1),
		ebiten.KeyArrowLeft:  AxisEvent(AxisHorizontal, -1),
		ebiten.KeyArrowRight: AxisEvent(AxisHorizontal, 1),
		ebiten.KeyW:          AxisEvent(AxisVertical, -1),
		ebiten.KeyS:          AxisEvent(AxisVertical, 1),
		ebiten.KeyA:          AxisEvent(AxisHorizontal, -1),
		ebiten.KeyD:          AxisEvent(AxisHorizontal, 1),
		ebiten.KeyEnter:      ButtonEvent(ButtonConfirm),
		ebiten.KeyBackspace:  ButtonEvent(ButtonDelete),
		ebiten.KeyEscape:     ButtonEvent(ButtonMenu),
	})
}

// Resolve returns the event bound to key, or false when the key is unmapped
func (b *Binding) Resolve(key ebiten.Key) (Event, bool) {
	ev, ok := b.keys[key]
	return ev, ok
}

// Keys returns the bound keys in ascending key-code order
func (b *Binding) Keys() []ebiten.Key {
	keys := make([]ebiten.Key, 0, len(b.keys))
	for k := range b.keys {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Len returns the number of bound keys
func (b *Binding) Len() int {
	return len(b.keys)
}
