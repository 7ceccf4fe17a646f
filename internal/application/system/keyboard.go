package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/gametemplate/internal/infrastructure/config"
)

// KeyEvent is one physical key transition
type KeyEvent struct {
	Key  ebiten.Key `json:"k"`
	Down bool       `json:"d,omitempty"`
	// Repeat marks a synthetic key-down generated while the key is held
	Repeat bool `json:"r,omitempty"`
}

// Frame is everything a KeySource produced during one tick
type Frame struct {
	Keys  []KeyEvent
	Chars []rune
}

// Empty reports whether the frame carries no input
func (f Frame) Empty() bool {
	return len(f.Keys) == 0 && len(f.Chars) == 0
}

// KeySource produces raw input once per tick
type KeySource interface {
	Poll() Frame
}

// Finite is a KeySource that can run out of input
type Finite interface {
	Done() bool
}

// Keyboard reads the ebiten keyboard
type Keyboard struct {
	repeat config.RepeatConfig
	keys   []ebiten.Key
}

// NewKeyboard creates a keyboard source. A zero repeat interval disables key repeat.
func NewKeyboard(repeat config.RepeatConfig) *Keyboard {
	return &Keyboard{repeat: repeat}
}

// Poll returns this tick's releases, presses, repeats and typed characters
func (k *Keyboard) Poll() Frame {
	var f Frame

	k.keys = inpututil.AppendJustReleasedKeys(k.keys[:0])
	for _, key := range k.keys {
		f.Keys = append(f.Keys, KeyEvent{Key: key})
	}

	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])
	for _, key := range k.keys {
		f.Keys = append(f.Keys, KeyEvent{Key: key, Down: true})
	}

	if k.repeat.Interval > 0 {
		k.keys = inpututil.AppendPressedKeys(k.keys[:0])
		for _, key := range k.keys {
			if IsRepeat(inpututil.KeyPressDuration(key), k.repeat) {
				f.Keys = append(f.Keys, KeyEvent{Key: key, Down: true, Repeat: true})
			}
		}
	}

	f.Chars = ebiten.AppendInputChars(nil)
	return f
}

// IsRepeat reports whether a key held for duration ticks should fire a repeat.
// The first repeat fires after Delay ticks, then every Interval ticks.
// The press tick itself never repeats.
func IsRepeat(duration int, cfg config.RepeatConfig) bool {
	if cfg.Interval <= 0 || duration <= 1 || duration <= cfg.Delay {
		return false
	}
	return (duration-cfg.Delay)%cfg.Interval == 0
}
